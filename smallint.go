// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package bignum

// mulSmall multiplies magnitude x by a factor y, returning a freshly
// allocated, normalized result. Each limb product xi*y+carry is formed in
// 128 bits (mul128) and reduced to base b (divmod128), so y is not limited
// to small factors: BigFloat's decimal alignment (shiftDecimal) passes
// powers of ten up to 10^15.
func mulSmall(x limbs, y uint64) limbs {
	if y == 0 || x.isZero() {
		return limbs{0}
	}
	z := make(limbs, len(x)+1)
	var carry uint64
	for i, xi := range x {
		hi, lo := mul128(xi, y)
		lo += carry
		if lo < carry {
			hi++
		}
		// lo, hi hold xi*y+carry as a 128-bit value in base 2^64; reduce
		// it to base b.
		q, r := divmod128(hi, lo, b)
		z[i] = r
		carry = q
	}
	z[len(x)] = carry
	return normalize(z)
}

// divSmall divides magnitude x by a positive int64 factor y, returning the
// quotient and the remainder (0 <= remainder < y). Used by Toom-Cook
// interpolation, where the division is guaranteed exact for well-formed
// inputs; callers that rely on exactness should assert remainder == 0
// themselves (see toom.go).
func divSmall(x limbs, y uint64) (limbs, uint64) {
	if y == 0 {
		panic("bignum: divSmall by zero")
	}
	q := make(limbs, len(x))
	var rem uint64
	for i := len(x) - 1; i >= 0; i-- {
		// The running value is rem*b + x[i] (base-b limbs), formed as a
		// 128-bit binary value before dividing.
		hi, lo := mul128(rem, b)
		lo += x[i]
		if lo < x[i] {
			hi++
		}
		qi, r := divmod128(hi, lo, y)
		q[i] = qi
		rem = r
	}
	return normalize(q), rem
}

// mul128 returns the full 128-bit product of two uint64 values, split as
// (hi, lo) in base 2^64. Even limb-sized operands (< b < 2^54) give
// products far beyond 2^64, so plain uint64 multiplication would overflow;
// mulSmall and divSmall use this helper for their per-limb products.
func mul128(x, y uint64) (hi, lo uint64) {
	// x, y < b = 1e16 < 2^54, so x*y < 2^108 which does not fit in a
	// uint64; use bits.Mul64 semantics manually via the standard 64-bit
	// split trick.
	const mask32 = 0xffffffff
	xl, xh := x&mask32, x>>32
	yl, yh := y&mask32, y>>32

	ll := xl * yl
	lh := xl * yh
	hl := xh * yl
	hh := xh * yh

	mid := lh + hl
	midCarry := uint64(0)
	if mid < lh {
		midCarry = 1 << 32
	}

	loSum := ll + (mid << 32)
	carry := uint64(0)
	if loSum < ll {
		carry = 1
	}
	hiSum := hh + (mid >> 32) + midCarry + carry
	return hiSum, loSum
}

// divmod128 divides the 128-bit value hi*2^64 + lo by a divisor d,
// returning quotient and remainder. The quotient fits in a uint64 only
// when hi < d, which holds for all callers in this package (d is always
// either b or a small Toom-Cook scaling factor).
func divmod128(hi, lo, d uint64) (q, r uint64) {
	if hi == 0 {
		return lo / d, lo % d
	}
	// Long division, one bit at a time, processing hi's 64 bits and then
	// lo's 64 bits into the remainder register. The true quotient fits in
	// a uint64 for every caller in this package (d is always b, or a
	// small Toom-Cook scaling factor), so the leading iterations only
	// ever shift zero bits into quot and nothing is lost to truncation.
	var rem, quot uint64
	for _, word := range [2]uint64{hi, lo} {
		for bit := 63; bit >= 0; bit-- {
			rem = (rem << 1) | ((word >> uint(bit)) & 1)
			quot <<= 1
			if rem >= d {
				rem -= d
				quot |= 1
			}
		}
	}
	return quot, rem
}
