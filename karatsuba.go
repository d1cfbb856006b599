// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package bignum

// Karatsuba multiplication: one-split recursion as described in spec §4.3,
// with the middle term built destructively the way §9 describes (the
// cross-term product P1 is formed from differences that are never read
// again afterward). The split point and recursive structure follow the
// same shape as math/big's nat.karatsuba and its decimal-radix cousin in
// the retrieved db47h/decimal package, adapted to base 1e16 limbs and to
// recurse back through the package dispatcher (dispatch.go) rather than
// calling itself unconditionally, so a sub-product that grows past this
// algorithm's own threshold can promote itself to Toom-Cook.

// splitAt splits magnitude x into (low, high) at limb index a: x == high*b^a
// + low. Both halves are freshly allocated.
func splitAt(x limbs, a int) (low, high limbs) {
	if a >= len(x) {
		return x.clone(), limbs{0}
	}
	low = normalize(x[:a].clone())
	high = normalize(x[a:].clone())
	return low, high
}

// shiftLimbs multiplies x by b^a by prepending a zero limbs.
func shiftLimbs(x limbs, a int) limbs {
	if x.isZero() || a == 0 {
		return x.clone()
	}
	z := make(limbs, a+len(x))
	copy(z[a:], x)
	return z
}

// absDiffMag returns (|x-y|, neg) where neg reports whether x<y.
func absDiffMag(x, y limbs) (limbs, bool) {
	switch ucmp(x, y) {
	case 0:
		return limbs{0}, false
	case 1:
		return usub(x, y), false
	default:
		return usub(y, x), true
	}
}

// karatsubaSplit picks the shared split point for two magnitudes the way
// spec §4.3 defines it: a = min(len(x), len(y)) / 2.
func karatsubaSplit(m, n int) int {
	if m < n {
		return m / 2
	}
	return n / 2
}

func karatsubaMul(x, y limbs) limbs {
	a := karatsubaSplit(len(x), len(y))
	if a == 0 {
		return schoolbookMul(x, y)
	}
	x0, x1 := splitAt(x, a)
	y0, y1 := splitAt(y, a)

	p0 := dispatchMul(x0, y0)
	p2 := dispatchMul(x1, y1)
	dx, dxNeg := absDiffMag(x1, x0)
	dy, dyNeg := absDiffMag(y1, y0)
	p1 := dispatchMul(dx, dy)
	p1Neg := dxNeg != dyNeg

	// result's high part is captured (via shiftLimbs' copy) before p2 is
	// consumed destructively below, the way §9 describes the cross-term
	// construction: every buffer folded in here is never read again
	// afterward.
	result := shiftLimbs(p2, 2*a)

	// mid = P2 + P0 - P1 (always >= 0: P0+P2-P1 == x0*y1 + x1*y0). p2 is
	// consumed by udadd; p0 is read but not consumed, so it is still
	// available for the final accumulation below.
	mid := udadd(p2, p0)
	if p1Neg {
		mid = udadd(mid, p1)
	} else {
		mid = udsub(mid, p1)
	}

	result = udadd(result, shiftLimbs(mid, a))
	result = udadd(result, p0)
	return result
}

func karatsubaSqr(x limbs) limbs {
	a := len(x) / 2
	if a == 0 {
		return schoolbookSqr(x)
	}
	x0, x1 := splitAt(x, a)

	p0 := dispatchSqr(x0)
	p2 := dispatchSqr(x1)
	dx, _ := absDiffMag(x1, x0)
	p1 := dispatchSqr(dx) // (x1-x0)^2 == (x0-x1)^2, sign never matters here

	result := shiftLimbs(p2, 2*a)

	mid := udadd(p2, p0)
	mid = udsub(mid, p1)

	result = udadd(result, shiftLimbs(mid, a))
	result = udadd(result, p0)
	return result
}
