// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package bignum

// Schoolbook multiplication, grounded on the half-limb carry-deferral
// trick described in spec §4.2: instead of multiplying full base-b limbs
// (which would require 128-bit intermediate products), each limb is split
// into two base-b2 half-limbs first. Every pairwise half-limb product is
// below b2^2 = 1e16, so up to a few hundred of them can be summed into a
// single uint64 accumulator slot before it needs reducing — exactly the
// deferred-carry idea GMP and math/big's nat.go use for binary limbs,
// adapted to base 1e16/1e8 here.
//
// Only used below karatsubaThreshold (dispatch.go), so the accumulator
// slots never see more than a few hundred terms and never approach 2^64.

// splitHalf expands a base-b magnitude into base-b2 half-limbs,
// least-significant half-limb first.
func splitHalf(x limbs) []uint64 {
	h := make([]uint64, 2*len(x))
	for i, v := range x {
		h[2*i] = v % b2
		h[2*i+1] = v / b2
	}
	return h
}

// fuseHalf folds base-b2 half-limbs back into base-b limbs after the
// carry-reduction pass below has brought every slot into [0, b2).
func fuseHalf(h []uint64) limbs {
	n := (len(h) + 1) / 2
	out := make(limbs, n)
	for k := 0; k < n; k++ {
		lo := h[2*k]
		hi := uint64(0)
		if 2*k+1 < len(h) {
			hi = h[2*k+1]
		}
		out[k] = lo + hi*b2
	}
	return normalize(out)
}

// reduceHalf propagates carries through a half-limb accumulator buffer so
// every slot ends up in [0, b2); it is shared by schoolbookMul and
// schoolbookSqr.
func reduceHalf(acc []uint64) {
	var carry uint64
	for i := range acc {
		v := acc[i] + carry
		carry = v / b2
		acc[i] = v % b2
	}
	if carry != 0 {
		// The caller always sizes acc with two extra half-limb slots
		// beyond 2m+2n, enough headroom for the true product to fit; a
		// nonzero carry here means that invariant was violated.
		panic("bignum: schoolbook accumulator overflowed its padding")
	}
}

// schoolbookMul multiplies two magnitudes via the half-limb split method.
func schoolbookMul(x, y limbs) limbs {
	if x.isZero() || y.isZero() {
		return limbs{0}
	}
	xh := splitHalf(x)
	yh := splitHalf(y)
	acc := make([]uint64, len(xh)+len(yh)+2)
	for i, xi := range xh {
		if xi == 0 {
			continue
		}
		for j, yj := range yh {
			acc[i+j] += xi * yj
		}
	}
	reduceHalf(acc)
	return fuseHalf(acc)
}

// schoolbookSqr squares a magnitude. For i<k it adds 2*x[i]*x[k] to slot
// i+k once instead of computing x[i]*x[k] twice, halving the inner
// multiplication count relative to schoolbookMul(x, x).
func schoolbookSqr(x limbs) limbs {
	if x.isZero() {
		return limbs{0}
	}
	xh := splitHalf(x)
	n := len(xh)
	acc := make([]uint64, 2*n+2)
	for i := 0; i < n; i++ {
		xi := xh[i]
		if xi == 0 {
			continue
		}
		acc[2*i] += xi * xi
		for k := i + 1; k < n; k++ {
			acc[i+k] += 2 * xi * xh[k]
		}
	}
	reduceHalf(acc)
	return fuseHalf(acc)
}
