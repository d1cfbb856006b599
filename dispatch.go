// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package bignum

// The multiplication dispatcher (spec §4.7). This follows the same
// function-pointer-table idiom as the teacher's CPU-feature dispatcher
// (dispatch.go/dispatch_generic.go in mshafiee/bigmath) — a small struct
// of selected implementations built once — except the selection key here
// is operand limb-count rather than detected instruction-set support.
//
// Thresholds are tunable named constants, per spec §4.7; the values below
// sit in the middle of the ranges the spec's source exploration covered
// (KARATSUBA in {43,50,65}, TOOM3 ~250-350, TOOM4 ~600-900, TOOM6H
// ~800-900). toom6hSqrThreshold follows spec §9's note that the
// authoritative variant keeps squaring on toom4Sqr well past
// toom6hThreshold, switching to toom6hSqr only beyond a much larger bound.
const (
	karatsubaThreshold = 48
	toom3Threshold     = 300
	toom4Threshold     = 700
	toom6hThreshold    = 850
	toom6hSqrThreshold = toom6hThreshold * 50
)

// mulAlgo names the multiplication algorithms the dispatcher chooses
// among; exported within the package so benchmarks and tests can name a
// specific path directly instead of relying on operand size alone.
type mulAlgo int

const (
	algoSchoolbook mulAlgo = iota
	algoKaratsuba
	algoToom3
	algoToom4
	algoToom6h
)

// selectMulAlgo reports which algorithm dispatchMul would use for
// multiplying two distinct operands whose smaller limb count is n.
func selectMulAlgo(n int) mulAlgo {
	switch {
	case n < karatsubaThreshold:
		return algoSchoolbook
	case n < toom3Threshold:
		return algoKaratsuba
	case n < toom4Threshold:
		return algoToom3
	case n < toom6hThreshold:
		return algoToom4
	default:
		return algoToom6h
	}
}

// selectSqrAlgo reports which algorithm dispatchSqr would use for an
// n-limb operand. It mirrors selectMulAlgo except for the top band, where
// squaring stays on toom4Sqr until a much larger threshold before
// promoting to toom6hSqr (spec §9, "authoritative variant").
func selectSqrAlgo(n int) mulAlgo {
	switch {
	case n < karatsubaThreshold:
		return algoSchoolbook
	case n < toom3Threshold:
		return algoKaratsuba
	case n < toom4Threshold:
		return algoToom3
	case n < toom6hSqrThreshold:
		return algoToom4
	default:
		return algoToom6h
	}
}

// dispatchMul multiplies two magnitudes known to differ in value (equal
// operands are routed to dispatchSqr by BigInt.Mul before reaching here).
func dispatchMul(x, y limbs) limbs {
	m, n := len(x), len(y)
	if m < n {
		x, y = y, x
		m, n = n, m
	}
	algo := selectMulAlgo(n)
	traceMulAlgo(algo, m, n)
	// Karatsuba and Toom-Cook are inefficient on strongly unequal
	// operands; whenever the larger operand has more limbs than the
	// smaller one, pad the smaller one with leading zero limbs so the
	// split recursion sees balanced halves, then strip the padding back
	// off the low end of the result (spec §4.7 "Padding").
	pad := 0
	if algo != algoSchoolbook && m > n {
		pad = m - n
		y = shiftLimbs(y, pad)
		n = m
	}
	var result limbs
	switch algo {
	case algoSchoolbook:
		result = schoolbookMul(x, y)
	case algoKaratsuba:
		result = karatsubaMul(x, y)
	case algoToom3:
		result = toom3Mul(x, y)
	case algoToom4:
		result = toom4hMul(x, y)
	default:
		result = toom6hMul(x, y)
	}
	if pad > 0 {
		result = stripLowZeroLimbs(result, pad)
	}
	return result
}

// dispatchSqr squares a magnitude, choosing the dedicated squaring variant
// of whichever algorithm the dispatcher selects for this size.
func dispatchSqr(x limbs) limbs {
	algo := selectSqrAlgo(len(x))
	traceSqrAlgo(algo, len(x))
	switch algo {
	case algoSchoolbook:
		return schoolbookSqr(x)
	case algoKaratsuba:
		return karatsubaSqr(x)
	case algoToom3:
		return toom3Sqr(x)
	case algoToom4:
		return toom4Sqr(x)
	default:
		return toom6hSqr(x)
	}
}

// stripLowZeroLimbs removes k limbs from the low (least-significant) end
// of z, the inverse of the zero-padding dispatchMul applies before a
// Karatsuba/Toom call on strongly unequal operands. The stripped limbs are
// always zero for a correctly padded multiplication; this only trims the
// slice, it never re-normalizes away real data.
func stripLowZeroLimbs(z limbs, k int) limbs {
	if k >= len(z) {
		return limbs{0}
	}
	return normalize(z[k:].clone())
}
