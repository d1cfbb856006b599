// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package bignum

// Shared Toom-Cook scaffolding (spec §4.4-4.6): splitting a magnitude
// into k parts, evaluating the resulting degree-(k-1) polynomial at a
// fixed rational point with an integer scaled-Horner computation, and
// inverting the fixed evaluation matrix a point set implies exactly once
// via frac.go's generic rational solver rather than hand-transcribing a
// closed-form interpolation formula for each variant. This mirrors spec's
// testable property #5 directly in production code, not just in a test.

// toomPoint is one evaluation point of a Toom-Cook scheme. inf marks the
// point at infinity, whose row in the evaluation matrix is simply the
// standard basis vector selecting the leading coefficient; num/den are
// unused when inf is set.
type toomPoint struct {
	num, den int64
	inf      bool
}

func tp(num, den int64) toomPoint { return toomPoint{num: num, den: den} }

var toomInf = toomPoint{inf: true}

// splitK splits magnitude x into k parts of partLen limbs each,
// least-significant part first, zero-padded so every part is a
// fixed-degree polynomial coefficient regardless of x's actual length.
func splitK(x limbs, k, partLen int) []limbs {
	parts := make([]limbs, k)
	for i := 0; i < k; i++ {
		start := i * partLen
		if start >= len(x) {
			parts[i] = limbs{0}
			continue
		}
		end := start + partLen
		if end > len(x) {
			end = len(x)
		}
		p := make(limbs, partLen)
		copy(p, x[start:end])
		parts[i] = normalize(p)
	}
	return parts
}

// evalAt evaluates the polynomial with coefficients parts[0..k-1]
// (parts[i] is the coefficient of x^i, each a nonnegative magnitude) at
// the rational point num/den, scaled by den^(k-1) so the result is always
// an exact integer: evalAt returns den^(k-1) * P(num/den).
func evalAt(parts []limbs, num, den int64) *BigInt {
	k := len(parts)
	v := &BigInt{positive: true, mag: parts[k-1].clone()}
	numBI := NewBigInt(num)
	denBI := NewBigInt(den)
	scale := NewBigInt(1)
	for i := k - 2; i >= 0; i-- {
		v = v.Mul(numBI)
		scale = scale.Mul(denBI)
		term := (&BigInt{positive: true, mag: parts[i].clone()}).Mul(scale)
		v = v.Add(term)
	}
	return v
}

// evalLeading returns the coefficient of the highest-degree term: the
// "evaluation at infinity" spec §4.4 describes.
func evalLeading(parts []limbs) *BigInt {
	return &BigInt{positive: true, mag: parts[len(parts)-1].clone()}
}

func evalPoints(parts []limbs, points []toomPoint) []*BigInt {
	w := make([]*BigInt, len(points))
	for i, p := range points {
		if p.inf {
			w[i] = evalLeading(parts)
		} else {
			w[i] = evalAt(parts, p.num, p.den)
		}
	}
	return w
}

// toomScheme holds the precomputed interpolation weights for a fixed
// point set, derived once via frac.go's generic solver and reused by
// every multiplication/squaring that goes through this scheme.
type toomScheme struct {
	points  []toomPoint
	weights [][]int64 // weights[i][j]: integer coefficient of w_j toward rowDen[i]*c_i
	rowDen  []int64   // common denominator per output row
}

// buildScheme inverts the len(points) x len(points) evaluation matrix the
// point set implies, then rescales each row of the inverse to a single
// common integer denominator so applying it to the pointwise products
// reduces to an integer multiply-accumulate followed by one exact
// division per output coefficient.
func buildScheme(points []toomPoint) *toomScheme {
	n := len(points)
	m := make([][]frac, n)
	for j, p := range points {
		row := make([]frac, n)
		if p.inf {
			for i := range row {
				row[i] = fracInt(0)
			}
			row[n-1] = fracInt(1)
		} else {
			// evalAt's scaled-Horner pass returns, for a k-coefficient
			// polynomial, sum_i c_i * num^i * den^(k-1-i) rather than the
			// unscaled sum_i c_i * (num/den)^i; wx[j]*wy[j] carries that
			// same scaling through to the combined n-coefficient product
			// (n = 2k-1), so the evaluation matrix this scheme inverts
			// must be built in the same scaled terms, not the raw
			// fractional powers of the point itself.
			for i := 0; i < n; i++ {
				row[i] = fracInt(ipow(p.num, i) * ipow(p.den, n-1-i))
			}
		}
		m[j] = row
	}
	inv := invertMatrix(m)
	weights := make([][]int64, n)
	rowDen := make([]int64, n)
	for i := 0; i < n; i++ {
		den := int64(1)
		for j := 0; j < n; j++ {
			den = ilcm(den, inv[i][j].den)
		}
		row := make([]int64, n)
		for j := 0; j < n; j++ {
			scaled := inv[i][j].mul(frac{den, 1})
			if scaled.den != 1 {
				panic("bignum: interpolation row failed to clear denominators")
			}
			row[j] = scaled.num
		}
		weights[i] = row
		rowDen[i] = den
	}
	return &toomScheme{points: points, weights: weights, rowDen: rowDen}
}

// interpolate recovers the coefficients of the product polynomial from
// its evaluations w (ordered the same as s.points) using the precomputed
// weights.
func (s *toomScheme) interpolate(w []*BigInt) []*BigInt {
	n := len(s.points)
	out := make([]*BigInt, n)
	for i := 0; i < n; i++ {
		acc := NewBigInt(0)
		for j := 0; j < n; j++ {
			c := s.weights[i][j]
			if c == 0 {
				continue
			}
			acc = acc.Add(w[j].Mul(NewBigInt(c)))
		}
		q, r := divSmall(acc.mag, uint64(s.rowDen[i]))
		if r != 0 {
			panic("bignum: toom interpolation produced a non-integer coefficient")
		}
		out[i] = &BigInt{positive: acc.positive || q.isZero(), mag: q}
	}
	return out
}

// combine assembles the final magnitude result = sum_i coeffs[i] *
// b^(i*partLen), the inverse of splitK.
func combine(coeffs []*BigInt, partLen int) limbs {
	result := limbs{0}
	for i := len(coeffs) - 1; i >= 0; i-- {
		c := coeffs[i]
		if c.mag.isZero() {
			continue
		}
		if !c.positive {
			panic("bignum: toom interpolation produced a negative product coefficient")
		}
		result = udadd(result, shiftLimbs(c.mag, i*partLen))
	}
	return result
}

// toomMulGeneric runs one full Toom-Cook multiplication pass: split both
// operands into k parts, evaluate both at every point in the scheme,
// multiply pointwise (recursing back through the package dispatcher), and
// interpolate the product's coefficients.
func toomMulGeneric(x, y limbs, k int, scheme *toomScheme) limbs {
	n := len(x)
	if len(y) > n {
		n = len(y)
	}
	partLen := (n + k - 1) / k
	xp := splitK(x, k, partLen)
	yp := splitK(y, k, partLen)
	wx := evalPoints(xp, scheme.points)
	wy := evalPoints(yp, scheme.points)
	w := make([]*BigInt, len(wx))
	for i := range wx {
		w[i] = wx[i].Mul(wy[i])
	}
	return combine(scheme.interpolate(w), partLen)
}

// toomSqrGeneric is toomMulGeneric specialized to x*x, evaluating x once
// and squaring each evaluation instead of evaluating both operands.
func toomSqrGeneric(x limbs, k int, scheme *toomScheme) limbs {
	partLen := (len(x) + k - 1) / k
	xp := splitK(x, k, partLen)
	wx := evalPoints(xp, scheme.points)
	w := make([]*BigInt, len(wx))
	for i := range wx {
		w[i] = wx[i].Mul(wx[i])
	}
	return combine(scheme.interpolate(w), partLen)
}
