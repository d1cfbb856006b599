// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package bignum

// frac is an exact rational number with an int64 numerator and a
// strictly positive int64 denominator, always kept in lowest terms. It
// exists solely to derive the constant interpolation matrices the
// Toom-Cook variants use to recover a product's coefficients from
// pointwise evaluations (spec §4.4-4.6, testable property #5): the fixed
// evaluation points and the weights Gaussian elimination derives from
// them are the only values that ever pass through a frac. No BigInt
// arithmetic uses this type; operand magnitudes can be arbitrarily large
// while the point sets are always a handful of small integers and unit
// fractions, so int64 numerators/denominators never come close to
// overflowing for the point sets this package defines.
type frac struct {
	num, den int64
}

func iabs(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}

func igcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	if a == 0 {
		return 1
	}
	return a
}

// ipow returns base^exp for exp >= 0 (0^0 = 1), via repeated integer
// multiplication; the exponents buildScheme needs are small enough that
// this never approaches int64 overflow for the package's point sets.
func ipow(base int64, exp int) int64 {
	r := int64(1)
	for i := 0; i < exp; i++ {
		r *= base
	}
	return r
}

func ilcm(a, b int64) int64 {
	return a / igcd(a, b) * b
}

func newFrac(num, den int64) frac {
	if den == 0 {
		panic("bignum: zero denominator in interpolation fraction")
	}
	if den < 0 {
		num, den = -num, -den
	}
	g := igcd(iabs(num), den)
	if g > 1 {
		num /= g
		den /= g
	}
	return frac{num, den}
}

func fracInt(n int64) frac { return frac{n, 1} }

func (a frac) add(b frac) frac { return newFrac(a.num*b.den+b.num*a.den, a.den*b.den) }
func (a frac) sub(b frac) frac { return newFrac(a.num*b.den-b.num*a.den, a.den*b.den) }
func (a frac) mul(b frac) frac { return newFrac(a.num*b.num, a.den*b.den) }
func (a frac) div(b frac) frac {
	if b.num == 0 {
		panic("bignum: division by zero fraction")
	}
	return newFrac(a.num*b.den, a.den*b.num)
}
func (a frac) isZero() bool { return a.num == 0 }

// solveLinear solves the k x k system a*x = b over exact rationals via
// Gauss-Jordan elimination with a nonzero-pivot search. a and b are both
// consumed (overwritten) by the elimination.
func solveLinear(a [][]frac, b []frac) []frac {
	k := len(a)
	for col := 0; col < k; col++ {
		pivot := -1
		for r := col; r < k; r++ {
			if !a[r][col].isZero() {
				pivot = r
				break
			}
		}
		if pivot < 0 {
			panic("bignum: singular toom interpolation matrix")
		}
		a[col], a[pivot] = a[pivot], a[col]
		b[col], b[pivot] = b[pivot], b[col]
		piv := a[col][col]
		for c := col; c < k; c++ {
			a[col][c] = a[col][c].div(piv)
		}
		b[col] = b[col].div(piv)
		for r := 0; r < k; r++ {
			if r == col || a[r][col].isZero() {
				continue
			}
			factor := a[r][col]
			for c := col; c < k; c++ {
				a[r][c] = a[r][c].sub(factor.mul(a[col][c]))
			}
			b[r] = b[r].sub(factor.mul(b[col]))
		}
	}
	return b
}

// invertMatrix returns the inverse of the k x k matrix a, solving for
// each standard basis vector in turn. a is left untouched.
func invertMatrix(a [][]frac) [][]frac {
	k := len(a)
	inv := make([][]frac, k)
	for i := range inv {
		inv[i] = make([]frac, k)
	}
	for col := 0; col < k; col++ {
		e := make([]frac, k)
		for i := range e {
			e[i] = fracInt(0)
		}
		e[col] = fracInt(1)
		acopy := make([][]frac, k)
		for i := range a {
			acopy[i] = append([]frac(nil), a[i]...)
		}
		x := solveLinear(acopy, e)
		for row := 0; row < k; row++ {
			inv[row][col] = x[row]
		}
	}
	return inv
}
