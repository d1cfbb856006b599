// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package bignum

import (
	"fmt"
	"math"
	"strconv"
)

// sqrtSeed produces a crude double-precision estimate of sqrt(x) by
// taking up to 10 leading decimal digits as a float64 mantissa and
// halving the decimal exponent (absorbing one extra power of ten into
// the mantissa first when the exponent is odd, since sqrt(10^(2k+1)) is
// not itself a power of ten).
func sqrtSeed(x *BigFloat) *BigFloat {
	d := digitCount(x.mantissa.mag)
	n := d
	if n > 10 {
		n = 10
	}
	top := topDigits(x, n)
	m, err := strconv.ParseFloat(top, 64)
	if err != nil || m <= 0 {
		m = 1
	}
	e := x.exp - (n - 1)
	if e%2 != 0 {
		if e > 0 {
			m *= 10
			e--
		} else {
			m /= 10
			e++
		}
	}
	est := math.Sqrt(m)
	seed, err := NewBigFloatFromString(strconv.FormatFloat(est, 'f', 17, 64))
	if err != nil {
		seed = NewBigFloatFromInt64(1)
	}
	seed.exp += e / 2
	return seed
}

// Sqrt computes sqrt(x) at the current working precision (spec §4.10).
// Negative x is a domain error. The computation runs in two phases: a
// fixed twelve-iteration Babylonian refinement of sqrt(x) itself at
// precision 16 (seeded by sqrtSeed), followed by inverting that estimate
// and refining the inverse square root with the doubling precision
// schedule, finally multiplying by x to recover sqrt(x) = x*(1/sqrt(x)).
func Sqrt(x *BigFloat) (*BigFloat, error) {
	if x.Sign() < 0 {
		return nil, fmt.Errorf("%w: sqrt of negative value", ErrDomain)
	}
	if x.Sign() == 0 {
		return zeroBigFloat(), nil
	}
	prec := GetPrec()
	saved := prec
	defer SetPrec(saved)

	half := mustBigFloat("0.5")
	one := NewBigFloatFromInt64(1)

	SetPrec(16)
	xAt16 := truncate(x, 16)
	y := sqrtSeed(x)
	for i := 0; i < 12; i++ {
		// y <- y*0.5 + x*0.5*(1/y)
		inv, err := reciprocal(y, 16)
		if err != nil {
			return nil, err
		}
		y = truncate(y.Mul(half).Add(xAt16.Mul(half).Mul(inv)), 16)
	}

	z, err := reciprocal(y, 16) // z ~= 1/sqrt(x)
	if err != nil {
		return nil, err
	}

	for _, rung := range precSchedule(prec) {
		if rung <= 16 {
			continue
		}
		work := rung + 16
		SetPrec(work)
		z = sqrtInverseStep(truncate(x, work), z, one, half, work)
	}

	work := prec + 16
	SetPrec(work)
	z = sqrtInverseStep(truncate(x, work), z, one, half, work)

	result := truncate(x.Mul(z), prec)
	return result, nil
}

// sqrtInverseStep performs one self-correcting inverse-square-root
// update z <- z + z*(1 - x*z^2)*0.5 at the given working precision.
func sqrtInverseStep(x, z, one, half *BigFloat, work int) *BigFloat {
	traceNewtonRung("sqrt", work)
	z2 := z.Mul(z)
	corr := one.Sub(x.Mul(z2)).Mul(half)
	z = z.Add(z.Mul(corr))
	return truncate(z, work)
}

// mustBigFloat parses a trusted literal decimal string (used internally
// for fixed constants like 0.5) and panics on failure, since the input is
// always a compile-time-known literal rather than external data.
func mustBigFloat(s string) *BigFloat {
	v, err := NewBigFloatFromString(s)
	if err != nil {
		panic("bignum: invalid internal decimal literal " + s)
	}
	return v
}
