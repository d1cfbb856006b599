// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package bignum

import (
	"fmt"
	"strconv"
)

// precSchedule builds the doubling precision schedule spec §4.9/§4.10
// describe: starting at the target precision t, halve repeatedly down to
// 16, then reverse so the caller walks up from 16 to (approximately) t.
func precSchedule(t int) []int {
	var s []int
	for p := t; p > 16; p /= 2 {
		s = append(s, p)
	}
	s = append(s, 16)
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
	return s
}

// topDigits returns up to n leading decimal digits of |x|'s mantissa, for
// seeding a double-precision float64 estimate.
func topDigits(x *BigFloat, n int) string {
	s := x.mantissa.Abs().String()
	if len(s) > n {
		s = s[:n]
	}
	return s
}

// reciprocalSeed produces a crude double-precision estimate of 1/x,
// tracking x's decimal exponent so the estimate lands at roughly the
// right order of magnitude before the Newton-Raphson corrections run
// (spec §4.9: "take up to the top 10 digits of x.intPart, form 1/yfloat
// ..., and shift its exponent to track x.exp").
func reciprocalSeed(x *BigFloat) *BigFloat {
	d := digitCount(x.mantissa.mag)
	n := d
	if n > 10 {
		n = 10
	}
	top := topDigits(x, n)
	m, err := strconv.ParseFloat(top, 64)
	if err != nil || m == 0 {
		m = 1
	}
	est := 1.0 / m
	seed, err := NewBigFloatFromString(strconv.FormatFloat(est, 'f', 17, 64))
	if err != nil {
		seed = NewBigFloatFromInt64(1)
	}
	if !x.mantissa.positive {
		seed = seed.Neg()
	}
	seed.exp += (n - 1) - x.exp
	return seed
}

// reciprocal computes 1/x at working precision prec via Newton-Raphson
// with the doubling precision schedule (spec §4.9). It restores the
// caller's precision context before returning on every exit path.
func reciprocal(x *BigFloat, prec int) (*BigFloat, error) {
	if x.mantissa.mag.isZero() {
		return nil, fmt.Errorf("%w: reciprocal of zero", ErrDomain)
	}
	saved := GetPrec()
	defer SetPrec(saved)

	one := NewBigFloatFromInt64(1)
	y := reciprocalSeed(x)

	SetPrec(16)
	xAt16 := truncate(x, 16)
	for i := 0; i < 4; i++ {
		y = newtonReciprocalStep(xAt16, y, one, 16)
	}

	for _, rung := range precSchedule(prec) {
		if rung <= 16 {
			continue
		}
		work := rung + 16
		SetPrec(work)
		y = newtonReciprocalStep(truncate(x, work), y, one, work)
	}

	work := prec + 16
	SetPrec(work)
	y = newtonReciprocalStep(truncate(x, work), y, one, work)

	return truncate(y, prec), nil
}

// newtonReciprocalStep performs one correction y <- y + y*(1 - x*y) at
// the given working precision.
func newtonReciprocalStep(x, y, one *BigFloat, work int) *BigFloat {
	traceNewtonRung("reciprocal", work)
	corr := one.Sub(x.Mul(y))
	y = y.Add(y.Mul(corr))
	return truncate(y, work)
}

// Reciprocal returns 1/x truncated to the current working precision.
func Reciprocal(x *BigFloat) (*BigFloat, error) {
	return reciprocal(x, GetPrec())
}
