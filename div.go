// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package bignum

import (
	"fmt"
	"strings"
)

// Div returns the integer quotient x div y (spec §4.11). |x|<|y| gives 0,
// |x|=|y| gives ±1; otherwise the quotient is computed via a high-
// precision BigFloat reciprocal of y rather than long division, following
// the source's approach of setting working precision to twice x's decimal
// capacity plus one limb (2*(16*len(x.mag)+16) digits), adding a
// half-precision epsilon to push the quotient
// estimate just past an exact boundary, and truncating at the decimal
// point. Division by zero is a domain error.
func (x *BigInt) Div(y *BigInt) (*BigInt, error) {
	if y.mag.isZero() {
		return nil, fmt.Errorf("%w: division by zero", ErrDomain)
	}
	switch ucmp(x.mag, y.mag) {
	case -1:
		return zeroBigInt(), nil
	case 0:
		if x.positive == y.positive {
			return NewBigInt(1), nil
		}
		return NewBigInt(-1), nil
	}

	saved := GetPrec()
	defer SetPrec(saved)
	workPrec := 2 * (16*len(x.mag) + 16)
	SetPrec(workPrec)

	xf := NewBigFloatFromBigInt(x.Abs())
	yf := NewBigFloatFromBigInt(y.Abs())
	recipY, err := reciprocal(yf, workPrec)
	if err != nil {
		return nil, err
	}
	quo := xf.Mul(recipY)

	eps := &BigFloat{mantissa: NewBigInt(1), exp: -(workPrec / 2)}
	quo = truncate(quo.Add(eps), workPrec)

	_, digits, pointPos := quo.decimalDigits()
	var intDigits string
	switch {
	case pointPos <= 0:
		intDigits = "0"
	case pointPos >= len(digits):
		intDigits = digits + strings.Repeat("0", pointPos-len(digits))
	default:
		intDigits = digits[:pointPos]
	}

	mag := magFromDecimalDigits(intDigits)
	result := &BigInt{positive: x.positive == y.positive, mag: mag}
	if result.mag.isZero() {
		result.positive = true
	}
	return result, nil
}

// Mod returns x mod y, defined as x - y*(x div y) (spec §4.11). Modulo by
// zero is a domain error.
func (x *BigInt) Mod(y *BigInt) (*BigInt, error) {
	if y.mag.isZero() {
		return nil, fmt.Errorf("%w: modulo by zero", ErrDomain)
	}
	q, err := x.Div(y)
	if err != nil {
		return nil, err
	}
	return x.Sub(y.Mul(q)), nil
}

// DivMod returns both x div y and x mod y from a single division.
func (x *BigInt) DivMod(y *BigInt) (quotient, remainder *BigInt, err error) {
	q, err := x.Div(y)
	if err != nil {
		return nil, nil, err
	}
	return q, x.Sub(y.Mul(q)), nil
}
