// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package bignum

import "fmt"

// BigInt is an arbitrary-precision signed integer. The zero value is not
// ready for use; construct one with NewBigInt, NewBigIntFromString, or one
// of the integer-width constructors.
//
// positive is true for values >= 0 (the canonical zero is always
// positive). mag is the little-endian, base-1e16 magnitude; after every
// exported operation it holds no trailing zero limb except for the
// single-limb canonical zero.
type BigInt struct {
	positive bool
	mag      limbs
}

// zeroBigInt returns a freshly owned canonical zero.
func zeroBigInt() *BigInt {
	return &BigInt{positive: true, mag: limbs{0}}
}

// NewBigInt constructs a BigInt from an int64.
func NewBigInt(v int64) *BigInt {
	if v == 0 {
		return zeroBigInt()
	}
	neg := v < 0
	u := uint64(v)
	if neg {
		u = uint64(-v)
	}
	return &BigInt{positive: !neg, mag: magFromUint64(u)}
}

// NewBigIntFromUint64 constructs a BigInt from a uint64.
func NewBigIntFromUint64(v uint64) *BigInt {
	if v == 0 {
		return zeroBigInt()
	}
	return &BigInt{positive: true, mag: magFromUint64(v)}
}

func magFromUint64(v uint64) limbs {
	if v == 0 {
		return limbs{0}
	}
	var out limbs
	for v > 0 {
		out = append(out, v%b)
		v /= b
	}
	return out
}

// NewBigIntFromString parses s into a BigInt. A leading '+' or '-' is
// permitted; the remainder must be decimal digits. When checkInput is
// false, s is trusted to already satisfy that grammar (used internally
// when a string was generated by this package itself) and the scan skips
// validation.
func NewBigIntFromString(s string, checkInput bool) (*BigInt, error) {
	if checkInput {
		if err := validateIntegerString(s); err != nil {
			return nil, err
		}
	}
	neg := false
	digits := s
	switch {
	case len(s) > 0 && s[0] == '+':
		digits = s[1:]
	case len(s) > 0 && s[0] == '-':
		neg = true
		digits = s[1:]
	}
	mag := magFromDecimalDigits(digits)
	if mag.isZero() {
		neg = false
	}
	return &BigInt{positive: !neg, mag: mag}, nil
}

// validateIntegerString enforces the grammar: optional leading sign,
// then one or more decimal digits, nothing else.
func validateIntegerString(s string) error {
	if s == "" {
		return fmt.Errorf("%w: empty string", ErrInvalidInput)
	}
	i := 0
	if s[0] == '+' || s[0] == '-' {
		i = 1
	}
	if i == len(s) {
		return fmt.Errorf("%w: no digits after sign: %q", ErrInvalidInput, s)
	}
	for ; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return fmt.Errorf("%w: non-digit character %q in %q", ErrInvalidInput, c, s)
		}
	}
	return nil
}

// magFromDecimalDigits converts a validated, sign-free decimal digit
// string into a base-b magnitude, most significant chunk first in the
// string and least significant limb first in the result.
func magFromDecimalDigits(digits string) limbs {
	// Strip leading zeros in the string so the chunking below doesn't
	// need to special-case them.
	i := 0
	for i < len(digits)-1 && digits[i] == '0' {
		i++
	}
	digits = digits[i:]
	if digits == "0" || digits == "" {
		return limbs{0}
	}
	n := len(digits)
	nLimbs := (n + logB - 1) / logB
	out := make(limbs, nLimbs)
	// Walk from the least-significant end in logB-digit chunks.
	end := n
	for k := 0; k < nLimbs; k++ {
		start := end - logB
		if start < 0 {
			start = 0
		}
		var v uint64
		for _, c := range digits[start:end] {
			v = v*10 + uint64(c-'0')
		}
		out[k] = v
		end = start
	}
	return normalize(out)
}

// Sign returns -1, 0, or +1.
func (x *BigInt) Sign() int {
	if x.mag.isZero() {
		return 0
	}
	if x.positive {
		return 1
	}
	return -1
}

// Abs returns |x| as a new value.
func (x *BigInt) Abs() *BigInt {
	return &BigInt{positive: true, mag: x.mag.clone()}
}

// Neg returns -x as a new value.
func (x *BigInt) Neg() *BigInt {
	if x.mag.isZero() {
		return zeroBigInt()
	}
	return &BigInt{positive: !x.positive, mag: x.mag.clone()}
}

// Cmp returns -1, 0, or +1 as x is less than, equal to, or greater than y.
func (x *BigInt) Cmp(y *BigInt) int {
	switch {
	case x.positive && !y.positive:
		return 1
	case !x.positive && y.positive:
		return -1
	case x.positive: // both positive
		return ucmp(x.mag, y.mag)
	default: // both negative
		return ucmp(y.mag, x.mag)
	}
}

// Equal reports whether x and y denote the same value.
func (x *BigInt) Equal(y *BigInt) bool { return x.Cmp(y) == 0 }

// Less reports whether x < y.
func (x *BigInt) Less(y *BigInt) bool { return x.Cmp(y) < 0 }

// Min returns the smaller of x and y.
func Min(x, y *BigInt) *BigInt {
	if x.Cmp(y) <= 0 {
		return x
	}
	return y
}

// Max returns the larger of x and y.
func Max(x, y *BigInt) *BigInt {
	if x.Cmp(y) >= 0 {
		return x
	}
	return y
}

// Add returns x+y.
func (x *BigInt) Add(y *BigInt) *BigInt {
	if x.positive == y.positive {
		return &BigInt{positive: x.positive, mag: uadd(x.mag, y.mag)}
	}
	// Opposite signs: subtract the smaller magnitude from the larger,
	// taking the sign of whichever has the larger magnitude.
	switch ucmp(x.mag, y.mag) {
	case 0:
		return zeroBigInt()
	case 1:
		return &BigInt{positive: x.positive, mag: usub(x.mag, y.mag)}
	default:
		return &BigInt{positive: y.positive, mag: usub(y.mag, x.mag)}
	}
}

// Sub returns x-y.
func (x *BigInt) Sub(y *BigInt) *BigInt {
	return x.Add(y.Neg())
}

// Mul returns x*y, selecting the multiplication algorithm via the package
// dispatcher (see dispatch.go).
func (x *BigInt) Mul(y *BigInt) *BigInt {
	if x.mag.isZero() || y.mag.isZero() {
		return zeroBigInt()
	}
	// Equality is tested by value, not identity, so that x.Mul(x) and the
	// less obvious x.Mul(y) with y merely equal in magnitude both take
	// the dedicated squaring path (spec §4.7).
	var mag limbs
	if ucmp(x.mag, y.mag) == 0 {
		mag = dispatchSqr(x.mag)
	} else {
		mag = dispatchMul(x.mag, y.mag)
	}
	return &BigInt{positive: x.positive == y.positive, mag: mag}
}

// Pow returns x^y (spec §6/§7's `^` operator). y must be non-negative — a
// negative exponent is a domain error — and its magnitude must fit in 64
// bits; an exponent whose magnitude exceeds 2^63-1 is rejected as
// ErrOverflow without attempting any multiplication.
func (x *BigInt) Pow(y *BigInt) (*BigInt, error) {
	if !y.positive && !y.mag.isZero() {
		return nil, fmt.Errorf("%w: negative exponent in BigInt.Pow", ErrDomain)
	}
	n, err := y.mag.toUint64()
	if err != nil {
		return nil, fmt.Errorf("%w: exponent in BigInt.Pow exceeds 64 bits", ErrOverflow)
	}
	result := NewBigInt(1)
	base := x
	for n > 0 {
		if n&1 == 1 {
			result = result.Mul(base)
		}
		n >>= 1
		if n > 0 {
			base = base.Mul(base)
		}
	}
	return result, nil
}

// String renders x in decimal with a leading '-' for negative values and
// no leading zeros (except the value zero itself).
func (x *BigInt) String() string {
	if x.mag.isZero() {
		return "0"
	}
	buf := make([]byte, 0, len(x.mag)*logB+1)
	if !x.positive {
		buf = append(buf, '-')
	}
	top := len(x.mag) - 1
	buf = append(buf, fmt.Sprintf("%d", x.mag[top])...)
	for i := top - 1; i >= 0; i-- {
		buf = append(buf, fmt.Sprintf("%016d", x.mag[i])...)
	}
	return string(buf)
}

// numLimbs reports the limb count of x's magnitude, the size measure the
// dispatcher (dispatch.go) compares against its thresholds.
func (x *BigInt) numLimbs() int { return len(x.mag) }
