// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package bignum

import (
	"encoding/json"
	"strings"
)

// String renders x as a decimal string (spec §6): non-zero values whose
// decimal exponent lies in [-10, D-1] (D the digit count of the
// mantissa) get an explicit decimal point; values outside that range use
// scientific notation d.dddde<exp>. If the fractional part would be
// empty, the formatter appends a trailing "0" after the point.
func (x *BigFloat) String() string {
	neg, digits, pointPos := x.decimalDigits()
	if digits == "0" {
		return "0"
	}
	d := len(digits)
	sign := ""
	if neg {
		sign = "-"
	}
	if x.exp >= -10 && x.exp <= d-1 {
		return sign + plainForm(digits, pointPos)
	}
	return sign + scientificForm(digits, x.exp)
}

// plainForm places digits' decimal point at pointPos digits from the
// start, padding with zeros on whichever side is needed.
func plainForm(digits string, pointPos int) string {
	switch {
	case pointPos <= 0:
		return "0." + strings.Repeat("0", -pointPos) + digits
	case pointPos >= len(digits):
		intPart := digits + strings.Repeat("0", pointPos-len(digits))
		return intPart + ".0"
	default:
		return digits[:pointPos] + "." + digits[pointPos:]
	}
}

// scientificForm renders digits as d.ddd...e<exp>, one digit before the
// point.
func scientificForm(digits string, exp int) string {
	frac := digits[1:]
	if frac == "" {
		frac = "0"
	}
	return digits[:1] + "." + frac + "e" + formatSignedInt(exp)
}

func formatSignedInt(n int) string {
	if n < 0 {
		return "-" + formatUint(uint(-n))
	}
	return "+" + formatUint(uint(n))
}

func formatUint(n uint) string {
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}

// MarshalText implements encoding.TextMarshaler for BigInt, the way the
// teacher's serialization.go backs JSON with the decimal text form so
// arbitrarily large values survive a round trip.
func (x *BigInt) MarshalText() ([]byte, error) { return []byte(x.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler for BigInt.
func (x *BigInt) UnmarshalText(text []byte) error {
	v, err := NewBigIntFromString(string(text), true)
	if err != nil {
		return err
	}
	*x = *v
	return nil
}

// MarshalJSON implements json.Marshaler for BigInt, encoding it as a JSON
// string so precision survives round trips through numeric JSON decoders.
func (x *BigInt) MarshalJSON() ([]byte, error) { return json.Marshal(x.String()) }

// UnmarshalJSON implements json.Unmarshaler for BigInt.
func (x *BigInt) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v, err := NewBigIntFromString(s, true)
	if err != nil {
		return err
	}
	*x = *v
	return nil
}

// MarshalText implements encoding.TextMarshaler for BigFloat.
func (x *BigFloat) MarshalText() ([]byte, error) { return []byte(x.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler for BigFloat. Scientific
// notation is not accepted on input, matching BigFloat's string
// constructor (spec §6).
func (x *BigFloat) UnmarshalText(text []byte) error {
	v, err := NewBigFloatFromString(string(text))
	if err != nil {
		return err
	}
	*x = *v
	return nil
}

// MarshalJSON implements json.Marshaler for BigFloat.
func (x *BigFloat) MarshalJSON() ([]byte, error) { return json.Marshal(x.String()) }

// UnmarshalJSON implements json.Unmarshaler for BigFloat.
func (x *BigFloat) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v, err := NewBigFloatFromString(s)
	if err != nil {
		return err
	}
	*x = *v
	return nil
}
