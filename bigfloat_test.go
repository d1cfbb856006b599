// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package bignum

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustBigFloatT(t *testing.T, s string) *BigFloat {
	t.Helper()
	v, err := NewBigFloatFromString(s)
	require.NoError(t, err, "NewBigFloatFromString(%q)", s)
	return v
}

func TestBigFloatStringPlainForm(t *testing.T) {
	cases := map[string]string{
		"0":       "0",
		"1":       "1.0",
		"-1":      "-1.0",
		"3.14":    "3.14",
		"0.001":   "0.001",
		"100":     "100.0",
		"-0.5":    "-0.5",
		"123.456": "123.456",
	}
	for in, want := range cases {
		v := mustBigFloatT(t, in)
		require.Equal(t, want, v.String(), "String(%q)", in)
	}
}

func TestBigFloatStringScientificBoundary(t *testing.T) {
	// exp beyond D-1 or below -10 switches to scientific notation. At a low
	// working precision, truncate keeps only a couple of limbs (32 digits)
	// of mantissa regardless of how large x.exp grows, so raising 10 to a
	// large power at low precision is a reliable way to push exp past the
	// truncated mantissa's digit count.
	saved := GetPrec()
	defer SetPrec(saved)
	SetPrec(5)
	ten := NewBigFloatFromInt64(10)
	big, err := ten.Pow(100)
	require.NoError(t, err)
	require.Contains(t, big.String(), "e+", "10^100 at low precision should render in scientific notation")

	tiny := mustBigFloatT(t, "0.00000000001") // 1e-11, exp = -11 < -10
	require.Contains(t, tiny.String(), "e-", "1e-11 should render in scientific notation")
}

func TestBigFloatRoundTripPlainForm(t *testing.T) {
	cases := []string{"3.14159", "0.001", "100.0", "-42.5", "0"}
	for _, s := range cases {
		v := mustBigFloatT(t, s)
		again := mustBigFloatT(t, v.String())
		require.True(t, v.Equal(again), "round trip of %q through String/Parse should be equal, got %q", s, again.String())
	}
}

func TestBigFloatAddSub(t *testing.T) {
	a := mustBigFloatT(t, "1.5")
	b := mustBigFloatT(t, "2.25")
	require.True(t, a.Add(b).Equal(mustBigFloatT(t, "3.75")))
	require.True(t, a.Add(b).Sub(b).Equal(a))
}

func TestBigFloatMul(t *testing.T) {
	a := mustBigFloatT(t, "2.5")
	b := mustBigFloatT(t, "4")
	require.True(t, a.Mul(b).Equal(mustBigFloatT(t, "10.0")))

	zero := zeroBigFloat()
	require.True(t, a.Mul(zero).Equal(zero), "x*0 should be 0")
}

func TestBigFloatCmpEqualLessMinMax(t *testing.T) {
	a := mustBigFloatT(t, "1.0")
	b := mustBigFloatT(t, "2.0")
	require.True(t, a.Less(b))
	require.False(t, b.Less(a))
	require.True(t, a.Equal(mustBigFloatT(t, "1.0")))
	require.Same(t, a, MinFloat(a, b))
	require.Same(t, b, MaxFloat(a, b))
}

func TestBigFloatAbsNegSign(t *testing.T) {
	neg := mustBigFloatT(t, "-3.5")
	require.Equal(t, -1, neg.Sign())
	require.Equal(t, 1, neg.Abs().Sign())
	require.True(t, neg.Neg().Equal(neg.Abs()))
}

func TestBigFloatMonotonicPrecision(t *testing.T) {
	// Scenario: 1/3 approximated at increasing working precisions should
	// agree on an increasing number of leading digits (spec §8's monotonic
	// precision property). Each result is compared with the previous one
	// over the previous working precision's digits only: the guard digits
	// truncate keeps beyond them are not exact.
	saved := GetPrec()
	defer SetPrec(saved)

	one := NewBigFloatFromInt64(1)
	three := NewBigFloatFromInt64(3)

	var prev string
	prevPrec := 0
	for _, prec := range []int{10, 20, 40, 80} {
		SetPrec(prec)
		recip, err := Reciprocal(three)
		require.NoError(t, err)
		got := one.Mul(recip).String()
		if prev != "" {
			n := len(prev)
			if len(got) < n {
				n = len(got)
			}
			if n > prevPrec+2 {
				n = prevPrec + 2
			}
			require.Equal(t, prev[:n], got[:n], "precision %d result should extend the shorter-precision result", prec)
		}
		prev = got
		prevPrec = prec
	}
}

func TestBigIntJSONRoundTrip(t *testing.T) {
	x := mustBigInt(t, "123456789012345678901234567890")
	data, err := json.Marshal(x)
	require.NoError(t, err)

	var got BigInt
	require.NoError(t, json.Unmarshal(data, &got))
	require.True(t, x.Equal(&got))
}

func TestBigIntTextRoundTrip(t *testing.T) {
	x := mustBigInt(t, "-987654321")
	text, err := x.MarshalText()
	require.NoError(t, err)

	var got BigInt
	require.NoError(t, got.UnmarshalText(text))
	require.True(t, x.Equal(&got))
}

func TestBigFloatJSONRoundTrip(t *testing.T) {
	x := mustBigFloatT(t, "3.14159")
	data, err := json.Marshal(x)
	require.NoError(t, err)

	var got BigFloat
	require.NoError(t, json.Unmarshal(data, &got))
	require.True(t, x.Equal(&got))
}

func TestBigFloatTextRoundTrip(t *testing.T) {
	x := mustBigFloatT(t, "-0.125")
	text, err := x.MarshalText()
	require.NoError(t, err)

	var got BigFloat
	require.NoError(t, got.UnmarshalText(text))
	require.True(t, x.Equal(&got))
}
