// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package bignum

import (
	"errors"
	"testing"
)

func mustBigInt(t *testing.T, s string) *BigInt {
	t.Helper()
	v, err := NewBigIntFromString(s, true)
	if err != nil {
		t.Fatalf("NewBigIntFromString(%q): %v", s, err)
	}
	return v
}

func TestNewBigIntFromStringRoundTrip(t *testing.T) {
	cases := []string{
		"0", "-0", "1", "-1", "9999999999999999",
		"10000000000000000", "-10000000000000000",
		"123456789012345678901234567890",
		"+42",
	}
	for _, s := range cases {
		v := mustBigInt(t, s)
		want := s
		if want == "-0" {
			want = "0"
		}
		if want[0] == '+' {
			want = want[1:]
		}
		if got := v.String(); got != want {
			t.Errorf("NewBigIntFromString(%q).String() = %q, want %q", s, got, want)
		}
	}
}

func TestNewBigIntFromStringInvalid(t *testing.T) {
	cases := []string{"", "+", "-", "12a3", "1.5", "--1"}
	for _, s := range cases {
		if _, err := NewBigIntFromString(s, true); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("NewBigIntFromString(%q) error = %v, want ErrInvalidInput", s, err)
		}
	}
}

func TestBigIntSignAbsNeg(t *testing.T) {
	pos := NewBigInt(5)
	neg := NewBigInt(-5)
	zero := NewBigInt(0)
	if pos.Sign() != 1 || neg.Sign() != -1 || zero.Sign() != 0 {
		t.Fatalf("unexpected signs: %d %d %d", pos.Sign(), neg.Sign(), zero.Sign())
	}
	if !pos.Abs().Equal(neg.Abs()) {
		t.Errorf("Abs(5) != Abs(-5)")
	}
	if !pos.Neg().Equal(neg) {
		t.Errorf("Neg(5) != -5")
	}
	if !zero.Neg().Equal(zero) {
		t.Errorf("Neg(0) != 0")
	}
}

func TestBigIntCmpEqualLess(t *testing.T) {
	a := NewBigInt(10)
	b := NewBigInt(20)
	c := NewBigInt(-20)
	if a.Cmp(b) >= 0 {
		t.Errorf("10 should be < 20")
	}
	if !a.Less(b) {
		t.Errorf("a.Less(b) should be true")
	}
	if c.Cmp(a) >= 0 {
		t.Errorf("-20 should be < 10")
	}
	if !a.Equal(NewBigInt(10)) {
		t.Errorf("10 should equal 10")
	}
	if Min(a, b) != a {
		t.Errorf("Min(10,20) should be the 10 value")
	}
	if Max(a, b) != b {
		t.Errorf("Max(10,20) should be the 20 value")
	}
}

func TestBigIntAddSub(t *testing.T) {
	cases := []struct {
		x, y, sum string
	}{
		{"1", "1", "2"},
		{"9999999999999999", "1", "10000000000000000"},
		{"-5", "3", "-2"},
		{"5", "-3", "2"},
		{"-5", "-3", "-8"},
		{"123456789012345678901234567890", "987654321098765432109876543210", "1111111110111111111011111111100"},
	}
	for _, c := range cases {
		x := mustBigInt(t, c.x)
		y := mustBigInt(t, c.y)
		if got := x.Add(y).String(); got != c.sum {
			t.Errorf("%s + %s = %s, want %s", c.x, c.y, got, c.sum)
		}
		want := mustBigInt(t, c.sum)
		if got := want.Sub(y).String(); got != c.x {
			t.Errorf("%s - %s = %s, want %s", c.sum, c.y, got, c.x)
		}
	}
}

func TestBigIntMulSmall(t *testing.T) {
	cases := []struct {
		x, y, want string
	}{
		{"0", "12345", "0"},
		{"1", "-7", "-7"},
		{"6", "7", "42"},
		{"99999999999999999999", "99999999999999999999", "9999999999999999999800000000000000000001"},
	}
	for _, c := range cases {
		x := mustBigInt(t, c.x)
		y := mustBigInt(t, c.y)
		if got := x.Mul(y).String(); got != c.want {
			t.Errorf("%s * %s = %s, want %s", c.x, c.y, got, c.want)
		}
	}
}

// TestBigIntMulMultiLimb exercises BigInt.Mul through the public surface on
// two-limb operands whose product spans three limbs, so schoolbookMul has
// to carry between limbs.
func TestBigIntMulMultiLimb(t *testing.T) {
	x := mustBigInt(t, "12345678901234567890")
	y := mustBigInt(t, "98765432109876543210")
	want := "1219326311370217952237463801111263526900"
	if got := x.Mul(y).String(); got != want {
		t.Errorf("12345678901234567890 * 98765432109876543210 = %s, want %s", got, want)
	}
}

// TestBigIntSquareMatchesSchoolbook confirms BigInt.Mul's equal-operand
// dedicated squaring path (dispatchSqr) agrees with schoolbookMul, the
// general multiplication routine, on the same value. A distinct BigInt
// holding an equal value also takes the squaring path in Mul, so x.Mul(y)
// is checked against the same reference.
func TestBigIntSquareMatchesSchoolbook(t *testing.T) {
	x := mustBigInt(t, "123456789012345678901234567890123456789")
	y := mustBigInt(t, "123456789012345678901234567890123456789")
	want := (&BigInt{positive: true, mag: schoolbookMul(x.mag, y.mag)}).String()
	if got := x.Mul(x).String(); got != want {
		t.Errorf("x.Mul(x) = %s, want %s", got, want)
	}
	if got := x.Mul(y).String(); got != want {
		t.Errorf("x.Mul(y) = %s, want %s", got, want)
	}
}

// TestBigIntPow checks internal consistency (x^a * x^b == x^(a+b)); the
// exact literal value of 5^100 is covered by scenario S2 in
// scenarios_test.go.
func TestBigIntPow(t *testing.T) {
	five := NewBigInt(5)
	got, err := five.Pow(NewBigInt(100))
	if err != nil {
		t.Fatalf("5^100: %v", err)
	}
	g1, err := five.Pow(NewBigInt(50))
	if err != nil {
		t.Fatal(err)
	}
	if g2 := g1.Mul(g1); !g2.Equal(got) {
		t.Errorf("5^50 * 5^50 != 5^100")
	}
}

func TestBigIntPowNegativeExponent(t *testing.T) {
	x := NewBigInt(2)
	if _, err := x.Pow(NewBigInt(-1)); !errors.Is(err, ErrDomain) {
		t.Errorf("2^-1 error = %v, want ErrDomain", err)
	}
}

func TestBigIntPowExponentOverflow(t *testing.T) {
	x := NewBigInt(2)
	huge := mustBigInt(t, "99999999999999999999999999999999999999")
	if _, err := x.Pow(huge); !errors.Is(err, ErrOverflow) {
		t.Errorf("2^huge error = %v, want ErrOverflow", err)
	}
}

func TestBigIntPowZero(t *testing.T) {
	x := NewBigInt(7)
	got, err := x.Pow(NewBigInt(0))
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(NewBigInt(1)) {
		t.Errorf("7^0 = %s, want 1", got.String())
	}
}

func TestBigIntFactorial(t *testing.T) {
	got, err := Factorial(10)
	if err != nil {
		t.Fatal(err)
	}
	if want := "3628800"; got.String() != want {
		t.Errorf("10! = %s, want %s", got.String(), want)
	}
	if _, err := Factorial(-1); !errors.Is(err, ErrDomain) {
		t.Errorf("Factorial(-1) error = %v, want ErrDomain", err)
	}
}

func TestBigIntBinomial(t *testing.T) {
	got, err := Binomial(10, 3)
	if err != nil {
		t.Fatal(err)
	}
	if want := "120"; got.String() != want {
		t.Errorf("C(10,3) = %s, want %s", got.String(), want)
	}
	if _, err := Binomial(5, 7); !errors.Is(err, ErrDomain) {
		t.Errorf("Binomial(5,7) error = %v, want ErrDomain", err)
	}
}
