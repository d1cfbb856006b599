// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package bignum

import "fmt"

// Factorial computes n! as a BigInt via binary-splitting product: the
// range [2, n] is repeatedly halved into two sub-ranges multiplied
// together via the package dispatcher, rather than a flat left-to-right
// accumulation. This keeps the intermediate products roughly balanced in
// size, which matters once n! grows past the Karatsuba/Toom-Cook
// thresholds — the same workload spec §1 calls out (binary-splitting
// factorial backs Chudnovsky-style pi computation). n must be
// non-negative.
func Factorial(n int64) (*BigInt, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: factorial of a negative number", ErrDomain)
	}
	if n < 2 {
		return NewBigInt(1), nil
	}
	return rangeProduct(2, n), nil
}

// rangeProduct returns the product of all integers in [lo, hi] via binary
// splitting.
func rangeProduct(lo, hi int64) *BigInt {
	if lo == hi {
		return NewBigInt(lo)
	}
	if hi-lo == 1 {
		return NewBigInt(lo).Mul(NewBigInt(hi))
	}
	mid := lo + (hi-lo)/2
	return rangeProduct(lo, mid).Mul(rangeProduct(mid+1, hi))
}

// Binomial computes C(n, k) = n! / (k! * (n-k)!), accumulated
// incrementally (multiply by n-k+i, divide by i) so every intermediate
// value stays close to the final result's size instead of computing three
// independent, much larger factorials. Requires 0 <= k <= n.
func Binomial(n, k int64) (*BigInt, error) {
	if n < 0 || k < 0 {
		return nil, fmt.Errorf("%w: binomial coefficient with a negative argument", ErrDomain)
	}
	if k > n {
		return nil, fmt.Errorf("%w: binomial coefficient with k > n", ErrDomain)
	}
	if k > n-k {
		k = n - k // C(n,k) == C(n,n-k); work with the smaller side
	}
	if k == 0 {
		return NewBigInt(1), nil
	}
	result := NewBigInt(1)
	for i := int64(1); i <= k; i++ {
		result = result.Mul(NewBigInt(n - k + i))
		q, err := result.Div(NewBigInt(i))
		if err != nil {
			return nil, err
		}
		result = q
	}
	return result, nil
}
