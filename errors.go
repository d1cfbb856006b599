// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package bignum

import "errors"

// Sentinel error kinds. Callers should use errors.Is against these rather
// than comparing error strings; every error this package returns wraps one
// of them with fmt.Errorf("...: %w", ...) for context.
var (
	// ErrInvalidInput is returned for malformed numeric strings: bad
	// characters, a misplaced or duplicated sign, more than one decimal
	// point, or an empty string.
	ErrInvalidInput = errors.New("bignum: invalid input")

	// ErrDomain is returned for arguments outside an operation's domain:
	// a negative argument to Sqrt, Factorial or Binomial (or k > n for
	// Binomial), a negative exponent to Pow, division or modulo by zero, or
	// the reciprocal of zero.
	ErrDomain = errors.New("bignum: domain error")

	// ErrOverflow is returned when an exponent supplied as a BigInt to Pow
	// has a magnitude above 2^63-1.
	ErrOverflow = errors.New("bignum: exponent overflow")
)

// All errors are raised eagerly at the first checkable condition and abort
// the current call; there is no partial-result reporting and no retry
// contract. Invariants internal to the limb representation (normalization,
// carry bounds) are enforced by construction and are not re-validated at
// runtime; a violation there panics instead of returning an error, since it
// indicates a bug in this package rather than bad caller input.
