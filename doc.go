// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

// Package bignum provides arbitrary-precision signed integers and
// variable-precision decimal floating-point numbers, along with the
// multiplication dispatcher (schoolbook, Karatsuba, Toom-Cook-3,
// Toom-Cook-4/4.5, Toom-Cook-6.5-half) that backs them.
//
// BigInt stores its magnitude as a little-endian slice of base-1e16 limbs.
// BigFloat pairs a BigInt mantissa with a decimal exponent and is truncated
// to a process-wide precision after every arithmetic step. Neither type is
// safe for concurrent mutation; the package performs no internal
// concurrency and no I/O.
package bignum
