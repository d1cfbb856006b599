// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package bignum

// Toom-Cook-3 (spec §4.4): splits each operand into 3 parts and evaluates
// at {0, 1, -1, -2, infinity}, the classic Toom-33 point set. Used by the
// dispatcher (dispatch.go) from toom3Threshold up to, not including,
// toom4Threshold.

var toom3Points = []toomPoint{tp(0, 1), tp(1, 1), tp(-1, 1), tp(-2, 1), toomInf}

var toom3Scheme = buildScheme(toom3Points)

func toom3Mul(x, y limbs) limbs { return toomMulGeneric(x, y, 3, toom3Scheme) }
func toom3Sqr(x limbs) limbs    { return toomSqrGeneric(x, 3, toom3Scheme) }
