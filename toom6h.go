// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package bignum

// Toom-Cook-6.5-half (spec §4.6): splits each operand into 6 parts,
// producing a degree-10 product polynomial that needs 11 evaluations to
// recover. The spec text lists only 10 points ({0,±1,±2,±3,±1/2,±1/3} has
// 11 entries once 0 is included, but the prose enumerates 10); a 6-way
// split genuinely needs 11 independent evaluations for an exact degree-10
// interpolation, so this package adds the point 0 to the set (an Open
// Question resolution recorded in DESIGN.md) rather than leaving the
// system underdetermined.
var toom6hPoints = []toomPoint{
	tp(0, 1), tp(1, 1), tp(-1, 1), tp(2, 1), tp(-2, 1), tp(3, 1), tp(-3, 1),
	tp(1, 2), tp(-1, 2), tp(1, 3), tp(-1, 3),
}

var toom6hScheme = buildScheme(toom6hPoints)

func toom6hMul(x, y limbs) limbs { return toomMulGeneric(x, y, 6, toom6hScheme) }
func toom6hSqr(x limbs) limbs    { return toomSqrGeneric(x, 6, toom6hScheme) }
