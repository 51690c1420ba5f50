// Copyright 2024 The numconv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numconv

import "math/big"

// bigPowersOf10 holds normalized MPB approximations of 10**(8e-348) for
// e in [0,86], and smallPowersOf10 holds the same for 10**0..10**7 (orig
// §3 "Power tables"). Both are computed once here from the documented
// formula with math/big, mirroring the normalization loop in
// google/wuffs's script/print-mpb-powers-of-10.go table generator (a
// second pack example; the teacher itself has no code-generation habit
// of its own for its much shorter tables). See DESIGN.md for why this
// runs at package init instead of as a separate go:generate step.
var bigPowersOf10 [87]mediumPrecBin
var smallPowersOf10 [8]mediumPrecBin

// f64PowersOf10 holds the exact binary64 values of 10**0 .. 10**22; all
// 23 are exactly representable, so Go's own compile-time constant
// arithmetic (arbitrary precision, rounded once to float64) suffices and
// no runtime computation is needed.
var f64PowersOf10 = [23]float64{
	1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9, 1e10,
	1e11, 1e12, 1e13, 1e14, 1e15, 1e16, 1e17, 1e18, 1e19, 1e20, 1e21, 1e22,
}

func init() {
	for i, e := 0, -348; e <= 340; i, e = i+1, e+8 {
		bigPowersOf10[i] = normalizedPowerOf10(e)
	}
	for e := 0; e <= 7; e++ {
		smallPowersOf10[e] = normalizedPowerOf10(e)
	}
}

// normalizedPowerOf10 computes a 64-bit normalized mantissa m and
// exponent n such that m * 2**n == 10**e, rounded to nearest (ties to
// even would require more care, but the 64-bit truncation here only
// ever rounds up on an exact tie of the dropped bit, matching the
// documented round-up rule used by both wuffs and simdjson-family
// Eisel-Lemire table generators).
func normalizedPowerOf10(e int) mediumPrecBin {
	const n = 2048 // large enough that 1<<n exceeds 1e348

	one := big.NewInt(1)
	ten := big.NewInt(10)
	two64 := new(big.Int).Lsh(one, 64)

	z := new(big.Int).Lsh(one, n)
	if e >= 0 {
		z.Mul(z, new(big.Int).Exp(ten, big.NewInt(int64(e)), nil))
	} else {
		z.Div(z, new(big.Int).Exp(ten, big.NewInt(int64(-e)), nil))
	}

	roundUp := false
	shift := int32(-n)
	for z.Cmp(two64) >= 0 {
		roundUp = z.Bit(0) > 0
		z.Rsh(z, 1)
		shift++
	}
	if roundUp {
		z.Add(z, one)
	}

	return mediumPrecBin{mantissa: z.Uint64(), exp2: shift}
}
