// Copyright 2024 The numconv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numconv

import (
	"bytes"
	"math"
)

// nanBits is the quiet-NaN payload this package produces: "quiet vs
// nothing" is all orig §1 asks for, so every NaN this package returns
// carries the same all-ones payload (orig §6 bit-exact contract).
const nanBits = 0x7FFFFFFFFFFFFFFF

// parseSpecial recognizes the "inf"/"infinity"/"nan" literal grammar
// (orig §4.1 step 1 fallback, §6 "Special float"):
//
//	[_]* [+-]? [_]* (inf|infinity|nan) [_]*
//
// case-insensitively. It reports ok=false if s does not match at all,
// in which case the caller should propagate the original HPD parse
// error instead.
func parseSpecial(s []byte) (f float64, ok bool) {
	i, n := 0, len(s)
	for i < n && s[i] == '_' {
		i++
	}
	neg := false
	if i < n && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}
	for i < n && s[i] == '_' {
		i++
	}
	j := n
	for j > i && s[j-1] == '_' {
		j--
	}
	word := s[i:j]

	switch {
	case bytes.EqualFold(word, []byte("inf")), bytes.EqualFold(word, []byte("infinity")):
		return math.Inf(signOf(neg)), true
	case bytes.EqualFold(word, []byte("nan")):
		bits := uint64(nanBits)
		if neg {
			bits |= 1 << 63
		}
		return math.Float64frombits(bits), true
	default:
		return 0, false
	}
}

func signOf(neg bool) int {
	if neg {
		return -1
	}
	return 1
}
