// Copyright 2024 The numconv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numconv

import (
	"math"
	"math/big"
)

// hpdShiftMaxIncl is the largest small shift k supported directly by the
// hpdLeftShift table; small_lshift/small_rshift never receive a larger k
// (orig §4.2: 0 < k <= 60).
const hpdShiftMaxIncl = 60

// hpdLeftShift[k] packs, for 0 <= k <= 64, the larger of the two possible
// numbers of decimal digits that small_lshift(h, k) adds to h (one fewer
// is added when h's leading digits are less than 5**k) in its high 5
// bits, and the byte
// offset into powersOf5 of the big-endian digit string for 5**k in its
// low 11 bits (orig §3 "Power tables").
//
// Rather than transcribing a hand-generated literal table (the
// traditional C approach, as in google/wuffs's
// script/print-hpd-left-shift.go, a table-generator grounded on in the
// pack), the table is computed once here from the documented formula
// using math/big, the same library wuffs's own generator uses. This
// keeps the values provably correct by construction and avoids a
// transcription error in the 1308-digit powersOf5 table. See DESIGN.md for the rationale.
var hpdLeftShift [65]uint16

// powersOf5 is the concatenation "5","25","125",... of 5**k (as decimal
// digit values 0-9, not ASCII) for k in [1, hpdShiftMaxIncl], indexed via
// hpdLeftShift's offset field.
var powersOf5 []byte

func init() {
	const log2log10 = math.Ln2 / math.Ln10

	data := make([]byte, 0, 4096)
	five := big.NewInt(5)
	pow := new(big.Int)
	for k := int64(1); k <= hpdShiftMaxIncl; k++ {
		offset := len(data)
		numNewDigits := int64(log2log10*float64(k)) + 1

		pow.Exp(five, big.NewInt(k), nil)
		digits := pow.String()
		for _, c := range digits {
			data = append(data, byte(c-'0'))
		}

		hpdLeftShift[k] = uint16(numNewDigits<<11) | uint16(offset)
	}
	for k := 1 + hpdShiftMaxIncl; k < len(hpdLeftShift); k++ {
		hpdLeftShift[k] = uint16(len(data))
	}
	powersOf5 = data
}

// lshiftNumNewDigits returns the number of extra digits small_lshift(h, k)
// adds to h (orig §4.2).
func (h *highPrecDecimal) lshiftNumNewDigits(k uint) int {
	code := hpdLeftShift[k]
	newDigits := int(code >> 11)
	offset := int(code & 0x7FF)
	var length int
	if int(k)+1 < len(hpdLeftShift) {
		length = int(hpdLeftShift[k+1]&0x7FF) - offset
	}
	power := powersOf5[offset : offset+length]

	// Lexicographically compare h's leading digits against power, with
	// h implicitly zero-padded on the right. A shorter operand (fewer
	// significant digits) therefore compares as less whenever its
	// digits agree with power's prefix.
	less := false
	for i := 0; i < length; i++ {
		var hd byte
		if i < h.numDigits {
			hd = h.digits[i]
		}
		pd := power[i]
		if hd != pd {
			less = hd < pd
			break
		}
	}
	if less {
		return newDigits - 1
	}
	return newDigits
}
