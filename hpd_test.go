// Copyright 2024 The numconv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numconv

import (
	"errors"
	"testing"
)

func digitsOf(s string) []uint8 {
	d := make([]uint8, len(s))
	for i, c := range s {
		d[i] = uint8(c - '0')
	}
	return d
}

var hpdParseTests = []struct {
	in           string
	numDigits    int
	digits       string
	decimalPoint int32
	negative     bool
}{
	{"0", 0, "", 0, false},
	{"1", 1, "1", 1, false},
	{"-1", 1, "1", 1, true},
	{"123.456", 6, "123456", 3, false},
	{"0.001", 1, "1", -2, false},
	{"1e3", 1, "1", 4, false},
	{"1.5e-2", 2, "15", -1, false},
	{"1,5", 2, "15", 1, false},
	{"1_234.5", 5, "12345", 4, false},
	{"100", 1, "1", 3, false},
}

func TestHPDParse(t *testing.T) {
	for _, tt := range hpdParseTests {
		var h highPrecDecimal
		if err := h.parse([]byte(tt.in)); err != nil {
			t.Errorf("parse(%q): unexpected error %v", tt.in, err)
			continue
		}
		if h.numDigits != tt.numDigits {
			t.Errorf("parse(%q): numDigits = %d; want %d", tt.in, h.numDigits, tt.numDigits)
		}
		want := digitsOf(tt.digits)
		for i := 0; i < tt.numDigits && i < h.numDigits; i++ {
			if h.digits[i] != want[i] {
				t.Errorf("parse(%q): digits[%d] = %d; want %d", tt.in, i, h.digits[i], want[i])
			}
		}
		if h.decimalPoint != tt.decimalPoint {
			t.Errorf("parse(%q): decimalPoint = %d; want %d", tt.in, h.decimalPoint, tt.decimalPoint)
		}
		if h.negative != tt.negative {
			t.Errorf("parse(%q): negative = %v; want %v", tt.in, h.negative, tt.negative)
		}
	}
}

var hpdParseErrorTests = []string{
	"", "_", "+", "-", "..", "1..2", "1.2.3", "01", "007", "1e", "1e+", "1e_",
	"1x", ".", "1.2.3e4",
}

func TestHPDParseErrors(t *testing.T) {
	for _, in := range hpdParseErrorTests {
		var h highPrecDecimal
		err := h.parse([]byte(in))
		if !errors.Is(err, ErrBadArgument) {
			t.Errorf("parse(%q): err = %v; want ErrBadArgument", in, err)
		}
	}
}

func TestHPDShiftRoundTrip(t *testing.T) {
	for _, in := range []string{"1", "123456789", "1.5", "999999999999"} {
		var h highPrecDecimal
		if err := h.parse([]byte(in)); err != nil {
			t.Fatalf("parse(%q): %v", in, err)
		}
		before := h
		h.smallLshift(13)
		h.smallRshift(13)
		if h.numDigits != before.numDigits || h.decimalPoint != before.decimalPoint {
			t.Errorf("shift round trip for %q: got {%d %v}, want {%d %v}", in, h.numDigits, h.decimalPoint, before.numDigits, before.decimalPoint)
			continue
		}
		for i := 0; i < h.numDigits; i++ {
			if h.digits[i] != before.digits[i] {
				t.Errorf("shift round trip for %q: digit[%d] = %d; want %d", in, i, h.digits[i], before.digits[i])
			}
		}
	}
}

var roundedIntegerTests = []struct {
	digits       string
	decimalPoint int32
	truncated    bool
	want         uint64
}{
	{"1", 1, false, 1},
	{"15", 1, false, 2},  // 1.5 -> round to even -> 2
	{"25", 1, false, 2},  // 2.5 -> round to even -> 2
	{"251", 1, false, 3}, // 2.51, not a tie -> rounds up
	{"", 0, false, 0},
	{"1", 19, false, ^uint64(0)},
}

func TestHPDRoundedInteger(t *testing.T) {
	for _, tt := range roundedIntegerTests {
		var h highPrecDecimal
		d := digitsOf(tt.digits)
		copy(h.digits[:], d)
		h.numDigits = len(d)
		h.decimalPoint = tt.decimalPoint
		h.truncated = tt.truncated
		if got := h.roundedInteger(); got != tt.want {
			t.Errorf("roundedInteger({%q, dp=%d}) = %d; want %d", tt.digits, tt.decimalPoint, got, tt.want)
		}
	}
}
