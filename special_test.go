// Copyright 2024 The numconv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numconv

import (
	"math"
	"testing"
)

func TestParseSpecial(t *testing.T) {
	tests := []struct {
		in      string
		wantInf int // -1, 0 (not inf), +1
		wantNaN bool
		neg     bool
	}{
		{"inf", 1, false, false},
		{"-inf", -1, false, true},
		{"+Infinity", 1, false, false},
		{"INFINITY", 1, false, false},
		{"nan", 0, true, false},
		{"-nan", 0, true, true},
		{"_inf_", 1, false, false},
		{"_+_inf_", 1, false, false},
	}
	for _, tt := range tests {
		f, ok := parseSpecial([]byte(tt.in))
		if !ok {
			t.Errorf("parseSpecial(%q): ok = false", tt.in)
			continue
		}
		switch {
		case tt.wantNaN:
			if !math.IsNaN(f) {
				t.Errorf("parseSpecial(%q) = %v; want NaN", tt.in, f)
			}
			bits := math.Float64bits(f)
			negBit := bits>>63 == 1
			if negBit != tt.neg {
				t.Errorf("parseSpecial(%q) sign bit = %v; want %v", tt.in, negBit, tt.neg)
			}
		default:
			if !math.IsInf(f, tt.wantInf) {
				t.Errorf("parseSpecial(%q) = %v; want Inf(%d)", tt.in, f, tt.wantInf)
			}
		}
	}
}

func TestParseSpecialRejects(t *testing.T) {
	for _, in := range []string{"", "infi", "1.0", "na", "infinityx"} {
		if _, ok := parseSpecial([]byte(in)); ok {
			t.Errorf("parseSpecial(%q): ok = true, want false", in)
		}
	}
}
