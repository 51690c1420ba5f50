// Copyright 2024 The numconv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numconv

import "testing"

func TestDecode2(t *testing.T) {
	dst := make([]byte, 16)
	out := Decode2(dst, []byte("6A6b"), true)
	if out.Status != StatusOK || out.NumSrc != 4 || out.NumDst != 2 {
		t.Fatalf("Decode2(%q) = %+v", "6A6b", out)
	}
	if got := string(dst[:out.NumDst]); got != "jk" {
		t.Errorf("Decode2(%q) = %q; want %q", "6A6b", got, "jk")
	}
}

func TestDecode2OddClosed(t *testing.T) {
	dst := make([]byte, 16)
	out := Decode2(dst, []byte("6A6"), true)
	if out.Status != StatusBadData {
		t.Errorf("Decode2(odd, closed) status = %v; want StatusBadData", out.Status)
	}
}

func TestDecode2OddOpen(t *testing.T) {
	dst := make([]byte, 16)
	out := Decode2(dst, []byte("6A6"), false)
	if out.Status != StatusShortRead {
		t.Errorf("Decode2(odd, open) status = %v; want StatusShortRead", out.Status)
	}
	if out.NumSrc != 2 || out.NumDst != 1 {
		t.Errorf("Decode2(odd, open) = %+v; want NumSrc=2 NumDst=1", out)
	}
}

func TestDecode2ShortWrite(t *testing.T) {
	dst := make([]byte, 1)
	out := Decode2(dst, []byte("6A6b"), true)
	if out.Status != StatusShortWrite || out.NumDst != 1 || out.NumSrc != 2 {
		t.Errorf("Decode2(short dst) = %+v", out)
	}
}

func TestEncode2RoundTrip(t *testing.T) {
	src := []byte("jk")
	dst := make([]byte, 4)
	out := Encode2(dst, src)
	if out.Status != StatusOK || string(dst[:out.NumDst]) != "6a6b" {
		t.Errorf("Encode2(%q) = %+v", src, out)
	}
}

func TestDecode4(t *testing.T) {
	dst := make([]byte, 4)
	out := Decode4(dst, []byte(`\x6A\x6b`), true)
	if out.Status != StatusOK || out.NumDst != 2 {
		t.Fatalf("Decode4 = %+v", out)
	}
	if got := string(dst[:out.NumDst]); got != "jk" {
		t.Errorf("Decode4 = %q; want %q", got, "jk")
	}
}

func TestEncode4(t *testing.T) {
	dst := make([]byte, 8)
	out := Encode4(dst, []byte("jk"))
	if out.Status != StatusOK || string(dst[:out.NumDst]) != `\x6a\x6b` {
		t.Errorf("Encode4(%q) = %+v dst=%q", "jk", out, dst[:out.NumDst])
	}
}
