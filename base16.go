// Copyright 2024 The numconv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numconv

// Decode2 decodes src as a stream of two-hex-character units into dst,
// one output byte per unit (orig §4.7). closed indicates src will not
// grow further: a trailing odd character is then bad-data instead of
// short-read.
func Decode2(dst, src []byte, closed bool) TransformOutput {
	return decodeHex(dst, src, closed, 0)
}

// Decode4 decodes src as a stream of four-character units into dst, one
// output byte per unit, ignoring the first two characters of each unit
// (the `\x` of a literal such as `\xAB`) and decoding the last two as
// hex (orig §4.7).
func Decode4(dst, src []byte, closed bool) TransformOutput {
	return decodeHex(dst, src, closed, 2)
}

func decodeHex(dst, src []byte, closed bool, skip int) TransformOutput {
	unit := skip + 2
	si, di := 0, 0
	status := StatusOK

	for {
		if di >= len(dst) {
			status = StatusShortWrite
			break
		}
		remaining := len(src) - si
		if remaining < unit {
			if remaining == 0 {
				status = StatusOK
			} else if closed {
				status = StatusBadData
			} else {
				status = StatusShortRead
			}
			break
		}
		hi := hexadecimalDigits[src[si+skip]]
		lo := hexadecimalDigits[src[si+skip+1]]
		if hi&0x80 == 0 || lo&0x80 == 0 {
			status = StatusBadData
			break
		}
		dst[di] = (hi&0x0F)<<4 | (lo & 0x0F)
		di++
		si += unit
	}

	return TransformOutput{NumDst: di, NumSrc: si, Status: status}
}

// Encode2 encodes src into dst as a two-hex-character unit per input
// byte (orig §4.7).
func Encode2(dst, src []byte) TransformOutput {
	return encodeHex(dst, src, 2, "")
}

// Encode4 encodes src into dst as a four-character `\xAB`-style unit per
// input byte (orig §4.7).
func Encode4(dst, src []byte) TransformOutput {
	return encodeHex(dst, src, 4, `\x`)
}

func encodeHex(dst, src []byte, unit int, prefix string) TransformOutput {
	si, di := 0, 0
	status := StatusOK

	for si < len(src) {
		if len(dst)-di < unit {
			status = StatusShortWrite
			break
		}
		copy(dst[di:di+len(prefix)], prefix)
		b := src[si]
		dst[di+unit-2] = hexLower[b>>4]
		dst[di+unit-1] = hexLower[b&0x0F]
		di += unit
		si++
	}

	return TransformOutput{NumDst: di, NumSrc: si, Status: status}
}
