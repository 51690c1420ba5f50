// Copyright 2024 The numconv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numconv

// decimalDigits and hexadecimalDigits are byte-to-digit lookup tables: a
// zero entry means the byte is not a digit in that base; otherwise the low
// nibbles (or byte, for hex) hold the digit value with the 0x80 bit set as
// a present marker, so the zero entry and the "digit 0" entry are
// distinguishable.
var decimalDigits [256]uint8

var hexadecimalDigits [256]uint8

func init() {
	for c := byte('0'); c <= '9'; c++ {
		decimalDigits[c] = 0x80 | (c - '0')
		hexadecimalDigits[c] = 0x80 | (c - '0')
	}
	for c := byte('a'); c <= 'f'; c++ {
		hexadecimalDigits[c] = 0x80 | (c - 'a' + 10)
	}
	for c := byte('A'); c <= 'F'; c++ {
		hexadecimalDigits[c] = 0x80 | (c - 'A' + 10)
	}
}

// firstHundred holds the two-ASCII-digit representations of 0..99,
// concatenated, for fast two-digit-at-a-time emission in render_u64.
var firstHundred = [200]byte{
	'0', '0', '0', '1', '0', '2', '0', '3', '0', '4', '0', '5', '0', '6', '0', '7', '0', '8', '0', '9',
	'1', '0', '1', '1', '1', '2', '1', '3', '1', '4', '1', '5', '1', '6', '1', '7', '1', '8', '1', '9',
	'2', '0', '2', '1', '2', '2', '2', '3', '2', '4', '2', '5', '2', '6', '2', '7', '2', '8', '2', '9',
	'3', '0', '3', '1', '3', '2', '3', '3', '3', '4', '3', '5', '3', '6', '3', '7', '3', '8', '3', '9',
	'4', '0', '4', '1', '4', '2', '4', '3', '4', '4', '4', '5', '4', '6', '4', '7', '4', '8', '4', '9',
	'5', '0', '5', '1', '5', '2', '5', '3', '5', '4', '5', '5', '5', '6', '5', '7', '5', '8', '5', '9',
	'6', '0', '6', '1', '6', '2', '6', '3', '6', '4', '6', '5', '6', '6', '6', '7', '6', '8', '6', '9',
	'7', '0', '7', '1', '7', '2', '7', '3', '7', '4', '7', '5', '7', '6', '7', '7', '7', '8', '7', '9',
	'8', '0', '8', '1', '8', '2', '8', '3', '8', '4', '8', '5', '8', '6', '8', '7', '8', '8', '8', '9',
	'9', '0', '9', '1', '9', '2', '9', '3', '9', '4', '9', '5', '9', '6', '9', '7', '9', '8', '9', '9',
}

// hexLower is the lower-case hex alphabet used by the base-16 encoders.
const hexLower = "0123456789abcdef"

const base64EncodeStdAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"
const base64EncodeURLAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"

var base64DecodeStd [256]uint8
var base64DecodeURL [256]uint8

func init() {
	for i := range base64DecodeStd {
		base64DecodeStd[i] = 0x80
		base64DecodeURL[i] = 0x80
	}
	for i := 0; i < 64; i++ {
		base64DecodeStd[base64EncodeStdAlphabet[i]] = uint8(i)
		base64DecodeURL[base64EncodeURLAlphabet[i]] = uint8(i)
	}
}
