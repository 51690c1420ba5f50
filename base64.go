// Copyright 2024 The numconv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numconv

// DecodeBase64 decodes src as a stream of base-64 quantums into dst
// (orig §4.7). closed indicates src will not grow further, allowing a
// final partial quantum of 2 or 3 characters to be resolved. A padded
// 4-character quantum (accepted only when Base64AllowPadding is set and
// it ends src) is decoded whether or not src is closed.
func DecodeBase64(dst, src []byte, closed bool, opt Base64Option) TransformOutput {
	table := &base64DecodeStd
	if opt&Base64URLAlphabet != 0 {
		table = &base64DecodeURL
	}
	allowPad := opt&Base64AllowPadding != 0

	si, di := 0, 0
	status := StatusOK

loop:
	for len(src)-si >= 4 {
		quad := src[si : si+4]
		pad := 0
		if quad[3] == '=' {
			pad = 1
			if quad[2] == '=' {
				pad = 2
			}
		}
		if pad > 0 {
			if !allowPad || len(src)-si != 4 {
				status = StatusBadData
				break loop
			}
		}
		n := 3 - pad
		if len(dst)-di < n {
			status = StatusShortWrite
			break loop
		}
		if !decodeBase64Unit(dst[di:di+n], quad[:4-pad], table) {
			status = StatusBadData
			break loop
		}
		di += n
		si += 4
	}

	if status == StatusOK {
		switch len(src) - si {
		case 0:
			// status already StatusOK
		case 1:
			if closed {
				status = StatusBadData
			} else {
				status = StatusShortRead
			}
		case 2, 3:
			if !closed {
				status = StatusShortRead
			} else {
				tail := src[si:]
				n := len(tail) - 1
				switch {
				case len(dst)-di < n:
					status = StatusShortWrite
				case !decodeBase64Unit(dst[di:di+n], tail, table):
					status = StatusBadData
				default:
					di += n
					si += len(tail)
				}
			}
		}
	}

	return TransformOutput{NumDst: di, NumSrc: si, Status: status}
}

// decodeBase64Unit decodes a 2, 3, or 4 character (padding already
// stripped) base-64 run into floor(len(chars)*6/8) output bytes.
func decodeBase64Unit(dst []byte, chars []byte, table *[256]uint8) bool {
	var v uint32
	for _, c := range chars {
		d := table[c]
		if d&0x80 != 0 {
			return false
		}
		v = v<<6 | uint32(d)
	}
	switch len(chars) {
	case 2:
		v <<= 12
		dst[0] = byte(v >> 16)
	case 3:
		v <<= 6
		dst[0] = byte(v >> 16)
		dst[1] = byte(v >> 8)
	case 4:
		dst[0] = byte(v >> 16)
		dst[1] = byte(v >> 8)
		dst[2] = byte(v)
	}
	return true
}

// EncodeBase64 encodes src into dst as base-64 (orig §4.7), padding the
// final quantum with '=' to a multiple of four characters when
// Base64EmitPadding is set.
func EncodeBase64(dst, src []byte, opt Base64Option) TransformOutput {
	alphabet := base64EncodeStdAlphabet
	if opt&Base64URLAlphabet != 0 {
		alphabet = base64EncodeURLAlphabet
	}
	emitPad := opt&Base64EmitPadding != 0

	si, di := 0, 0
	status := StatusOK

	for len(src)-si >= 3 {
		if len(dst)-di < 4 {
			status = StatusShortWrite
			break
		}
		encodeBase64FullUnit(dst[di:di+4], src[si:si+3], alphabet)
		di += 4
		si += 3
	}

	if status == StatusOK {
		rem := len(src) - si
		if rem == 1 || rem == 2 {
			n := rem + 1
			if emitPad {
				n = 4
			}
			if len(dst)-di < n {
				status = StatusShortWrite
			} else {
				encodeBase64TailUnit(dst[di:di+n], src[si:si+rem], alphabet, emitPad)
				di += n
				si += rem
			}
		}
	}

	return TransformOutput{NumDst: di, NumSrc: si, Status: status}
}

func encodeBase64FullUnit(dst []byte, src []byte, alphabet string) {
	v := uint32(src[0])<<16 | uint32(src[1])<<8 | uint32(src[2])
	dst[0] = alphabet[v>>18&0x3F]
	dst[1] = alphabet[v>>12&0x3F]
	dst[2] = alphabet[v>>6&0x3F]
	dst[3] = alphabet[v&0x3F]
}

func encodeBase64TailUnit(dst []byte, src []byte, alphabet string, emitPad bool) {
	v := uint32(src[0]) << 16
	if len(src) == 2 {
		v |= uint32(src[1]) << 8
	}
	dst[0] = alphabet[v>>18&0x3F]
	dst[1] = alphabet[v>>12&0x3F]
	if len(src) == 1 {
		if emitPad {
			dst[2] = '='
			dst[3] = '='
		}
		return
	}
	dst[2] = alphabet[v>>6&0x3F]
	if emitPad {
		dst[3] = '='
	}
}
