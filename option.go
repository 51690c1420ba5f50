// Copyright 2024 The numconv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numconv

// RenderOption holds the bitwise flags accepted by RenderU64/RenderI64
// (orig §4.6, §6 "Option flags").
type RenderOption uint32

const (
	// LeadingPlus prepends '+' to non-negative renders.
	LeadingPlus RenderOption = 0x200
	// AlignRight places the digits (and sign) at the end of dst, padding
	// the unused prefix with zero bytes, instead of the default
	// left-aligned placement.
	AlignRight RenderOption = 0x100
)

// Base64Option holds the bitwise flags accepted by the base-64 decode and
// encode transforms (orig §4.7, §6 "Option flags").
type Base64Option uint32

const (
	// Base64URLAlphabet selects the URL-and-filename-safe alphabet
	// (RFC 4648 §5) instead of the standard alphabet.
	Base64URLAlphabet Base64Option = 0x100
	// Base64AllowPadding permits (decode) or requires stripping ('=') the
	// final quantum's padding characters.
	Base64AllowPadding Base64Option = 0x001
	// Base64EmitPadding pads (encode) the output to a multiple of 4 bytes
	// with '='.
	Base64EmitPadding Base64Option = 0x002
)
