// Copyright 2024 The numconv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numconv

// hpdDigitsCap is the fixed capacity of a highPrecDecimal's digit buffer
// (orig §3 "HPD": up to 500 digits). Parsing any finite decimal that maps
// to a finite binary64 never needs more; longer digit strings are
// collapsed via the truncated flag with no loss of conversion accuracy.
const hpdDigitsCap = 500

// Sentinels for decimalPoint once it falls outside the working range
// [-1023, +1023]: no further arithmetic is meaningful past this point,
// since the driver's own, tighter thresholds (orig §4.5 steps 2-3: -326
// for zero, +310 for infinity) will already have fired.
const (
	hpdDecimalPointZeroSentinel = -1024
	hpdDecimalPointInfSentinel  = 1024
	hpdDecimalPointMin          = -1023
	hpdDecimalPointMax          = 1023
)

// highPrecDecimal (HPD) is the fixed-capacity arbitrary-scale decimal
// scratch described in orig §3. It represents
//
//	(-1)^negative * 0.digits * 10^decimalPoint
//
// with the digit string read after inserting the decimal point at
// position decimalPoint (which may precede or follow the stored digits,
// padded with implicit zeroes). truncated records that at least one
// non-zero digit beyond position hpdDigitsCap was seen during lexing or
// shifting; it only ever affects round-half-to-even decisions.
//
// The zero value is a valid representation of +0.
type highPrecDecimal struct {
	numDigits    int
	digits       [hpdDigitsCap]uint8
	decimalPoint int32
	negative     bool
	truncated    bool
}

// trim drops trailing zero digits. It must be called after every mutation
// that may have introduced them (orig §3 invariants).
func (h *highPrecDecimal) trim() {
	for h.numDigits > 0 && h.digits[h.numDigits-1] == 0 {
		h.numDigits--
	}
	if h.numDigits == 0 {
		h.decimalPoint = 0
	}
}

// isZero reports whether h represents +0 or -0, including the clamped
// "definite zero" sentinel produced by lexing an absurdly small exponent.
func (h *highPrecDecimal) isZero() bool {
	return h.numDigits == 0
}

// setZero resets h to an exact signed zero, preserving the sign.
func (h *highPrecDecimal) setZero() {
	h.numDigits = 0
	h.decimalPoint = 0
	h.truncated = false
}

// parse lexes bytes as a decimal (orig §4.1). It accepts an optional
// sign, an optional leading run of underscores, a digit sequence with at
// most one decimal separator ('.' or ','), and an optional exponent
// introduced by 'E'/'e'. Underscores may appear anywhere among digits and
// as padding around the sign and exponent sign. Leading zeroes in the
// integer part are rejected once a bare '0' has been seen with no
// non-zero digit and no separator yet.
func (h *highPrecDecimal) parse(s []byte) error {
	*h = highPrecDecimal{}

	i, n := 0, len(s)
	skipUnderscores := func() {
		for i < n && s[i] == '_' {
			i++
		}
	}

	skipUnderscores()
	if i < n && (s[i] == '+' || s[i] == '-') {
		h.negative = s[i] == '-'
		i++
		skipUnderscores()
	}

	sawDigits := false
	sawDot := false
	intLeadingZero := false
	nd := 0 // count of significant digits seen, uncapped
	dp := 0

digitLoop:
	for i < n {
		c := s[i]
		switch {
		case c == '_':
			i++
		case c == '.' || c == ',':
			if sawDot {
				return ErrBadArgument
			}
			sawDot = true
			dp = nd
			i++
		case c >= '0' && c <= '9':
			if !sawDot && intLeadingZero {
				return ErrBadArgument
			}
			sawDigits = true
			if c == '0' && nd == 0 {
				dp--
				if !sawDot {
					intLeadingZero = true
				}
				i++
				continue
			}
			nd++
			if nd <= hpdDigitsCap {
				h.digits[nd-1] = c - '0'
			} else if c != '0' {
				h.truncated = true
			}
			i++
		default:
			break digitLoop
		}
	}

	if !sawDigits {
		return ErrBadArgument
	}
	if !sawDot {
		dp = nd
	}
	h.numDigits = nd
	if h.numDigits > hpdDigitsCap {
		h.numDigits = hpdDigitsCap
	}

	decimalPoint := int64(dp)

	if i < n && (s[i] == 'e' || s[i] == 'E') {
		i++
		for i < n && s[i] == '_' {
			i++
		}
		expNeg := false
		if i < n && (s[i] == '+' || s[i] == '-') {
			expNeg = s[i] == '-'
			i++
			for i < n && s[i] == '_' {
				i++
			}
		}
		expDigits := 0
		exp := int64(0)
		for i < n {
			c := s[i]
			if c == '_' {
				i++
				continue
			}
			if c < '0' || c > '9' {
				break
			}
			expDigits++
			if exp < 1<<40 {
				exp = exp*10 + int64(c-'0')
			}
			i++
		}
		if expDigits == 0 {
			return ErrBadArgument
		}
		if expNeg {
			exp = -exp
		}
		decimalPoint += exp
	}

	if i != n {
		return ErrBadArgument
	}

	switch {
	case decimalPoint < hpdDecimalPointZeroSentinel:
		decimalPoint = hpdDecimalPointZeroSentinel
	case decimalPoint > hpdDecimalPointInfSentinel:
		decimalPoint = hpdDecimalPointInfSentinel
	}
	h.decimalPoint = int32(decimalPoint)
	if h.decimalPoint <= hpdDecimalPointZeroSentinel {
		h.setZero()
	}

	h.trim()
	return nil
}

// roundedInteger extracts round-half-to-even(h) as a u64 (orig §4.3),
// ignoring sign; the driver reattaches it. Values whose decimal point
// places them above the u64 range saturate to u64 max.
func (h *highPrecDecimal) roundedInteger() uint64 {
	if h.numDigits == 0 || h.decimalPoint < 0 {
		return 0
	}
	if h.decimalPoint > 18 {
		return ^uint64(0)
	}

	dp := int(h.decimalPoint)
	var n uint64
	for i := 0; i < dp; i++ {
		var d uint8
		if i < h.numDigits {
			d = h.digits[i]
		}
		n = n*10 + uint64(d)
	}

	roundUp := false
	if dp < h.numDigits {
		next := h.digits[dp]
		switch {
		case next > 5:
			roundUp = true
		case next == 5:
			if h.truncated || dp+1 < h.numDigits {
				roundUp = true
			} else if dp > 0 && h.digits[dp-1]%2 == 1 {
				roundUp = true
			}
		}
	}
	if roundUp {
		n++
	}
	return n
}
