// Copyright 2024 The numconv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package numconv implements the numeric string-conversion core shared by
a runtime's string-formatting and string-parsing paths: a
correctly-rounded decimal-to-binary64 parser, the lower-level parsing
primitives a binary64-to-decimal renderer builds on, integer parsing and
rendering, and the base-16/base-64 streaming transforms.

The decimal-to-binary64 path is built from two cooperating components,
leaves first:

  - a High-Precision Decimal (HPD): a fixed 500-digit significand plus a
    signed decimal-point index, used as arbitrary-scale scratch when an
    input can't be resolved any faster;
  - a Medium-Precision Binary (MPB): a 64-bit significand with a signed
    binary exponent, the fast-path converter.

ParseFloat64 tries MPB's Eisel-Lemire-style fast path first; whenever
that path can't prove its result correctly rounded, it falls back to
HPD's Clinger-style shift-and-scale loop, which always terminates with
the unique correctly-rounded binary64 for any finite input.

Every routine in this package is a pure function over caller-owned
buffers: none of them allocate, none of them panic, and none of them
retain state between calls. Parsing failures are reported through the
sentinel errors in errors.go; the base-16/base-64 transforms report
partial progress through TransformOutput instead, since unlike a single
number they can be resumed across calls with more input or a larger
destination buffer.
*/
package numconv
