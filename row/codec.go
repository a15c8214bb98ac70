// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package row

import (
	"math"

	"golang.org/x/exp/constraints"
)

// codec converts between float64 cell values and a stored element type.
// Each element type reserves one stored value for "unassigned",
// which decodes to the caller's default.
type codec[T Cell] interface {
	encode(v float64) T
	decode(x T, def float64) float64
	unassigned() T
}

// floatCodec stores NaN with the sign bit set as unassigned.
// Missing values are stored as a positive NaN.
type floatCodec[T constraints.Float] struct{}

var unassignedFloat = math.Copysign(math.NaN(), -1)

func (floatCodec[T]) encode(v float64) T {
	if math.IsNaN(v) {
		return T(math.NaN())
	}
	return T(v)
}

func (floatCodec[T]) decode(x T, def float64) float64 {
	f := float64(x)
	if math.IsNaN(f) && math.Signbit(f) {
		return def
	}
	return f
}

func (floatCodec[T]) unassigned() T { return T(unassignedFloat) }

// intCodec reserves the two lowest values of T as the unassigned and
// missing codes. Values are truncated toward zero and clamped to the
// remaining range.
type intCodec[T constraints.Signed] struct {
	lo, hi T
}

func newIntCodec[T constraints.Signed]() intCodec[T] {
	var lo T = -1
	for lo*2 < lo {
		lo *= 2
	}
	return intCodec[T]{lo: lo, hi: -(lo + 1)}
}

func (c intCodec[T]) encode(v float64) T {
	if math.IsNaN(v) {
		return c.lo + 1
	}
	if v <= float64(c.lo+2) {
		return c.lo + 2
	}
	if v >= float64(c.hi) {
		return c.hi
	}
	return T(v)
}

func (c intCodec[T]) decode(x T, def float64) float64 {
	switch x {
	case c.lo:
		return def
	case c.lo + 1:
		return math.NaN()
	}
	return float64(x)
}

func (c intCodec[T]) unassigned() T { return c.lo }

// boolCodec stores booleans in an int8 with zero as unassigned,
// so that new cells need no initialization.
type boolCodec struct{}

const (
	boolUnassigned int8 = iota
	boolFalse
	boolTrue
	boolMissing
)

func (boolCodec) encode(v float64) int8 {
	switch {
	case math.IsNaN(v):
		return boolMissing
	case v != 0:
		return boolTrue
	}
	return boolFalse
}

func (boolCodec) decode(x int8, def float64) float64 {
	switch x {
	case boolFalse:
		return 0
	case boolTrue:
		return 1
	case boolMissing:
		return math.NaN()
	}
	return def
}

func (boolCodec) unassigned() int8 { return boolUnassigned }
