// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package attribute

import "math"

// Transformation maps a stored value to the value seen through an attribute.
type Transformation interface {
	// Transform returns the transformed value of a stored value.
	Transform(att *Attribute, value float64) float64

	// Clone returns an independent copy of the transformation.
	Clone() Transformation
}

// Reversible is a [Transformation] that can map values back to
// their stored form, which is required for writing through it.
type Reversible interface {
	Transformation

	// Inverse returns the stored value for a transformed value.
	Inverse(att *Attribute, value float64) float64
}

// Linear is a reversible transformation computing value*Scale + Offset,
// e.g. for normalization. Scale must not be 0.
type Linear struct {
	Scale  float64
	Offset float64
}

// NewNormalization returns the [Linear] transformation mapping
// values with the given mean and standard deviation to z-scores.
func NewNormalization(mean, std float64) *Linear {
	if std == 0 {
		std = 1
	}
	return &Linear{Scale: 1 / std, Offset: -mean / std}
}

func (l *Linear) Transform(_ *Attribute, v float64) float64 { return v*l.Scale + l.Offset }
func (l *Linear) Inverse(_ *Attribute, v float64) float64   { return (v - l.Offset) / l.Scale }
func (l *Linear) Clone() Transformation                     { cp := *l; return &cp }

// Clip limits values to the range [Min, Max]. It is not reversible.
type Clip struct {
	Min float64
	Max float64
}

func (c *Clip) Transform(_ *Attribute, v float64) float64 {
	if math.IsNaN(v) {
		return v
	}
	return min(max(v, c.Min), c.Max)
}

func (c *Clip) Clone() Transformation { cp := *c; return &cp }

// Func is a transformation given by plain functions.
// Use [NewFunc] to obtain a [Reversible] one when Backward is given.
type Func struct {
	Forward  func(v float64) float64
	Backward func(v float64) float64
}

func (f *Func) Transform(_ *Attribute, v float64) float64 { return f.Forward(v) }
func (f *Func) Clone() Transformation                     { cp := *f; return &cp }

// reversibleFunc is a [Func] with a Backward function.
type reversibleFunc struct {
	Func
}

func (f *reversibleFunc) Inverse(_ *Attribute, v float64) float64 { return f.Backward(v) }
func (f *reversibleFunc) Clone() Transformation                   { cp := *f; return &cp }

// NewFunc returns a transformation calling forward, which is
// [Reversible] if backward is non-nil.
func NewFunc(forward, backward func(v float64) float64) Transformation {
	f := Func{Forward: forward, Backward: backward}
	if backward == nil {
		return &f
	}
	return &reversibleFunc{Func: f}
}
