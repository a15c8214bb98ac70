// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package attribute

// ViewModel computes the value of a view attribute from the
// value of its parent. It must be a pure function of its inputs.
type ViewModel interface {
	Value(view *Attribute, parentValue float64) float64
}

// ModelFunc adapts a plain function to a [ViewModel].
type ModelFunc func(parentValue float64) float64

func (f ModelFunc) Value(_ *Attribute, v float64) float64 { return f(v) }

// View is the derived part of a view attribute: its value is
// computed by Model from the value of Parent on every read.
// Views have no storage of their own and cannot be written.
type View struct {
	Parent *Attribute
	Model  ViewModel
}

func (v *View) value(att *Attribute, c Cells) float64 {
	return v.Model.Value(att, v.Parent.Value(c))
}
