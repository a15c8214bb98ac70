// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package attribute

import "math"

// Complex is the value of a composite attribute:
// the values of its inner attributes.
type Complex struct {
	Kind   ValueTypes
	Values []float64
}

// ComplexValue returns the values of the inner attributes in the given cells.
func (a *Attribute) ComplexValue(c Cells) Complex {
	cv := Complex{Kind: a.desc.valueType, Values: make([]float64, len(a.inner))}
	for i, in := range a.inner {
		cv.Values[i] = in.Value(c)
	}
	return cv
}

// Expectation returns the expected value of distribution kinds:
// the mean of a Gauss, the midpoint of a Uniform and the
// bin-weighted mean bin index of a Histogram. Structural kinds
// and incomplete values return NaN.
func (cv Complex) Expectation() float64 {
	switch cv.Kind {
	case Gauss:
		if len(cv.Values) > 0 {
			return cv.Values[0]
		}
	case Uniform:
		if len(cv.Values) > 1 {
			return (cv.Values[0] + cv.Values[1]) / 2
		}
	case Histogram:
		sum, wsum := 0.0, 0.0
		for i, w := range cv.Values {
			if math.IsNaN(w) {
				continue
			}
			sum += float64(i) * w
			wsum += w
		}
		if wsum > 0 {
			return sum / wsum
		}
	case Matrix, Tensor, PointList, ComplexComposite:
	}
	return math.NaN()
}
