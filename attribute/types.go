// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package attribute

import (
	"fmt"
	"slices"
)

// ValueTypes is the closed ontology of attribute value types.
// Every type except [AttributeValue] has a parent, see [ValueTypes.IsA].
type ValueTypes int32 //enums:enum

const (
	// AttributeValue is the abstract root of the ontology.
	// It cannot be constructed.
	AttributeValue ValueTypes = iota

	// Nominal is a categorical value stored as a mapping index.
	Nominal

	// Binary is a nominal value with at most two distinct values.
	Binary

	// General is a nominal value with any number of distinct values.
	General

	// String is a free text value, interned like [General].
	String

	// FilePath is a path value, interned like [General].
	FilePath

	// Numeric is a numerical value.
	Numeric

	// Integer is a numerical value without a fractional part.
	Integer

	// Real is a numerical value with a fractional part.
	Real

	// DateTime is a point in time, stored as Unix milliseconds.
	DateTime

	// Date is a calendar date, stored as Unix milliseconds.
	Date

	// Time is a time of day, stored as Unix milliseconds.
	Time

	// Relational values refer to a row of another table by id.
	Relational

	// Map values refer to an external key value map by id.
	Map

	// DataMap values refer to an external map of data series by id.
	DataMap

	// Array values refer to an external array by id.
	Array

	// ComplexComposite is the parent of all composite kinds, which
	// are computed from one or more inner attributes.
	ComplexComposite

	// Matrix is a composite of inner attributes holding matrix cells.
	Matrix

	// Tensor is a composite of inner attributes holding tensor cells.
	Tensor

	// PointList is a composite of inner attributes holding point coordinates.
	PointList

	// Uniform is a uniform distribution given by lower and upper bound attributes.
	Uniform

	// Gauss is a normal distribution given by mean and deviation attributes.
	Gauss

	// Histogram is a distribution given by one attribute per bin.
	Histogram
)

var valueTypeParents = [ValueTypesN]ValueTypes{
	Binary: Nominal, General: Nominal, String: Nominal, FilePath: Nominal,
	Integer: Numeric, Real: Numeric,
	Date: DateTime, Time: DateTime,
	Matrix: ComplexComposite, Tensor: ComplexComposite, PointList: ComplexComposite,
	Uniform: ComplexComposite, Gauss: ComplexComposite, Histogram: ComplexComposite,
}

const (
	// DateLayout is the textual layout of [Date] values.
	DateLayout = "2006-01-02"

	// TimeLayout is the textual layout of [Time] values.
	TimeLayout = "15:04:05"

	// DateTimeLayout is the textual layout of [DateTime] values.
	DateTimeLayout = "2006-01-02 15:04:05"
)

// Parent returns the parent type, and [AttributeValue] for the root.
func (vt ValueTypes) Parent() ValueTypes {
	if !vt.IsValid() {
		return AttributeValue
	}
	return valueTypeParents[vt]
}

// IsA returns true if vt is parent or one of its descendants.
func (vt ValueTypes) IsA(parent ValueTypes) bool {
	if !vt.IsValid() {
		return false
	}
	for t := vt; ; t = t.Parent() {
		if t == parent {
			return true
		}
		if t == AttributeValue {
			return false
		}
	}
}

func (vt ValueTypes) IsNominal() bool   { return vt.IsA(Nominal) }
func (vt ValueTypes) IsNumeric() bool   { return vt.IsA(Numeric) }
func (vt ValueTypes) IsDateTime() bool  { return vt.IsA(DateTime) }
func (vt ValueTypes) IsComposite() bool { return vt.IsA(ComplexComposite) }

// Layout returns the textual time layout for date and time types,
// and "" for all other types.
func (vt ValueTypes) Layout() string {
	switch vt {
	case Date:
		return DateLayout
	case Time:
		return TimeLayout
	case DateTime:
		return DateTimeLayout
	}
	return ""
}

// ValueTypesValues returns all value types.
func ValueTypesValues() []ValueTypes { return slices.Clone(_ValueTypesValues) }

// ValueTypesFromString returns the value type with the given name.
func ValueTypesFromString(s string) (ValueTypes, error) {
	var vt ValueTypes
	if err := vt.SetString(s); err != nil {
		return AttributeValue, fmt.Errorf("attribute.ValueTypesFromString: %w: %w", err, ErrUnsupportedValueType)
	}
	return vt, nil
}

// BlockTypes describes how an attribute relates to its neighbours,
// e.g. as part of a value series.
type BlockTypes int32 //enums:enum

const (
	// AttributeBlock is the abstract root block type.
	AttributeBlock BlockTypes = iota

	// SingleValue is an independent column.
	SingleValue

	// ValueSeries is an element of a series of columns.
	ValueSeries

	// ValueSeriesStart is the first element of a value series.
	ValueSeriesStart

	// ValueSeriesEnd is the last element of a value series.
	ValueSeriesEnd

	// ValueMatrix is an element of a matrix of columns.
	ValueMatrix

	// ValueMatrixStart is the first element of a value matrix.
	ValueMatrixStart

	// ValueMatrixEnd is the last element of a value matrix.
	ValueMatrixEnd

	// ValueMatrixRowStart is the first element of a row of a value matrix.
	ValueMatrixRowStart
)

// IsSeries returns true for the value series block types.
func (bt BlockTypes) IsSeries() bool {
	return bt >= ValueSeries && bt <= ValueSeriesEnd
}

// BlockTypesFromString returns the block type with the given name.
func BlockTypesFromString(s string) (BlockTypes, error) {
	var bt BlockTypes
	if err := bt.SetString(s); err != nil {
		return AttributeBlock, fmt.Errorf("attribute.BlockTypesFromString: %w", err)
	}
	return bt, nil
}
