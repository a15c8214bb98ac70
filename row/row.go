// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package row provides the physical row representations of an example
// table: dense arrays of several numeric widths, sparse arrays and a
// sparse map. Rows hold float64 cell values addressed by column
// position and know nothing about attributes. Every access takes the
// column default, which is returned for cells that hold no value and
// which sparse rows never store.
package row

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Row is the common contract of all row representations.
type Row interface {
	// Get returns the value at column i, or def if the cell holds no value.
	Get(i int, def float64) float64

	// Set sets the value at column i. Setting a value equal to def
	// leaves the cell without a value.
	Set(i int, v, def float64)

	// EnsureColumns makes columns 0..n-1 valid, growing the backing
	// storage by copy-extend if needed. Existing values are kept.
	EnsureColumns(n int)

	// Trim releases slack storage. It never changes observable values.
	Trim()

	// Kind returns the representation kind of the row.
	Kind() Kinds
}

// Sparse is a [Row] that can enumerate its stored cells.
type Sparse interface {
	Row

	// NonDefaultIndices returns the ascending column indexes of all stored cells.
	NonDefaultIndices() []int

	// NonDefaultValues returns the values of all stored cells,
	// in the order of [Sparse.NonDefaultIndices].
	NonDefaultValues() []float64
}

// Cell is the constraint for the element types of typed rows.
type Cell interface {
	constraints.Float | constraints.Signed
}

// IsDefault returns true if v equals def, treating NaN as equal to NaN.
func IsDefault(v, def float64) bool {
	if math.IsNaN(v) {
		return math.IsNaN(def)
	}
	return v == def
}

// format returns the textual form of a row for debugging:
// its kind followed by all dense cells, or the stored sparse cells
// as index:value pairs. Missing values are printed as "?".
func format(r Row) string {
	var b strings.Builder
	b.WriteString(r.Kind().String())
	b.WriteByte('[')
	switch x := r.(type) {
	case Sparse:
		vals := x.NonDefaultValues()
		for k, i := range x.NonDefaultIndices() {
			if k > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(strconv.Itoa(i))
			b.WriteByte(':')
			b.WriteString(formatValue(vals[k]))
		}
	case interface{ Len() int }:
		for i := range x.Len() {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(formatValue(r.Get(i, math.NaN())))
		}
	}
	b.WriteByte(']')
	return b.String()
}

func formatValue(v float64) string {
	if math.IsNaN(v) {
		return "?"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
