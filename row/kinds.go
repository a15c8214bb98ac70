// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package row

import (
	"fmt"
	"slices"
)

// Kinds are the row representation kinds.
type Kinds int32 //enums:enum

const (
	// DoubleArray is a dense row of float64 cells.
	DoubleArray Kinds = iota

	// FloatArray is a dense row of float32 cells.
	FloatArray

	// LongArray is a dense row of int64 cells.
	LongArray

	// IntArray is a dense row of int32 cells.
	IntArray

	// ShortArray is a dense row of int16 cells.
	ShortArray

	// ByteArray is a dense row of int8 cells.
	ByteArray

	// BooleanArray is a dense row of boolean cells.
	BooleanArray

	// DoubleSparseArray is a sparse row of float64 cells.
	DoubleSparseArray

	// FloatSparseArray is a sparse row of float32 cells.
	FloatSparseArray

	// LongSparseArray is a sparse row of int64 cells.
	LongSparseArray

	// IntSparseArray is a sparse row of int32 cells.
	IntSparseArray

	// ShortSparseArray is a sparse row of int16 cells.
	ShortSparseArray

	// ByteSparseArray is a sparse row of int8 cells.
	ByteSparseArray

	// BooleanSparseArray is a sparse row of boolean cells.
	BooleanSparseArray

	// SparseMap is a sparse row backed by a hash map.
	SparseMap
)

// IsSparse returns true for the sparse kinds.
func (k Kinds) IsSparse() bool { return k >= DoubleSparseArray && k < KindsN }

// KindsValues returns all kinds.
func KindsValues() []Kinds { return slices.Clone(_KindsValues) }

// KindsFromString returns the kind with the given name.
func KindsFromString(s string) (Kinds, error) {
	var k Kinds
	if err := k.SetString(s); err != nil {
		return DoubleArray, fmt.Errorf("row.KindsFromString: %w", err)
	}
	return k, nil
}
