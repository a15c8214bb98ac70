// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package row

import (
	"maps"
	"math"
	"slices"
)

// DefaultSparseCapacity is the default initial capacity of sparse array rows.
const DefaultSparseCapacity = 4

// SparseArray is a row storing only the cells that differ from their
// default, as parallel slices of ascending column indexes and values.
type SparseArray[T Cell] struct {
	indexes []int
	values  []T
	codec   codec[T]
	kind    Kinds
}

func newSparseArray[T Cell](c codec[T], kind Kinds, capacity int) *SparseArray[T] {
	capacity = max(capacity, 0)
	return &SparseArray[T]{
		indexes: make([]int, 0, capacity),
		values:  make([]T, 0, capacity),
		codec:   c,
		kind:    kind,
	}
}

// NewSparseDouble returns a new sparse float64 row with the given initial capacity.
func NewSparseDouble(capacity int) *SparseArray[float64] {
	return newSparseArray[float64](floatCodec[float64]{}, DoubleSparseArray, capacity)
}

// NewSparseFloat returns a new sparse float32 row with the given initial capacity.
func NewSparseFloat(capacity int) *SparseArray[float32] {
	return newSparseArray[float32](floatCodec[float32]{}, FloatSparseArray, capacity)
}

// NewSparseLong returns a new sparse int64 row with the given initial capacity.
func NewSparseLong(capacity int) *SparseArray[int64] {
	return newSparseArray[int64](newIntCodec[int64](), LongSparseArray, capacity)
}

// NewSparseInt returns a new sparse int32 row with the given initial capacity.
func NewSparseInt(capacity int) *SparseArray[int32] {
	return newSparseArray[int32](newIntCodec[int32](), IntSparseArray, capacity)
}

// NewSparseShort returns a new sparse int16 row with the given initial capacity.
func NewSparseShort(capacity int) *SparseArray[int16] {
	return newSparseArray[int16](newIntCodec[int16](), ShortSparseArray, capacity)
}

// NewSparseByte returns a new sparse int8 row with the given initial capacity.
func NewSparseByte(capacity int) *SparseArray[int8] {
	return newSparseArray[int8](newIntCodec[int8](), ByteSparseArray, capacity)
}

// NewSparseBool returns a new sparse boolean row with the given initial capacity.
func NewSparseBool(capacity int) *SparseArray[int8] {
	return newSparseArray[int8](boolCodec{}, BooleanSparseArray, capacity)
}

func (sr *SparseArray[T]) Kind() Kinds { return sr.kind }

// Len returns the number of stored cells.
func (sr *SparseArray[T]) Len() int { return len(sr.indexes) }

// Cap returns the number of cells that can be stored without allocation.
func (sr *SparseArray[T]) Cap() int { return cap(sr.indexes) }

func (sr *SparseArray[T]) Get(i int, def float64) float64 {
	k, ok := slices.BinarySearch(sr.indexes, i)
	if !ok {
		return def
	}
	return sr.codec.decode(sr.values[k], def)
}

// Set stores v at column i unless it equals def once narrowed to
// the cell width, in which case any stored cell is removed.
func (sr *SparseArray[T]) Set(i int, v, def float64) {
	if i < 0 {
		return
	}
	k, ok := slices.BinarySearch(sr.indexes, i)
	x := sr.codec.encode(v)
	if IsDefault(v, def) || IsDefault(sr.codec.decode(x, def), def) {
		if ok {
			sr.indexes = slices.Delete(sr.indexes, k, k+1)
			sr.values = slices.Delete(sr.values, k, k+1)
		}
		return
	}
	if ok {
		sr.values[k] = x
		return
	}
	sr.indexes = slices.Insert(sr.indexes, k, i)
	sr.values = slices.Insert(sr.values, k, x)
}

// EnsureColumns is a no-op, since sparse rows address any column.
func (sr *SparseArray[T]) EnsureColumns(n int) {}

// Trim reallocates the stored cells without slack capacity.
func (sr *SparseArray[T]) Trim() {
	if cap(sr.indexes) == len(sr.indexes) {
		return
	}
	idx := make([]int, len(sr.indexes))
	copy(idx, sr.indexes)
	vals := make([]T, len(sr.values))
	copy(vals, sr.values)
	sr.indexes, sr.values = idx, vals
}

func (sr *SparseArray[T]) NonDefaultIndices() []int { return slices.Clone(sr.indexes) }

func (sr *SparseArray[T]) NonDefaultValues() []float64 {
	vals := make([]float64, len(sr.values))
	for i, x := range sr.values {
		vals[i] = sr.codec.decode(x, math.NaN())
	}
	return vals
}

func (sr *SparseArray[T]) String() string { return format(sr) }

// Map is a sparse row backed by a hash map from column index to value.
type Map struct {
	cells map[int]float64
}

// NewMap returns a new empty [Map] row.
func NewMap() *Map {
	return &Map{cells: make(map[int]float64)}
}

func (mr *Map) Kind() Kinds { return SparseMap }

// Len returns the number of stored cells.
func (mr *Map) Len() int { return len(mr.cells) }

func (mr *Map) Get(i int, def float64) float64 {
	if v, ok := mr.cells[i]; ok {
		return v
	}
	return def
}

func (mr *Map) Set(i int, v, def float64) {
	if i < 0 {
		return
	}
	if IsDefault(v, def) {
		delete(mr.cells, i)
		return
	}
	mr.cells[i] = v
}

// EnsureColumns is a no-op, since sparse rows address any column.
func (mr *Map) EnsureColumns(n int) {}

// Trim is a no-op, since maps hold no slack that can be released.
func (mr *Map) Trim() {}

func (mr *Map) NonDefaultIndices() []int { return slices.Sorted(maps.Keys(mr.cells)) }

func (mr *Map) NonDefaultValues() []float64 {
	idx := mr.NonDefaultIndices()
	vals := make([]float64, len(idx))
	for i, k := range idx {
		vals[i] = mr.cells[k]
	}
	return vals
}

func (mr *Map) String() string { return format(mr) }
