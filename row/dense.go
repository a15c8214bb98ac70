// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package row

import (
	"github.com/ntj/ComplexRapidMiner-sub004/base/slicesx"
)

// Dense is a row storing one element of type T per column.
// Cells that were never set, or set to their default,
// hold the unassigned code of T and read back as the default.
type Dense[T Cell] struct {
	// Values are the encoded cells.
	Values []T

	codec codec[T]
	kind  Kinds
}

// Double is a dense row of float64 cells.
type Double = Dense[float64]

// Float is a dense row of float32 cells.
type Float = Dense[float32]

// Long is a dense row of int64 cells.
type Long = Dense[int64]

// Int is a dense row of int32 cells.
type Int = Dense[int32]

// Short is a dense row of int16 cells.
type Short = Dense[int16]

// Byte is a dense row of int8 cells.
type Byte = Dense[int8]

// Bool is a dense row of boolean cells, stored as int8 states.
type Bool = Dense[int8]

func newDense[T Cell](c codec[T], kind Kinds, size int) *Dense[T] {
	dr := &Dense[T]{codec: c, kind: kind}
	dr.Values = slicesx.Extend(nil, size, c.unassigned())
	return dr
}

// NewDouble returns a new [Double] row with the given number of columns.
func NewDouble(size int) *Double {
	return newDense[float64](floatCodec[float64]{}, DoubleArray, size)
}

// NewFloat returns a new [Float] row with the given number of columns.
func NewFloat(size int) *Float {
	return newDense[float32](floatCodec[float32]{}, FloatArray, size)
}

// NewLong returns a new [Long] row with the given number of columns.
func NewLong(size int) *Long {
	return newDense[int64](newIntCodec[int64](), LongArray, size)
}

// NewInt returns a new [Int] row with the given number of columns.
func NewInt(size int) *Int {
	return newDense[int32](newIntCodec[int32](), IntArray, size)
}

// NewShort returns a new [Short] row with the given number of columns.
func NewShort(size int) *Short {
	return newDense[int16](newIntCodec[int16](), ShortArray, size)
}

// NewByte returns a new [Byte] row with the given number of columns.
func NewByte(size int) *Byte {
	return newDense[int8](newIntCodec[int8](), ByteArray, size)
}

// NewBool returns a new [Bool] row with the given number of columns.
// Non-zero values are stored as 1.
func NewBool(size int) *Bool {
	return newDense[int8](boolCodec{}, BooleanArray, size)
}

func (dr *Dense[T]) Kind() Kinds { return dr.kind }

// Len returns the number of allocated columns.
func (dr *Dense[T]) Len() int { return len(dr.Values) }

func (dr *Dense[T]) Get(i int, def float64) float64 {
	if i < 0 || i >= len(dr.Values) {
		return def
	}
	return dr.codec.decode(dr.Values[i], def)
}

// Set sets the cell at column i, growing the row if i is beyond
// the allocated columns. Negative columns are ignored, as in Get.
func (dr *Dense[T]) Set(i int, v, def float64) {
	if i < 0 {
		return
	}
	if i >= len(dr.Values) {
		dr.EnsureColumns(i + 1)
	}
	if IsDefault(v, def) {
		dr.Values[i] = dr.codec.unassigned()
		return
	}
	dr.Values[i] = dr.codec.encode(v)
}

func (dr *Dense[T]) EnsureColumns(n int) {
	dr.Values = slicesx.Extend(dr.Values, n, dr.codec.unassigned())
}

// Trim is a no-op, since dense rows have no slack.
func (dr *Dense[T]) Trim() {}

func (dr *Dense[T]) String() string { return format(dr) }
