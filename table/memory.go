// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"fmt"
	"math"
	"slices"

	"github.com/ntj/ComplexRapidMiner-sub004/attribute"
	"github.com/ntj/ComplexRapidMiner-sub004/base/metadata"
	"github.com/ntj/ComplexRapidMiner-sub004/row"
)

// DefaultIncrement is the default number of columns by which
// the column capacity of a [Memory] table grows.
const DefaultIncrement = 10

// Options are the options of a [Memory] table.
type Options struct {
	// Increment is the number of columns by which the column capacity
	// grows when an added attribute exceeds it.
	Increment int

	// Factory creates the rows of [Memory.NewRow].
	Factory *row.Factory
}

// DefaultOptions returns the options with the default increment,
// creating dense float64 rows.
func DefaultOptions() Options {
	return Options{Increment: DefaultIncrement, Factory: row.NewFactory(row.DoubleArray)}
}

// Memory is a table holding its rows in memory. The rows are allocated
// with a column capacity that grows in steps of [Options.Increment]
// when attributes are added, so that adding many attributes one by one
// only rarely grows the rows.
type Memory struct {
	slots

	// Meta is misc metadata for the table, such as its name.
	Meta metadata.Data

	rows      []row.Row
	capacity  int
	increment int
	factory   *row.Factory
}

// NewMemory returns a new empty memory table with the given attributes,
// whose table indexes are set to their column positions.
func NewMemory(atts []*attribute.Attribute, opts Options) (*Memory, error) {
	if opts.Increment <= 0 {
		opts.Increment = DefaultIncrement
	}
	if opts.Factory == nil {
		opts.Factory = row.NewFactory(row.DoubleArray)
	}
	mt := &Memory{increment: opts.Increment, factory: opts.Factory, capacity: len(atts)}
	if err := mt.AddAttributes(atts...); err != nil {
		return nil, err
	}
	return mt, nil
}

// NewMemoryFromReader returns a new memory table with the given
// attributes holding all rows of the reader.
func NewMemoryFromReader(atts []*attribute.Attribute, rd row.Reader, opts Options) (*Memory, error) {
	mt, err := NewMemory(atts, opts)
	if err != nil {
		return nil, err
	}
	for rd.Next() {
		mt.AddRow(rd.Row())
	}
	if err := rd.Err(); err != nil {
		return nil, err
	}
	return mt, nil
}

// NewMemoryFrom returns an independent copy of the source table, with
// clones of its attributes and all values stored in dense float64 rows.
// Values that cannot be read from the source are stored as NaN.
func NewMemoryFrom(src Table) (*Memory, error) {
	srcAtts := src.Attributes()
	atts := make([]*attribute.Attribute, len(srcAtts))
	raws := make([]*attribute.Attribute, len(srcAtts))
	for i, a := range srcAtts {
		atts[i] = a.Clone()
		raws[i] = a.Clone()
		raws[i].ClearTransformations()
	}
	mt, err := NewMemory(atts, DefaultOptions())
	if err != nil {
		return nil, err
	}
	rd, err := src.Reader()
	if err != nil {
		return nil, err
	}
	for rd.Next() {
		dr := rd.DataRow()
		r := row.NewDouble(mt.capacity)
		for i, raw := range raws {
			v, err := dr.Value(raw)
			if err != nil {
				v = math.NaN()
			}
			r.Set(atts[i].TableIndex(), v, atts[i].DefaultValue())
		}
		mt.AddRow(r)
	}
	if err := rd.Err(); err != nil {
		return nil, err
	}
	mt.Meta.Copy(metaOf(src))
	return mt, nil
}

func metaOf(t Table) metadata.Data {
	if mt, ok := t.(*Memory); ok {
		return mt.Meta
	}
	return nil
}

// Capacity returns the number of columns allocated in every row.
func (mt *Memory) Capacity() int { return mt.capacity }

// AddAttribute adds a stored attribute, reusing the column of a removed
// attribute if there is one. If the number of columns exceeds the column
// capacity, the capacity grows by the increment and every row is extended.
func (mt *Memory) AddAttribute(att *attribute.Attribute) (int, error) {
	idx, reused, err := mt.slots.add(att)
	if err != nil {
		return -1, err
	}
	if reused {
		def := att.DefaultValue()
		for _, r := range mt.rows {
			r.Set(idx, def, def)
		}
	}
	if n := mt.Columns(); n > mt.capacity {
		mt.capacity = max(n, mt.capacity+mt.increment)
		for _, r := range mt.rows {
			r.EnsureColumns(mt.capacity)
		}
	}
	return idx, nil
}

func (mt *Memory) AddAttributes(atts ...*attribute.Attribute) error {
	for _, a := range atts {
		if _, err := mt.AddAttribute(a); err != nil {
			return err
		}
	}
	return nil
}

// RemoveAttribute removes the attribute. Its column stays allocated
// and is reused by the next added attribute.
func (mt *Memory) RemoveAttribute(att *attribute.Attribute) error {
	if err := mt.slots.remove(att); err != nil {
		return fmt.Errorf("table.Memory RemoveAttribute: %w", err)
	}
	return nil
}

// AddRow appends the row, extending it to the column capacity.
func (mt *Memory) AddRow(r row.Row) {
	r.EnsureColumns(mt.capacity)
	mt.rows = append(mt.rows, r)
}

// NewRow appends and returns a new row created by the row factory.
func (mt *Memory) NewRow() row.Row {
	r := mt.factory.New(mt.capacity)
	mt.AddRow(r)
	return r
}

// RemoveRow removes the row at index i.
func (mt *Memory) RemoveRow(i int) error {
	if i < 0 || i >= len(mt.rows) {
		return fmt.Errorf("table.Memory RemoveRow: row %d is out of valid range [0..%d]", i, len(mt.rows))
	}
	mt.rows = slices.Delete(mt.rows, i, i+1)
	return nil
}

// RemoveRowValue removes the given row, returning false if it is not
// part of the table.
func (mt *Memory) RemoveRowValue(r row.Row) bool {
	i := slices.Index(mt.rows, r)
	if i < 0 {
		return false
	}
	mt.rows = slices.Delete(mt.rows, i, i+1)
	return true
}

// Clear removes all rows.
func (mt *Memory) Clear() {
	mt.rows = nil
}

// Row returns the stored row at index i, or nil if out of range.
func (mt *Memory) Row(i int) row.Row {
	if i < 0 || i >= len(mt.rows) {
		return nil
	}
	return mt.rows[i]
}

// Len returns the number of rows.
func (mt *Memory) Len() int { return len(mt.rows) }

func (mt *Memory) NumRows() (int, error) { return len(mt.rows), nil }

func (mt *Memory) DataRow(i int) (DataRow, error) {
	if i < 0 || i >= len(mt.rows) {
		return nil, fmt.Errorf("table.Memory DataRow: row %d is out of valid range [0..%d]", i, len(mt.rows))
	}
	return Cells(mt.rows[i]), nil
}

// Reader returns a reader over the rows present at the time of the call.
func (mt *Memory) Reader() (Reader, error) {
	return &memoryReader{rows: slices.Clone(mt.rows), pos: -1}, nil
}

// Trim releases slack storage of all rows.
func (mt *Memory) Trim() {
	for _, r := range mt.rows {
		r.Trim()
	}
}

type memoryReader struct {
	rows []row.Row
	pos  int
}

func (mr *memoryReader) Next() bool {
	if mr.pos+1 >= len(mr.rows) {
		mr.pos = len(mr.rows)
		return false
	}
	mr.pos++
	return true
}

func (mr *memoryReader) DataRow() DataRow {
	if mr.pos < 0 || mr.pos >= len(mr.rows) {
		return nil
	}
	return Cells(mr.rows[mr.pos])
}

func (mr *memoryReader) Err() error { return nil }
