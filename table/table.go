// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package table provides example tables: an ordered set of attributes
// together with a sequence of rows. [Memory] holds its rows in memory,
// and [Cursor] streams them from a [Store] through a live cursor.
// Rows are accessed by attribute through the [DataRow] interface.
package table

import (
	"errors"
	"fmt"

	"github.com/ntj/ComplexRapidMiner-sub004/attribute"
	"github.com/ntj/ComplexRapidMiner-sub004/row"
)

var (
	// ErrStaleCursor is returned when a cursor row or reader is used after
	// the underlying cursor was moved or re-queried.
	ErrStaleCursor = errors.New("cursor moved since row was created")

	// ErrProtocolViolation is returned when a cursor row is accessed with an
	// attribute that is not a stored column of its table.
	ErrProtocolViolation = errors.New("attribute is not a column of the cursor table")

	// ErrNotStored is returned when adding an attribute without a stored
	// column, such as a view or composite, to a table.
	ErrNotStored = errors.New("attribute has no stored column")
)

// DataRow is one row of a table, accessed by attribute.
type DataRow interface {
	// Value returns the value of the attribute in this row,
	// with all transformations applied.
	Value(att *attribute.Attribute) (float64, error)

	// SetValue sets the value of the attribute in this row,
	// storing the untransformed value.
	SetValue(att *attribute.Attribute, v float64) error
}

// Reader iterates over the data rows of a table.
type Reader interface {
	// Next advances to the next row, returning false at the end or on error.
	Next() bool

	// DataRow returns the current row.
	DataRow() DataRow

	// Err returns the error that stopped iteration, if any.
	Err() error
}

// Table is the common contract of example tables.
type Table interface {
	// Attributes returns the attributes of the table, in column order.
	Attributes() []*attribute.Attribute

	// NumAttributes returns the number of attributes.
	NumAttributes() int

	// Attribute returns the attribute at position i of [Table.Attributes].
	Attribute(i int) *attribute.Attribute

	// FindAttribute returns the attribute with the given name, or nil.
	FindAttribute(name string) *attribute.Attribute

	// AddAttribute adds a stored attribute, setting and returning
	// its table index.
	AddAttribute(att *attribute.Attribute) (int, error)

	// AddAttributes adds all given attributes.
	AddAttributes(atts ...*attribute.Attribute) error

	// RemoveAttribute removes the attribute from the table.
	RemoveAttribute(att *attribute.Attribute) error

	// NumRows returns the number of rows.
	NumRows() (int, error)

	// DataRow returns the row at index i.
	DataRow(i int) (DataRow, error)

	// Reader returns a reader over all rows.
	Reader() (Reader, error)
}

// Cells returns the [DataRow] reading and writing the given stored row.
func Cells(r row.Row) DataRow {
	return cells{r}
}

// cells adapts a [row.Row] to a [DataRow].
type cells struct {
	row.Row
}

func (c cells) Value(att *attribute.Attribute) (float64, error) {
	return att.Value(c.Row), nil
}

func (c cells) SetValue(att *attribute.Attribute, v float64) error {
	return att.SetValue(c.Row, v)
}

// Row returns the stored row of a [DataRow] created by [Cells],
// and nil for other data rows.
func Row(dr DataRow) row.Row {
	if c, ok := dr.(cells); ok {
		return c.Row
	}
	return nil
}

// slots is the attribute bookkeeping of stored tables: slot i holds the
// attribute with table index i, or nil for a hole left by a removed
// attribute. Holes are reused by later additions.
type slots struct {
	atts   []*attribute.Attribute
	unused []int
}

// add puts att into the first hole, or appends a slot,
// and sets the table index of att. It returns the index and
// whether a hole was reused.
func (s *slots) add(att *attribute.Attribute) (int, bool, error) {
	if !att.Stored() {
		return -1, false, fmt.Errorf("table: cannot add %q: %w", att.Name(), ErrNotStored)
	}
	if n := len(s.unused); n > 0 {
		idx := s.unused[n-1]
		s.unused = s.unused[:n-1]
		att.SetTableIndex(idx)
		s.atts[idx] = att
		return idx, true, nil
	}
	idx := len(s.atts)
	att.SetTableIndex(idx)
	s.atts = append(s.atts, att)
	return idx, false, nil
}

// remove makes the slot of att a hole.
func (s *slots) remove(att *attribute.Attribute) error {
	idx := att.TableIndex()
	if idx < 0 || idx >= len(s.atts) || !s.atts[idx].Equal(att) {
		return fmt.Errorf("table: attribute %q is not part of the table", att.Name())
	}
	s.atts[idx] = nil
	s.unused = append(s.unused, idx)
	return nil
}

// Attributes returns the attributes of all non-empty slots.
func (s *slots) Attributes() []*attribute.Attribute {
	atts := make([]*attribute.Attribute, 0, len(s.atts))
	for _, a := range s.atts {
		if a != nil {
			atts = append(atts, a)
		}
	}
	return atts
}

// NumAttributes returns the number of non-empty slots.
func (s *slots) NumAttributes() int {
	return len(s.atts) - len(s.unused)
}

// Attribute returns the attribute at position i of [slots.Attributes].
func (s *slots) Attribute(i int) *attribute.Attribute {
	for _, a := range s.atts {
		if a == nil {
			continue
		}
		if i == 0 {
			return a
		}
		i--
	}
	return nil
}

// FindAttribute returns the first attribute with the given name, or nil.
func (s *slots) FindAttribute(name string) *attribute.Attribute {
	for _, a := range s.atts {
		if a != nil && a.Name() == name {
			return a
		}
	}
	return nil
}

// Columns returns the number of slots, including holes.
func (s *slots) Columns() int { return len(s.atts) }

var (
	_ Table   = (*Memory)(nil)
	_ Table   = (*Cursor)(nil)
	_ DataRow = (*CursorRow)(nil)
)
