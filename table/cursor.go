// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"fmt"

	"github.com/ntj/ComplexRapidMiner-sub004/attribute"
	"github.com/ntj/ComplexRapidMiner-sub004/base/errors"
)

// Cursor is a table streaming its rows from a table of a [Store].
// It holds one live cursor, which is shared by all rows obtained from
// the table: repositioning it makes previously obtained rows stale.
// Schema changes are applied to the store and re-issue the query.
type Cursor struct {
	// Name is the name of the table in the store.
	Name string

	store  Store
	atts   []*attribute.Attribute
	cursor StoreCursor
}

// NewCursor returns a cursor table over the named table of the store,
// with attributes of the column types created by the factory.
func NewCursor(store Store, name string, f *attribute.Factory) (*Cursor, error) {
	cols, err := store.Columns(name)
	if err != nil {
		return nil, err
	}
	ct := &Cursor{Name: name, store: store}
	for i, c := range cols {
		a, err := f.New(c.Name, c.Type)
		if err != nil {
			return nil, err
		}
		a.SetTableIndex(i)
		ct.atts = append(ct.atts, a)
	}
	if err := ct.query(); err != nil {
		return nil, err
	}
	return ct, nil
}

// query closes the current cursor and issues a new query.
func (ct *Cursor) query() error {
	if ct.cursor != nil {
		errors.Log(ct.cursor.Close())
		ct.cursor = nil
	}
	cur, err := ct.store.Query(ct.Name)
	if err != nil {
		return fmt.Errorf("table.Cursor: query %q: %w", ct.Name, err)
	}
	ct.cursor = cur
	return nil
}

// reindex sets the table indexes of the attributes to
// the current column positions of the store.
func (ct *Cursor) reindex() error {
	cols, err := ct.store.Columns(ct.Name)
	if err != nil {
		return err
	}
	for _, a := range ct.atts {
		a.SetTableIndex(-1)
	}
	for i, c := range cols {
		for _, a := range ct.atts {
			if a.Name() == c.Name {
				a.SetTableIndex(i)
				break
			}
		}
	}
	return nil
}

func (ct *Cursor) Attributes() []*attribute.Attribute { return ct.atts }
func (ct *Cursor) NumAttributes() int                 { return len(ct.atts) }

func (ct *Cursor) Attribute(i int) *attribute.Attribute {
	if i < 0 || i >= len(ct.atts) {
		return nil
	}
	return ct.atts[i]
}

func (ct *Cursor) FindAttribute(name string) *attribute.Attribute {
	for _, a := range ct.atts {
		if a.Name() == name {
			return a
		}
	}
	return nil
}

// AddAttribute adds a column for the attribute to the store table
// and re-issues the query.
func (ct *Cursor) AddAttribute(att *attribute.Attribute) (int, error) {
	if !att.Stored() {
		return -1, fmt.Errorf("table.Cursor AddAttribute: cannot add %q: %w", att.Name(), ErrNotStored)
	}
	if err := ct.store.AddColumn(ct.Name, att.Name(), att.ValueType()); err != nil {
		return -1, err
	}
	ct.atts = append(ct.atts, att)
	if err := ct.reindex(); err != nil {
		return -1, err
	}
	return att.TableIndex(), ct.query()
}

func (ct *Cursor) AddAttributes(atts ...*attribute.Attribute) error {
	for _, a := range atts {
		if _, err := ct.AddAttribute(a); err != nil {
			return err
		}
	}
	return nil
}

// RemoveAttribute drops the column of the attribute from the store table
// and re-issues the query.
func (ct *Cursor) RemoveAttribute(att *attribute.Attribute) error {
	i := ct.indexOf(att)
	if i < 0 {
		return fmt.Errorf("table.Cursor RemoveAttribute: attribute %q is not part of the table", att.Name())
	}
	if err := ct.store.DropColumn(ct.Name, att.Name()); err != nil {
		return err
	}
	ct.atts = append(ct.atts[:i:i], ct.atts[i+1:]...)
	if err := ct.reindex(); err != nil {
		return err
	}
	return ct.query()
}

// indexOf returns the position of the attribute in the attribute list,
// or -1 if it is not a column of the table.
func (ct *Cursor) indexOf(att *attribute.Attribute) int {
	for i, a := range ct.atts {
		if a.Equal(att) {
			return i
		}
	}
	return -1
}

// NumRows issues a count query.
func (ct *Cursor) NumRows() (int, error) {
	return ct.store.Count(ct.Name)
}

// DataRow moves the cursor to row i and returns a row bound to that
// position. Rows obtained before become stale.
func (ct *Cursor) DataRow(i int) (DataRow, error) {
	if ct.cursor == nil {
		return nil, fmt.Errorf("table.Cursor DataRow: %q is closed", ct.Name)
	}
	if i < 0 || !ct.cursor.Absolute(i) {
		return nil, fmt.Errorf("table.Cursor DataRow: row %d is out of range", i)
	}
	return &CursorRow{table: ct, cursor: ct.cursor, pos: i}, nil
}

// Reader moves the cursor before the first row and returns a
// forward-only reader over it. Moving the cursor by other means
// while reading makes the reader fail with [ErrStaleCursor].
func (ct *Cursor) Reader() (Reader, error) {
	if ct.cursor == nil {
		return nil, fmt.Errorf("table.Cursor Reader: %q is closed", ct.Name)
	}
	if !ct.cursor.Absolute(-1) {
		return nil, fmt.Errorf("table.Cursor Reader: cannot rewind cursor of %q", ct.Name)
	}
	return &cursorReader{table: ct, cursor: ct.cursor, pos: -1}, nil
}

// Close closes the current cursor.
func (ct *Cursor) Close() error {
	if ct.cursor == nil {
		return nil
	}
	err := ct.cursor.Close()
	ct.cursor = nil
	return err
}

type cursorReader struct {
	table  *Cursor
	cursor StoreCursor
	pos    int
	row    *CursorRow
	err    error
}

func (cr *cursorReader) Next() bool {
	cr.row = nil
	if cr.err != nil {
		return false
	}
	if cr.table.cursor != cr.cursor || cr.cursor.Position() != cr.pos {
		cr.err = fmt.Errorf("table.Cursor Reader: %w", ErrStaleCursor)
		return false
	}
	if !cr.cursor.Next() {
		cr.err = cr.cursor.Err()
		return false
	}
	cr.pos = cr.cursor.Position()
	cr.row = &CursorRow{table: cr.table, cursor: cr.cursor, pos: cr.pos}
	return true
}

func (cr *cursorReader) DataRow() DataRow {
	if cr.row == nil {
		return nil
	}
	return cr.row
}

func (cr *cursorReader) Err() error { return cr.err }
