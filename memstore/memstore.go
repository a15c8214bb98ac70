// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package memstore provides an in-memory [table.Store] of named tables.
// Cells hold a float64, a string or nil for null. Changing the schema
// of a table closes all of its open cursors.
package memstore

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"

	"github.com/ntj/ComplexRapidMiner-sub004/attribute"
	"github.com/ntj/ComplexRapidMiner-sub004/base/keylist"
	"github.com/ntj/ComplexRapidMiner-sub004/table"
)

var (
	// ErrNoTable is returned for operations on an unknown table.
	ErrNoTable = errors.New("no such table")

	// ErrNoColumn is returned for operations on an unknown column.
	ErrNoColumn = errors.New("no such column")

	// ErrClosed is returned when using a closed cursor.
	ErrClosed = errors.New("cursor is closed")
)

// Store is an in-memory [table.Store].
type Store struct {
	tables map[string]*memTable
}

// memTable is one table of a [Store].
type memTable struct {
	columns *keylist.List[string, attribute.ValueTypes]
	rows    [][]any
	cursors []*Cursor
}

// New returns a new empty store.
func New() *Store {
	return &Store{tables: make(map[string]*memTable)}
}

// CreateTable creates or replaces the named table with the given columns.
func (st *Store) CreateTable(name string, cols ...table.Column) error {
	mt := &memTable{columns: keylist.New[string, attribute.ValueTypes]()}
	for _, c := range cols {
		if err := mt.columns.Add(c.Name, c.Type); err != nil {
			return fmt.Errorf("memstore.Store CreateTable: %w", err)
		}
	}
	if old, ok := st.tables[name]; ok {
		old.invalidate()
	}
	st.tables[name] = mt
	return nil
}

// Insert appends a row of cell values to the named table. Values must be
// numbers for numeric columns and strings for nominal columns, or nil.
func (st *Store) Insert(name string, vals ...any) error {
	mt, err := st.table(name)
	if err != nil {
		return err
	}
	if len(vals) != mt.columns.Len() {
		return fmt.Errorf("memstore.Store Insert: %d values for %d columns", len(vals), mt.columns.Len())
	}
	r := make([]any, len(vals))
	for i, v := range vals {
		c, err := cell(v, mt.columns.Values[i])
		if err != nil {
			return fmt.Errorf("memstore.Store Insert: column %s: %w", mt.columns.Keys[i], err)
		}
		r[i] = c
	}
	mt.rows = append(mt.rows, r)
	return nil
}

// cell returns the stored form of a value for a column type.
func cell(v any, vt attribute.ValueTypes) (any, error) {
	switch x := v.(type) {
	case nil:
		return nil, nil
	case string:
		if !vt.IsNominal() {
			return nil, fmt.Errorf("string value %q for %v column", x, vt)
		}
		return x, nil
	case float64:
		if math.IsNaN(x) {
			return nil, nil
		}
		return x, nil
	case int:
		return float64(x), nil
	}
	return nil, fmt.Errorf("unsupported value type %T", v)
}

func (st *Store) table(name string) (*memTable, error) {
	mt, ok := st.tables[name]
	if !ok {
		return nil, fmt.Errorf("memstore: %q: %w", name, ErrNoTable)
	}
	return mt, nil
}

func (st *Store) Columns(name string) ([]table.Column, error) {
	mt, err := st.table(name)
	if err != nil {
		return nil, err
	}
	cols := make([]table.Column, mt.columns.Len())
	for i, k := range mt.columns.Keys {
		cols[i] = table.Column{Name: k, Type: mt.columns.Values[i]}
	}
	return cols, nil
}

func (st *Store) Query(name string) (table.StoreCursor, error) {
	mt, err := st.table(name)
	if err != nil {
		return nil, err
	}
	cur := &Cursor{table: mt, pos: -1}
	mt.cursors = append(mt.cursors, cur)
	return cur, nil
}

func (st *Store) Count(name string) (int, error) {
	mt, err := st.table(name)
	if err != nil {
		return 0, err
	}
	return len(mt.rows), nil
}

// AddColumn appends a column with null cells in all rows.
func (st *Store) AddColumn(name, col string, vt attribute.ValueTypes) error {
	mt, err := st.table(name)
	if err != nil {
		return err
	}
	if err := mt.columns.Add(col, vt); err != nil {
		return fmt.Errorf("memstore.Store AddColumn: %w", err)
	}
	for i := range mt.rows {
		mt.rows[i] = append(mt.rows[i], nil)
	}
	mt.invalidate()
	return nil
}

func (st *Store) DropColumn(name, col string) error {
	mt, err := st.table(name)
	if err != nil {
		return err
	}
	idx := mt.columns.IndexByKey(col)
	if idx < 0 {
		return fmt.Errorf("memstore.Store DropColumn: %q: %w", col, ErrNoColumn)
	}
	mt.columns.DeleteByKey(col)
	for i, r := range mt.rows {
		mt.rows[i] = slices.Delete(r, idx, idx+1)
	}
	mt.invalidate()
	return nil
}

// invalidate closes all open cursors of the table.
func (mt *memTable) invalidate() {
	for _, c := range mt.cursors {
		c.closed = true
	}
	mt.cursors = nil
}

// Cursor is a cursor over the rows of a [Store] table.
type Cursor struct {
	table  *memTable
	pos    int
	closed bool
	err    error
}

func (cur *Cursor) Position() int { return cur.pos }

func (cur *Cursor) Absolute(i int) bool {
	if cur.closed || i < -1 || i >= len(cur.table.rows) {
		return false
	}
	cur.pos = i
	return true
}

func (cur *Cursor) Next() bool {
	if cur.closed {
		cur.err = ErrClosed
		return false
	}
	if cur.pos+1 >= len(cur.table.rows) {
		cur.pos = len(cur.table.rows)
		return false
	}
	cur.pos++
	return true
}

// at returns the cell at the current row and given column.
func (cur *Cursor) at(col int) (*any, error) {
	if cur.closed {
		return nil, ErrClosed
	}
	if cur.pos < 0 || cur.pos >= len(cur.table.rows) {
		return nil, fmt.Errorf("memstore.Cursor: not positioned on a row (%d)", cur.pos)
	}
	r := cur.table.rows[cur.pos]
	if col < 0 || col >= len(r) {
		return nil, fmt.Errorf("memstore.Cursor: column %d: %w", col, ErrNoColumn)
	}
	return &r[col], nil
}

func (cur *Cursor) Float(col int) (float64, error) {
	c, err := cur.at(col)
	if err != nil {
		return math.NaN(), err
	}
	switch x := (*c).(type) {
	case float64:
		return x, nil
	case string:
		return strconv.ParseFloat(x, 64)
	}
	return math.NaN(), nil
}

func (cur *Cursor) String(col int) (string, bool, error) {
	c, err := cur.at(col)
	if err != nil {
		return "", false, err
	}
	switch x := (*c).(type) {
	case string:
		return x, true, nil
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), true, nil
	}
	return "", false, nil
}

func (cur *Cursor) SetFloat(col int, v float64) error {
	c, err := cur.at(col)
	if err != nil {
		return err
	}
	if math.IsNaN(v) {
		*c = nil
		return nil
	}
	*c = v
	return nil
}

func (cur *Cursor) SetString(col int, s string, valid bool) error {
	c, err := cur.at(col)
	if err != nil {
		return err
	}
	if !valid {
		*c = nil
		return nil
	}
	*c = s
	return nil
}

func (cur *Cursor) Close() error {
	cur.closed = true
	return nil
}

func (cur *Cursor) Err() error { return cur.err }

var (
	_ table.Store       = (*Store)(nil)
	_ table.StoreCursor = (*Cursor)(nil)
)
