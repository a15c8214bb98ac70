// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import "github.com/ntj/ComplexRapidMiner-sub004/attribute"

// Column describes a column of a stored table.
type Column struct {
	Name string
	Type attribute.ValueTypes
}

// Store is a backing store of named tables that can be queried
// through cursors. Nominal columns hold strings, all other columns
// hold numbers.
type Store interface {
	// Columns returns the columns of the table, in cursor order.
	Columns(table string) ([]Column, error)

	// Query returns a new cursor positioned before the first row.
	Query(table string) (StoreCursor, error)

	// Count returns the number of rows of the table.
	Count(table string) (int, error)

	// AddColumn appends a column to the table.
	AddColumn(table, name string, vt attribute.ValueTypes) error

	// DropColumn removes the named column from the table.
	DropColumn(table, name string) error
}

// StoreCursor is a position in a query result. Columns are addressed
// by their position in [Store.Columns].
type StoreCursor interface {
	// Position returns the current row index, -1 before the first row.
	Position() int

	// Absolute moves to row i, where -1 is before the first row.
	// It returns false if i is out of range.
	Absolute(i int) bool

	// Next moves to the next row, returning false after the last row.
	Next() bool

	// Float returns the numeric value of a column, NaN for null.
	Float(col int) (float64, error)

	// String returns the text value of a column, with valid false for null.
	String(col int) (s string, valid bool, err error)

	// SetFloat updates the numeric value of a column, NaN for null.
	SetFloat(col int, v float64) error

	// SetString updates the text value of a column, null if not valid.
	SetString(col int, s string, valid bool) error

	// Close releases the cursor.
	Close() error

	// Err returns the error that stopped [StoreCursor.Next], if any.
	Err() error
}
