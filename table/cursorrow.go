// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"fmt"
	"math"

	"github.com/ntj/ComplexRapidMiner-sub004/attribute"
)

// CursorRow is a row of a [Cursor] table, bound to the cursor position
// at the time it was obtained. Every access fails with [ErrStaleCursor]
// once the cursor has moved.
type CursorRow struct {
	table  *Cursor
	cursor StoreCursor
	pos    int
}

// Position returns the row index the row is bound to.
func (cr *CursorRow) Position() int { return cr.pos }

// column checks that the row is current and att is a stored column
// of the table, returning the column position.
func (cr *CursorRow) column(att *attribute.Attribute) (int, error) {
	if cr.table.cursor != cr.cursor || cr.cursor.Position() != cr.pos {
		return -1, fmt.Errorf("table.CursorRow: row %d: %w", cr.pos, ErrStaleCursor)
	}
	col := att.TableIndex()
	if !att.Stored() || col < 0 || col >= len(cr.table.atts) || !cr.table.atts[col].Equal(att) {
		return -1, fmt.Errorf("table.CursorRow: %q: %w", att.Name(), ErrProtocolViolation)
	}
	return col, nil
}

// Value returns the value of the attribute in the current cursor row.
// Nominal columns are mapped to their index in the mapping of att.
// Views are computed from the value of their parent.
func (cr *CursorRow) Value(att *attribute.Attribute) (float64, error) {
	if v := att.View(); v != nil {
		pv, err := cr.Value(v.Parent)
		if err != nil {
			return math.NaN(), err
		}
		return v.Model.Value(att, pv), nil
	}
	col, err := cr.column(att)
	if err != nil {
		return math.NaN(), err
	}
	raw, err := cr.raw(att, col)
	if err != nil {
		return math.NaN(), err
	}
	return att.Transform(raw), nil
}

func (cr *CursorRow) raw(att *attribute.Attribute, col int) (float64, error) {
	if !att.IsNominal() {
		return cr.cursor.Float(col)
	}
	s, valid, err := cr.cursor.String(col)
	if err != nil || !valid {
		return math.NaN(), err
	}
	i, err := att.Mapping().MapString(s)
	if err != nil {
		return math.NaN(), err
	}
	return float64(i), nil
}

// SetValue writes the untransformed value of the attribute to the
// current cursor row. Nominal values are written as their string.
func (cr *CursorRow) SetValue(att *attribute.Attribute, v float64) error {
	col, err := cr.column(att)
	if err != nil {
		return err
	}
	raw, err := att.Untransform(v)
	if err != nil {
		return err
	}
	if !att.IsNominal() {
		return cr.cursor.SetFloat(col, raw)
	}
	if math.IsNaN(raw) {
		return cr.cursor.SetString(col, "", false)
	}
	s, err := att.Mapping().MapIndex(int(raw))
	if err != nil {
		return err
	}
	return cr.cursor.SetString(col, s, true)
}
