// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table_test

import (
	"math"
	"strings"
	"testing"

	"github.com/ntj/ComplexRapidMiner-sub004/attribute"
	"github.com/ntj/ComplexRapidMiner-sub004/memstore"
	"github.com/ntj/ComplexRapidMiner-sub004/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *memstore.Store {
	t.Helper()
	st := memstore.New()
	require.NoError(t, st.CreateTable("people",
		table.Column{Name: "name", Type: attribute.Nominal},
		table.Column{Name: "age", Type: attribute.Integer},
		table.Column{Name: "height", Type: attribute.Real}))
	require.NoError(t, st.Insert("people", "alice", 31, 1.70))
	require.NoError(t, st.Insert("people", "bob", nil, 1.85))
	require.NoError(t, st.Insert("people", nil, 45, nil))
	return st
}

func TestCursorValues(t *testing.T) {
	ct, err := table.NewCursor(newStore(t), "people", attribute.NewFactory(nil))
	require.NoError(t, err)
	defer ct.Close()
	n, err := ct.NumRows()
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	require.Equal(t, 3, ct.NumAttributes())
	name, age := ct.FindAttribute("name"), ct.FindAttribute("age")
	assert.True(t, name.IsNominal())
	assert.Equal(t, 1, age.TableIndex())

	dr, err := ct.DataRow(1)
	require.NoError(t, err)
	v, err := dr.Value(name)
	require.NoError(t, err)
	assert.Equal(t, "bob", name.FormatValue(v))
	v, err = dr.Value(age)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(v))

	require.NoError(t, dr.SetValue(age, 27))
	v, err = dr.Value(age)
	require.NoError(t, err)
	assert.Equal(t, 27.0, v)

	dr, err = ct.DataRow(2)
	require.NoError(t, err)
	v, err = dr.Value(name)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(v))
	i, err := name.Mapping().MapString("carol")
	require.NoError(t, err)
	require.NoError(t, dr.SetValue(name, float64(i)))
	v, err = dr.Value(name)
	require.NoError(t, err)
	assert.Equal(t, "carol", name.FormatValue(v))

	_, err = ct.DataRow(3)
	assert.Error(t, err)
	_, err = ct.DataRow(-1)
	assert.Error(t, err)
}

func TestCursorRowStale(t *testing.T) {
	ct, err := table.NewCursor(newStore(t), "people", attribute.NewFactory(nil))
	require.NoError(t, err)
	age := ct.FindAttribute("age")
	first, err := ct.DataRow(0)
	require.NoError(t, err)
	_, err = ct.DataRow(2)
	require.NoError(t, err)
	_, err = first.Value(age)
	assert.ErrorIs(t, err, table.ErrStaleCursor)
	assert.ErrorIs(t, first.SetValue(age, 1), table.ErrStaleCursor)
}

func TestCursorRowProtocol(t *testing.T) {
	f := attribute.NewFactory(nil)
	ct, err := table.NewCursor(newStore(t), "people", f)
	require.NoError(t, err)
	dr, err := ct.DataRow(0)
	require.NoError(t, err)

	other, err := f.New("weight", attribute.Real)
	require.NoError(t, err)
	other.SetTableIndex(2)
	_, err = dr.Value(other)
	assert.ErrorIs(t, err, table.ErrProtocolViolation)

	height := ct.FindAttribute("height")
	g, err := f.NewComposite("g", attribute.Gauss, height)
	require.NoError(t, err)
	_, err = dr.Value(g)
	assert.ErrorIs(t, err, table.ErrProtocolViolation)

	cm := f.NewView("cm", height, attribute.ModelFunc(func(v float64) float64 { return v * 100 }), nil)
	v, err := dr.Value(cm)
	require.NoError(t, err)
	assert.InDelta(t, 170.0, v, 1e-9)
	assert.ErrorIs(t, dr.SetValue(cm, 1), table.ErrProtocolViolation)

	scaled := height.Clone()
	scaled.AddTransformation(&attribute.Linear{Scale: 2})
	v, err = dr.Value(scaled)
	require.NoError(t, err)
	assert.InDelta(t, 3.4, v, 1e-9)
	require.NoError(t, dr.SetValue(scaled, 4))
	v, err = dr.Value(height)
	require.NoError(t, err)
	assert.Equal(t, 2.0, v)

	scaled.AddTransformation(&attribute.Clip{Min: 0, Max: 1})
	assert.ErrorIs(t, dr.SetValue(scaled, 1), attribute.ErrIrreversibleTransformation)
}

func TestCursorReader(t *testing.T) {
	ct, err := table.NewCursor(newStore(t), "people", attribute.NewFactory(nil))
	require.NoError(t, err)
	height := ct.FindAttribute("height")
	_, err = ct.DataRow(2)
	require.NoError(t, err)

	rd, err := ct.Reader()
	require.NoError(t, err)
	var got []float64
	for rd.Next() {
		v, err := rd.DataRow().Value(height)
		require.NoError(t, err)
		got = append(got, v)
	}
	require.NoError(t, rd.Err())
	require.Len(t, got, 3)
	assert.Equal(t, []float64{1.70, 1.85}, got[:2])
	assert.True(t, math.IsNaN(got[2]))

	rd, err = ct.Reader()
	require.NoError(t, err)
	require.True(t, rd.Next())
	_, err = ct.DataRow(2)
	require.NoError(t, err)
	assert.False(t, rd.Next())
	assert.ErrorIs(t, rd.Err(), table.ErrStaleCursor)
	assert.Nil(t, rd.DataRow())
}

func TestCursorSchemaChange(t *testing.T) {
	st := newStore(t)
	f := attribute.NewFactory(nil)
	ct, err := table.NewCursor(st, "people", f)
	require.NoError(t, err)
	age, height := ct.FindAttribute("age"), ct.FindAttribute("height")
	before, err := ct.DataRow(0)
	require.NoError(t, err)

	w, err := f.New("weight", attribute.Real)
	require.NoError(t, err)
	idx, err := ct.AddAttribute(w)
	require.NoError(t, err)
	assert.Equal(t, 3, idx)
	_, err = before.Value(age)
	assert.ErrorIs(t, err, table.ErrStaleCursor)

	dr, err := ct.DataRow(0)
	require.NoError(t, err)
	v, err := dr.Value(w)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(v))
	require.NoError(t, dr.SetValue(w, 61))

	require.NoError(t, ct.RemoveAttribute(age))
	assert.Equal(t, 3, ct.NumAttributes())
	assert.Equal(t, 1, height.TableIndex())
	assert.Equal(t, 2, w.TableIndex())
	dr, err = ct.DataRow(0)
	require.NoError(t, err)
	v, err = dr.Value(w)
	require.NoError(t, err)
	assert.Equal(t, 61.0, v)
	v, err = dr.Value(height)
	require.NoError(t, err)
	assert.Equal(t, 1.70, v)
	_, err = dr.Value(age)
	assert.ErrorIs(t, err, table.ErrProtocolViolation)
	assert.Error(t, ct.RemoveAttribute(age))

	view := f.NewView("v", w, attribute.ModelFunc(math.Abs), nil)
	_, err = ct.AddAttribute(view)
	assert.ErrorIs(t, err, table.ErrNotStored)

	cols, err := st.Columns("people")
	require.NoError(t, err)
	assert.Equal(t, []table.Column{
		{Name: "name", Type: attribute.Nominal},
		{Name: "height", Type: attribute.Real},
		{Name: "weight", Type: attribute.Real},
	}, cols)
}

func TestCursorCopyAndFormat(t *testing.T) {
	ct, err := table.NewCursor(newStore(t), "people", attribute.NewFactory(nil))
	require.NoError(t, err)
	mt, err := table.NewMemoryFrom(ct)
	require.NoError(t, err)
	require.Equal(t, 3, mt.Len())
	name := mt.FindAttribute("name")
	assert.Equal(t, "bob", name.FormatValue(name.Value(mt.Row(1))))
	assert.True(t, math.IsNaN(name.Value(mt.Row(2))))
	assert.Equal(t, 45.0, mt.FindAttribute("age").Value(mt.Row(2)))

	var b strings.Builder
	require.NoError(t, table.Format(ct, &b, -1))
	assert.Equal(t, "name\tage\theight\nalice\t31\t1.7\nbob\t?\t1.85\n?\t45\t?\n", b.String())

	require.NoError(t, ct.Close())
	_, err = ct.Reader()
	assert.Error(t, err)
	_, err = ct.DataRow(0)
	assert.Error(t, err)
}

func TestNewCursorErrors(t *testing.T) {
	_, err := table.NewCursor(memstore.New(), "nope", attribute.NewFactory(nil))
	assert.ErrorIs(t, err, memstore.ErrNoTable)
}
