// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"math"
	"strings"
	"testing"

	"github.com/ntj/ComplexRapidMiner-sub004/attribute"
	"github.com/ntj/ComplexRapidMiner-sub004/row"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingRow counts the calls of EnsureColumns.
type countingRow struct {
	row.Row
	ensures int
}

func (cr *countingRow) EnsureColumns(n int) {
	cr.ensures++
	cr.Row.EnsureColumns(n)
}

func newAttributes(t *testing.T, f *attribute.Factory, n int) []*attribute.Attribute {
	t.Helper()
	atts := make([]*attribute.Attribute, n)
	for i := range atts {
		a, err := f.New("", attribute.Real)
		require.NoError(t, err)
		atts[i] = a
	}
	return atts
}

func TestMemoryGrowth(t *testing.T) {
	f := attribute.NewFactory(nil)
	mt, err := NewMemory(newAttributes(t, f, 5), Options{Increment: 10})
	require.NoError(t, err)
	assert.Equal(t, 5, mt.Capacity())

	var rows []*countingRow
	for i := range 3 {
		cr := &countingRow{Row: row.NewDouble(5)}
		mt.AddRow(cr)
		for j, a := range mt.Attributes() {
			require.NoError(t, a.SetValue(cr, float64(10*i+j+1)))
		}
		rows = append(rows, cr)
	}
	for _, cr := range rows {
		cr.ensures = 0
	}

	for i := 5; i < 15; i++ {
		a, err := f.New("", attribute.Real)
		require.NoError(t, err)
		idx, err := mt.AddAttribute(a)
		require.NoError(t, err)
		assert.Equal(t, i, idx)
		assert.Equal(t, 15, mt.Capacity())
	}
	for _, cr := range rows {
		assert.Equal(t, 1, cr.ensures)
	}

	a, err := f.New("", attribute.Real)
	require.NoError(t, err)
	_, err = mt.AddAttribute(a)
	require.NoError(t, err)
	assert.Equal(t, 25, mt.Capacity())
	for _, cr := range rows {
		assert.Equal(t, 2, cr.ensures)
	}

	for i, cr := range rows {
		for j := range 5 {
			assert.Equal(t, float64(10*i+j+1), mt.Attribute(j).Value(cr))
		}
		assert.Equal(t, 0.0, mt.Attribute(12).Value(cr))
	}
}

func TestMemorySlots(t *testing.T) {
	f := attribute.NewFactory(nil)
	atts := newAttributes(t, f, 3)
	mt, err := NewMemory(atts, DefaultOptions())
	require.NoError(t, err)
	r := mt.NewRow()
	require.NoError(t, atts[1].SetValue(r, 42))

	require.NoError(t, mt.RemoveAttribute(atts[1]))
	assert.Equal(t, 2, mt.NumAttributes())
	assert.Equal(t, 3, mt.Columns())
	assert.Same(t, atts[2], mt.Attribute(1))
	assert.Error(t, mt.RemoveAttribute(atts[1]))

	n, err := f.New("new", attribute.Real)
	require.NoError(t, err)
	n.SetDefault(7)
	idx, err := mt.AddAttribute(n)
	require.NoError(t, err)
	assert.Equal(t, 1, idx)
	assert.Equal(t, 1, n.TableIndex())
	assert.Equal(t, 7.0, n.Value(r))
	assert.Same(t, n, mt.FindAttribute("new"))
	assert.Nil(t, mt.FindAttribute("nope"))

	v := f.NewView("v", n, attribute.ModelFunc(math.Sqrt), nil)
	_, err = mt.AddAttribute(v)
	assert.ErrorIs(t, err, ErrNotStored)
	c, err := f.NewComposite("c", attribute.Gauss, n, atts[0])
	require.NoError(t, err)
	assert.ErrorIs(t, mt.AddAttributes(c), ErrNotStored)
}

func TestMemoryRows(t *testing.T) {
	atts := newAttributes(t, attribute.NewFactory(nil), 2)
	opts := DefaultOptions()
	opts.Factory = row.NewFactory(row.DoubleSparseArray)
	mt, err := NewMemory(atts, opts)
	require.NoError(t, err)
	var rows []row.Row
	for i := range 4 {
		r := mt.NewRow()
		assert.Equal(t, row.DoubleSparseArray, r.Kind())
		require.NoError(t, atts[0].SetValue(r, float64(i)))
		rows = append(rows, r)
	}
	n, err := mt.NumRows()
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	require.NoError(t, mt.RemoveRow(1))
	assert.Error(t, mt.RemoveRow(3))
	assert.True(t, mt.RemoveRowValue(rows[2]))
	assert.False(t, mt.RemoveRowValue(rows[2]))
	assert.Equal(t, 2, mt.Len())
	assert.Same(t, rows[3], mt.Row(1))
	assert.Nil(t, mt.Row(2))

	dr, err := mt.DataRow(1)
	require.NoError(t, err)
	v, err := dr.Value(atts[0])
	require.NoError(t, err)
	assert.Equal(t, 3.0, v)
	require.NoError(t, dr.SetValue(atts[1], 5))
	assert.Equal(t, 5.0, atts[1].Value(rows[3]))
	assert.Same(t, rows[3], Row(dr))
	_, err = mt.DataRow(2)
	assert.Error(t, err)

	rd, err := mt.Reader()
	require.NoError(t, err)
	var got []float64
	for rd.Next() {
		v, err := rd.DataRow().Value(atts[0])
		require.NoError(t, err)
		got = append(got, v)
	}
	require.NoError(t, rd.Err())
	assert.Equal(t, []float64{0, 3}, got)
	assert.Nil(t, rd.DataRow())

	mt.Trim()
	mt.Clear()
	assert.Equal(t, 0, mt.Len())
}

func TestMemoryFromReader(t *testing.T) {
	f := attribute.NewFactory(nil)
	name, err := f.New("name", attribute.Nominal)
	require.NoError(t, err)
	age, err := f.New("age", attribute.Integer)
	require.NoError(t, err)
	atts := []*attribute.Attribute{name, age}
	for i, a := range atts {
		a.SetTableIndex(i)
	}
	text := "alice 31\nbob ?\n"
	mt, err := NewMemoryFromReader(atts, row.NewTextReader(strings.NewReader(text), row.NewFactory(row.IntArray), atts), DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, 2, mt.Len())
	assert.Equal(t, "bob", name.FormatValue(name.Value(mt.Row(1))))
	assert.Equal(t, 31.0, age.Value(mt.Row(0)))
	assert.True(t, math.IsNaN(age.Value(mt.Row(1))))

	_, err = NewMemoryFromReader(atts, row.NewTextReader(strings.NewReader("carol\n"), row.NewFactory(row.IntArray), atts), DefaultOptions())
	assert.Error(t, err)
}

func TestMemoryFrom(t *testing.T) {
	f := attribute.NewFactory(nil)
	atts := newAttributes(t, f, 3)
	atts[1].AddTransformation(&attribute.Clip{Min: 0, Max: 1})
	opts := DefaultOptions()
	opts.Factory = row.NewFactory(row.ShortArray)
	src, err := NewMemory(atts, opts)
	require.NoError(t, err)
	src.Meta.SetName("source")
	r := src.NewRow()
	r.Set(0, 1, 0)
	r.Set(1, 5, 0)
	r.Set(2, math.NaN(), 0)
	require.NoError(t, src.RemoveAttribute(atts[0]))

	cp, err := NewMemoryFrom(src)
	require.NoError(t, err)
	assert.Equal(t, "source", cp.Meta.GetName())
	require.Equal(t, 2, cp.NumAttributes())
	require.Equal(t, 1, cp.Len())
	c0, c1 := cp.Attribute(0), cp.Attribute(1)
	assert.Equal(t, atts[1].Name(), c0.Name())
	assert.Equal(t, 0, c0.TableIndex())
	assert.Equal(t, 1, atts[1].TableIndex())
	assert.Equal(t, row.DoubleArray, cp.Row(0).Kind())
	assert.Equal(t, 5.0, cp.Row(0).Get(0, 0))
	assert.Equal(t, 1.0, c0.Value(cp.Row(0)))
	assert.True(t, math.IsNaN(c1.Value(cp.Row(0))))

	r.Set(1, 0.5, 0)
	assert.Equal(t, 5.0, cp.Row(0).Get(0, 0))
}

func TestFormat(t *testing.T) {
	f := attribute.NewFactory(nil)
	color, err := f.New("color", attribute.Nominal)
	require.NoError(t, err)
	size, err := f.New("size", attribute.Real)
	require.NoError(t, err)
	mt, err := NewMemory([]*attribute.Attribute{color, size}, DefaultOptions())
	require.NoError(t, err)
	for i, c := range []string{"red", "blue", "red"} {
		r := mt.NewRow()
		ci, err := color.Mapping().MapString(c)
		require.NoError(t, err)
		require.NoError(t, color.SetValue(r, float64(ci)))
		require.NoError(t, size.SetValue(r, float64(i)+0.5))
	}
	mt.Row(1).Set(1, math.NaN(), 0)
	var b strings.Builder
	require.NoError(t, Format(mt, &b, 2))
	assert.Equal(t, "color\tsize\nred\t0.5\nblue\t?\n", b.String())
	b.Reset()
	require.NoError(t, Format(mt, &b, -1))
	assert.Equal(t, 4, strings.Count(b.String(), "\n"))
}

func TestSchema(t *testing.T) {
	f := attribute.NewFactory(nil)
	color, err := f.New("color", attribute.General)
	require.NoError(t, err)
	for _, c := range []string{"red", "blue"} {
		_, err := color.Mapping().MapString(c)
		require.NoError(t, err)
	}
	color.Annotations.SetComment("paint")
	day, err := f.NewBlock("day", attribute.Date, attribute.ValueSeriesStart)
	require.NoError(t, err)
	day.SetDefault(math.NaN())
	lg := f.CloneWithFunctionName(day, "log")
	mt, err := NewMemory([]*attribute.Attribute{color, day, lg}, DefaultOptions())
	require.NoError(t, err)

	var b strings.Builder
	require.NoError(t, SaveSchema(&b, mt.Attributes()))
	assert.Contains(t, b.String(), "type: general")
	assert.Contains(t, b.String(), "block: value_series_start")

	atts, err := OpenSchema(strings.NewReader(b.String()), attribute.NewFactory(nil))
	require.NoError(t, err)
	require.Len(t, atts, 3)
	assert.True(t, atts[0].Equal(color))
	assert.Equal(t, attribute.General, atts[0].ValueType())
	assert.Equal(t, []string{"red", "blue"}, atts[0].Mapping().Values())
	assert.Equal(t, "paint", atts[0].Annotations.GetComment())
	assert.Equal(t, attribute.ValueSeriesStart, atts[1].BlockType())
	assert.True(t, math.IsNaN(atts[1].DefaultValue()))
	assert.Equal(t, 2, atts[2].TableIndex())
	assert.Equal(t, "log(day)", atts[2].Construction().String())

	v := f.NewView("v", color, attribute.ModelFunc(math.Abs), nil)
	assert.ErrorIs(t, SaveSchema(&b, []*attribute.Attribute{v}), ErrNotStored)
	_, err = OpenSchema(strings.NewReader("attributes:\n  - name: x\n    type: real\n    values: [a]\n"), f)
	assert.Error(t, err)
	_, err = OpenSchema(strings.NewReader("attributes:\n  - name: x\n    type: quaternion\n"), f)
	assert.Error(t, err)
}
