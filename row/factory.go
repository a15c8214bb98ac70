// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package row

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/ntj/ComplexRapidMiner-sub004/attribute"
	"github.com/ntj/ComplexRapidMiner-sub004/base/errors"
	"github.com/shopspring/decimal"
)

// DefaultMissingMarker is the textual form of a missing value.
const DefaultMissingMarker = "?"

// Factory creates rows of one representation kind, and parses
// textual cells into row values.
type Factory struct {
	// Kind is the representation of created rows.
	Kind Kinds

	// DecimalPoint is the decimal separator of numeric text cells.
	DecimalPoint string

	// MissingMarker is the text of a missing value.
	// Empty cells are always missing.
	MissingMarker string

	// InitialSparseCapacity is the initial capacity of sparse array rows.
	InitialSparseCapacity int
}

// NewFactory returns a factory for rows of the given kind with
// the default decimal point, missing marker and sparse capacity.
func NewFactory(kind Kinds) *Factory {
	return &Factory{
		Kind:                  kind,
		DecimalPoint:          ".",
		MissingMarker:         DefaultMissingMarker,
		InitialSparseCapacity: DefaultSparseCapacity,
	}
}

// New returns a new row with the given number of columns.
// Sparse rows ignore size.
func (f *Factory) New(size int) Row {
	switch f.Kind {
	case DoubleArray:
		return NewDouble(size)
	case FloatArray:
		return NewFloat(size)
	case LongArray:
		return NewLong(size)
	case IntArray:
		return NewInt(size)
	case ShortArray:
		return NewShort(size)
	case ByteArray:
		return NewByte(size)
	case BooleanArray:
		return NewBool(size)
	case DoubleSparseArray:
		return NewSparseDouble(f.InitialSparseCapacity)
	case FloatSparseArray:
		return NewSparseFloat(f.InitialSparseCapacity)
	case LongSparseArray:
		return NewSparseLong(f.InitialSparseCapacity)
	case IntSparseArray:
		return NewSparseInt(f.InitialSparseCapacity)
	case ShortSparseArray:
		return NewSparseShort(f.InitialSparseCapacity)
	case ByteSparseArray:
		return NewSparseByte(f.InitialSparseCapacity)
	case BooleanSparseArray:
		return NewSparseBool(f.InitialSparseCapacity)
	case SparseMap:
		return NewMap()
	}
	panic(fmt.Sprintf("row.Factory New: invalid kind %v", f.Kind))
}

// FromValues returns a new row holding the given raw values.
// With atts, value i is stored at the table index of atts[i] using its
// default, otherwise at column i with default 0.
func (f *Factory) FromValues(vals []float64, atts []*attribute.Attribute) Row {
	if atts == nil {
		r := f.New(len(vals))
		for i, v := range vals {
			r.Set(i, v, 0)
		}
		return r
	}
	r := f.New(columns(atts))
	for i, v := range vals[:min(len(vals), len(atts))] {
		r.Set(atts[i].TableIndex(), v, atts[i].DefaultValue())
	}
	return r
}

// FromStrings returns a new row holding the parsed text cells, where
// cell i is the value of atts[i]. Missing and empty cells are NaN,
// nominal cells are mapped to their index, and date and time cells are
// parsed to Unix milliseconds. Numeric cells that cannot be parsed are
// logged and stored as NaN.
func (f *Factory) FromStrings(strs []string, atts []*attribute.Attribute) (Row, error) {
	if len(strs) != len(atts) {
		return nil, fmt.Errorf("row.Factory FromStrings: %d values for %d attributes", len(strs), len(atts))
	}
	r := f.New(columns(atts))
	for i, s := range strs {
		att := atts[i]
		v, err := f.parse(strings.TrimSpace(s), att)
		if err != nil {
			return nil, fmt.Errorf("row.Factory FromStrings: column %d (%s): %w", i, att.Name(), err)
		}
		if err := att.SetValue(r, v); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// parse returns the value of the text s for the given attribute.
// Only nominal mapping failures are returned as errors.
func (f *Factory) parse(s string, att *attribute.Attribute) (float64, error) {
	if s == "" || s == f.MissingMarker {
		return math.NaN(), nil
	}
	if att.IsNominal() {
		i, err := att.Mapping().MapString(s)
		return float64(i), err
	}
	if layout := att.ValueType().Layout(); layout != "" {
		t, err := time.ParseInLocation(layout, s, time.UTC)
		if err != nil {
			return errors.Warn(0.0, err)(math.NaN(), "value", s, "attribute", att.Name()), nil
		}
		return float64(t.UnixMilli()), nil
	}
	if f.DecimalPoint != "" && f.DecimalPoint != "." {
		s = strings.Replace(s, f.DecimalPoint, ".", 1)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return errors.Warn(0.0, err)(math.NaN(), "value", s, "attribute", att.Name()), nil
	}
	return d.InexactFloat64(), nil
}

// columns returns the number of columns needed for the stored attributes.
func columns(atts []*attribute.Attribute) int {
	n := 0
	for _, a := range atts {
		n = max(n, a.TableIndex()+1)
	}
	return n
}
