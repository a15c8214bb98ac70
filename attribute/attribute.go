// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package attribute provides the column descriptors of an example table:
// named, typed attributes that map to a column position of the rows,
// with an optional chain of value transformations, nominal value
// mappings, derived view attributes and composite attributes.
// Attributes never hold data themselves.
package attribute

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"
	"time"

	"github.com/ntj/ComplexRapidMiner-sub004/base/metadata"
	"github.com/ntj/ComplexRapidMiner-sub004/nominal"
)

var (
	// ErrIrreversibleTransformation is returned when a value is written
	// through a transformation chain containing a step without an inverse.
	ErrIrreversibleTransformation = errors.New("irreversible transformation")

	// ErrUnsupportedValueType is returned for value types that cannot be
	// constructed.
	ErrUnsupportedValueType = errors.New("unsupported value type")

	// ErrReadOnly is returned when writing a view or composite attribute.
	ErrReadOnly = errors.New("attribute is read-only")

	// ErrUnbound is returned when writing an attribute that has not
	// been added to a table and so has no column.
	ErrUnbound = errors.New("attribute has no table index")
)

// Cells is the index-addressed cell access that attributes read and
// write through. It is implemented by all stored row representations.
type Cells interface {
	// Get returns the value at column i, or def if the cell holds no value.
	Get(i int, def float64) float64

	// Set sets the value at column i, where def is the column default.
	Set(i int, v, def float64)
}

// Key is the comparable identity of an attribute, for use as a map key.
// Two attributes are equal iff their keys are equal.
type Key struct {
	Name       string
	TableIndex int
}

// Attribute is the metadata and behavior of one logical column.
// Exactly one of the kind-specific fields applies: a nominal mapping for
// nominal kinds, a view for derived attributes, or inner attributes for
// composite kinds. Attributes are created by a [Factory].
type Attribute struct {
	// Annotations holds free-form metadata such as unit or comment.
	Annotations metadata.Data

	desc            *Descriptor
	transformations []Transformation
	statistics      []Statistics
	construction    *Construction

	mapping nominal.Mapping
	view    *View
	inner   []*Attribute
}

// Descriptor returns the current (possibly shared) descriptor.
func (a *Attribute) Descriptor() *Descriptor { return a.desc }

func (a *Attribute) Name() string             { return a.desc.name }
func (a *Attribute) ValueType() ValueTypes    { return a.desc.valueType }
func (a *Attribute) BlockType() BlockTypes    { return a.desc.blockType }
func (a *Attribute) DefaultValue() float64    { return a.desc.defaultValue }
func (a *Attribute) IsNominal() bool          { return a.mapping != nil }
func (a *Attribute) IsNumeric() bool          { return a.desc.valueType.IsNumeric() }
func (a *Attribute) Mapping() nominal.Mapping { return a.mapping }
func (a *Attribute) View() *View              { return a.view }

// Inner returns the inner attributes of a composite attribute.
func (a *Attribute) Inner() []*Attribute { return a.inner }

// TableIndex returns the column position of the attribute.
// Views delegate to their parent.
func (a *Attribute) TableIndex() int {
	if a.view != nil {
		return a.view.Parent.TableIndex()
	}
	return a.desc.tableIndex
}

// Stored returns true if the attribute occupies its own table column,
// i.e. it is neither a view nor a composite.
func (a *Attribute) Stored() bool {
	return a.view == nil && !a.desc.valueType.IsComposite()
}

// SetName sets the name on a private copy of the descriptor.
func (a *Attribute) SetName(name string) {
	a.desc = a.desc.modified(func(d *Descriptor) { d.name = name })
}

// SetTableIndex sets the table index on a private copy of the descriptor.
func (a *Attribute) SetTableIndex(i int) {
	a.desc = a.desc.modified(func(d *Descriptor) { d.tableIndex = i })
}

// SetBlockType sets the block type on a private copy of the descriptor.
func (a *Attribute) SetBlockType(bt BlockTypes) {
	a.desc = a.desc.modified(func(d *Descriptor) { d.blockType = bt })
}

// SetDefault sets the default value on a private copy of the descriptor.
func (a *Attribute) SetDefault(v float64) {
	a.desc = a.desc.modified(func(d *Descriptor) { d.defaultValue = v })
}

// SetMapping replaces the nominal mapping. It is the responsibility of
// the caller that stored values remain valid for the new mapping.
func (a *Attribute) SetMapping(m nominal.Mapping) {
	a.mapping = m
}

// Value returns the value of this attribute in the given cells:
// the stored cell (or default) with all transformations applied in order.
// Views compute their value from the parent, and composites return
// the expectation of their [Complex] value.
func (a *Attribute) Value(c Cells) float64 {
	switch {
	case a.view != nil:
		return a.view.value(a, c)
	case a.desc.valueType.IsComposite():
		return a.ComplexValue(c).Expectation()
	default:
		return a.Transform(c.Get(a.desc.tableIndex, a.desc.defaultValue))
	}
}

// SetValue writes v to the given cells, applying the inverse
// transformations in reverse order to obtain the stored value.
func (a *Attribute) SetValue(c Cells, v float64) error {
	if !a.Stored() {
		return fmt.Errorf("attribute.Attribute SetValue: %q: %w", a.desc.name, ErrReadOnly)
	}
	if a.desc.tableIndex < 0 {
		return fmt.Errorf("attribute.Attribute SetValue: %q: %w", a.desc.name, ErrUnbound)
	}
	raw, err := a.Untransform(v)
	if err != nil {
		return err
	}
	c.Set(a.desc.tableIndex, raw, a.desc.defaultValue)
	return nil
}

// Transform applies the transformation chain to a stored value.
func (a *Attribute) Transform(raw float64) float64 {
	for _, t := range a.transformations {
		raw = t.Transform(a, raw)
	}
	return raw
}

// Untransform applies the inverse transformations in reverse order,
// returning [ErrIrreversibleTransformation] if any step has no inverse.
func (a *Attribute) Untransform(v float64) (float64, error) {
	for i := len(a.transformations) - 1; i >= 0; i-- {
		rt, ok := a.transformations[i].(Reversible)
		if !ok {
			return math.NaN(), fmt.Errorf("attribute.Attribute Untransform: %q step %d (%T): %w", a.desc.name, i, a.transformations[i], ErrIrreversibleTransformation)
		}
		v = rt.Inverse(a, v)
	}
	return v, nil
}

// AddTransformation appends a transformation to the end of the chain.
func (a *Attribute) AddTransformation(t Transformation) {
	a.transformations = append(a.transformations, t)
}

// Transformations returns the transformation chain.
func (a *Attribute) Transformations() []Transformation { return a.transformations }

// ClearTransformations removes all transformations.
func (a *Attribute) ClearTransformations() { a.transformations = nil }

// Construction returns the record of how this attribute was constructed.
func (a *Attribute) Construction() *Construction { return a.construction }

// SetConstruction sets the construction record.
func (a *Attribute) SetConstruction(c *Construction) { a.construction = c }

// Equal returns true if both attributes have the same name and table index.
func (a *Attribute) Equal(o *Attribute) bool {
	if a == nil || o == nil {
		return a == o
	}
	return a.desc.Equal(o.desc)
}

// Key returns the identity used for [Attribute.Equal].
func (a *Attribute) Key() Key {
	return Key{Name: a.desc.name, TableIndex: a.desc.tableIndex}
}

// Clone returns a copy that shares the descriptor until one of the two
// is modified. All transformations except the last are shared, the last
// one is cloned. The construction record, annotations and statistics are
// copied. The nominal mapping and view parent are shared, since the clone
// refers to the same stored values: a symbol added through one attribute's
// mapping is visible through the other. To give the clone its own symbols,
// call SetMapping with a clone of the mapping.
func (a *Attribute) Clone() *Attribute {
	cp := &Attribute{
		Annotations:  a.Annotations.Clone(),
		desc:         a.desc,
		construction: a.construction.Clone(),
		mapping:      a.mapping,
	}
	if n := len(a.transformations); n > 0 {
		cp.transformations = slices.Clone(a.transformations)
		cp.transformations[n-1] = a.transformations[n-1].Clone()
	}
	for _, s := range a.statistics {
		cp.statistics = append(cp.statistics, s.Clone())
	}
	if a.view != nil {
		cp.view = &View{Parent: a.view.Parent, Model: a.view.Model}
	}
	for _, in := range a.inner {
		cp.inner = append(cp.inner, in.Clone())
	}
	return cp
}

// FormatValue returns the textual form of a value of this attribute:
// "?" for missing values, the mapped string for nominal values,
// the formatted UTC time for date and time values, and the shortest
// decimal representation otherwise.
func (a *Attribute) FormatValue(v float64) string {
	if math.IsNaN(v) {
		return "?"
	}
	if a.mapping != nil {
		s, err := a.mapping.MapIndex(int(v))
		if err != nil {
			return "?"
		}
		return s
	}
	if layout := a.desc.valueType.Layout(); layout != "" {
		return time.UnixMilli(int64(v)).UTC().Format(layout)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func (a *Attribute) String() string {
	return fmt.Sprintf("#%d: %s (%s/%s)", a.TableIndex(), a.desc.name, a.desc.valueType, a.desc.blockType)
}
