// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package attribute

import (
	"fmt"

	"github.com/ntj/ComplexRapidMiner-sub004/base/errors"
	"github.com/ntj/ComplexRapidMiner-sub004/nominal"
)

// DefaultPrefix is the prefix for generated names of unnamed attributes.
const DefaultPrefix = "gensym"

// Factory constructs attributes of all value types, generating
// names for unnamed attributes with its [Namer].
type Factory struct {
	Namer *Namer
}

// Default is the factory using the process-wide [DefaultNamer].
var Default = NewFactory(DefaultNamer)

// NewFactory returns a factory generating names with the given namer,
// or with a new private namer if nil.
func NewFactory(nm *Namer) *Factory {
	if nm == nil {
		nm = NewNamer()
	}
	return &Factory{Namer: nm}
}

// New returns a new single value attribute of the given type.
// An empty name is replaced by a generated one.
func (f *Factory) New(name string, vt ValueTypes) (*Attribute, error) {
	return f.NewBlock(name, vt, SingleValue)
}

// NewBlock returns a new attribute of the given value and block type.
// Nominal types get a mapping: [nominal.Binary] for [Binary] and
// [nominal.General] for all other nominal types. Composite types get
// no inner attributes, see [Factory.NewComposite].
func (f *Factory) NewBlock(name string, vt ValueTypes, bt BlockTypes) (*Attribute, error) {
	var mapping nominal.Mapping
	switch vt {
	case Binary:
		mapping = nominal.NewBinary()
	case Nominal, General, String, FilePath:
		mapping = nominal.NewGeneral()
	case Numeric, Integer, Real, DateTime, Date, Time, Relational, Map, DataMap, Array:
	case ComplexComposite, Matrix, Tensor, PointList, Uniform, Gauss, Histogram:
	default:
		return nil, fmt.Errorf("attribute.Factory New: cannot construct value type %v: %w", vt, ErrUnsupportedValueType)
	}
	if name == "" {
		name = f.Namer.Next(DefaultPrefix)
	}
	a := &Attribute{
		desc:         NewDescriptor(name, vt, bt, 0),
		construction: NewConstruction(name),
		mapping:      mapping,
		statistics:   defaultStatistics(vt),
	}
	return a, nil
}

// NewComposite returns a new composite attribute of the given type
// wrapping the given inner attributes.
func (f *Factory) NewComposite(name string, vt ValueTypes, inner ...*Attribute) (*Attribute, error) {
	if !vt.IsComposite() {
		return nil, fmt.Errorf("attribute.Factory NewComposite: %v is not a composite type: %w", vt, ErrUnsupportedValueType)
	}
	a, err := f.New(name, vt)
	if err != nil {
		return nil, err
	}
	a.inner = inner
	return a, nil
}

// NewView returns a new view attribute computing its value with model
// from the value of parent. With a non-nil mapping the view is nominal,
// otherwise it is [Real].
func (f *Factory) NewView(name string, parent *Attribute, model ViewModel, mapping nominal.Mapping) *Attribute {
	vt := Real
	if mapping != nil {
		vt = Nominal
	}
	if name == "" {
		name = f.Namer.Next(DefaultPrefix)
	}
	return &Attribute{
		desc:         NewDescriptor(name, vt, SingleValue, 0),
		construction: NewConstruction(name),
		mapping:      mapping,
		view:         &View{Parent: parent, Model: model},
		statistics:   defaultStatistics(vt),
	}
}

// CloneWithFunctionName returns a clone of att. If fn is not empty, the
// clone is renamed to fn(name) and records fn applied to the construction
// of att as its construction.
func (f *Factory) CloneWithFunctionName(att *Attribute, fn string) *Attribute {
	cp := att.Clone()
	if fn == "" {
		return cp
	}
	name := fn + "(" + att.Name() + ")"
	cp.SetName(name)
	arg := att.Construction().Clone()
	if arg == nil {
		arg = NewConstruction(att.Name())
	}
	cp.construction = &Construction{Name: name, Function: fn, Args: []*Construction{arg}}
	return cp
}

// ChangeValueType returns a new attribute of the given type with the
// name, table index, block type and default of att. The nominal values
// are copied only if both types are nominal. This must not be used on
// attributes of a table whose rows hold values encoded for the old type.
func (f *Factory) ChangeValueType(att *Attribute, vt ValueTypes) (*Attribute, error) {
	na, err := f.NewBlock(att.Name(), vt, att.BlockType())
	if err != nil {
		return nil, err
	}
	na.desc = na.desc.modified(func(d *Descriptor) {
		d.tableIndex = att.desc.tableIndex
		d.defaultValue = att.desc.defaultValue
	})
	na.Annotations = att.Annotations.Clone()
	if att.mapping != nil && na.mapping != nil {
		for _, v := range att.mapping.Values() {
			if _, err := na.mapping.MapString(v); err != nil {
				return nil, err
			}
		}
	}
	return na, nil
}

// New returns a new attribute from the [Default] factory.
func New(name string, vt ValueTypes) (*Attribute, error) {
	return Default.New(name, vt)
}

// NewBlock returns a new attribute from the [Default] factory.
func NewBlock(name string, vt ValueTypes, bt BlockTypes) (*Attribute, error) {
	return Default.NewBlock(name, vt, bt)
}

// NewComposite returns a new composite attribute from the [Default] factory.
func NewComposite(name string, vt ValueTypes, inner ...*Attribute) (*Attribute, error) {
	return Default.NewComposite(name, vt, inner...)
}

// NewView returns a new view attribute from the [Default] factory.
func NewView(name string, parent *Attribute, model ViewModel, mapping nominal.Mapping) *Attribute {
	return Default.NewView(name, parent, model, mapping)
}

// CloneWithFunctionName calls [Factory.CloneWithFunctionName] on the [Default] factory.
func CloneWithFunctionName(att *Attribute, fn string) *Attribute {
	return Default.CloneWithFunctionName(att, fn)
}

// ChangeValueType calls [Factory.ChangeValueType] on the [Default] factory.
func ChangeValueType(att *Attribute, vt ValueTypes) (*Attribute, error) {
	return Default.ChangeValueType(att, vt)
}

// Must returns a new attribute from the [Default] factory,
// panicking on unsupported value types. It is intended for
// static attribute definitions.
func Must(name string, vt ValueTypes) *Attribute {
	return errors.Must(Default.New(name, vt))
}
