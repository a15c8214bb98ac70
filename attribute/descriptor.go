// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package attribute

// Descriptor holds the identity of an attribute column.
// A Descriptor is never modified after construction, so any number
// of attributes can share one. Attribute mutators replace their
// descriptor with a modified copy instead.
type Descriptor struct {
	name         string
	tableIndex   int
	valueType    ValueTypes
	blockType    BlockTypes
	defaultValue float64
}

// NewDescriptor returns a new descriptor that is not yet
// assigned to a table column (table index -1).
func NewDescriptor(name string, vt ValueTypes, bt BlockTypes, defaultValue float64) *Descriptor {
	return &Descriptor{name: name, tableIndex: -1, valueType: vt, blockType: bt, defaultValue: defaultValue}
}

func (d *Descriptor) Name() string          { return d.name }
func (d *Descriptor) TableIndex() int       { return d.tableIndex }
func (d *Descriptor) ValueType() ValueTypes { return d.valueType }
func (d *Descriptor) BlockType() BlockTypes { return d.blockType }
func (d *Descriptor) DefaultValue() float64 { return d.defaultValue }

// Equal returns true if both descriptors have the same name and table index.
func (d *Descriptor) Equal(o *Descriptor) bool {
	return d.name == o.name && d.tableIndex == o.tableIndex
}

// modified returns a copy of the descriptor with fn applied to the copy.
func (d *Descriptor) modified(fn func(cp *Descriptor)) *Descriptor {
	cp := *d
	fn(&cp)
	return &cp
}
