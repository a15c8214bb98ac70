// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package attribute

import (
	"strings"

	"github.com/jinzhu/copier"
	"github.com/ntj/ComplexRapidMiner-sub004/base/errors"
)

// Construction records how an attribute was derived: the function that
// generated it and the constructions of its arguments. A record without
// a function describes an original attribute by name.
type Construction struct {
	// Name is the name of the attribute at the time it was constructed.
	Name string `yaml:"name"`

	// Function is the generating function, empty for original attributes.
	Function string `yaml:"function,omitempty"`

	// Args are the constructions of the function arguments.
	Args []*Construction `yaml:"args,omitempty"`
}

// NewConstruction returns the record of an original attribute.
func NewConstruction(name string) *Construction {
	return &Construction{Name: name}
}

// Clone returns a deep copy, or nil for a nil record.
func (c *Construction) Clone() *Construction {
	if c == nil {
		return nil
	}
	cp := &Construction{}
	errors.Log(copier.CopyWithOption(cp, c, copier.Option{DeepCopy: true}))
	return cp
}

// Depth returns the nesting depth of function applications,
// 0 for original attributes.
func (c *Construction) Depth() int {
	if c == nil || c.Function == "" {
		return 0
	}
	d := 0
	for _, a := range c.Args {
		d = max(d, a.Depth())
	}
	return d + 1
}

// String returns the construction in function notation, e.g. "log(age)".
func (c *Construction) String() string {
	if c == nil {
		return ""
	}
	if c.Function == "" {
		return c.Name
	}
	var b strings.Builder
	b.WriteString(c.Function)
	b.WriteByte('(')
	for i, a := range c.Args {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(a.String())
	}
	b.WriteByte(')')
	return b.String()
}
