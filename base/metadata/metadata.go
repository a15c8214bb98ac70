// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package metadata provides a map of named any elements
// with generic support for type-safe Get and nil-safe Set.
// It is used for attribute annotations and table metadata.
// Provides default support for "Name", "Unit" and "Comment" standard keys.
package metadata

import (
	"fmt"
	"maps"
	"slices"

	"github.com/ntj/ComplexRapidMiner-sub004/base/errors"
)

// Data is metadata as a map of named any elements
// with generic support for type-safe Get and nil-safe Set.
// In general it is good practice to provide access functions
// that establish standard key names, to avoid issues with typos.
type Data map[string]any

func (md *Data) init() {
	if *md == nil {
		*md = make(map[string]any)
	}
}

// Set sets key to given value, ensuring that
// the map is created if not previously.
func (md *Data) Set(key string, value any) {
	md.init()
	(*md)[key] = value
}

// Delete removes the given key, if present.
func (md *Data) Delete(key string) {
	delete(*md, key)
}

// Get gets metadata value of given type.
// returns error if not present or item is a different type.
func Get[T any](md Data, key string) (T, error) {
	var z T
	x, ok := md[key]
	if !ok {
		return z, fmt.Errorf("key %q not found in metadata", key)
	}
	v, ok := x.(T)
	if !ok {
		return z, fmt.Errorf("key %q has a different type than expected %T: is %T", key, z, x)
	}
	return v, nil
}

// Copy does a shallow copy of metadata from source.
// Any pointer-based values will still point to the same
// underlying data as the source, but the two maps remain
// distinct. It uses [maps.Copy].
func (md *Data) Copy(src Data) {
	if src == nil {
		return
	}
	md.init()
	maps.Copy(*md, src)
}

// Clone returns a shallow copy of the metadata, or nil for empty metadata.
func (md Data) Clone() Data {
	if len(md) == 0 {
		return nil
	}
	return maps.Clone(md)
}

// Keys returns the keys in sorted order.
func (md Data) Keys() []string {
	return slices.Sorted(maps.Keys(md))
}

// SetName sets the "Name" standard key.
func (md *Data) SetName(name string) {
	md.Set("Name", name)
}

// GetName returns the "Name" standard key value (empty if not set).
func (md *Data) GetName() string {
	return errors.Ignore1(Get[string](*md, "Name"))
}

// SetUnit sets the "Unit" standard key, the physical unit of a column.
func (md *Data) SetUnit(unit string) {
	md.Set("Unit", unit)
}

// GetUnit returns the "Unit" standard key value (empty if not set).
func (md *Data) GetUnit() string {
	return errors.Ignore1(Get[string](*md, "Unit"))
}

// SetComment sets the "Comment" standard key.
func (md *Data) SetComment(comment string) {
	md.Set("Comment", comment)
}

// GetComment returns the "Comment" standard key value (empty if not set).
func (md *Data) GetComment() string {
	return errors.Ignore1(Get[string](*md, "Comment"))
}
