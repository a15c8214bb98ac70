// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package nominal provides the bidirectional string to index mappings
// used to store categorical (nominal) values as numeric codes.
package nominal

import (
	"errors"
	"slices"
)

var (
	// ErrCapacityExceeded is returned when a [Binary] mapping is offered
	// a third distinct value.
	ErrCapacityExceeded = errors.New("nominal mapping capacity exceeded")

	// ErrIndexOutOfRange is returned when an index outside of the
	// populated range of a mapping is requested.
	ErrIndexOutOfRange = errors.New("nominal index out of range")
)

// Mapping is a bidirectional mapping between strings and non-negative
// integer indexes. Once a string is mapped to an index, [Mapping.MapIndex]
// returns that string for the index until [Mapping.Clear] is called.
type Mapping interface {
	// MapString returns the index of the given string, assigning
	// the next free index if the string has not been seen before.
	MapString(s string) (int, error)

	// Index returns the index of the given string, or -1 if it is
	// not mapped. It never modifies the mapping.
	Index(s string) int

	// MapIndex returns the string for the given index.
	MapIndex(i int) (string, error)

	// SetMapping overwrites the string stored at the given index.
	// It is the responsibility of the caller that numeric codes
	// already stored for the old string remain meaningful.
	SetMapping(s string, i int) error

	// SortMappings reassigns indexes in lexicographic order of the strings.
	// Any numeric codes stored before the call refer to the old indexes,
	// so this must not be called once data rows hold values of this mapping.
	SortMappings()

	// Size returns the number of mapped strings.
	Size() int

	// Values returns the mapped strings in index order.
	Values() []string

	// Clear removes all mappings.
	Clear()

	// Clone returns an independent copy of the mapping.
	Clone() Mapping
}

// MapNullable maps the given optional string, returning -1 without
// changing the mapping when s is nil.
func MapNullable(m Mapping, s *string) (int, error) {
	if s == nil {
		return -1, nil
	}
	return m.MapString(*s)
}

// Equal returns true if both mappings hold the same strings in the same order.
func Equal(a, b Mapping) bool {
	if a == nil || b == nil {
		return a == b
	}
	return slices.Equal(a.Values(), b.Values())
}
