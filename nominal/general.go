// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nominal

import (
	"fmt"
	"maps"
	"slices"
)

// General is an unbounded, insertion-ordered [Mapping].
// Indexes run from 0 to Size()-1 without gaps.
type General struct {
	indexes map[string]int
	symbols []string
}

// NewGeneral returns a new [General] mapping, mapping
// the given initial values in order.
func NewGeneral(values ...string) *General {
	gm := &General{indexes: make(map[string]int, len(values))}
	for _, v := range values {
		gm.MapString(v)
	}
	return gm
}

func (gm *General) MapString(s string) (int, error) {
	if i, ok := gm.indexes[s]; ok {
		return i, nil
	}
	if gm.indexes == nil {
		gm.indexes = make(map[string]int)
	}
	i := len(gm.symbols)
	gm.symbols = append(gm.symbols, s)
	gm.indexes[s] = i
	return i, nil
}

func (gm *General) Index(s string) int {
	if i, ok := gm.indexes[s]; ok {
		return i
	}
	return -1
}

func (gm *General) MapIndex(i int) (string, error) {
	if i < 0 || i >= len(gm.symbols) {
		return "", fmt.Errorf("nominal.General MapIndex: index %d is out of range [0..%d): %w", i, len(gm.symbols), ErrIndexOutOfRange)
	}
	return gm.symbols[i], nil
}

func (gm *General) SetMapping(s string, i int) error {
	if i < 0 || i >= len(gm.symbols) {
		return fmt.Errorf("nominal.General SetMapping: index %d is out of range [0..%d): %w", i, len(gm.symbols), ErrIndexOutOfRange)
	}
	old := gm.symbols[i]
	if gm.indexes[old] == i {
		delete(gm.indexes, old)
	}
	gm.symbols[i] = s
	gm.indexes[s] = i
	return nil
}

func (gm *General) SortMappings() {
	slices.Sort(gm.symbols)
	for i, s := range gm.symbols {
		gm.indexes[s] = i
	}
}

func (gm *General) Size() int { return len(gm.symbols) }

func (gm *General) Values() []string { return slices.Clone(gm.symbols) }

func (gm *General) Clear() {
	gm.symbols = nil
	gm.indexes = make(map[string]int)
}

func (gm *General) Clone() Mapping {
	return &General{indexes: maps.Clone(gm.indexes), symbols: slices.Clone(gm.symbols)}
}
