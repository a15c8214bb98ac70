// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nominal

import "fmt"

const (
	// NegativeIndex is the index of the first, negative value of a [Binary] mapping.
	NegativeIndex = 0

	// PositiveIndex is the index of the second, positive value of a [Binary] mapping.
	PositiveIndex = 1
)

// Binary is a [Mapping] with exactly two slots, used for
// binominal attributes. It is cheaper than [General] since
// lookups are two string comparisons.
type Binary struct {
	values [2]string
	set    [2]bool
}

// NewBinary returns a new empty [Binary] mapping.
func NewBinary() *Binary {
	return &Binary{}
}

func (bm *Binary) MapString(s string) (int, error) {
	if i := bm.Index(s); i >= 0 {
		return i, nil
	}
	for i := range bm.values {
		if !bm.set[i] {
			bm.values[i] = s
			bm.set[i] = true
			return i, nil
		}
	}
	return -1, fmt.Errorf("nominal.Binary MapString: already mapped %q and %q, cannot add %q: %w", bm.values[0], bm.values[1], s, ErrCapacityExceeded)
}

func (bm *Binary) Index(s string) int {
	for i := range bm.values {
		if bm.set[i] && bm.values[i] == s {
			return i
		}
	}
	return -1
}

func (bm *Binary) MapIndex(i int) (string, error) {
	if i < 0 || i > 1 || !bm.set[i] {
		return "", fmt.Errorf("nominal.Binary MapIndex: index %d is not mapped: %w", i, ErrIndexOutOfRange)
	}
	return bm.values[i], nil
}

func (bm *Binary) SetMapping(s string, i int) error {
	if i < 0 || i > 1 {
		return fmt.Errorf("nominal.Binary SetMapping: index %d must be 0 or 1: %w", i, ErrIndexOutOfRange)
	}
	bm.values[i] = s
	bm.set[i] = true
	return nil
}

// SortMappings swaps the two values if both are set and out of order.
func (bm *Binary) SortMappings() {
	if bm.set[0] && bm.set[1] && bm.values[0] > bm.values[1] {
		bm.values[0], bm.values[1] = bm.values[1], bm.values[0]
	}
}

func (bm *Binary) Size() int {
	n := 0
	for _, s := range bm.set {
		if s {
			n++
		}
	}
	return n
}

func (bm *Binary) Values() []string {
	vals := make([]string, 0, 2)
	for i := range bm.values {
		if bm.set[i] {
			vals = append(vals, bm.values[i])
		}
	}
	return vals
}

func (bm *Binary) Clear() {
	*bm = Binary{}
}

func (bm *Binary) Clone() Mapping {
	cp := *bm
	return &cp
}

// NegativeString returns the value at [NegativeIndex], or "" if unset.
func (bm *Binary) NegativeString() string {
	return bm.values[NegativeIndex]
}

// PositiveString returns the value at [PositiveIndex], or "" if unset.
func (bm *Binary) PositiveString() string {
	return bm.values[PositiveIndex]
}
