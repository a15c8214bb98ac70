// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package keylist implements an ordered list (slice) of items,
with a map from a key (e.g., column names) to indexes,
to support fast lookup by name while preserving insertion order.
*/
package keylist

import (
	"fmt"
	"slices"
)

// List implements an ordered list (slice) of Values,
// with a map from a key (e.g., names) to indexes,
// to support fast lookup by name.
type List[K comparable, V any] struct {
	// Values is the ordered slice of items.
	Values []V

	// Keys is the ordered list of keys, in same order as [List.Values]
	Keys []K

	// indexes is the key-to-index mapping.
	indexes map[K]int
}

// New returns a new [List]. The zero value
// is usable without initialization.
func New[K comparable, V any]() *List[K, V] {
	return &List[K, V]{}
}

// rebuild regenerates the key-to-index map from Keys.
func (kl *List[K, V]) rebuild() {
	kl.indexes = make(map[K]int, len(kl.Keys))
	for i, k := range kl.Keys {
		kl.indexes[k] = i
	}
}

// Len returns the number of items in the list.
func (kl *List[K, V]) Len() int {
	if kl == nil {
		return 0
	}
	return len(kl.Values)
}

// Reset resets the list, removing any existing elements.
func (kl *List[K, V]) Reset() {
	kl.Values = nil
	kl.Keys = nil
	kl.indexes = nil
}

// Add adds an item to the end of the list with given key.
// An error is returned if the key is already on the list.
func (kl *List[K, V]) Add(key K, val V) error {
	if kl.indexes == nil {
		kl.rebuild()
	}
	if _, ok := kl.indexes[key]; ok {
		return fmt.Errorf("keylist.Add: key %v is already on the list", key)
	}
	kl.indexes[key] = len(kl.Values)
	kl.Values = append(kl.Values, val)
	kl.Keys = append(kl.Keys, key)
	return nil
}

// At returns the value corresponding to the given key,
// with a zero value returned for a missing key.
func (kl *List[K, V]) At(key K) V {
	v, _ := kl.AtTry(key)
	return v
}

// AtTry returns the value corresponding to the given key,
// with false returned for a missing key, in case the zero value
// is not diagnostic.
func (kl *List[K, V]) AtTry(key K) (V, bool) {
	if idx, ok := kl.indexes[key]; ok {
		return kl.Values[idx], true
	}
	var zv V
	return zv, false
}

// IndexByKey returns the index of the given key, with a -1 for missing key.
func (kl *List[K, V]) IndexByKey(key K) int {
	if idx, ok := kl.indexes[key]; ok {
		return idx
	}
	return -1
}

// DeleteByKey deletes the item with the given key,
// returning false if it does not find it.
// Later items shift down by one index.
func (kl *List[K, V]) DeleteByKey(key K) bool {
	idx, ok := kl.indexes[key]
	if !ok {
		return false
	}
	kl.Keys = slices.Delete(kl.Keys, idx, idx+1)
	kl.Values = slices.Delete(kl.Values, idx, idx+1)
	kl.rebuild()
	return true
}

// Clone returns a copy of the list with its own Keys, Values and index map.
// The values themselves are copied shallowly.
func (kl *List[K, V]) Clone() *List[K, V] {
	cp := &List[K, V]{Keys: slices.Clone(kl.Keys), Values: slices.Clone(kl.Values)}
	cp.rebuild()
	return cp
}
