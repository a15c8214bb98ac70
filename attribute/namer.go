// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package attribute

import (
	"strconv"
	"sync"
)

// Namer generates unique attribute names from per-prefix counters.
// The first name for a prefix is the prefix itself, followed by
// prefix1, prefix2 and so on. It is safe for concurrent use.
type Namer struct {
	mu       sync.Mutex
	counters map[string]int
}

// DefaultNamer is the process-wide [Namer] used by the [Default] factory.
var DefaultNamer = NewNamer()

// NewNamer returns a new [Namer] with all counters at zero.
func NewNamer() *Namer {
	return &Namer{counters: make(map[string]int)}
}

// Next returns the next name for the given prefix.
func (nm *Namer) Next(prefix string) string {
	nm.mu.Lock()
	defer nm.mu.Unlock()
	n, ok := nm.counters[prefix]
	nm.counters[prefix] = n + 1
	if !ok {
		return prefix
	}
	return prefix + strconv.Itoa(n)
}

// Reset sets all counters back to zero.
func (nm *Namer) Reset() {
	nm.mu.Lock()
	defer nm.mu.Unlock()
	clear(nm.counters)
}

// ResetNameCounters resets the counters of the [DefaultNamer].
func ResetNameCounters() {
	DefaultNamer.Reset()
}
