// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package slicesx provides additional slice functions
// beyond those in the standard [slices] package.
package slicesx

// Extend returns a newly allocated slice of length n holding the
// elements of s followed by copies of fill. The original slice is
// never reused, so callers holding s keep the old contents.
// If n <= len(s), s is returned unchanged.
func Extend[E any](s []E, n int, fill E) []E {
	if n <= len(s) {
		return s
	}
	ns := make([]E, n)
	copy(ns, s)
	Fill(ns[len(s):], fill)
	return ns
}

// Fill sets every element of s to v.
func Fill[E any](s []E, v E) {
	for i := range s {
		s[i] = v
	}
}
