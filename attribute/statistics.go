// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package attribute

import (
	"math"
	"slices"
)

// Standard statistics names.
const (
	Average  = "average"
	Variance = "variance"
	Minimum  = "minimum"
	Maximum  = "maximum"
	Unknown  = "unknown"
	Mode     = "mode"
	Least    = "least"
	Count    = "count"
)

// Statistics is a pluggable collector of statistics over the values of
// one attribute. Values are counted after [Statistics.StartCounting],
// and results are returned by name.
type Statistics interface {
	// StartCounting resets the collector for the given attribute.
	StartCounting(att *Attribute)

	// Count adds a value with the given weight.
	Count(value, weight float64)

	// Handles returns true if this collector computes the named statistic.
	Handles(name string) bool

	// Statistic returns the named statistic, with an optional parameter
	// such as the nominal value for [Count].
	Statistic(att *Attribute, name, param string) float64

	// Clone returns an independent copy.
	Clone() Statistics
}

// AddStatistics adds a statistics collector.
func (a *Attribute) AddStatistics(s Statistics) {
	a.statistics = append(a.statistics, s)
}

// Statistics returns the statistics collectors.
func (a *Attribute) Statistics() []Statistics { return a.statistics }

// StartCounting resets all statistics collectors.
func (a *Attribute) StartCounting() {
	for _, s := range a.statistics {
		s.StartCounting(a)
	}
}

// CountValue adds the value to all statistics collectors.
func (a *Attribute) CountValue(v, weight float64) {
	for _, s := range a.statistics {
		s.Count(v, weight)
	}
}

// Statistic returns the named statistic from the first collector
// that handles it, and false if none does.
func (a *Attribute) Statistic(name string, param ...string) (float64, bool) {
	p := ""
	if len(param) > 0 {
		p = param[0]
	}
	for _, s := range a.statistics {
		if s.Handles(name) {
			return s.Statistic(a, name, p), true
		}
	}
	return math.NaN(), false
}

// NumericalStatistics computes the weighted [Average] and
// sample [Variance] of the non-missing values.
type NumericalStatistics struct {
	sum, sumSq, weights float64
}

func (ns *NumericalStatistics) StartCounting(_ *Attribute) { *ns = NumericalStatistics{} }

func (ns *NumericalStatistics) Count(v, w float64) {
	if math.IsNaN(v) {
		return
	}
	ns.sum += w * v
	ns.sumSq += w * v * v
	ns.weights += w
}

func (ns *NumericalStatistics) Handles(name string) bool {
	return name == Average || name == Variance
}

func (ns *NumericalStatistics) Statistic(_ *Attribute, name, _ string) float64 {
	switch name {
	case Average:
		if ns.weights == 0 {
			return math.NaN()
		}
		return ns.sum / ns.weights
	case Variance:
		if ns.weights <= 1 {
			return math.NaN()
		}
		v := (ns.sumSq - ns.sum*ns.sum/ns.weights) / (ns.weights - 1)
		return max(v, 0)
	}
	return math.NaN()
}

func (ns *NumericalStatistics) Clone() Statistics { cp := *ns; return &cp }

// MinMaxStatistics computes the [Minimum] and [Maximum] of the
// non-missing values.
type MinMaxStatistics struct {
	min, max float64
	n        int
}

func (ms *MinMaxStatistics) StartCounting(_ *Attribute) { *ms = MinMaxStatistics{} }

func (ms *MinMaxStatistics) Count(v, _ float64) {
	if math.IsNaN(v) {
		return
	}
	if ms.n == 0 || v < ms.min {
		ms.min = v
	}
	if ms.n == 0 || v > ms.max {
		ms.max = v
	}
	ms.n++
}

func (ms *MinMaxStatistics) Handles(name string) bool {
	return name == Minimum || name == Maximum
}

func (ms *MinMaxStatistics) Statistic(_ *Attribute, name, _ string) float64 {
	if ms.n == 0 {
		return math.NaN()
	}
	if name == Minimum {
		return ms.min
	}
	return ms.max
}

func (ms *MinMaxStatistics) Clone() Statistics { cp := *ms; return &cp }

// UnknownStatistics counts the weight of missing (NaN) values.
type UnknownStatistics struct {
	unknown float64
}

func (us *UnknownStatistics) StartCounting(_ *Attribute) { us.unknown = 0 }

func (us *UnknownStatistics) Count(v, w float64) {
	if math.IsNaN(v) {
		us.unknown += w
	}
}

func (us *UnknownStatistics) Handles(name string) bool { return name == Unknown }

func (us *UnknownStatistics) Statistic(_ *Attribute, _, _ string) float64 { return us.unknown }

func (us *UnknownStatistics) Clone() Statistics { cp := *us; return &cp }

// NominalStatistics counts the weight of each nominal index, and returns
// the [Mode] and [Least] frequent index, and the [Count] of the value
// given as parameter.
type NominalStatistics struct {
	counts []float64
}

func (ns *NominalStatistics) StartCounting(_ *Attribute) { ns.counts = nil }

func (ns *NominalStatistics) Count(v, w float64) {
	if math.IsNaN(v) || v < 0 {
		return
	}
	i := int(v)
	if i >= len(ns.counts) {
		ns.counts = append(ns.counts, make([]float64, i+1-len(ns.counts))...)
	}
	ns.counts[i] += w
}

func (ns *NominalStatistics) Handles(name string) bool {
	return name == Mode || name == Least || name == Count
}

func (ns *NominalStatistics) Statistic(att *Attribute, name, param string) float64 {
	switch name {
	case Mode:
		best := -1
		for i, c := range ns.counts {
			if c > 0 && (best < 0 || c > ns.counts[best]) {
				best = i
			}
		}
		return indexOrNaN(best)
	case Least:
		best := -1
		for i, c := range ns.counts {
			if c > 0 && (best < 0 || c < ns.counts[best]) {
				best = i
			}
		}
		return indexOrNaN(best)
	case Count:
		if att == nil || att.mapping == nil {
			return math.NaN()
		}
		i := att.mapping.Index(param)
		if i < 0 || i >= len(ns.counts) {
			return 0
		}
		return ns.counts[i]
	}
	return math.NaN()
}

func (ns *NominalStatistics) Clone() Statistics {
	return &NominalStatistics{counts: slices.Clone(ns.counts)}
}

func indexOrNaN(i int) float64 {
	if i < 0 {
		return math.NaN()
	}
	return float64(i)
}

// defaultStatistics returns the standard collectors for a value type.
func defaultStatistics(vt ValueTypes) []Statistics {
	switch {
	case vt.IsNominal():
		return []Statistics{&NominalStatistics{}, &UnknownStatistics{}}
	case vt.IsNumeric(), vt.IsDateTime():
		return []Statistics{&NumericalStatistics{}, &MinMaxStatistics{}, &UnknownStatistics{}}
	default:
		return []Statistics{&UnknownStatistics{}}
	}
}
