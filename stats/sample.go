// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat/distuv"
)

// Sample is a collection of possibly weighted data points.
type Sample struct {
	// Xs is the slice of sample values.
	Xs []float64

	// Weights[i] is the weight of sample Xs[i]. If Weights is
	// nil, all Xs have weight 1. Weights must have the same
	// length of Xs and all values must be non-negative.
	Weights []float64

	// Sorted indicates that Xs is sorted in ascending order.
	Sorted bool
}

// Bounds returns the minimum and maximum values of xs.
func Bounds(xs []float64) (min float64, max float64) {
	if len(xs) == 0 {
		return nan, nan
	}
	min, max = xs[0], xs[0]
	for _, x := range xs {
		if x < min {
			min = x
		}
		if x > max {
			max = x
		}
	}
	return
}

// Bounds returns the minimum and maximum values of the Sample.
//
// If the Sample is weighted, this ignores samples with zero weight.
//
// This is constant time if s.Sorted and there are no zero-weighted
// values.
func (s Sample) Bounds() (min float64, max float64) {
	if len(s.Xs) == 0 || (!s.Sorted && s.Weights == nil) {
		return Bounds(s.Xs)
	}

	if s.Sorted {
		if s.Weights == nil {
			return s.Xs[0], s.Xs[len(s.Xs)-1]
		}
		min, max = nan, nan
		for i, w := range s.Weights {
			if w != 0 {
				min = s.Xs[i]
				break
			}
		}
		if math.IsNaN(min) {
			return
		}
		for i := range s.Weights {
			if s.Weights[len(s.Weights)-i-1] != 0 {
				max = s.Xs[len(s.Weights)-i-1]
				break
			}
		}
	} else {
		min, max = inf, -inf
		for i, x := range s.Xs {
			w := s.Weights[i]
			if x < min && w != 0 {
				min = x
			}
			if x > max && w != 0 {
				max = x
			}
		}
		if math.IsInf(min, 0) {
			min, max = nan, nan
		}
	}
	return
}

// Sum returns the (possibly weighted) sum of the Sample.
func (s Sample) Sum() float64 {
	if s.Weights == nil {
		sum := 0.0
		for _, x := range s.Xs {
			sum += x
		}
		return sum
	}
	sum := 0.0
	for i, x := range s.Xs {
		sum += x * s.Weights[i]
	}
	return sum
}

// Weight returns the total weight of the Sample.
func (s Sample) Weight() float64 {
	if s.Weights == nil {
		return float64(len(s.Xs))
	}
	total := 0.0
	for _, w := range s.Weights {
		total += w
	}
	return total
}

// Mean returns the arithmetic mean of xs.
func Mean(xs []float64) float64 {
	return Sample{Xs: xs}.Mean()
}

// Mean returns the arithmetic mean of the Sample.
func (s Sample) Mean() float64 {
	if len(s.Xs) == 0 {
		return nan
	}
	return s.Sum() / s.Weight()
}

// Variance returns the sample variance of xs.
func Variance(xs []float64) float64 {
	return Sample{Xs: xs}.Variance()
}

// Variance returns the sample variance of the Sample, using N-1 as the
// denominator. It is NaN for samples with total weight below 2.
//
// The variance is computed in two passes, first the mean and then the
// squared deviations from it.
func (s Sample) Variance() float64 {
	if len(s.Xs) == 0 || s.Weight() < 2 {
		return nan
	}
	mean := s.Mean()
	sum := 0.0
	for i, x := range s.Xs {
		d := x - mean
		if s.Weights == nil {
			sum += d * d
		} else {
			sum += s.Weights[i] * d * d
		}
	}
	return sum / (s.Weight() - 1)
}

// StdDev returns the sample standard deviation of xs.
func StdDev(xs []float64) float64 {
	return Sample{Xs: xs}.StdDev()
}

// StdDev returns the sample standard deviation of the Sample.
func (s Sample) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// Percentile returns the pctileth value from the Sample. pctile is
// in [0, 1] and values outside that range yield NaN.
//
// The value is interpolated linearly between the two closest order
// statistics: with N samples, the index is pctile*(N-1), and the result
// lies between the samples at the floor and the ceiling of that index.
//
// Percentile is only defined for unweighted samples.
func (s Sample) Percentile(pctile float64) float64 {
	if s.Weights != nil {
		panic("Percentile of a weighted sample is not defined")
	}
	if len(s.Xs) == 0 || math.IsNaN(pctile) || pctile < 0 || pctile > 1 {
		return nan
	}
	if !s.Sorted {
		s = *s.Copy().Sort()
	}

	idx := pctile * float64(len(s.Xs)-1)
	lo, hi := math.Floor(idx), math.Ceil(idx)
	if lo == hi {
		return s.Xs[int(lo)]
	}
	xlo, xhi := s.Xs[int(lo)], s.Xs[int(hi)]
	return xlo + (idx-lo)*(xhi-xlo)
}

// Sort sorts the samples in place in s and returns s.
//
// A sorted sample improves the performance of some algorithms.
func (s *Sample) Sort() *Sample {
	if s.Sorted || sort.Float64sAreSorted(s.Xs) {
		// All set
	} else if s.Weights == nil {
		sort.Float64s(s.Xs)
	} else {
		sort.Sort(&sampleSorter{s.Xs, s.Weights})
	}
	s.Sorted = true
	return s
}

type sampleSorter struct {
	xs      []float64
	weights []float64
}

func (p *sampleSorter) Len() int {
	return len(p.xs)
}

func (p *sampleSorter) Less(i, j int) bool {
	return p.xs[i] < p.xs[j]
}

func (p *sampleSorter) Swap(i, j int) {
	p.xs[i], p.xs[j] = p.xs[j], p.xs[i]
	p.weights[i], p.weights[j] = p.weights[j], p.weights[i]
}

// Copy returns a copy of the Sample.
//
// The returned Sample shares no data with the original, so they can
// be modified (for example, sorted) independently.
func (s Sample) Copy() *Sample {
	xs := make([]float64, len(s.Xs))
	copy(xs, s.Xs)

	weights := []float64(nil)
	if s.Weights != nil {
		weights = make([]float64, len(s.Weights))
		copy(weights, s.Weights)
	}

	return &Sample{xs, weights, s.Sorted}
}

// MeanCI returns the mean and the confidence interval of the mean of
// xs at the given confidence level, using Student's t-distribution
// with len(xs)-1 degrees of freedom.
//
// If xs is empty, all three results are NaN. If len(xs) is 1 or
// confidence is 1, the interval is (-Inf, +Inf) unless confidence is 0,
// in which case the interval collapses to the mean.
func MeanCI(xs []float64, confidence float64) (mean, lo, hi float64) {
	if len(xs) == 0 {
		return nan, nan, nan
	}
	mean = Mean(xs)
	if confidence <= 0 {
		return mean, mean, mean
	}
	if len(xs) == 1 || confidence >= 1 {
		return mean, -inf, inf
	}

	t := tCritical(confidence, len(xs)-1)
	margin := t * StdDev(xs) / math.Sqrt(float64(len(xs)))
	return mean, mean - margin, mean + margin
}

// tCritical returns the two-sided critical value of Student's t
// distribution with df degrees of freedom.
func tCritical(confidence float64, df int) float64 {
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(df)}
	return dist.Quantile(1 - (1-confidence)/2)
}
