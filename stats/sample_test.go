// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/stat"
)

func TestSampleStats(t *testing.T) {
	xs := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	s := Sample{Xs: xs}
	if got := s.Sum(); got != 40 {
		t.Errorf("Sum = %v, want 40", got)
	}
	if got := s.Mean(); got != 5 {
		t.Errorf("Mean = %v, want 5", got)
	}
	if got, want := s.Variance(), stat.Variance(xs, nil); !aeq(want, got) {
		t.Errorf("Variance = %v, want %v", got, want)
	}
	if got, want := s.StdDev(), math.Sqrt(32.0/7); !aeq(want, got) {
		t.Errorf("StdDev = %v, want %v", got, want)
	}
	if lo, hi := s.Bounds(); lo != 2 || hi != 9 {
		t.Errorf("Bounds = %v, %v, want 2, 9", lo, hi)
	}

	w := Sample{Xs: []float64{1, 2, 3}, Weights: []float64{1, 0, 3}}
	if got := w.Mean(); got != 2.5 {
		t.Errorf("weighted Mean = %v, want 2.5", got)
	}
	if lo, hi := w.Copy().Sort().Bounds(); lo != 1 || hi != 3 {
		t.Errorf("weighted Bounds = %v, %v, want 1, 3", lo, hi)
	}

	if !math.IsNaN(Variance([]float64{1})) {
		t.Errorf("Variance of one value is not NaN")
	}
	if !math.IsNaN(Mean(nil)) {
		t.Errorf("Mean of no values is not NaN")
	}
}

func TestPercentile(t *testing.T) {
	s := Sample{Xs: []float64{4, 1, 3, 2}}
	testFunc(t, "Percentile", s.Percentile, map[float64]float64{
		-0.1: math.NaN(),
		0:    1,
		0.25: 1.75,
		0.5:  2.5,
		0.75: 3.25,
		1:    4,
		1.1:  math.NaN(),
	})
	if s.Sorted || s.Xs[0] != 4 {
		t.Errorf("Percentile modified the sample")
	}
}

func TestMeanCI(t *testing.T) {
	mean, lo, hi := MeanCI([]float64{1, 2, 3, 4, 5}, 0.95)
	if mean != 3 || !aeq(1.036757, lo) || !aeq(4.963243, hi) {
		t.Errorf("MeanCI = %v, %v, %v, want 3, 1.036757, 4.963243", mean, lo, hi)
	}

	if m, l, h := MeanCI(nil, 0.95); !math.IsNaN(m) || !math.IsNaN(l) || !math.IsNaN(h) {
		t.Errorf("MeanCI(nil) = %v, %v, %v, want NaN", m, l, h)
	}
	if m, l, h := MeanCI([]float64{7}, 0.95); m != 7 || !math.IsInf(l, -1) || !math.IsInf(h, 1) {
		t.Errorf("MeanCI of one value = %v, %v, %v, want 7, -Inf, +Inf", m, l, h)
	}
	if m, l, h := MeanCI([]float64{1, 3}, 0); m != 2 || l != 2 || h != 2 {
		t.Errorf("MeanCI at 0 confidence = %v, %v, %v, want 2, 2, 2", m, l, h)
	}
}
