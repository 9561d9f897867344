// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"errors"
	"math"
	"math/rand/v2"
	"slices"
	"testing"

	mstats "github.com/montanaflynn/stats"
)

func TestDescribe(t *testing.T) {
	xs := []float64{9, 4, 2, 4, 5, 7, 4, 5}
	res, err := Describe(xs, false)
	if err != nil {
		t.Fatal(err)
	}

	check := func(name string, want, got float64) {
		t.Helper()
		if !aeq(want, got) {
			t.Errorf("%s = %v, want %v", name, got, want)
		}
	}
	if res.Count != 8 {
		t.Errorf("Count = %d, want 8", res.Count)
	}
	check("Sum", 40, res.Sum)
	check("Mean", 5, res.Mean)
	check("Median", 4.5, res.Median)
	check("Variance", 32.0/7, res.Variance)
	check("StdDev", math.Sqrt(32.0/7), res.StdDev)
	check("Min", 2, res.Min)
	check("Max", 9, res.Max)
	check("Range", 7, res.Range)
	check("Q1", 4, res.Q1)
	check("Q3", 5.5, res.Q3)
	check("IQR", 1.5, res.IQR)
	if !slices.Equal(res.Mode, []float64{4}) {
		t.Errorf("Mode = %v, want [4]", res.Mode)
	}
	if res.MeanSteps != nil || res.VarianceSteps != nil {
		t.Errorf("steps present without being requested")
	}

	if len(res.Histogram) != 8 {
		t.Fatalf("len(Histogram) = %d, want 8", len(res.Histogram))
	}
	total := 0.0
	for _, pt := range res.Histogram {
		total += pt.Y
	}
	if total != 8 {
		t.Errorf("histogram counts sum to %v, want 8", total)
	}
	if last := res.Histogram[7]; last.Y == 0 {
		t.Errorf("maximum not in last bucket: %+v", last)
	}
	if got := res.Histogram[0].Label; got != "2.0-2.9" {
		t.Errorf("first bucket label = %q, want 2.0-2.9", got)
	}
}

func TestDescribeAgainstMontanaflynn(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	xs := make([]float64, 101)
	for i := range xs {
		xs[i] = r.NormFloat64()*3 + 10
	}
	res, err := Describe(xs, false)
	if err != nil {
		t.Fatal(err)
	}
	data := mstats.Float64Data(xs)
	for _, c := range []struct {
		name string
		f    func(mstats.Float64Data) (float64, error)
		got  float64
	}{
		{"Mean", mstats.Mean, res.Mean},
		{"Median", mstats.Median, res.Median},
		{"SampleVariance", mstats.SampleVariance, res.Variance},
		{"StandardDeviationSample", mstats.StandardDeviationSample, res.StdDev},
		{"Min", mstats.Min, res.Min},
		{"Max", mstats.Max, res.Max},
		{"Sum", mstats.Sum, res.Sum},
	} {
		want, err := c.f(data)
		if err != nil {
			t.Fatalf("%s: %v", c.name, err)
		}
		if math.Abs(want-c.got) > 1e-9*math.Max(1, math.Abs(want)) {
			t.Errorf("%s = %v, montanaflynn/stats says %v", c.name, c.got, want)
		}
	}
}

func TestDescribeSteps(t *testing.T) {
	for _, xs := range [][]float64{
		{3, 1, 2},
		{0.1, 0.2, 0.3, 0.7},
		{5},
	} {
		res, err := Describe(xs, true)
		if err != nil {
			t.Fatal(err)
		}
		if res.MeanSteps.Sum/float64(res.MeanSteps.Count) != res.Mean {
			t.Errorf("%v: mean steps %+v do not give mean %v", xs, res.MeanSteps, res.Mean)
		}
		ms := res.MedianSteps
		if !slices.IsSorted(ms.Sorted) || ms.Even != (len(xs)%2 == 0) {
			t.Errorf("%v: median steps %+v", xs, ms)
		}
		if ms.Even {
			if *ms.Median != res.Median || (ms.MiddlePair[0]+ms.MiddlePair[1])/2 != res.Median {
				t.Errorf("%v: median steps %+v do not give median %v", xs, ms, res.Median)
			}
		} else if *ms.Middle != res.Median {
			t.Errorf("%v: middle value %v, median %v", xs, *ms.Middle, res.Median)
		}

		if len(xs) < 2 {
			if res.VarianceSteps != nil || res.StdDevSteps != nil {
				t.Errorf("%v: variance steps for a single value", xs)
			}
			continue
		}
		vs := res.VarianceSteps
		if len(vs.Items) != len(xs) || vs.Mean != res.Mean {
			t.Errorf("%v: variance steps %+v", xs, vs)
		}
		if got := vs.SumSquares / float64(vs.Count-1); got != res.Variance {
			t.Errorf("%v: variance steps give %v, variance is %v", xs, got, res.Variance)
		}
		if math.Sqrt(res.StdDevSteps.Variance) != res.StdDev {
			t.Errorf("%v: std dev steps %+v do not give %v", xs, res.StdDevSteps, res.StdDev)
		}
	}
}

func TestDescribeEdgeCases(t *testing.T) {
	_, err := Describe(nil, true)
	if !errors.Is(err, ErrValidation) {
		t.Errorf("Describe(nil) error = %v, want ErrValidation", err)
	}
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Field != "data" {
		t.Errorf("Describe(nil) error = %#v, want *ValidationError for data", err)
	}

	res, err := Describe([]float64{3}, false)
	if err != nil {
		t.Fatal(err)
	}
	if !math.IsNaN(res.Variance) || !math.IsNaN(res.StdDev) {
		t.Errorf("variance of one value = %v, want NaN", res.Variance)
	}
	if !slices.Equal(res.Mode, []float64{3}) {
		t.Errorf("Mode = %v, want [3]", res.Mode)
	}
	if len(res.Histogram) != 1 || res.Histogram[0].Label != "3" || res.Histogram[0].Y != 1 {
		t.Errorf("Histogram = %+v, want single bucket 3", res.Histogram)
	}

	res, err = Describe([]float64{1, 2, 3}, false)
	if err != nil {
		t.Fatal(err)
	}
	if res.Mode != nil {
		t.Errorf("Mode of distinct values = %v, want none", res.Mode)
	}

	res, err = Describe([]float64{1, 1, 2, 2, 3}, false)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(res.Mode, []float64{1, 2}) {
		t.Errorf("Mode = %v, want [1 2]", res.Mode)
	}
}

func TestDescribeOrderProperties(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	for i := 0; i < 200; i++ {
		xs := make([]float64, 1+r.IntN(30))
		for j := range xs {
			xs[j] = math.Round(r.Float64()*100) - 50
		}
		res, err := Describe(xs, false)
		if err != nil {
			t.Fatal(err)
		}
		if !(res.Min <= res.Q1 && res.Q1 <= res.Median && res.Median <= res.Q3 && res.Q3 <= res.Max) {
			t.Errorf("%v: min %v, q1 %v, median %v, q3 %v, max %v out of order",
				xs, res.Min, res.Q1, res.Median, res.Q3, res.Max)
		}
		if len(xs) >= 2 {
			if res.Variance < 0 || res.StdDev != math.Sqrt(res.Variance) {
				t.Errorf("%v: variance %v, std dev %v", xs, res.Variance, res.StdDev)
			}
		}
	}
}
