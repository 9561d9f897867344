// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"testing"
)

func TestSamplingMeans(t *testing.T) {
	res, err := SamplingMeans(SamplingMeansInput{Mu: 100, Sigma: 15, N: 36, XBar: ptr(105.0)})
	if err != nil {
		t.Fatal(err)
	}
	if res.Mean != 100 || res.StandardError != 2.5 || !res.CLT {
		t.Errorf("mean, SE, CLT = %v, %v, %v, want 100, 2.5, true", res.Mean, res.StandardError, res.CLT)
	}
	if !aeq(2, *res.Z) || !aeq(0.977250, *res.Below) || !aeq(0.022750, *res.Above) {
		t.Errorf("z, P(<x̄), P(>x̄) = %v, %v, %v", *res.Z, *res.Below, *res.Above)
	}
	if len(res.PDF) != curvePoints || !aeq(90, res.PDF[0].X) || !aeq(110, res.PDF[curvePoints-1].X) {
		t.Errorf("chart spans %v..%v, want 90..110", res.PDF[0].X, res.PDF[len(res.PDF)-1].X)
	}

	res, err = SamplingMeans(SamplingMeansInput{Mu: 0, Sigma: 1, N: 29})
	if err != nil {
		t.Fatal(err)
	}
	if res.CLT || res.Z != nil {
		t.Errorf("n=29 without x̄: %+v", res)
	}

	for _, in := range []SamplingMeansInput{
		{Mu: 0, Sigma: 0, N: 10},
		{Mu: 0, Sigma: 1, N: 0},
	} {
		if _, err := SamplingMeans(in); !isValidation(err) {
			t.Errorf("SamplingMeans(%+v) error = %v, want *ValidationError", in, err)
		}
	}
}

func TestSamplingProportions(t *testing.T) {
	res, err := SamplingProportions(SamplingProportionsInput{P: 0.5, N: 100, PHat: ptr(0.55)})
	if err != nil {
		t.Fatal(err)
	}
	if res.Mean != 0.5 || !aeq(0.05, res.StandardError) || res.NP != 50 || res.NQ != 50 || !res.NormalApprox {
		t.Errorf("SamplingProportions = %+v", res)
	}
	if !aeq(1, *res.Z) || !aeq(0.841345, *res.Below) || !aeq(0.158655, *res.Above) {
		t.Errorf("z, P(<p̂), P(>p̂) = %v, %v, %v", *res.Z, *res.Below, *res.Above)
	}

	res, err = SamplingProportions(SamplingProportionsInput{P: 0.05, N: 50, PHat: ptr(0.1)})
	if err != nil {
		t.Fatal(err)
	}
	if res.NormalApprox || res.NP != 2.5 {
		t.Errorf("np = %v, normal approximation = %v, want 2.5, false", res.NP, res.NormalApprox)
	}
	if res.PHat == nil || res.Z != nil || res.Below != nil || res.Above != nil {
		t.Errorf("probabilities not withheld: %+v", res)
	}
	for _, pt := range res.PDF {
		if pt.X < 0 || pt.X > 1 {
			t.Errorf("chart point %v outside [0, 1]", pt.X)
			break
		}
	}
	if res.PDF[0].X != 0 {
		t.Errorf("chart starts at %v, want 0", res.PDF[0].X)
	}

	for _, in := range []SamplingProportionsInput{
		{P: 0, N: 100},
		{P: 1, N: 100},
		{P: 1.5, N: 100},
		{P: math.NaN(), N: 100},
		{P: 0.5, N: 0},
		{P: 0.5, N: 10, PHat: ptr(2.0)},
	} {
		if _, err := SamplingProportions(in); !isValidation(err) {
			t.Errorf("SamplingProportions(%+v) error = %v, want *ValidationError", in, err)
		}
	}
}

func TestZInterval(t *testing.T) {
	res, err := ZInterval(ZIntervalInput{Mean: 50, Sigma: 10, N: 25, Level: 95})
	if err != nil {
		t.Fatal(err)
	}
	if res.Method != "z" || res.Critical != 1.96 || res.StandardError != 2 {
		t.Errorf("method, z, SE = %v, %v, %v", res.Method, res.Critical, res.StandardError)
	}
	if !aeq(3.92, res.Margin) || !aeq(46.08, res.Lower) || !aeq(53.92, res.Upper) {
		t.Errorf("margin, bounds = %v, [%v, %v]", res.Margin, res.Lower, res.Upper)
	}
	want := "With 95% confidence, the true population mean (μ) is estimated to lie between 46.0800 and 53.9200."
	if res.Interpretation != want {
		t.Errorf("Interpretation = %q, want %q", res.Interpretation, want)
	}

	for _, level := range ConfidenceLevels {
		for _, in := range []ZIntervalInput{
			{Mean: 0.1, Sigma: 0.3, N: 7, Level: level},
			{Mean: -1234.5678, Sigma: 89.1, N: 1000, Level: level},
			{Mean: 1e6 / 3, Sigma: 1, N: 2, Level: level},
		} {
			res, err := ZInterval(in)
			if err != nil {
				t.Fatal(err)
			}
			if res.Lower > res.Upper {
				t.Errorf("%+v: bounds [%v, %v] out of order", in, res.Lower, res.Upper)
			}
			if mid := (res.Lower + res.Upper) / 2; math.Abs(mid-in.Mean) > 1e-12*math.Max(1, math.Abs(in.Mean)) {
				t.Errorf("%+v: midpoint %v, mean %v", in, mid, in.Mean)
			}
		}
	}

	for _, in := range []ZIntervalInput{
		{Mean: 0, Sigma: 1, N: 10, Level: 97},
		{Mean: 0, Sigma: 0, N: 10, Level: 95},
		{Mean: 0, Sigma: 1, N: 0, Level: 95},
	} {
		if _, err := ZInterval(in); !isValidation(err) {
			t.Errorf("ZInterval(%+v) error = %v, want *ValidationError", in, err)
		}
	}
}

func TestTInterval(t *testing.T) {
	xs := []float64{1, 2, 3, 4, 5}
	res, err := TInterval(xs, 95)
	if err != nil {
		t.Fatal(err)
	}
	mean, lo, hi := MeanCI(xs, 0.95)
	if res.Method != "t" || res.DF != 4 || res.Mean != mean || !aeq(lo, res.Lower) || !aeq(hi, res.Upper) {
		t.Errorf("TInterval = %+v, MeanCI = %v, [%v, %v]", res, mean, lo, hi)
	}
	if !aeq(2.776445, res.Critical) {
		t.Errorf("t critical = %v, want 2.776445", res.Critical)
	}

	if _, err := TInterval([]float64{1}, 95); !isValidation(err) {
		t.Errorf("TInterval of one value error = %v", err)
	}
	if _, err := TInterval(xs, 100); !isValidation(err) {
		t.Errorf("TInterval at 100%% error = %v", err)
	}
}
