// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"reflect"
	"slices"
	"testing"
)

// seqSource replays a fixed sequence of uniform values.
type seqSource struct {
	vals []float64
}

func (s *seqSource) Float64() float64 {
	v := s.vals[0]
	s.vals = s.vals[1:]
	return v
}

func TestSimulateUniform(t *testing.T) {
	sim := NewSimulator(1)
	res, err := sim.Simulate(SimulationInput{Dist: SimUniform, N: 10000, Min: 0, Max: 10})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Data) != 10000 {
		t.Fatalf("generated %d values, want 10000", len(res.Data))
	}
	for _, x := range res.Data {
		if x < 0 || x >= 10 {
			t.Fatalf("value %v outside [0, 10)", x)
		}
	}
	// The standard error of the mean is about 0.03.
	if math.Abs(res.Summary.Mean-5) > 0.2 {
		t.Errorf("mean = %v, want about 5", res.Summary.Mean)
	}

	direct, err := Describe(res.Data, false)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(direct, res.Summary) {
		t.Errorf("summary differs from Describe of the same data")
	}
	if len(res.Density) != curvePoints {
		t.Errorf("density has %d points, want %d", len(res.Density), curvePoints)
	}

	again, err := NewSimulator(1).Simulate(SimulationInput{Dist: SimUniform, N: 10000, Min: 0, Max: 10})
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(res.Data, again.Data) {
		t.Errorf("same seed produced different data")
	}

	res, err = sim.Simulate(SimulationInput{Dist: SimUniform, N: 5, Min: 3, Max: 3})
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(res.Data, []float64{3, 3, 3, 3, 3}) {
		t.Errorf("min = max gave %v", res.Data)
	}
}

func TestSimulateDistributions(t *testing.T) {
	sim := NewSimulator(42)
	for _, tt := range []struct {
		in       SimulationInput
		mean, sd float64
		integral bool
	}{
		{SimulationInput{Dist: SimNormal, N: 10000, Mu: 20, Sigma: 4}, 20, 4, false},
		{SimulationInput{Dist: SimBinomial, N: 10000, Trials: 12, P: 0.25}, 3, 1.5, true},
		{SimulationInput{Dist: SimPoisson, N: 10000, Lambda: 4}, 4, 2, true},
		{SimulationInput{Dist: SimPoisson, N: 10000, Lambda: 100}, 100, 10, true},
	} {
		res, err := sim.Simulate(tt.in)
		if err != nil {
			t.Fatalf("%+v: %v", tt.in, err)
		}
		// Allow ten standard errors of the mean.
		if tol := 10 * tt.sd / 100; math.Abs(res.Summary.Mean-tt.mean) > tol {
			t.Errorf("%s: mean = %v, want %v ± %v", tt.in.Dist, res.Summary.Mean, tt.mean, tol)
		}
		if math.Abs(res.Summary.StdDev-tt.sd) > 0.1*tt.sd {
			t.Errorf("%s: std dev = %v, want about %v", tt.in.Dist, res.Summary.StdDev, tt.sd)
		}
		if !tt.integral {
			continue
		}
		for _, x := range res.Data {
			if x != math.Trunc(x) || x < 0 {
				t.Errorf("%s: value %v is not a count", tt.in.Dist, x)
				break
			}
		}
		if res.Density[0].X < 0 {
			t.Errorf("%s: density starts at %v, below 0", tt.in.Dist, res.Density[0].X)
		}
	}
}

func TestSimulateAlgorithms(t *testing.T) {
	// Box-Muller redraws u1 = 0; with u1 = e^-2 and u2 = 0 the
	// deviate is sqrt(4)·cos(0) = 2.
	sim := &Simulator{Source: &seqSource{[]float64{0, math.Exp(-2), 0}}}
	if got := sim.stdNormal(); !aeq(2, got) {
		t.Errorf("stdNormal = %v, want 2", got)
	}

	// Knuth: e^-1 ≈ 0.368; products 0.9, 0.45, 0.135 give 2 events.
	sim = &Simulator{Source: &seqSource{[]float64{0.9, 0.5, 0.3}}}
	if got := sim.poisson(1); got != 2 {
		t.Errorf("poisson = %d, want 2", got)
	}

	sim = &Simulator{Source: &seqSource{[]float64{0.1, 0.6, 0.2, 0.9}}}
	if got := sim.binomial(4, 0.5); got != 2 {
		t.Errorf("binomial = %d, want 2", got)
	}

	var zero Simulator
	if _, err := zero.Simulate(SimulationInput{Dist: SimUniform, N: 3, Max: 1}); err != nil {
		t.Errorf("zero Simulator: %v", err)
	}
}

func TestSimulateInvalid(t *testing.T) {
	sim := NewSimulator(7)
	for _, in := range []SimulationInput{
		{Dist: SimUniform, N: 0, Max: 1},
		{Dist: SimUniform, N: MaxSimulationPoints + 1, Max: 1},
		{Dist: SimUniform, N: 10, Min: 2, Max: 1},
		{Dist: SimNormal, N: 10, Sigma: 0},
		{Dist: SimBinomial, N: 10, Trials: 0, P: 0.5},
		{Dist: SimBinomial, N: 10, Trials: MaxSimulationTrials + 1, P: 0.5},
		{Dist: SimBinomial, N: 10, Trials: 3, P: 2},
		{Dist: SimPoisson, N: 10, Lambda: 0},
		{Dist: "cauchy", N: 10},
	} {
		if _, err := sim.Simulate(in); !isValidation(err) {
			t.Errorf("Simulate(%+v) error = %v, want *ValidationError", in, err)
		}
	}
}

func TestKDE(t *testing.T) {
	xs := []float64{1, 2, 2, 3, 3, 3, 4, 4, 5, 9}
	check := func(name string, d Dist) {
		t.Helper()
		lo, hi := d.Bounds()
		const n = 2000
		h := (hi - lo) / n
		area := 0.0
		for i := 0; i < n; i++ {
			area += h * (d.PDF(lo+float64(i)*h) + d.PDF(lo+float64(i+1)*h)) / 2
		}
		if math.Abs(area-1) > 0.01 {
			t.Errorf("%s: density integrates to %v over [%v, %v]", name, area, lo, hi)
		}
		if got := d.CDF(hi) - d.CDF(lo); math.Abs(got-area) > 0.01 {
			t.Errorf("%s: CDF difference %v, integral %v", name, got, area)
		}
	}
	check("unbounded", KDE{}.From(Sample{Xs: xs}))

	floor := 0.0
	d := KDE{Floor: &floor, Bandwidth: 1}.From(Sample{Xs: xs})
	check("floored", d)
	if d.PDF(-0.5) != 0 || d.CDF(0) != 0 {
		t.Errorf("floored KDE has mass below 0: PDF(-0.5) = %v, CDF(0) = %v", d.PDF(-0.5), d.CDF(0))
	}
	if lo, _ := d.Bounds(); lo != 0 {
		t.Errorf("floored KDE bounds start at %v, want 0", lo)
	}

	single := KDE{}.From(Sample{Xs: []float64{5}})
	if got := single.PDF(5); !aeq(invSqrt2Pi, got) {
		t.Errorf("single point density at 5 = %v, want %v", got, invSqrt2Pi)
	}
}
