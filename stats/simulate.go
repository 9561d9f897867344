// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"math/rand/v2"
)

// MaxSimulationPoints is the largest number of values Simulate
// generates in one call.
const MaxSimulationPoints = 10000

// MaxSimulationTrials is the largest number of Bernoulli trials behind
// each binomial value Simulate generates.
const MaxSimulationTrials = 1000

// poissonNormalCutoff is the rate above which Poisson values are drawn
// from a normal approximation instead of by Knuth's method, whose
// e^-λ threshold underflows for large λ.
const poissonNormalCutoff = 30

// A SimDist names a distribution Simulate can sample from.
type SimDist string

const (
	SimUniform  SimDist = "uniform"
	SimNormal   SimDist = "normal"
	SimBinomial SimDist = "binomial"
	SimPoisson  SimDist = "poisson"
)

// SimulationInput is the input to Simulate. Only the parameters of
// the chosen distribution are used.
type SimulationInput struct {
	Dist SimDist `json:"distribution"`
	N    int     `json:"points"`

	Min float64 `json:"min,omitempty"`
	Max float64 `json:"max,omitempty"`

	Mu    float64 `json:"mean,omitempty"`
	Sigma float64 `json:"std_dev,omitempty"`

	Trials int     `json:"trials,omitempty"`
	P      float64 `json:"p,omitempty"`

	Lambda float64 `json:"lambda,omitempty"`
}

// SimulationResult is the result of Simulate.
type SimulationResult struct {
	Input SimulationInput `json:"parameters"`
	Data  []float64       `json:"data"`

	// Summary is Describe(Data, false).
	Summary *DescriptiveResult `json:"summary"`

	// Density is a kernel density estimate of Data.
	Density []ChartPoint `json:"density"`
}

// A Source produces uniformly distributed values in [0, 1).
// *rand.Rand satisfies Source.
type Source interface {
	Float64() float64
}

type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }

// A Simulator generates random data. The zero Simulator draws from the
// global generator of math/rand/v2.
type Simulator struct {
	// Source is the uniform source every draw is derived from.
	Source Source
}

// NewSimulator returns a Simulator with a PCG generator seeded with
// seed, so the same seed reproduces the same data.
func NewSimulator(seed uint64) *Simulator {
	return &Simulator{Source: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *Simulator) src() Source {
	if s == nil || s.Source == nil {
		return globalSource{}
	}
	return s.Source
}

// Simulate draws in.N values from the distribution in.Dist and
// summarizes them.
func (s *Simulator) Simulate(in SimulationInput) (*SimulationResult, error) {
	if in.N < 1 || in.N > MaxSimulationPoints {
		return nil, invalid("points", "must be between 1 and %d, got %d", MaxSimulationPoints, in.N)
	}

	var draw func() float64
	var floor *float64
	zero := 0.0
	switch in.Dist {
	case SimUniform:
		if in.Min > in.Max {
			return nil, invalid("min", "must be less than or equal to max (%v > %v)", in.Min, in.Max)
		}
		draw = func() float64 { return s.uniform(in.Min, in.Max) }
	case SimNormal:
		if err := (NormalDist{Mu: in.Mu, Sigma: in.Sigma}).Validate(); err != nil {
			return nil, err
		}
		draw = func() float64 { return in.Mu + in.Sigma*s.stdNormal() }
	case SimBinomial:
		if in.Trials < 1 || in.Trials > MaxSimulationTrials {
			return nil, invalid("trials", "must be between 1 and %d, got %d", MaxSimulationTrials, in.Trials)
		}
		if err := checkProb("p", in.P); err != nil {
			return nil, err
		}
		draw = func() float64 { return float64(s.binomial(in.Trials, in.P)) }
		floor = &zero
	case SimPoisson:
		if err := (PoissonDist{Lambda: in.Lambda}).Validate(); err != nil {
			return nil, err
		}
		draw = func() float64 { return float64(s.poisson(in.Lambda)) }
		floor = &zero
	default:
		return nil, invalid("distribution", "unknown distribution %q", in.Dist)
	}

	data := make([]float64, in.N)
	for i := range data {
		data[i] = draw()
	}
	summary, err := Describe(data, false)
	if err != nil {
		return nil, err
	}
	kde := KDE{Floor: floor}.From(Sample{Xs: data})
	lo, hi := kde.Bounds()
	return &SimulationResult{
		Input:   in,
		Data:    data,
		Summary: summary,
		Density: pdfCurve(kde, lo, hi, curvePoints),
	}, nil
}

func (s *Simulator) uniform(lo, hi float64) float64 {
	if lo == hi {
		return lo
	}
	return lo + s.src().Float64()*(hi-lo)
}

// stdNormal returns a standard normal deviate by the Box-Muller
// transform. Only the cosine deviate of each pair is used.
func (s *Simulator) stdNormal() float64 {
	src := s.src()
	u1 := src.Float64()
	for u1 == 0 {
		u1 = src.Float64()
	}
	u2 := src.Float64()
	return math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
}

// binomial counts successes in n Bernoulli(p) trials.
func (s *Simulator) binomial(n int, p float64) int {
	src := s.src()
	k := 0
	for range n {
		if src.Float64() < p {
			k++
		}
	}
	return k
}

// poisson uses Knuth's algorithm: multiply uniforms until the product
// drops to e^-λ or below and count the factors before that.
func (s *Simulator) poisson(lambda float64) int {
	if lambda > poissonNormalCutoff {
		x := math.Round(lambda + math.Sqrt(lambda)*s.stdNormal())
		return int(math.Max(0, x))
	}
	src := s.src()
	limit := math.Exp(-lambda)
	k := 0
	for prod := src.Float64(); prod > limit; prod *= src.Float64() {
		k++
	}
	return k
}
