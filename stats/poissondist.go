// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/statlab/statcalc/mathx"
)

// PoissonDist is a Poisson distribution with rate Lambda.
type PoissonDist struct {
	// Lambda is the mean number of events per interval. Lambda > 0.
	Lambda float64 `json:"lambda"`
}

// Validate reports whether d has a positive, finite rate.
func (d PoissonDist) Validate() error {
	if !(d.Lambda > 0) || math.IsInf(d.Lambda, 0) {
		return invalid("lambda", "rate must be positive, got %v", d.Lambda)
	}
	return nil
}

// PMF returns Pr[X = floor(k)] = λᵏe^(-λ)/k!.
func (d PoissonDist) PMF(k float64) float64 {
	kf := math.Floor(k)
	if kf < 0 {
		return 0
	}
	if kf <= 170 {
		ki := int(kf)
		p := math.Pow(d.Lambda, kf) * math.Exp(-d.Lambda) / mathx.Factorial(ki)
		if p > 0 && !math.IsInf(p, 0) {
			return p
		}
	}
	// k! or λᵏ overflows (or e^-λ underflows), so work in log space.
	lg, _ := math.Lgamma(kf + 1)
	return math.Exp(kf*math.Log(d.Lambda) - d.Lambda - lg)
}

// poissonTailEpsilon is the relative size below which CDF stops adding
// PMF terms past the mode.
const poissonTailEpsilon = 1e-17

// CDF returns Pr[X <= k], clamped to 1.
//
// The terms are built incrementally in log space, ln pᵢ = ln pᵢ₋₁ +
// ln(λ/i), and the sum stops once the terms past λ no longer change
// it, so the cost is bounded by λ rather than by k.
func (d PoissonDist) CDF(k float64) float64 {
	kf := math.Floor(k)
	if kf < 0 {
		return 0
	}
	sum := 0.0
	logTerm := -d.Lambda
	for i := 0.0; i <= kf; i++ {
		if i > 0 {
			logTerm += math.Log(d.Lambda / i)
		}
		term := math.Exp(logTerm)
		sum += term
		if sum >= 1 {
			return 1
		}
		if i > d.Lambda && term <= sum*poissonTailEpsilon {
			break
		}
	}
	return sum
}

func (d PoissonDist) Step() float64 {
	return 1
}

// Bounds returns 0 and the chart limit ceil(λ + 5√λ).
func (d PoissonDist) Bounds() (float64, float64) {
	return 0, math.Ceil(d.Lambda + 5*math.Sqrt(d.Lambda))
}

func (d PoissonDist) Mean() float64 {
	return d.Lambda
}

func (d PoissonDist) Variance() float64 {
	return d.Lambda
}

// poissonChartPoints caps the number of plotted PMF values. When the
// cap cuts off a noticeable tail, the chart ends in a truncation marker.
const poissonChartPoints = 40

// MaxPoissonRate is the largest rate Poisson accepts.
const MaxPoissonRate = 1_000_000

// PoissonInput is the input to Poisson.
type PoissonInput struct {
	PoissonDist

	// K, if not nil, is the event count to query.
	K *int `json:"k,omitempty"`
}

// PoissonResult is the result of Poisson.
type PoissonResult struct {
	Lambda   float64 `json:"lambda"`
	Mean     float64 `json:"mean"`
	Variance float64 `json:"variance"`
	StdDev   float64 `json:"std_dev"`

	// K is the queried count, and the probabilities below are set
	// only when it is.
	K           *int     `json:"k,omitempty"`
	Exact       *float64 `json:"probability_exactly_k,omitempty"`
	AtMost      *float64 `json:"probability_at_most_k,omitempty"`
	GreaterThan *float64 `json:"probability_greater_than_k,omitempty"`

	PMF []ChartPoint `json:"pmf"`
}

// Poisson computes the summary statistics of a Poisson distribution
// and, if in.K is set, the probabilities of exactly K, at most K and
// more than K events.
func Poisson(in PoissonInput) (*PoissonResult, error) {
	d := in.PoissonDist
	if err := d.Validate(); err != nil {
		return nil, err
	}
	if d.Lambda > MaxPoissonRate {
		return nil, invalid("lambda", "rate must be at most %d, got %v", MaxPoissonRate, d.Lambda)
	}
	if in.K != nil && *in.K < 0 {
		return nil, invalid("k", "event count must be a non-negative integer, got %d", *in.K)
	}

	res := &PoissonResult{
		Lambda:   d.Lambda,
		Mean:     d.Mean(),
		Variance: d.Variance(),
		StdDev:   math.Sqrt(d.Variance()),
	}

	_, hi := d.Bounds()
	maxK := int(math.Min(hi, poissonChartPoints-1))
	res.PMF = make([]ChartPoint, 0, maxK+2)
	for k := 0; k <= maxK; k++ {
		res.PMF = append(res.PMF, ChartPoint{X: float64(k), Y: d.PMF(float64(k))})
	}
	if hi > float64(maxK) && 1-d.CDF(float64(maxK)) > 1e-6 {
		res.PMF = append(res.PMF, ChartPoint{X: float64(maxK + 1), Label: "...", Truncated: true})
	}

	if in.K != nil {
		k := *in.K
		exact := d.PMF(float64(k))
		atMost := d.CDF(float64(k))
		greater := math.Max(0, 1-atMost)
		res.K = &k
		res.Exact, res.AtMost, res.GreaterThan = &exact, &atMost, &greater
	}
	return res, nil
}
