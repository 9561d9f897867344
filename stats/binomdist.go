// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"

	"github.com/statlab/statcalc/mathx"
)

// BinomialDist is a binomial distribution.
type BinomialDist struct {
	// N is the number of independent Bernoulli trials. N >= 0.
	//
	// If N=1, this is equivalent to the Bernoulli distribution.
	N int `json:"n"`

	// P is the probability of success in each trial. 0 <= P <= 1.
	P float64 `json:"p"`
}

// MaxBinomialTrials is the largest N Binomial accepts.
const MaxBinomialTrials = 1_000_000

// directPMFLimit is the largest N for which PMF multiplies the exact
// binomial coefficient by the powers of P. Larger N are evaluated in
// log space, where C(N, k) cannot overflow.
const directPMFLimit = 30

// Validate reports whether d satisfies N >= 0 and 0 <= P <= 1.
func (d BinomialDist) Validate() error {
	if d.N < 0 {
		return invalid("n", "number of trials must be a non-negative integer, got %d", d.N)
	}
	return checkProb("p", d.P)
}

// PMF is the probability of getting exactly int(k) successes in d.N
// independent Bernoulli trials with probability d.P.
func (d BinomialDist) PMF(k float64) float64 {
	ki := int(math.Floor(k))
	if ki < 0 || ki > d.N {
		return 0
	}
	switch d.P {
	case 0:
		if ki == 0 {
			return 1
		}
		return 0
	case 1:
		if ki == d.N {
			return 1
		}
		return 0
	}
	if d.N <= directPMFLimit {
		p := mathx.Choose(d.N, ki) * math.Pow(d.P, float64(ki)) * math.Pow(1-d.P, float64(d.N-ki))
		if !math.IsInf(p, 0) && !math.IsNaN(p) {
			return p
		}
	}
	return math.Exp(mathx.LogChoose(d.N, ki) + float64(ki)*math.Log(d.P) + float64(d.N-ki)*math.Log1p(-d.P))
}

// CDF is the probability of getting k or fewer successes in d.N
// independent Bernoulli trials with probability d.P.
func (d BinomialDist) CDF(k float64) float64 {
	k = math.Floor(k)
	ki := int(k)
	if ki < 0 {
		return 0
	} else if ki >= d.N {
		return 1
	}

	return mathx.BetaInc(1-d.P, float64(d.N-ki), k+1)
}

func (d BinomialDist) Bounds() (float64, float64) {
	return 0, float64(d.N)
}

func (d BinomialDist) Step() float64 {
	return 1
}

func (d BinomialDist) Mean() float64 {
	return float64(d.N) * d.P
}

func (d BinomialDist) Variance() float64 {
	return float64(d.N) * d.P * (1 - d.P)
}

// NormalApprox returns a normal distribution approximation of
// binomial distribution d.
//
// Because the binomial distribution is discrete and the normal
// distribution is continuous, the caller must apply a continuity
// correction when using this approximation. Specifically, if b is the
// binomial distribution and n is the normal approximation, operations
// map as follows:
//
//	b.PMF(k) => n.CDF(k+0.5) - n.CDF(k-0.5)
//	b.CDF(k) => n.CDF(k+0.5)
func (d BinomialDist) NormalApprox() NormalDist {
	return NormalDist{Mu: d.Mean(), Sigma: math.Sqrt(d.Variance())}
}

// binomialChartLimit is the largest k plotted for a binomial PMF.
const binomialChartLimit = 50

// BinomialInput is the input to Binomial.
type BinomialInput struct {
	BinomialDist

	// X, if not nil, is the number of successes to query.
	X *int `json:"x,omitempty"`
}

// BinomialResult is the result of Binomial.
type BinomialResult struct {
	N        int     `json:"trials"`
	P        float64 `json:"success_probability"`
	Mean     float64 `json:"mean"`
	Variance float64 `json:"variance"`
	StdDev   float64 `json:"std_dev"`

	// X is the queried number of successes, and the three
	// probabilities below are set only when it is.
	X       *int     `json:"x,omitempty"`
	Exact   *float64 `json:"probability_exactly_x,omitempty"`
	AtMost  *float64 `json:"probability_at_most_x,omitempty"`
	AtLeast *float64 `json:"probability_at_least_x,omitempty"`

	// PMF holds Pr[X=k] for k = 0..min(N, 50), followed by a
	// truncation marker if N is larger.
	PMF []ChartPoint `json:"pmf"`
}

// Binomial computes the summary statistics of a binomial distribution
// and, if in.X is set, the probabilities of exactly, at most and at
// least X successes.
func Binomial(in BinomialInput) (*BinomialResult, error) {
	d := in.BinomialDist
	if err := d.Validate(); err != nil {
		return nil, err
	}
	if d.N > MaxBinomialTrials {
		return nil, invalid("n", "number of trials must be at most %d, got %d", MaxBinomialTrials, d.N)
	}
	if in.X != nil && (*in.X < 0 || *in.X > d.N) {
		return nil, invalid("x", "number of successes must be between 0 and %d, got %d", d.N, *in.X)
	}

	res := &BinomialResult{
		N:        d.N,
		P:        d.P,
		Mean:     d.Mean(),
		Variance: d.Variance(),
		StdDev:   math.Sqrt(d.Variance()),
	}

	maxK := min(d.N, binomialChartLimit)
	res.PMF = make([]ChartPoint, 0, maxK+2)
	for k := 0; k <= maxK; k++ {
		res.PMF = append(res.PMF, ChartPoint{X: float64(k), Y: d.PMF(float64(k))})
	}
	if d.N > maxK {
		res.PMF = append(res.PMF, ChartPoint{X: float64(d.N), Label: fmt.Sprintf("...%d", d.N), Truncated: true})
	}

	if in.X != nil {
		x := *in.X
		exact := d.PMF(float64(x))
		atMost, atLeast := 0.0, 0.0
		for k := 0; k <= x; k++ {
			atMost += d.PMF(float64(k))
		}
		for k := x; k <= d.N; k++ {
			atLeast += d.PMF(float64(k))
		}
		res.X = &x
		res.Exact, res.AtMost, res.AtLeast = &exact, &atMost, &atLeast
	}
	return res, nil
}
