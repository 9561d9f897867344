// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "math"

// cltSampleSize is the sample size from which the central limit
// theorem is conventionally taken to apply.
const cltSampleSize = 30

// normalApproxCount is the minimum expected count of successes and of
// failures for the normal approximation to a sample proportion.
const normalApproxCount = 10

// SamplingMeansInput is the input to SamplingMeans.
type SamplingMeansInput struct {
	Mu    float64 `json:"population_mean"`
	Sigma float64 `json:"population_std_dev"`
	N     int     `json:"sample_size"`

	// XBar, if not nil, is a sample mean to locate in the sampling
	// distribution.
	XBar *float64 `json:"sample_mean,omitempty"`
}

// SamplingMeansResult is the result of SamplingMeans.
type SamplingMeansResult struct {
	Mu            float64 `json:"population_mean"`
	Sigma         float64 `json:"population_std_dev"`
	N             int     `json:"sample_size"`
	Mean          float64 `json:"sampling_distribution_mean"`
	StandardError float64 `json:"standard_error"`

	// CLT reports that N >= 30, so the sampling distribution is
	// approximately normal whatever the population's shape. It is
	// advisory only.
	CLT bool `json:"central_limit_theorem_applies"`

	XBar  *float64 `json:"sample_mean,omitempty"`
	Z     *float64 `json:"z_score,omitempty"`
	Below *float64 `json:"probability_below_sample_mean,omitempty"`
	Above *float64 `json:"probability_above_sample_mean,omitempty"`

	PDF []ChartPoint `json:"pdf"`
}

// SamplingMeans describes the sampling distribution of the mean of
// samples of size in.N from a population with mean in.Mu and standard
// deviation in.Sigma: a normal distribution with mean μ and standard
// error σ/√n.
func SamplingMeans(in SamplingMeansInput) (*SamplingMeansResult, error) {
	if !(in.Sigma > 0) || math.IsInf(in.Sigma, 0) {
		return nil, invalid("population_std_dev", "must be positive, got %v", in.Sigma)
	}
	if in.N <= 0 {
		return nil, invalid("sample_size", "must be a positive integer, got %d", in.N)
	}

	dist := NormalDist{Mu: in.Mu, Sigma: in.Sigma / math.Sqrt(float64(in.N))}
	res := &SamplingMeansResult{
		Mu:            in.Mu,
		Sigma:         in.Sigma,
		N:             in.N,
		Mean:          dist.Mu,
		StandardError: dist.Sigma,
		CLT:           in.N >= cltSampleSize,
	}
	lo, hi := dist.Bounds()
	res.PDF = pdfCurve(dist, lo, hi, curvePoints)

	if in.XBar != nil {
		xbar := *in.XBar
		z := dist.Z(xbar)
		below := dist.CDF(xbar)
		above := 1 - below
		res.XBar, res.Z, res.Below, res.Above = &xbar, &z, &below, &above
	}
	return res, nil
}

// SamplingProportionsInput is the input to SamplingProportions.
type SamplingProportionsInput struct {
	P float64 `json:"population_proportion"`
	N int     `json:"sample_size"`

	// PHat, if not nil, is a sample proportion to locate in the
	// sampling distribution.
	PHat *float64 `json:"sample_proportion,omitempty"`
}

// SamplingProportionsResult is the result of SamplingProportions.
type SamplingProportionsResult struct {
	P             float64 `json:"population_proportion"`
	N             int     `json:"sample_size"`
	Mean          float64 `json:"sampling_distribution_mean"`
	StandardError float64 `json:"standard_error"`

	// NP and NQ are the expected numbers of successes and failures.
	// NormalApprox reports that both are at least 10; the z-score
	// and probabilities are withheld otherwise.
	NP           float64 `json:"expected_successes"`
	NQ           float64 `json:"expected_failures"`
	NormalApprox bool    `json:"normal_approximation_valid"`

	PHat  *float64 `json:"sample_proportion,omitempty"`
	Z     *float64 `json:"z_score,omitempty"`
	Below *float64 `json:"probability_below_sample_proportion,omitempty"`
	Above *float64 `json:"probability_above_sample_proportion,omitempty"`

	PDF []ChartPoint `json:"pdf"`
}

// SamplingProportions describes the sampling distribution of the
// proportion of successes in samples of size in.N from a population
// with success proportion in.P, approximated by a normal distribution
// with mean p and standard error √(p(1-p)/n).
func SamplingProportions(in SamplingProportionsInput) (*SamplingProportionsResult, error) {
	if err := checkProb("population_proportion", in.P); err != nil {
		return nil, err
	}
	if in.N <= 0 {
		return nil, invalid("sample_size", "must be a positive integer, got %d", in.N)
	}
	if in.P == 0 || in.P == 1 {
		return nil, invalid("population_proportion", "cannot be 0 or 1 for the normal approximation")
	}
	if in.PHat != nil {
		if err := checkProb("sample_proportion", *in.PHat); err != nil {
			return nil, err
		}
	}

	n := float64(in.N)
	dist := NormalDist{Mu: in.P, Sigma: math.Sqrt(in.P * (1 - in.P) / n)}
	res := &SamplingProportionsResult{
		P:             in.P,
		N:             in.N,
		Mean:          dist.Mu,
		StandardError: dist.Sigma,
		NP:            n * in.P,
		NQ:            n * (1 - in.P),
	}
	res.NormalApprox = res.NP >= normalApproxCount && res.NQ >= normalApproxCount

	lo, hi := dist.Bounds()
	res.PDF = pdfCurve(dist, math.Max(0, lo), math.Min(1, hi), curvePoints)

	if in.PHat != nil {
		phat := *in.PHat
		res.PHat = &phat
		if res.NormalApprox {
			z := dist.Z(phat)
			below := dist.CDF(phat)
			above := 1 - below
			res.Z, res.Below, res.Above = &z, &below, &above
		}
	}
	return res, nil
}
