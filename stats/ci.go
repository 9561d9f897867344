// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"
)

// zCritical maps the supported confidence levels, in percent, to their
// two-sided standard normal critical values.
var zCritical = map[int]float64{
	90: 1.645,
	95: 1.960,
	98: 2.326,
	99: 2.576,
}

// ConfidenceLevels lists the confidence levels ZInterval supports.
var ConfidenceLevels = []int{90, 95, 98, 99}

// ZIntervalInput is the input to ZInterval.
type ZIntervalInput struct {
	Mean  float64 `json:"sample_mean"`
	Sigma float64 `json:"population_std_dev"`
	N     int     `json:"sample_size"`

	// Level is the confidence level in percent: 90, 95, 98 or 99.
	Level int `json:"confidence_level"`
}

// ConfidenceIntervalResult is a confidence interval for a population
// mean. Lower = Mean - Margin and Upper = Mean + Margin.
type ConfidenceIntervalResult struct {
	// Method is "z" for a known population standard deviation and
	// "t" for one estimated from the sample.
	Method string `json:"method"`

	Mean  float64 `json:"sample_mean"`
	Sigma float64 `json:"std_dev"`
	N     int     `json:"sample_size"`
	Level float64 `json:"confidence_level"`

	// DF is the degrees of freedom of a t interval.
	DF int `json:"degrees_of_freedom,omitempty"`

	Critical      float64 `json:"critical_value"`
	StandardError float64 `json:"standard_error"`
	Margin        float64 `json:"margin_of_error"`
	Lower         float64 `json:"lower_bound"`
	Upper         float64 `json:"upper_bound"`

	Interpretation string `json:"interpretation"`
}

// ZInterval computes the confidence interval x̄ ∓ z·σ/√n for a
// population mean when the population standard deviation is known.
// The critical value comes from a fixed table, not a quantile function.
func ZInterval(in ZIntervalInput) (*ConfidenceIntervalResult, error) {
	if !(in.Sigma > 0) || math.IsInf(in.Sigma, 0) {
		return nil, invalid("population_std_dev", "must be positive, got %v", in.Sigma)
	}
	if in.N <= 0 {
		return nil, invalid("sample_size", "must be a positive integer, got %d", in.N)
	}
	z, ok := zCritical[in.Level]
	if !ok {
		return nil, invalid("confidence_level", "unsupported confidence level %d; use 90, 95, 98 or 99", in.Level)
	}
	se := in.Sigma / math.Sqrt(float64(in.N))
	return interval("z", in.Mean, in.Sigma, in.N, float64(in.Level), z, se), nil
}

// TInterval computes the confidence interval x̄ ∓ t·s/√n for the mean of
// the population xs was drawn from, using Student's t distribution with
// n-1 degrees of freedom. level is in percent and must lie strictly
// between 0 and 100.
func TInterval(xs []float64, level float64) (*ConfidenceIntervalResult, error) {
	if len(xs) < 2 {
		return nil, invalid("data", "need at least two values, got %d", len(xs))
	}
	if !(level > 0 && level < 100) {
		return nil, invalid("confidence_level", "must be between 0 and 100 percent, got %v", level)
	}
	n := len(xs)
	s := StdDev(xs)
	t := tCritical(level/100, n-1)
	res := interval("t", Mean(xs), s, n, level, t, s/math.Sqrt(float64(n)))
	res.DF = n - 1
	return res, nil
}

func interval(method string, mean, sigma float64, n int, level, critical, se float64) *ConfidenceIntervalResult {
	margin := critical * se
	res := &ConfidenceIntervalResult{
		Method:        method,
		Mean:          mean,
		Sigma:         sigma,
		N:             n,
		Level:         level,
		Critical:      critical,
		StandardError: se,
		Margin:        margin,
		Lower:         mean - margin,
		Upper:         mean + margin,
	}
	res.Interpretation = fmt.Sprintf("With %g%% confidence, the true population mean (μ) is estimated to lie between %.4f and %.4f.",
		level, res.Lower, res.Upper)
	return res
}
