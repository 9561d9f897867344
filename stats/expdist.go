// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "math"

// ExponentialDist is an exponential distribution with rate Lambda.
type ExponentialDist struct {
	// Lambda is the rate parameter. Lambda > 0.
	Lambda float64 `json:"lambda"`
}

// Validate reports whether d has a positive, finite rate.
func (d ExponentialDist) Validate() error {
	if !(d.Lambda > 0) || math.IsInf(d.Lambda, 0) {
		return invalid("lambda", "rate must be positive, got %v", d.Lambda)
	}
	return nil
}

func (d ExponentialDist) PDF(x float64) float64 {
	if x < 0 {
		return 0
	}
	return d.Lambda * math.Exp(-d.Lambda*x)
}

func (d ExponentialDist) CDF(x float64) float64 {
	if x < 0 {
		return 0
	}
	return 1 - math.Exp(-d.Lambda*x)
}

// InvCDF returns the x for which CDF(x) = y.
func (d ExponentialDist) InvCDF(y float64) float64 {
	if y < 0 || y > 1 {
		return nan
	}
	return -math.Log1p(-y) / d.Lambda
}

// Bounds returns 0 and 7/λ, past which less than 0.1% of the mass lies.
func (d ExponentialDist) Bounds() (float64, float64) {
	return 0, 7 / d.Lambda
}

func (d ExponentialDist) Mean() float64 {
	return 1 / d.Lambda
}

func (d ExponentialDist) Variance() float64 {
	return 1 / (d.Lambda * d.Lambda)
}

// ExponentialInput is the input to Exponential.
type ExponentialInput struct {
	ExponentialDist

	// X, if not nil, is the value to query. X >= 0.
	X *float64 `json:"x,omitempty"`
}

// ExponentialResult is the result of Exponential.
type ExponentialResult struct {
	Lambda   float64 `json:"lambda"`
	Mean     float64 `json:"mean"`
	Variance float64 `json:"variance"`
	StdDev   float64 `json:"std_dev"`

	// X is the queried value, and the fields below are set only
	// when it is.
	X           *float64 `json:"x,omitempty"`
	Density     *float64 `json:"density_at_x,omitempty"`
	AtMost      *float64 `json:"probability_at_most_x,omitempty"`
	GreaterThan *float64 `json:"probability_greater_than_x,omitempty"`

	PDF []ChartPoint `json:"pdf"`
}

// Exponential computes the summary statistics of an exponential
// distribution and, if in.X is set, the density at X and the
// probabilities of falling at or below and above X.
func Exponential(in ExponentialInput) (*ExponentialResult, error) {
	d := in.ExponentialDist
	if err := d.Validate(); err != nil {
		return nil, err
	}
	if in.X != nil && !(*in.X >= 0) {
		return nil, invalid("x", "must be non-negative, got %v", *in.X)
	}

	res := &ExponentialResult{
		Lambda:   d.Lambda,
		Mean:     d.Mean(),
		Variance: d.Variance(),
		StdDev:   1 / d.Lambda,
	}

	_, hi := d.Bounds()
	if in.X != nil {
		hi = math.Max(hi, 1.5**in.X)
	}
	res.PDF = pdfCurve(d, 0, hi, curvePoints)

	if in.X != nil {
		x := *in.X
		density := d.PDF(x)
		atMost := d.CDF(x)
		greater := math.Exp(-d.Lambda * x)
		res.X = &x
		res.Density, res.AtMost, res.GreaterThan = &density, &atMost, &greater
	}
	return res, nil
}
