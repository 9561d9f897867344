// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// NormalDist is a normal (Gaussian) distribution with mean Mu and
// standard deviation Sigma.
type NormalDist struct {
	Mu    float64 `json:"mu"`
	Sigma float64 `json:"sigma"`
}

// StdNormal is the standard normal distribution (Mu = 0, Sigma = 1)
var StdNormal = NormalDist{0, 1}

// 1/sqrt(2 * pi)
const invSqrt2Pi = 0.39894228040143267793994605993438186847585863116493465766592583

// Validate reports whether n has a positive, finite Sigma.
func (n NormalDist) Validate() error {
	if math.IsNaN(n.Mu) || math.IsInf(n.Mu, 0) {
		return invalid("mu", "must be a finite number")
	}
	if !(n.Sigma > 0) || math.IsInf(n.Sigma, 0) {
		return invalid("sigma", "must be positive, got %v", n.Sigma)
	}
	return nil
}

func (n NormalDist) PDF(x float64) float64 {
	z := x - n.Mu
	return math.Exp(-z*z/(2*n.Sigma*n.Sigma)) * invSqrt2Pi / n.Sigma
}

// CDF returns Pr[X <= x] using StdNormalCDF.
func (n NormalDist) CDF(x float64) float64 {
	return StdNormalCDF(n.Z(x))
}

// Z returns the z-score of x.
func (n NormalDist) Z(x float64) float64 {
	return (x - n.Mu) / n.Sigma
}

// InvCDF returns the x for which CDF(x) = y. Unlike CDF, this is
// computed exactly rather than by polynomial approximation.
func (n NormalDist) InvCDF(y float64) float64 {
	return distuv.Normal{Mu: n.Mu, Sigma: n.Sigma}.Quantile(y)
}

// Bounds returns Mu ± 4 Sigma.
func (n NormalDist) Bounds() (float64, float64) {
	const stddevs = 4
	return n.Mu - stddevs*n.Sigma, n.Mu + stddevs*n.Sigma
}

func (n NormalDist) Mean() float64 {
	return n.Mu
}

func (n NormalDist) Variance() float64 {
	return n.Sigma * n.Sigma
}

// Coefficients of the Zelen & Severo approximation to the standard
// normal CDF (Abramowitz & Stegun 26.2.17).
const (
	zsP  = 0.2316419
	zsB1 = 0.319381530
	zsB2 = -0.356563782
	zsB3 = 1.781477937
	zsB4 = -1.821255978
	zsB5 = 1.330274429
)

// StdNormalCDF returns Φ(z), the standard normal CDF, approximated by
// the five-term Zelen & Severo polynomial evaluated at |z| and mirrored
// for negative z. The absolute error is below 7.5e-8.
func StdNormalCDF(z float64) float64 {
	t := 1 / (1 + zsP*math.Abs(z))
	poly := t * (zsB1 + t*(zsB2+t*(zsB3+t*(zsB4+t*zsB5))))
	cdf := 1 - invSqrt2Pi*math.Exp(-z*z/2)*poly
	if z < 0 {
		return 1 - cdf
	}
	return cdf
}

// NormalInput is the input to Normal.
type NormalInput struct {
	NormalDist

	// X1, if not nil, is the value for single-sided queries. If X2
	// is also set, [X1, X2] is the range to query and X1 <= X2.
	X1 *float64 `json:"x1,omitempty"`
	X2 *float64 `json:"x2,omitempty"`
}

// NormalResult is the result of Normal.
type NormalResult struct {
	Mu    float64  `json:"mean"`
	Sigma float64  `json:"std_dev"`
	X1    *float64 `json:"x1,omitempty"`
	X2    *float64 `json:"x2,omitempty"`

	// Z1, Below and Above are set when X1 is; Between is set when
	// X2 is.
	Z1      *float64 `json:"z_score_x1,omitempty"`
	Below   *float64 `json:"probability_below_x1,omitempty"`
	Above   *float64 `json:"probability_above_x1,omitempty"`
	Between *float64 `json:"probability_between_x1_x2,omitempty"`

	PDF []ChartPoint `json:"pdf"`
}

// Normal evaluates a normal distribution: its density over μ±4σ and,
// for the queried values, P(X <= x1), P(X >= x1) and P(x1 <= X <= x2).
func Normal(in NormalInput) (*NormalResult, error) {
	d := in.NormalDist
	if err := d.Validate(); err != nil {
		return nil, err
	}
	if in.X2 != nil && in.X1 == nil {
		return nil, invalid("x2", "a range query needs x1 as well")
	}
	if in.X1 != nil && in.X2 != nil && *in.X1 > *in.X2 {
		return nil, invalid("x1", "must be less than or equal to x2 for a range probability (%v > %v)", *in.X1, *in.X2)
	}

	res := &NormalResult{Mu: d.Mu, Sigma: d.Sigma}
	lo, hi := d.Bounds()
	res.PDF = pdfCurve(d, lo, hi, curvePoints)

	if in.X1 != nil {
		x1 := *in.X1
		z := d.Z(x1)
		below := d.CDF(x1)
		above := 1 - below
		res.X1, res.Z1, res.Below, res.Above = &x1, &z, &below, &above
		if in.X2 != nil {
			x2 := *in.X2
			between := d.CDF(x2) - below
			res.X2, res.Between = &x2, &between
		}
	}
	return res, nil
}
