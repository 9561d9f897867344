// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

// A Dist is a continuous statistical distribution.
type Dist interface {
	// PDF returns the value of the probability density function
	// of this distribution at x.
	PDF(x float64) float64

	// CDF returns the value of the cumulative distribution
	// function for this distribution at x.
	CDF(x float64) float64

	// Bounds returns reasonable bounds for this distribution's
	// PDF and CDF. The total weight outside of these bounds
	// should be approximately 0.
	Bounds() (float64, float64)
}

// A DiscreteDist is a discrete statistical distribution.
//
// Distributions here are defined only at integral values of the random
// variable, but the interface takes a float64 so it composes with Dist.
// The probability mass function rounds down to the nearest integer.
type DiscreteDist interface {
	// PMF returns Pr[X = floor(x)].
	PMF(x float64) float64

	// CDF returns the cumulative probability Pr[X <= x].
	CDF(x float64) float64

	// Step returns s, where the distribution is defined for sℕ.
	Step() float64

	// Bounds returns reasonable bounds for this distribution's
	// PMF and CDF. Both bounds are integer multiples of Step().
	Bounds() (float64, float64)
}

// curvePoints is the number of points sampled for a continuous curve.
const curvePoints = 200

// pdfCurve samples d.PDF at n evenly spaced points spanning [lo, hi].
func pdfCurve(d Dist, lo, hi float64, n int) []ChartPoint {
	if n < 2 || hi <= lo {
		return []ChartPoint{{X: lo, Y: d.PDF(lo)}}
	}
	step := (hi - lo) / float64(n-1)
	pts := make([]ChartPoint, n)
	for i := range pts {
		x := lo + float64(i)*step
		pts[i] = ChartPoint{X: x, Y: d.PDF(x)}
	}
	return pts
}
