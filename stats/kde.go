// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
)

// KDE represents options for constructing a kernel density estimate.
//
// Kernel density estimation is a method for constructing an estimate
// ƒ̂(x) of a unknown distribution ƒ(x) given a sample from that
// distribution. It is similar to a histogram, except that it is a
// smooth probability estimate and does not require choosing a bin size
// and discretizing the data.
//
// The kernel is always Gaussian. The default (zero) value of KDE is a
// reasonable default configuration.
type KDE struct {
	// Bandwidth is the bandwidth to use for the KDE.
	//
	// If this is zero, the bandwidth is computed from the
	// provided data using BandwidthScott.
	Bandwidth float64

	// Floor, if set, is a lower bound of the support. The density
	// estimate is reflected at *Floor, which suits data such as
	// counts and waiting times that cannot go negative.
	Floor *float64
}

// BandwidthSilverman is a bandwidth estimator implementing
// Silverman's Rule of Thumb. It's fast, but not very robust to
// outliers as it assumes data is approximately normal.
//
// Silverman, B. W. (1986) Density Estimation.
func BandwidthSilverman(data interface {
	StdDev() float64
	Weight() float64
}) float64 {
	return 1.06 * data.StdDev() * math.Pow(data.Weight(), -1.0/5)
}

// BandwidthScott is a bandwidth estimator implementing Scott's Rule.
// This is generally robust to outliers: it chooses the minimum
// between the sample's standard deviation and an robust estimator of
// a Gaussian distribution's standard deviation.
//
// Scott, D. W. (1992) Multivariate Density Estimation: Theory,
// Practice, and Visualization.
func BandwidthScott(data interface {
	StdDev() float64
	Weight() float64
	Percentile(float64) float64
}) float64 {
	iqr := data.Percentile(0.75) - data.Percentile(0.25)
	hScale := 1.06 * math.Pow(data.Weight(), -1.0/5)
	stdDev := data.StdDev()
	if stdDev < iqr/1.349 || iqr == 0 {
		// Use Silverman's Rule of Thumb
		return hScale * stdDev
	}
	// Use IQR/1.349 as a robust estimator of the standard
	// deviation of a Gaussian distribution.
	return hScale * (iqr / 1.349)
}

// From returns the kernel density estimate for the unweighted
// sample s as a Dist.
//
// Degenerate samples (fewer than two points, or all points equal) get a
// bandwidth of 1 unless k.Bandwidth is set.
func (k KDE) From(s Sample) Dist {
	h := k.Bandwidth
	if h == 0 {
		h = BandwidthScott(s)
	}
	if !(h > 0) || math.IsInf(h, 0) {
		h = 1
	}
	xs := make([]float64, len(s.Xs))
	copy(xs, s.Xs)
	return &kdeDist{kernel: NormalDist{0, h}, xs: xs, floor: k.Floor}
}

type kdeDist struct {
	kernel NormalDist
	xs     []float64
	floor  *float64
}

func (kde *kdeDist) at(x float64, f func(float64) float64) float64 {
	if len(kde.xs) == 0 {
		return 0
	}
	sum := 0.0
	for _, xi := range kde.xs {
		sum += f(x - xi)
	}
	return sum / float64(len(kde.xs))
}

func (kde *kdeDist) PDF(x float64) float64 {
	if kde.floor == nil {
		return kde.at(x, kde.kernel.PDF)
	}
	if x < *kde.floor {
		return 0
	}
	return kde.at(x, kde.kernel.PDF) + kde.at(2**kde.floor-x, kde.kernel.PDF)
}

func (kde *kdeDist) CDF(x float64) float64 {
	if kde.floor == nil {
		return kde.at(x, kde.kernel.CDF)
	}
	if x < *kde.floor {
		return 0
	}
	return kde.at(x, kde.kernel.CDF) - kde.at(2**kde.floor-x, kde.kernel.CDF)
}

// Bounds returns the range of the data widened by three bandwidths on
// each side, clipped to the floor.
func (kde *kdeDist) Bounds() (low float64, high float64) {
	low, high = Bounds(kde.xs)
	if math.IsNaN(low) {
		return -1, 1
	}
	h := kde.kernel.Sigma
	low, high = low-3*h, high+3*h
	if kde.floor != nil {
		low = math.Max(low, *kde.floor)
	}
	return
}
