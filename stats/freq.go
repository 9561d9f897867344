// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"
)

// A FrequencyClass is one class (bin) of a frequency table.
type FrequencyClass struct {
	// Lower and Upper bound the class. Every class is the half-open
	// interval [Lower, Upper) except the last, which is closed and
	// ends at the sample maximum.
	Lower float64 `json:"lower_bound"`
	Upper float64 `json:"upper_bound"`

	Label      string  `json:"interval"`
	Mark       float64 `json:"class_mark"`
	Absolute   int     `json:"absolute_frequency"`
	Relative   float64 `json:"relative_frequency"`
	Cumulative int     `json:"cumulative_frequency"`
}

// FrequencyResult is the result of Frequency.
type FrequencyResult struct {
	N       int              `json:"n"`
	Min     float64          `json:"min"`
	Max     float64          `json:"max"`
	Range   float64          `json:"range"`
	Classes int              `json:"number_of_classes"`
	Width   float64          `json:"class_width"`
	Table   []FrequencyClass `json:"classes"`

	// Chart has one point per class at the class mark, with the
	// absolute frequency as both the bar and the polygon value.
	Chart []ChartPoint `json:"chart"`
}

// Frequency groups xs into classes.
//
// The initial number of classes follows Sturges' rule,
// round(1 + 3.322 log₁₀ N). The class width is range/classes rounded
// up to an integer (but at least 0.1 before that and at least 1 after),
// and the number of classes is then recomputed as ceil(range/width).
// If all values are equal there is a single class of width 0.
func Frequency(xs []float64) (*FrequencyResult, error) {
	n := len(xs)
	if n == 0 {
		return nil, invalid("data", "the sample is empty; provide at least one number")
	}
	sorted := Sample{Xs: xs}.Copy().Sort()
	lo, hi := sorted.Bounds()
	res := &FrequencyResult{N: n, Min: lo, Max: hi, Range: hi - lo}

	if res.Range == 0 {
		label := fmt.Sprint(lo)
		res.Classes = 1
		res.Table = []FrequencyClass{{
			Lower: lo, Upper: hi, Label: label, Mark: lo,
			Absolute: n, Relative: 1, Cumulative: n,
		}}
		res.Chart = []ChartPoint{{X: lo, Label: fmt.Sprintf("%.1f", lo), Y: float64(n), Polygon: float64(n), Interval: label}}
		return res, nil
	}

	k := max(1, int(math.Round(1+3.322*math.Log10(float64(n)))))
	width := res.Range / float64(k)
	if width < 0.1 {
		width = math.Max(0.1, math.Ceil(res.Range/float64(k)))
	} else {
		width = math.Ceil(width)
	}
	width = math.Max(1, width)
	k = max(1, int(math.Ceil(res.Range/width)))
	res.Classes, res.Width = k, width

	cum := 0
	j := 0 // index into sorted.Xs of the first value not yet counted
	for i := 0; i < k; i++ {
		lower := lo + float64(i)*width
		upper := lo + float64(i+1)*width
		last := i == k-1
		label := fmt.Sprintf("%.1f - <%.1f", lower, upper)
		if last {
			upper = hi
			label = fmt.Sprintf("%.1f - %.1f", lower, hi)
		}

		count := 0
		for ; j < n && (last || sorted.Xs[j] < upper); j++ {
			count++
		}
		cum += count

		mark := (lower + upper) / 2
		res.Table = append(res.Table, FrequencyClass{
			Lower:      lower,
			Upper:      upper,
			Label:      label,
			Mark:       mark,
			Absolute:   count,
			Relative:   float64(count) / float64(n),
			Cumulative: cum,
		})
		res.Chart = append(res.Chart, ChartPoint{
			X:        mark,
			Label:    fmt.Sprintf("%.1f", mark),
			Y:        float64(count),
			Polygon:  float64(count),
			Interval: label,
		})
	}
	return res, nil
}
