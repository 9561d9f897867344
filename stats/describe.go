// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"
	"sort"
)

// histogramBuckets is the maximum number of histogram buckets.
const histogramBuckets = 10

// DescriptiveResult is the result of Describe.
type DescriptiveResult struct {
	Count    int       `json:"count"`
	Sum      float64   `json:"sum"`
	Mean     float64   `json:"mean"`
	Median   float64   `json:"median"`
	Mode     []float64 `json:"mode"`
	Variance float64   `json:"sample_variance"`
	StdDev   float64   `json:"sample_std_dev"`
	Min      float64   `json:"min"`
	Max      float64   `json:"max"`
	Range    float64   `json:"range"`
	Q1       float64   `json:"first_quartile"`
	Q3       float64   `json:"third_quartile"`
	IQR      float64   `json:"interquartile_range"`

	// Histogram has one point per bucket, labeled with the bucket's
	// interval.
	Histogram []ChartPoint `json:"histogram"`

	// The step derivations are present only when requested.
	// VarianceSteps and StdDevSteps additionally require at least
	// two values.
	MeanSteps     *MeanSteps     `json:"mean_steps,omitempty"`
	MedianSteps   *MedianSteps   `json:"median_steps,omitempty"`
	VarianceSteps *VarianceSteps `json:"variance_steps,omitempty"`
	StdDevSteps   *StdDevSteps   `json:"std_dev_steps,omitempty"`
}

// MeanSteps shows the mean as Σx / N.
type MeanSteps struct {
	Sum      float64 `json:"sum"`
	Count    int     `json:"count"`
	Equation string  `json:"equation"`
}

// MedianSteps shows how the median was picked from the sorted data.
type MedianSteps struct {
	Sorted []float64 `json:"sorted_data"`
	Count  int       `json:"count"`
	Even   bool      `json:"is_even"`

	// For an odd count, Middle is the middle value. For an even
	// count, MiddlePair holds the two middle values and Median is
	// their average.
	Middle     *float64  `json:"middle_value,omitempty"`
	MiddlePair []float64 `json:"middle_values,omitempty"`
	Median     *float64  `json:"calculated_median,omitempty"`
}

// DeviationItem is one row of the variance derivation.
type DeviationItem struct {
	X         float64 `json:"x"`
	Deviation float64 `json:"deviation"`
	Squared   float64 `json:"squared_deviation"`
}

// VarianceSteps shows the sample variance as Σ(x - x̄)² / (N - 1).
type VarianceSteps struct {
	Mean       float64         `json:"mean"`
	Items      []DeviationItem `json:"items"`
	SumSquares float64         `json:"sum_squared_deviations"`
	Count      int             `json:"count"`
	Equation   string          `json:"equation"`
}

// StdDevSteps shows the standard deviation as √s².
type StdDevSteps struct {
	Variance float64 `json:"variance"`
	Equation string  `json:"equation"`
}

// Describe computes the descriptive statistics of xs. If steps is
// true, the result also carries the intermediate values of the mean,
// median, variance and standard deviation; these are the very values
// the scalar statistics were computed from.
func Describe(xs []float64, steps bool) (*DescriptiveResult, error) {
	if len(xs) == 0 {
		return nil, invalid("data", "the sample is empty; provide at least one number")
	}

	sample := Sample{Xs: xs}
	sorted := sample.Copy().Sort()
	n := len(xs)

	res := &DescriptiveResult{
		Count:  n,
		Sum:    sample.Sum(),
		Mean:   sample.Mean(),
		Median: median(sorted.Xs),
		Mode:   Mode(xs),
		Q1:     sorted.Percentile(0.25),
		Q3:     sorted.Percentile(0.75),
	}
	res.Min, res.Max = sorted.Bounds()
	res.Range = res.Max - res.Min
	res.IQR = res.Q3 - res.Q1

	var items []DeviationItem
	res.Variance, items = deviations(xs, res.Mean)
	res.StdDev = math.Sqrt(res.Variance)
	res.Histogram = histogram(xs, res.Min, res.Max)

	if steps {
		res.MeanSteps = &MeanSteps{Sum: res.Sum, Count: n, Equation: "Σx / N"}
		res.MedianSteps = medianSteps(sorted.Xs)
		if n >= 2 {
			sum := 0.0
			for _, it := range items {
				sum += it.Squared
			}
			res.VarianceSteps = &VarianceSteps{
				Mean:       res.Mean,
				Items:      items,
				SumSquares: sum,
				Count:      n,
				Equation:   "Σ(x - x̄)² / (N - 1)",
			}
			res.StdDevSteps = &StdDevSteps{Variance: res.Variance, Equation: "√s²"}
		}
	}
	return res, nil
}

// deviations returns the sample variance of xs about mean together
// with the per-value deviation table it was summed from.
func deviations(xs []float64, mean float64) (float64, []DeviationItem) {
	if len(xs) < 2 {
		return nan, nil
	}
	items := make([]DeviationItem, len(xs))
	sum := 0.0
	for i, x := range xs {
		d := x - mean
		items[i] = DeviationItem{X: x, Deviation: d, Squared: d * d}
		sum += d * d
	}
	return sum / float64(len(xs)-1), items
}

// Median returns the median of xs. For an even count it is the average
// of the two middle values.
func Median(xs []float64) float64 {
	return median(Sample{Xs: xs}.Copy().Sort().Xs)
}

func median(sorted []float64) float64 {
	n := len(sorted)
	if n == 0 {
		return nan
	}
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Mode returns the most frequent values of xs in ascending order. It
// returns nil when every value occurs once and there is more than one
// value.
func Mode(xs []float64) []float64 {
	if len(xs) == 0 {
		return nil
	}
	freq := make(map[float64]int, len(xs))
	maxFreq := 0
	for _, x := range xs {
		freq[x]++
		maxFreq = max(maxFreq, freq[x])
	}
	if maxFreq == 1 && len(xs) > 1 {
		return nil
	}
	var modes []float64
	for x, f := range freq {
		if f == maxFreq {
			modes = append(modes, x)
		}
	}
	sort.Float64s(modes)
	return modes
}

func medianSteps(sorted []float64) *MedianSteps {
	n := len(sorted)
	ms := &MedianSteps{
		Sorted: append([]float64(nil), sorted...),
		Count:  n,
		Even:   n%2 == 0,
	}
	if ms.Even {
		lo, hi := sorted[n/2-1], sorted[n/2]
		median := (lo + hi) / 2
		ms.MiddlePair = []float64{lo, hi}
		ms.Median = &median
	} else {
		middle := sorted[n/2]
		ms.Middle = &middle
	}
	return ms
}

// histogram buckets xs into min(10, len(xs)) equal-width buckets
// spanning [lo, hi]. The maximum always lands in the last bucket. If
// all values are equal there is a single bucket.
func histogram(xs []float64, lo, hi float64) []ChartPoint {
	if lo == hi {
		return []ChartPoint{{X: lo, Label: fmt.Sprint(lo), Y: float64(len(xs))}}
	}
	buckets := min(histogramBuckets, len(xs))
	width := math.Max(0.1, (hi-lo)/float64(buckets))
	counts := make([]int, buckets)
	for _, x := range xs {
		i := int(math.Floor((x - lo) / width))
		if x == hi {
			i = buckets - 1
		}
		counts[max(0, min(i, buckets-1))]++
	}
	pts := make([]ChartPoint, buckets)
	for i, c := range counts {
		start := lo + float64(i)*width
		pts[i] = ChartPoint{
			X:     start,
			Label: fmt.Sprintf("%.1f-%.1f", start, start+width),
			Y:     float64(c),
		}
	}
	return pts
}
