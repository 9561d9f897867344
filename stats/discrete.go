// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "math"

// probSumTolerance is how far the probabilities of a distribution table
// may sum from 1.
const probSumTolerance = 1e-9

// An Outcome is one row of a discrete distribution table.
type Outcome struct {
	X float64 `json:"x"`
	P float64 `json:"p"`
}

// DiscreteRVResult is the result of DiscreteRV.
type DiscreteRVResult struct {
	Mean     float64 `json:"expected_value"`
	Variance float64 `json:"variance"`
	StdDev   float64 `json:"std_dev"`

	Table []Outcome `json:"table"`

	// PMF echoes the table as chart points.
	PMF []ChartPoint `json:"pmf"`
}

// DiscreteRV computes E(X) = Σxp, Var(X) = Σ(x-E(X))²p and σ(X) for the
// random variable described by table. The probabilities must be
// non-negative and sum to 1.
func DiscreteRV(table []Outcome) (*DiscreteRVResult, error) {
	if len(table) == 0 {
		return nil, invalid("table", "no outcomes were given")
	}
	sum := 0.0
	for _, o := range table {
		sum += o.P
	}
	if math.IsNaN(sum) || math.Abs(sum-1) > probSumTolerance {
		return nil, invalid("table", "the probabilities P(X=x) must sum to 1 (they sum to %.6f)", sum)
	}
	for _, o := range table {
		if o.P < 0 {
			return nil, invalid("table", "every probability P(X=x) must be non-negative, got %v for x=%v", o.P, o.X)
		}
	}

	mean := 0.0
	for _, o := range table {
		mean += o.X * o.P
	}
	variance := 0.0
	for _, o := range table {
		d := o.X - mean
		variance += d * d * o.P
	}

	res := &DiscreteRVResult{
		Mean:     mean,
		Variance: variance,
		StdDev:   math.Sqrt(variance),
		Table:    append([]Outcome(nil), table...),
		PMF:      make([]ChartPoint, len(table)),
	}
	for i, o := range table {
		res.PMF[i] = ChartPoint{X: o.X, Y: o.P}
	}
	return res, nil
}
