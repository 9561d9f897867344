// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/statlab/statcalc/mathx"
)

// A CombinOp selects between ordered and unordered selections.
type CombinOp string

const (
	Permutations CombinOp = "permutations"
	Combinations CombinOp = "combinations"
)

// CombinatoricsInput is the input to Combinatorics.
type CombinatoricsInput struct {
	Op CombinOp `json:"operation"`
	N  int      `json:"n"`
	R  int      `json:"r"`
}

// CombinatoricsResult is the result of Combinatorics.
type CombinatoricsResult struct {
	Op CombinOp `json:"operation"`
	N  int      `json:"n"`
	R  int      `json:"r"`

	// Value is nPr or nCr. It is +Inf if the count overflows.
	Value float64 `json:"value"`
}

// Combinatorics counts the ways of choosing in.R of in.N items, with
// order (permutations) or without (combinations).
func Combinatorics(in CombinatoricsInput) (*CombinatoricsResult, error) {
	if in.N < 0 {
		return nil, invalid("n", "must be a non-negative integer, got %d", in.N)
	}
	if in.R < 0 {
		return nil, invalid("r", "must be a non-negative integer, got %d", in.R)
	}
	if in.R > in.N {
		return nil, invalid("r", "cannot exceed n (%d), got %d", in.N, in.R)
	}
	res := &CombinatoricsResult{Op: in.Op, N: in.N, R: in.R}
	switch in.Op {
	case Permutations:
		res.Value = mathx.Permute(in.N, in.R)
	case Combinations:
		res.Value = mathx.Choose(in.N, in.R)
	default:
		return nil, invalid("operation", "unknown operation %q; use %q or %q", in.Op, Permutations, Combinations)
	}
	return res, nil
}

// Probability returns favorable/possible, the classical probability of
// an event. It is NaN if possible <= 0.
//
// The caller must ensure favorable <= possible.
func Probability(favorable, possible float64) float64 {
	if possible <= 0 {
		return nan
	}
	return favorable / possible
}

// ConditionalProbability returns P(A|B) = P(A∩B)/P(B). It is NaN if
// P(B) <= 0.
//
// The caller must ensure P(A∩B) <= P(B).
func ConditionalProbability(pAB, pB float64) float64 {
	if pB <= 0 {
		return nan
	}
	return pAB / pB
}

// A ProbabilityOp selects the kind of probability to compute.
type ProbabilityOp string

const (
	Classical   ProbabilityOp = "classical"
	Conditional ProbabilityOp = "conditional"
)

// ProbabilityInput is the input to BasicProbability. Favorable and
// Possible are used by Classical; Intersection and Given by
// Conditional.
type ProbabilityInput struct {
	Op           ProbabilityOp `json:"operation"`
	Favorable    float64       `json:"favorable,omitempty"`
	Possible     float64       `json:"possible,omitempty"`
	Intersection float64       `json:"p_a_and_b,omitempty"`
	Given        float64       `json:"p_b,omitempty"`
}

// ProbabilityResult is the result of BasicProbability.
type ProbabilityResult struct {
	ProbabilityInput

	// Probability is P(A) or P(A|B). It is NaN if Undefined.
	Probability float64 `json:"probability"`

	// Undefined reports that the denominator was not positive.
	Undefined bool `json:"undefined"`
}

// BasicProbability computes a classical or conditional probability.
//
// Inputs that would make the probability exceed 1 (more favorable than
// possible outcomes, or P(A∩B) > P(B)) and negative counts or
// probabilities are rejected. A zero denominator is not an error: the
// result is flagged Undefined.
func BasicProbability(in ProbabilityInput) (*ProbabilityResult, error) {
	res := &ProbabilityResult{ProbabilityInput: in}
	switch in.Op {
	case Classical:
		if in.Favorable < 0 || in.Possible < 0 {
			return nil, invalid("favorable", "outcome counts must be non-negative")
		}
		if in.Favorable > in.Possible {
			return nil, invalid("favorable", "favorable outcomes (%v) cannot exceed possible outcomes (%v)", in.Favorable, in.Possible)
		}
		res.Probability = Probability(in.Favorable, in.Possible)
	case Conditional:
		if err := checkProb("p_a_and_b", in.Intersection); err != nil {
			return nil, err
		}
		if err := checkProb("p_b", in.Given); err != nil {
			return nil, err
		}
		if in.Intersection > in.Given {
			return nil, invalid("p_a_and_b", "P(A∩B) (%v) cannot exceed P(B) (%v)", in.Intersection, in.Given)
		}
		res.Probability = ConditionalProbability(in.Intersection, in.Given)
	default:
		return nil, invalid("operation", "unknown operation %q; use %q or %q", in.Op, Classical, Conditional)
	}
	res.Undefined = math.IsNaN(res.Probability)
	return res, nil
}
