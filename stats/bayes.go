// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

// BayesInput is the input to Bayes.
type BayesInput struct {
	PA        float64 `json:"p_a"`
	PBGivenA  float64 `json:"p_b_given_a"`
	PBGivenNA float64 `json:"p_b_given_not_a"`
}

// BayesResult is the result of Bayes.
type BayesResult struct {
	BayesInput

	PNotA float64 `json:"p_not_a"`
	PB    float64 `json:"p_b"`

	// PAGivenB is the posterior P(A|B). It is NaN when P(B) = 0
	// and P(B|A)P(A) is not.
	PAGivenB float64 `json:"p_a_given_b"`
}

// Bayes computes the posterior P(A|B) = P(B|A)P(A)/P(B), where P(B) is
// found by total probability, P(B|A)P(A) + P(B|¬A)P(¬A).
//
// When P(B) = 0 the posterior is 0 if the numerator is also 0, and NaN
// otherwise.
func Bayes(in BayesInput) (*BayesResult, error) {
	if err := checkProb("p_a", in.PA); err != nil {
		return nil, err
	}
	if err := checkProb("p_b_given_a", in.PBGivenA); err != nil {
		return nil, err
	}
	if err := checkProb("p_b_given_not_a", in.PBGivenNA); err != nil {
		return nil, err
	}

	res := &BayesResult{BayesInput: in, PNotA: 1 - in.PA}
	num := in.PBGivenA * in.PA
	res.PB = num + in.PBGivenNA*res.PNotA
	switch {
	case res.PB != 0:
		res.PAGivenB = num / res.PB
	case num == 0:
		res.PAGivenB = 0
	default:
		res.PAGivenB = nan
	}
	return res, nil
}
