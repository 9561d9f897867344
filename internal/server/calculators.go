// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/statlab/statcalc/stats"
)

var (
	// ErrBadRequest is returned for a request body that is not valid
	// JSON for the requested calculator.
	ErrBadRequest = errors.New("malformed request body")

	// ErrUnknownKind is returned for a calculator kind that does not
	// exist.
	ErrUnknownKind = errors.New("unknown calculator")
)

// A calculator decodes one kind's input record and runs it.
type calculator func(s *Server, body []byte) (stats.Result, error)

// dataInput is the body of the calculators that take a list of values.
type dataInput struct {
	Data  []float64 `json:"data"`
	Steps bool      `json:"steps"`
}

// discreteInput is the body of the discrete random variable calculator.
type discreteInput struct {
	Outcomes []stats.Outcome `json:"outcomes"`
}

// intervalInput is the body of the confidence interval calculator.
// Method "z" (the default) uses the known-sigma fields; "t" uses Data.
type intervalInput struct {
	stats.ZIntervalInput

	Method string    `json:"method"`
	Data   []float64 `json:"data,omitempty"`
}

var calculators = map[stats.Kind]calculator{
	stats.KindDescriptive: func(_ *Server, body []byte) (stats.Result, error) {
		in, err := decode[dataInput](body)
		if err != nil {
			return nil, err
		}
		return stats.Describe(in.Data, in.Steps)
	},
	stats.KindFrequency: func(_ *Server, body []byte) (stats.Result, error) {
		in, err := decode[dataInput](body)
		if err != nil {
			return nil, err
		}
		return stats.Frequency(in.Data)
	},
	stats.KindCombinatorics:       simple(stats.Combinatorics),
	stats.KindProbability:         simple(stats.BasicProbability),
	stats.KindBinomial:            simple(stats.Binomial),
	stats.KindPoisson:             simple(stats.Poisson),
	stats.KindExponential:         simple(stats.Exponential),
	stats.KindNormal:              simple(stats.Normal),
	stats.KindSamplingMeans:       simple(stats.SamplingMeans),
	stats.KindSamplingProportions: simple(stats.SamplingProportions),
	stats.KindConfidenceInterval: func(_ *Server, body []byte) (stats.Result, error) {
		in, err := decode[intervalInput](body)
		if err != nil {
			return nil, err
		}
		switch in.Method {
		case "z", "":
			return stats.ZInterval(in.ZIntervalInput)
		case "t":
			return stats.TInterval(in.Data, float64(in.Level))
		}
		return nil, &stats.ValidationError{Field: "method", Msg: fmt.Sprintf("unknown method %q; use \"z\" or \"t\"", in.Method)}
	},
	stats.KindDiscreteRV: func(_ *Server, body []byte) (stats.Result, error) {
		in, err := decode[discreteInput](body)
		if err != nil {
			return nil, err
		}
		return stats.DiscreteRV(in.Outcomes)
	},
	stats.KindBayes: simple(stats.Bayes),
	stats.KindSets:  simple(stats.Sets),
	stats.KindSimulation: func(s *Server, body []byte) (stats.Result, error) {
		in, err := decode[stats.SimulationInput](body)
		if err != nil {
			return nil, err
		}
		return s.simulate(in)
	},
}

// simple adapts an operation whose body is its input record.
func simple[In any, Out stats.Result](f func(In) (Out, error)) calculator {
	return func(_ *Server, body []byte) (stats.Result, error) {
		in, err := decode[In](body)
		if err != nil {
			return nil, err
		}
		res, err := f(in)
		if err != nil {
			return nil, err
		}
		return res, nil
	}
}

// decode strictly decodes body into a T. An empty body decodes to the
// zero T.
func decode[T any](body []byte) (T, error) {
	var v T
	if len(bytes.TrimSpace(body)) == 0 {
		return v, nil
	}
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&v); err != nil {
		return v, fmt.Errorf("%w: %v", ErrBadRequest, err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return v, fmt.Errorf("%w: trailing data after JSON value", ErrBadRequest)
	}
	return v, nil
}

// calculate runs the calculator for kind on body.
func (s *Server) calculate(kind stats.Kind, body []byte) (stats.Result, error) {
	calc, ok := calculators[kind]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownKind, kind)
	}
	return calc(s, body)
}

func (s *Server) simulate(in stats.SimulationInput) (stats.Result, error) {
	if s.maxPoints > 0 && in.N > s.maxPoints {
		return nil, &stats.ValidationError{
			Field: "points",
			Msg:   fmt.Sprintf("must be between 1 and %d, got %d", s.maxPoints, in.N),
		}
	}
	if s.maxTrials > 0 && in.Dist == stats.SimBinomial && in.Trials > s.maxTrials {
		return nil, &stats.ValidationError{
			Field: "trials",
			Msg:   fmt.Sprintf("must be between 1 and %d, got %d", s.maxTrials, in.Trials),
		}
	}
	s.simMu.Lock()
	defer s.simMu.Unlock()
	return s.sim.Simulate(in)
}
