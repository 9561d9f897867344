// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stats implements the calculations behind an interactive
// statistics calculator: descriptive statistics, frequency tables,
// discrete and continuous distributions, sampling distributions,
// confidence intervals, Bayes' theorem, set operations and random data
// simulation.
//
// Every operation takes an explicit input record and returns a fresh
// Result. Invalid input is reported as a *ValidationError before any
// computation happens. Mathematically undefined quantities reachable
// from valid input (a zero denominator in a probability) are reported
// as NaN.
package stats // import "github.com/statlab/statcalc/stats"

import (
	"errors"
	"fmt"
	"math"
)

var inf = math.Inf(1)
var nan = math.NaN()

// ErrValidation is matched by every *ValidationError with errors.Is.
var ErrValidation = errors.New("invalid input")

// A ValidationError reports malformed or out-of-domain input.
type ValidationError struct {
	// Field names the offending input, if there is a single one.
	Field string

	// Msg is a human-readable description of the problem.
	Msg string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Msg
	}
	return e.Field + ": " + e.Msg
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Msg: fmt.Sprintf(format, args...)}
}

// checkProb returns a *ValidationError unless 0 <= p <= 1.
func checkProb(field string, p float64) error {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return invalid(field, "must be a probability between 0 and 1, got %v", p)
	}
	return nil
}
