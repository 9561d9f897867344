// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
)

// A SetOp is a binary set operation.
type SetOp string

const (
	Union               SetOp = "union"
	Intersection        SetOp = "intersection"
	DifferenceAB        SetOp = "difference-a-b"
	DifferenceBA        SetOp = "difference-b-a"
	SymmetricDifference SetOp = "symmetric-difference"
)

// SetOps lists every SetOp.
var SetOps = []SetOp{Union, Intersection, DifferenceAB, DifferenceBA, SymmetricDifference}

// SetInput is the input to Sets. A and B are lists of tokens; each is
// trimmed, empty tokens are dropped and duplicates collapse.
type SetInput struct {
	A  []string `json:"set_a"`
	B  []string `json:"set_b"`
	Op SetOp    `json:"operation"`
}

// SetResult is the result of Sets. Every element list is sorted with
// numeric tokens first, in numeric order, followed by the remaining
// tokens in lexical order.
type SetResult struct {
	Op     SetOp    `json:"operation"`
	A      []string `json:"set_a"`
	B      []string `json:"set_b"`
	Result []string `json:"result"`

	// The Venn decomposition of A and B, reported for every
	// operation.
	OnlyA []string `json:"only_in_a"`
	OnlyB []string `json:"only_in_b"`
	Both  []string `json:"in_both"`

	CountA      int `json:"count_a"`
	CountB      int `json:"count_b"`
	CountResult int `json:"count_result"`
	CountOnlyA  int `json:"count_only_in_a"`
	CountOnlyB  int `json:"count_only_in_b"`
	CountBoth   int `json:"count_in_both"`
}

type tokenSet map[string]struct{}

func newTokenSet(tokens []string) tokenSet {
	s := make(tokenSet, len(tokens))
	for _, t := range tokens {
		if t = strings.TrimSpace(t); t != "" {
			s[t] = struct{}{}
		}
	}
	return s
}

func (s tokenSet) has(t string) bool {
	_, ok := s[t]
	return ok
}

// minus returns the elements of s not in o.
func (s tokenSet) minus(o tokenSet) tokenSet {
	r := make(tokenSet)
	for t := range s {
		if !o.has(t) {
			r[t] = struct{}{}
		}
	}
	return r
}

func (s tokenSet) intersect(o tokenSet) tokenSet {
	r := make(tokenSet)
	for t := range s {
		if o.has(t) {
			r[t] = struct{}{}
		}
	}
	return r
}

func (s tokenSet) union(o tokenSet) tokenSet {
	r := make(tokenSet, len(s)+len(o))
	for t := range s {
		r[t] = struct{}{}
	}
	for t := range o {
		r[t] = struct{}{}
	}
	return r
}

// sorted returns the elements of s, numeric tokens first.
func (s tokenSet) sorted() []string {
	out := make([]string, 0, len(s))
	for t := range s {
		out = append(out, t)
	}
	slices.SortFunc(out, compareTokens)
	return out
}

func compareTokens(a, b string) int {
	fa, errA := strconv.ParseFloat(a, 64)
	fb, errB := strconv.ParseFloat(b, 64)
	switch {
	case errA == nil && errB == nil:
		if c := cmp.Compare(fa, fb); c != 0 {
			return c
		}
	case errA == nil:
		return -1
	case errB == nil:
		return 1
	}
	return strings.Compare(a, b)
}

// Sets applies in.Op to the token sets A and B.
func Sets(in SetInput) (*SetResult, error) {
	a, b := newTokenSet(in.A), newTokenSet(in.B)
	onlyA, onlyB, both := a.minus(b), b.minus(a), a.intersect(b)

	var result tokenSet
	switch in.Op {
	case Union:
		result = a.union(b)
	case Intersection:
		result = both
	case DifferenceAB:
		result = onlyA
	case DifferenceBA:
		result = onlyB
	case SymmetricDifference:
		result = onlyA.union(onlyB)
	default:
		return nil, invalid("operation", "unknown set operation %q", in.Op)
	}

	return &SetResult{
		Op:          in.Op,
		A:           a.sorted(),
		B:           b.sorted(),
		Result:      result.sorted(),
		OnlyA:       onlyA.sorted(),
		OnlyB:       onlyB.sorted(),
		Both:        both.sorted(),
		CountA:      len(a),
		CountB:      len(b),
		CountResult: len(result),
		CountOnlyA:  len(onlyA),
		CountOnlyB:  len(onlyB),
		CountBoth:   len(both),
	}, nil
}
