// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"sort"
	"strings"
	"testing"
)

func aeq(expect, got float64) bool {
	return math.Abs(expect-got) < 0.00001
}

// near reports whether got is within tol of want.
func near(want, got, tol float64) bool {
	return math.Abs(want-got) <= tol
}

func testFunc(t *testing.T, name string, f func(float64) float64, vals map[float64]float64) {
	xs := make([]float64, 0, len(vals))
	for x := range vals {
		xs = append(xs, x)
	}
	sort.Float64s(xs)

	for _, x := range xs {
		want, got := vals[x], f(x)
		if math.IsNaN(want) && math.IsNaN(got) || aeq(want, got) {
			continue
		}
		var label string
		if vals[x] == 0 || vals[x] == 1 {
			label = "%s(%v) = %v, want %v"
		} else {
			label = "%s(%v) = %v, want %.8v"
		}
		t.Errorf(label, name, x, got, want)
	}
}

// testDiscreteCDF checks dist.CDF against running sums of dist.PMF
// over dist.Bounds().
func testDiscreteCDF(t *testing.T, name string, dist DiscreteDist) {
	l, h := dist.Bounds()
	s := dist.Step()
	want := map[float64]float64{l - 0.1: 0, h: 1}
	sum := 0.0
	for x := l; x < h; x += s {
		sum += dist.PMF(x)
		want[x] = sum
		want[x+s/2] = sum
	}
	testFunc(t, name, dist.CDF, want)
}

func ptr[T any](v T) *T {
	return &v
}

func isValidation(err error) bool {
	_, ok := err.(*ValidationError)
	return ok
}

func contains(s, substr string) bool {
	return strings.Contains(s, substr)
}
