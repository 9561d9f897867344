// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import "math"

// maxFactorial is the largest n for which n! is finite in a float64.
const maxFactorial = 170

// exactChooseLimit is the largest n for which Choose uses the
// multiplicative formula. Above it, Choose goes through log-factorials.
const exactChooseLimit = 30

// Factorial returns n!. It returns NaN for n < 0 and +Inf once the
// result no longer fits in a float64.
func Factorial(n int) float64 {
	if n < 0 {
		return nan
	}
	if n > maxFactorial {
		return inf
	}
	res := 1.0
	for i := 2; i <= n; i++ {
		res *= float64(i)
	}
	return res
}

// LogFactorial returns ln(n!). Up to 170 it is the sum
// ln(1) + ... + ln(n); above that it is ln Γ(n+1). It returns NaN for
// n < 0.
func LogFactorial(n int) float64 {
	if n < 0 {
		return nan
	}
	if n > maxFactorial {
		lg, _ := math.Lgamma(float64(n) + 1)
		return lg
	}
	sum := 0.0
	for i := 2; i <= n; i++ {
		sum += math.Log(float64(i))
	}
	return sum
}

// Choose returns the binomial coefficient nCk, the number of ways to
// choose k elements from a set of n.
//
// For n <= 30 this is computed with the multiplicative formula, which is
// exact in float64. For larger n it is exp(ln n! - ln k! - ln (n-k)!)
// rounded to the nearest integer. Choose returns 0 if k < 0 or k > n.
func Choose(n, k int) float64 {
	if k < 0 || k > n {
		return 0
	}
	if k == 0 || k == n {
		return 1
	}
	if 2*k > n {
		k = n - k
	}

	if n > exactChooseLimit {
		return math.Round(math.Exp(LogChoose(n, k)))
	}

	res := 1.0
	for i := 1; i <= k; i++ {
		res = res * float64(n-i+1) / float64(i)
	}
	return res
}

// LogChoose returns ln nCk. It returns -Inf if k < 0 or k > n.
func LogChoose(n, k int) float64 {
	if k < 0 || k > n {
		return math.Inf(-1)
	}
	return LogFactorial(n) - LogFactorial(k) - LogFactorial(n-k)
}

// Permute returns nPr, the number of ordered arrangements of r elements
// drawn from a set of n. It returns 0 if r < 0 or r > n, and +Inf once
// the product overflows.
func Permute(n, r int) float64 {
	if r < 0 || r > n {
		return 0
	}
	res := 1.0
	for i := 0; i < r; i++ {
		res *= float64(n - i)
		if math.IsInf(res, 1) {
			break
		}
	}
	return res
}
