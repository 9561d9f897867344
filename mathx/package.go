// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mathx implements the counting and special functions used by
// the statistics package.
package mathx // import "github.com/statlab/statcalc/mathx"

import "math"

var inf = math.Inf(1)
var nan = math.NaN()
