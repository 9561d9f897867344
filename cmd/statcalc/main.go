// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// statcalc is an interactive statistics calculator.
//
// Each subcommand runs one calculation and prints the result as a
// table, JSON or YAML; --chart writes an HTML chart and --explain asks
// a language model for an interpretation. "statcalc serve" exposes the
// same calculations as a JSON HTTP API.
package main

import (
	"fmt"
	"os"

	"github.com/statlab/statcalc/cmd/statcalc/commands"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := commands.NewRootCommand(version).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
