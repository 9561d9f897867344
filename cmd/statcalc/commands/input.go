// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/statlab/statcalc/stats"
)

// isSep reports whether r separates input tokens.
func isSep(r rune) bool {
	switch r {
	case ',', ';', ' ', '\t', '\n', '\r':
		return true
	}
	return false
}

// tokens splits s on commas, semicolons and white space.
func tokens(s string) []string {
	return strings.FieldsFunc(s, isSep)
}

// parseValues returns the numeric tokens of s and the number of
// tokens that were dropped because they are not finite numbers.
func parseValues(s string) (xs []float64, dropped int) {
	for _, tok := range tokens(s) {
		x, err := strconv.ParseFloat(tok, 64)
		if err != nil || math.IsNaN(x) || math.IsInf(x, 0) {
			dropped++
			continue
		}
		xs = append(xs, x)
	}
	return xs, dropped
}

// readValues reads values from r, one or more per line.
func readValues(r io.Reader) (xs []float64, dropped int, err error) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line, d := parseValues(scanner.Text())
		xs = append(xs, line...)
		dropped += d
	}
	if err := scanner.Err(); err != nil {
		return nil, 0, fmt.Errorf("read input: %w", err)
	}
	return xs, dropped, nil
}

// values returns the values of the --data flag, or of standard input
// if the flag was not given.
func (o *options) values(cmd *cobra.Command, data string) ([]float64, error) {
	var (
		xs      []float64
		dropped int
	)
	if cmd.Flags().Changed("data") {
		xs, dropped = parseValues(data)
	} else {
		var err error
		xs, dropped, err = readValues(cmd.InOrStdin())
		if err != nil {
			return nil, err
		}
	}
	if dropped > 0 {
		o.logger.Debug("ignored non-numeric tokens", "count", dropped)
	}
	return xs, nil
}

// parseOutcomes parses a discrete distribution table. Each row is a
// value and its probability, written "x:p" or "x p"; rows are
// separated by commas, semicolons or newlines.
func parseOutcomes(s string) ([]stats.Outcome, error) {
	rows := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ';' || r == '\n' || r == '\r'
	})
	var table []stats.Outcome
	for _, row := range rows {
		fields := strings.FieldsFunc(row, func(r rune) bool {
			return r == ':' || r == ' ' || r == '\t'
		})
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			return nil, &stats.ValidationError{Field: "table", Msg: fmt.Sprintf("row %q: want a value and a probability", row)}
		}
		x, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, &stats.ValidationError{Field: "table", Msg: fmt.Sprintf("row %q: value %q is not a number", row, fields[0])}
		}
		p, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, &stats.ValidationError{Field: "table", Msg: fmt.Sprintf("row %q: probability %q is not a number", row, fields[1])}
		}
		table = append(table, stats.Outcome{X: x, P: p})
	}
	return table, nil
}

// optFloat returns a pointer to v if the named flag was set.
func optFloat(cmd *cobra.Command, name string, v float64) *float64 {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	return &v
}

// optInt returns a pointer to v if the named flag was set.
func optInt(cmd *cobra.Command, name string, v int) *int {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	return &v
}
