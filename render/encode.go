// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render presents calculator results: as text tables, as HTML
// charts, and as JSON or YAML documents.
package render // import "github.com/statlab/statcalc/render"

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/statlab/statcalc/stats"
)

// A Format is an output format for Encode.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat is returned for an unsupported output format.
var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat returns the Format named s.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	}
	return "", fmt.Errorf("%w %q (want text, json or yaml)", ErrUnknownFormat, s)
}

// Encode writes v to w in format f. Text output requires v to be a
// stats.Result.
func Encode(w io.Writer, f Format, v any) error {
	switch f {
	case FormatText:
		r, ok := v.(stats.Result)
		if !ok {
			return fmt.Errorf("text output of %T: %w", v, ErrUnknownFormat)
		}
		return Text(w, r)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(Plain(v))
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(Plain(v)); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("%w %q", ErrUnknownFormat, f)
}

// Document wraps r with its kind, the shape used by JSON and YAML
// output.
func Document(r stats.Result) Object {
	return Object{{"kind", string(r.Kind())}, {"result", Plain(r)}}
}
