// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package explain asks a language model to interpret calculator
// results, explain statistical concepts, and suggest which calculator
// mode fits a task.
package explain

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/statlab/statcalc/render"
	"github.com/statlab/statcalc/stats"
)

var (
	// ErrServiceUnavailable is returned when the language model
	// cannot be reached or returns an unusable reply.
	ErrServiceUnavailable = errors.New("explanation service unavailable")

	// ErrUnknownConcept is returned by ExplainConcept for an id that
	// is not in Concepts.
	ErrUnknownConcept = errors.New("unknown concept")

	// ErrEmptyQuery is returned by Assist for a blank query.
	ErrEmptyQuery = errors.New("empty query")
)

// An Explainer builds prompts and sends them to a Client.
type Explainer struct {
	Client Client

	// Logger receives client failures. If nil, slog.Default is used.
	Logger *slog.Logger
}

// New returns an Explainer using c.
func New(c Client, logger *slog.Logger) *Explainer {
	return &Explainer{Client: c, Logger: logger}
}

func (e *Explainer) logger() *slog.Logger {
	if e.Logger != nil {
		return e.Logger
	}
	return slog.Default()
}

// Interpret asks for a plain-language interpretation of r.
func (e *Explainer) Interpret(ctx context.Context, r stats.Result) (string, error) {
	results, err := promptJSON(r)
	if err != nil {
		return "", fmt.Errorf("encode result: %w", err)
	}
	return e.complete(ctx, "interpret", tutorSystemPrompt, interpretationPrompt(r.Kind(), results))
}

// ExplainConcept asks for an explanation of the catalog concept id.
func (e *Explainer) ExplainConcept(ctx context.Context, id string) (string, error) {
	c, ok := LookupConcept(id)
	if !ok {
		return "", fmt.Errorf("%w %q", ErrUnknownConcept, id)
	}
	return e.complete(ctx, "concept", tutorSystemPrompt, c.Prompt)
}

// Assist suggests which calculator mode fits the task in query.
func (e *Explainer) Assist(ctx context.Context, query string) (string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return "", ErrEmptyQuery
	}
	return e.complete(ctx, "assist", assistantSystemPrompt, query)
}

func (e *Explainer) complete(ctx context.Context, op, system, user string) (string, error) {
	if e.Client == nil {
		e.logger().Warn("explainer has no client", "op", op)
		return "", ErrServiceUnavailable
	}
	reply, err := e.Client.Complete(ctx, system, user)
	if err == nil && strings.TrimSpace(reply) == "" {
		err = errors.New("empty reply")
	}
	if err != nil {
		e.logger().Error("language model request failed", "op", op, "error", err)
		return "", fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	return reply, nil
}

// promptJSON encodes r for a prompt. Generated simulation data is left
// out; its summary carries what the model needs.
func promptJSON(r stats.Result) (string, error) {
	if sim, ok := r.(*stats.SimulationResult); ok {
		trimmed := *sim
		trimmed.Data = nil
		trimmed.Density = nil
		r = &trimmed
	}
	b, err := json.MarshalIndent(render.Plain(r), "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}
