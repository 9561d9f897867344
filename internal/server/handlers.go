// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/statlab/statcalc/explain"
	"github.com/statlab/statcalc/render"
	"github.com/statlab/statcalc/stats"
)

// RequestIDHeader carries the request id on every response.
const RequestIDHeader = "X-Request-Id"

var errNotFound = errors.New("not found")

type ctxKey struct{}

// requestID assigns every request a fresh uuid.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, id)))
	})
}

// RequestID returns the id assigned to the request carrying ctx.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

func field(name string, value any) render.Field {
	return render.Field{Name: name, Value: value}
}

// writeJSON writes an object whose first field is the request id.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, fields ...render.Field) {
	body := append(render.Object{field("id", RequestID(r.Context()))}, fields...)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// writeError maps err to a status code and writes it. Validation
// messages are returned verbatim; unexpected errors are logged and
// hidden.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, msg := http.StatusInternalServerError, "internal error"
	switch {
	case errors.Is(err, stats.ErrValidation),
		errors.Is(err, ErrBadRequest),
		errors.Is(err, explain.ErrEmptyQuery):
		status, msg = http.StatusBadRequest, err.Error()
	case errors.Is(err, ErrUnknownKind),
		errors.Is(err, explain.ErrUnknownConcept),
		errors.Is(err, errNotFound):
		status, msg = http.StatusNotFound, err.Error()
	case errors.Is(err, explain.ErrServiceUnavailable):
		status, msg = http.StatusServiceUnavailable, "service unavailable"
	default:
		s.logger.Error("request failed", "id", RequestID(r.Context()), "error", err)
	}
	writeJSON(w, r, status, field("error", msg))
}

func readBody(r *http.Request, w http.ResponseWriter) ([]byte, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadRequest, err)
	}
	return body, nil
}

func (s *Server) explainerOrErr() (*explain.Explainer, error) {
	if s.explainer == nil {
		return nil, explain.ErrServiceUnavailable
	}
	return s.explainer, nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, field("status", "ok"))
}

func (s *Server) handleKinds(w http.ResponseWriter, r *http.Request) {
	kinds := make([]string, len(stats.Kinds))
	for i, k := range stats.Kinds {
		kinds[i] = string(k)
	}
	writeJSON(w, r, http.StatusOK, field("kinds", kinds))
}

// calculateRequest runs the calculator named by the {kind} parameter on
// the request body.
func (s *Server) calculateRequest(w http.ResponseWriter, r *http.Request) (stats.Result, error) {
	body, err := readBody(r, w)
	if err != nil {
		return nil, err
	}
	return s.calculate(stats.Kind(chi.URLParam(r, "kind")), body)
}

func (s *Server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	res, err := s.calculateRequest(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK,
		field("kind", string(res.Kind())),
		field("result", render.Plain(res)),
	)
}

func (s *Server) handleInterpret(w http.ResponseWriter, r *http.Request) {
	res, err := s.calculateRequest(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	e, err := s.explainerOrErr()
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	text, err := e.Interpret(r.Context(), res)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK,
		field("kind", string(res.Kind())),
		field("result", render.Plain(res)),
		field("interpretation", text),
	)
}

func (s *Server) handleConcepts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, field("concepts", explain.Concepts))
}

func (s *Server) handleConcept(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	c, ok := explain.LookupConcept(id)
	if !ok {
		s.writeError(w, r, fmt.Errorf("%w %q", explain.ErrUnknownConcept, id))
		return
	}
	e, err := s.explainerOrErr()
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	text, err := e.ExplainConcept(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK,
		field("concept", c.ID),
		field("label", c.Label),
		field("explanation", text),
	)
}

type assistantRequest struct {
	Query string `json:"query"`
}

func (s *Server) handleAssistant(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(r, w)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	in, err := decode[assistantRequest](body)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	e, err := s.explainerOrErr()
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	text, err := e.Assist(r.Context(), in.Query)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK,
		field("query", in.Query),
		field("answer", text),
	)
}
