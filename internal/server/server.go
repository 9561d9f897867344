// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package server exposes the calculators and the explainer as a JSON
// HTTP API.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/statlab/statcalc/explain"
	"github.com/statlab/statcalc/internal/config"
	"github.com/statlab/statcalc/stats"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 1 << 20

const shutdownTimeout = 10 * time.Second

// Options configures a Server.
type Options struct {
	// Explainer answers the interpret, concept and assistant routes.
	// If nil, those routes reply 503.
	Explainer *explain.Explainer

	// Logger receives request logs. If nil, slog.Default is used.
	Logger *slog.Logger

	// Simulator generates simulation data. If nil, the global
	// generator is used.
	Simulator *stats.Simulator

	// MaxSimulationPoints, if positive, lowers the largest accepted
	// simulation size below stats.MaxSimulationPoints.
	MaxSimulationPoints int

	// MaxSimulationTrials, if positive, lowers the largest accepted
	// number of trials per binomial value below
	// stats.MaxSimulationTrials.
	MaxSimulationTrials int
}

// A Server is the statcalc HTTP API.
type Server struct {
	explainer *explain.Explainer
	logger    *slog.Logger
	router    *chi.Mux

	simMu     sync.Mutex
	sim       *stats.Simulator
	maxPoints int
	maxTrials int
}

// New returns a Server with its routes installed.
func New(opts Options) *Server {
	s := &Server{
		explainer: opts.Explainer,
		logger:    opts.Logger,
		router:    chi.NewRouter(),
		sim:       opts.Simulator,
		maxPoints: opts.MaxSimulationPoints,
		maxTrials: opts.MaxSimulationTrials,
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.sim == nil {
		s.sim = &stats.Simulator{}
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddleware() {
	s.router.Use(requestID)
	s.router.Use(s.logRequests)
	s.router.Use(middleware.Recoverer)
}

func (s *Server) setupRoutes() {
	s.router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		s.writeError(w, r, fmt.Errorf("%w: %s", errNotFound, r.URL.Path))
	})
	s.router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusMethodNotAllowed, field("error", "method not allowed"))
	})

	s.router.Get("/healthz", s.handleHealth)

	s.router.Route("/api/v1", func(r chi.Router) {
		r.Get("/kinds", s.handleKinds)
		r.Post("/calculate/{kind}", s.handleCalculate)
		r.Post("/interpret/{kind}", s.handleInterpret)
		r.Get("/concepts", s.handleConcepts)
		r.Post("/concepts/{id}", s.handleConcept)
		r.Post("/assistant", s.handleAssistant)
	})
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves the API on cfg.Addr until ctx is done, then
// shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, cfg config.ServerConfig) error {
	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      s,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting server", "addr", cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}

// logRequests logs one line per request.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			"id", RequestID(r.Context()),
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
		)
	})
}
