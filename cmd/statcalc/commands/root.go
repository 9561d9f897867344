// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package commands implements the statcalc command line.
package commands

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/statlab/statcalc/explain"
	"github.com/statlab/statcalc/internal/config"
	"github.com/statlab/statcalc/render"
	"github.com/statlab/statcalc/stats"
)

const chartFilePerm = 0o644

// options holds the global flags and what PersistentPreRunE derives
// from them.
type options struct {
	configPath string
	format     string
	chartPath  string
	explain    bool
	verbose    bool

	cfg    *config.Config
	logger *slog.Logger

	// newClient builds the language-model client from configuration.
	newClient func(config.LLMConfig) explain.Client
}

func defaultClient(cfg config.LLMConfig) explain.Client {
	return cfg.Client()
}

// NewRootCommand returns the statcalc root command.
func NewRootCommand(version string) *cobra.Command {
	return newRootCommand(&options{newClient: defaultClient}, version)
}

func newRootCommand(o *options, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "statcalc",
		Short: "Statistics calculator",
		Long: `statcalc computes descriptive statistics, frequency tables, probabilities,
distributions, sampling distributions, confidence intervals and simulations.

Numeric data is read from --data or, if it is not given, from standard input.
Values may be separated by commas, semicolons, spaces or newlines; tokens that
are not numbers are ignored.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: o.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&o.configPath, "config", "", "config file (default ./config.yaml)")
	pf.StringVarP(&o.format, "format", "f", string(render.FormatText), "output format: text, json or yaml")
	pf.StringVar(&o.chartPath, "chart", "", "also write an HTML chart of the result to this file")
	pf.BoolVar(&o.explain, "explain", false, "ask the language model to interpret the result")
	pf.BoolVarP(&o.verbose, "verbose", "v", false, "verbose logging")

	root.AddCommand(
		newDescribeCommand(o),
		newFreqCommand(o),
		newCombinCommand(o),
		newProbCommand(o),
		newBinomialCommand(o),
		newPoissonCommand(o),
		newExponentialCommand(o),
		newNormalCommand(o),
		newSamplingCommand(o),
		newCICommand(o),
		newDiscreteCommand(o),
		newBayesCommand(o),
		newSetsCommand(o),
		newSimulateCommand(o),
		newServeCommand(o),
		newConceptCommand(o),
		newAskCommand(o),
		newVersionCommand(version),
	)

	return root
}

// setup loads configuration and builds the logger.
func (o *options) setup(cmd *cobra.Command, _ []string) error {
	if _, err := render.ParseFormat(o.format); err != nil {
		return err
	}

	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	if o.verbose {
		cfg.Logging.Level = "debug"
	}
	logger, err := config.NewLogger(cfg.Logging, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	o.cfg = cfg
	o.logger = logger
	return nil
}

func (o *options) explainer() *explain.Explainer {
	return explain.New(o.newClient(o.cfg.LLM), o.logger)
}

// emit writes res in the selected format, then its chart and its
// interpretation if they were requested.
func (o *options) emit(cmd *cobra.Command, res stats.Result) error {
	f, err := render.ParseFormat(o.format)
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()

	var v any = res
	if f != render.FormatText {
		v = render.Document(res)
	}
	if err := render.Encode(w, f, v); err != nil {
		return fmt.Errorf("write result: %w", err)
	}

	if o.chartPath != "" {
		if err := o.writeChart(res); err != nil {
			return err
		}
	}

	if o.explain {
		text, err := o.explainer().Interpret(cmd.Context(), res)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "\nInterpretation\n\n%s\n", text)
	}
	return nil
}

// writeChart renders the chart of res to the --chart file. Results
// without a chart leave no file behind.
func (o *options) writeChart(res stats.Result) error {
	var buf bytes.Buffer
	if err := render.Chart(&buf, res); err != nil {
		if errors.Is(err, render.ErrNoChart) {
			o.logger.Warn("no chart for this result", "kind", res.Kind())
			return nil
		}
		return fmt.Errorf("render chart: %w", err)
	}
	if err := os.WriteFile(o.chartPath, buf.Bytes(), chartFilePerm); err != nil {
		return fmt.Errorf("write chart: %w", err)
	}
	o.logger.Debug("wrote chart", "path", o.chartPath, "kind", res.Kind())
	return nil
}

func newVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "statcalc %s\n", version)
		},
	}
}
