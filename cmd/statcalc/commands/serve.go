// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/statlab/statcalc/explain"
	"github.com/statlab/statcalc/internal/server"
)

func newServeCommand(o *options) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculators as a JSON HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			srvCfg := o.cfg.Server
			if cmd.Flags().Changed("addr") {
				srvCfg.Addr = addr
			}

			srv := server.New(server.Options{
				Explainer:           o.explainer(),
				Logger:              o.logger,
				Simulator:           o.simulator(o.cfg.Simulation.Seed),
				MaxSimulationPoints: o.cfg.Simulation.MaxPoints,
				MaxSimulationTrials: o.cfg.Simulation.MaxTrials,
			})

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return srv.ListenAndServe(ctx, srvCfg)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")
	return cmd
}

func newConceptCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "concept [id]",
		Short: "Explain a statistical concept; without an id, list the concepts",
		Args:  cobra.MaximumNArgs(1),
		ValidArgsFunction: func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
			ids := make([]string, len(explain.Concepts))
			for i, c := range explain.Concepts {
				ids[i] = c.ID
			}
			return ids, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			if len(args) == 0 {
				t := table.NewWriter()
				t.SetOutputMirror(w)
				t.SetStyle(table.StyleLight)
				t.AppendHeader(table.Row{"ID", "Concept"})
				for _, c := range explain.Concepts {
					t.AppendRow(table.Row{c.ID, c.Label})
				}
				t.Render()
				return nil
			}
			text, err := o.explainer().ExplainConcept(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(w, text)
			return nil
		},
	}
}

func newAskCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "ask <task description>",
		Short: "Ask which calculator mode fits a task",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := o.explainer().Assist(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}
}
