// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/statlab/statcalc/stats"
)

const dataUsage = "values separated by commas, semicolons or spaces (default: read standard input)"

// run adapts an operation to a cobra RunE: it computes the result and
// emits it.
func (o *options) run(calc func(cmd *cobra.Command) (stats.Result, error)) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		res, err := calc(cmd)
		if err != nil {
			return err
		}
		o.logger.Debug("calculated", "kind", res.Kind())
		return o.emit(cmd, res)
	}
}

// result converts a typed operation result to a stats.Result without
// turning a nil pointer into a non-nil interface.
func result[R stats.Result](r R, err error) (stats.Result, error) {
	if err != nil {
		return nil, err
	}
	return r, nil
}

func newDescribeCommand(o *options) *cobra.Command {
	var (
		data  string
		steps bool
	)
	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Descriptive statistics and histogram of a list of numbers",
		Args:  cobra.NoArgs,
		RunE: o.run(func(cmd *cobra.Command) (stats.Result, error) {
			xs, err := o.values(cmd, data)
			if err != nil {
				return nil, err
			}
			return result(stats.Describe(xs, steps))
		}),
	}
	cmd.Flags().StringVarP(&data, "data", "d", "", dataUsage)
	cmd.Flags().BoolVar(&steps, "steps", false, "show the steps of the mean, median, variance and standard deviation")
	return cmd
}

func newFreqCommand(o *options) *cobra.Command {
	var data string
	cmd := &cobra.Command{
		Use:   "freq",
		Short: "Frequency distribution table (Sturges' rule)",
		Args:  cobra.NoArgs,
		RunE: o.run(func(cmd *cobra.Command) (stats.Result, error) {
			xs, err := o.values(cmd, data)
			if err != nil {
				return nil, err
			}
			return result(stats.Frequency(xs))
		}),
	}
	cmd.Flags().StringVarP(&data, "data", "d", "", dataUsage)
	return cmd
}

func newCombinCommand(o *options) *cobra.Command {
	var in stats.CombinatoricsInput
	var op string
	cmd := &cobra.Command{
		Use:   "combin",
		Short: "Permutations (nPr) or combinations (nCr)",
		Args:  cobra.NoArgs,
		RunE: o.run(func(*cobra.Command) (stats.Result, error) {
			in.Op = stats.CombinOp(op)
			return result(stats.Combinatorics(in))
		}),
	}
	cmd.Flags().StringVar(&op, "op", string(stats.Combinations), "permutations or combinations")
	cmd.Flags().IntVarP(&in.N, "n", "n", 0, "number of items")
	cmd.Flags().IntVarP(&in.R, "r", "r", 0, "number of items chosen")
	return cmd
}

func newProbCommand(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prob",
		Short: "Classical or conditional probability",
	}

	var classical stats.ProbabilityInput
	classicalCmd := &cobra.Command{
		Use:   "classical",
		Short: "P(A) = favorable / possible outcomes",
		Args:  cobra.NoArgs,
		RunE: o.run(func(*cobra.Command) (stats.Result, error) {
			classical.Op = stats.Classical
			return result(stats.BasicProbability(classical))
		}),
	}
	classicalCmd.Flags().Float64Var(&classical.Favorable, "favorable", 0, "favorable outcomes")
	classicalCmd.Flags().Float64Var(&classical.Possible, "possible", 0, "possible outcomes")

	var conditional stats.ProbabilityInput
	conditionalCmd := &cobra.Command{
		Use:   "conditional",
		Short: "P(A|B) = P(A ∩ B) / P(B)",
		Args:  cobra.NoArgs,
		RunE: o.run(func(*cobra.Command) (stats.Result, error) {
			conditional.Op = stats.Conditional
			return result(stats.BasicProbability(conditional))
		}),
	}
	conditionalCmd.Flags().Float64Var(&conditional.Intersection, "p-a-and-b", 0, "P(A ∩ B)")
	conditionalCmd.Flags().Float64Var(&conditional.Given, "p-b", 0, "P(B)")

	cmd.AddCommand(classicalCmd, conditionalCmd)
	return cmd
}

func newBinomialCommand(o *options) *cobra.Command {
	var (
		d stats.BinomialDist
		x int
	)
	cmd := &cobra.Command{
		Use:   "binomial",
		Short: "Binomial distribution B(n, p)",
		Args:  cobra.NoArgs,
		RunE: o.run(func(cmd *cobra.Command) (stats.Result, error) {
			return result(stats.Binomial(stats.BinomialInput{BinomialDist: d, X: optInt(cmd, "x", x)}))
		}),
	}
	cmd.Flags().IntVarP(&d.N, "n", "n", 0, "number of trials")
	cmd.Flags().Float64VarP(&d.P, "p", "p", 0, "success probability")
	cmd.Flags().IntVarP(&x, "x", "x", 0, "number of successes to query")
	return cmd
}

func newPoissonCommand(o *options) *cobra.Command {
	var (
		d stats.PoissonDist
		k int
	)
	cmd := &cobra.Command{
		Use:   "poisson",
		Short: "Poisson distribution with rate λ",
		Args:  cobra.NoArgs,
		RunE: o.run(func(cmd *cobra.Command) (stats.Result, error) {
			return result(stats.Poisson(stats.PoissonInput{PoissonDist: d, K: optInt(cmd, "k", k)}))
		}),
	}
	cmd.Flags().Float64VarP(&d.Lambda, "lambda", "l", 0, "average number of events per interval")
	cmd.Flags().IntVarP(&k, "k", "k", 0, "number of events to query")
	return cmd
}

func newExponentialCommand(o *options) *cobra.Command {
	var (
		d stats.ExponentialDist
		x float64
	)
	cmd := &cobra.Command{
		Use:   "exponential",
		Short: "Exponential distribution with rate λ",
		Args:  cobra.NoArgs,
		RunE: o.run(func(cmd *cobra.Command) (stats.Result, error) {
			return result(stats.Exponential(stats.ExponentialInput{ExponentialDist: d, X: optFloat(cmd, "x", x)}))
		}),
	}
	cmd.Flags().Float64VarP(&d.Lambda, "lambda", "l", 0, "rate")
	cmd.Flags().Float64VarP(&x, "x", "x", 0, "value to query")
	return cmd
}

func newNormalCommand(o *options) *cobra.Command {
	var (
		d      stats.NormalDist
		x1, x2 float64
	)
	cmd := &cobra.Command{
		Use:   "normal",
		Short: "Normal distribution N(μ, σ)",
		Args:  cobra.NoArgs,
		RunE: o.run(func(cmd *cobra.Command) (stats.Result, error) {
			return result(stats.Normal(stats.NormalInput{
				NormalDist: d,
				X1:         optFloat(cmd, "x1", x1),
				X2:         optFloat(cmd, "x2", x2),
			}))
		}),
	}
	cmd.Flags().Float64Var(&d.Mu, "mu", 0, "mean")
	cmd.Flags().Float64Var(&d.Sigma, "sigma", 1, "standard deviation")
	cmd.Flags().Float64Var(&x1, "x1", 0, "value for P(X <= x1) and P(X >= x1)")
	cmd.Flags().Float64Var(&x2, "x2", 0, "upper end of the range [x1, x2]")
	return cmd
}

func newSamplingCommand(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sampling",
		Short: "Sampling distributions of the mean and of a proportion",
	}

	var (
		means stats.SamplingMeansInput
		xbar  float64
	)
	meansCmd := &cobra.Command{
		Use:   "means",
		Short: "Sampling distribution of the sample mean",
		Args:  cobra.NoArgs,
		RunE: o.run(func(cmd *cobra.Command) (stats.Result, error) {
			in := means
			in.XBar = optFloat(cmd, "xbar", xbar)
			return result(stats.SamplingMeans(in))
		}),
	}
	meansCmd.Flags().Float64Var(&means.Mu, "mu", 0, "population mean")
	meansCmd.Flags().Float64Var(&means.Sigma, "sigma", 0, "population standard deviation")
	meansCmd.Flags().IntVarP(&means.N, "n", "n", 0, "sample size")
	meansCmd.Flags().Float64Var(&xbar, "xbar", 0, "sample mean to locate")

	var (
		props stats.SamplingProportionsInput
		phat  float64
	)
	propsCmd := &cobra.Command{
		Use:   "proportions",
		Short: "Sampling distribution of the sample proportion",
		Args:  cobra.NoArgs,
		RunE: o.run(func(cmd *cobra.Command) (stats.Result, error) {
			in := props
			in.PHat = optFloat(cmd, "phat", phat)
			return result(stats.SamplingProportions(in))
		}),
	}
	propsCmd.Flags().Float64VarP(&props.P, "p", "p", 0, "population proportion")
	propsCmd.Flags().IntVarP(&props.N, "n", "n", 0, "sample size")
	propsCmd.Flags().Float64Var(&phat, "phat", 0, "sample proportion to locate")

	cmd.AddCommand(meansCmd, propsCmd)
	return cmd
}

func newCICommand(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ci",
		Short: "Confidence interval for a population mean",
	}

	var z stats.ZIntervalInput
	zCmd := &cobra.Command{
		Use:   "z",
		Short: "Interval with known population standard deviation",
		Args:  cobra.NoArgs,
		RunE: o.run(func(*cobra.Command) (stats.Result, error) {
			return result(stats.ZInterval(z))
		}),
	}
	zCmd.Flags().Float64Var(&z.Mean, "mean", 0, "sample mean")
	zCmd.Flags().Float64Var(&z.Sigma, "sigma", 0, "population standard deviation")
	zCmd.Flags().IntVarP(&z.N, "n", "n", 0, "sample size")
	zCmd.Flags().IntVar(&z.Level, "level", 95, fmt.Sprintf("confidence level in percent, one of %v", stats.ConfidenceLevels))

	var (
		data  string
		level float64
	)
	tCmd := &cobra.Command{
		Use:   "t",
		Short: "Interval from a sample, using Student's t",
		Args:  cobra.NoArgs,
		RunE: o.run(func(cmd *cobra.Command) (stats.Result, error) {
			xs, err := o.values(cmd, data)
			if err != nil {
				return nil, err
			}
			return result(stats.TInterval(xs, level))
		}),
	}
	tCmd.Flags().StringVarP(&data, "data", "d", "", dataUsage)
	tCmd.Flags().Float64Var(&level, "level", 95, "confidence level in percent")

	cmd.AddCommand(zCmd, tCmd)
	return cmd
}

func newDiscreteCommand(o *options) *cobra.Command {
	var table string
	cmd := &cobra.Command{
		Use:   "discrete",
		Short: "Expected value, variance and standard deviation of a discrete random variable",
		Long: `discrete analyzes the random variable given by a table of values and
probabilities. Rows are written "x:p" or "x p" and separated by commas,
semicolons or newlines, for example --table "0:0.25, 1:0.5, 2:0.25".`,
		Args: cobra.NoArgs,
		RunE: o.run(func(cmd *cobra.Command) (stats.Result, error) {
			src := table
			if !cmd.Flags().Changed("table") {
				b, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return nil, fmt.Errorf("read input: %w", err)
				}
				src = string(b)
			}
			outcomes, err := parseOutcomes(src)
			if err != nil {
				return nil, err
			}
			return result(stats.DiscreteRV(outcomes))
		}),
	}
	cmd.Flags().StringVarP(&table, "table", "t", "", "rows of x:p (default: read standard input)")
	return cmd
}

func newBayesCommand(o *options) *cobra.Command {
	var in stats.BayesInput
	cmd := &cobra.Command{
		Use:   "bayes",
		Short: "Bayes' theorem: P(A|B) from P(A), P(B|A) and P(B|¬A)",
		Args:  cobra.NoArgs,
		RunE: o.run(func(*cobra.Command) (stats.Result, error) {
			return result(stats.Bayes(in))
		}),
	}
	cmd.Flags().Float64Var(&in.PA, "p-a", 0, "P(A)")
	cmd.Flags().Float64Var(&in.PBGivenA, "p-b-given-a", 0, "P(B|A)")
	cmd.Flags().Float64Var(&in.PBGivenNA, "p-b-given-not-a", 0, "P(B|¬A)")
	return cmd
}

func newSetsCommand(o *options) *cobra.Command {
	var a, b, op string
	ops := make([]string, len(stats.SetOps))
	for i, op := range stats.SetOps {
		ops[i] = string(op)
	}
	cmd := &cobra.Command{
		Use:   "sets",
		Short: "Set operations and Venn regions of two sets",
		Args:  cobra.NoArgs,
		RunE: o.run(func(*cobra.Command) (stats.Result, error) {
			return result(stats.Sets(stats.SetInput{A: tokens(a), B: tokens(b), Op: stats.SetOp(op)}))
		}),
	}
	cmd.Flags().StringVarP(&a, "a", "a", "", "elements of set A")
	cmd.Flags().StringVarP(&b, "b", "b", "", "elements of set B")
	cmd.Flags().StringVar(&op, "op", string(stats.Union), "operation: "+strings.Join(ops, ", "))
	return cmd
}

func newSimulateCommand(o *options) *cobra.Command {
	var (
		in   stats.SimulationInput
		dist string
		seed uint64
	)
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Generate random data from a uniform, normal, binomial or Poisson distribution",
		Args:  cobra.NoArgs,
		RunE: o.run(func(cmd *cobra.Command) (stats.Result, error) {
			in.Dist = stats.SimDist(dist)
			if limit := o.cfg.Simulation.MaxPoints; in.N > limit {
				return nil, &stats.ValidationError{Field: "points", Msg: fmt.Sprintf("must be between 1 and %d, got %d", limit, in.N)}
			}
			if limit := o.cfg.Simulation.MaxTrials; in.Dist == stats.SimBinomial && in.Trials > limit {
				return nil, &stats.ValidationError{Field: "trials", Msg: fmt.Sprintf("must be between 1 and %d, got %d", limit, in.Trials)}
			}
			if !cmd.Flags().Changed("seed") {
				seed = o.cfg.Simulation.Seed
			}
			return result(o.simulator(seed).Simulate(in))
		}),
	}
	f := cmd.Flags()
	f.StringVar(&dist, "dist", string(stats.SimNormal), "distribution: uniform, normal, binomial or poisson")
	f.IntVarP(&in.N, "points", "n", 100, "number of values to generate")
	f.Float64Var(&in.Min, "min", 0, "uniform: lower bound")
	f.Float64Var(&in.Max, "max", 1, "uniform: upper bound")
	f.Float64Var(&in.Mu, "mu", 0, "normal: mean")
	f.Float64Var(&in.Sigma, "sigma", 1, "normal: standard deviation")
	f.IntVar(&in.Trials, "trials", 10, "binomial: number of trials")
	f.Float64VarP(&in.P, "p", "p", 0.5, "binomial: success probability")
	f.Float64Var(&in.Lambda, "lambda", 1, "poisson: rate")
	f.Uint64Var(&seed, "seed", 0, "random seed (0: random)")
	return cmd
}

// simulator returns a reproducible simulator for a nonzero seed and
// one backed by the global generator otherwise.
func (o *options) simulator(seed uint64) *stats.Simulator {
	if seed == 0 {
		return &stats.Simulator{}
	}
	o.logger.Debug("seeded simulator", "seed", seed)
	return stats.NewSimulator(seed)
}
