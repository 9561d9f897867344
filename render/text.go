// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/statlab/statcalc/stats"
)

// maxListedValues is the number of generated values Text prints for a
// simulation.
const maxListedValues = 20

// Text writes a human-readable rendering of r to w: a summary table
// followed by whatever detail tables the result kind carries.
func Text(w io.Writer, r stats.Result) error {
	var sections []string
	switch r := r.(type) {
	case *stats.DescriptiveResult:
		sections = describeText(r)
	case *stats.FrequencyResult:
		sections = frequencyText(r)
	case *stats.CombinatoricsResult:
		sections = []string{summary("Combinatorics",
			row{"Operation", string(r.Op)},
			row{"n", r.N},
			row{"r", r.R},
			row{"Result", r.Value},
		)}
	case *stats.ProbabilityResult:
		sections = probabilityText(r)
	case *stats.BinomialResult:
		sections = []string{summary("Binomial distribution",
			row{"Trials (n)", r.N},
			row{"Success probability (p)", r.P},
			row{"Mean", r.Mean},
			row{"Variance", r.Variance},
			row{"Standard deviation", r.StdDev},
			row{"x", r.X},
			row{"P(X = x)", r.Exact},
			row{"P(X ≤ x)", r.AtMost},
			row{"P(X ≥ x)", r.AtLeast},
		)}
	case *stats.PoissonResult:
		sections = []string{summary("Poisson distribution",
			row{"Rate (λ)", r.Lambda},
			row{"Mean", r.Mean},
			row{"Variance", r.Variance},
			row{"Standard deviation", r.StdDev},
			row{"k", r.K},
			row{"P(X = k)", r.Exact},
			row{"P(X ≤ k)", r.AtMost},
			row{"P(X > k)", r.GreaterThan},
		)}
	case *stats.ExponentialResult:
		sections = []string{summary("Exponential distribution",
			row{"Rate (λ)", r.Lambda},
			row{"Mean", r.Mean},
			row{"Variance", r.Variance},
			row{"Standard deviation", r.StdDev},
			row{"x", r.X},
			row{"f(x)", r.Density},
			row{"P(X ≤ x)", r.AtMost},
			row{"P(X > x)", r.GreaterThan},
		)}
	case *stats.NormalResult:
		sections = []string{summary("Normal distribution",
			row{"Mean (μ)", r.Mu},
			row{"Standard deviation (σ)", r.Sigma},
			row{"x₁", r.X1},
			row{"z-score of x₁", r.Z1},
			row{"P(X ≤ x₁)", r.Below},
			row{"P(X ≥ x₁)", r.Above},
			row{"x₂", r.X2},
			row{"P(x₁ ≤ X ≤ x₂)", r.Between},
		)}
	case *stats.SamplingMeansResult:
		sections = samplingMeansText(r)
	case *stats.SamplingProportionsResult:
		sections = samplingProportionsText(r)
	case *stats.ConfidenceIntervalResult:
		sections = ciText(r)
	case *stats.DiscreteRVResult:
		sections = discreteText(r)
	case *stats.BayesResult:
		sections = []string{summary("Bayes' theorem",
			row{"P(A)", r.PA},
			row{"P(B|A)", r.PBGivenA},
			row{"P(B|¬A)", r.PBGivenNA},
			row{"P(¬A)", r.PNotA},
			row{"P(B)", r.PB},
			row{"P(A|B)", r.PAGivenB},
		)}
	case *stats.SetResult:
		sections = setText(r)
	case *stats.SimulationResult:
		sections = simulationText(r)
	default:
		return fmt.Errorf("render: no text form for %T", r)
	}
	_, err := io.WriteString(w, strings.Join(sections, "\n\n")+"\n")
	return err
}

type row struct {
	label string
	value any
}

func newTable(title string, header ...any) table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	if title != "" {
		t.SetTitle(title)
	}
	if len(header) > 0 {
		t.AppendHeader(table.Row(header))
	}
	return t
}

// summary renders a two-column table of labeled values, leaving out
// rows whose value is a nil pointer.
func summary(title string, rows ...row) string {
	t := newTable(title)
	for _, r := range rows {
		if s, ok := value(r.value); ok {
			t.AppendRow(table.Row{r.label, s})
		}
	}
	return t.Render()
}

func value(v any) (string, bool) {
	switch v := v.(type) {
	case nil:
		return "", false
	case *float64:
		if v == nil {
			return "", false
		}
		return Number(*v), true
	case *int:
		if v == nil {
			return "", false
		}
		return humanize.Comma(int64(*v)), true
	case float64:
		return Number(v), true
	case int:
		return humanize.Comma(int64(v)), true
	case bool:
		if v {
			return "yes", true
		}
		return "no", true
	case string:
		return v, true
	case []float64:
		return numbers(v), true
	case []string:
		return "{" + strings.Join(v, ", ") + "}", true
	}
	return fmt.Sprint(v), true
}

// Number formats x for display. NaN is shown as "undefined".
func Number(x float64) string {
	switch {
	case math.IsNaN(x):
		return "undefined"
	case math.IsInf(x, 1):
		return "∞"
	case math.IsInf(x, -1):
		return "-∞"
	case x == math.Trunc(x) && math.Abs(x) < 1e15:
		return humanize.Comma(int64(x))
	case math.Abs(x) < 1e-4 || math.Abs(x) >= 1e15:
		return strconv.FormatFloat(x, 'e', 4, 64)
	}
	s := humanize.FormatFloat("#,###.####", x)
	return strings.TrimRight(strings.TrimRight(s, "0"), ".")
}

func numbers(xs []float64) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = Number(x)
	}
	return strings.Join(parts, ", ")
}

func describeText(r *stats.DescriptiveResult) []string {
	mode := "none"
	if len(r.Mode) > 0 {
		mode = numbers(r.Mode)
	}
	out := []string{summary("Descriptive statistics",
		row{"Count", r.Count},
		row{"Sum", r.Sum},
		row{"Mean", r.Mean},
		row{"Median", r.Median},
		row{"Mode", mode},
		row{"Sample variance (s²)", r.Variance},
		row{"Sample standard deviation (s)", r.StdDev},
		row{"Minimum", r.Min},
		row{"Maximum", r.Max},
		row{"Range", r.Range},
		row{"First quartile (Q1)", r.Q1},
		row{"Third quartile (Q3)", r.Q3},
		row{"Interquartile range", r.IQR},
	)}

	hist := newTable("Histogram", "Interval", "Count")
	for _, pt := range r.Histogram {
		hist.AppendRow(table.Row{pt.Label, Number(pt.Y)})
	}
	out = append(out, hist.Render())

	if s := r.MeanSteps; s != nil {
		out = append(out, fmt.Sprintf("Mean: %s = %s / %d = %s", s.Equation, Number(s.Sum), s.Count, Number(r.Mean)))
	}
	if s := r.MedianSteps; s != nil {
		var b strings.Builder
		fmt.Fprintf(&b, "Median: sorted data (%d values): %s\n", s.Count, numbers(s.Sorted))
		if s.Even {
			fmt.Fprintf(&b, "Even count, so the median is the average of the two middle values: (%s + %s) / 2 = %s",
				Number(s.MiddlePair[0]), Number(s.MiddlePair[1]), Number(*s.Median))
		} else {
			fmt.Fprintf(&b, "Odd count, so the median is the middle value: %s", Number(*s.Middle))
		}
		out = append(out, b.String())
	}
	if s := r.VarianceSteps; s != nil {
		t := newTable(fmt.Sprintf("Variance: %s, x̄ = %s", s.Equation, Number(s.Mean)), "x", "x - x̄", "(x - x̄)²")
		for _, it := range s.Items {
			t.AppendRow(table.Row{Number(it.X), Number(it.Deviation), Number(it.Squared)})
		}
		t.AppendFooter(table.Row{"", "Σ", Number(s.SumSquares)})
		out = append(out, t.Render(),
			fmt.Sprintf("s² = %s / (%d - 1) = %s", Number(s.SumSquares), s.Count, Number(r.Variance)))
	}
	if s := r.StdDevSteps; s != nil {
		out = append(out, fmt.Sprintf("Standard deviation: %s = √%s = %s", s.Equation, Number(s.Variance), Number(r.StdDev)))
	}
	return out
}

func frequencyText(r *stats.FrequencyResult) []string {
	t := newTable("Frequency table", "Interval", "Class mark", "Absolute", "Relative", "Cumulative")
	for _, c := range r.Table {
		t.AppendRow(table.Row{c.Label, Number(c.Mark), humanize.Comma(int64(c.Absolute)), Number(c.Relative), humanize.Comma(int64(c.Cumulative))})
	}
	t.AppendFooter(table.Row{"Total", "", humanize.Comma(int64(r.N)), Number(1), ""})
	return []string{
		summary("Frequency distribution",
			row{"N", r.N},
			row{"Minimum", r.Min},
			row{"Maximum", r.Max},
			row{"Range", r.Range},
			row{"Classes", r.Classes},
			row{"Class width", r.Width},
		),
		t.Render(),
	}
}

func probabilityText(r *stats.ProbabilityResult) []string {
	switch r.Op {
	case stats.Conditional:
		return []string{summary("Conditional probability",
			row{"P(A∩B)", r.Intersection},
			row{"P(B)", r.Given},
			row{"P(A|B)", r.Probability},
		)}
	}
	return []string{summary("Classical probability",
		row{"Favorable outcomes", r.Favorable},
		row{"Possible outcomes", r.Possible},
		row{"P(A)", r.Probability},
	)}
}

func samplingMeansText(r *stats.SamplingMeansResult) []string {
	out := []string{summary("Sampling distribution of the mean",
		row{"Population mean (μ)", r.Mu},
		row{"Population standard deviation (σ)", r.Sigma},
		row{"Sample size (n)", r.N},
		row{"Mean of x̄", r.Mean},
		row{"Standard error (σ/√n)", r.StandardError},
		row{"x̄", r.XBar},
		row{"z-score", r.Z},
		row{"P(X̄ < x̄)", r.Below},
		row{"P(X̄ > x̄)", r.Above},
	)}
	if r.CLT {
		out = append(out, "n ≥ 30: by the central limit theorem the sampling distribution is approximately normal.")
	} else {
		out = append(out, "n < 30: the sampling distribution is normal only if the population is.")
	}
	return out
}

func samplingProportionsText(r *stats.SamplingProportionsResult) []string {
	out := []string{summary("Sampling distribution of the proportion",
		row{"Population proportion (p)", r.P},
		row{"Sample size (n)", r.N},
		row{"Mean of p̂", r.Mean},
		row{"Standard error", r.StandardError},
		row{"np", r.NP},
		row{"n(1-p)", r.NQ},
		row{"p̂", r.PHat},
		row{"z-score", r.Z},
		row{"P(P̂ < p̂)", r.Below},
		row{"P(P̂ > p̂)", r.Above},
	)}
	if !r.NormalApprox {
		out = append(out, "np or n(1-p) is below 10: the normal approximation does not apply, so no probabilities are given.")
	}
	return out
}

func ciText(r *stats.ConfidenceIntervalResult) []string {
	title := "Confidence interval for the mean (σ known)"
	critical := "z critical value"
	sigma := "Population standard deviation (σ)"
	if r.Method == "t" {
		title = "Confidence interval for the mean (σ unknown)"
		critical = "t critical value"
		sigma = "Sample standard deviation (s)"
	}
	rows := []row{
		{"Sample mean (x̄)", r.Mean},
		{sigma, r.Sigma},
		{"Sample size (n)", r.N},
		{"Confidence level (%)", r.Level},
	}
	if r.DF > 0 {
		rows = append(rows, row{"Degrees of freedom", r.DF})
	}
	rows = append(rows,
		row{critical, r.Critical},
		row{"Standard error", r.StandardError},
		row{"Margin of error", r.Margin},
		row{"Lower bound", r.Lower},
		row{"Upper bound", r.Upper},
	)
	return []string{summary(title, rows...), r.Interpretation}
}

func discreteText(r *stats.DiscreteRVResult) []string {
	t := newTable("Distribution", "x", "P(X = x)", "x·P(X = x)")
	for _, o := range r.Table {
		t.AppendRow(table.Row{Number(o.X), Number(o.P), Number(o.X * o.P)})
	}
	return []string{
		summary("Discrete random variable",
			row{"E(X)", r.Mean},
			row{"Var(X)", r.Variance},
			row{"σ(X)", r.StdDev},
		),
		t.Render(),
	}
}

func setText(r *stats.SetResult) []string {
	t := newTable("Sets", "Set", "Elements", "Size")
	for _, s := range []struct {
		name  string
		elems []string
		n     int
	}{
		{"A", r.A, r.CountA},
		{"B", r.B, r.CountB},
		{"Result (" + string(r.Op) + ")", r.Result, r.CountResult},
		{"Only in A", r.OnlyA, r.CountOnlyA},
		{"Only in B", r.OnlyB, r.CountOnlyB},
		{"In both", r.Both, r.CountBoth},
	} {
		elems, _ := value(s.elems)
		t.AppendRow(table.Row{s.name, elems, humanize.Comma(int64(s.n))})
	}
	return []string{t.Render()}
}

func simulationText(r *stats.SimulationResult) []string {
	in := r.Input
	rows := []row{{"Distribution", string(in.Dist)}, {"Points", in.N}}
	switch in.Dist {
	case stats.SimUniform:
		rows = append(rows, row{"Minimum", in.Min}, row{"Maximum", in.Max})
	case stats.SimNormal:
		rows = append(rows, row{"Mean", in.Mu}, row{"Standard deviation", in.Sigma})
	case stats.SimBinomial:
		rows = append(rows, row{"Trials", in.Trials}, row{"p", in.P})
	case stats.SimPoisson:
		rows = append(rows, row{"Rate (λ)", in.Lambda})
	}
	shown := r.Data
	if len(shown) > maxListedValues {
		shown = shown[:maxListedValues]
	}
	listed := "Data: " + numbers(shown)
	if len(r.Data) > len(shown) {
		listed += fmt.Sprintf(", … (%s more)", humanize.Comma(int64(len(r.Data)-len(shown))))
	}
	out := []string{summary("Simulation", rows...), listed}
	return append(out, describeText(r.Summary)...)
}
