// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/statlab/statcalc/stats"
)

// ErrNoChart is returned by Chart for results that have no chart.
var ErrNoChart = errors.New("result has no chart")

const (
	chartWidth  = "100%"
	chartHeight = "500px"
)

// Chart writes an HTML page with the chart of r to w.
//
// Distributions plot their PMF as bars or their density as a line;
// descriptive statistics plot the histogram; frequency tables draw the
// histogram and the frequency polygon together; simulations add a
// kernel density line to the histogram of the generated data.
func Chart(w io.Writer, r stats.Result) error {
	switch r := r.(type) {
	case *stats.DescriptiveResult:
		return newBar("Histogram", "Count", r.Histogram).Render(w)
	case *stats.FrequencyResult:
		bar := newBar("Frequency histogram and polygon", "Absolute frequency", r.Chart)
		poly := make([]opts.LineData, len(r.Chart))
		for i, pt := range r.Chart {
			poly[i] = opts.LineData{Value: pt.Polygon}
		}
		line := charts.NewLine()
		line.SetXAxis(labels(r.Chart))
		line.AddSeries("Polygon", poly)
		bar.Overlap(line)
		return bar.Render(w)
	case *stats.BinomialResult:
		return newBar(fmt.Sprintf("Binomial PMF (n=%d, p=%v)", r.N, r.P), "P(X=k)", r.PMF).Render(w)
	case *stats.PoissonResult:
		return newBar(fmt.Sprintf("Poisson PMF (λ=%v)", r.Lambda), "P(X=k)", r.PMF).Render(w)
	case *stats.DiscreteRVResult:
		return newBar("Probability distribution", "P(X=x)", r.PMF).Render(w)
	case *stats.ExponentialResult:
		return newLine(fmt.Sprintf("Exponential PDF (λ=%v)", r.Lambda), "f(x)", r.PDF).Render(w)
	case *stats.NormalResult:
		return newLine(fmt.Sprintf("Normal PDF (μ=%v, σ=%v)", r.Mu, r.Sigma), "f(x)", r.PDF).Render(w)
	case *stats.SamplingMeansResult:
		return newLine("Sampling distribution of x̄", "f(x̄)", r.PDF).Render(w)
	case *stats.SamplingProportionsResult:
		return newLine("Sampling distribution of p̂", "f(p̂)", r.PDF).Render(w)
	case *stats.SetResult:
		pts := []stats.ChartPoint{
			{Label: "Only A", Y: float64(r.CountOnlyA)},
			{Label: "A ∩ B", Y: float64(r.CountBoth)},
			{Label: "Only B", Y: float64(r.CountOnlyB)},
		}
		return newBar("Venn regions", "Elements", pts).Render(w)
	case *stats.SimulationResult:
		page := components.NewPage()
		page.PageTitle = "Simulation"
		page.AddCharts(
			newBar(fmt.Sprintf("Histogram of %d %s values", r.Input.N, r.Input.Dist), "Count", r.Summary.Histogram),
			newLine("Kernel density estimate", "density", r.Density),
		)
		return page.Render(w)
	}
	return fmt.Errorf("%w: %s", ErrNoChart, r.Kind())
}

func globalOpts(title, yName string) []charts.GlobalOpts {
	return []charts.GlobalOpts{
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: chartHeight}),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithYAxisOpts(opts.YAxis{Name: yName}),
	}
}

func newBar(title, yName string, pts []stats.ChartPoint) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(globalOpts(title, yName)...)
	data := make([]opts.BarData, len(pts))
	for i, pt := range pts {
		if pt.Truncated {
			data[i] = opts.BarData{Value: "-"}
			continue
		}
		data[i] = opts.BarData{Value: pt.Y}
	}
	bar.SetXAxis(labels(pts))
	bar.AddSeries(yName, data)
	return bar
}

func newLine(title, yName string, pts []stats.ChartPoint) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(globalOpts(title, yName)...)
	data := make([]opts.LineData, len(pts))
	for i, pt := range pts {
		data[i] = opts.LineData{Value: pt.Y}
	}
	line.SetXAxis(labels(pts))
	line.AddSeries(yName, data,
		charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true), ShowSymbol: opts.Bool(false)}),
	)
	return line
}

// labels returns the category axis labels of pts: the point's own
// label if it has one, else its position to four significant digits.
func labels(pts []stats.ChartPoint) []string {
	out := make([]string, len(pts))
	for i, pt := range pts {
		if pt.Label != "" {
			out[i] = pt.Label
			continue
		}
		out[i] = strconv.FormatFloat(pt.X, 'g', 4, 64)
	}
	return out
}
