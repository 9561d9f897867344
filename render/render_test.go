// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/statlab/statcalc/stats"
)

func mustDescribe(t *testing.T, xs []float64, steps bool) *stats.DescriptiveResult {
	t.Helper()

	res, err := stats.Describe(xs, steps)
	require.NoError(t, err)

	return res
}

func TestPlain_NaNBecomesNull(t *testing.T) {
	t.Parallel()

	res := mustDescribe(t, []float64{4}, false)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, FormatJSON, res))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Contains(t, decoded, "sample_variance")
	assert.Nil(t, decoded["sample_variance"])
	assert.InDelta(t, 4.0, decoded["mean"], 1e-12)
}

func TestPlain_KeepsFieldOrderAndTags(t *testing.T) {
	t.Parallel()

	res, err := stats.Bayes(stats.BayesInput{PA: 0.1, PBGivenA: 0.8, PBGivenNA: 0.05})
	require.NoError(t, err)

	obj, ok := Plain(res).(Object)
	require.True(t, ok)

	names := make([]string, len(obj))
	for i, f := range obj {
		names[i] = f.Name
	}
	assert.Equal(t, []string{"p_a", "p_b_given_a", "p_b_given_not_a", "p_not_a", "p_b", "p_a_given_b"}, names)

	v, ok := obj.Get("p_a_given_b")
	require.True(t, ok)
	assert.InDelta(t, 0.64, v, 1e-12)
}

func TestPlain_OmitEmpty(t *testing.T) {
	t.Parallel()

	res, err := stats.Binomial(stats.BinomialInput{BinomialDist: stats.BinomialDist{N: 3, P: 0.5}})
	require.NoError(t, err)

	obj, ok := Plain(res).(Object)
	require.True(t, ok)

	_, has := obj.Get("probability_exactly_x")
	assert.False(t, has)

	pmf, has := obj.Get("pmf")
	require.True(t, has)
	assert.Len(t, pmf, 4)
}

func TestPlain_Scalars(t *testing.T) {
	t.Parallel()

	assert.Nil(t, Plain(math.Inf(1)))
	assert.Nil(t, Plain((*float64)(nil)))
	assert.Equal(t, int64(3), Plain(3))
	assert.Equal(t, "x", Plain("x"))
	assert.Equal(t, []any{1.5, nil}, Plain([]float64{1.5, math.NaN()}))
}

func TestEncode_YAML(t *testing.T) {
	t.Parallel()

	res, err := stats.Sets(stats.SetInput{A: []string{"1", "2"}, B: []string{"2"}, Op: stats.Union})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, FormatYAML, Document(res)))

	var decoded struct {
		Kind   string `yaml:"kind"`
		Result struct {
			Result []string `yaml:"result"`
			Both   []string `yaml:"in_both"`
		} `yaml:"result"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "sets", decoded.Kind)
	assert.Equal(t, []string{"1", "2"}, decoded.Result.Result)
	assert.Equal(t, []string{"2"}, decoded.Result.Both)
	assert.True(t, strings.HasPrefix(buf.String(), "kind: sets\n"))
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	f, err := ParseFormat("yaml")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	_, err = ParseFormat("xml")
	require.ErrorIs(t, err, ErrUnknownFormat)

	require.ErrorIs(t, Encode(&bytes.Buffer{}, FormatText, 42), ErrUnknownFormat)
}

func TestNumber(t *testing.T) {
	t.Parallel()

	tests := map[float64]string{
		math.NaN():     "undefined",
		math.Inf(1):    "∞",
		1234567:        "1,234,567",
		-2:             "-2",
		0.140373:       "0.1404",
		0.00001234:     "1.2340e-05",
		2598960.123456: "2,598,960.1235",
	}
	for x, want := range tests {
		assert.Equal(t, want, Number(x), "Number(%v)", x)
	}
}

func TestText_Descriptive(t *testing.T) {
	t.Parallel()

	res := mustDescribe(t, []float64{1, 2, 3, 4}, true)

	var buf bytes.Buffer
	require.NoError(t, Text(&buf, res))

	out := buf.String()
	assert.Contains(t, out, "Descriptive statistics")
	assert.Contains(t, out, "Histogram")
	assert.Contains(t, out, "Mode")
	assert.Contains(t, out, "none")
	assert.Contains(t, out, "(2 + 3) / 2 = 2.5")
	assert.Contains(t, out, "Σ(x - x̄)² / (N - 1)")
}

func TestText_EveryKind(t *testing.T) {
	t.Parallel()

	results := []stats.Result{mustDescribe(t, []float64{3, 1, 2}, false)}
	add := func(r stats.Result, err error) {
		require.NoError(t, err)
		results = append(results, r)
	}

	x := 2
	f := 1.0
	add(stats.Frequency([]float64{1, 2, 3, 4, 5}))
	add(stats.Combinatorics(stats.CombinatoricsInput{Op: stats.Combinations, N: 5, R: 2}))
	add(stats.BasicProbability(stats.ProbabilityInput{Op: stats.Conditional, Intersection: 0, Given: 0}))
	add(stats.Binomial(stats.BinomialInput{BinomialDist: stats.BinomialDist{N: 5, P: 0.5}, X: &x}))
	add(stats.Poisson(stats.PoissonInput{PoissonDist: stats.PoissonDist{Lambda: 2}, K: &x}))
	add(stats.Exponential(stats.ExponentialInput{ExponentialDist: stats.ExponentialDist{Lambda: 2}, X: &f}))
	add(stats.Normal(stats.NormalInput{NormalDist: stats.StdNormal, X1: &f}))
	add(stats.SamplingMeans(stats.SamplingMeansInput{Mu: 0, Sigma: 1, N: 4}))
	add(stats.SamplingProportions(stats.SamplingProportionsInput{P: 0.1, N: 20}))
	add(stats.ZInterval(stats.ZIntervalInput{Mean: 1, Sigma: 1, N: 4, Level: 90}))
	add(stats.TInterval([]float64{1, 2, 4}, 95))
	add(stats.DiscreteRV([]stats.Outcome{{X: 1, P: 1}}))
	add(stats.Bayes(stats.BayesInput{PA: 0.5, PBGivenA: 0.5, PBGivenNA: 0.5}))
	add(stats.Sets(stats.SetInput{A: []string{"a"}, B: []string{"b"}, Op: stats.Union}))
	add(stats.NewSimulator(1).Simulate(stats.SimulationInput{Dist: stats.SimPoisson, N: 50, Lambda: 3}))

	seen := make(map[stats.Kind]bool)
	for _, r := range results {
		var buf bytes.Buffer
		require.NoError(t, Text(&buf, r), "kind %s", r.Kind())
		assert.NotEmpty(t, buf.String())
		seen[r.Kind()] = true
	}
	assert.Len(t, seen, len(stats.Kinds))

	var buf bytes.Buffer
	require.NoError(t, Text(&buf, results[3]))
	assert.Contains(t, buf.String(), "undefined")
}

func TestChart(t *testing.T) {
	t.Parallel()

	freq, err := stats.Frequency([]float64{1, 2, 2, 3, 7, 9})
	require.NoError(t, err)

	sim, err := stats.NewSimulator(3).Simulate(stats.SimulationInput{Dist: stats.SimNormal, N: 100, Sigma: 1})
	require.NoError(t, err)

	binom, err := stats.Binomial(stats.BinomialInput{BinomialDist: stats.BinomialDist{N: 80, P: 0.5}})
	require.NoError(t, err)

	for _, r := range []stats.Result{freq, sim, binom, mustDescribe(t, []float64{1, 5}, false)} {
		var buf bytes.Buffer
		require.NoError(t, Chart(&buf, r), "kind %s", r.Kind())
		assert.Contains(t, buf.String(), "echarts")
	}

	bayes, err := stats.Bayes(stats.BayesInput{PA: 0.5, PBGivenA: 0.5, PBGivenNA: 0.5})
	require.NoError(t, err)
	require.ErrorIs(t, Chart(&bytes.Buffer{}, bayes), ErrNoChart)
}

func TestLabels(t *testing.T) {
	t.Parallel()

	pts := []stats.ChartPoint{{X: 0.123456}, {X: 3, Label: "...3", Truncated: true}}
	assert.Equal(t, []string{"0.1235", "...3"}, labels(pts))
}
