// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

// Kind identifies the operation that produced a Result.
type Kind string

const (
	KindDescriptive         Kind = "descriptive"
	KindFrequency           Kind = "frequency"
	KindCombinatorics       Kind = "combinatorics"
	KindProbability         Kind = "probability"
	KindBinomial            Kind = "binomial"
	KindPoisson             Kind = "poisson"
	KindExponential         Kind = "exponential"
	KindNormal              Kind = "normal"
	KindSamplingMeans       Kind = "sampling-means"
	KindSamplingProportions Kind = "sampling-proportions"
	KindConfidenceInterval  Kind = "confidence-interval"
	KindDiscreteRV          Kind = "discrete-rv"
	KindBayes               Kind = "bayes"
	KindSets                Kind = "sets"
	KindSimulation          Kind = "simulation"
)

// Kinds lists every Kind in the order a menu would present them.
var Kinds = []Kind{
	KindDescriptive, KindFrequency,
	KindSets, KindCombinatorics, KindProbability, KindBayes,
	KindBinomial, KindPoisson, KindNormal, KindExponential,
	KindDiscreteRV, KindSamplingMeans, KindSamplingProportions,
	KindConfidenceInterval, KindSimulation,
}

// A Result is the outcome of one calculation. Consumers switch on the
// concrete type (or on Kind) to render it.
type Result interface {
	Kind() Kind
}

// A ChartPoint is one point of a chart series. Series are rebuilt on
// every call and never shared between results.
type ChartPoint struct {
	// X is the numeric position of the point.
	X float64 `json:"x"`

	// Label is the category label, for series plotted by category
	// (histogram buckets, truncation markers).
	Label string `json:"label,omitempty"`

	// Y is the plotted value.
	Y float64 `json:"y"`

	// Polygon is the frequency polygon value, for series drawn as
	// both bars and a polygon.
	Polygon float64 `json:"polygon,omitempty"`

	// Interval is the class interval this point represents.
	Interval string `json:"interval,omitempty"`

	// Truncated marks a placeholder point standing in for values
	// that were cut from the chart.
	Truncated bool `json:"truncated,omitempty"`
}

func (*DescriptiveResult) Kind() Kind         { return KindDescriptive }
func (*FrequencyResult) Kind() Kind           { return KindFrequency }
func (*CombinatoricsResult) Kind() Kind       { return KindCombinatorics }
func (*ProbabilityResult) Kind() Kind         { return KindProbability }
func (*BinomialResult) Kind() Kind            { return KindBinomial }
func (*PoissonResult) Kind() Kind             { return KindPoisson }
func (*ExponentialResult) Kind() Kind         { return KindExponential }
func (*NormalResult) Kind() Kind              { return KindNormal }
func (*SamplingMeansResult) Kind() Kind       { return KindSamplingMeans }
func (*SamplingProportionsResult) Kind() Kind { return KindSamplingProportions }
func (*ConfidenceIntervalResult) Kind() Kind  { return KindConfidenceInterval }
func (*DiscreteRVResult) Kind() Kind          { return KindDiscreteRV }
func (*BayesResult) Kind() Kind               { return KindBayes }
func (*SetResult) Kind() Kind                 { return KindSets }
func (*SimulationResult) Kind() Kind          { return KindSimulation }
