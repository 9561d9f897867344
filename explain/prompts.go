// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package explain

import (
	"fmt"

	"github.com/statlab/statcalc/stats"
)

// kindContext describes, in one sentence, what calculation produced a
// result of each kind.
var kindContext = map[stats.Kind]string{
	stats.KindDescriptive:         "Descriptive statistics (center, spread, quartiles and a histogram) were computed for a list of numbers.",
	stats.KindFrequency:           "The data were grouped into classes with Sturges' rule and absolute, relative and cumulative frequencies were tabulated.",
	stats.KindCombinatorics:       "A number of permutations or combinations of r items chosen from n was computed.",
	stats.KindProbability:         "A classical probability (favorable over possible cases) or a conditional probability P(A|B) = P(A ∩ B) / P(B) was computed.",
	stats.KindBinomial:            "A binomial distribution for n independent trials with success probability p was analyzed.",
	stats.KindPoisson:             "A Poisson distribution for the number of events in an interval with average rate λ was analyzed.",
	stats.KindExponential:         "An exponential distribution for the waiting time between events with rate λ was analyzed.",
	stats.KindNormal:              "Probabilities and z-scores were computed for a normal distribution with mean μ and standard deviation σ.",
	stats.KindSamplingMeans:       "The sampling distribution of the sample mean was computed from the population mean, the population standard deviation and the sample size.",
	stats.KindSamplingProportions: "The sampling distribution of the sample proportion was computed from the population proportion and the sample size.",
	stats.KindConfidenceInterval:  "A confidence interval for the population mean (μ) was computed.",
	stats.KindDiscreteRV:          "The expected value, variance and standard deviation of a discrete random variable were computed from its probability table.",
	stats.KindBayes:               "Bayes' theorem was used to compute P(A|B) from P(A), P(B|A) and P(B|¬A).",
	stats.KindSets:                "A set operation was applied to two sets A and B, with their Venn diagram decomposition.",
	stats.KindSimulation:          "Random data were generated from a distribution and summarized with descriptive statistics.",
}

const tutorSystemPrompt = "You are an expert and friendly statistics tutor helping a student who is learning statistics."

func interpretationPrompt(kind stats.Kind, results string) string {
	return fmt.Sprintf(`A student ran a calculation in a statistics calculator and obtained the following results.
Calculation context: %s
Results (numeric values; null means undefined):
%s

Give a CLEAR and CONCISE interpretation of these results.
Explain what the most important values mean in practical terms for someone learning statistics.
If there is an "interpretation" field, use it as a starting point and go deeper, explaining its key components.
Keep the explanation focused on conceptual understanding and application, not on repeating the numbers.
Avoid heavy jargon unless you explain it. Be encouraging.
Do not repeat the raw input data, only interpret the computed results.
Use blank lines between paragraphs and **double asterisks** for emphasis where appropriate.
`, kindContext[kind], results)
}

// A Concept is a statistical topic the explainer can describe.
type Concept struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Prompt string `json:"-"`
}

// Concepts is the catalog of topics ExplainConcept accepts.
var Concepts = []Concept{
	{
		ID:     "stat_definition",
		Label:  "What statistics is",
		Prompt: `Explain the concept of "statistics" as a discipline. Briefly describe its main branches (descriptive and inferential). Address a university student, and be clear, concise and accessible.`,
	},
	{
		ID:     "data_types",
		Label:  "Data and variables",
		Prompt: `Explain what "data" and "variables" are in statistics. Describe the fundamental difference between them and how they relate. Give simple examples. Address a university student.`,
	},
	{
		ID:     "qualitative_variables",
		Label:  "Qualitative variables",
		Prompt: `Explain what "qualitative" (categorical) variables are in statistics. Describe their types (nominal and ordinal) with a clear example of each. Address a university student.`,
	},
	{
		ID:     "quantitative_variables",
		Label:  "Quantitative variables",
		Prompt: `Explain what "quantitative" (numeric) variables are in statistics. Describe their types (discrete and continuous) with a clear example of each, highlighting the difference in how they are measured or counted. Address a university student.`,
	},
	{
		ID:     "population",
		Label:  "Population",
		Prompt: `Define "population" in the statistical sense. Explain whether it always refers to people and give examples of finite and infinite populations. Address a university student clearly and concisely.`,
	},
	{
		ID:     "sample",
		Label:  "Sample",
		Prompt: `Define "sample" in the statistical sense. Explain why samples are used instead of whole populations and why a sample should be representative. Give an example. Address a university student.`,
	},
	{
		ID:     "sampling",
		Label:  "Sampling",
		Prompt: `Explain the concept of "sampling" in statistics. Briefly describe its purpose and at least two common sampling techniques (for example simple random and stratified), explaining the basic idea of each. Address a university student.`,
	},
}

// LookupConcept returns the catalog entry with the given id.
func LookupConcept(id string) (Concept, bool) {
	for _, c := range Concepts {
		if c.ID == id {
			return c, true
		}
	}
	return Concept{}, false
}

const assistantSystemPrompt = `You are the task assistant of a statistics calculator. Your ONLY job is to tell users which calculator mode fits THEIR task and what main data they need to enter.

The calculator has these mode groups and modes:

1. Exploratory and descriptive analysis
   * 'descriptive': mean, median, mode, variance, standard deviation, quartiles, IQR and a histogram of a list of numbers, optionally with calculation steps. Needs: a list of numbers.
   * 'frequency': groups data into classes with absolute, relative and cumulative frequencies, class marks and a histogram with a frequency polygon. Needs: a list of numbers.

2. Probability and distributions
   * 'sets': union, intersection, differences and symmetric difference of two sets. Needs: the elements of sets A and B.
   * 'combinatorics': permutations (nPr) or combinations (nCr). Needs: n and r.
   * 'probability': classical probability P(A) = favorable / possible, or conditional probability P(A|B) = P(A ∩ B) / P(B). Needs: favorable and possible cases, or P(A ∩ B) and P(B).
   * 'bayes': P(A|B) from P(A), P(B|A) and P(B|¬A).
   * 'binomial': n independent trials with success probability p. Needs: n, p. Optional: x successes.
   * 'poisson': k events in an interval with average rate λ. Needs: λ. Optional: k.
   * 'normal': probabilities and z-scores for mean μ and standard deviation σ. Needs: μ, σ. Optional: X1, or X1 and X2.
   * 'exponential': time between events of a Poisson process with rate λ. Needs: λ. Optional: X.
   * 'discrete-rv': expected value, variance and standard deviation of a discrete random variable. Needs: pairs of a value x and its probability P(X=x).

3. Statistical inference
   * 'sampling-means': sampling distribution of the mean. Needs: population μ, population σ, sample size n. Optional: a sample mean x̄.
   * 'sampling-proportions': sampling distribution of a proportion. Needs: population p, sample size n. Optional: a sample proportion p̂.
   * 'confidence-interval': confidence interval for the mean, with known σ (z) or from raw data (t). Needs: x̄, σ, n and a confidence level, or a list of numbers and a level.

4. Tools
   * 'simulation': generates N random values from a uniform, normal, binomial or Poisson distribution. Needs: the distribution, N and its parameters.

5. AI help
   * 'assistant': this mode. Use it to point the user to other modes.
   * 'concepts': general explanations of terminology only. Never suggest it for calculations.

Rules:
1. Be brief and direct. Name the mode group, then the mode, then the main data to enter.
2. If the task is complex, suggest the mode for its main part.
3. Never do the calculation yourself. Guide the user inside the calculator.
4. If the user asks about a concept, point them to 'concepts'.
5. For "analyze data" or "see a trend", 'descriptive' or 'frequency' are good starting points.
6. Do not ask for data the suggested mode does not use.

Example for "I want the mean of 10, 20, 30":
Use **Exploratory and descriptive analysis -> descriptive**. Enter 10, 20, 30.`
