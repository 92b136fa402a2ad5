// Package classif computes univariate data classifications for float64
// data: given a sample and a number of classes k, it partitions the value
// range into k contiguous intervals according to one of several methods,
// notably the exact Jenks natural breaks optimization. Breaks are mainly
// used for choropleth-map legend design and exploratory statistics.
//
// All breaks follow the upper-bound-per-class convention: a classifier
// returns k values, each the upper bound of one class, the last equal to
// the sample maximum. The implicit lower bound of the first class is the
// sample minimum.
//
// Every operation is a pure function: the input slice is never mutated and
// no state survives a call, so independent classifications may run
// concurrently without synchronization.
package classif

import (
	"github.com/mthh/classif/stats"
)

// Method identifies a classification method.
type Method int

const (
	// JenksNaturalBreaks is the exact dynamic-programming optimizer
	// minimizing within-class sum-of-squared-deviations.
	JenksNaturalBreaks Method = iota
	// Quantiles places breaks at the i/k quantiles of the sample.
	Quantiles
	// EqualInterval divides the value range into k equal-width classes.
	EqualInterval
	// Arithmetic derives class widths growing as an arithmetic
	// progression.
	Arithmetic
	// HeadTail recursively splits at the mean, following the above-mean
	// subset; it determines its own class count.
	HeadTail
	// TailHead is the mirror of HeadTail, following the below-mean subset.
	TailHead
)

var methodNames = map[Method]string{
	JenksNaturalBreaks: "jenks",
	Quantiles:          "quantiles",
	EqualInterval:      "equal-interval",
	Arithmetic:         "arithmetic",
	HeadTail:           "head-tail",
	TailHead:           "tail-head",
}

func (m Method) String() string {
	if s, ok := methodNames[m]; ok {
		return s
	}
	return "unknown"
}

// ParseMethod returns the Method named by s, as produced by
// Method.String.
func ParseMethod(s string) (Method, error) {
	for m, name := range methodNames {
		if s == name {
			return m, nil
		}
	}
	return 0, ErrUnknownMethod
}

// Bounds is the outcome of one classification run.
type Bounds struct {
	// Method is the classification method that produced the breaks.
	Method Method

	// Breaks holds one upper bound per class, ascending; the last entry
	// equals Max. Its length is k, or self-determined for HeadTail and
	// TailHead.
	Breaks []float64

	// Min, Max and Mean describe the prepared sample. Min is the implicit
	// lower bound of the first class.
	Min, Max, Mean float64
}

// New classifies values into k classes with the given method and returns
// the resulting Bounds. k is ignored by HeadTail and TailHead, which
// determine their own class count.
func New(values []float64, k int, method Method, options ...Option) (*Bounds, error) {
	cfg := makeConfig(options)
	sorted, err := prepare(values, cfg)
	if err != nil {
		return nil, err
	}
	var breaks []float64
	switch method {
	case JenksNaturalBreaks:
		breaks, err = jenksOnSorted(sorted, k)
	case Quantiles:
		breaks, err = quantilesOnSorted(sorted, k)
	case EqualInterval:
		breaks, err = equalIntervalOnSorted(sorted, k)
	case Arithmetic:
		breaks, err = arithmeticOnSorted(sorted, k)
	case HeadTail:
		breaks, err = headTailOnSorted(sorted, cfg.headTailThreshold)
	case TailHead:
		breaks, err = tailHeadOnSorted(sorted, cfg.headTailThreshold)
	default:
		return nil, ErrUnknownMethod
	}
	if err != nil {
		return nil, err
	}
	mean, err := stats.Mean(sorted)
	if err != nil {
		return nil, err
	}
	return &Bounds{
		Method: method,
		Breaks: breaks,
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		Mean:   mean,
	}, nil
}

// ClassIndex returns the index of the class containing v, or false when v
// falls below Min or above the last break.
func (b *Bounds) ClassIndex(v float64) (int, bool) {
	if v < b.Min {
		return 0, false
	}
	for i, ub := range b.Breaks {
		if v <= ub {
			return i, true
		}
	}
	return 0, false
}

// JenksBreaks returns the k upper-bound breaks of the partition of values
// minimizing the total within-class sum-of-squared-deviations from the
// class means. Ties between equally good partitions resolve to the
// leftmost split points, so the output is deterministic.
//
// Degenerate input (all values equal, or k equal to the sample size with
// duplicate values) yields breaks that may contain repeated values.
func JenksBreaks(values []float64, k int, options ...Option) ([]float64, error) {
	sorted, err := prepare(values, makeConfig(options))
	if err != nil {
		return nil, err
	}
	return jenksOnSorted(sorted, k)
}

// QuantileBreaks returns k breaks at the i/k quantile positions of values,
// i = 1..k, interpolating linearly between adjacent order statistics at
// rank i*(n-1)/k.
func QuantileBreaks(values []float64, k int, options ...Option) ([]float64, error) {
	sorted, err := prepare(values, makeConfig(options))
	if err != nil {
		return nil, err
	}
	return quantilesOnSorted(sorted, k)
}

// EqualIntervalBreaks returns k breaks at min + i*(max-min)/k, i = 1..k.
// A constant sample (min == max) is valid and yields k identical breaks.
func EqualIntervalBreaks(values []float64, k int, options ...Option) ([]float64, error) {
	sorted, err := prepare(values, makeConfig(options))
	if err != nil {
		return nil, err
	}
	return equalIntervalOnSorted(sorted, k)
}

// ArithmeticBreaks returns k breaks whose class widths grow linearly: the
// i-th class has width i*w1 with w1 = 2*(max-min)/(k*(k+1)), so the widths
// sum to the value range.
func ArithmeticBreaks(values []float64, k int, options ...Option) ([]float64, error) {
	sorted, err := prepare(values, makeConfig(options))
	if err != nil {
		return nil, err
	}
	return arithmeticOnSorted(sorted, k)
}

// HeadTailBreaks classifies heavy-tailed values by recursive mean splits,
// following the above-mean subset. The class count is determined by the
// data; see HeadTailThreshold for the convergence criterion.
func HeadTailBreaks(values []float64, options ...Option) ([]float64, error) {
	cfg := makeConfig(options)
	sorted, err := prepare(values, cfg)
	if err != nil {
		return nil, err
	}
	return headTailOnSorted(sorted, cfg.headTailThreshold)
}

// TailHeadBreaks is the mirror of HeadTailBreaks, recursing on the
// below-mean subset. It suits heavy-headed (left-skewed) distributions.
func TailHeadBreaks(values []float64, options ...Option) ([]float64, error) {
	cfg := makeConfig(options)
	sorted, err := prepare(values, cfg)
	if err != nil {
		return nil, err
	}
	return tailHeadOnSorted(sorted, cfg.headTailThreshold)
}
