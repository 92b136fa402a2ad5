// Package stats provides the descriptive-statistics primitives the
// classifiers build on: mean, population variance, standard deviation,
// median, harmonic and geometric means, root mean square and kurtosis.
//
// Every function is a pure O(n) pass over its input, allocates nothing
// beyond a private copy where sorting is required, and never mutates the
// caller's slice. An empty input fails with ErrEmptyInput; inputs that
// make a quantity mathematically undefined fail with the dedicated error
// below.
package stats

import (
	"errors"
	"math"
	"sort"
)

var (
	// ErrEmptyInput is returned when the input slice has zero length.
	ErrEmptyInput = errors.New("stats: empty input")

	// ErrZeroValue is returned by HarmonicMean when the input contains a
	// zero, whose reciprocal is undefined.
	ErrZeroValue = errors.New("stats: zero value in input")

	// ErrNonPositive is returned by GeometricMean when the input contains
	// a value <= 0, for which the real-valued root is undefined.
	ErrNonPositive = errors.New("stats: non-positive value in input")

	// ErrZeroVariance is returned by Kurtosis when the input has zero
	// variance, leaving the fourth standardized moment undefined.
	ErrZeroVariance = errors.New("stats: zero variance")
)

// Sum returns the sum of xs.
func Sum(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, ErrEmptyInput
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum, nil
}

// Mean returns the arithmetic mean of xs.
func Mean(xs []float64) (float64, error) {
	sum, err := Sum(xs)
	if err != nil {
		return 0, err
	}
	return sum / float64(len(xs)), nil
}

// Variance returns the population variance of xs: the mean of squared
// deviations from the mean, with divisor n (not n-1).
func Variance(xs []float64) (float64, error) {
	mean, err := Mean(xs)
	if err != nil {
		return 0, err
	}
	sum := 0.0
	for _, x := range xs {
		d := x - mean
		sum += d * d
	}
	return sum / float64(len(xs)), nil
}

// StdDev returns the population standard deviation of xs.
func StdDev(xs []float64) (float64, error) {
	v, err := Variance(xs)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(v), nil
}

// Median returns the middle value of xs for odd lengths, or the mean of
// the two middle values for even lengths. It sorts a private copy and
// never mutates xs.
func Median(xs []float64) (float64, error) {
	n := len(xs)
	if n == 0 {
		return 0, ErrEmptyInput
	}
	cp := make([]float64, n)
	copy(cp, xs)
	sort.Float64s(cp)
	mid := n / 2
	if n%2 == 0 {
		return (cp[mid-1] + cp[mid]) / 2, nil
	}
	return cp[mid], nil
}

// HarmonicMean returns n divided by the sum of reciprocals of xs. It
// fails with ErrZeroValue when xs contains a zero.
func HarmonicMean(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, ErrEmptyInput
	}
	sum := 0.0
	for _, x := range xs {
		if x == 0 {
			return 0, ErrZeroValue
		}
		sum += 1 / x
	}
	return float64(len(xs)) / sum, nil
}

// GeometricMean returns the nth root of the product of xs, computed as
// the exponential of the mean logarithm for numerical stability. It fails
// with ErrNonPositive when xs contains a value <= 0.
func GeometricMean(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, ErrEmptyInput
	}
	sum := 0.0
	for _, x := range xs {
		if x <= 0 {
			return 0, ErrNonPositive
		}
		sum += math.Log(x)
	}
	return math.Exp(sum / float64(len(xs))), nil
}

// RootMeanSquare returns the square root of the mean of squares of xs.
func RootMeanSquare(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, ErrEmptyInput
	}
	sum := 0.0
	for _, x := range xs {
		sum += x * x
	}
	return math.Sqrt(sum / float64(len(xs))), nil
}

// Kurtosis returns the fourth standardized moment of xs in the non-excess
// convention: the mean of (x - mean)^4 divided by the squared population
// variance, so a normal distribution scores 3.0. It fails with
// ErrZeroVariance when all values are equal.
func Kurtosis(xs []float64) (float64, error) {
	mean, err := Mean(xs)
	if err != nil {
		return 0, err
	}
	m2, m4 := 0.0, 0.0
	for _, x := range xs {
		d := x - mean
		dd := d * d
		m2 += dd
		m4 += dd * dd
	}
	n := float64(len(xs))
	m2 /= n
	m4 /= n
	if m2 == 0 {
		return 0, ErrZeroVariance
	}
	return m4 / (m2 * m2), nil
}
