package classif

import "math"

func equalIntervalOnSorted(sorted []float64, k int) ([]float64, error) {
	if err := checkClassCount(sorted, k); err != nil {
		return nil, err
	}
	min, max := sorted[0], sorted[len(sorted)-1]
	interval := (max - min) / float64(k)
	breaks := make([]float64, k)
	for i := 1; i < k; i++ {
		breaks[i-1] = min + float64(i)*interval
	}
	// Assign the maximum directly so the last break is exact even when
	// min + k*interval accumulates rounding error.
	breaks[k-1] = max
	return breaks, nil
}

func quantilesOnSorted(sorted []float64, k int) ([]float64, error) {
	if err := checkClassCount(sorted, k); err != nil {
		return nil, err
	}
	n := len(sorted)
	breaks := make([]float64, k)
	for i := 1; i < k; i++ {
		rank := float64(i) * float64(n-1) / float64(k)
		lo, frac := math.Modf(rank)
		idx := int(lo)
		v := sorted[idx]
		if frac > 0 && idx+1 < n {
			v += frac * (sorted[idx+1] - sorted[idx])
		}
		breaks[i-1] = v
	}
	breaks[k-1] = sorted[n-1]
	return breaks, nil
}

func arithmeticOnSorted(sorted []float64, k int) ([]float64, error) {
	if err := checkClassCount(sorted, k); err != nil {
		return nil, err
	}
	min, max := sorted[0], sorted[len(sorted)-1]
	// Class i has width i*w1; the triangular sum k*(k+1)/2 * w1 covers the
	// whole range.
	w1 := 2 * (max - min) / (float64(k) * float64(k+1))
	breaks := make([]float64, k)
	for i := 1; i < k; i++ {
		breaks[i-1] = min + w1*float64(i*(i+1))/2
	}
	breaks[k-1] = max
	return breaks, nil
}
