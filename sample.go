package classif

import (
	"math"
	"sort"
)

// prepare validates the raw sample and produces the ascending-sorted copy
// every classifier operates on. The caller's slice is never mutated.
//
// Values equal to the configured no-data sentinel are removed. A remaining
// NaN or infinity fails with ErrNonFinite; a sample that is empty before or
// after sentinel removal fails with ErrEmptyInput.
func prepare(values []float64, cfg config) ([]float64, error) {
	if len(values) == 0 {
		return nil, ErrEmptyInput
	}
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if math.IsNaN(v) {
			if cfg.nanIsNoData {
				continue
			}
			return nil, ErrNonFinite
		}
		if cfg.hasNoData && v == cfg.noData {
			continue
		}
		if math.IsInf(v, 0) {
			return nil, ErrNonFinite
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, ErrEmptyInput
	}
	sort.Float64s(out)
	return out, nil
}

// checkClassCount enforces 1 <= k <= len(sorted): a class may not be empty,
// so there can be no more classes than usable data points.
func checkClassCount(sorted []float64, k int) error {
	if k < 1 || k > len(sorted) {
		return ErrInvalidClassCount
	}
	return nil
}
