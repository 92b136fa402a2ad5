package classif

import (
	"github.com/mthh/classif/stats"
)

// GVF computes the goodness of variance fit of a partition of values by
// the given upper-bound breaks:
//
//	GVF = 1 - (sum of within-class SSD) / (total SSD of the sample)
//
// It lies in [0, 1]: 1 means every class is internally homogeneous (a
// zero-variance sample scores 1 for any partition), 0 means the partition
// explains nothing beyond a single class. GVF is a diagnostic for
// comparing classifications; the Jenks optimizer maximizes it by
// construction.
func GVF(values, breaks []float64, options ...Option) (float64, error) {
	sorted, err := prepare(values, makeConfig(options))
	if err != nil {
		return 0, err
	}
	if len(breaks) == 0 {
		return 0, ErrEmptyInput
	}
	n := len(sorted)
	totalVar, err := stats.Variance(sorted)
	if err != nil {
		return 0, err
	}
	total := totalVar * float64(n)
	if total == 0 {
		return 1, nil
	}
	within := 0.0
	start := 0
	for c, ub := range breaks {
		end := start
		if c == len(breaks)-1 {
			// Values above the last break fold into the last class.
			end = n
		} else {
			for end < n && sorted[end] <= ub {
				end++
			}
		}
		if end == start {
			// Empty class (duplicate break on degenerate data).
			continue
		}
		classVar, err := stats.Variance(sorted[start:end])
		if err != nil {
			return 0, err
		}
		within += classVar * float64(end-start)
		start = end
	}
	return 1 - within/total, nil
}
