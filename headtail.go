package classif

import (
	"sort"

	"github.com/mthh/classif/stats"
)

// headTailOnSorted emits the mean of each successive above-mean subset.
// The recursion follows the "tail" (values strictly greater than the
// current mean) while it is non-empty, strictly smaller than the current
// subset, and at most threshold of it; a tail that stops shrinking (all
// values equal) terminates immediately.
func headTailOnSorted(sorted []float64, threshold float64) ([]float64, error) {
	if len(sorted) == 0 {
		return nil, ErrEmptyInput
	}
	var breaks []float64
	cur := sorted
	for {
		m, err := stats.Mean(cur)
		if err != nil {
			return nil, err
		}
		breaks = append(breaks, m)
		// cur is sorted, so the tail is the suffix strictly above m.
		tail := cur[sort.SearchFloat64s(cur, m):]
		for len(tail) > 0 && tail[0] == m {
			tail = tail[1:]
		}
		if len(tail) == 0 || len(tail) == len(cur) {
			break
		}
		if float64(len(tail))/float64(len(cur)) > threshold {
			break
		}
		cur = tail
	}
	if max := sorted[len(sorted)-1]; breaks[len(breaks)-1] < max {
		breaks = append(breaks, max)
	}
	return breaks, nil
}

// tailHeadOnSorted is the mirror recursion on the below-mean subset. The
// discovered means come out descending and are reversed into ascending
// upper bounds, terminated by the sample maximum.
func tailHeadOnSorted(sorted []float64, threshold float64) ([]float64, error) {
	if len(sorted) == 0 {
		return nil, ErrEmptyInput
	}
	var means []float64
	cur := sorted
	for {
		m, err := stats.Mean(cur)
		if err != nil {
			return nil, err
		}
		means = append(means, m)
		// The head is the prefix strictly below m.
		head := cur[:sort.SearchFloat64s(cur, m)]
		if len(head) == 0 || len(head) == len(cur) {
			break
		}
		if float64(len(head))/float64(len(cur)) > threshold {
			break
		}
		cur = head
	}
	breaks := make([]float64, 0, len(means)+1)
	for i := len(means) - 1; i >= 0; i-- {
		breaks = append(breaks, means[i])
	}
	if max := sorted[len(sorted)-1]; breaks[len(breaks)-1] < max {
		breaks = append(breaks, max)
	}
	return breaks, nil
}
