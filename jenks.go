package classif

import "math"

// jenksOnSorted runs the exact Jenks natural breaks optimization: among
// all partitions of the sorted sample into k contiguous non-empty classes
// it finds the one minimizing the total within-class sum of squared
// deviations from the class means, and returns the k class upper bounds.
//
// The dynamic program is the direct O(n^2*k) formulation. dp[i][c] is the
// minimal total SSD over the first i+1 values split into c+1 classes, and
// split[i][c] records the end of the previous class for reconstruction.
// Both tables are flat slices indexed by row*k + column; the dimensions
// are known up front so nothing grows during the search.
func jenksOnSorted(sorted []float64, k int) ([]float64, error) {
	if err := checkClassCount(sorted, k); err != nil {
		return nil, err
	}
	n := len(sorted)

	// Prefix sums make the SSD of any contiguous run O(1):
	// SSD(i, j) = sum(x^2) - sum(x)^2/count over the run.
	prefixSum := make([]float64, n+1)
	prefixSqSum := make([]float64, n+1)
	for i, v := range sorted {
		prefixSum[i+1] = prefixSum[i] + v
		prefixSqSum[i+1] = prefixSqSum[i] + v*v
	}
	ssd := func(i, j int) float64 {
		s := prefixSum[j+1] - prefixSum[i]
		sq := prefixSqSum[j+1] - prefixSqSum[i]
		v := sq - s*s/float64(j-i+1)
		if v < 0 {
			// Cancellation can leave a tiny negative residue.
			return 0
		}
		return v
	}

	dp := make([]float64, n*k)
	split := make([]int, n*k)
	for i := 0; i < n; i++ {
		dp[i*k] = ssd(0, i)
		split[i*k] = -1
	}
	for c := 1; c < k; c++ {
		// A prefix of i+1 values needs at least c+1 elements to form c+1
		// non-empty classes.
		for i := c; i < n; i++ {
			best := math.Inf(1)
			bestSplit := -1
			// p is the last index of the previous class; it must leave at
			// least c elements before it and one after.
			for p := c - 1; p < i; p++ {
				cost := dp[p*k+c-1] + ssd(p+1, i)
				// Strictly smaller only: on ties the leftmost split wins,
				// keeping the output reproducible.
				if cost < best {
					best = cost
					bestSplit = p
				}
			}
			dp[i*k+c] = best
			split[i*k+c] = bestSplit
		}
	}

	breaks := make([]float64, k)
	breaks[k-1] = sorted[n-1]
	i := n - 1
	for c := k - 1; c > 0; c-- {
		p := split[i*k+c]
		breaks[c-1] = sorted[p]
		i = p
	}
	return breaks, nil
}
