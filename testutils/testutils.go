// Package testutils provides combinatoric helpers for exhaustive
// cross-checking in tests.
package testutils

// Partitions enumerates every way to divide n ordered items into k
// contiguous, non-empty runs. For each partition f is called with ends,
// where ends[c] is the exclusive end index of run c (so run c covers
// [ends[c-1], ends[c]) with ends[-1] taken as 0, and ends[k-1] == n).
//
// The ends slice is reused between calls; callers that retain it must
// copy it. The number of partitions is C(n-1, k-1), so keep n small.
func Partitions(n, k int, f func(ends []int)) {
	if n < 1 || k < 1 || k > n {
		return
	}
	ends := make([]int, k)
	var walk func(c, start int)
	walk = func(c, start int) {
		if c == k-1 {
			ends[c] = n
			f(ends)
			return
		}
		// Leave room for the k-c-1 runs that follow.
		for e := start + 1; e <= n-(k-c-1); e++ {
			ends[c] = e
			walk(c+1, e)
		}
	}
	walk(0, 0)
}

// CountPartitions returns the number of partitions Partitions(n, k, ...)
// visits: the binomial coefficient C(n-1, k-1).
func CountPartitions(n, k int) int {
	if n < 1 || k < 1 || k > n {
		return 0
	}
	c := 1
	for i := 1; i < k; i++ {
		c = c * (n - i) / i
	}
	return c
}
