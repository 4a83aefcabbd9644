package nondivisible

// MaxSubsetSize returns the size of the largest subset of s whose pairwise
// sums are never divisible by k.
//
// Algorithm Outline:
//  1. len(s) < 2 or k == 1: return 1.
//  2. counts[r] = number of elements with remainder r.
//  3. For each 1 <= i < k-i: add max(counts[i], counts[k-i]).
//  4. k even: add min(1, counts[k/2]).
//  5. Add min(1, counts[0]).
//
// Complexity:
//
//	Time   = O(n + k)
//	Memory = O(k)
//
// Example:
//
//	MaxSubsetSize(3, []int{1, 7, 2, 4}) // 3: {1, 7, 4}
func MaxSubsetSize(k int, s []int) int {
	if len(s) < 2 || k == 1 {
		return 1
	}

	counts := Remainders(k, s)

	result := 0
	for i, j := 1, k-1; i < j; i, j = i+1, j-1 {
		result += max(counts[i], counts[j])
	}
	if k%2 == 0 {
		result += min(1, counts[k/2])
	}
	result += min(1, counts[0])

	return result
}

// Remainders returns the histogram of s over the remainder classes 0..k-1.
// It requires k >= 1 and allocates k ints, so callers taking k from
// untrusted input must bound it first.
func Remainders(k int, s []int) []int {
	counts := make([]int, k)
	for _, x := range s {
		counts[mod(x, k)]++
	}

	return counts
}

// mod is the remainder of x by k in 0..k-1.
func mod(x, k int) int {
	r := x % k
	if r < 0 {
		r += k
	}

	return r
}
