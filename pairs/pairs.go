package pairs

import mapset "github.com/deckarep/golang-set/v2"

// Count returns how many distinct values v of arr have v-k in arr as well.
//
// Algorithm Outline:
//  1. Build the distinct-value set S of arr.
//  2. For each v in S: if S contains v-k, result++.
//
// Complexity:
//
//	Time   = O(n)
//	Memory = O(d)
//
// Example:
//
//	pairs.Count(2, []int{1, 5, 3, 4, 2}) // 3
//	pairs.Count(0, []int{1, 2, 3})       // 3, every value matches itself
func Count(k int, arr []int) int {
	set := distinct(arr)

	result := 0
	set.Each(func(v int) bool {
		if set.Contains(v - k) {
			result++
		}

		return false // keep iterating
	})

	return result
}

// Distinct returns the number of distinct values in arr.
// It equals Count(0, arr).
func Distinct(arr []int) int {
	return distinct(arr).Cardinality()
}

// distinct builds the distinct-value set. The set never escapes a single
// call, so the thread-unsafe variant is enough.
func distinct(arr []int) mapset.Set[int] {
	return mapset.NewThreadUnsafeSet[int](arr...)
}
