// Package pairs counts value pairs in an integer sequence whose difference
// equals a target.
//
// 🚀 What is it?
//
//	Given a target k and a sequence arr, count the distinct values v in arr
//	for which v-k is also present. Each qualifying pair (v, v-k) is counted
//	exactly once, through its larger-by-k member.
//
// ✨ Semantics:
//   - counting runs over the distinct-value set, so duplicates in arr never
//     multiply the result
//   - k == 0 matches every distinct value with itself, so Count returns the
//     number of distinct values
//   - Count(k, arr) == Count(-k, arr): the same pairs are found through
//     their other member
//   - an empty (or nil) arr yields 0
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/kata/pairs"
//
//	n := pairs.Count(2, []int{1, 5, 3, 4, 2}) // 3: (3,1) (5,3) (4,2)
//
// Performance:
//
//   - Time:   O(n) expected
//   - Memory: O(d), d = number of distinct values
package pairs
