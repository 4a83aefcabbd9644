// Package kata is a small collection of coding-challenge solutions, each a
// pure, deterministic function over in-memory input.
//
// 🚀 What is inside?
//
//	pairs/        — count value pairs whose difference equals k
//	permutation/  — next lexicographic arrangement of a word ("bigger is greater")
//	nondivisible/ — largest subset with no pair summing to a multiple of k
//	cmd/kata      — command-line runner for HackerRank formatted input
//
// ✨ Why this layout?
//
//   - One package per problem, no shared state between them
//   - Every function is safe to call concurrently
//   - Sentinel errors only where an outcome needs one (permutation.ErrNoAnswer)
//
// Quick example:
//
//	pairs.Count(2, []int{1, 5, 3, 4, 2})        // 3
//	permutation.BiggerIsGreater("hefg")         // "hegf"
//	nondivisible.MaxSubsetSize(3, []int{1, 7, 2, 4}) // 3
//
//	go install github.com/katalvlaran/kata/cmd/kata@latest
package kata
