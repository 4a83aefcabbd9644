// Package permutation builds the next lexicographic arrangement of a word.
//
// 🚀 What is it?
//
//	Given a word w, rearrange its characters into the smallest word that is
//	strictly greater than w. When w is already the greatest arrangement of
//	its characters (sorted descending, e.g. "bb" or "dcba"), there is no
//	answer.
//
// ✨ Key features:
//   - two interchangeable strategies that always agree:
//     Pivot (default) — rightmost ascent, swap, sort the suffix: O(n log n)
//     Scan            — for every position look right for the smallest
//     greater character, keep the last hit: O(n²)
//   - characters compare by rune value, so any UTF-8 input is accepted
//   - "no answer" is a normal outcome: ErrNoAnswer from NextGreater, the
//     NoAnswer string from BiggerIsGreater
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/kata/permutation"
//
//	next, err := permutation.NextGreater("hefg") // "hegf", nil
//	if errors.Is(err, permutation.ErrNoAnswer) {
//		// w is already maximal
//	}
//
//	permutation.BiggerIsGreater("bb") // "no answer"
//
// Guarantees (when an answer exists):
//
//   - same length and same multiset of characters as w
//   - strictly greater than w
//   - no arrangement of the same characters lies strictly between
package permutation
