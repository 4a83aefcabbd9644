package permutation

import (
	"fmt"
	"slices"
)

// NextGreater returns the smallest arrangement of w's runes that is strictly
// greater than w.
//
// Algorithm Outline:
//  1. Locate target, the last index with a greater rune somewhere to its
//     right, and swap, the index of the smallest such rune (leftmost among
//     equals). The Strategy option decides how the pair is found.
//  2. No target: return ErrNoAnswer.
//  3. Result = w[:target] + w[swap] + ascending(w[target:] without w[swap]).
//
// Complexity:
//
//	Time   = O(n log n) with Pivot, O(n²) with Scan
//	Memory = O(n)
//
// Errors:
//   - ErrNoAnswer        — w is empty, a single rune, or sorted descending.
//   - ErrUnknownStrategy — opts selected an unsupported Strategy.
//
// Example:
//
//	next, err := NextGreater("dhck") // "dhkc", nil
//	_, err = NextGreater("bb")       // errors.Is(err, ErrNoAnswer)
func NextGreater(w string, opts ...Option) (string, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	runes := []rune(w)

	var target, swap int
	var ok bool
	switch o.Strategy {
	case Pivot:
		target, swap, ok = findPivot(runes)
	case Scan:
		target, swap, ok = findScan(runes)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownStrategy, o.Strategy)
	}
	if !ok {
		return "", ErrNoAnswer
	}

	return arrange(runes, target, swap), nil
}

// BiggerIsGreater is NextGreater with the default strategy, reporting a
// maximal word as the NoAnswer string instead of an error.
func BiggerIsGreater(w string) string {
	next, err := NextGreater(w)
	if err != nil {
		return NoAnswer
	}

	return next
}

// findPivot walks left from the end while the runes do not decrease.
// The first rune smaller than its right neighbour is the target; the suffix
// after it is non-increasing, so the smallest rune greater than the target
// is the rightmost one that qualifies, and its leftmost equal is the swap.
func findPivot(w []rune) (target, swap int, ok bool) {
	target = len(w) - 2
	for target >= 0 && w[target] >= w[target+1] {
		target--
	}
	if target < 0 {
		return 0, 0, false
	}

	swap = len(w) - 1
	for w[swap] <= w[target] {
		swap--
	}
	for swap-1 > target && w[swap-1] == w[swap] {
		swap--
	}

	return target, swap, true
}

// findScan tries every index and keeps the last one that has a greater rune
// to its right.
func findScan(w []rune) (target, swap int, ok bool) {
	for i := range w {
		if j, found := nextGreatestToRight(w, i); found {
			target, swap, ok = i, j, true
		}
	}

	return target, swap, ok
}

// nextGreatestToRight returns the index of the smallest rune right of i that
// is strictly greater than w[i]. Ties keep the leftmost index.
func nextGreatestToRight(w []rune, i int) (int, bool) {
	best := -1
	for j := i + 1; j < len(w); j++ {
		if w[j] > w[i] && (best < 0 || w[j] < w[best]) {
			best = j
		}
	}

	return best, best >= 0
}

// arrange moves w[swap] in front of w[target:] and sorts what follows.
// w is not modified.
func arrange(w []rune, target, swap int) string {
	rest := make([]rune, 0, len(w)-target-1)
	rest = append(rest, w[target:swap]...)
	rest = append(rest, w[swap+1:]...)
	slices.Sort(rest)

	out := make([]rune, 0, len(w))
	out = append(out, w[:target]...)
	out = append(out, w[swap])
	out = append(out, rest...)

	return string(out)
}
