// Package permutation defines strategies, options and sentinel errors for
// the next-arrangement builder.
package permutation

import (
	"errors"
	"fmt"
)

// NoAnswer is what BiggerIsGreater returns for a maximal word.
const NoAnswer = "no answer"

var (
	// ErrNoAnswer indicates the word is already its greatest arrangement.
	ErrNoAnswer = errors.New("permutation: no answer")

	// ErrUnknownStrategy indicates an unsupported Strategy value.
	ErrUnknownStrategy = errors.New("permutation: unknown strategy")
)

// Strategy selects the algorithm used to locate the swap.
//
//   - Pivot — rightmost i with w[i] < w[i+1], one pass from the right.
//   - Scan  — for each i, scan all j > i for the smallest greater rune,
//     keep the last i that has one.
//
// Both produce identical output for every input.
type Strategy int

const (
	// Pivot finds the rightmost ascent. Default.
	Pivot Strategy = iota

	// Scan is the quadratic left-to-right search.
	Scan
)

// String implements fmt.Stringer.
func (s Strategy) String() string {
	switch s {
	case Pivot:
		return "pivot"
	case Scan:
		return "scan"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// Options configures NextGreater.
type Options struct {
	// Strategy picks the swap search. Zero value is Pivot.
	Strategy Strategy
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns Options with the Pivot strategy.
func DefaultOptions() Options {
	return Options{Strategy: Pivot}
}

// WithStrategy selects the swap search strategy.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		o.Strategy = s
	}
}
