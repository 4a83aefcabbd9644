package permutation_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/kata/permutation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var strategies = []permutation.Strategy{permutation.Pivot, permutation.Scan}

// TestNextGreater_Table checks known answers under both strategies.
func TestNextGreater_Table(t *testing.T) {
	tests := []struct {
		w    string
		want string
	}{
		{"ab", "ba"},
		{"hefg", "hegf"},
		{"dhck", "dhkc"},
		{"dkhc", "hcdk"},
		{"lmno", "lmon"},
		{"abdc", "acbd"},
		{"aab", "aba"},
		{"abb", "bab"},
		{"bba", ""},
		{"bb", ""},
		{"dcba", ""},
		{"a", ""},
		{"", ""},
		{"αβ", "βα"},
	}

	for _, s := range strategies {
		for _, tc := range tests {
			t.Run(s.String()+"/"+tc.w, func(t *testing.T) {
				got, err := permutation.NextGreater(tc.w, permutation.WithStrategy(s))
				if tc.want == "" {
					assert.ErrorIs(t, err, permutation.ErrNoAnswer)
					assert.Empty(t, got)

					return
				}
				require.NoError(t, err)
				assert.Equal(t, tc.want, got)
			})
		}
	}
}

// TestBiggerIsGreater maps a missing answer to the NoAnswer string.
func TestBiggerIsGreater(t *testing.T) {
	assert.Equal(t, "ba", permutation.BiggerIsGreater("ab"))
	assert.Equal(t, "no answer", permutation.BiggerIsGreater("bb"))
	assert.Equal(t, permutation.NoAnswer, permutation.BiggerIsGreater("zyx"))
}

// TestNextGreater_UnknownStrategy rejects out-of-range strategies.
func TestNextGreater_UnknownStrategy(t *testing.T) {
	_, err := permutation.NextGreater("ab", permutation.WithStrategy(permutation.Strategy(9)))
	assert.ErrorIs(t, err, permutation.ErrUnknownStrategy)
	assert.Contains(t, err.Error(), "Strategy(9)")
}

// TestNextGreater_StrategiesAgree runs both strategies over random words
// with a small alphabet, so ties and repeats are frequent.
func TestNextGreater_StrategiesAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 2000; i++ {
		w := randomWord(rng, rng.Intn(9), "abcd")

		pivot, pivotErr := permutation.NextGreater(w, permutation.WithStrategy(permutation.Pivot))
		scan, scanErr := permutation.NextGreater(w, permutation.WithStrategy(permutation.Scan))

		assert.Equal(t, scanErr, pivotErr, "error mismatch for %q", w)
		assert.Equal(t, scan, pivot, "result mismatch for %q", w)
	}
}

// TestNextGreater_Exhaustive compares against the sorted list of all
// distinct arrangements: the answer must be the immediate successor.
func TestNextGreater_Exhaustive(t *testing.T) {
	for _, w := range []string{"abc", "aabb", "abcd", "zzya", "baca"} {
		all := arrangements(w)
		for idx, cur := range all {
			got, err := permutation.NextGreater(cur)
			if idx == len(all)-1 {
				assert.ErrorIs(t, err, permutation.ErrNoAnswer, "last arrangement %q", cur)

				continue
			}
			require.NoError(t, err, "arrangement %q", cur)
			assert.Equal(t, all[idx+1], got, "successor of %q", cur)
			if diff := cmp.Diff(sortedRunes(cur), sortedRunes(got)); diff != "" {
				t.Errorf("multiset changed for %q (-want +got):\n%s", cur, diff)
			}
		}
	}
}

func randomWord(rng *rand.Rand, n int, alphabet string) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[rng.Intn(len(alphabet))]
	}

	return string(b)
}

func sortedRunes(s string) []rune {
	r := []rune(s)
	slices.Sort(r)

	return r
}

// arrangements lists every distinct rearrangement of w in ascending order.
func arrangements(w string) []string {
	seen := map[string]struct{}{}
	var permute func(prefix, rest []rune)
	permute = func(prefix, rest []rune) {
		if len(rest) == 0 {
			seen[string(prefix)] = struct{}{}

			return
		}
		for i := range rest {
			next := append(slices.Clone(rest[:i]), rest[i+1:]...)
			permute(append(slices.Clone(prefix), rest[i]), next)
		}
	}
	permute(nil, []rune(w))

	out := make([]string, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	slices.Sort(out)

	return out
}
