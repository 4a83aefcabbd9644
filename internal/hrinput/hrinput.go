// Package hrinput reads inputs laid out the way HackerRank feeds them on stdin.
package hrinput

import (
	"bufio"
	"io"
	"strconv"

	"github.com/cockroachdb/errors"
)

// ErrMalformed marks every parse failure.
var ErrMalformed = errors.New("malformed input")

// maxPrealloc caps the capacity reserved from a declared count; longer
// inputs grow by append.
const maxPrealloc = 1 << 16

// ReadArray reads "n k" followed by n integers.
func ReadArray(r io.Reader) (k int, values []int, err error) {
	tok := newTokens(r)

	n, err := tok.int("n")
	if err != nil {
		return 0, nil, err
	}
	if n < 0 {
		return 0, nil, errors.Mark(errors.Newf("negative length %d", n), ErrMalformed)
	}
	if k, err = tok.int("k"); err != nil {
		return 0, nil, err
	}

	values = make([]int, 0, min(n, maxPrealloc))
	for i := 0; i < n; i++ {
		v, err := tok.int("value #" + strconv.Itoa(i+1))
		if err != nil {
			return 0, nil, err
		}
		values = append(values, v)
	}
	if err := tok.end(); err != nil {
		return 0, nil, err
	}

	return k, values, nil
}

// ReadWords reads a count T followed by T whitespace separated words.
func ReadWords(r io.Reader) ([]string, error) {
	tok := newTokens(r)

	n, err := tok.int("count")
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, errors.Mark(errors.Newf("negative count %d", n), ErrMalformed)
	}

	words := make([]string, 0, min(n, maxPrealloc))
	for i := 0; i < n; i++ {
		w, err := tok.next("word #" + strconv.Itoa(i+1))
		if err != nil {
			return nil, err
		}
		words = append(words, w)
	}
	if err := tok.end(); err != nil {
		return nil, err
	}

	return words, nil
}

// ParseInts converts command-line arguments into integers.
func ParseInts(args []string) ([]int, error) {
	values := make([]int, 0, len(args))
	for _, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, errors.Mark(errors.Wrapf(err, "parse %q", a), ErrMalformed)
		}
		values = append(values, v)
	}

	return values, nil
}

type tokens struct {
	sc *bufio.Scanner
}

func newTokens(r io.Reader) *tokens {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	sc.Split(bufio.ScanWords)

	return &tokens{sc: sc}
}

func (t *tokens) next(what string) (string, error) {
	if t.sc.Scan() {
		return t.sc.Text(), nil
	}
	if err := t.sc.Err(); err != nil {
		return "", errors.Wrapf(err, "read %s", what)
	}

	return "", errors.Mark(errors.Newf("missing %s", what), ErrMalformed)
}

func (t *tokens) int(what string) (int, error) {
	s, err := t.next(what)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Mark(errors.Wrapf(err, "parse %s", what), ErrMalformed)
	}

	return v, nil
}

// end fails if anything but whitespace is left.
func (t *tokens) end() error {
	if t.sc.Scan() {
		return errors.Mark(errors.Newf("unexpected trailing token %q", t.sc.Text()), ErrMalformed)
	}

	return errors.Wrap(t.sc.Err(), "read trailing input")
}
