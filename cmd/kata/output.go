package main

import (
	"fmt"
	"io"
	"slices"

	"github.com/cockroachdb/errors"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/afero"
)

// ErrInvalidInput marks arguments the solutions do not accept.
var ErrInvalidInput = errors.New("invalid input")

var formats = []string{"plain", "table", "md", "csv"}

func checkFormat(format string) error {
	if !slices.Contains(formats, format) {
		return errors.Mark(errors.Newf("unknown format: %s", format), ErrInvalidInput)
	}
	return nil
}

// render prints rows as a table, or only the last column of each row when
// the format is plain.
func render(w io.Writer, format string, header table.Row, rows []table.Row) {
	if format == "plain" {
		for _, row := range rows {
			fmt.Fprintln(w, row[len(row)-1])
		}
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(header)
	t.AppendRows(rows)

	switch format {
	case "table":
		t.Render()
	case "md":
		t.RenderMarkdown()
	case "csv":
		t.RenderCSV()
	}
}

// openInput opens the --input file.
func openInput(fs afero.Fs, path string) (afero.File, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open input %s", path)
	}
	return f, nil
}
