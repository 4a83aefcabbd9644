package main

import (
	"log/slog"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/katalvlaran/kata/internal/hrinput"
	"github.com/katalvlaran/kata/permutation"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var strategies = map[string]permutation.Strategy{
	permutation.Pivot.String(): permutation.Pivot,
	permutation.Scan.String():  permutation.Scan,
}

func NewBiggerCmd(v *viper.Viper, fs afero.Fs) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "bigger [flags] [words...]"
	cmd.Aliases = []string{"bigger-is-greater", "next"}
	cmd.Short = "Print the next lexicographic arrangement of each word"
	cmd.Example = "  kata bigger ab bb hefg\n  kata bigger --input input.txt --strategy scan"
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return err
		}
		return runBigger(cmd, v, fs, args)
	}

	cmd.Flags().String("strategy", permutation.Pivot.String(), "The swap search `strategy` {pivot|scan}")

	return cmd
}

func runBigger(cmd *cobra.Command, v *viper.Viper, fs afero.Fs, args []string) error {
	format := v.GetString("format")
	if err := checkFormat(format); err != nil {
		return err
	}
	name := v.GetString("strategy")
	if name == "" {
		name = permutation.Pivot.String()
	}
	strategy, ok := strategies[name]
	if !ok {
		return errors.Mark(errors.Newf("unknown strategy: %s", name), ErrInvalidInput)
	}
	words, err := wordsInput(v, fs, args)
	if err != nil {
		return err
	}

	rows := make([]table.Row, 0, len(words))
	for i, w := range words {
		next, err := permutation.NextGreater(w, permutation.WithStrategy(strategy))
		if errors.Is(err, permutation.ErrNoAnswer) {
			next = permutation.NoAnswer
			if format == "table" {
				next = color.YellowString(next)
			}
		} else if err != nil {
			return err
		}
		slog.Debug("arranged", "word", w, "next", next, "strategy", strategy)
		rows = append(rows, table.Row{strconv.Itoa(i + 1), w, next})
	}

	render(cmd.OutOrStdout(), format, table.Row{"#", "word", "next"}, rows)
	return nil
}

func wordsInput(v *viper.Viper, fs afero.Fs, args []string) ([]string, error) {
	path := v.GetString("input")
	if path == "" {
		return args, nil
	}
	f, err := openInput(fs, path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	words, err := hrinput.ReadWords(f)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	return words, nil
}
