package main

import (
	"log/slog"

	"github.com/cockroachdb/errors"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/katalvlaran/kata/internal/hrinput"
	"github.com/katalvlaran/kata/pairs"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func NewPairsCmd(v *viper.Viper, fs afero.Fs) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "pairs [flags] [--] [values...]"
	cmd.Aliases = []string{"pair"}
	cmd.Short = "Count value pairs whose difference is k"
	cmd.Example = "  kata pairs -k 2 1 5 3 4 2\n  kata pairs --input input.txt"
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return err
		}
		return runPairs(cmd, v, fs, args)
	}

	cmd.Flags().IntP("k", "k", 0, "The target difference")

	return cmd
}

func runPairs(cmd *cobra.Command, v *viper.Viper, fs afero.Fs, args []string) error {
	format := v.GetString("format")
	if err := checkFormat(format); err != nil {
		return err
	}
	k, values, err := arrayInput(v, fs, args)
	if err != nil {
		return err
	}

	n := pairs.Count(k, values)
	if slog.Default().Enabled(cmd.Context(), slog.LevelDebug) {
		slog.Debug("counted pairs", "k", k, "values", len(values), "distinct", pairs.Distinct(values), "pairs", n)
	}

	render(cmd.OutOrStdout(), format, table.Row{"k", "n", "pairs"}, []table.Row{{k, len(values), n}})
	return nil
}

// arrayInput returns k and the values from --input, or from -k and args.
func arrayInput(v *viper.Viper, fs afero.Fs, args []string) (int, []int, error) {
	if path := v.GetString("input"); path != "" {
		if len(args) > 0 {
			slog.Warn("ignoring positional values, reading input file", "file", path, "args", len(args))
		}
		f, err := openInput(fs, path)
		if err != nil {
			return 0, nil, err
		}
		defer f.Close()

		k, values, err := hrinput.ReadArray(f)
		if err != nil {
			return 0, nil, errors.Wrapf(err, "read %s", path)
		}
		return k, values, nil
	}

	values, err := hrinput.ParseInts(args)
	if err != nil {
		return 0, nil, err
	}
	return v.GetInt("k"), values, nil
}
