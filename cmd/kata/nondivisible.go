package main

import (
	"log/slog"

	"github.com/cockroachdb/errors"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/katalvlaran/kata/nondivisible"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// maxModulus bounds -k: MaxSubsetSize allocates one counter per remainder class.
const maxModulus = 1 << 20

func NewNonDivisibleCmd(v *viper.Viper, fs afero.Fs) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "nondivisible [flags] [--] [values...]"
	cmd.Aliases = []string{"non-divisible", "subset"}
	cmd.Short = "Size the largest subset with no pair summing to a multiple of k"
	cmd.Example = "  kata nondivisible -k 3 1 7 2 4\n  kata nondivisible --input input.txt"
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return err
		}
		return runNonDivisible(cmd, v, fs, args)
	}

	cmd.Flags().IntP("k", "k", 1, "The modulus, between 1 and 1048576")

	return cmd
}

func runNonDivisible(cmd *cobra.Command, v *viper.Viper, fs afero.Fs, args []string) error {
	format := v.GetString("format")
	if err := checkFormat(format); err != nil {
		return err
	}
	k, values, err := arrayInput(v, fs, args)
	if err != nil {
		return err
	}
	if k < 1 || k > maxModulus {
		return errors.Mark(errors.Newf("k must be between 1 and %d, got %d", maxModulus, k), ErrInvalidInput)
	}

	size := nondivisible.MaxSubsetSize(k, values)
	if slog.Default().Enabled(cmd.Context(), slog.LevelDebug) {
		slog.Debug("sized subset", "k", k, "values", len(values), "remainders", nondivisible.Remainders(k, values), "size", size)
	}

	render(cmd.OutOrStdout(), format, table.Row{"k", "n", "size"}, []table.Row{{k, len(values), size}})
	return nil
}
