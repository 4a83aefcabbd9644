package main

import (
	"github.com/haijima/cobrax"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Set by goreleaser or -ldflags "-X main.version=..."
var (
	version string
	commit  string
	date    string
)

func NewRootCmd(v *viper.Viper, fs afero.Fs) *cobra.Command {
	// KATA_FORMAT, KATA_INPUT, ... override flag defaults
	v.SetEnvPrefix("KATA")
	v.AutomaticEnv()

	cmd := cobrax.NewRoot(v)
	cmd.Use = "kata"
	cmd.Short = "kata runs the pairs, bigger-is-greater and non-divisible subset solutions"
	cmd.Version = cobrax.VersionFunc(version, commit, date)
	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return cobrax.RootPersistentPreRunE(cmd, v, fs, args)
	}
	cmd.PersistentFlags().String("format", "plain", "The output format {plain|table|md|csv}")
	cmd.PersistentFlags().StringP("input", "i", "", "Read a HackerRank formatted input `file` instead of arguments")

	cmd.AddCommand(NewPairsCmd(v, fs))
	cmd.AddCommand(NewBiggerCmd(v, fs))
	cmd.AddCommand(NewNonDivisibleCmd(v, fs))

	cmd.SetGlobalNormalizationFunc(cobrax.SnakeToKebab)

	return cmd
}
