package cmd

import (
	"github.com/spf13/cobra"

	"github.com/tinne26/contfrac/internal/config"
)

var (
	cfgFile string
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:   "contfrac",
	Short: "Continued fractions and convergents",
	Long: `contfrac computes continued fraction representations of numbers,
their convergents (best rational approximations) and the values of
finite coefficient sequences.

Values can be given as exact ratios (415/93), decimals (2.718, read
as float64 and therefore carrying binary representation error) or
whole numbers (42).`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgFile)
		return err
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./contfrac.toml)")
}
