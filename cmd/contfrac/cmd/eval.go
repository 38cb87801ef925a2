package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tinne26/contfrac"
	"github.com/tinne26/contfrac/internal/parse"
)

var evalCmd = &cobra.Command{
	Use:   "eval <coefficient>...",
	Short: "Evaluate a finite coefficient sequence back into a number",
	Example: `  contfrac eval 4 2 6 7
  contfrac eval -- -4 1 3 12 4`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEval,
}

func init() {
	rootCmd.AddCommand(evalCmd)
}

func runEval(cmd *cobra.Command, args []string) error {
	coeffs, err := parse.Coeffs(args)
	if err != nil {
		return err
	}
	rat, err := contfrac.EvaluateRat(coeffs)
	if err != nil {
		return err
	}
	f, _ := rat.Float64()
	fmt.Printf("%s = %.16g\n", rat.RatString(), f)
	return nil
}
