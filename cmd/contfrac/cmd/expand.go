package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tinne26/contfrac"
	"github.com/tinne26/contfrac/internal/parse"
)

var expandMaxTerms int

var expandCmd = &cobra.Command{
	Use:   "expand <value>",
	Short: "Expand a number into its continued fraction coefficients",
	Example: `  contfrac expand 415/93
  contfrac expand 2.718281828459045
  contfrac expand 649/200 --max-terms 3`,
	Args: cobra.ExactArgs(1),
	RunE: runExpand,
}

func init() {
	expandCmd.Flags().IntVar(&expandMaxTerms, "max-terms", 0, "maximum number of coefficients (default from config)")
	rootCmd.AddCommand(expandCmd)
}

func runExpand(cmd *cobra.Command, args []string) error {
	value, err := parse.Value(args[0])
	if err != nil {
		return err
	}
	maxTerms := expandMaxTerms
	if maxTerms <= 0 {
		maxTerms = cfg.MaxTerms
	}

	coeffs := contfrac.ContinuedFraction(value, maxTerms).Collect()
	complete := len(coeffs) < maxTerms
	if !complete {
		// the cap may coincide with natural termination
		complete = len(contfrac.ContinuedFraction(value, maxTerms+1).Collect()) == len(coeffs)
	}
	fmt.Println(parse.Notation(coeffs, complete))
	return nil
}
