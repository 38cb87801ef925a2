package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tinne26/contfrac"
	"github.com/tinne26/contfrac/internal/parse"
)

var convergentCmd = &cobra.Command{
	Use:   "convergent <value> <grade>",
	Short: "Compute a single convergent of the given grade",
	Example: `  contfrac convergent 2.718281828459045 3
  contfrac convergent 415/93 2`,
	Args: cobra.ExactArgs(2),
	RunE: runConvergent,
}

func init() {
	rootCmd.AddCommand(convergentCmd)
}

func runConvergent(cmd *cobra.Command, args []string) error {
	value, err := parse.Value(args[0])
	if err != nil {
		return err
	}
	grade, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid grade %q", args[1])
	}

	conv, err := contfrac.ConvergentAt(value, grade)
	if err != nil {
		return err
	}
	fmt.Printf("%s = %.16g\n", conv.String(), conv.Float64())
	return nil
}
