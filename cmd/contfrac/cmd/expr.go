package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tinne26/contfrac"
	"github.com/tinne26/contfrac/internal/parse"
)

var (
	exprNoSpaces    bool
	exprForceFloats bool
)

var exprCmd = &cobra.Command{
	Use:   "expr <coefficient>...",
	Short: "Render a coefficient sequence as a nested arithmetical expression",
	Example: `  contfrac expr 4 2 6 7
  contfrac expr 3 4 12 4 --force-floats`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExpr,
}

func init() {
	exprCmd.Flags().BoolVar(&exprNoSpaces, "no-spaces", false, "drop the spaces around plus signs")
	exprCmd.Flags().BoolVar(&exprForceFloats, "force-floats", false, "render reciprocals as 1.0/(...)")
	rootCmd.AddCommand(exprCmd)
}

func runExpr(cmd *cobra.Command, args []string) error {
	coeffs, err := parse.Coeffs(args)
	if err != nil {
		return err
	}

	style := contfrac.ExprStyle{
		OmitSpaces:  exprNoSpaces || cfg.Expr.OmitSpaces,
		ForceFloats: exprForceFloats || cfg.Expr.ForceFloats,
	}
	fmt.Println(contfrac.ArithmeticalExprStyled(coeffs, style))
	return nil
}
