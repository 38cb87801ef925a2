package cmd

import (
	"fmt"
	"math/big"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/tinne26/contfrac"
	"github.com/tinne26/contfrac/internal/parse"
)

var convergentsMaxGrade int

var (
	tableHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#6B7280"))
	tableExactStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981"))
)

var convergentsCmd = &cobra.Command{
	Use:   "convergents <value>",
	Short: "List the best rational approximations of a number",
	Example: `  contfrac convergents 415/93
  contfrac convergents 3.141592653589793 --max-grade 8`,
	Args: cobra.ExactArgs(1),
	RunE: runConvergents,
}

func init() {
	convergentsCmd.Flags().IntVar(&convergentsMaxGrade, "max-grade", -1, "highest convergent grade (default from config)")
	rootCmd.AddCommand(convergentsCmd)
}

func runConvergents(cmd *cobra.Command, args []string) error {
	value, err := parse.Value(args[0])
	if err != nil {
		return err
	}
	maxGrade := convergentsMaxGrade
	if maxGrade < 0 {
		maxGrade = cfg.MaxGrade
	}

	target := value.Rat()
	header := fmt.Sprintf("%-6s %-26s %-22s %s", "grade", "fraction", "value", "error")
	fmt.Println(tableHeaderStyle.Render(header))

	seq := contfrac.Convergents(value, maxGrade)
	for grade := 0; ; grade++ {
		conv, ok := seq.Next()
		if !ok {
			break
		}
		errAbs := new(big.Rat).Sub(target, conv.Rat())
		errAbs.Abs(errAbs)

		line := fmt.Sprintf("%-6d %-26s %-22.16g ", grade, conv.String(), conv.Float64())
		if errAbs.Sign() == 0 {
			fmt.Println(tableExactStyle.Render(line + "exact"))
		} else {
			errFloat, _ := errAbs.Float64()
			fmt.Println(line + fmt.Sprintf("%.3g", errFloat))
		}
	}
	return nil
}
