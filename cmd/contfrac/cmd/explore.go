package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/tinne26/contfrac/internal/parse"
	"github.com/tinne26/contfrac/internal/tui"
)

var exploreCmd = &cobra.Command{
	Use:   "explore [value]",
	Short: "Browse the convergents of a number interactively",
	Long: `Opens an interactive explorer for the convergents of a number.

Navigation:
  up/down   - move between grades
  g/G       - jump to the first/last convergent
  e         - enter a new value
  q         - quit`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExplore,
}

func init() {
	rootCmd.AddCommand(exploreCmd)
}

func runExplore(cmd *cobra.Command, args []string) error {
	input := "415/93"
	if len(args) == 1 {
		input = args[0]
	}
	value, err := parse.Value(input)
	if err != nil {
		return err
	}

	program := tea.NewProgram(tui.NewModel(value, input), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "explorer error: %v\n", err)
		return err
	}
	return nil
}
