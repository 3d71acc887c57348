package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/msto63/timespan/internal/tui/converter"
	"github.com/msto63/timespan/pkg/timespan"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Interactive template converter",
	Long: `Starts a terminal UI with a template field and a value field. Every
keystroke re-parses the value and shows its seconds, units and renderings
with the configured default and signed templates.

Keys: tab / shift+tab switch fields, esc or ctrl+c quit.`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	model := converter.New(converter.Config{
		Template:       current.DefaultFormat,
		SignedTemplate: current.SignedFormat,
		Engine:         timespan.DefaultEngine(),
	})

	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	_, err := p.Run()
	return err
}
