package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/pomoplan/pomoplan/internal/app"
	"github.com/pomoplan/pomoplan/internal/tui"
)

// newTUICommand creates the tui command for launching the interactive TUI.
// Running `pomoplan` with no arguments does the same thing.
func newTUICommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Launch the interactive timer",
		Long:  `Launch the interactive terminal user interface with the timer and task list.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runTUI(c)
		},
	}
	return cmd
}

// runTUI starts the bubbletea program.
func runTUI(c *app.Container) error {
	model := tui.New(c)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
