// Package cli provides the command-line interface for pomoplan.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/pomoplan/pomoplan/internal/app"
)

// Command group IDs.
const (
	groupSetup = "setup"
	groupTask  = "task"
	groupTimer = "timer"
)

// NewRootCommand creates the root command for pomoplan.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "pomoplan",
		Short: "Pomodoro task planner",
		Long: `pomoplan is a pomodoro timer with a task list.

Describe your day in plain language and 'pomoplan plan' turns it into
tasks with pomodoro estimates. Run 'pomoplan' with no arguments to open
the timer.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			// Default: launch the timer TUI
			return runTUI(c)
		},
	}

	root.AddGroup(
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
		&cobra.Group{ID: groupTask, Title: "Task Management:"},
		&cobra.Group{ID: groupTimer, Title: "Timer:"},
	)

	configCmd := newConfigCommand(c)
	configCmd.GroupID = groupSetup

	newCmd := newNewCommand(c)
	newCmd.GroupID = groupTask

	listCmd := newListCommand(c)
	listCmd.GroupID = groupTask

	doneCmd := newDoneCommand(c)
	doneCmd.GroupID = groupTask

	rmCmd := newRmCommand(c)
	rmCmd.GroupID = groupTask

	planCmd := newPlanCommand(c)
	planCmd.GroupID = groupTask

	tuiCmd := newTUICommand(c)
	tuiCmd.GroupID = groupTimer

	root.AddCommand(
		configCmd,
		newCmd,
		listCmd,
		doneCmd,
		rmCmd,
		planCmd,
		tuiCmd,
	)

	return root
}
