package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/pomoplan/pomoplan/internal/app"
	"github.com/pomoplan/pomoplan/internal/domain"
	"github.com/pomoplan/pomoplan/internal/usecase"
)

// newNewCommand creates the new command for creating tasks.
func newNewCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Title    string
		Notes    string
		From     string
		Expected int
		DryRun   bool
	}

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a new task",
		Long: `Create a new task.

Examples:
  # Create a task
  pomoplan new --title "Write report"

  # Create a task with an estimate of 3 pomodoros
  pomoplan new --title "Write report" --expected 3

  # Create tasks from a Markdown file (multiple tasks supported)
  pomoplan new --from tasks.md

  # Preview tasks from a file without creating
  pomoplan new --from tasks.md --dry-run

File format for --from:
  ---
  title: Write report
  expected: 3
  ---
  Notes here.

  ---
  title: Second task
  ---`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.From != "" {
				return importTasksFromFile(cmd, c, opts.From, opts.DryRun)
			}

			if opts.Title == "" {
				return fmt.Errorf("required flag(s) \"title\" not set")
			}

			uc := c.NewTaskUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.NewTaskInput{
				Title:    opts.Title,
				Notes:    opts.Notes,
				Expected: opts.Expected,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created task #%d\n", out.TaskID)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Title, "title", "", "Task title (required unless --from is used)")
	cmd.Flags().StringVar(&opts.Notes, "notes", "", "Task notes")
	cmd.Flags().IntVar(&opts.Expected, "expected", 0, "Expected number of pomodoros")
	cmd.Flags().StringVar(&opts.From, "from", "", "Create tasks from a Markdown file")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Preview tasks without creating (requires --from)")

	return cmd
}

// importTasksFromFile creates tasks from a Markdown file.
func importTasksFromFile(cmd *cobra.Command, c *app.Container, filePath string, dryRun bool) error {
	content, err := os.ReadFile(filePath) //nolint:gosec // Path comes from the user's own flag
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	uc := c.ImportTasksUseCase()
	out, err := uc.Execute(cmd.Context(), usecase.ImportTasksInput{
		Content: string(content),
		DryRun:  dryRun,
	})
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if dryRun {
		_, _ = fmt.Fprintln(w, "Dry run - tasks that would be created:")
		_, _ = fmt.Fprintln(w, "")
	}

	for i, task := range out.Tasks {
		if dryRun {
			_, _ = fmt.Fprintf(w, "Task %d:\n", i+1)
		} else {
			_, _ = fmt.Fprintf(w, "Created task #%d:\n", task.ID)
		}
		_, _ = fmt.Fprintf(w, "  Title: %s\n", task.Title)
		if task.Expected > 0 {
			_, _ = fmt.Fprintf(w, "  Expected: %d pomodoros\n", task.Expected)
		}
		if task.Notes != "" {
			_, _ = fmt.Fprintf(w, "  Notes: %s\n", firstLine(task.Notes))
		}
		if i < len(out.Tasks)-1 {
			_, _ = fmt.Fprintln(w, "")
		}
	}

	if !dryRun {
		_, _ = fmt.Fprintf(w, "\nCreated %d task(s)\n", len(out.Tasks))
	}

	return nil
}

// newListCommand creates the list command for listing tasks.
func newListCommand(c *app.Container) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long: `Display a list of tasks.

By default, tasks already marked done are hidden.
Use --all to show every task.

Examples:
  # List open tasks
  pomoplan list

  # List all tasks including done
  pomoplan list --all
  pomoplan list -a`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.ListTasksUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ListTasksInput{IncludeDone: all})
			if err != nil {
				return err
			}

			printTaskList(cmd.OutOrStdout(), out.Tasks)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "Show all tasks including done")

	return cmd
}

// printTaskList prints tasks in TSV format.
func printTaskList(w io.Writer, tasks []*domain.Task) {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	defer func() { _ = tw.Flush() }()

	_, _ = fmt.Fprintln(tw, "ID\tSTATUS\tPOMODOROS\tTITLE")

	for _, task := range tasks {
		_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n",
			task.ID,
			task.Status,
			formatPomodoros(task),
			task.Title,
		)
	}
}

// formatPomodoros renders progress as "completed/expected" or just the
// completed count when no estimate is set.
func formatPomodoros(task *domain.Task) string {
	if task.ExpectedPomodoros > 0 {
		return fmt.Sprintf("%d/%d", task.CompletedPomodoros, task.ExpectedPomodoros)
	}
	return strconv.Itoa(task.CompletedPomodoros)
}

// newDoneCommand creates the done command for completing tasks.
func newDoneCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done <task-id>",
		Short: "Mark a task as done",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}

			uc := c.CompleteTaskUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.CompleteTaskInput{TaskID: id})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Completed task #%d: %s\n", out.Task.ID, out.Task.Title)
			return nil
		},
	}

	return cmd
}

// newRmCommand creates the rm command for deleting tasks.
func newRmCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <task-id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}

			uc := c.DeleteTaskUseCase()
			if err := uc.Execute(cmd.Context(), usecase.DeleteTaskInput{TaskID: id}); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted task #%d\n", id)
			return nil
		},
	}

	return cmd
}

// parseTaskID parses a task ID argument, accepting "#3" and "3".
func parseTaskID(arg string) (int, error) {
	if len(arg) > 0 && arg[0] == '#' {
		arg = arg[1:]
	}
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid task ID: %q", arg)
	}
	return id, nil
}

// firstLine returns the first line of s, truncated for display.
func firstLine(s string) string {
	for i, r := range s {
		if r == '\n' {
			s = s[:i] + " ..."
			break
		}
	}
	if runewidth.StringWidth(s) > 60 {
		s = runewidth.Truncate(s, 60, "...")
	}
	return s
}
