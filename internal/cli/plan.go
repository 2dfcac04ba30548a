package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pomoplan/pomoplan/internal/app"
	"github.com/pomoplan/pomoplan/internal/domain"
	"github.com/pomoplan/pomoplan/internal/usecase"
)

// newPlanCommand creates the plan command for extracting tasks from text.
func newPlanCommand(c *app.Container) *cobra.Command {
	var save bool

	cmd := &cobra.Command{
		Use:   "plan [description]",
		Short: "Turn a description of your day into tasks",
		Long: `Extract a task plan from a free-form description.

The description is sent to the Anthropic API (` + apiKeyEnvHelp + ` must be
set) and comes back as a list of task suggestions with pomodoro
estimates. Without --save the suggestions are only printed.

If extraction fails for any reason the command prints an empty plan;
it never aborts.

Examples:
  # Preview a plan
  pomoplan plan "write the report this morning, then 30 min of email"

  # Read the description from stdin
  cat day.txt | pomoplan plan

  # Save the suggestions as tasks
  pomoplan plan --save "write the report, review PRs after lunch"`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			description, err := readDescription(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			uc := c.PlanTasksUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.PlanTasksInput{
				Description:      description,
				PomodoroDuration: c.Settings().PomodoroDuration,
				Save:             save,
			})
			if err != nil {
				return err
			}

			printPlan(cmd.OutOrStdout(), out, save)
			return nil
		},
	}

	cmd.Flags().BoolVar(&save, "save", false, "Create tasks from the suggestions")

	return cmd
}

const apiKeyEnvHelp = "ANTHROPIC_API_KEY"

// readDescription takes the description from the argument, or from stdin
// when no argument was given.
func readDescription(stdin io.Reader, args []string) (string, error) {
	if len(args) > 0 {
		return strings.TrimSpace(args[0]), nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	desc := strings.TrimSpace(string(data))
	if desc == "" {
		return "", domain.ErrEmptyDescription
	}
	return desc, nil
}

func printPlan(w io.Writer, out *usecase.PlanTasksOutput, saved bool) {
	if len(out.Proposals) == 0 {
		_, _ = fmt.Fprintln(w, "No tasks extracted.")
		return
	}

	for i, p := range out.Proposals {
		if saved {
			_, _ = fmt.Fprintf(w, "Created task #%d:\n", out.TaskIDs[i])
		} else {
			_, _ = fmt.Fprintf(w, "Task %d:\n", i+1)
		}
		_, _ = fmt.Fprintf(w, "  Title: %s\n", p.Title)
		if p.Duration > 0 {
			_, _ = fmt.Fprintf(w, "  Duration: %d min\n", p.Duration)
		}
		if p.Notes != "" {
			_, _ = fmt.Fprintf(w, "  Notes: %s\n", firstLine(p.Notes))
		}
		if i < len(out.Proposals)-1 {
			_, _ = fmt.Fprintln(w, "")
		}
	}

	if saved {
		_, _ = fmt.Fprintf(w, "\nCreated %d task(s)\n", len(out.TaskIDs))
	} else {
		_, _ = fmt.Fprintf(w, "\nRun again with --save to create these tasks\n")
	}
}
