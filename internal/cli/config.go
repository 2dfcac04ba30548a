package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pomoplan/pomoplan/internal/app"
	"github.com/pomoplan/pomoplan/internal/domain"
)

// newConfigCommand creates the config command with init and show subcommands.
func newConfigCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		Long: `Manage pomoplan configuration.

Configuration is merged from three layers, later taking precedence:
  1. Built-in defaults
  2. The global config file (~/.config/pomoplan/config.toml)
  3. A local .pomoplan.toml in the working directory`,
	}

	cmd.AddCommand(
		newConfigInitCommand(c),
		newConfigShowCommand(c),
	)

	return cmd
}

func newConfigInitCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the global config file from the default template",
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.InitConfigUseCase()
			out, err := uc.Execute(cmd.Context())
			if err != nil {
				if errors.Is(err, domain.ErrConfigExists) {
					return fmt.Errorf("config file already exists")
				}
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", out.Path)
			return nil
		},
	}
}

func newConfigShowCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective merged configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.ShowConfigUseCase()
			out, err := uc.Execute(cmd.Context())
			if err != nil {
				return err
			}

			_, _ = fmt.Fprint(cmd.OutOrStdout(), out.TOML)
			return nil
		},
	}
}
