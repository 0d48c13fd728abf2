package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// NewLaunchCommand creates the launch command
func NewLaunchCommand(container *CLIContainer) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "launch <name>",
		Short: "Launch an application by name",
		Long: `Launch the application whose name matches exactly, ignoring case.
When there is no exact match the best ranked application is launched.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadEntries(cmd.Context(), container); err != nil {
				return err
			}

			entry, err := container.Service.Find(strings.Join(args, " "))
			if err != nil {
				return err
			}

			if dryRun {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", entry.Name(), entry.CommandLine())
				return nil
			}

			return container.Service.Launch(cmd.Context(), entry)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the command instead of running it")

	return cmd
}
