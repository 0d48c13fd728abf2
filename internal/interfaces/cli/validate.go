package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewValidateCommand creates the validate command
func NewValidateCommand(container *CLIContainer) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>...",
		Short: "Check desktop files",
		Long: `Parse each desktop file and report whether it yields an application.

Files skipped on purpose (hidden entries, non-applications, entries
for other desktops) are listed but do not fail validation. Any other
problem makes the command exit with status 1.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if container.Service == nil {
				return fmt.Errorf("launcher service not initialized")
			}

			out := cmd.OutOrStdout()
			failed := 0

			for _, res := range container.Service.Validate(args) {
				switch {
				case res.OK():
					fmt.Fprintf(out, "ok    %s (%s)\n", res.Path, res.Entry.Name())
				case res.Reportable():
					failed++
					fmt.Fprintf(out, "FAIL  %s: %v\n", res.Path, res.Err)
				default:
					fmt.Fprintf(out, "skip  %s: %s\n", res.Path, res.Reason)
				}
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d files failed validation", failed, len(args))
			}
			return nil
		},
	}
}
