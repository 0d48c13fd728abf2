package cli

import (
	"github.com/spf13/cobra"
)

// NewListCommand creates the list command
func NewListCommand(container *CLIContainer) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List applications grouped by category",
		Long: `List every application found in the search directories, grouped
into categories. Categories without applications are omitted and
members are sorted by name.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadEntries(cmd.Context(), container); err != nil {
				return err
			}
			return renderCategories(cmd.OutOrStdout(), container.Service.Categories(), asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print categories as JSON")

	return cmd
}
