package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"pyroxene.dev/launcher/internal/core/ranking"
)

// NewSearchCommand creates the search command
func NewSearchCommand(container *CLIContainer) *cobra.Command {
	var (
		asJSON bool
		limit  int
	)

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Rank applications by name similarity",
		Long: `Rank applications by how closely their name resembles the query.
Matching is case-sensitive. Results are limited to the configured
result limit unless --limit is given.

Examples:
  pyroxene search fire
  pyroxene search "text editor" --limit 5 --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadEntries(cmd.Context(), container); err != nil {
				return err
			}

			query := strings.Join(args, " ")

			var results []ranking.Result
			if cmd.Flags().Changed("limit") {
				results = ranking.Top(ranking.Rank(container.Service.Entries(), query), limit)
			} else {
				results = container.Service.Search(query)
			}

			return renderResults(cmd.OutOrStdout(), results, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print results as JSON")
	cmd.Flags().IntVarP(&limit, "limit", "n", ranking.DefaultLimit, "Maximum number of results (0 for no limit)")

	return cmd
}
