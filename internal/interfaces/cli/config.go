package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// NewConfigCommand creates the config command
func NewConfigCommand(container *CLIContainer) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Long: `Show the configuration after defaults, the config file, .env,
PYROXENE_* environment variables and command line flags are applied.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := container.Config
			if cfg == nil {
				return fmt.Errorf("configuration not loaded")
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, cfg)
			}

			source := cfg.Source
			if source == "" {
				source = "(defaults)"
			}
			fmt.Fprintf(out, "# source: %s\n", source)

			enc := yaml.NewEncoder(out)
			enc.SetIndent(2)
			if err := enc.Encode(cfg); err != nil {
				return fmt.Errorf("failed to encode configuration: %w", err)
			}
			return enc.Close()
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print configuration as JSON")

	return cmd
}
