package cli

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"runtime/debug"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"pyroxene.dev/launcher/internal/application/services"
	"pyroxene.dev/launcher/internal/config"
)

var (
	Version   = "dev"     // Overridden by ldflags
	BuildTime = "unknown" // Overridden by ldflags
)

// CLIContainer holds all the dependencies for CLI commands
type CLIContainer struct {
	Config  *config.Config
	Service *services.LauncherService
	Logger  hclog.Logger

	// MainContainer is the *di.Container, kept untyped to avoid an import cycle.
	// It wires Config, Service and Logger once flags are parsed.
	MainContainer interface{}
}

// initializer is implemented by the DI container
type initializer interface {
	Initialize(configPath string, overrides config.Overrides) error
}

// NewRootCommand creates the root command, which opens the menu
func NewRootCommand(container *CLIContainer) *cobra.Command {
	var rootCmd = &cobra.Command{
		Use:   "pyroxene",
		Short: "Pyroxene - a keyboard driven application launcher",
		Long: `Pyroxene finds the applications installed on this system, groups them
into categories and lets you search them by name.

Run without arguments to open the interactive menu. Type to search,
use the arrow keys to move, Enter to launch and Esc to quit.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := initializeContainer(cmd, container); err != nil {
				return fmt.Errorf("failed to initialize: %w", err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(cmd.Context(), container)
		},
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf("{{.Name}} version {{.Version}}\nBuild time: %s\nGo version: %s\nPlatform: %s/%s\n",
		BuildTime, goVersion(), runtime.GOOS, runtime.GOARCH))

	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().String("config", "", "Config file path (default is $XDG_CONFIG_HOME/pyroxene/config.yaml)")
	rootCmd.PersistentFlags().StringSlice("desktop", nil, "Desktop environment name used by OnlyShowIn/NotShowIn (repeatable)")
	rootCmd.PersistentFlags().StringSlice("dir", nil, "Directory to search for .desktop files (repeatable)")

	rootCmd.AddCommand(NewListCommand(container))
	rootCmd.AddCommand(NewSearchCommand(container))
	rootCmd.AddCommand(NewValidateCommand(container))
	rootCmd.AddCommand(NewLaunchCommand(container))
	rootCmd.AddCommand(NewConfigCommand(container))

	return rootCmd
}

// goVersion returns the Go version used to build the binary
func goVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		return info.GoVersion
	}
	return "unknown"
}

// initializeContainer reads persistent flags and hands them to the DI container
func initializeContainer(cmd *cobra.Command, container *CLIContainer) error {
	mainContainer, ok := container.MainContainer.(initializer)
	if !ok {
		// container was wired directly
		return nil
	}

	flags := cmd.Flags()
	configPath, _ := flags.GetString("config")
	debugMode, _ := flags.GetBool("debug")
	desktops, _ := flags.GetStringSlice("desktop")
	dirs, _ := flags.GetStringSlice("dir")

	return mainContainer.Initialize(configPath, config.Overrides{
		SearchDirs: dirs,
		Desktops:   desktops,
		Debug:      debugMode,
	})
}

// loadEntries runs discovery once for commands that need the store
func loadEntries(ctx context.Context, container *CLIContainer) error {
	if container.Service == nil {
		return fmt.Errorf("launcher service not initialized")
	}
	return container.Service.Load(ctx)
}

// Execute adds all child commands to the root command and runs it.
func Execute(ctx context.Context, container *CLIContainer) {
	rootCmd := NewRootCommand(container)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
