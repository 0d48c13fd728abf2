package di

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/hashicorp/go-hclog"

	"pyroxene.dev/launcher/internal/application/services"
	"pyroxene.dev/launcher/internal/config"
	"pyroxene.dev/launcher/internal/core/desktop"
	"pyroxene.dev/launcher/internal/infrastructure/discovery"
	"pyroxene.dev/launcher/internal/infrastructure/logging"
	"pyroxene.dev/launcher/internal/infrastructure/process"
	"pyroxene.dev/launcher/internal/interfaces/cli"
)

// Container holds all application dependencies
type Container struct {
	// Configuration
	Config *config.Config
	Loader *config.Loader

	// Infrastructure
	Logger    hclog.Logger
	Reporter  *logging.RejectionReporter
	Discovery *discovery.FileSystemDiscovery
	Executor  *process.Executor

	// Application services
	LauncherService *services.LauncherService

	// CLI
	CLIContainer *cli.CLIContainer

	logOutput io.Writer

	// guards Logger, which signal handlers read while Initialize runs
	mu sync.RWMutex
}

// NewContainer creates the container. Components are wired by Initialize
// once command line flags are known.
func NewContainer() *Container {
	c := &Container{
		Loader:    &config.Loader{},
		Logger:    hclog.NewNullLogger(),
		logOutput: os.Stderr,
	}
	c.CLIContainer = &cli.CLIContainer{
		Logger:        c.Logger,
		MainContainer: c,
	}
	return c
}

// Initialize loads configuration and wires every component
func (c *Container) Initialize(configPath string, overrides config.Overrides) error {
	// 1. Load configuration
	if configPath != "" {
		c.Loader.Path = configPath
	}
	cfg, err := c.Loader.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	cfg.Apply(overrides)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	c.Config = cfg

	// 2. Logging
	logger := logging.New(logging.Options{
		Level:  cfg.Level(),
		Debug:  cfg.Debug,
		Output: c.logOutput,
	})
	c.mu.Lock()
	c.Logger = logger
	c.mu.Unlock()
	c.Reporter = logging.NewRejectionReporter(c.Logger)

	// 3. Infrastructure
	c.Discovery = discovery.NewFileSystemDiscovery(cfg.SearchDirs, c.Reporter, c.Logger)
	c.Executor = process.NewExecutor(cfg.Terminal, c.Logger)

	// 4. Application services
	c.LauncherService, err = services.NewLauncherService(
		c.Discovery,
		discovery.OSSource{},
		desktop.NewParser(cfg.Desktops...),
		c.Reporter,
		c.Executor,
		c.Logger,
		services.LauncherOptions{
			Workers:     cfg.Workers,
			ResultLimit: cfg.ResultLimit,
			CacheSize:   cfg.CacheSize,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to create launcher service: %w", err)
	}

	// 5. CLI container
	c.CLIContainer.Config = c.Config
	c.CLIContainer.Service = c.LauncherService
	c.CLIContainer.Logger = c.Logger

	c.Logger.Debug("container initialized", "config", cfg.Source, "dirs", cfg.SearchDirs, "desktops", cfg.Desktops)
	return nil
}

// GetCLIContainer returns the CLI container for command execution
func (c *Container) GetCLIContainer() *cli.CLIContainer {
	return c.CLIContainer
}

// GetLogger returns the current logger. It is safe to call while Initialize runs.
func (c *Container) GetLogger() hclog.Logger {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Logger
}

// Shutdown releases resources held by the container.
// Launched programs run detached and are left alone.
func (c *Container) Shutdown(ctx context.Context) error {
	c.GetLogger().Debug("shutting down")
	return nil
}
