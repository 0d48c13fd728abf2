package process

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/hashicorp/go-hclog"

	"pyroxene.dev/launcher/internal/core/desktop"
	"pyroxene.dev/launcher/internal/core/ports"
)

// DefaultShell runs expanded command lines
const DefaultShell = "sh"

// ErrEmptyCommand is returned when an entry expands to nothing runnable
var ErrEmptyCommand = errors.New("command line is empty after expansion")

// Executor launches entries as detached shell commands
type Executor struct {
	shell    string
	terminal string
	env      []string
	logger   hclog.Logger
}

// NewExecutor creates an executor. terminal prefixes commands of
// entries marked Terminal=true.
func NewExecutor(terminal string, logger hclog.Logger) *Executor {
	return NewExecutorWithOptions(DefaultShell, terminal, nil, logger)
}

// NewExecutorWithOptions creates an executor with a custom shell and environment
func NewExecutorWithOptions(shell, terminal string, env []string, logger hclog.Logger) *Executor {
	if shell == "" {
		shell = DefaultShell
	}
	if env == nil {
		env = os.Environ()
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	return &Executor{
		shell:    shell,
		terminal: strings.TrimSpace(terminal),
		env:      env,
		logger:   logger.Named("launch"),
	}
}

// ShellCommand returns the line handed to the shell for entry
func (e *Executor) ShellCommand(entry *desktop.Entry) (string, error) {
	line := entry.CommandLine()
	if line == "" {
		return "", fmt.Errorf("%s: %w", entry.Name(), ErrEmptyCommand)
	}
	if entry.Terminal() && e.terminal != "" {
		line = e.terminal + " " + line
	}
	return line, nil
}

// Launch starts the entry's program and returns without waiting for it.
// The child runs in its own session so it outlives the launcher.
func (e *Executor) Launch(ctx context.Context, entry *desktop.Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	line, err := e.ShellCommand(entry)
	if err != nil {
		return err
	}

	// not CommandContext: cancelling the launcher must not kill the child
	cmd := exec.Command(e.shell, "-c", line)
	cmd.Env = e.env
	if entry.Path() != "" {
		cmd.Dir = desktopPath(entry.Path())
	}
	detach(cmd)

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %s: %w", entry.Name(), err)
	}

	e.logger.Debug("launched", "name", entry.Name(), "pid", cmd.Process.Pid, "command", line)

	// reap the child
	go func() {
		if err := cmd.Wait(); err != nil {
			e.logger.Debug("process exited", "name", entry.Name(), "error", err)
		}
	}()

	return nil
}

// desktopPath expands a leading ~ in a working directory
func desktopPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return home + path[1:]
		}
	}
	return path
}

var _ ports.Launcher = (*Executor)(nil)
