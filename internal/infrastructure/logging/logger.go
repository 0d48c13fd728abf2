package logging

import (
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
)

// Name is the root logger name
const Name = "pyroxene"

// Options configures the launcher logger
type Options struct {
	Level  hclog.Level
	Debug  bool
	Output io.Writer
}

// New creates the launcher logger. Debug forces the debug level.
// Output defaults to stderr so it never mixes with command output.
func New(opts Options) hclog.Logger {
	level := opts.Level
	if level == hclog.NoLevel {
		level = hclog.Warn
	}
	if opts.Debug {
		level = hclog.Debug
	}

	output := opts.Output
	if output == nil {
		output = os.Stderr
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   Name,
		Level:  level,
		Output: output,
	})
}
