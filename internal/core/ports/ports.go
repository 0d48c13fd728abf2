package ports

import (
	"context"

	"pyroxene.dev/launcher/internal/core/desktop"
)

// Discoverer enumerates descriptor file paths from the configured roots
type Discoverer interface {
	// Discover returns descriptor paths in traversal order.
	// Unreadable roots are reported and skipped, never returned as errors.
	Discover(ctx context.Context) []string
}

// Source reads descriptor file contents
type Source interface {
	ReadFile(path string) ([]byte, error)
}

// Reporter receives reportable discovery failures
type Reporter interface {
	// Reject reports a descriptor that could not be used
	Reject(path string, reason desktop.Reason, err error)

	// DirectoryError reports a root that could not be enumerated
	DirectoryError(path string, err error)
}

// Launcher starts the program described by an entry
type Launcher interface {
	Launch(ctx context.Context, entry *desktop.Entry) error
}
