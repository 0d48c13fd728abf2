package logging

import (
	"github.com/hashicorp/go-hclog"

	"pyroxene.dev/launcher/internal/core/desktop"
	"pyroxene.dev/launcher/internal/core/ports"
)

// RejectionReporter logs descriptor files that could not be loaded
type RejectionReporter struct {
	logger hclog.Logger
}

// NewRejectionReporter creates a reporter writing to logger
func NewRejectionReporter(logger hclog.Logger) *RejectionReporter {
	return &RejectionReporter{logger: logger.Named("store")}
}

// Reject implements ports.Reporter
func (r *RejectionReporter) Reject(path string, reason desktop.Reason, err error) {
	r.logger.Warn("failed to parse desktop file", "path", path, "reason", reason.String(), "error", err)
}

// DirectoryError implements ports.Reporter
func (r *RejectionReporter) DirectoryError(path string, err error) {
	r.logger.Warn("failed to read directory", "path", path, "error", err)
}

var _ ports.Reporter = (*RejectionReporter)(nil)
