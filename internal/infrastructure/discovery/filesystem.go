package discovery

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-hclog"

	"pyroxene.dev/launcher/internal/core/ports"
)

// Extension is the suffix of descriptor files
const Extension = ".desktop"

// FileSystemDiscovery finds descriptor files by scanning directories.
// Scanning is one level deep and happens once per Discover call.
type FileSystemDiscovery struct {
	directories []string
	reporter    ports.Reporter
	logger      hclog.Logger
}

// NewFileSystemDiscovery creates a discovery over the given root directories
func NewFileSystemDiscovery(directories []string, reporter ports.Reporter, logger hclog.Logger) *FileSystemDiscovery {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &FileSystemDiscovery{
		directories: directories,
		reporter:    reporter,
		logger:      logger.Named("discovery"),
	}
}

// Discover returns descriptor paths in root order, then directory order.
// Missing roots are skipped quietly; unreadable roots are reported and skipped.
func (d *FileSystemDiscovery) Discover(ctx context.Context) []string {
	var paths []string

	for _, dir := range d.directories {
		if ctx.Err() != nil {
			break
		}

		expandedDir := ExpandPath(dir)
		d.logger.Debug("scanning directory", "path", expandedDir)

		found, err := d.scanDirectory(expandedDir)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				d.logger.Debug("directory does not exist", "path", expandedDir)
				continue
			}
			if d.reporter != nil {
				d.reporter.DirectoryError(expandedDir, err)
			}
			continue
		}

		paths = append(paths, found...)
	}

	d.logger.Debug("discovered descriptor files", "count", len(paths))
	return paths
}

// scanDirectory lists descriptor files directly inside dirPath
func (d *FileSystemDiscovery) scanDirectory(dirPath string) ([]string, error) {
	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return nil, err
	}

	var found []string
	for _, entry := range entries {
		if !strings.HasSuffix(entry.Name(), Extension) {
			continue
		}

		path := filepath.Join(dirPath, entry.Name())

		// follow symlinks; only regular files are descriptors
		info, err := os.Stat(path)
		if err != nil {
			d.logger.Debug("skipping unreadable entry", "path", path, "error", err)
			continue
		}
		if !info.Mode().IsRegular() {
			continue
		}

		found = append(found, path)
	}

	return found, nil
}

// ExpandPath expands a leading ~ to the user home directory
func ExpandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(homeDir, path[1:])
	}
	return path
}

// OSSource reads descriptor files from disk
type OSSource struct{}

// ReadFile implements ports.Source
func (OSSource) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

var (
	_ ports.Discoverer = (*FileSystemDiscovery)(nil)
	_ ports.Source     = OSSource{}
)
