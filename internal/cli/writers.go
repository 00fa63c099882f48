package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/mindlog/internal/output"
	htmlout "github.com/jmylchreest/mindlog/internal/output/html"
	jsonout "github.com/jmylchreest/mindlog/internal/output/json"
	pngout "github.com/jmylchreest/mindlog/internal/output/png"
	"github.com/jmylchreest/mindlog/internal/output/svg"
)

// writers bundles the output registry with the PNG writer, which needs a
// renderer once the logger exists.
type writers struct {
	registry *output.Registry
	png      *pngout.Plugin
}

func newWriters() *writers {
	png := pngout.New(nil)
	return &writers{
		registry: output.NewRegistry(png, svg.New(), htmlout.New(), jsonout.New()),
		png:      png,
	}
}

// writeFiles writes generated files under dir in name order and returns the
// written paths. With dryRun nothing touches the disk.
func writeFiles(dir string, files map[string][]byte, dryRun bool, logger hclog.Logger) ([]string, error) {
	dir, err := expandHome(dir)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	slices.Sort(names)

	paths := make([]string, 0, len(names))
	for _, name := range names {
		path := filepath.Join(dir, name)
		if dryRun {
			logger.Debug("dry run, skipping write", "path", path, "bytes", len(files[name]))
		} else if err := writeFile(path, files[name], logger); err != nil {
			return paths, fmt.Errorf("failed to write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// expandHome resolves a leading ~ for directories given in quotes or via
// configuration, where the shell has not expanded it.
func expandHome(dir string) (string, error) {
	if dir != "~" && !strings.HasPrefix(dir, "~/") {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, dir[1:]), nil
}

// writeFile writes content to path, creating parent directories. An existing
// file is kept as <path>.backup.
func writeFile(path string, content []byte, logger hclog.Logger) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	backup(path, logger)

	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// backup moves an existing file aside. Failures are logged and the write goes ahead.
func backup(path string, logger hclog.Logger) {
	if _, err := os.Stat(path); err != nil {
		return
	}
	target := path + ".backup"
	if err := os.Rename(path, target); err != nil {
		logger.Warn("could not create backup", "path", path, "error", err)
		return
	}
	logger.Info("created backup", "path", target)
}
