// Package fileutil holds small filesystem helpers for the CLI.
package fileutil

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// WriteCover writes cover image bytes to path, creating parent directories
// as needed.
func WriteCover(path string, data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("no cover data to write")
	}

	dir := filepath.Dir(path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create cover directory: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write cover file: %w", err)
	}

	slog.Info("Wrote cover", "path", path, "bytes", len(data))
	return nil
}

// FileExists reports whether path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
