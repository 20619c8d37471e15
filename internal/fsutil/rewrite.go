// Package fsutil rewrites files in place behind a backup copy.
package fsutil

import (
	"errors"
	"fmt"
	"io"
	"os"

	"altkey/internal/logging"
	"altkey/internal/paths"
)

// ErrBackup is returned when the backup copy could not be written. The
// original file is untouched in that case.
var ErrBackup = errors.New("failed to write backup")

// TransformFunc maps the current file contents to the new contents
type TransformFunc func(original []byte) ([]byte, error)

// RewriteWithBackup locks path, reads it, copies it verbatim to
// paths.BackupPath(path) and then replaces its contents with the result of
// transform. The original is only overwritten after the backup is complete.
// Returns the backup path.
func RewriteWithBackup(path string, transform TransformFunc) (string, error) {
	file, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	if err := lockFile(file); err != nil {
		return "", fmt.Errorf("failed to acquire lock: %w", err)
	}
	defer unlockFile(file)

	info, err := file.Stat()
	if err != nil {
		return "", fmt.Errorf("failed to stat %s: %w", path, err)
	}

	original, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	updated, err := transform(original)
	if err != nil {
		return "", err
	}

	backup := paths.BackupPath(path)
	if err := os.WriteFile(backup, original, info.Mode().Perm()); err != nil {
		return "", fmt.Errorf("%w %s: %w", ErrBackup, backup, err)
	}
	logging.Logger.Debug("Backup written", "path", backup, "bytes", len(original))

	if err := file.Truncate(0); err != nil {
		return backup, fmt.Errorf("failed to truncate file: %w", err)
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return backup, fmt.Errorf("failed to seek to beginning: %w", err)
	}
	if _, err := file.Write(updated); err != nil {
		return backup, fmt.Errorf("failed to write %s: %w", path, err)
	}

	logging.Logger.Debug("File rewritten", "path", path, "bytes", len(updated))
	return backup, nil
}
