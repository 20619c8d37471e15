//go:build !unix && !windows

package fsutil

import "os"

// lockFile is a no-op where advisory locks are unavailable
func lockFile(file *os.File) error { return nil }

// unlockFile is a no-op where advisory locks are unavailable
func unlockFile(file *os.File) error { return nil }
