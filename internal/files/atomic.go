package files

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/oukeidos/transdata/internal/apperrors"
	"github.com/oukeidos/transdata/internal/logger"
)

// AtomicWrite writes data to a temp file and renames it into place.
func AtomicWrite(path string, data []byte, perms os.FileMode) error {
	return AtomicWriteTo(path, bytes.NewReader(data), perms)
}

// AtomicWriteTo streams src into a temp file next to path and renames it
// into place. On any failure the temp file is removed and path is untouched.
func AtomicWriteTo(path string, src io.WriterTo, perms os.FileMode) error {
	if err := RejectSymlinkPath(path); err != nil {
		return err
	}
	dir := filepath.Dir(path)
	tmpFile, err := os.CreateTemp(dir, "transdata-*.tmp")
	if err != nil {
		return apperrors.IO("create temp file", err)
	}
	tmpPath := tmpFile.Name()

	cleanup := true
	defer func() {
		if cleanup {
			tmpFile.Close()
			os.Remove(tmpPath)
		}
	}()

	if err := tmpFile.Chmod(perms); err != nil {
		return apperrors.IO("set temp file permissions", err)
	}
	if _, err := src.WriteTo(tmpFile); err != nil {
		return apperrors.IO("write temp file", err)
	}
	if err := tmpFile.Sync(); err != nil {
		return apperrors.IO("sync temp file", err)
	}
	if err := tmpFile.Close(); err != nil {
		return apperrors.IO("close temp file", err)
	}
	if err := renameAtomic(tmpPath, path); err != nil {
		return apperrors.IO("rename temp file to "+path, err)
	}
	cleanup = false

	if err := syncDir(dir); err != nil {
		logger.Warn("Directory fsync failed (safe to ignore on some platforms)", "path", dir, "error", err)
	}
	return nil
}

func syncDir(dir string) error {
	if runtime.GOOS == "windows" {
		logger.Debug("Directory fsync not supported on Windows; skipping", "path", dir)
		return nil
	}
	f, err := os.Open(dir)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Sync()
}
