package files

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/oukeidos/transdata/internal/apperrors"
)

// RejectSymlinkPath returns an error if the path or any existing ancestor is
// a symlink, so generated files never land outside the intended tree.
func RejectSymlinkPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return apperrors.Usage("output path is empty")
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return apperrors.IO("resolve absolute path", err)
	}

	return rejectSymlinkComponents(abs)
}

func rejectSymlinkComponents(path string) error {
	volume := filepath.VolumeName(path)
	rest := strings.TrimLeft(path[len(volume):], string(os.PathSeparator))

	var current string
	if volume != "" {
		current = volume + string(os.PathSeparator)
	} else if filepath.IsAbs(path) {
		current = string(os.PathSeparator)
	}

	for _, part := range strings.Split(rest, string(os.PathSeparator)) {
		if part == "" {
			continue
		}
		current = filepath.Join(current, part)
		info, err := os.Lstat(current)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return nil
			}
			return apperrors.IO("access path", err)
		}
		if info.Mode()&os.ModeSymlink != 0 {
			return apperrors.Usage(fmt.Sprintf("refusing to write to symlink path: %s (symlink detected at %s)", path, current))
		}
		isReparse, err := isReparsePoint(current)
		if err != nil {
			return apperrors.IO("check reparse point "+current, err)
		}
		if isReparse {
			return apperrors.Usage(fmt.Sprintf("refusing to write to symlink path: %s (reparse point detected at %s)", path, current))
		}
	}
	return nil
}
