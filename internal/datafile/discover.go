package datafile

import (
	"errors"
	"os"
	"path/filepath"
	"regexp"

	"github.com/oukeidos/transdata/internal/apperrors"
	"github.com/oukeidos/transdata/internal/logger"
)

// TemplateCode is the reserved code of the template file (_.data).
const TemplateCode = "_"

// Ext is the extension of translation data files.
const Ext = ".data"

var fileNamePattern = regexp.MustCompile(`^([\p{L}\p{N}_]+)` + regexp.QuoteMeta(Ext) + `$`)

// Source is one discovered translation file.
type Source struct {
	Code string
	Path string
}

// CodeFromName returns the language code encoded in a data file name.
// ok is false for names that do not match <code>.data.
func CodeFromName(name string) (code string, ok bool) {
	m := fileNamePattern.FindStringSubmatch(name)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// Discover lists the translation files in dir ("" means the working
// directory), skipping the template. Sources come back in directory listing
// order. Nothing is opened here; use Load to read a source.
func Discover(dir string) ([]Source, error) {
	if dir == "" {
		dir = "."
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, apperrors.IO("read data directory", err)
	}

	sources := make([]Source, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		code, ok := CodeFromName(name)
		if !ok {
			continue
		}
		if code == TemplateCode {
			logger.Debug("Skipping template file", "path", name)
			continue
		}
		sources = append(sources, Source{Code: code, Path: filepath.Join(dir, name)})
	}
	logger.Debug("Discovered data files", "dir", dir, "count", len(sources))
	return sources, nil
}

// Load opens src, parses it and closes it before returning.
func Load(src Source) (*Table, error) {
	f, err := os.Open(src.Path)
	if err != nil {
		return nil, apperrors.IO("open data file", err)
	}
	defer f.Close()

	table, err := Parse(f)
	if errors.Is(err, ErrInvalidUTF8) {
		return nil, apperrors.Decode("decode "+src.Path, err)
	}
	if err != nil {
		return nil, apperrors.IO("parse "+src.Path, err)
	}
	logger.Debug("Parsed data file", "path", src.Path, "code", src.Code, "entries", table.Len())
	return table, nil
}
