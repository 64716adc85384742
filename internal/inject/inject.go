package inject

import (
	"bytes"
	"fmt"

	"github.com/oukeidos/transdata/internal/apperrors"
)

// DefaultPlaceholder marks where the generated JSON goes in a source template.
// It is a valid empty JS object literal, so the template still parses.
const DefaultPlaceholder = "{/*@TRANSLATION_DATA@*/}"

// Render replaces every occurrence of placeholder in template with data.
func Render(template []byte, placeholder string, data []byte) ([]byte, error) {
	if placeholder == "" {
		return nil, apperrors.Usage("placeholder is empty")
	}
	count := bytes.Count(template, []byte(placeholder))
	if count == 0 {
		return nil, apperrors.Usage(fmt.Sprintf("placeholder %q not found in template", placeholder))
	}
	return bytes.ReplaceAll(template, []byte(placeholder), data), nil
}
