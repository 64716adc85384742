package language

import (
	"strings"

	textlang "golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Parse interprets a data file code as a BCP 47 tag. Underscores are
// accepted as subtag separators ("zh_TW" -> zh-TW).
func Parse(code string) (textlang.Tag, bool) {
	if code == "" {
		return textlang.Und, false
	}
	tag, err := textlang.Parse(strings.ReplaceAll(code, "_", "-"))
	if err != nil {
		return textlang.Und, false
	}
	return tag, true
}

// DisplayName returns the English name of code, or "" if it is not a
// recognizable language tag.
func DisplayName(code string) string {
	tag, ok := Parse(code)
	if !ok {
		return ""
	}
	return display.English.Tags().Name(tag)
}

// NativeName returns the name of code in its own language, or "".
func NativeName(code string) string {
	tag, ok := Parse(code)
	if !ok {
		return ""
	}
	return display.Self.Name(tag)
}
