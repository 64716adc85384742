package catalog

import (
	"strings"

	"github.com/oukeidos/transdata/internal/datafile"
)

// Translator looks up texts in the table selected for one language.
type Translator struct {
	lang  string
	table *datafile.Table
}

// NewTranslator selects the table for lang, falling back to its primary
// subtag ("en-us" -> "en"). With no match every text translates to itself.
func NewTranslator(rs *ResultSet, lang string) *Translator {
	if t, ok := rs.Table(lang); ok {
		return &Translator{lang: lang, table: t}
	}
	if primary, _, found := strings.Cut(lang, "-"); found {
		if t, ok := rs.Table(primary); ok {
			return &Translator{lang: primary, table: t}
		}
	}
	return &Translator{}
}

// Language returns the code of the selected table, or "" if none matched.
func (tr *Translator) Language() string {
	return tr.lang
}

func (tr *Translator) T(text string) string {
	if v, ok := tr.table.Get(text); ok {
		return v
	}
	return text
}
