package catalog

import (
	"bytes"
	"io"

	"github.com/oukeidos/transdata/internal/datafile"
	"github.com/oukeidos/transdata/internal/logger"
)

// ResultSet maps language codes to their translation tables in discovery order.
type ResultSet struct {
	codes  []string
	tables map[string]*datafile.Table
}

func NewResultSet() *ResultSet {
	return &ResultSet{tables: make(map[string]*datafile.Table)}
}

// Build discovers every data file in dir and parses it into a ResultSet.
// The first filesystem error aborts the build.
func Build(dir string) (*ResultSet, error) {
	sources, err := datafile.Discover(dir)
	if err != nil {
		return nil, err
	}
	rs := NewResultSet()
	for _, src := range sources {
		table, err := datafile.Load(src)
		if err != nil {
			return nil, err
		}
		rs.Put(src.Code, table)
	}
	logger.Info("Built translation data", "languages", rs.Len())
	return rs, nil
}

// Put stores table under code, replacing any earlier table for that code.
func (rs *ResultSet) Put(code string, table *datafile.Table) {
	if _, ok := rs.tables[code]; !ok {
		rs.codes = append(rs.codes, code)
	} else {
		logger.Warn("Replacing translation table", "code", code)
	}
	rs.tables[code] = table
}

func (rs *ResultSet) Table(code string) (*datafile.Table, bool) {
	if rs == nil {
		return nil, false
	}
	t, ok := rs.tables[code]
	return t, ok
}

// Codes returns language codes in discovery order.
func (rs *ResultSet) Codes() []string {
	if rs == nil {
		return nil
	}
	out := make([]string, len(rs.codes))
	copy(out, rs.codes)
	return out
}

func (rs *ResultSet) Len() int {
	if rs == nil {
		return 0
	}
	return len(rs.codes)
}

// MarshalJSON encodes the result set as one compact object without key sorting,
// e.g. {"en":{"a":"A"},"ja":{"a":"ア"}}. There are no spaces after separators
// and non-ASCII text is written as raw UTF-8 rather than \uXXXX escapes.
func (rs *ResultSet) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, code := range rs.Codes() {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := datafile.AppendJSONString(&buf, code); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := rs.tables[code].AppendJSON(&buf); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// WriteTo writes the JSON document followed by a newline. The document is
// fully encoded before anything is written.
func (rs *ResultSet) WriteTo(w io.Writer) (int64, error) {
	data, err := rs.MarshalJSON()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(append(data, '\n'))
	return int64(n), err
}
