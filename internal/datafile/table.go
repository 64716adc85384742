package datafile

import (
	"bytes"
	"encoding/json"
)

// Table maps translation keys to translated strings for one language.
// Keys keep the position of their first insertion; a later Set on an
// existing key only replaces the value.
type Table struct {
	keys   []string
	values map[string]string
}

func NewTable() *Table {
	return &Table{values: make(map[string]string)}
}

func (t *Table) Set(key, value string) {
	if _, ok := t.values[key]; !ok {
		t.keys = append(t.keys, key)
	}
	t.values[key] = value
}

func (t *Table) Get(key string) (string, bool) {
	if t == nil {
		return "", false
	}
	v, ok := t.values[key]
	return v, ok
}

func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.keys)
}

// Keys returns the keys in insertion order.
func (t *Table) Keys() []string {
	if t == nil {
		return nil
	}
	out := make([]string, len(t.keys))
	copy(out, t.keys)
	return out
}

// MarshalJSON encodes the table as a flat compact object in insertion order,
// e.g. {"a":"A","b":"é"}. Non-ASCII text stays raw UTF-8 and HTML characters
// are left unescaped.
func (t *Table) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := t.AppendJSON(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// AppendJSON writes the compact JSON object for t to buf.
func (t *Table) AppendJSON(buf *bytes.Buffer) error {
	buf.WriteByte('{')
	if t != nil {
		for i, k := range t.keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := AppendJSONString(buf, k); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := AppendJSONString(buf, t.values[k]); err != nil {
				return err
			}
		}
	}
	buf.WriteByte('}')
	return nil
}

// AppendJSONString writes s as a JSON string literal without HTML escaping.
// Invalid UTF-8 bytes are written as the \ufffd escape. Parse rejects such
// input, so this only affects tables filled through Set.
func AppendJSONString(buf *bytes.Buffer, s string) error {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	buf.Write(bytes.TrimSuffix(tmp.Bytes(), []byte("\n")))
	return nil
}
