package datafile

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// maxLineSize bounds a single line; the scanner grows its buffer up to this.
const maxLineSize = 64 << 20

// ErrInvalidUTF8 reports a data file that is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("invalid UTF-8")

// Parse reads tab-delimited translation lines from r.
//
// Lines end at "\n", "\r\n" or a lone "\r". Each line is handed to the line
// rule together with its terminator, so the empty-string check only matches
// the end of input. Whitespace-only lines are not treated as empty; they are
// dropped later because they contain no tab.
//
// Input must be UTF-8. A line that is not valid UTF-8, comment lines
// included, fails the whole parse with ErrInvalidUTF8.
func Parse(r io.Reader) (*Table, error) {
	table := NewTable()
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)
	sc.Split(scanLines)

	n := 0
	for sc.Scan() {
		n++
		raw := sc.Bytes()
		if !utf8.Valid(raw) {
			return nil, fmt.Errorf("line %d: %w", n, ErrInvalidUTF8)
		}
		if key, value, ok := parseLine(string(raw)); ok {
			table.Set(key, value)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read line %d: %w", n+1, err)
	}
	return table, nil
}

// scanLines is a bufio.SplitFunc that keeps each line's terminator.
// "\r\n" is one terminator; a "\r" at the end of the buffered data waits for
// the next read unless the input is exhausted.
func scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i+1], nil
		}
		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i+2], nil
			}
			return i + 1, data[:i+1], nil
		}
		if !atEOF {
			return 0, nil, nil
		}
		return i + 1, data[:i+1], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

func parseLine(line string) (key, value string, ok bool) {
	if line == "" {
		return "", "", false
	}
	if line[0] == '#' {
		return "", "", false
	}
	// At most 3 pieces: key, value and a discarded remainder.
	pieces := strings.SplitN(strings.TrimRight(line, "\r\n"), "\t", 3)
	if len(pieces) == 1 {
		return "", "", false
	}
	return pieces[0], pieces[1], true
}
