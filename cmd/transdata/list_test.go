package main

import (
	"strings"
	"testing"

	"github.com/oukeidos/transdata/internal/datafile"
)

func TestList(t *testing.T) {
	dir := writeDataDir(t, map[string]string{
		"fr.data":    "a\tun\nb\tdeux\n",
		"ja.data":    "k\tこんにちは\n",
		"xx_yy.data": "k\tv\n",
	})
	stdout, _, err := executeCommand(t, "list", "--dir", dir)
	if err != nil {
		t.Fatalf("command failed: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header and 3 rows, got %q", stdout)
	}
	if !strings.Contains(lines[0], "NATIVE") {
		t.Fatalf("header missing native column: %q", lines[0])
	}
	rows := map[string][]string{}
	for _, line := range lines[1:] {
		fields := strings.Fields(line)
		rows[fields[0]] = fields
	}

	tests := []struct {
		code    string
		display string
		native  string
		entries string
		longest string
	}{
		{"fr", "French", "français", "2", "4"},
		{"ja", "Japanese", "日本語", "1", "5"},
		{"xx_yy", "-", "-", "1", "1"},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			fields, ok := rows[tt.code]
			if !ok {
				t.Fatalf("missing row for %s in %q", tt.code, stdout)
			}
			want := []string{tt.code, tt.display, tt.native, tt.entries, tt.longest}
			if strings.Join(fields, "|") != strings.Join(want, "|") {
				t.Fatalf("row = %v, want %v", fields, want)
			}
		})
	}
}

func TestList_Empty(t *testing.T) {
	dir := writeDataDir(t, nil)
	stdout, _, err := executeCommand(t, "list", "--dir", dir)
	if err != nil {
		t.Fatalf("command failed: %v", err)
	}
	if !strings.Contains(stdout, "No translation files found.") {
		t.Fatalf("unexpected output: %q", stdout)
	}
}

func TestLongestValue_CountsGraphemes(t *testing.T) {
	table := datafile.NewTable()
	table.Set("flag", "🇯🇵")
	table.Set("accent", "éé")
	table.Set("plain", "abc")
	if got := longestValue(table); got != 3 {
		t.Fatalf("longestValue() = %d, want 3", got)
	}
}
