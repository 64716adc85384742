package main

import (
	"fmt"

	"github.com/oukeidos/transdata/internal/catalog"
	"github.com/oukeidos/transdata/internal/datafile"
	"github.com/oukeidos/transdata/internal/language"
	"github.com/rivo/uniseg"
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List discovered languages with entry counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, dir)
		},
		SilenceUsage: true,
	}
	cmd.SetUsageTemplate(subcommandUsageTemplate)
	cmd.Flags().StringVar(&dir, "dir", ".", "Directory containing <code>.data files")
	return cmd
}

func runList(cmd *cobra.Command, dir string) error {
	rs, err := catalog.Build(dir)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if rs.Len() == 0 {
		fmt.Fprintln(out, "No translation files found.")
		return nil
	}
	fmt.Fprintf(out, "  %-10s %-24s %-20s %8s %8s\n", "CODE", "LANGUAGE", "NATIVE", "ENTRIES", "LONGEST")
	for _, code := range rs.Codes() {
		table, _ := rs.Table(code)
		fmt.Fprintf(out, "  %-10s %-24s %-20s %8d %8d\n",
			code,
			orDash(language.DisplayName(code)),
			orDash(language.NativeName(code)),
			table.Len(),
			longestValue(table))
	}
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// longestValue is the widest value in grapheme clusters, which is what a
// UI has to make room for.
func longestValue(table *datafile.Table) int {
	longest := 0
	for _, k := range table.Keys() {
		v, _ := table.Get(k)
		if n := uniseg.GraphemeClusterCount(v); n > longest {
			longest = n
		}
	}
	return longest
}
