package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAboutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "about",
		Short: "Show a short description of the data file format",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "transdata — translation data generator")
			fmt.Fprintln(out, "Reads <code>.data files: one key<TAB>value per line, '#' starts a comment.")
			fmt.Fprintln(out, "_.data is the template and is never included in the output.")
		},
	}
	cmd.SetUsageTemplate(subcommandUsageTemplate)
	return cmd
}
