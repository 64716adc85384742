package main

import (
	"fmt"

	"github.com/oukeidos/transdata/internal/catalog"
	"github.com/oukeidos/transdata/internal/logger"
	"github.com/spf13/cobra"
)

func newLookupCmd() *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:   "lookup <lang> <text>...",
		Short: "Translate texts the way the runtime does (with en-us -> en fallback)",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(cmd, dir, args[0], args[1:])
		},
		SilenceUsage: true,
	}
	cmd.SetUsageTemplate(subcommandUsageTemplate)
	cmd.Flags().StringVar(&dir, "dir", ".", "Directory containing <code>.data files")
	return cmd
}

func runLookup(cmd *cobra.Command, dir, lang string, texts []string) error {
	rs, err := catalog.Build(dir)
	if err != nil {
		return err
	}
	tr := catalog.NewTranslator(rs, lang)
	if tr.Language() == "" {
		logger.Warn("No translation table for language; texts are returned unchanged", "lang", lang)
	} else if tr.Language() != lang {
		logger.Info("Using fallback language", "requested", lang, "effective", tr.Language())
	}
	for _, text := range texts {
		fmt.Fprintln(cmd.OutOrStdout(), tr.T(text))
	}
	return nil
}
