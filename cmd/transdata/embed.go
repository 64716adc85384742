package main

import (
	"os"

	"github.com/oukeidos/transdata/internal/apperrors"
	"github.com/oukeidos/transdata/internal/catalog"
	"github.com/oukeidos/transdata/internal/files"
	"github.com/oukeidos/transdata/internal/inject"
	"github.com/oukeidos/transdata/internal/logger"
	"github.com/spf13/cobra"
)

type embedOptions struct {
	dir         string
	placeholder string
	yes         bool
}

func newEmbedCmd() *cobra.Command {
	opts := embedOptions{}
	cmd := &cobra.Command{
		Use:   "embed <template> <output>",
		Short: "Substitute translation data into a source template",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEmbed(cmd, args[0], args[1], &opts)
		},
		SilenceUsage: true,
	}
	cmd.SetUsageTemplate(subcommandUsageTemplate)
	cmd.Flags().StringVar(&opts.dir, "dir", ".", "Directory containing <code>.data files")
	cmd.Flags().StringVar(&opts.placeholder, "placeholder", inject.DefaultPlaceholder, "Marker in the template to replace with JSON")
	cmd.Flags().BoolVarP(&opts.yes, "yes", "y", false, "Overwrite output file without asking")
	return cmd
}

func runEmbed(cmd *cobra.Command, templatePath, outputPath string, opts *embedOptions) error {
	template, err := os.ReadFile(templatePath)
	if err != nil {
		return apperrors.IO("read template", err)
	}

	rs, err := catalog.Build(opts.dir)
	if err != nil {
		return err
	}
	data, err := rs.MarshalJSON()
	if err != nil {
		return err
	}
	rendered, err := inject.Render(template, opts.placeholder, data)
	if err != nil {
		return err
	}

	path, proceed, err := resolveOutputPath(outputPath, opts.yes)
	if err != nil {
		return err
	}
	if !proceed {
		cmd.PrintErrln("Aborted.")
		return nil
	}
	if err := files.AtomicWrite(path, rendered, outputPerms); err != nil {
		return err
	}
	logger.Info("Embedded translation data", "template", templatePath, "path", path, "languages", rs.Len())
	return nil
}
