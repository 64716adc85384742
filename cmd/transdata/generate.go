package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/oukeidos/transdata/internal/apperrors"
	"github.com/oukeidos/transdata/internal/catalog"
	"github.com/oukeidos/transdata/internal/files"
	"github.com/oukeidos/transdata/internal/logger"
	"github.com/oukeidos/transdata/internal/prompt"
	"github.com/spf13/cobra"
)

const outputPerms os.FileMode = 0644

var newConfirmer = prompt.DefaultConfirmer

type generateOptions struct {
	dir    string
	output string
	yes    bool
}

func newGenerateCmd() *cobra.Command {
	opts := generateOptions{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print translation data as JSON (default command)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, &opts)
		},
		SilenceUsage: true,
	}
	cmd.SetUsageTemplate(subcommandUsageTemplate)
	addGenerateFlags(cmd, &opts)
	return cmd
}

func addGenerateFlags(cmd *cobra.Command, opts *generateOptions) {
	cmd.Flags().StringVar(&opts.dir, "dir", ".", "Directory containing <code>.data files")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write JSON to this file instead of stdout")
	cmd.Flags().BoolVarP(&opts.yes, "yes", "y", false, "Overwrite output file without asking")
}

func runGenerate(cmd *cobra.Command, opts *generateOptions) error {
	rs, err := catalog.Build(opts.dir)
	if err != nil {
		return err
	}

	if opts.output == "" {
		if _, err := rs.WriteTo(cmd.OutOrStdout()); err != nil {
			return apperrors.IO("write standard output", err)
		}
		return nil
	}

	path, proceed, err := resolveOutputPath(opts.output, opts.yes)
	if err != nil {
		return err
	}
	if !proceed {
		fmt.Fprintln(cmd.ErrOrStderr(), "Aborted.")
		return nil
	}
	if err := files.AtomicWriteTo(path, rs, outputPerms); err != nil {
		return err
	}
	logger.Info("Wrote translation data", "path", path, "languages", rs.Len())
	return nil
}

// resolveOutputPath decides where an output file goes. An existing file is
// overwritten with -y or after an interactive confirmation; without a
// terminal a free sibling name is chosen instead. proceed is false when the
// user declined.
func resolveOutputPath(path string, yes bool) (string, bool, error) {
	if err := files.RejectSymlinkPath(path); err != nil {
		return "", false, err
	}
	if yes {
		return path, true, nil
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return path, true, nil
		}
		return "", false, apperrors.IO("stat output path", err)
	}

	confirmer := newConfirmer()
	if confirmer.Interactive() {
		ok, err := confirmer.ConfirmOverwrite(path, false)
		if err != nil {
			return "", false, err
		}
		return path, ok, nil
	}

	safePath, changed, err := files.SafePath(path)
	if err != nil {
		return "", false, err
	}
	if changed {
		logger.Warn("Output path adjusted to avoid overwrite", "original", path, "effective", safePath)
	}
	return safePath, true, nil
}
