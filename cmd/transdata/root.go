package main

import (
	"fmt"
	"io"
	"os"

	"github.com/oukeidos/transdata/internal/cleanup"
	"github.com/oukeidos/transdata/internal/files"
	"github.com/oukeidos/transdata/internal/logger"
	"github.com/oukeidos/transdata/internal/version"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type globalOptions struct {
	debug       bool
	verbose     bool
	logFilePath string
}

func execute() {
	cmd := newRootCmd()
	err := cmd.Execute()
	if cleanupErr := cleanup.RunAll(); cleanupErr != nil {
		fmt.Fprintln(os.Stderr, cleanupErr)
		if err == nil {
			err = cleanupErr
		}
	}
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	globalOpts := globalOptions{}
	generateOpts := generateOptions{}

	cmd := &cobra.Command{
		Use:   "transdata",
		Short: "Convert <code>.data translation files into JSON",
		Long: "transdata reads every <code>.data file in the working directory (except the\n" +
			"_.data template) and prints one JSON object mapping language codes to\n" +
			"their key/value translations.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging(cmd, &globalOpts)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, &generateOpts)
		},
		SilenceUsage: true,
	}

	cmd.Version = version.Info()
	cmd.SetVersionTemplate("{{.Version}}\n")
	cmd.SetUsageTemplate(rootUsageTemplate)

	cmd.PersistentFlags().BoolVar(&globalOpts.debug, "debug", false, "Enable debug logging")
	cmd.PersistentFlags().BoolVar(&globalOpts.verbose, "verbose", false, "Log progress to stderr")
	cmd.PersistentFlags().StringVar(&globalOpts.logFilePath, "log-file", "", "Path to save machine-readable JSONL logs")
	addGenerateFlags(cmd, &generateOpts)

	cmd.AddCommand(
		newGenerateCmd(),
		newEmbedCmd(),
		newListCmd(),
		newLookupCmd(),
		newAboutCmd(),
	)

	cmd.InitDefaultCompletionCmd()
	for _, sub := range cmd.Commands() {
		if sub.Name() == "completion" {
			sub.Short = "Generate shell completion scripts"
			sub.SetUsageTemplate(subcommandUsageTemplate)
			break
		}
	}

	return cmd
}

func setupLogging(cmd *cobra.Command, opts *globalOptions) error {
	var logFileW io.Writer
	if opts.logFilePath != "" {
		if err := files.RejectSymlinkPath(opts.logFilePath); err != nil {
			return err
		}
		f, err := os.OpenFile(opts.logFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		cleanup.Register(f.Close)
		logFileW = f
	}
	logger.Init(logger.LevelFor(opts.verbose, opts.debug), logFileW)

	cmd.Flags().Visit(func(f *pflag.Flag) {
		logger.Debug("Flag set", "command", cmd.Name(), "flag", f.Name, "value", f.Value.String())
	})
	return nil
}
