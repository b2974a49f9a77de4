package cmd

import (
	"fmt"
	"os"

	"txt2html/internal/config"
	"txt2html/internal/errors"

	"github.com/spf13/cobra"
)

var cfg = &config.Config{}

var rootCmd = &cobra.Command{
	Use:   "txt2html [options] <file>",
	Short: "Convert a plain-text file to HTML line-break markup",
	Long: `Txt2html reads a plain-text file, inserts a literal <br> marker before
every newline, and writes the result to a sibling file whose path is derived
by replacing the first occurrence of ".txt" with ".html". A path without
".txt" is overwritten in place.`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

// Execute runs the root command and handles top-level error reporting.
// This function serves as the main entry point for the CLI, providing
// consistent error formatting and exit code management for all command failures.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if te, ok := err.(*errors.ConvertError); ok {
			fmt.Fprintf(os.Stderr, "Error: %s\n", te.Error())
		} else {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err.Error())
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVarP(&cfg.OutputFile, "output", "o", "", "Write to this path instead of deriving it from the source")
	rootCmd.Flags().BoolVar(&cfg.DryRun, "dry-run", false, "Simulate without making changes")
	rootCmd.Flags().BoolVar(&cfg.DryRun, "fake", false, "Simulate without making changes (alias for --dry-run)")
	rootCmd.Flags().BoolVar(&cfg.Backup, "backup", false, "Create .bak files (deprecated, backups enabled by default)")
	rootCmd.Flags().BoolVar(&cfg.NoBackup, "nobackup", false, "Disable backup of an existing destination file")
	rootCmd.Flags().BoolVarP(&cfg.Verbose, "verbose", "v", false, "Verbose mode")
	rootCmd.Flags().BoolVar(&cfg.Debug, "debug", false, "Debug mode")
	rootCmd.Flags().BoolVarP(&cfg.Quiet, "quiet", "q", false, "Quiet mode")
	rootCmd.Flags().StringVar(&cfg.LogFile, "log", "", "Log file (default: stdout)")
	rootCmd.Flags().Var((*logFormatFlag)(&cfg.LogFormat), "log-format", "Log format (json, csv)")

	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")
	rootCmd.MarkFlagsMutuallyExclusive("debug", "quiet")
	rootCmd.MarkFlagsMutuallyExclusive("backup", "nobackup")
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg.SourceFile = args[0]

	if err := cfg.Validate(); err != nil {
		return err
	}

	return executeConvert(cfg)
}

type logFormatFlag config.LogFormat

func (f *logFormatFlag) String() string {
	return string(*f)
}

func (f *logFormatFlag) Set(v string) error {
	switch v {
	case "json", "csv":
		*f = logFormatFlag(v)
		return nil
	default:
		return fmt.Errorf("must be 'json' or 'csv'")
	}
}

func (f *logFormatFlag) Type() string {
	return "string"
}
