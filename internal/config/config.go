// Package config provides configuration management and validation for txt2html.
// It centralizes all command-line options and runtime settings, providing
// validation logic to catch configuration errors early before processing begins.
package config

import (
	"path/filepath"

	"txt2html/internal/errors"
)

// LogFormat represents the supported output formats for conversion reports.
// This enumeration ensures type safety and enables format-specific
// output generation logic throughout the logging system.
type LogFormat string

// Supported log format constants. An empty format selects the plain
// human-readable summary.
const (
	LogFormatJSON LogFormat = "json"
	LogFormatCSV  LogFormat = "csv"
)

// Config holds all runtime configuration options for a conversion run.
// It provides a single source of truth for all settings, enabling consistent
// behavior across all components and simplifying dependency injection
// throughout the application.
//
// SourceFile is kept exactly as supplied on the command line, never
// absolutized: destination derivation is a textual substring replacement on
// the caller's path, and rewriting the path first would change which `.txt`
// occurrence gets replaced.
type Config struct {
	SourceFile string
	OutputFile string
	DryRun     bool
	Backup     bool
	NoBackup   bool
	Verbose    bool
	Debug      bool
	Quiet      bool
	LogFile    string
	LogFormat  LogFormat
}

// Validate performs validation of configuration settings.
// This method catches configuration errors early in the application lifecycle,
// providing clear feedback to users about invalid settings before any file
// I/O begins.
func (c *Config) Validate() error {
	if err := c.validateSourceFile(); err != nil {
		return err
	}

	if err := c.validateOutputFile(); err != nil {
		return err
	}

	return c.validateLogFormat()
}

func (c *Config) validateSourceFile() error {
	if c.SourceFile == "" {
		return errors.NewConfigError("source file is required", nil)
	}
	return nil
}

func (c *Config) validateOutputFile() error {
	if c.OutputFile == "" {
		return nil
	}

	// An explicit output path bypasses derivation entirely, so it is safe
	// to reject directory-like values up front.
	if c.OutputFile == "." || c.OutputFile == string(filepath.Separator) {
		return errors.NewConfigErrorWithPath(c.OutputFile, "invalid output file path", nil)
	}
	return nil
}

func (c *Config) validateLogFormat() error {
	if c.LogFormat != "" && c.LogFormat != LogFormatJSON && c.LogFormat != LogFormatCSV {
		return errors.NewConfigError("log format must be 'json' or 'csv'", nil)
	}
	return nil
}

// IsVerbose determines if verbose logging is enabled.
// This method implements the precedence logic where Quiet mode overrides
// Verbose mode, ensuring consistent logging behavior across the application.
func (c *Config) IsVerbose() bool {
	return c.Verbose && !c.Quiet
}

// IsDebug determines if debug logging is enabled.
// This method implements the precedence logic where Quiet mode overrides
// Debug mode, preventing unwanted debug output during silent operations.
func (c *Config) IsDebug() bool {
	return c.Debug && !c.Quiet
}

// ShouldLog determines if any logging should occur.
// This method provides a central check for logging enablement, allowing
// components to skip log preparation when output will be suppressed.
func (c *Config) ShouldLog() bool {
	return !c.Quiet
}

// ShouldCreateBackup determines if an existing destination file should be
// backed up before it is overwritten. NoBackup takes precedence over Backup;
// by default, backups are enabled unless explicitly disabled.
func (c *Config) ShouldCreateBackup() bool {
	if c.NoBackup {
		return false
	}
	return true
}
