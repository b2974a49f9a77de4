// Package log provides structured logging and reporting for txt2html runs.
// It supports multiple output formats (JSON, CSV, summary) and tracks
// conversion statistics, enabling audit trails and progress reporting.
package log

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"txt2html/internal/config"
	"txt2html/internal/convert"
)

// Entry represents a single conversion with complete context.
// This structure captures all relevant information about the run, including
// the derived destination, size accounting, backup path, and errors,
// enabling comprehensive audit trails.
type Entry struct {
	Timestamp     string `json:"timestamp"`
	SourcePath    string `json:"source_path"`
	DestPath      string `json:"dest_path,omitempty"`
	OriginalSize  int64  `json:"original_size"`
	NewSize       int64  `json:"new_size"`
	LineBreaks    int    `json:"line_breaks"`
	Modified      bool   `json:"modified"`
	SelfOverwrite bool   `json:"self_overwrite,omitempty"`
	BackupPath    string `json:"backup_path,omitempty"`
	Error         string `json:"error,omitempty"`
}

// Summary provides aggregate statistics for the run.
// This structure enables quick assessment of operation success and provides
// metrics for reporting purposes.
type Summary struct {
	TotalFiles      int           `json:"total_files"`
	ConvertedFiles  int           `json:"converted_files"`
	TotalLineBreaks int           `json:"total_line_breaks"`
	ErrorCount      int           `json:"error_count"`
	ProcessingTime  time.Duration `json:"processing_time"`
	DryRun          bool          `json:"dry_run"`
}

// Logger manages operation logging and reporting with configurable output
// formats. It maintains both individual entry records and aggregate
// statistics, supporting real-time progress updates and final reports.
type Logger struct {
	config  *config.Config
	writer  io.Writer
	entries []Entry
	summary Summary
}

// NewLogger creates a Logger with the specified configuration and output
// destination. This constructor handles output file creation when needed and
// initializes the logging system with proper format support.
func NewLogger(cfg *config.Config) (*Logger, error) {
	var writer io.Writer = os.Stdout

	if cfg.LogFile != "" {
		file, err := os.Create(cfg.LogFile)
		if err != nil {
			return nil, fmt.Errorf("failed to create log file %s: %w", cfg.LogFile, err)
		}
		writer = file
	}

	return &Logger{
		config:  cfg,
		writer:  writer,
		entries: []Entry{},
		summary: Summary{
			DryRun: cfg.DryRun,
		},
	}, nil
}

// LogResult records the outcome of a conversion.
// This method handles both successful and failed conversions, maintaining
// statistics and supporting real-time progress reporting.
func (l *Logger) LogResult(result convert.FileResult) {
	entry := Entry{
		Timestamp:  time.Now().Format(time.RFC3339),
		BackupPath: result.BackupPath,
	}

	if result.Result != nil {
		entry.SourcePath = result.Result.SourcePath
		entry.DestPath = result.Result.DestPath
		entry.OriginalSize = result.Result.OriginalSize
		entry.NewSize = result.Result.NewSize
		entry.LineBreaks = result.Result.LineBreaks
		entry.Modified = result.Result.Modified
		entry.SelfOverwrite = result.Result.SelfOverwrite
	}

	if result.Error != nil {
		entry.Error = result.Error.Error()
		l.summary.ErrorCount++
	} else {
		l.summary.ConvertedFiles++
		l.summary.TotalLineBreaks += entry.LineBreaks
	}

	l.entries = append(l.entries, entry)
	l.summary.TotalFiles++

	if l.config.IsVerbose() {
		l.logVerbose(entry)
	}
}

// SetProcessingTime records the total operation duration for reporting.
func (l *Logger) SetProcessingTime(duration time.Duration) {
	l.summary.ProcessingTime = duration
}

// WriteReport generates the final operation report in the configured format.
// This method supports multiple output formats and provides operation
// summaries with statistics and error information.
func (l *Logger) WriteReport() error {
	if l.config.Quiet {
		return nil
	}

	switch l.config.LogFormat {
	case config.LogFormatJSON:
		return l.writeJSONReport()
	case config.LogFormatCSV:
		return l.writeCSVReport()
	default:
		return l.writeSummaryReport()
	}
}

func (l *Logger) logVerbose(entry Entry) {
	if entry.Error != "" {
		fmt.Fprintf(l.writer, "ERROR: %s - %s\n", entry.SourcePath, entry.Error)
		return
	}

	fmt.Fprintf(l.writer, "CONVERTED: %s -> %s (%d line breaks)\n",
		entry.SourcePath, entry.DestPath, entry.LineBreaks)

	if entry.SelfOverwrite {
		fmt.Fprintf(l.writer, "WARNING: destination equals source, input overwritten in place\n")
	}

	if l.config.IsDebug() {
		fmt.Fprintf(l.writer, "  %d bytes -> %d bytes\n", entry.OriginalSize, entry.NewSize)
		if entry.BackupPath != "" {
			fmt.Fprintf(l.writer, "  backup: %s\n", entry.BackupPath)
		}
	}
}

func (l *Logger) writeJSONReport() error {
	report := struct {
		Summary Summary `json:"summary"`
		Entries []Entry `json:"entries"`
	}{
		Summary: l.summary,
		Entries: l.entries,
	}

	encoder := json.NewEncoder(l.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}

func (l *Logger) writeCSVReport() error {
	mode := "production"
	if l.summary.DryRun {
		mode = "dry-run"
	}

	writer := csv.NewWriter(l.writer)

	header := []string{
		"source_path", "dest_path", "line_breaks", "original_size", "new_size",
	}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, entry := range l.entries {
		record := []string{
			entry.SourcePath,
			entry.DestPath,
			fmt.Sprintf("%d", entry.LineBreaks),
			fmt.Sprintf("%d", entry.OriginalSize),
			fmt.Sprintf("%d", entry.NewSize),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	// Flush CSV records before appending the statistics trailer.
	writer.Flush()
	fmt.Fprintf(l.writer, "# txt2html CSV Report (%s)\n", mode)
	fmt.Fprintf(l.writer, "# Files processed: %d\n", l.summary.TotalFiles)
	fmt.Fprintf(l.writer, "# Files converted: %d\n", l.summary.ConvertedFiles)
	fmt.Fprintf(l.writer, "# Line breaks inserted: %d\n", l.summary.TotalLineBreaks)
	fmt.Fprintf(l.writer, "# Errors: %d\n", l.summary.ErrorCount)
	fmt.Fprintf(l.writer, "# Processing time: %v\n", l.summary.ProcessingTime)

	return nil
}

func (l *Logger) writeSummaryReport() error {
	mode := "production"
	if l.summary.DryRun {
		mode = "dry-run"
	}

	fmt.Fprintf(l.writer, "\n=== txt2html Summary (%s) ===\n", mode)
	fmt.Fprintf(l.writer, "Files processed: %d\n", l.summary.TotalFiles)
	fmt.Fprintf(l.writer, "Files converted: %d\n", l.summary.ConvertedFiles)
	fmt.Fprintf(l.writer, "Line breaks inserted: %d\n", l.summary.TotalLineBreaks)
	fmt.Fprintf(l.writer, "Errors: %d\n", l.summary.ErrorCount)
	fmt.Fprintf(l.writer, "Processing time: %v\n", l.summary.ProcessingTime)

	if l.summary.ErrorCount > 0 {
		fmt.Fprintf(l.writer, "\nErrors encountered:\n")
		for _, entry := range l.entries {
			if entry.Error != "" {
				fmt.Fprintf(l.writer, "  %s: %s\n", entry.SourcePath, entry.Error)
			}
		}
	}

	return nil
}

// Close releases any resources held by the logger, including output files.
// This method ensures proper cleanup of file handles and should be called
// when logging operations are complete to prevent resource leaks.
// Note: os.Stdout is never closed to prevent interfering with coverage tools.
func (l *Logger) Close() error {
	if closer, ok := l.writer.(io.Closer); ok && l.writer != os.Stdout {
		return closer.Close()
	}
	return nil
}
