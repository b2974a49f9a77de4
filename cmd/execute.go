// Package cmd implements the command-line interface and orchestration logic
// for txt2html. It connects configuration, conversion, and reporting,
// providing the main business logic that turns a validated configuration
// into a converted file and a run report.
package cmd

import (
	"time"

	"txt2html/internal/config"
	"txt2html/internal/convert"
	"txt2html/internal/log"
)

func executeConvert(cfg *config.Config) error {
	startTime := time.Now()

	logger, err := log.NewLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Close()

	converter := convert.NewFileConverter(cfg)
	result := converter.ConvertFile(cfg.SourceFile)
	logger.LogResult(result)

	logger.SetProcessingTime(time.Since(startTime))
	if err := logger.WriteReport(); err != nil {
		return err
	}

	// The conversion error still propagates after reporting so the process
	// exits non-zero.
	return result.Error
}
