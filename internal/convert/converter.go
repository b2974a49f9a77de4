package convert

import (
	"os"

	"txt2html/internal/backup"
	"txt2html/internal/config"
	"txt2html/internal/errors"
)

// FileResult contains the complete result of converting a single file.
// This structure provides comprehensive information about the conversion
// outcome, enabling detailed reporting and error handling.
type FileResult struct {
	Result     *Result
	BackupPath string
	Error      error
}

// FileConverter performs the full read, convert, write workflow for one file.
// It wires the conversion engine to the file system, backing up an existing
// destination before overwriting it and writing atomically so the
// destination is never left truncated by a failed run.
type FileConverter struct {
	config        *config.Config
	engine        *Engine
	backupManager *backup.Manager
}

// NewFileConverter creates a FileConverter for the given configuration.
func NewFileConverter(cfg *config.Config) *FileConverter {
	return &FileConverter{
		config:        cfg,
		engine:        NewEngine(cfg),
		backupManager: backup.NewBackupManager(cfg.ShouldCreateBackup()),
	}
}

// ConvertFile converts the file at sourcePath and writes the result to the
// derived (or explicitly configured) destination. A missing or unreadable
// source fails before any destination I/O, so no output file is created.
// In dry-run mode the result is computed but nothing is written.
func (fc *FileConverter) ConvertFile(sourcePath string) FileResult {
	result := FileResult{}

	content, err := os.ReadFile(sourcePath)
	if err != nil {
		result.Error = errors.WrapFileError(sourcePath, err)
		return result
	}

	convResult, converted, err := fc.engine.Process(sourcePath, content)
	result.Result = convResult
	if err != nil {
		result.Error = err
		return result
	}

	if fc.config.DryRun {
		return result
	}

	// Only an existing destination is worth backing up; a fresh output
	// file carries no data to lose. The self-overwrite case (destination
	// equals source) always lands here because the source was just read.
	if _, statErr := os.Stat(convResult.DestPath); statErr == nil {
		backupPath, backupErr := fc.backupManager.BackupFile(convResult.DestPath)
		if backupErr != nil {
			result.Error = backupErr
			return result
		}
		result.BackupPath = backupPath
	}

	if err := fc.writeFile(sourcePath, convResult.DestPath, converted); err != nil {
		if result.BackupPath != "" {
			_ = fc.backupManager.RestoreFile(convResult.DestPath, result.BackupPath)
		}
		result.Error = err
		return result
	}

	return result
}

// writeFile writes the converted content atomically: the content goes to a
// temporary file in the destination's directory, is synced, takes the source
// file's permissions, and is renamed into place. The destination is either
// its previous content or the complete new content, never a partial write.
func (fc *FileConverter) writeFile(sourcePath, destPath string, content []byte) error {
	srcInfo, err := os.Stat(sourcePath)
	if err != nil {
		return errors.WrapFileError(sourcePath, err)
	}

	tempFile := destPath + ".tmp"

	file, err := os.Create(tempFile)
	if err != nil {
		return errors.NewFileNotWritableError(destPath, err)
	}
	defer file.Close()
	defer os.Remove(tempFile)

	if _, err := file.Write(content); err != nil {
		return errors.NewFileNotWritableError(destPath, err)
	}

	if err := file.Sync(); err != nil {
		return errors.NewFileNotWritableError(destPath, err)
	}

	_ = file.Close()

	if err := os.Chmod(tempFile, srcInfo.Mode()); err != nil {
		return errors.NewFileNotWritableError(destPath, err)
	}

	if err := os.Rename(tempFile, destPath); err != nil {
		return errors.NewFileNotWritableError(destPath, err)
	}

	return nil
}
