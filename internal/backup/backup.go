// Package backup provides file backup and restoration capabilities.
// It implements safe file operations with automatic backup creation
// and restoration support for error recovery scenarios.
package backup

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"txt2html/internal/errors"
)

// Manager handles file backup and restoration operations.
// It provides configurable backup behavior and ensures data safety
// when an existing destination file is about to be overwritten.
type Manager struct {
	enabled bool
}

// NewBackupManager creates a Manager with the specified behavior.
// This constructor enables conditional backup functionality, allowing
// the converter to disable backups when the user opts out.
func NewBackupManager(enabled bool) *Manager {
	return &Manager{
		enabled: enabled,
	}
}

// BackupFile creates a timestamped backup copy of the specified file.
// This method provides backup creation with unique naming to prevent
// conflicts, enabling safe file overwrites with recovery options.
func (bm *Manager) BackupFile(filePath string) (string, error) {
	if !bm.enabled {
		return "", nil
	}

	backupPath := generateBackupPath(filePath)

	srcFile, err := os.Open(filePath)
	if err != nil {
		return "", errors.NewBackupError(filePath, "failed to open source file", err)
	}
	defer srcFile.Close()

	dstFile, err := os.Create(backupPath)
	if err != nil {
		return "", errors.NewBackupError(backupPath, "failed to create backup file", err)
	}
	defer dstFile.Close()

	_, err = io.Copy(dstFile, srcFile)
	if err != nil {
		_ = os.Remove(backupPath)
		return "", errors.NewBackupError(backupPath, "failed to copy file content", err)
	}

	srcInfo, err := os.Stat(filePath)
	if err != nil {
		return backupPath, nil
	}

	err = os.Chmod(backupPath, srcInfo.Mode())
	if err != nil {
		return backupPath, nil
	}

	return backupPath, nil
}

// RestoreFile overwrites the original file with contents from the backup.
// This method validates backup existence before attempting restoration,
// preventing data loss from failed restore operations.
func (bm *Manager) RestoreFile(originalPath, backupPath string) error {
	if backupPath == "" {
		return nil
	}

	if _, err := os.Stat(backupPath); os.IsNotExist(err) {
		return errors.NewBackupError(backupPath, "backup file not found", err)
	}

	srcFile, err := os.Open(backupPath)
	if err != nil {
		return errors.NewBackupError(backupPath, "failed to open backup file", err)
	}
	defer srcFile.Close()

	dstFile, err := os.Create(originalPath)
	if err != nil {
		return errors.NewBackupError(originalPath, "failed to create original file", err)
	}
	defer dstFile.Close()

	_, err = io.Copy(dstFile, srcFile)
	if err != nil {
		return errors.NewBackupError(originalPath, "failed to restore file content", err)
	}

	backupInfo, err := os.Stat(backupPath)
	if err != nil {
		return nil
	}

	err = os.Chmod(originalPath, backupInfo.Mode())
	if err != nil {
		return nil
	}

	return nil
}

// CleanupBackup removes the backup file after successful operations.
// This method provides housekeeping functionality to prevent backup
// accumulation while handling cleanup errors gracefully to avoid masking
// primary operation results.
func (bm *Manager) CleanupBackup(backupPath string) error {
	if backupPath == "" {
		return nil
	}

	err := os.Remove(backupPath)
	if err != nil && !os.IsNotExist(err) {
		return errors.NewBackupError(backupPath, "failed to remove backup file", err)
	}

	return nil
}

func generateBackupPath(originalPath string) string {
	dir := filepath.Dir(originalPath)
	base := filepath.Base(originalPath)
	timestamp := time.Now().Format("20060102_150405")

	return filepath.Join(dir, fmt.Sprintf("%s.%s.bak", base, timestamp))
}
