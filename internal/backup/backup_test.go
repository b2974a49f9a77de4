package backup

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewBackupManager(t *testing.T) {
	tests := []struct {
		name    string
		enabled bool
		want    bool
	}{
		{
			name:    "enabled manager",
			enabled: true,
			want:    true,
		},
		{
			name:    "disabled manager",
			enabled: false,
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			manager := NewBackupManager(tt.enabled)
			if manager == nil {
				t.Fatal("expected non-nil manager")
			}
			if manager.enabled != tt.want {
				t.Errorf("expected enabled=%v, got enabled=%v", tt.want, manager.enabled)
			}
		})
	}
}

func TestBackupFile(t *testing.T) {
	tempDir := t.TempDir()

	tests := []struct {
		name        string
		enabled     bool
		setupFile   bool
		fileContent string
		expectError bool
		expectPath  bool
	}{
		{
			name:        "backup enabled with valid file",
			enabled:     true,
			setupFile:   true,
			fileContent: "previous output",
			expectError: false,
			expectPath:  true,
		},
		{
			name:        "backup disabled",
			enabled:     false,
			setupFile:   true,
			fileContent: "previous output",
			expectError: false,
			expectPath:  false,
		},
		{
			name:        "backup enabled with missing file",
			enabled:     true,
			setupFile:   false,
			expectError: true,
			expectPath:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filePath := filepath.Join(tempDir, strings.ReplaceAll(tt.name, " ", "_")+".html")
			if tt.setupFile {
				if err := os.WriteFile(filePath, []byte(tt.fileContent), 0644); err != nil {
					t.Fatalf("failed to create test file: %v", err)
				}
			}

			manager := NewBackupManager(tt.enabled)
			backupPath, err := manager.BackupFile(filePath)

			if tt.expectError && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.expectError && err != nil {
				t.Errorf("unexpected error: %v", err)
			}

			if tt.expectPath {
				if backupPath == "" {
					t.Fatal("expected backup path, got empty string")
				}
				if !strings.HasSuffix(backupPath, ".bak") {
					t.Errorf("unexpected backup path: %q", backupPath)
				}
				content, readErr := os.ReadFile(backupPath)
				if readErr != nil {
					t.Fatalf("failed to read backup: %v", readErr)
				}
				if string(content) != tt.fileContent {
					t.Errorf("backup content %q, expected %q", content, tt.fileContent)
				}
			} else if backupPath != "" {
				t.Errorf("expected no backup path, got %q", backupPath)
			}
		})
	}
}

func TestRestoreFile(t *testing.T) {
	tempDir := t.TempDir()
	originalPath := filepath.Join(tempDir, "notes.html")

	if err := os.WriteFile(originalPath, []byte("original"), 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	manager := NewBackupManager(true)
	backupPath, err := manager.BackupFile(originalPath)
	if err != nil {
		t.Fatalf("backup failed: %v", err)
	}

	if err := os.WriteFile(originalPath, []byte("clobbered"), 0644); err != nil {
		t.Fatalf("failed to overwrite test file: %v", err)
	}

	if err := manager.RestoreFile(originalPath, backupPath); err != nil {
		t.Fatalf("restore failed: %v", err)
	}

	content, err := os.ReadFile(originalPath)
	if err != nil {
		t.Fatalf("failed to read restored file: %v", err)
	}
	if string(content) != "original" {
		t.Errorf("restored content %q, expected %q", content, "original")
	}
}

func TestRestoreFileMissingBackup(t *testing.T) {
	manager := NewBackupManager(true)

	if err := manager.RestoreFile("original", ""); err != nil {
		t.Errorf("empty backup path should be a no-op, got %v", err)
	}

	err := manager.RestoreFile("original", filepath.Join(t.TempDir(), "missing.bak"))
	if err == nil {
		t.Error("expected error for missing backup file, got nil")
	}
}

func TestCleanupBackup(t *testing.T) {
	tempDir := t.TempDir()
	backupPath := filepath.Join(tempDir, "notes.html.20240101_000000.bak")

	if err := os.WriteFile(backupPath, []byte("backup"), 0644); err != nil {
		t.Fatalf("failed to create backup file: %v", err)
	}

	manager := NewBackupManager(true)
	if err := manager.CleanupBackup(backupPath); err != nil {
		t.Fatalf("cleanup failed: %v", err)
	}

	if _, err := os.Stat(backupPath); !os.IsNotExist(err) {
		t.Error("backup file should have been removed")
	}

	// Cleaning up an already removed backup is not an error.
	if err := manager.CleanupBackup(backupPath); err != nil {
		t.Errorf("cleanup of missing backup should be a no-op, got %v", err)
	}

	if err := manager.CleanupBackup(""); err != nil {
		t.Errorf("cleanup with empty path should be a no-op, got %v", err)
	}
}
