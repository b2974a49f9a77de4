// Package errors provides a hierarchical error system for txt2html operations.
// It implements typed errors that can be inspected and handled differently
// based on their category, enabling more precise error handling and reporting.
package errors

import (
	"fmt"
	"os"
	"path/filepath"
)

// ErrorType represents the category of error for classification and handling.
// This enables different error handling strategies based on error type
// (e.g., aborting on configuration errors vs. reporting file errors).
type ErrorType string

// Error type constants define the categories of errors that can occur during
// conversion. These constants enable type-based error handling and provide
// semantic meaning to error classification.
const (
	ErrTypeFile      ErrorType = "file"
	ErrTypeConfig    ErrorType = "config"
	ErrTypeTransform ErrorType = "transform"
	ErrTypeBackup    ErrorType = "backup"
)

// ConvertError is the base error type that provides structured error information.
// It implements a hierarchical error system where specific error types can be
// identified and handled appropriately. The embedded path and cause information
// enables precise error reporting and debugging.
type ConvertError struct {
	Type    ErrorType
	Path    string
	Message string
	Cause   error
}

func (e *ConvertError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s error for %s: %s", e.Type, e.Path, e.Message)
	}
	return fmt.Sprintf("%s error: %s", e.Type, e.Message)
}

func (e *ConvertError) Unwrap() error {
	return e.Cause
}

// Is implements error identity checking for Go 1.13+ error handling.
// This method enables errors.Is() calls to work correctly with typed errors,
// allowing callers to check for specific error types in error chains.
func (e *ConvertError) Is(target error) bool {
	t, ok := target.(*ConvertError)
	if !ok {
		return false
	}
	return e.Type == t.Type
}

// FileError represents file system operation errors and embeds ConvertError
// to provide file-specific context. This enables callers to distinguish
// between file errors and other types for appropriate handling strategies.
type FileError struct {
	*ConvertError
}

// NewFileError creates a file operation error with context.
// This constructor ensures consistent error classification and enables
// type-based error handling patterns throughout the application.
func NewFileError(path, message string, cause error) *FileError {
	return &FileError{
		ConvertError: &ConvertError{
			Type:    ErrTypeFile,
			Path:    path,
			Message: message,
			Cause:   cause,
		},
	}
}

// FileNotFoundError represents errors when the source file cannot be located.
// The converter surfaces this before any destination I/O happens, so a
// missing source never leaves a partial output file behind.
type FileNotFoundError struct {
	*FileError
}

// NewFileNotFoundError creates a file not found error.
func NewFileNotFoundError(path string, cause error) *FileNotFoundError {
	return &FileNotFoundError{
		FileError: NewFileError(path, "file not found", cause),
	}
}

// FileNotReadableError represents errors when the source cannot be read.
type FileNotReadableError struct {
	*FileError
}

// NewFileNotReadableError creates a file read permission error.
func NewFileNotReadableError(path string, cause error) *FileNotReadableError {
	return &FileNotReadableError{
		FileError: NewFileError(path, "file not readable", cause),
	}
}

// FileNotWritableError represents errors when the destination cannot be
// written to, due to permissions, a missing parent directory, or a full disk.
type FileNotWritableError struct {
	*FileError
}

// NewFileNotWritableError creates a file write error.
func NewFileNotWritableError(path string, cause error) *FileNotWritableError {
	return &FileNotWritableError{
		FileError: NewFileError(path, "file not writable", cause),
	}
}

// ConfigError represents configuration validation errors.
// This error type enables early validation failures to halt execution
// before any file I/O begins.
type ConfigError struct {
	*ConvertError
}

// NewConfigError creates a configuration error without path context.
func NewConfigError(message string, cause error) *ConfigError {
	return &ConfigError{
		ConvertError: &ConvertError{
			Type:    ErrTypeConfig,
			Message: message,
			Cause:   cause,
		},
	}
}

// NewConfigErrorWithPath creates a configuration error with file context.
func NewConfigErrorWithPath(path, message string, cause error) *ConfigError {
	return &ConfigError{
		ConvertError: &ConvertError{
			Type:    ErrTypeConfig,
			Path:    path,
			Message: message,
			Cause:   cause,
		},
	}
}

// TransformError represents failures inside the conversion pipeline itself,
// as opposed to I/O errors around it. The engine raises one when the
// transformed output violates the size invariant.
type TransformError struct {
	*ConvertError
}

// NewTransformError creates a transform operation error.
func NewTransformError(path, message string, cause error) *TransformError {
	return &TransformError{
		ConvertError: &ConvertError{
			Type:    ErrTypeTransform,
			Path:    path,
			Message: message,
			Cause:   cause,
		},
	}
}

// BackupError represents errors during backup and restore operations.
// Backup failures abort the conversion before the destination is touched,
// so the original file is never lost to a half-completed overwrite.
type BackupError struct {
	*ConvertError
}

// NewBackupError creates a backup operation error.
func NewBackupError(path, message string, cause error) *BackupError {
	return &BackupError{
		ConvertError: &ConvertError{
			Type:    ErrTypeBackup,
			Path:    path,
			Message: message,
			Cause:   cause,
		},
	}
}

// WrapFileError converts standard Go errors into typed ConvertError instances.
// This function provides centralized error classification logic, ensuring
// consistent error typing across the application and enabling precise error handling.
func WrapFileError(path string, err error) error {
	if err == nil {
		return nil
	}

	absPath, pathErr := filepath.Abs(path)
	if pathErr != nil {
		absPath = path
	}

	switch {
	case os.IsNotExist(err):
		return NewFileNotFoundError(absPath, err)
	case os.IsPermission(err):
		return NewFileNotReadableError(absPath, err)
	default:
		return NewFileError(absPath, "file operation failed", err)
	}
}
