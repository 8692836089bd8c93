package main

import (
	"errors"
	"os"

	santacerts "github.com/alnah/go-santa-certs"
	"github.com/alnah/go-santa-certs/internal/config"
)

// Exit codes for the santa-certs CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // All certificates generated
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
	ExitEngine  = 4 // Missing PDF engine or conversion failure
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Engine errors (exit 4)
	if errors.Is(err, santacerts.ErrMissingDependency) ||
		errors.Is(err, santacerts.ErrConversionFailed) ||
		errors.Is(err, santacerts.ErrBrowserConnect) ||
		errors.Is(err, santacerts.ErrPageCreate) ||
		errors.Is(err, santacerts.ErrPageLoad) {
		return ExitEngine
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, santacerts.ErrWriteOutput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, santacerts.ErrNoRecipients) ||
		errors.Is(err, santacerts.ErrMissingField) ||
		errors.Is(err, santacerts.ErrInvalidEngine) ||
		errors.Is(err, santacerts.ErrInvalidYear) ||
		errors.Is(err, santacerts.ErrTemplateNotFound) ||
		errors.Is(err, santacerts.ErrInvalidAssetPath) {
		return ExitUsage
	}

	return ExitGeneral
}
