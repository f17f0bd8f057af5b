package main

import (
	"errors"
	"os"

	img2pdf "github.com/alnah/go-img2pdf"
)

// Exit codes for the img2pdf CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess  = 0 // Successful conversion
	ExitGeneral  = 1 // General/unexpected error
	ExitUsage    = 2 // Invalid flags, config, or validation
	ExitIO       = 3 // File not found, permission denied, write failure
	ExitBadImage = 4 // Unsupported, corrupt, or missing image content
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Image content errors (exit 4)
	if errors.Is(err, img2pdf.ErrUnsupportedFormat) ||
		errors.Is(err, img2pdf.ErrDecode) ||
		errors.Is(err, img2pdf.ErrInvalidDimensions) ||
		errors.Is(err, img2pdf.ErrNoImages) ||
		errors.Is(err, img2pdf.ErrVerify) {
		return ExitBadImage
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, img2pdf.ErrRead) ||
		errors.Is(err, img2pdf.ErrWrite) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrInvalidPage) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrConfigNotFound) ||
		errors.Is(err, ErrConfigParse) ||
		errors.Is(err, img2pdf.ErrInvalidDPI) ||
		errors.Is(err, img2pdf.ErrInvalidMargin) ||
		errors.Is(err, img2pdf.ErrInvalidPageSize) {
		return ExitUsage
	}

	return ExitGeneral
}
