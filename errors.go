package img2pdf

import "errors"

// Sentinel errors for library operations.
var (
	ErrRead              = errors.New("failed to read input")
	ErrWrite             = errors.New("failed to write output")
	ErrUnsupportedFormat = errors.New("unsupported image format")
	ErrDecode            = errors.New("image decoding failed")
	ErrInvalidDimensions = errors.New("invalid image dimensions")
	ErrNoImages          = errors.New("no images to convert")
	ErrPDFGeneration     = errors.New("PDF generation failed")
	ErrDocumentFinalized = errors.New("document already finalized")
	ErrVerify            = errors.New("output verification failed")

	// Configuration validation errors.
	ErrInvalidDPI      = errors.New("invalid DPI")
	ErrInvalidMargin   = errors.New("invalid margin")
	ErrInvalidPageSize = errors.New("invalid page size")
)
