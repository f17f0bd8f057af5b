package img2pdf

import (
	"fmt"
	"math"
	"time"
)

// Default configuration values.
const (
	DefaultDPI      = 150.0
	DefaultMarginMM = 10.0
)

// A4 page dimensions in millimeters.
const (
	A4WidthMM  = 210.0
	A4HeightMM = 297.0
)

// PageSize describes page dimensions in millimeters.
type PageSize struct {
	WidthMM  float64
	HeightMM float64
}

// A4 returns the standard A4 page size (210mm x 297mm).
func A4() PageSize {
	return PageSize{WidthMM: A4WidthMM, HeightMM: A4HeightMM}
}

// Config holds conversion settings. A Config is validated once when the
// Converter is created and is read-only afterwards, so a Converter may be
// shared across goroutines.
type Config struct {
	// DPI relates pixel dimensions to physical size on the page.
	// Must be positive.
	DPI float64

	// MarginMM is the uniform margin on all four sides, in millimeters.
	// Must be non-negative and leave a positive printable area.
	MarginMM float64

	// Title is written as the PDF document title. Empty means no title
	// metadata is emitted.
	Title string

	// Page is the page size used for every page.
	Page PageSize

	// CreationDate is embedded in the PDF metadata. It defaults to a
	// fixed reference date so identical inputs produce byte-identical
	// output; use WithCreationDate to embed a real timestamp.
	CreationDate time.Time
}

// DefaultConfig returns the configuration used when no options are given:
// A4 pages, 150 DPI, 10mm margins, no title, fixed creation date.
func DefaultConfig() Config {
	return Config{
		DPI:          DefaultDPI,
		MarginMM:     DefaultMarginMM,
		Page:         A4(),
		CreationDate: time.Unix(0, 0).UTC(),
	}
}

// Validate checks that the configuration is usable. It is called by New
// before any I/O happens.
func (c Config) Validate() error {
	if c.DPI <= 0 || math.IsNaN(c.DPI) || math.IsInf(c.DPI, 0) {
		return fmt.Errorf("%w: %v (must be positive)", ErrInvalidDPI, c.DPI)
	}
	if c.Page.WidthMM <= 0 || c.Page.HeightMM <= 0 ||
		math.IsNaN(c.Page.WidthMM) || math.IsNaN(c.Page.HeightMM) ||
		math.IsInf(c.Page.WidthMM, 0) || math.IsInf(c.Page.HeightMM, 0) {
		return fmt.Errorf("%w: %vx%v mm (dimensions must be positive)",
			ErrInvalidPageSize, c.Page.WidthMM, c.Page.HeightMM)
	}
	if c.MarginMM < 0 || math.IsNaN(c.MarginMM) || math.IsInf(c.MarginMM, 0) {
		return fmt.Errorf("%w: %v (must be non-negative)", ErrInvalidMargin, c.MarginMM)
	}
	if 2*c.MarginMM >= math.Min(c.Page.WidthMM, c.Page.HeightMM) {
		return fmt.Errorf("%w: %vmm leaves no printable area on a %vx%vmm page",
			ErrInvalidMargin, c.MarginMM, c.Page.WidthMM, c.Page.HeightMM)
	}
	return nil
}

// Option configures a Converter.
type Option func(*Converter)

// WithDPI sets the conversion DPI.
func WithDPI(dpi float64) Option {
	return func(c *Converter) { c.cfg.DPI = dpi }
}

// WithMarginMM sets the uniform page margin in millimeters.
func WithMarginMM(margin float64) Option {
	return func(c *Converter) { c.cfg.MarginMM = margin }
}

// WithTitle sets the PDF document title metadata.
func WithTitle(title string) Option {
	return func(c *Converter) { c.cfg.Title = title }
}

// WithPageSize sets a custom page size.
func WithPageSize(page PageSize) Option {
	return func(c *Converter) { c.cfg.Page = page }
}

// WithCreationDate embeds tm as the PDF creation date instead of the
// fixed default. Output is no longer byte-identical across calls when a
// varying time (e.g. time.Now()) is used.
func WithCreationDate(tm time.Time) Option {
	return func(c *Converter) { c.cfg.CreationDate = tm }
}

// WithVerification enables a structural validation pass over the written
// PDF after each conversion. Verification failure removes the output file
// and returns ErrVerify.
func WithVerification() Option {
	return func(c *Converter) { c.verify = true }
}
