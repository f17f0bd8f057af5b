// Package img2pdf converts raster images to PDF documents.
//
// # Quick Start
//
// Create a converter and convert a single image or a whole folder:
//
//	conv, err := img2pdf.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// One image, one-page PDF.
//	if err := conv.ConvertImage("photo.jpg", "photo.pdf"); err != nil {
//	    log.Fatal(err)
//	}
//
//	// Every image in a folder, merged into one PDF.
//	pages, err := conv.ConvertFolder("scans/", "scans.pdf")
//
// # Supported Formats
//
// JPEG, PNG, GIF, BMP, and WebP. Files are classified by their byte
// signature, never by extension: a PNG renamed to .jpg converts
// correctly, and a text file renamed to .png is rejected.
//
// # Page Layout
//
// Each image gets its own page (A4 by default). The image is rendered at
// its natural size for the configured DPI, scaled down if needed to fit
// inside the margins, and centered. Images are never scaled up beyond
// their natural size, and the aspect ratio is always preserved.
//
// # Configuration
//
// Use functional options to customize the converter:
//
//	conv, err := img2pdf.New(
//	    img2pdf.WithDPI(300),
//	    img2pdf.WithMarginMM(15),
//	    img2pdf.WithTitle("Scan Archive"),
//	)
//
// Invalid settings (non-positive DPI, margins that leave no printable
// area) are rejected by New before any file is read.
//
// # Batch Behavior
//
// ConvertFolder merges images in lexicographic filename order, so page
// order is deterministic across platforms. The batch fails fast: one
// corrupt file aborts the whole conversion, and no output file is left
// behind on any error (output is written via atomic rename).
//
// # Determinism
//
// Identical inputs and configuration produce byte-identical PDFs. The
// embedded creation date is fixed by default; use WithCreationDate to
// embed a real timestamp at the cost of reproducibility.
//
// # Concurrency
//
// A Converter is immutable and safe for concurrent use. Each conversion
// call is synchronous and owns all of its state; run independent calls
// on separate goroutines for parallel throughput.
package img2pdf
