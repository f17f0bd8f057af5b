package img2pdf

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/alnah/go-img2pdf/internal/fileutil"
)

// Converter turns raster images (JPEG, PNG, GIF, BMP, WebP) into PDF
// documents. A Converter is immutable after New and safe for concurrent
// use; each conversion call owns its document and temporary state, so
// independent calls may run in parallel without coordination.
type Converter struct {
	cfg    Config
	verify bool
}

// New creates a Converter. Configuration problems (non-positive DPI,
// margins larger than the page) are reported here, before any file is
// touched.
func New(opts ...Option) (*Converter, error) {
	c := &Converter{cfg: DefaultConfig()}
	for _, opt := range opts {
		opt(c)
	}
	if err := c.cfg.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Config returns the converter's configuration.
func (c *Converter) Config() Config {
	return c.cfg
}

// ConvertImage converts a single image file into a one-page PDF at
// outputPath. On any error no output file is written: serialization
// happens fully in memory and the result lands on disk via an atomic
// rename.
func (c *Converter) ConvertImage(inputPath, outputPath string) error {
	_, err := c.ConvertImages([]string{inputPath}, outputPath)
	return err
}

// ConvertImages converts the given image files into a multi-page PDF,
// one page per image, in exactly the order given. It returns the number
// of pages written. The batch fails fast: the first unreadable or
// undecodable file aborts the whole conversion and no output is written.
func (c *Converter) ConvertImages(inputPaths []string, outputPath string) (int, error) {
	if len(inputPaths) == 0 {
		return 0, ErrNoImages
	}

	doc := newDocument(c.cfg)
	for _, path := range inputPaths {
		if err := c.appendPage(doc, path); err != nil {
			return 0, err
		}
	}

	data, err := doc.finalize()
	if err != nil {
		return 0, err
	}
	if err := fileutil.WriteFileAtomic(outputPath, data, 0o644); err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrWrite, outputPath, err)
	}

	if c.verify {
		if err := verifyPDF(outputPath); err != nil {
			_ = os.Remove(outputPath)
			return 0, err
		}
	}
	return doc.pageCount(), nil
}

// ConvertFolder converts every recognized image in inputDir into a single
// multi-page PDF at outputPath and returns the number of pages written.
// Files are classified by content signature, never by extension, and
// pages follow lexicographic filename order so the result is identical
// across platforms. A directory with no recognized images is an error,
// not an empty document.
func (c *Converter) ConvertFolder(inputDir, outputPath string) (int, error) {
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrRead, inputDir, err)
	}

	var paths []string
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		path := filepath.Join(inputDir, entry.Name())
		recognized, err := isRecognizedImage(path)
		if err != nil {
			return 0, fmt.Errorf("%w: %s: %v", ErrRead, path, err)
		}
		if recognized {
			paths = append(paths, path)
		}
	}
	if len(paths) == 0 {
		return 0, fmt.Errorf("%w: %s", ErrNoImages, inputDir)
	}

	// Page order is user-visible: lexicographic by filename, always.
	// os.ReadDir already sorts, but the ordering contract lives here.
	sort.Strings(paths)

	return c.ConvertImages(paths, outputPath)
}

// appendPage reads, decodes, lays out, and appends one source image.
func (c *Converter) appendPage(doc *document, path string) error {
	data, err := os.ReadFile(path) // #nosec G304 -- input path is caller-provided
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrRead, path, err)
	}

	img, err := decodeImage(data)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	rect, err := fitImage(img.width, img.height, c.cfg)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	return doc.addPage(img, rect)
}

// isRecognizedImage reports whether the file's leading bytes match a
// supported image signature. Only the signature prefix is read; full
// decoding happens later, one image at a time.
func isRecognizedImage(path string) (bool, error) {
	f, err := os.Open(path) // #nosec G304 -- path comes from directory listing
	if err != nil {
		return false, err
	}
	defer f.Close()

	header := make([]byte, sniffLen)
	n, err := io.ReadFull(f, header)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return false, err
	}

	_, ok := detectFormat(header[:n])
	return ok, nil
}
