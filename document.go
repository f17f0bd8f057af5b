package img2pdf

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"

	"github.com/jung-kurt/gofpdf/v2"
)

// document accumulates pages for one conversion call. Pages are appended
// in call order and the document is finalized exactly once; it never
// outlives the conversion that created it.
type document struct {
	pdf       *gofpdf.Fpdf
	cfg       Config
	pages     int
	finalized bool
}

// newDocument creates an empty document sized to the configured page.
func newDocument(cfg Config) *document {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size: gofpdf.SizeType{
			Wd: mmToPt(cfg.Page.WidthMM),
			Ht: mmToPt(cfg.Page.HeightMM),
		},
	})
	// Fixed timestamps keep output byte-identical across runs; gofpdf
	// otherwise stamps the info dictionary with the wall clock.
	pdf.SetCreationDate(cfg.CreationDate)
	pdf.SetModificationDate(cfg.CreationDate)
	if cfg.Title != "" {
		pdf.SetTitle(cfg.Title, true)
	}
	return &document{pdf: pdf, cfg: cfg}
}

// addPage appends a new page holding img placed at rect.
func (d *document) addPage(img *decodedImage, rect PlacedRect) error {
	if d.finalized {
		return ErrDocumentFinalized
	}

	imageType, stream, err := embeddableStream(img)
	if err != nil {
		return err
	}

	d.pages++
	d.pdf.AddPage()

	// Zero-padded so registration names sort in page order; the writer
	// emits XObjects sorted by name, keeping output deterministic.
	name := fmt.Sprintf("image-%04d", d.pages)
	opts := gofpdf.ImageOptions{ImageType: imageType}
	d.pdf.RegisterImageOptionsReader(name, opts, stream)

	// PlacedRect uses the PDF convention of a bottom-left origin; gofpdf
	// places from the top-left, so flip the Y coordinate.
	yTop := mmToPt(d.cfg.Page.HeightMM) - rect.Y - rect.H
	d.pdf.ImageOptions(name, rect.X, yTop, rect.W, rect.H, false, opts, 0, "")

	if err := d.pdf.Error(); err != nil {
		return fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}
	return nil
}

// pageCount reports the number of pages appended so far.
func (d *document) pageCount() int {
	return d.pages
}

// finalize serializes the document. The document must not be used again
// after finalize returns.
func (d *document) finalize() ([]byte, error) {
	if d.finalized {
		return nil, ErrDocumentFinalized
	}
	d.finalized = true

	var buf bytes.Buffer
	if err := d.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}
	return buf.Bytes(), nil
}

// embeddableStream returns the image bytes in an encoding the PDF writer
// embeds directly. JPEG and GIF sources pass through unchanged, as do
// PNGs the writer's parser accepts; 16-bit or interlaced PNGs, BMP, and
// WebP are re-encoded as lossless 8-bit PNG from the decoded pixels.
func embeddableStream(img *decodedImage) (string, io.Reader, error) {
	switch img.format {
	case FormatJPEG:
		return "JPEG", bytes.NewReader(img.data), nil
	case FormatPNG:
		if !pngNeedsReencode(img.data) {
			return "PNG", bytes.NewReader(img.data), nil
		}
	case FormatGIF:
		return "GIF", bytes.NewReader(img.data), nil
	}

	// Draw into an 8-bit buffer first: encoding img.img directly would
	// preserve a 16-bit source's depth and hit the same parser limit.
	rgba := image.NewNRGBA(img.img.Bounds())
	draw.Draw(rgba, rgba.Bounds(), img.img, img.img.Bounds().Min, draw.Src)

	var buf bytes.Buffer
	if err := png.Encode(&buf, rgba); err != nil {
		return "", nil, fmt.Errorf("%w: re-encoding %s: %v", ErrPDFGeneration, img.format, err)
	}
	return "PNG", &buf, nil
}

// pngNeedsReencode reports whether raw PNG bytes use features the PDF
// writer's PNG parser rejects: bit depth above 8 or Adam7 interlacing.
// IHDR is always the first chunk, so both flags sit at fixed offsets.
func pngNeedsReencode(data []byte) bool {
	if len(data) < 29 {
		return true
	}
	return data[24] > 8 || data[28] != 0
}
