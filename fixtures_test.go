package img2pdf

// Test image fixtures are generated in-process with the standard
// encoders rather than checked into testdata, so dimensions stay
// visible at the call site.

import (
	"bytes"
	"image"
	"image/color"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"image/jpeg"
	"image/png"
	"os"
	"testing"

	"golang.org/x/image/bmp"
)

// encodeTestImage returns a w x h gradient image encoded in the given
// format. WebP is absent: golang.org/x/image/webp is decode-only.
func encodeTestImage(t *testing.T, format Format, w, h int) []byte {
	t.Helper()

	src := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			src.Set(x, y, color.RGBA{R: uint8(x * 7), G: uint8(y * 13), B: 64, A: 255})
		}
	}

	var buf bytes.Buffer
	var err error
	switch format {
	case FormatPNG:
		err = png.Encode(&buf, src)
	case FormatJPEG:
		err = jpeg.Encode(&buf, src, &jpeg.Options{Quality: 90})
	case FormatGIF:
		paletted := image.NewPaletted(src.Bounds(), palette.Plan9)
		draw.Draw(paletted, src.Bounds(), src, image.Point{}, draw.Src)
		err = gif.Encode(&buf, paletted, nil)
	case FormatBMP:
		err = bmp.Encode(&buf, src)
	default:
		t.Fatalf("no test encoder for format %q", format)
	}
	if err != nil {
		t.Fatalf("encoding %s fixture: %v", format, err)
	}
	return buf.Bytes()
}

// encodeDeepPNG returns a w x h PNG with 16 bits per channel. The
// standard decoder accepts it; the PDF writer's PNG parser does not.
func encodeDeepPNG(t *testing.T, w, h int) []byte {
	t.Helper()

	src := image.NewNRGBA64(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			src.SetNRGBA64(x, y, color.NRGBA64{R: uint16(x * 257), G: uint16(y * 257), B: 0x8000, A: 0xffff})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		t.Fatalf("encoding 16-bit png fixture: %v", err)
	}
	return buf.Bytes()
}

// writeTestImage writes an encoded fixture image to path.
func writeTestImage(t *testing.T, path string, format Format, w, h int) {
	t.Helper()
	if err := os.WriteFile(path, encodeTestImage(t, format, w, h), 0o644); err != nil {
		t.Fatalf("writing fixture %s: %v", path, err)
	}
}
