package img2pdf

import (
	"bytes"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"

	"golang.org/x/image/bmp"
	"golang.org/x/image/webp"
)

// decodedImage holds one fully decoded source image. It lives for the
// duration of a single page append and is discarded afterwards, so batch
// conversion holds at most one decoded image in memory at a time.
type decodedImage struct {
	width  int
	height int
	img    image.Image
	format Format
	data   []byte // original encoded bytes, reused for pass-through embedding
}

// decodeImage sniffs and decodes raw image bytes. The full pixel data is
// decoded (not just the header) so truncated files fail here rather than
// surfacing later as a corrupt PDF stream.
func decodeImage(data []byte) (*decodedImage, error) {
	format, ok := detectFormat(data)
	if !ok {
		return nil, ErrUnsupportedFormat
	}

	var (
		img image.Image
		err error
	)
	r := bytes.NewReader(data)
	switch format {
	case FormatJPEG:
		img, err = jpeg.Decode(r)
	case FormatPNG:
		img, err = png.Decode(r)
	case FormatGIF:
		img, err = gif.Decode(r)
	case FormatBMP:
		img, err = bmp.Decode(r)
	case FormatWebP:
		img, err = webp.Decode(r)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, format, err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d px", ErrInvalidDimensions, w, h)
	}

	return &decodedImage{
		width:  w,
		height: h,
		img:    img,
		format: format,
		data:   data,
	}, nil
}
