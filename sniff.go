package img2pdf

import "bytes"

// Format identifies a supported image encoding.
type Format string

// Supported image formats.
const (
	FormatJPEG Format = "jpeg"
	FormatPNG  Format = "png"
	FormatGIF  Format = "gif"
	FormatBMP  Format = "bmp"
	FormatWebP Format = "webp"
)

// sniffLen is the number of leading bytes needed to classify any
// supported format. The longest signature is WebP's RIFF header (12 bytes).
const sniffLen = 12

// detectFormat classifies data by its byte signature. File extensions are
// never consulted: the content is the only source of truth, so a renamed
// or mislabeled file cannot be misinterpreted.
func detectFormat(data []byte) (Format, bool) {
	switch {
	case bytes.HasPrefix(data, []byte("\x89PNG\r\n\x1a\n")):
		return FormatPNG, true
	case bytes.HasPrefix(data, []byte("\xff\xd8\xff")):
		return FormatJPEG, true
	case bytes.HasPrefix(data, []byte("GIF87a")), bytes.HasPrefix(data, []byte("GIF89a")):
		return FormatGIF, true
	case len(data) >= sniffLen && bytes.HasPrefix(data, []byte("RIFF")) &&
		bytes.Equal(data[8:12], []byte("WEBP")):
		return FormatWebP, true
	case bytes.HasPrefix(data, []byte("BM")):
		return FormatBMP, true
	}
	return "", false
}
