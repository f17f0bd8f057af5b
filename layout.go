package img2pdf

import (
	"fmt"
	"math"
)

// Unit conversion constants.
const (
	ptPerInch = 72.0
	mmPerInch = 25.4
)

// mmToPt converts millimeters to PDF points.
func mmToPt(mm float64) float64 {
	return mm * ptPerInch / mmPerInch
}

// PlacedRect is the computed position and size of an image on a page,
// in PDF points relative to the page's bottom-left origin.
type PlacedRect struct {
	X float64
	Y float64
	W float64
	H float64
}

// fitImage computes where an image of the given pixel dimensions lands on
// the configured page: scaled to its natural size at cfg.DPI, shrunk if
// needed to fit the printable area (never enlarged beyond natural size,
// which would only add blur), aspect ratio preserved, centered within the
// margins. Pure function, no I/O.
func fitImage(pixelW, pixelH int, cfg Config) (PlacedRect, error) {
	if pixelW <= 0 || pixelH <= 0 {
		return PlacedRect{}, fmt.Errorf("%w: %dx%d px", ErrInvalidDimensions, pixelW, pixelH)
	}

	marginPt := mmToPt(cfg.MarginMM)
	availW := mmToPt(cfg.Page.WidthMM) - 2*marginPt
	availH := mmToPt(cfg.Page.HeightMM) - 2*marginPt

	naturalW := float64(pixelW) / cfg.DPI * ptPerInch
	naturalH := float64(pixelH) / cfg.DPI * ptPerInch

	scale := math.Min(availW/naturalW, availH/naturalH)
	if scale > 1 {
		scale = 1
	}

	w := naturalW * scale
	h := naturalH * scale

	return PlacedRect{
		X: marginPt + (availW-w)/2,
		Y: marginPt + (availH-h)/2,
		W: w,
		H: h,
	}, nil
}
