package img2pdf

import (
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// verifyPDF runs a structural validation pass over a written PDF file.
// Relaxed mode matches what mainstream viewers accept.
func verifyPDF(path string) error {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	if err := api.ValidateFile(path, conf); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrVerify, path, err)
	}
	return nil
}
