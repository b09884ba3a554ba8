// Package pdf turns rendered HTML into PDF bytes via wkhtmltopdf.
package pdf

import (
	"strings"

	wkhtmltopdf "github.com/SebastiaanKlippert/go-wkhtmltopdf"
)

// Converter renders an HTML document to PDF bytes.
type Converter interface {
	Convert(html string) ([]byte, error)
}

type wkConverter struct{}

// NewConverter returns a Converter backed by the wkhtmltopdf binary.
// The binary must be on PATH; generation fails otherwise.
func NewConverter() Converter { return wkConverter{} }

func (wkConverter) Convert(html string) ([]byte, error) {
	gen, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return nil, err
	}
	gen.Orientation.Set(wkhtmltopdf.OrientationPortrait)
	gen.PageSize.Set(wkhtmltopdf.PageSizeA4)
	gen.MarginTop.Set(10)
	gen.MarginBottom.Set(10)
	gen.MarginLeft.Set(10)
	gen.MarginRight.Set(10)

	page := wkhtmltopdf.NewPageReader(strings.NewReader(html))
	page.Encoding.Set("utf-8")
	gen.AddPage(page)

	if err := gen.Create(); err != nil {
		return nil, err
	}
	return gen.Bytes(), nil
}
