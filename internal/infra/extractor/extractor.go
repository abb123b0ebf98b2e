package extractor

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/icislabs/contract-workbench/internal/domain/extract"
)

// supportedExts maps extensions to the extractor kind that handles them.
var supportedExts = map[string]string{
	".pdf":  "pdf",
	".png":  "ocr",
	".jpg":  "ocr",
	".jpeg": "ocr",
	".tif":  "ocr",
	".tiff": "ocr",
	".bmp":  "ocr",
	".gif":  "ocr",
	".txt":  "plain",
	".text": "plain",
	".md":   "plain",
}

// Supported reports whether files with the given name can be extracted.
func Supported(name string) bool {
	_, ok := supportedExts[strings.ToLower(filepath.Ext(name))]
	return ok
}

// Registry routes extraction by file extension: PDF text layer, tesseract OCR
// for images, direct read for plain text. Implements extract.Extractor.
type Registry struct {
	pdf         *PDFText
	ocr         *Tesseract
	plain       *PlainText
	defaultLang string
}

func New(tesseractBin, defaultLang string) *Registry {
	if defaultLang == "" {
		defaultLang = "eng"
	}
	return &Registry{
		pdf:         &PDFText{},
		ocr:         NewTesseract(tesseractBin),
		plain:       &PlainText{},
		defaultLang: defaultLang,
	}
}

// OCRAvailable reports whether the tesseract binary is on PATH.
func (r *Registry) OCRAvailable() bool {
	return r.ocr.Available()
}

func (r *Registry) Extract(ctx context.Context, path string, lang string) (string, error) {
	if lang == "" {
		lang = r.defaultLang
	}
	ext := strings.ToLower(filepath.Ext(path))
	switch supportedExts[ext] {
	case "pdf":
		return r.pdf.Extract(ctx, path)
	case "ocr":
		return r.ocr.Extract(ctx, path, lang)
	case "plain":
		return r.plain.Extract(ctx, path)
	default:
		return "", fmt.Errorf("%w: %q", extract.ErrUnsupportedType, ext)
	}
}
