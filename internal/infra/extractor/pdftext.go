package extractor

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// maxPDFPages bounds extraction time on very large documents.
const maxPDFPages = 50

// PDFText extracts the embedded text layer of a PDF. Scanned PDFs without a
// text layer are reported as extraction failures so the caller can surface
// them instead of analyzing an empty document.
type PDFText struct{}

func (e *PDFText) Extract(ctx context.Context, path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening pdf %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	pages := r.NumPage()
	if pages > maxPDFPages {
		pages = maxPDFPages
	}

	var b strings.Builder
	failed := 0
	for i := 1; i <= pages; i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		p := r.Page(i)
		if p.V.IsNull() {
			failed++
			continue
		}
		text, err := p.GetPlainText(nil)
		if err != nil {
			failed++
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(text)
	}

	out := strings.TrimSpace(b.String())
	if out == "" {
		return "", fmt.Errorf("pdf %s has no extractable text layer (%d/%d pages unreadable)",
			filepath.Base(path), failed, pages)
	}
	return out, nil
}
