package extractor

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
)

// Tesseract shells out to the tesseract binary for image OCR.
type Tesseract struct {
	bin string
}

func NewTesseract(bin string) *Tesseract {
	if bin == "" {
		bin = "tesseract"
	}
	return &Tesseract{bin: bin}
}

func (e *Tesseract) Extract(ctx context.Context, path string, lang string) (string, error) {
	cmd := exec.CommandContext(ctx, e.bin, path, "stdout", "-l", lang)
	out, err := cmd.Output()
	if err != nil {
		if ee, ok := err.(*exec.ExitError); ok {
			return "", fmt.Errorf("ocr failed for %s: %s", filepath.Base(path), string(ee.Stderr))
		}
		return "", fmt.Errorf("running %s: %w", e.bin, err)
	}
	return string(out), nil
}

// Available reports whether the tesseract binary can be found. Checked once
// at startup so a misconfigured host warns before the first image upload.
func (e *Tesseract) Available() bool {
	_, err := exec.LookPath(e.bin)
	return err == nil
}
