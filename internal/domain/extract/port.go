package extract

import (
	"context"
	"errors"
)

// ErrUnsupportedType indicates a file extension no extractor can handle.
var ErrUnsupportedType = errors.New("unsupported file type")

// Extractor port: turns an uploaded document into plain text. The analysis
// core treats the output as opaque text; decode/OCR failures are reported as
// extraction errors, never as an empty analysis.
type Extractor interface {
	// Extract reads the file at path and returns its text. lang is the OCR
	// language hint (e.g. "eng") and is ignored by non-OCR extractors.
	Extract(ctx context.Context, path string, lang string) (string, error)
}

// ArtifactStore port: keeps the uploaded source document for later review.
type ArtifactStore interface {
	Upload(ctx context.Context, localPath, key string) (string, error)
	UploadAndCleanup(ctx context.Context, localPath, key string) (string, error)
}
