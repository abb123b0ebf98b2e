package extractor

import (
	"context"
	"os"
)

// PlainText reads the file as-is; the analysis normalizer handles the rest.
type PlainText struct{}

func (e *PlainText) Extract(ctx context.Context, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
