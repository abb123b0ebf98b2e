package middleware

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// Input validation for the upload/analyze surface. The analysis core is
// total, so everything here guards the boundary only.

var allowedUploadExts = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".tif": true, ".tiff": true,
	".bmp": true, ".gif": true, ".pdf": true, ".txt": true,
}

// ValidateUploadName checks an uploaded filename: non-empty, no traversal,
// extension in the supported set.
func ValidateUploadName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("filename cannot be empty")
	}
	if strings.ContainsAny(name, "/\\\x00") || strings.Contains(name, "..") {
		return fmt.Errorf("invalid characters in filename")
	}
	ext := strings.ToLower(filepath.Ext(name))
	if !allowedUploadExts[ext] {
		return fmt.Errorf("unsupported file type: %s", ext)
	}
	return nil
}

var langRe = regexp.MustCompile(`^[a-z]{3}(\+[a-z]{3})*$`)

// ValidateLang checks a tesseract language code ("eng", "eng+deu").
func ValidateLang(lang string) error {
	if lang == "" {
		return nil // default applies
	}
	if !langRe.MatchString(lang) {
		return fmt.Errorf("invalid language code: %s", lang)
	}
	return nil
}

// ValidateTitle bounds draft titles to the column width.
func ValidateTitle(title string) error {
	if len([]rune(title)) > 200 {
		return fmt.Errorf("title too long (max 200 characters)")
	}
	return nil
}

// ValidateLimit clamps list pagination.
func ValidateLimit(limit int) int {
	if limit <= 0 {
		return 20
	}
	if limit > 100 {
		return 100
	}
	return limit
}

// SanitizeString strips null bytes and control characters.
func SanitizeString(input string) string {
	input = strings.ReplaceAll(input, "\x00", "")
	var result strings.Builder
	for _, r := range input {
		if r >= 32 || r == '\t' || r == '\n' {
			result.WriteRune(r)
		}
	}
	return strings.TrimSpace(result.String())
}
