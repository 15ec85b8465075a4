package ocr

import (
	"context"
	"regexp"
	"strings"
)

// Engine is a long-lived handle to an external OCR engine. Recognition
// has no internal retry; callers must check IsAvailable first.
type Engine interface {
	Recognize(ctx context.Context, image []byte) (string, error)
	IsAvailable() bool
}

var (
	newlineRuns    = regexp.MustCompile(`[\r\n]+`)
	whitespaceRuns = regexp.MustCompile(`\s+`)
)

// CleanText collapses runs of newlines and whitespace in recognized
// text into single separators and trims the result. Idempotent.
func CleanText(text string) string {
	if text == "" {
		return ""
	}

	text = newlineRuns.ReplaceAllString(text, "\n")
	text = whitespaceRuns.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
