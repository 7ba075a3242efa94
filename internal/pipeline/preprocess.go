package pipeline

import (
	"context"
	"regexp"
)

// crlfOrCR matches Windows and classic Mac line endings.
var crlfOrCR = regexp.MustCompile(`\r\n?`)

// Preprocessor prepares raw document text before transformation.
type Preprocessor interface {
	Preprocess(ctx context.Context, content string) string
}

// LineEndingPreprocessor rewrites every line terminator to "\n" so the
// transformer sees one line per source line regardless of platform.
type LineEndingPreprocessor struct{}

// Preprocess normalizes line endings. A canceled context returns the
// content untouched.
func (p *LineEndingPreprocessor) Preprocess(ctx context.Context, content string) string {
	if ctx.Err() != nil {
		return content
	}
	return NormalizeLineEndings(content)
}

// NormalizeLineEndings converts \r\n and \r to \n.
func NormalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}
