package gmi2html

import (
	"context"
	"fmt"

	"github.com/alnah/go-gmi2html/internal/pipeline"
)

// Compile-time interface implementation check.
var _ pipeline.Preprocessor = (*pipeline.LineEndingPreprocessor)(nil)

// Converter turns gemtext documents into HTML.
// Create with NewConverter; the zero value is not usable.
type Converter struct {
	cfg          converterConfig
	preprocessor pipeline.Preprocessor
}

// NewConverter creates a Converter with default configuration.
func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		cfg: converterConfig{normalizeLineEndings: true},
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.cfg.normalizeLineEndings && c.preprocessor == nil {
		c.preprocessor = &pipeline.LineEndingPreprocessor{}
	}

	return c
}

// Convert transforms one document. The context is checked before the
// document is started; a conversion in progress always runs to completion.
func (c *Converter) Convert(ctx context.Context, input Input) (*ConvertResult, error) {
	if err := ctx.Err(); err != nil {
		if input.Name != "" {
			return nil, fmt.Errorf("%w: %s: %w", ErrConversionCanceled, input.Name, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrConversionCanceled, err)
	}

	text := input.Text
	if c.preprocessor != nil {
		text = c.preprocessor.Preprocess(ctx, text)
	}

	res := pipeline.TransformDocument(text)

	return &ConvertResult{
		HTML:            []byte(res.HTML),
		Lines:           res.Lines,
		UnclosedLiteral: res.Mode == pipeline.ModeLiteral,
	}, nil
}

// defaultConverter backs ToHTML.
var defaultConverter = NewConverter()

// ToHTML converts text with the default configuration.
func ToHTML(text string) string {
	res, err := defaultConverter.Convert(context.Background(), Input{Text: text})
	if err != nil {
		// Background is never canceled.
		panic(err)
	}
	return string(res.HTML)
}
