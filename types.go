package gmi2html

// Input is a single gemtext document to convert.
type Input struct {
	Text string // Document content
	Name string // Optional, used in error messages only
}

// ConvertResult holds the output of a conversion.
type ConvertResult struct {
	HTML            []byte
	Lines           int  // Source lines processed
	UnclosedLiteral bool // A literal block was still open at the end of the document
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	normalizeLineEndings bool
}

// WithLineEndingNormalization controls whether \r\n and \r are rewritten to
// \n before conversion. Enabled by default.
func WithLineEndingNormalization(enabled bool) Option {
	return func(c *Converter) {
		c.cfg.normalizeLineEndings = enabled
	}
}
