package gmi2html

import "errors"

// Sentinel errors for library operations.
var (
	ErrConversionCanceled = errors.New("conversion canceled")
)
