// Package pipeline implements the gemtext-to-HTML conversion pipeline.
//
// The pipeline has two stages:
//   - Preprocessing (line ending normalization)
//   - Line classification and transformation into HTML fragments
//
// Classification is a fixed, ordered chain of prefix rules (see Classify).
// Transformation is a two-state machine folded over the document's lines
// (see Step and Transform). Neither stage escapes content, validates the
// result, or understands inline markup: text is passed through raw.
//
// Directory traversal and file I/O live in the CLI; this package is a pure
// string-to-string transform.
package pipeline
