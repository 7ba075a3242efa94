// Package gmi2html converts gemtext documents to HTML.
//
// # Quick Start
//
// For a one-off conversion, use ToHTML:
//
//	html := gmi2html.ToHTML("# Hello\n=> /about.html About\n")
//	// <h1>Hello</h1>
//	// <a href="/about.html">About</a>
//
// For repeated conversions, create a Converter once and reuse it. A
// Converter holds no per-document state and is safe for concurrent use:
//
//	conv := gmi2html.NewConverter()
//	result, err := conv.Convert(ctx, gmi2html.Input{Text: content})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("index.html", result.HTML, 0o644)
//
// # Line Types
//
// Every line is classified by its leading characters, first match wins:
//
//	# text      <h1>text</h1>
//	## text     <h2>text</h2>
//	### text    <h3>text</h3>
//	* text      <li>text</li>
//	>text       <blockquote>text</blockquote>
//	=> url name <a href="url">name</a>
//	```         opens or closes a <pre> block
//
// Anything else is emitted unchanged. Content is never escaped and inline
// markup is not interpreted. Lines between literal block delimiters are
// copied verbatim; an unterminated literal block leaves <pre> open, which
// is reported through ConvertResult.UnclosedLiteral.
//
// # Site Conversion
//
// The gmi2html command copies a directory tree and replaces every .gmi
// file with its converted .html counterpart:
//
//	gmi2html capsule/ public_html/
package gmi2html
