package gmi2html_test

import (
	"context"
	"fmt"

	"github.com/alnah/go-gmi2html"
)

// Example demonstrates converting a small gemtext document.
func Example() {
	fmt.Print(gmi2html.ToHTML("# Hello\n* one\n* two\n=> /about.html About\n"))
	// Output:
	// <h1>Hello</h1>
	// <li>one</li>
	// <li>two</li>
	// <a href="/about.html">About</a>
}

// ExampleConverter_Convert demonstrates a reusable converter and the
// result metadata.
func ExampleConverter_Convert() {
	conv := gmi2html.NewConverter()

	res, err := conv.Convert(context.Background(), gmi2html.Input{
		Text: "```\nhello\nworld\n```\n",
		Name: "snippet.gmi",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("%q\n", res.HTML)
	fmt.Println("lines:", res.Lines, "unclosed:", res.UnclosedLiteral)
	// Output:
	// "<pre>\nhello\nworld\n</pre>"
	// lines: 4 unclosed: false
}

// Example_unterminatedLiteral shows that an unclosed literal block is left open.
func Example_unterminatedLiteral() {
	res, _ := gmi2html.NewConverter().Convert(context.Background(), gmi2html.Input{
		Text: "```\ncode\n",
	})
	fmt.Printf("%q %v\n", res.HTML, res.UnclosedLiteral)
	// Output: "<pre>\ncode\n" true
}
