package pipeline

import (
	"strconv"
	"strings"
)

// Mode is the transformer state carried from one line to the next.
type Mode int

const (
	// ModeNormal classifies and converts each line.
	ModeNormal Mode = iota
	// ModeLiteral passes lines through verbatim until a closing delimiter.
	ModeLiteral
)

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "Normal"
	case ModeLiteral:
		return "Literal"
	default:
		return "Mode(" + strconv.Itoa(int(m)) + ")"
	}
}

// Step converts a single line (without its terminator) in the given mode
// and returns the next mode along with the emitted HTML fragment.
//
// Inside a literal block only a closing delimiter is recognized; it emits
// "</pre>" with no trailing newline and the rest of that line is dropped.
func Step(mode Mode, line string) (Mode, string) {
	category := Classify(line)

	if mode == ModeLiteral {
		if category == LiteralDelimiter {
			return ModeNormal, "</pre>"
		}
		return ModeLiteral, line + "\n"
	}

	content := strings.TrimPrefix(line, Prefix(category))

	switch category {
	case FirstHeader:
		return ModeNormal, wrap("h1", content)
	case SecondHeader:
		return ModeNormal, wrap("h2", content)
	case ThirdHeader:
		return ModeNormal, wrap("h3", content)
	case ListItem:
		return ModeNormal, wrap("li", content)
	case Quote:
		return ModeNormal, wrap("blockquote", content)
	case Link:
		return ModeNormal, linkFragment(line, content)
	case LiteralDelimiter:
		return ModeLiteral, "<pre>" + content + "\n"
	default:
		return ModeNormal, line + "\n"
	}
}

// wrap encloses content in the named element, newline-terminated.
func wrap(tag, content string) string {
	return "<" + tag + ">" + content + "</" + tag + ">\n"
}

// linkFragment renders the target of a "=> " line. The first space splits
// href from name; a target without a space is not a link and the original
// line is emitted as plain text.
func linkFragment(line, target string) string {
	href, name, ok := strings.Cut(target, " ")
	if !ok {
		return line + "\n"
	}
	return `<a href="` + href + `">` + name + "</a>\n"
}

// Result is the outcome of transforming one document.
type Result struct {
	HTML  string
	Lines int  // input lines consumed
	Mode  Mode // mode after the last line; ModeLiteral means an unclosed block
}

// TransformDocument converts a whole document. Lines are split on "\n";
// a trailing line without a terminator is still converted, and a final
// terminator does not produce an extra empty line.
func TransformDocument(document string) Result {
	var b strings.Builder
	b.Grow(len(document) + len(document)/2)

	res := Result{Mode: ModeNormal}
	for line := range strings.Lines(document) {
		var fragment string
		res.Mode, fragment = Step(res.Mode, strings.TrimSuffix(line, "\n"))
		b.WriteString(fragment)
		res.Lines++
	}
	res.HTML = b.String()
	return res
}

// Transform converts document and returns the HTML.
// An unterminated literal block is left open.
func Transform(document string) string {
	return TransformDocument(document).HTML
}
