package pipeline

import (
	"strconv"
	"strings"
)

// Category is the syntactic kind of a single gemtext line.
type Category int

// Line categories. A line belongs to exactly one category.
const (
	PlainText Category = iota
	FirstHeader
	SecondHeader
	ThirdHeader
	ListItem
	Quote
	Link
	LiteralDelimiter
)

var categoryNames = [...]string{
	PlainText:        "PlainText",
	FirstHeader:      "FirstHeader",
	SecondHeader:     "SecondHeader",
	ThirdHeader:      "ThirdHeader",
	ListItem:         "ListItem",
	Quote:            "Quote",
	Link:             "Link",
	LiteralDelimiter: "LiteralDelimiter",
}

func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return "Category(" + strconv.Itoa(int(c)) + ")"
	}
	return categoryNames[c]
}

// rule pairs a line prefix with the category it selects.
type rule struct {
	prefix   string
	category Category
}

// rules is the classification chain, tested top to bottom.
// The order is part of the format: "# " is tested before "## " and "### ",
// so any line beginning with "# " is a FirstHeader regardless of what follows.
var rules = []rule{
	{"# ", FirstHeader},
	{"## ", SecondHeader},
	{"### ", ThirdHeader},
	{"* ", ListItem},
	{">", Quote},
	{"=> ", Link},
	{"```", LiteralDelimiter},
}

// Classify returns the category of line: the first rule whose prefix
// matches wins, and a line matching no rule is PlainText.
func Classify(line string) Category {
	for _, r := range rules {
		if strings.HasPrefix(line, r.prefix) {
			return r.category
		}
	}
	return PlainText
}

// Prefix returns the marker stripped from lines of category c.
// PlainText has no marker.
func Prefix(c Category) string {
	for _, r := range rules {
		if r.category == c {
			return r.prefix
		}
	}
	return ""
}
