// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package compose

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// OutlineEntry is one heading of a draft, in document order.
type OutlineEntry struct {
	Level int
	Text  string
}

// Outline lists the headings of a markdown draft. It runs a full
// CommonMark parse, so it sees the draft the way a generic markdown
// reader would; the rendering pipeline has its own stricter parser.
func Outline(markdown string) []OutlineEntry {
	src := []byte(markdown)
	doc := goldmark.New().Parser().Parse(text.NewReader(src))

	var entries []OutlineEntry
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if h, ok := n.(*ast.Heading); ok {
			entries = append(entries, OutlineEntry{Level: h.Level, Text: string(h.Text(src))})
		}
		return ast.WalkContinue, nil
	})
	return entries
}

// Title returns the first top-level heading of a draft, or "".
func Title(markdown string) string {
	for _, e := range Outline(markdown) {
		if e.Level == 1 {
			return e.Text
		}
	}
	return ""
}
