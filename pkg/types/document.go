// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// BlockKind tags the variants of a parsed content block.
type BlockKind int

const (
	// KindHeading is a recognized heading line (Level 1..4).
	KindHeading BlockKind = iota

	// KindParagraph is any other non-blank content line.
	KindParagraph

	// KindBlank is an empty line, kept as an explicit separator. Emitters
	// consume blanks as spacing hints, never as paragraphs.
	KindBlank
)

// Block is one typed unit of parsed document structure.
type Block struct {
	// Kind tags the block variant.
	Kind BlockKind `json:"kind"`

	// Level is the heading level (1..4); zero for non-headings.
	Level int `json:"level,omitempty"`

	// Text is the block content without its marker; empty for blanks.
	Text string `json:"text,omitempty"`
}

// Document is an ordered block sequence parsed from generated content.
// Block order equals input line order and must be preserved identically
// across every emitted format: both emitters read this one sequence and
// neither re-parses the raw text, so structural parity holds by
// construction.
type Document struct {
	Blocks []Block `json:"blocks"`
}

// Title returns the text of the first level-1 heading, or "" when the
// document has none.
func (d Document) Title() string {
	for _, b := range d.Blocks {
		if b.Kind == KindHeading && b.Level == 1 {
			return b.Text
		}
	}
	return ""
}

// Paragraphs counts the paragraph blocks in the document.
func (d Document) Paragraphs() int {
	n := 0
	for _, b := range d.Blocks {
		if b.Kind == KindParagraph {
			n++
		}
	}
	return n
}

// Headings counts the heading blocks at the given level; level 0 counts
// headings of every level.
func (d Document) Headings(level int) int {
	n := 0
	for _, b := range d.Blocks {
		if b.Kind != KindHeading {
			continue
		}
		if level == 0 || b.Level == level {
			n++
		}
	}
	return n
}
