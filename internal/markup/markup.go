// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package markup parses generated paper text into an ordered sequence of
// typed blocks. The subset it understands is deliberately small: heading
// markers of one to four hashes followed by a space, paragraphs, and blank
// separator lines. Everything the renderers know about document structure
// comes from this one pass; the emitters never look at the raw text again.
package markup

import (
	"strings"

	"github.com/pdiddy/paperforge/pkg/types"
)

// MaxHeadingLevel is the deepest heading level the subset recognizes.
// Lines with more hashes are not headings and are dropped outright.
const MaxHeadingLevel = 4

// Parse classifies each line of text into a block. Rules, in order:
//
//   - a line that is empty after trimming becomes a blank block;
//   - a line beginning with 1..4 '#' characters followed by a space becomes
//     a heading of that level, with the text being everything after the
//     marker;
//   - any other line beginning with '#' (five or more hashes, no space
//     after the hashes, or a bare "#") is dropped entirely; it produces
//     no block at all, not a paragraph;
//   - every remaining line becomes a paragraph.
//
// Block order equals line order; blank lines are retained as explicit
// separators so emitters can space content without re-reading the text.
func Parse(text string) types.Document {
	var blocks []types.Block
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			blocks = append(blocks, types.Block{Kind: types.KindBlank})
			continue
		}
		if strings.HasPrefix(line, "#") {
			level, txt, ok := heading(line)
			if !ok {
				continue
			}
			blocks = append(blocks, types.Block{Kind: types.KindHeading, Level: level, Text: txt})
			continue
		}
		blocks = append(blocks, types.Block{Kind: types.KindParagraph, Text: line})
	}
	return types.Document{Blocks: blocks}
}

// heading matches the recognized marker patterns. A marker is exactly
// level hashes plus one space; the hash count is the level. Hash runs
// longer than MaxHeadingLevel and runs not terminated by a space do not
// match.
func heading(line string) (level int, text string, ok bool) {
	n := 0
	for n < len(line) && line[n] == '#' {
		n++
	}
	if n < 1 || n > MaxHeadingLevel {
		return 0, "", false
	}
	if n >= len(line) || line[n] != ' ' {
		return 0, "", false
	}
	return n, line[n+1:], true
}
