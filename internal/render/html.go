// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"
	"html"
	"os"
	"strings"

	"github.com/pdiddy/paperforge/pkg/types"
)

// htmlShell wraps the emitted body. Styling favors print-like reading:
// a serif face, justified paragraphs, and a centered title.
const htmlShell = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
body { font-family: Georgia, "Times New Roman", serif; max-width: 46em; margin: 2.5em auto; padding: 0 1.5em; line-height: 1.6; color: #1a1a1a; }
h1 { text-align: center; font-size: 1.9em; margin-bottom: 1.2em; }
h2 { font-size: 1.4em; margin-top: 1.6em; }
h3 { font-size: 1.15em; margin-top: 1.3em; }
h4 { font-size: 1em; font-style: italic; margin-top: 1.1em; }
p { margin: 0.65em 0; text-align: justify; }
</style>
</head>
<body>
%s</body>
</html>
`

// writeHTML renders every heading and paragraph block to its HTML tag.
// Blank blocks emit no markup; paragraph spacing comes from the styles.
func writeHTML(doc types.Document, topic string, path string) error {
	title := doc.Title()
	if title == "" {
		title = topic
	}

	var body strings.Builder
	for _, b := range doc.Blocks {
		switch b.Kind {
		case types.KindHeading:
			fmt.Fprintf(&body, "<h%d>%s</h%d>\n", b.Level, html.EscapeString(b.Text), b.Level)
		case types.KindParagraph:
			fmt.Fprintf(&body, "<p>%s</p>\n", html.EscapeString(b.Text))
		}
	}

	page := fmt.Sprintf(htmlShell, html.EscapeString(title), body.String())
	return os.WriteFile(path, []byte(page), 0o644)
}
