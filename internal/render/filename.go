// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"strings"
	"time"
	"unicode"
)

// maxTopicRunes caps the sanitized topic fragment used in filenames.
const maxTopicRunes = 30

// SafeTopic reduces a free-form topic to a filename-safe fragment:
// only letters, digits, spaces, hyphens and underscores survive, spaces
// become underscores, and the result is truncated to 30 runes.
func SafeTopic(topic string) string {
	var b strings.Builder
	for _, r := range topic {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteRune(r)
		}
	}
	safe := strings.ReplaceAll(b.String(), " ", "_")
	runes := []rune(safe)
	if len(runes) > maxTopicRunes {
		runes = runes[:maxTopicRunes]
	}
	return string(runes)
}

// BaseName derives the extension-less artifact name for a run, keyed by
// topic and timestamp so successive runs never collide.
func BaseName(topic string, now time.Time) string {
	return "research_paper_" + SafeTopic(topic) + "_" + now.Format("20060102_150405")
}
