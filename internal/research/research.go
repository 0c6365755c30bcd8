// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package research gathers background material for a paper topic from an
// external search API and condenses it into a digest the writing model
// can cite from. A failed search never aborts a run: the stage degrades
// to a sentinel bundle and the paper is written from model knowledge.
package research

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/paperforge/pkg/types"
)

// Backend collects raw research items for a topic from one search API.
type Backend interface {
	Name() string
	Collect(ctx context.Context, topic string, cfg types.ResearchConfig) ([]types.ResearchItem, error)
}

// Collect runs the backend and assembles the research bundle. Backend
// failures are reported on w and converted into a degraded bundle so the
// caller can keep going.
func Collect(ctx context.Context, backend Backend, topic string, cfg types.ResearchConfig, w io.Writer) types.ResearchBundle {
	items, err := backend.Collect(ctx, topic, cfg)
	if err != nil {
		fmt.Fprintf(w, "warning: research via %s failed: %v\n", backend.Name(), err)
		return DegradedBundle(topic, err)
	}
	return BuildBundle(topic, items)
}

// BuildQuery widens a bare topic into the query sent to the search API.
func BuildQuery(topic string) string {
	return fmt.Sprintf("academic research %s recent studies findings", topic)
}

// BuildBundle formats collected items into the numbered digest that is
// embedded verbatim in the writing prompt.
func BuildBundle(topic string, items []types.ResearchItem) types.ResearchBundle {
	var b strings.Builder
	fmt.Fprintf(&b, "Research Results for '%s':\n\n", topic)
	for i, item := range items {
		title := item.Title
		if title == "" {
			title = "No Title"
		}
		url := item.URL
		if url == "" {
			url = "No URL"
		}
		fmt.Fprintf(&b, "%d. **%s**\n", i+1, title)
		fmt.Fprintf(&b, "   Content: %s...\n", item.Excerpt)
		fmt.Fprintf(&b, "   Source: %s\n\n", url)
	}
	return types.ResearchBundle{Text: b.String(), Items: items}
}

// DegradedBundle wraps a research failure in a bundle that tells the
// writing model to rely on its own knowledge of the topic.
func DegradedBundle(topic string, err error) types.ResearchBundle {
	return types.ResearchBundle{
		Text:     fmt.Sprintf("Research failed: %v. Using AI knowledge about '%s' instead.", err, topic),
		Degraded: true,
		Note:     err.Error(),
	}
}
