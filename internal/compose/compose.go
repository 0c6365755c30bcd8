// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package compose turns a topic and its research digest into a complete
// markdown paper draft through a text generation model, and rewrites
// existing drafts to fold in revision requests.
package compose

import (
	"context"
	"fmt"
	"strings"

	"github.com/pdiddy/paperforge/pkg/types"
)

// Generator produces paper text from a single prompt.
type Generator interface {
	Name() string
	Generate(ctx context.Context, prompt string) (string, error)
}

// Write generates the initial paper draft for a topic. The research
// digest rides in the prompt whether it is a full bundle or the degraded
// sentinel; in the degraded case the model writes from its own knowledge.
func Write(ctx context.Context, g Generator, topic string, bundle types.ResearchBundle) (string, error) {
	raw, err := g.Generate(ctx, WritingPrompt(topic, bundle.Text))
	if err != nil {
		return "", fmt.Errorf("generating paper: %w", err)
	}
	paper, err := Clean(raw)
	if err != nil {
		return "", fmt.Errorf("generating paper: %w", err)
	}
	return paper, nil
}

// Rewrite produces a full replacement draft incorporating the requested
// changes. The entire current draft travels in the prompt and the model
// returns a complete paper, not a diff.
func Rewrite(ctx context.Context, g Generator, current, changeRequest string) (string, error) {
	raw, err := g.Generate(ctx, RevisionPrompt(changeRequest, current))
	if err != nil {
		return "", fmt.Errorf("revising paper: %w", err)
	}
	paper, err := Clean(raw)
	if err != nil {
		return "", fmt.Errorf("revising paper: %w", err)
	}
	return paper, nil
}

// Clean trims model output down to the usable draft. Empty output is an
// error: downstream stages would have nothing to render.
func Clean(raw string) (string, error) {
	paper := strings.TrimSpace(raw)
	if paper == "" {
		return "", fmt.Errorf("model returned empty paper")
	}
	return paper, nil
}
