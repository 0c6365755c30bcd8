// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package revise implements one round of the interactive revision loop:
// a free-text change request becomes a complete rewrite of the paper
// with freshly rendered artifacts.
package revise

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/paperforge/internal/compose"
	"github.com/pdiddy/paperforge/internal/pipeline"
	"github.com/pdiddy/paperforge/internal/render"
	"github.com/pdiddy/paperforge/pkg/types"
)

// ErrEmptyChangeRequest rejects a blank change request. No model call is
// made and the previous session stands unchanged.
var ErrEmptyChangeRequest = errors.New("change request is empty")

// Revise rewrites the paper around the change request and regenerates
// both artifacts, returning a wholly new session derived from the
// previous one's topic. The previous session is never mutated; its
// artifact files stay on disk but are no longer referenced. When Revise
// returns an error, or a session that did not reach the rendered stage,
// the caller should keep the previous session as current.
func Revise(ctx context.Context, g compose.Generator, r *render.Renderer, prev types.Session, changeRequest string, w io.Writer) (types.Session, error) {
	if strings.TrimSpace(changeRequest) == "" {
		return prev, ErrEmptyChangeRequest
	}

	fmt.Fprintf(w, "Applying changes: %s\n", changeRequest)

	paper, err := compose.Rewrite(ctx, g, prev.Paper, changeRequest)
	if err != nil {
		return prev, err
	}

	next := pipeline.NewSession(prev.Topic)
	next.Research = prev.Research
	next = next.Advance(types.StageResearched)
	next.Paper = paper
	next = next.Advance(types.StageWritten)

	return pipeline.RenderInto(next, r, w), nil
}
