// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline drives the fixed research, write, render sequence over
// a session state value. Each stage is a pure step from one session to
// the next: a failed session passes through later stages untouched, and
// the stage marker only ever moves forward.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pdiddy/paperforge/internal/compose"
	"github.com/pdiddy/paperforge/internal/markup"
	"github.com/pdiddy/paperforge/internal/render"
	"github.com/pdiddy/paperforge/internal/research"
	"github.com/pdiddy/paperforge/pkg/types"
)

// Pipeline wires the stage collaborators together for one or more runs.
type Pipeline struct {
	Collector research.Backend
	Writer    compose.Generator
	Renderer  *render.Renderer
	Config    types.PipelineConfig
}

// New builds a pipeline from its collaborators.
func New(collector research.Backend, writer compose.Generator, renderer *render.Renderer, cfg types.PipelineConfig) *Pipeline {
	return &Pipeline{
		Collector: collector,
		Writer:    writer,
		Renderer:  renderer,
		Config:    cfg,
	}
}

// NewSession creates a fresh session for a topic.
func NewSession(topic string) types.Session {
	return types.Session{
		RunID:     uuid.NewString(),
		Topic:     topic,
		Stage:     types.StageStart,
		CreatedAt: time.Now(),
	}
}

// Run executes one full pass for a topic and returns the final session.
// Run never returns an error and never panics: expected failures are
// folded into the session at their stage boundary, and a final recover
// converts anything unexpected into a failed session.
func (p *Pipeline) Run(ctx context.Context, topic string, w io.Writer) (out types.Session) {
	out = NewSession(topic)

	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(w, "error in workflow: %v\n", r)
			out = out.Fail(fmt.Sprintf("internal error: %v", r))
		}
	}()

	if strings.TrimSpace(topic) == "" {
		return out.Fail("no topic provided")
	}

	fmt.Fprintf(w, "Starting research paper creation for: %s\n", topic)

	out = p.researchStage(ctx, out, w)
	out = p.writeStage(ctx, out, w)
	out = p.renderStage(out, w)
	return out
}

// researchStage collects background material. A collector failure
// degrades the bundle instead of failing the run.
func (p *Pipeline) researchStage(ctx context.Context, s types.Session, w io.Writer) types.Session {
	if s.Stage != types.StageStart {
		return s
	}
	fmt.Fprintf(w, "Researching: %s\n", s.Topic)
	s.Research = research.Collect(ctx, p.Collector, s.Topic, p.Config.Research, w)
	return s.Advance(types.StageResearched)
}

// writeStage generates the paper draft. A generator failure is fatal to
// the run.
func (p *Pipeline) writeStage(ctx context.Context, s types.Session, w io.Writer) types.Session {
	if s.Stage != types.StageResearched {
		return s
	}
	fmt.Fprintf(w, "Writing paper for: %s\n", s.Topic)
	paper, err := compose.Write(ctx, p.Writer, s.Topic, s.Research)
	if err != nil {
		return s.Fail(err.Error())
	}
	s.Paper = paper
	return s.Advance(types.StageWritten)
}

// renderStage parses the draft and emits both artifacts.
func (p *Pipeline) renderStage(s types.Session, w io.Writer) types.Session {
	if s.Stage != types.StageWritten {
		return s
	}
	fmt.Fprintf(w, "Creating documents for: %s\n", s.Topic)
	return RenderInto(s, p.Renderer, w)
}

// RenderInto parses the session's paper and attaches freshly rendered
// artifacts. The initial run and the revision loop share this exact
// transition. Only a failure of the primary HTML pass is fatal; a
// PDF-only failure leaves its descriptor on the session and the stage
// still completes.
func RenderInto(s types.Session, r *render.Renderer, w io.Writer) types.Session {
	if s.Stage != types.StageWritten {
		return s
	}
	s.Document = markup.Parse(s.Paper)

	art, err := r.Render(s.Document, s.Topic)
	s.Artifacts = art
	if err != nil {
		return s.Fail(err.Error())
	}
	if art.PDFErr != "" {
		fmt.Fprintf(w, "warning: %s\n", art.PDFErr)
	}
	return s.Advance(types.StageRendered)
}
