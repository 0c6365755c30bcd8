// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the paperforge pipeline:
// the session state threaded through the stages, the research bundle fed to
// the writer, the parsed document consumed by the renderers, and the stage
// configuration records.
package types

import "time"

// Stage marks how far a session has progressed through the pipeline.
// Transitions are forward-only; StageFailed is terminal and absorbing.
type Stage string

const (
	StageStart      Stage = "start"
	StageResearched Stage = "researched"
	StageWritten    Stage = "written"
	StageRendered   Stage = "rendered"
	StageFailed     Stage = "failed"
)

// stageRank orders the forward path. StageFailed sits outside the path and
// is handled explicitly by Session.Advance.
var stageRank = map[Stage]int{
	StageStart:      0,
	StageResearched: 1,
	StageWritten:    2,
	StageRendered:   3,
}

// CanAdvance reports whether a transition from s to next is a legal forward
// step. Any stage may fail; a failed session never leaves StageFailed.
func (s Stage) CanAdvance(next Stage) bool {
	if s == StageFailed {
		return false
	}
	if next == StageFailed {
		return true
	}
	cur, ok := stageRank[s]
	if !ok {
		return false
	}
	nxt, ok := stageRank[next]
	if !ok {
		return false
	}
	return nxt == cur+1
}

// ResearchItem is one ranked result from the research service.
type ResearchItem struct {
	// Title is the result title as returned by the service.
	Title string `json:"title" yaml:"title"`

	// Excerpt is the result content truncated to the configured limit.
	Excerpt string `json:"excerpt" yaml:"excerpt"`

	// URL is the source link for the result.
	URL string `json:"url" yaml:"url"`
}

// ResearchBundle is the textual research context handed to the writer.
// When collection fails the bundle degrades to a fallback placeholder
// instead of propagating the error: Degraded is set, Items is empty, and
// Text carries the placeholder. The writing stage treats both forms the
// same way.
type ResearchBundle struct {
	// Text is the formatted bundle embedded into the writing prompt.
	Text string `json:"text" yaml:"text"`

	// Items holds the individual results the text was built from.
	Items []ResearchItem `json:"items,omitempty" yaml:"items,omitempty"`

	// Degraded reports that collection failed and Text is a fallback.
	Degraded bool `json:"degraded,omitempty" yaml:"degraded,omitempty"`

	// Note records why the bundle degraded, empty otherwise.
	Note string `json:"note,omitempty" yaml:"note,omitempty"`
}

// Artifacts holds the paths of the two rendered outputs. The PDF's success
// is independent of the HTML's: a failed PDF pass leaves PDFPath empty and
// PDFErr set while the HTML artifact stands. A failed HTML pass fails the
// render as a whole and both Err fields carry descriptors.
type Artifacts struct {
	// HTMLPath is the rich-text artifact, empty on failure.
	HTMLPath string `json:"html_path,omitempty" yaml:"html_path,omitempty"`

	// PDFPath is the printable artifact, empty on failure.
	PDFPath string `json:"pdf_path,omitempty" yaml:"pdf_path,omitempty"`

	// HTMLErr describes a rich-text emission failure.
	HTMLErr string `json:"html_error,omitempty" yaml:"html_error,omitempty"`

	// PDFErr describes a printable emission failure.
	PDFErr string `json:"pdf_error,omitempty" yaml:"pdf_error,omitempty"`
}

// Session is the full snapshot of one pipeline run: topic, research,
// generated content, parsed structure, and rendered artifacts. A session is
// created fresh per run; a revision round derives a new session from the
// previous one's topic and discards the old content and artifact references
// (the files themselves stay on disk).
//
// Invariant: Artifacts always correspond to the Paper currently held; a
// revision replaces both together, never independently.
type Session struct {
	// RunID uniquely identifies this run.
	RunID string `json:"run_id" yaml:"run_id"`

	// Topic is the research topic the run was started with.
	Topic string `json:"topic" yaml:"topic"`

	// Research is the bundle produced by the collection stage.
	Research ResearchBundle `json:"research" yaml:"research"`

	// Paper is the raw generated text with markdown heading markers.
	Paper string `json:"paper,omitempty" yaml:"paper,omitempty"`

	// Document is the parsed block structure of Paper.
	Document Document `json:"-" yaml:"-"`

	// Artifacts holds the rendered output paths.
	Artifacts Artifacts `json:"artifacts" yaml:"artifacts"`

	// Stage marks pipeline progress.
	Stage Stage `json:"stage" yaml:"stage"`

	// Err holds the failure message when Stage is StageFailed.
	Err string `json:"error,omitempty" yaml:"error,omitempty"`

	// CreatedAt is when the session was created.
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}

// Advance returns a copy of the session at the next stage. Illegal
// transitions (backward, skipping, or out of StageFailed) leave the stage
// untouched, which keeps the marker forward-only by construction.
func (s Session) Advance(next Stage) Session {
	if !s.Stage.CanAdvance(next) {
		return s
	}
	s.Stage = next
	return s
}

// Fail returns a copy of the session marked failed with the given message.
// Failing an already-failed session keeps the original message.
func (s Session) Fail(msg string) Session {
	if s.Stage == StageFailed {
		return s
	}
	s.Stage = StageFailed
	s.Err = msg
	return s
}

// Session status values reported to the user.
const (
	StatusCompleted = "completed"
	StatusFailed    = "failed"
	StatusPartial   = "partial"
)

// Status derives the user-facing run status from the stage marker.
func (s Session) Status() string {
	switch s.Stage {
	case StageRendered:
		return StatusCompleted
	case StageFailed:
		return StatusFailed
	default:
		return StatusPartial
	}
}
