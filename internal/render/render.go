// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render turns a parsed document into the deliverable files: a
// styled HTML paper meant for reading on screen and a printable PDF.
// Both outputs walk the same block sequence, so a heading that appears
// in one always appears in the other at the same position.
package render

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pdiddy/paperforge/pkg/types"
)

// DefaultOutputDir is where deliverables land unless configured otherwise.
const DefaultOutputDir = "doc"

// Renderer writes document artifacts into OutDir. Now is swappable so
// tests can pin the timestamp that goes into generated filenames.
type Renderer struct {
	OutDir string
	Now    func() time.Time
}

// New builds a Renderer from config, falling back to DefaultOutputDir.
func New(cfg types.RenderConfig) *Renderer {
	dir := cfg.OutputDir
	if dir == "" {
		dir = DefaultOutputDir
	}
	return &Renderer{OutDir: dir, Now: time.Now}
}

// Render emits the HTML and PDF artifacts for doc. The HTML pass is the
// primary one: if it fails, no usable deliverable exists and Render
// returns an error with both artifact slots marked failed. A PDF-only
// failure is recorded in Artifacts.PDFErr and does not fail the call,
// since the HTML paper already stands on its own.
func (r *Renderer) Render(doc types.Document, topic string) (types.Artifacts, error) {
	if err := os.MkdirAll(r.OutDir, 0o755); err != nil {
		return types.Artifacts{
			HTMLErr: fmt.Sprintf("document creation failed: %v", err),
			PDFErr:  fmt.Sprintf("PDF creation failed: %v", err),
		}, fmt.Errorf("creating output directory %s: %w", r.OutDir, err)
	}

	base := BaseName(topic, r.now())
	htmlPath := filepath.Join(r.OutDir, base+".html")
	pdfPath := filepath.Join(r.OutDir, base+".pdf")

	if err := writeHTML(doc, topic, htmlPath); err != nil {
		return types.Artifacts{
			HTMLErr: fmt.Sprintf("document creation failed: %v", err),
			PDFErr:  fmt.Sprintf("PDF creation failed: %v", err),
		}, fmt.Errorf("writing HTML document: %w", err)
	}

	art := types.Artifacts{HTMLPath: htmlPath}
	if err := writePDF(doc, pdfPath); err != nil {
		art.PDFErr = fmt.Sprintf("PDF creation failed: %v", err)
	} else {
		art.PDFPath = pdfPath
	}
	return art, nil
}

func (r *Renderer) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}
