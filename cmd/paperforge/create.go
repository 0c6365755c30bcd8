// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paperforge/internal/compose"
	"github.com/pdiddy/paperforge/internal/httputil"
	"github.com/pdiddy/paperforge/internal/ledger"
	"github.com/pdiddy/paperforge/internal/pipeline"
	"github.com/pdiddy/paperforge/internal/render"
	"github.com/pdiddy/paperforge/internal/research"
	"github.com/pdiddy/paperforge/internal/revise"
	"github.com/pdiddy/paperforge/pkg/types"
)

// createCmd runs the full pipeline for one topic and then offers the
// interactive revision loop.
var createCmd = &cobra.Command{
	Use:   "create [topic]",
	Short: "Create a research paper on a topic",
	Long: `Create runs the full pipeline: collect web research on the topic, write
a paper draft with a generative model, and render it as an HTML document
and a PDF. When the paper is done you can request changes interactively;
each accepted change rewrites the paper and renders fresh documents.

With no topic argument the command prompts for one. Use --no-input for
unattended runs; the topic argument is then required and the revision
loop is skipped.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCreate,
}

func runCreate(cmd *cobra.Command, args []string) error {
	noInput, _ := cmd.Flags().GetBool("no-input")
	outputDir, _ := cmd.Flags().GetString("output-dir")

	cfg := pipelineConfig()
	if outputDir != "" {
		cfg.Render.OutputDir = outputDir
	}

	out := cmd.OutOrStdout()
	in := bufio.NewReader(cmd.InOrStdin())

	fmt.Fprintln(out, "AI Research Paper Creator")
	fmt.Fprintln(out, strings.Repeat("=", 40))

	var topic string
	if len(args) > 0 {
		topic = strings.TrimSpace(args[0])
	}
	if topic == "" && !noInput {
		fmt.Fprint(out, "Enter your research topic: ")
		topic, _ = readLine(in)
	}
	if topic == "" {
		fmt.Fprintln(out, "Please enter a valid topic")
		return errors.New("no topic provided")
	}

	fmt.Fprintf(out, "\nCreating research paper on: %s\n", topic)
	fmt.Fprintln(out, "Starting research and writing process...")
	fmt.Fprintln(out)

	writer, err := compose.NewOpenAIBackend(cfg.Writer)
	if err != nil {
		return err
	}
	collector := &research.TavilyBackend{Client: httputil.NewClient(cfg.Research.HTTPConfig)}
	renderer := render.New(cfg.Render)

	p := pipeline.New(collector, writer, renderer, cfg)
	session := p.Run(context.Background(), topic, out)

	store, err := ledger.Open(cfg.Ledger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: run ledger unavailable: %v\n", err)
	} else {
		defer store.Close()
	}
	recordRun(store, session, ledger.KindCreate)

	printSummary(out, session, renderer.OutDir)

	if session.Status() != types.StatusCompleted {
		return errors.New(session.Err)
	}

	if !noInput {
		revisionLoop(context.Background(), in, out, writer, renderer, session, func(s types.Session) {
			recordRun(store, s, ledger.KindRevise)
		})
	}
	return nil
}

// readLine reads one trimmed line. A final unterminated line still counts
// as input; only exhausted input reports an error.
func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	line = strings.TrimSpace(line)
	if err != nil && line == "" {
		return "", err
	}
	return line, nil
}

// recordRun writes one ledger row, best effort. A nil store or a write
// failure never disturbs the run itself.
func recordRun(store *ledger.Store, s types.Session, kind string) {
	if store == nil {
		return
	}
	if err := store.Record(context.Background(), s, compose.Title(s.Paper), kind); err != nil {
		fmt.Fprintf(os.Stderr, "warning: recording run: %v\n", err)
	}
}

// artifactLine renders an artifact path, or its failure descriptor when
// the file was not written.
func artifactLine(path, errDesc string) string {
	if path != "" {
		return path
	}
	if errDesc != "" {
		return errDesc
	}
	return "not created"
}

// printSummary prints the end-of-run report: the banner, artifact
// locations, and the paper's section structure.
func printSummary(w io.Writer, s types.Session, outDir string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Repeat("=", 50))
	if s.Status() == types.StatusCompleted {
		fmt.Fprintln(w, "RESEARCH PAPER COMPLETED")
	} else {
		fmt.Fprintln(w, "RESEARCH PAPER FAILED")
	}
	fmt.Fprintln(w, strings.Repeat("=", 50))
	fmt.Fprintf(w, "Topic: %s\n", s.Topic)

	if s.Status() != types.StatusCompleted {
		fmt.Fprintf(w, "Error: %s\n", s.Err)
		return
	}

	fmt.Fprintf(w, "HTML document: %s\n", artifactLine(s.Artifacts.HTMLPath, s.Artifacts.HTMLErr))
	fmt.Fprintf(w, "PDF document: %s\n", artifactLine(s.Artifacts.PDFPath, s.Artifacts.PDFErr))

	printStructure(w, s.Paper)

	fmt.Fprintf(w, "\nDocuments saved in: %s/\n", outDir)
}

// printStructure lists the paper's second-level headings as its section
// outline. Drafts without sections print nothing.
func printStructure(w io.Writer, paper string) {
	var sections []string
	for _, e := range compose.Outline(paper) {
		if e.Level == 2 {
			sections = append(sections, e.Text)
		}
	}
	if len(sections) == 0 {
		return
	}
	fmt.Fprintln(w, "\nPaper structure:")
	for _, name := range sections {
		fmt.Fprintf(w, "   - %s\n", name)
	}
}

// revisionLoop drives the interactive change cycle until the user is done
// or input ends. Each accepted change replaces the current session and is
// reported through revised; a rejected or failed change keeps the current
// session standing.
func revisionLoop(ctx context.Context, in *bufio.Reader, out io.Writer, g compose.Generator, r *render.Renderer, current types.Session, revised func(types.Session)) types.Session {
	for {
		fmt.Fprint(out, "\nWould you like to make any changes to the paper? (y/n): ")
		answer, err := readLine(in)
		if err != nil {
			return current
		}

		switch strings.ToLower(answer) {
		case "y":
			fmt.Fprint(out, "Describe the changes you want to make: ")
			request, err := readLine(in)
			if err != nil {
				return current
			}

			next, err := revise.Revise(ctx, g, r, current, request, out)
			if errors.Is(err, revise.ErrEmptyChangeRequest) {
				fmt.Fprintln(out, "Please provide a valid change request.")
				continue
			}
			if err != nil {
				fmt.Fprintf(out, "Edit error: %v\n", err)
				continue
			}
			if next.Status() != types.StatusCompleted {
				fmt.Fprintf(out, "Edit failed: %s\n", next.Err)
				continue
			}

			current = next
			if revised != nil {
				revised(current)
			}
			fmt.Fprintln(out, "Changes applied successfully!")
			fmt.Fprintf(out, "Updated HTML document: %s\n", artifactLine(current.Artifacts.HTMLPath, current.Artifacts.HTMLErr))
			fmt.Fprintf(out, "Updated PDF document: %s\n", artifactLine(current.Artifacts.PDFPath, current.Artifacts.PDFErr))

		case "n":
			fmt.Fprintln(out, "\nResearch paper creation completed successfully!")
			return current

		default:
			fmt.Fprintln(out, "Please enter 'y' for yes or 'n' for no.")
		}
	}
}

func init() {
	createCmd.Flags().Bool("no-input", false, "run unattended: require the topic argument and skip the revision loop")
	createCmd.Flags().String("output-dir", "", "directory for rendered documents (overrides config)")

	rootCmd.AddCommand(createCmd)
}
