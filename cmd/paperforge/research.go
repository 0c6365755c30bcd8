// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paperforge/internal/httputil"
	"github.com/pdiddy/paperforge/internal/research"
	"github.com/pdiddy/paperforge/pkg/types"
)

// researchCmd runs the collection stage by itself.
var researchCmd = &cobra.Command{
	Use:   "research [topic]",
	Short: "Collect web research for a topic without writing a paper",
	Long: `Research runs only the collection stage and prints the digest that
would be handed to the writing model. Use --save to keep the collected
material as a YAML file, and --load to print a previously saved file
without querying the search API again.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runResearch,
}

func runResearch(cmd *cobra.Command, args []string) error {
	savePath, _ := cmd.Flags().GetString("save")
	loadPath, _ := cmd.Flags().GetString("load")
	maxResults, _ := cmd.Flags().GetInt("max-results")
	depth, _ := cmd.Flags().GetString("depth")

	out := cmd.OutOrStdout()

	if loadPath != "" {
		bf, err := research.ReadBundleFile(loadPath)
		if err != nil {
			return err
		}
		printBundle(out, bf.ToBundle())
		return nil
	}

	var topic string
	if len(args) > 0 {
		topic = strings.TrimSpace(args[0])
	}
	if topic == "" {
		return errors.New("no topic provided")
	}

	cfg := pipelineConfig()
	if maxResults > 0 {
		cfg.Research.MaxResults = maxResults
	}
	if depth != "" {
		cfg.Research.SearchDepth = depth
	}

	collector := &research.TavilyBackend{Client: httputil.NewClient(cfg.Research.HTTPConfig)}
	bundle := research.Collect(context.Background(), collector, topic, cfg.Research, out)
	printBundle(out, bundle)

	if savePath != "" {
		if err := research.WriteBundleFile(savePath, topic, bundle); err != nil {
			return err
		}
		fmt.Fprintf(out, "Saved research bundle to %s\n", savePath)
	}
	return nil
}

// printBundle writes the digest text with a single trailing newline.
func printBundle(w io.Writer, bundle types.ResearchBundle) {
	fmt.Fprintln(w, strings.TrimRight(bundle.Text, "\n"))
}

func init() {
	researchCmd.Flags().String("save", "", "write the collected research to a YAML file")
	researchCmd.Flags().String("load", "", "print a saved research YAML file instead of querying")
	researchCmd.Flags().Int("max-results", 0, "maximum results to collect (overrides config)")
	researchCmd.Flags().String("depth", "", "search depth, basic or advanced (overrides config)")

	rootCmd.AddCommand(researchCmd)
}
