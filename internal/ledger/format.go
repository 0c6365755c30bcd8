// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ledger

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// FormatTable writes entries as a human-readable table to w.
func FormatTable(entries []Entry, w io.Writer) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No runs recorded.")
		return
	}

	fmt.Fprintf(w, "%-16s  %-30s  %-7s  %-9s  %s\n",
		"When", "Topic", "Kind", "Status", "Artifact")
	fmt.Fprintln(w, strings.Repeat("-", 90))

	for _, e := range entries {
		artifact := filepath.Base(e.HTMLPath)
		if artifact == "." {
			artifact = e.Err
		}
		status := e.Status
		if e.Degraded && e.Status == "completed" {
			status = "completed*"
		}
		fmt.Fprintf(w, "%-16s  %-30s  %-7s  %-9s  %s\n",
			e.CreatedAt.Local().Format("2006-01-02 15:04"),
			truncate(e.Topic, 30), e.Kind, status, artifact)
	}

	fmt.Fprintf(w, "\n%d runs (* research degraded)\n", len(entries))
}

// FormatJSON writes entries as indented JSON to w.
func FormatJSON(entries []Entry, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(entries)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
