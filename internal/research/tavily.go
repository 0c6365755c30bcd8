// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package research

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/pdiddy/paperforge/pkg/types"
)

// tavilyAPIBase is the Tavily search endpoint. Declared as a var so tests
// can substitute an httptest server.
var tavilyAPIBase = "https://api.tavily.com/search"

// Defaults applied when the config leaves a knob unset.
const (
	defaultMaxResults   = 6
	defaultSearchDepth  = "advanced"
	defaultExcerptLimit = 600
)

// TavilyBackend queries the Tavily web search API.
type TavilyBackend struct {
	Client *http.Client
}

// Name returns the backend identifier.
func (b *TavilyBackend) Name() string { return "tavily" }

// Collect posts the widened topic query to Tavily and maps the response
// onto research items, truncating each excerpt to the configured limit.
func (b *TavilyBackend) Collect(ctx context.Context, topic string, cfg types.ResearchConfig) ([]types.ResearchItem, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("tavily API key not configured")
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}
	depth := cfg.SearchDepth
	if depth == "" {
		depth = defaultSearchDepth
	}

	payload := tavilyRequest{
		Query:       BuildQuery(topic),
		SearchDepth: depth,
		MaxResults:  maxResults,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, tavilyAPIBase, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+cfg.APIKey)

	resp, err := b.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tavily API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tavily API returned HTTP %d", resp.StatusCode)
	}

	var parsed tavilyResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("parsing tavily response: %w", err)
	}

	limit := cfg.ExcerptLimit
	if limit <= 0 {
		limit = defaultExcerptLimit
	}

	items := make([]types.ResearchItem, 0, len(parsed.Results))
	for _, r := range parsed.Results {
		items = append(items, types.ResearchItem{
			Title:   r.Title,
			Excerpt: truncateRunes(r.Content, limit),
			URL:     r.URL,
		})
	}
	return items, nil
}

func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

// Tavily wire structures.
type tavilyRequest struct {
	Query             string `json:"query"`
	SearchDepth       string `json:"search_depth"`
	MaxResults        int    `json:"max_results"`
	IncludeAnswer     bool   `json:"include_answer"`
	IncludeRawContent bool   `json:"include_raw_content"`
}

type tavilyResponse struct {
	Results []tavilyResult `json:"results"`
}

type tavilyResult struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Content string `json:"content"`
}
