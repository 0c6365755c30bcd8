// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/viper"

	"github.com/pdiddy/paperforge/internal/secrets"
	"github.com/pdiddy/paperforge/pkg/types"
)

// pipelineConfig assembles the pipeline configuration from viper settings
// and loaded secrets. API keys resolve environment-first, then .secrets/.
func pipelineConfig() types.PipelineConfig {
	httpCfg := types.HTTPConfig{
		Timeout:   viper.GetDuration("http.timeout"),
		UserAgent: viper.GetString("http.user_agent"),
	}

	return types.PipelineConfig{
		Research: types.ResearchConfig{
			HTTPConfig:   httpCfg,
			APIKey:       secrets.Resolve(loadedSecrets, "TAVILY_API_KEY", "tavily-api-key"),
			MaxResults:   viper.GetInt("research.max_results"),
			SearchDepth:  viper.GetString("research.search_depth"),
			ExcerptLimit: viper.GetInt("research.excerpt_limit"),
		},
		Writer: types.WriterConfig{
			Model:       viper.GetString("writer.model"),
			APIKey:      secrets.Resolve(loadedSecrets, "OPENAI_API_KEY", "openai-api-key"),
			BaseURL:     viper.GetString("writer.base_url"),
			Temperature: viper.GetFloat64("writer.temperature"),
		},
		Render: types.RenderConfig{
			OutputDir: viper.GetString("render.output_dir"),
		},
		Ledger: types.LedgerConfig{
			Path: viper.GetString("ledger.path"),
		},
	}
}
