// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the paperforge CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/paperforge/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// rootCmd is the base command for the paperforge CLI.
var rootCmd = &cobra.Command{
	Use:   "paperforge",
	Short: "Turn a topic into a researched, rendered paper",
	Long: `paperforge turns a topic string into a formatted research paper: it
queries a web research service, hands the findings to a generative text
model, and renders the resulting draft into an HTML paper and a printable
PDF. Completed papers can be revised interactively until you are happy
with them.

The create command runs the whole pipeline; research runs only the
collection stage; history lists past runs.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// A .env file feeds both the PAPERFORGE_* settings and the
		// API key environment lookups. Absence is not an error.
		_ = godotenv.Load()

		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./paperforge.yaml or ~/.config/paperforge/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("paperforge")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "paperforge"))
		}
	}

	viper.SetEnvPrefix("PAPERFORGE")
	viper.AutomaticEnv()

	viper.SetDefault("http.timeout", "60s")
	viper.SetDefault("http.user_agent", "paperforge/0.1")
	viper.SetDefault("research.max_results", 6)
	viper.SetDefault("research.search_depth", "advanced")
	viper.SetDefault("research.excerpt_limit", 600)
	viper.SetDefault("writer.model", "gpt-4o-mini")
	viper.SetDefault("writer.temperature", 0.7)
	viper.SetDefault("render.output_dir", "doc")
	viper.SetDefault("ledger.path", "doc/runs.db")

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
