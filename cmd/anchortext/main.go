// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the anchortext CLI: transform
// documents under the Literacy Bridge Protocol, analyze vocabulary, and
// generate companion guides and pre-reading primers.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/anchortext/anchortext/internal/secrets"
	"github.com/anchortext/anchortext/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// rootCmd is the base command for the anchortext CLI.
var rootCmd = &cobra.Command{
	Use:   "anchortext",
	Short: "Adaptive reading scaffolds for phonics-based literacy",
	Long: `anchortext rewrites documents under the Literacy Bridge Protocol:
root anchoring, syllable breaking, syntactic spine highlighting, layout
engineering, and decoder traps, with support that fades as the reader
masters individual words.

Each stage is a subcommand: transform rewrites a document, analyze maps
its vocabulary, guide renders a companion study guide, and primer builds
a pre-reading warm-up.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./anchortext.yaml or ~/.config/anchortext/config.yaml)")
	rootCmd.PersistentFlags().String("model", "gpt-4o-mini", "model identifier for transformation and analysis")
	rootCmd.PersistentFlags().String("api-base", "", "base URL of an OpenAI-compatible endpoint (for local models)")
	rootCmd.PersistentFlags().String("api-key", "", "API key (falls back to ANCHORTEXT_API_KEY, then .secrets/openai-api-key)")

	viper.BindPFlag("model", rootCmd.PersistentFlags().Lookup("model"))
	viper.BindPFlag("api_base", rootCmd.PersistentFlags().Lookup("api-base"))
	viper.BindPFlag("api_key", rootCmd.PersistentFlags().Lookup("api-key"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("anchortext")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "anchortext"))
		}
	}

	viper.SetEnvPrefix("ANCHORTEXT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// aiConfig assembles the shared model settings from flags, environment,
// config file, and secret files.
func aiConfig() types.AIConfig {
	return types.AIConfig{
		Model:       viper.GetString("model"),
		APIBase:     viper.GetString("api_base"),
		APIKey:      secrets.APIKey(loadedSecrets, viper.GetString("api_key"), "ANCHORTEXT_API_KEY", "openai-api-key"),
		Temperature: 0.3,
		MaxTokens:   4096,
		MaxRetries:  3,
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
