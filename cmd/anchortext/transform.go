// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/anchortext/anchortext/internal/transform"
	"github.com/anchortext/anchortext/pkg/types"
)

var transformCmd = &cobra.Command{
	Use:   "transform <input> <output>",
	Short: "Rewrite a document under the Literacy Bridge Protocol",
	Long: `Transform reads a document, rewrites it through the model with the
protocol's five rules applied at the chosen scaffolding level, and writes
the result in the format the output extension selects.

Levels range from 1 (maximum support: all formatting, syllable dots, and
decoder traps) to 5 (minimal support: layout only). With --adaptive, the
formatting support for a word fades once the reader has seen it enough
times.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		level, _ := cmd.Flags().GetInt("level")
		enhancedTraps, _ := cmd.Flags().GetBool("enhanced-traps")
		withPrimer, _ := cmd.Flags().GetBool("primer")
		adaptive, _ := cmd.Flags().GetBool("adaptive")
		fadeThreshold, _ := cmd.Flags().GetInt("fade-threshold")
		maxTokens, _ := cmd.Flags().GetInt("chunk-tokens")

		cfg := types.TransformConfig{
			AIConfig:      aiConfig(),
			Level:         level,
			EnhancedTraps: enhancedTraps,
			Primer:        withPrimer,
			Adaptive:      adaptive,
			FadeThreshold: fadeThreshold,
			Chunking: types.ChunkingConfig{
				MaxTokens: maxTokens,
			},
		}

		t := transform.New(cfg, os.Stderr)
		doc, err := t.TransformFile(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}

		fmt.Fprintf(os.Stderr, "wrote %s (%d blocks)\n", args[1], len(doc.Blocks))
		if adaptive {
			stats := t.ScaffoldStats()
			fmt.Fprintf(os.Stderr, "adaptive: %s\n", strings.TrimSpace(stats.String()))
		}
		return nil
	},
}

func init() {
	transformCmd.Flags().Int("level", types.LevelMax, "scaffolding level, 1 (max support) to 5 (minimal)")
	transformCmd.Flags().Bool("enhanced-traps", false, "generate multiple-choice decoder traps with lookalike distractors")
	transformCmd.Flags().Bool("primer", false, "prepend a pre-reading warm-up section")
	transformCmd.Flags().Bool("adaptive", false, "fade formatting for words the reader has mastered")
	transformCmd.Flags().Int("fade-threshold", 0, "exposures before a word's support fades (0: profile default)")
	transformCmd.Flags().Int("chunk-tokens", 3000, "per-chunk token budget for large documents")

	rootCmd.AddCommand(transformCmd)
}
