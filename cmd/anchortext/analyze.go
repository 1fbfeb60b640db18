// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/anchortext/anchortext/internal/formats"
	"github.com/anchortext/anchortext/internal/lexical"
	"github.com/anchortext/anchortext/internal/llm"
	"github.com/anchortext/anchortext/pkg/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <input>",
	Short: "Build the vocabulary map of a document",
	Long: `Analyze extracts the multisyllabic words of a document, breaks them
into morphemes, scores their difficulty, and groups them into root
families. The lexical map is printed as YAML, or written to a file with
--output.

By default only the local morpheme tables run; --use-llm asks the model
for a deeper breakdown and falls back to the local analysis when the
call fails.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		useLLM, _ := cmd.Flags().GetBool("use-llm")
		minSyllables, _ := cmd.Flags().GetInt("min-syllables")
		output, _ := cmd.Flags().GetString("output")

		handler, err := formats.NewRegistry().ForPath(args[0])
		if err != nil {
			return err
		}
		text, err := handler.Read(args[0])
		if err != nil {
			return err
		}

		cfg := types.LexicalConfig{
			AIConfig:     aiConfig(),
			UseLLM:       useLLM,
			MinSyllables: minSyllables,
		}
		var backend llm.Backend
		if useLLM {
			backend = llm.NewClient(cfg.AIConfig).Backend()
		}
		analyzer := lexical.NewAnalyzer(backend, cfg)

		m := analyzer.AnalyzeText(cmd.Context(), text)
		data, err := yaml.Marshal(m)
		if err != nil {
			return fmt.Errorf("marshaling lexical map: %w", err)
		}

		if output != "" {
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", output, err)
			}
			fmt.Fprintf(os.Stderr, "wrote %s (%d words)\n", output, m.TotalUniqueWords)
			return nil
		}
		fmt.Print(string(data))
		return nil
	},
}

func init() {
	analyzeCmd.Flags().Bool("use-llm", false, "use the model for morpheme analysis")
	analyzeCmd.Flags().Int("min-syllables", 2, "minimum syllables for a word to be analyzed")
	analyzeCmd.Flags().String("output", "", "write the YAML lexical map to a file instead of stdout")

	rootCmd.AddCommand(analyzeCmd)
}
