// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/anchortext/anchortext/internal/formats"
	"github.com/anchortext/anchortext/internal/llm"
	"github.com/anchortext/anchortext/internal/markdown"
	"github.com/anchortext/anchortext/internal/primer"
	"github.com/anchortext/anchortext/pkg/types"
)

var primerCmd = &cobra.Command{
	Use:   "primer <input>",
	Short: "Generate a pre-reading warm-up section",
	Long: `Primer selects the hardest words of a document and prints a warm-up
section with pronunciations, definitions, and a practice exercise.
With --use-llm the definitions come from the model; otherwise they are
built from the words' own morpheme meanings.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		useLLM, _ := cmd.Flags().GetBool("use-llm")
		wordCount, _ := cmd.Flags().GetInt("words")

		handler, err := formats.NewRegistry().ForPath(args[0])
		if err != nil {
			return err
		}
		text, err := handler.Read(args[0])
		if err != nil {
			return err
		}

		cfg := types.PrimerConfig{
			AIConfig:  aiConfig(),
			UseLLM:    useLLM,
			WordCount: wordCount,
		}
		var backend llm.Backend
		if useLLM {
			backend = llm.NewClient(cfg.AIConfig).Backend()
		}

		g := primer.NewGenerator(backend, cfg)
		blocks := g.Generate(cmd.Context(), text)
		if len(blocks) == 0 {
			fmt.Fprintln(os.Stderr, "no sufficiently difficult words found")
			return nil
		}

		doc := &types.Document{Blocks: blocks}
		fmt.Println(markdown.ToMarkdown(doc))
		return nil
	},
}

func init() {
	primerCmd.Flags().Bool("use-llm", false, "use the model for definitions")
	primerCmd.Flags().Int("words", 5, "number of difficult words to include")

	rootCmd.AddCommand(primerCmd)
}
