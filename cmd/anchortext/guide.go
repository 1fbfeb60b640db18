// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/anchortext/anchortext/internal/formats"
	"github.com/anchortext/anchortext/internal/guide"
	"github.com/anchortext/anchortext/internal/lexical"
	"github.com/anchortext/anchortext/pkg/types"
)

var guideCmd = &cobra.Command{
	Use:   "guide <input> [output]",
	Short: "Generate a companion vocabulary guide",
	Long: `Guide analyzes a document's vocabulary and renders a companion study
guide: words by difficulty tier, root families with meanings, practice
exercises, and a complete word list. The default output path appends
"-guide.txt" to the input name.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		noExercises, _ := cmd.Flags().GetBool("no-exercises")

		input := args[0]
		output := strings.TrimSuffix(input, filepath.Ext(input)) + "-guide.txt"
		if len(args) == 2 {
			output = args[1]
		}

		handler, err := formats.NewRegistry().ForPath(input)
		if err != nil {
			return err
		}
		text, err := handler.Read(input)
		if err != nil {
			return err
		}

		analyzer := lexical.NewAnalyzer(nil, types.LexicalConfig{})
		m := analyzer.AnalyzeText(cmd.Context(), text)

		g := guide.NewGenerator()
		g.IncludeExercises = !noExercises
		doc := g.Generate(m, filepath.Base(input))

		if err := guide.SaveText(doc, output); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "wrote %s (%d words, %d families)\n",
			output, m.TotalUniqueWords, len(m.Families))
		return nil
	},
}

func init() {
	guideCmd.Flags().Bool("no-exercises", false, "omit the practice exercises section")

	rootCmd.AddCommand(guideCmd)
}
