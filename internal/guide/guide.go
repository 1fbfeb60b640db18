// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package guide renders a lexical map into a companion vocabulary
// guide: difficulty tiers, root families, practice exercises, and a
// complete word list.
package guide

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/anchortext/anchortext/internal/markdown"
	"github.com/anchortext/anchortext/pkg/types"
)

// Generator builds companion guide documents.
type Generator struct {
	// IncludeExercises adds the practice section.
	IncludeExercises bool
}

// NewGenerator returns a guide generator with exercises enabled.
func NewGenerator() *Generator {
	return &Generator{IncludeExercises: true}
}

// Generate renders the lexical map into a guide document titled after
// the source document.
func (g *Generator) Generate(m *types.LexicalMap, sourceTitle string) *types.Document {
	if sourceTitle == "" {
		sourceTitle = "Document"
	}

	doc := &types.Document{
		Metadata: map[string]string{
			"type":   "companion_guide",
			"source": sourceTitle,
		},
	}

	title := types.Block{}
	title.Append("Vocabulary Guide: "+sourceTitle, types.StyleBold)
	doc.AddBlock(title)

	intro := types.Block{}
	intro.Append(fmt.Sprintf(
		"This guide contains %d vocabulary words organized by difficulty and root families. "+
			"Use it to preview challenging words before reading or to review afterward.",
		m.TotalUniqueWords))
	doc.AddBlock(intro)

	appendBlocks(doc, difficultySection(m))
	appendBlocks(doc, rootKeySection(m))
	if g.IncludeExercises {
		appendBlocks(doc, exercisesSection(m))
	}
	appendBlocks(doc, wordListSection(m))

	return doc
}

func appendBlocks(doc *types.Document, blocks []types.Block) {
	for _, b := range blocks {
		doc.AddBlock(b)
	}
}

func difficultySection(m *types.LexicalMap) []types.Block {
	var blocks []types.Block

	header := types.Block{}
	header.Append("Words by Difficulty", types.StyleBold)
	blocks = append(blocks, header)

	if keys := m.DifficultyTiers[types.TierChallenging]; len(keys) > 0 {
		tier := types.Block{}
		tier.Append("Challenging Words (Preview These First)", types.StyleBold|types.StyleItalic)
		blocks = append(blocks, tier)

		for _, key := range limit(keys, 15) {
			if entry, ok := m.Words[key]; ok {
				blocks = append(blocks, wordEntryBlock(entry))
			}
		}
	}

	if keys := m.DifficultyTiers[types.TierMedium]; len(keys) > 0 {
		tier := types.Block{}
		tier.Append("Medium Difficulty", types.StyleBold)
		blocks = append(blocks, tier, tierWordLine(m, limit(keys, 20)))
	}

	if keys := m.DifficultyTiers[types.TierEasy]; len(keys) > 0 {
		tier := types.Block{}
		tier.Append("Easier Words", types.StyleBold)
		blocks = append(blocks, tier, tierWordLine(m, limit(keys, 20)))
	}

	return blocks
}

func tierWordLine(m *types.LexicalMap, keys []string) types.Block {
	words := make([]string, 0, len(keys))
	for _, key := range keys {
		if entry, ok := m.Words[key]; ok {
			words = append(words, entry.Word)
		}
	}
	line := types.Block{}
	line.Append(strings.Join(words, " · "))
	return line
}

func rootKeySection(m *types.LexicalMap) []types.Block {
	var blocks []types.Block

	header := types.Block{}
	header.Append("Root Key: Word Families", types.StyleBold)
	blocks = append(blocks, header)

	intro := types.Block{}
	intro.Append("Words that share a root have related meanings. Learning one root " +
		"helps you decode many words!")
	blocks = append(blocks, intro)

	families := m.RootFamilies()
	if len(families) > 10 {
		families = families[:10]
	}
	for i := range families {
		blocks = append(blocks, familyBlocks(&families[i])...)
	}
	return blocks
}

func familyBlocks(family *types.MorphemeFamily) []types.Block {
	var blocks []types.Block

	root := types.Block{}
	root.Append(strings.ToUpper(family.Root.Text), types.StyleBold)
	if family.Root.Meaning != "" {
		root.Append(" = " + family.Root.Meaning)
	}
	if family.Root.Origin != "" {
		root.Append(" ("+family.Root.Origin+")", types.StyleItalic)
	}
	blocks = append(blocks, root)

	n := len(family.Words)
	if n > 8 {
		n = 8
	}
	texts := make([]string, 0, n)
	for i := 0; i < n; i++ {
		texts = append(texts, family.Words[i].SyllableText())
	}
	words := types.Block{}
	words.Append("  → " + strings.Join(texts, ", "))
	blocks = append(blocks, words)

	return blocks
}

func wordEntryBlock(entry *types.WordEntry) types.Block {
	block := types.Block{}
	block.Append(entry.SyllableText(), types.StyleBold)

	var parts []string
	for _, m := range entry.Morphemes {
		if m.Meaning != "" {
			parts = append(parts, fmt.Sprintf("%s (%s)", m.Text, m.Meaning))
		}
	}
	if len(parts) > 0 {
		block.Append(" = " + strings.Join(parts, " + "))
	}
	return block
}

func exercisesSection(m *types.LexicalMap) []types.Block {
	var blocks []types.Block

	header := types.Block{}
	header.Append("Practice Exercises", types.StyleBold)
	blocks = append(blocks, header)

	ex1 := types.Block{}
	ex1.Append("1. Match the Root", types.StyleBold)
	blocks = append(blocks, ex1)

	families := m.RootFamilies()
	if len(families) > 5 {
		families = families[:5]
	}
	if len(families) > 0 {
		intro := types.Block{}
		intro.Append("Draw lines to connect words with their root meaning:")
		blocks = append(blocks, intro)

		for i := range families {
			if len(families[i].Words) == 0 {
				continue
			}
			line := types.Block{}
			line.Append(fmt.Sprintf("  %s  →  ____%s____",
				families[i].Words[0].Word, families[i].Root.Meaning))
			blocks = append(blocks, line)
		}
	}

	ex2 := types.Block{}
	ex2.Append("2. Count the Syllables", types.StyleBold)
	blocks = append(blocks, ex2)

	var challenging []*types.WordEntry
	for _, key := range limit(m.DifficultyTiers[types.TierChallenging], 5) {
		if entry, ok := m.Words[key]; ok {
			challenging = append(challenging, entry)
		}
	}
	if len(challenging) > 0 {
		var answers []string
		for _, entry := range challenging {
			line := types.Block{}
			line.Append("  " + entry.Word + ": ____ syllables")
			blocks = append(blocks, line)
			answers = append(answers, fmt.Sprintf("%s=%d", entry.Word, len(entry.Syllables)))
		}
		answerLine := types.Block{}
		answerLine.Append("Answers: "+strings.Join(answers, ", "), types.StyleItalic)
		blocks = append(blocks, answerLine)
	}

	return blocks
}

func wordListSection(m *types.LexicalMap) []types.Block {
	var blocks []types.Block

	header := types.Block{}
	header.Append("Complete Word List", types.StyleBold)
	blocks = append(blocks, header)

	entries := make([]*types.WordEntry, 0, len(m.Words))
	for _, key := range m.Keys() {
		entries = append(entries, m.Words[key])
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return strings.ToLower(entries[i].Word) < strings.ToLower(entries[j].Word)
	})

	currentLetter := ""
	var currentWords []string

	flush := func() {
		if len(currentWords) > 0 {
			line := types.Block{}
			line.Append(strings.Join(currentWords, ", "))
			blocks = append(blocks, line)
			currentWords = nil
		}
	}

	for _, entry := range entries {
		if entry.Word == "" {
			continue
		}
		first := strings.ToUpper(entry.Word[:1])
		if first != currentLetter {
			flush()
			currentLetter = first
			letter := types.Block{}
			letter.Append(currentLetter, types.StyleBold)
			blocks = append(blocks, letter)
		}
		currentWords = append(currentWords, entry.SyllableText())
	}
	flush()

	return blocks
}

func limit(keys []string, n int) []string {
	if len(keys) > n {
		return keys[:n]
	}
	return keys
}

// SaveText writes the guide to path as markdown-styled plain text.
func SaveText(doc *types.Document, path string) error {
	if err := os.WriteFile(path, []byte(markdown.ToMarkdown(doc)), 0o644); err != nil {
		return fmt.Errorf("writing guide %s: %w", path, err)
	}
	return nil
}
