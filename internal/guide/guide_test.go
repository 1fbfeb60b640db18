// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package guide

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anchortext/anchortext/pkg/types"
)

func buildMap() *types.LexicalMap {
	m := types.NewLexicalMap()
	m.AddWord(types.WordEntry{
		Word: "prediction", Root: "dict",
		Syllables: []string{"pre", "dic", "tion"},
		Morphemes: []types.MorphemeInfo{
			{Text: "pre", Meaning: "before", Origin: "Latin", Type: types.MorphemePrefix},
			{Text: "dict", Meaning: "say, speak", Origin: "Latin", Type: types.MorphemeRoot},
			{Text: "tion", Meaning: "act/state of", Origin: "Latin", Type: types.MorphemeSuffix},
		},
		DifficultyScore: 8,
	})
	m.AddWord(types.WordEntry{
		Word: "dictate", Root: "dict",
		Syllables:       []string{"dic", "tate"},
		DifficultyScore: 5,
	})
	m.AddWord(types.WordEntry{
		Word: "apple", Syllables: []string{"ap", "ple"},
		Root: "apple", DifficultyScore: 2,
	})
	return m
}

func TestGenerate(t *testing.T) {
	g := NewGenerator()
	doc := g.Generate(buildMap(), "story.txt")

	require.NotEmpty(t, doc.Blocks)
	assert.Equal(t, "Vocabulary Guide: story.txt", doc.Blocks[0].PlainText())
	assert.True(t, doc.Blocks[0].Runs[0].Style.Bold())
	assert.Equal(t, "companion_guide", doc.Metadata["type"])
	assert.Equal(t, "story.txt", doc.Metadata["source"])

	all := doc.PlainText()
	assert.Contains(t, all, "This guide contains 3 vocabulary words")

	// Difficulty tiers.
	assert.Contains(t, all, "Words by Difficulty")
	assert.Contains(t, all, "Challenging Words (Preview These First)")
	assert.Contains(t, all, "pre·dic·tion = pre (before) + dict (say, speak) + tion (act/state of)")
	assert.Contains(t, all, "Medium Difficulty")
	assert.Contains(t, all, "Easier Words")

	// Root family key.
	assert.Contains(t, all, "Root Key: Word Families")
	assert.Contains(t, all, "DICT = say, speak")
	assert.Contains(t, all, "(Latin)")
	assert.Contains(t, all, "→ pre·dic·tion, dic·tate")

	// Exercises on by default.
	assert.Contains(t, all, "Practice Exercises")
	assert.Contains(t, all, "prediction  →  ____say, speak____")
	assert.Contains(t, all, "prediction: ____ syllables")
	assert.Contains(t, all, "Answers: prediction=3")

	// Alphabetical word list with letter headers.
	assert.Contains(t, all, "Complete Word List")
	idxA := strings.Index(all, "Complete Word List")
	assert.Greater(t, strings.Index(all[idxA:], "ap·ple"), 0)
}

func TestGenerateWithoutExercises(t *testing.T) {
	g := NewGenerator()
	g.IncludeExercises = false
	doc := g.Generate(buildMap(), "story.txt")

	all := doc.PlainText()
	assert.NotContains(t, all, "Practice Exercises")
	assert.Contains(t, all, "Complete Word List")
}

func TestGenerateDefaultTitle(t *testing.T) {
	doc := NewGenerator().Generate(types.NewLexicalMap(), "")
	assert.Equal(t, "Vocabulary Guide: Document", doc.Blocks[0].PlainText())
}

func TestWordListGroupsByLetter(t *testing.T) {
	m := types.NewLexicalMap()
	m.AddWord(types.WordEntry{Word: "banana", DifficultyScore: 2})
	m.AddWord(types.WordEntry{Word: "apple", DifficultyScore: 2})
	m.AddWord(types.WordEntry{Word: "avocado", DifficultyScore: 2})

	blocks := wordListSection(m)
	texts := make([]string, len(blocks))
	for i := range blocks {
		texts[i] = blocks[i].PlainText()
	}

	assert.Equal(t, []string{
		"Complete Word List",
		"A",
		"apple, avocado",
		"B",
		"banana",
	}, texts)
}

func TestSaveText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "guide.txt")
	doc := NewGenerator().Generate(buildMap(), "story.txt")

	require.NoError(t, SaveText(doc, path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "**Vocabulary Guide: story.txt**")
}
