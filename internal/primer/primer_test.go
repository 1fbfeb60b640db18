// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package primer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anchortext/anchortext/pkg/types"
)

type fakeBackend struct {
	response string
	err      error
	prompts  []string
}

func (f *fakeBackend) Complete(ctx context.Context, system, user string) (string, error) {
	f.prompts = append(f.prompts, user)
	return f.response, f.err
}

const primerText = "The scientist formed a hypothesis about the unpredictable combination of chemicals."

func TestGenerateLocal(t *testing.T) {
	g := NewGenerator(nil, types.PrimerConfig{})
	blocks := g.Generate(context.Background(), primerText)
	require.NotEmpty(t, blocks)

	assert.Equal(t, "WARM-UP: Preview These Words", blocks[0].PlainText())
	assert.True(t, blocks[0].Runs[0].Style.Bold())

	joined := make([]string, len(blocks))
	for i := range blocks {
		joined[i] = blocks[i].PlainText()
	}
	all := strings.Join(joined, "\n")

	// Word entries render with syllable dots and a pronunciation.
	assert.Contains(t, all, "un·pre·dict·able")
	assert.Contains(t, all, "[")

	// Practice section with answers.
	assert.Contains(t, all, "Quick Practice")
	assert.Contains(t, all, "____ syllables")
	assert.Contains(t, all, "(Answers: ")

	// Separator rule closes the section.
	assert.Equal(t, strings.Repeat("─", 40), blocks[len(blocks)-1].PlainText())
}

func TestGenerateEmptyWhenNoDifficultWords(t *testing.T) {
	g := NewGenerator(nil, types.PrimerConfig{})
	assert.Nil(t, g.Generate(context.Background(), "The cat sat on the mat."))
}

func TestGenerateWithBackend(t *testing.T) {
	fb := &fakeBackend{response: `[
		{"word": "unpredictable", "pronunciation": "un-pre-DICT-a-ble",
		 "definition": "impossible to foresee", "example": "The weather was unpredictable."}
	]`}
	g := NewGenerator(fb, types.PrimerConfig{UseLLM: true, WordCount: 1})

	blocks := g.Generate(context.Background(), primerText)
	require.NotEmpty(t, blocks)

	var all strings.Builder
	for i := range blocks {
		all.WriteString(blocks[i].PlainText())
		all.WriteString("\n")
	}
	assert.Contains(t, all.String(), "un-pre-DICT-a-ble")
	assert.Contains(t, all.String(), "impossible to foresee")
	assert.Contains(t, all.String(), `Example: "The weather was unpredictable."`)

	require.Len(t, fb.prompts, 1)
	assert.Contains(t, fb.prompts[0], "Words to define:")
}

func TestGenerateBackendFailureFallsBack(t *testing.T) {
	fb := &fakeBackend{err: errors.New("api down")}
	g := NewGenerator(fb, types.PrimerConfig{UseLLM: true})

	blocks := g.Generate(context.Background(), primerText)
	require.NotEmpty(t, blocks)

	var all strings.Builder
	for i := range blocks {
		all.WriteString(blocks[i].PlainText())
		all.WriteString("\n")
	}
	// Local fallback definitions still appear.
	assert.Contains(t, all.String(), "Practice saying:")
}

func TestLocalDefinitions(t *testing.T) {
	words := []types.WordEntry{
		{
			Word:      "unpredictable",
			Syllables: []string{"un", "pre", "dict", "able"},
			Morphemes: []types.MorphemeInfo{
				{Text: "un", Meaning: "not"},
				{Text: "dict", Meaning: "say, speak"},
			},
		},
		{Word: "banana", Syllables: []string{"ba", "na", "na"}},
	}

	defs := localDefinitions(words)
	require.Len(t, defs, 2)

	// Penultimate syllable uppercased for stress.
	assert.Equal(t, "un-pre-DICT-able", defs[0].Pronunciation)
	assert.Equal(t, "Related to: not, say, speak", defs[0].Definition)
	assert.Equal(t, "Practice saying: unpredictable", defs[0].Example)

	// No known meanings falls back to the syllable-count gloss.
	assert.Equal(t, "A 3-syllable word to practice", defs[1].Definition)
	assert.Equal(t, "ba-NA-na", defs[1].Pronunciation)
}

func TestEnhanceDocumentPrepends(t *testing.T) {
	g := NewGenerator(nil, types.PrimerConfig{})
	doc := &types.Document{}
	var b types.Block
	b.Append(primerText, types.StyleNone)
	doc.AddBlock(b)

	g.EnhanceDocument(context.Background(), doc)

	require.Greater(t, len(doc.Blocks), 1)
	assert.Equal(t, "WARM-UP: Preview These Words", doc.Blocks[0].PlainText())
	// Original text stays, after the primer.
	assert.Equal(t, primerText, doc.Blocks[len(doc.Blocks)-1].PlainText())

	require.NotNil(t, doc.Vocabulary)
	assert.NotEmpty(t, doc.Vocabulary.PreReadingWords)
}

func TestEnhanceDocumentNoopOnEasyText(t *testing.T) {
	g := NewGenerator(nil, types.PrimerConfig{})
	doc := &types.Document{}
	var b types.Block
	b.Append("The cat sat.", types.StyleNone)
	doc.AddBlock(b)

	g.EnhanceDocument(context.Background(), doc)
	assert.Len(t, doc.Blocks, 1)
	assert.Nil(t, doc.Vocabulary)
}
