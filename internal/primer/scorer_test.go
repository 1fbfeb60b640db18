// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package primer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anchortext/anchortext/pkg/types"
)

func TestScoreWord(t *testing.T) {
	var s Scorer
	tests := []struct {
		word string
		want int
	}{
		// 1 syllable, short, regular: base only.
		{"cat", 1},
		// 2 syllables: +1.
		{"happy", 2},
		// "kn" irregular pattern: +1.5 on top of base.
		{"knee", 2},
		// 2 vowel groups (+1), len 8 (+0.5), "tion" irregular (+1.5): 4.0.
		{"question", 4},
		// 4+ syllables (+3), len 10 (+0.5), academic (+2): 6.5.
		{"hypothesis", 6},
		// 4+ syllables (+3), len>10 (+1.5), "able" irregular (+1.5): 7.0.
		{"unpredictable", 7},
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.want, s.ScoreWord(tt.word, nil))
		})
	}
}

func TestScoreWordUsesEntry(t *testing.T) {
	var s Scorer
	entry := &types.WordEntry{
		Word:      "telegraph",
		Syllables: []string{"te", "le", "graph"},
		Morphemes: []types.MorphemeInfo{
			{Text: "tele", Origin: "Greek", Type: types.MorphemePrefix},
			{Text: "graph", Origin: "Greek", Type: types.MorphemeRoot},
		},
	}
	// 3 syllables (+2), len 9 (+0.5), "ph" irregular (+1.5), two Greek
	// morphemes (+0.6): 5.6 -> 5.
	assert.Equal(t, 5, s.ScoreWord("telegraph", entry))

	// Three or more morphemes add another point.
	entry.Morphemes = append(entry.Morphemes, types.MorphemeInfo{Text: "ic", Origin: "Greek", Type: types.MorphemeSuffix})
	assert.Equal(t, 6, s.ScoreWord("telegraph", entry))
}

func TestScoreWordClamps(t *testing.T) {
	var s Scorer
	entry := &types.WordEntry{
		Syllables: []string{"a", "b", "c", "d", "e", "f"},
		Morphemes: []types.MorphemeInfo{
			{Origin: "Greek"}, {Origin: "Greek"}, {Origin: "Greek"},
			{Origin: "Latin"}, {Origin: "Latin"}, {Origin: "Latin"},
			{Origin: "Greek"}, {Origin: "Greek"}, {Origin: "Greek"},
		},
	}
	// 6 syllables (+3), len 12 (+1.5), "tion" (+1.5), 9 morphemes (+1)
	// with classical origins (+2.7): well past the cap.
	got := s.ScoreWord("questionable", entry)
	assert.Equal(t, 10, got)
}

func TestEstimateSyllablesNoLeRule(t *testing.T) {
	// The primer estimator deliberately lacks the consonant+"le" bump.
	assert.Equal(t, 1, estimateSyllables("table"))
	assert.Equal(t, 1, estimateSyllables("make"))
	assert.Equal(t, 3, estimateSyllables("banana"))
	assert.Equal(t, 1, estimateSyllables("xyz"))
}

func TestDifficultWords(t *testing.T) {
	var s Scorer
	text := "The scientist formed a hypothesis about the unpredictable combination. The cat sat."

	words := s.DifficultWords(text, 5, 5)
	require.NotEmpty(t, words)

	// Hardest first, all at or above the minimum.
	for i, w := range words {
		assert.GreaterOrEqual(t, w.DifficultyScore, 5, "word %s", w.Word)
		if i > 0 {
			assert.GreaterOrEqual(t, words[i-1].DifficultyScore, w.DifficultyScore)
		}
	}

	// Easy words never make the cut.
	for _, w := range words {
		assert.NotEqual(t, "cat", w.Word)
	}
}

func TestDifficultWordsCount(t *testing.T) {
	var s Scorer
	text := "hypothesis methodology correlation comprehensive fundamental synthesis paradigm phenomenon"
	words := s.DifficultWords(text, 3, 1)
	assert.Len(t, words, 3)
}
