// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddWord(t *testing.T) {
	m := NewLexicalMap()

	m.AddWord(WordEntry{Word: "Dinosaur", DifficultyScore: 7})
	m.AddWord(WordEntry{Word: "volcano", DifficultyScore: 5})
	m.AddWord(WordEntry{Word: "apple", DifficultyScore: 2})

	assert.Equal(t, 3, m.TotalUniqueWords)
	assert.Equal(t, []string{"dinosaur", "volcano", "apple"}, m.Keys())

	// Keyed lowercase, surface form preserved.
	require.Contains(t, m.Words, "dinosaur")
	assert.Equal(t, "Dinosaur", m.Words["dinosaur"].Word)
	assert.Equal(t, 1, m.Words["dinosaur"].Frequency)

	assert.Equal(t, []string{"dinosaur"}, m.DifficultyTiers[TierChallenging])
	assert.Equal(t, []string{"volcano"}, m.DifficultyTiers[TierMedium])
	assert.Equal(t, []string{"apple"}, m.DifficultyTiers[TierEasy])
}

func TestAddWordRepeatBumpsFrequencyOnly(t *testing.T) {
	m := NewLexicalMap()
	m.AddWord(WordEntry{Word: "dinosaur", DifficultyScore: 7})
	// Repeat insert with a different score: frequency bumps, tier and
	// score stay put.
	m.AddWord(WordEntry{Word: "DINOSAUR", DifficultyScore: 2})

	assert.Equal(t, 1, m.TotalUniqueWords)
	assert.Equal(t, 2, m.Words["dinosaur"].Frequency)
	assert.Equal(t, 7, m.Words["dinosaur"].DifficultyScore)
	assert.Equal(t, []string{"dinosaur"}, m.DifficultyTiers[TierChallenging])
	assert.Empty(t, m.DifficultyTiers[TierEasy])
}

func TestRootFamiliesGrouping(t *testing.T) {
	m := NewLexicalMap()
	m.AddWord(WordEntry{Word: "prediction", Root: "dict", Morphemes: []MorphemeInfo{
		{Text: "dict", Meaning: "say, speak", Origin: "Latin", Type: MorphemeRoot},
	}})
	m.AddWord(WordEntry{Word: "telephone", Root: "phon"})
	m.AddWord(WordEntry{Word: "dictate", Root: "DICT"})
	m.AddWord(WordEntry{Word: "phonics", Root: "phon"})
	m.AddWord(WordEntry{Word: "dictionary", Root: "dict"})
	m.AddWord(WordEntry{Word: "lonely", Root: "lone"})

	families := m.RootFamilies()
	require.Len(t, families, 2, "single-member roots form no family")

	// Largest family first; roots normalize case-insensitively.
	assert.Equal(t, "dict", families[0].Root.Text)
	assert.Len(t, families[0].Words, 3)
	assert.Equal(t, "say, speak", families[0].Root.Meaning)
	assert.Equal(t, "Latin", families[0].Root.Origin)

	assert.Equal(t, "phon", families[1].Root.Text)
	assert.Len(t, families[1].Words, 2)
	// No member morpheme knows this root's meaning.
	assert.Empty(t, families[1].Root.Meaning)
}

func TestRootFamiliesTieOrder(t *testing.T) {
	m := NewLexicalMap()
	m.AddWord(WordEntry{Word: "telephone", Root: "phon"})
	m.AddWord(WordEntry{Word: "prediction", Root: "dict"})
	m.AddWord(WordEntry{Word: "phonics", Root: "phon"})
	m.AddWord(WordEntry{Word: "dictate", Root: "dict"})

	families := m.RootFamilies()
	require.Len(t, families, 2)
	// Equal sizes keep first-encounter order of the roots.
	assert.Equal(t, "phon", families[0].Root.Text)
	assert.Equal(t, "dict", families[1].Root.Text)
}

func TestSyllableText(t *testing.T) {
	e := WordEntry{Word: "dinosaur", Syllables: []string{"di", "no", "saur"}}
	assert.Equal(t, "di·no·saur", e.SyllableText())

	plain := WordEntry{Word: "cat"}
	assert.Equal(t, "cat", plain.SyllableText())
}
