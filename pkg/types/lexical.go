// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"sort"
	"strings"
)

// MorphemeType classifies a morpheme's position within a word.
type MorphemeType string

const (
	MorphemePrefix MorphemeType = "prefix"
	MorphemeRoot   MorphemeType = "root"
	MorphemeSuffix MorphemeType = "suffix"
)

// MorphemeInfo describes one meaningful word fragment.
type MorphemeInfo struct {
	Text    string       `json:"text" yaml:"text"`
	Meaning string       `json:"meaning,omitempty" yaml:"meaning,omitempty"`
	Origin  string       `json:"origin,omitempty" yaml:"origin,omitempty"`
	Type    MorphemeType `json:"type" yaml:"type"`
}

// WordEntry is one distinct word found in a document, with its
// morphological breakdown.
type WordEntry struct {
	// Word keeps the casing of the first occurrence; map keys are
	// always the lowercased form.
	Word            string         `json:"word" yaml:"word"`
	Root            string         `json:"root,omitempty" yaml:"root,omitempty"`
	Morphemes       []MorphemeInfo `json:"morphemes,omitempty" yaml:"morphemes,omitempty"`
	Syllables       []string       `json:"syllables,omitempty" yaml:"syllables,omitempty"`
	Frequency       int            `json:"frequency" yaml:"frequency"`
	DifficultyScore int            `json:"difficulty" yaml:"difficulty"`
	FirstOccurrence int            `json:"first_occurrence" yaml:"first_occurrence"`
}

// SyllableText returns the word with middle dots between syllables.
func (e *WordEntry) SyllableText() string {
	if len(e.Syllables) == 0 {
		return e.Word
	}
	return strings.Join(e.Syllables, "·")
}

// MorphemeFamily groups document words sharing one root morpheme.
// Families require at least two member words.
type MorphemeFamily struct {
	Root  MorphemeInfo `json:"root" yaml:"root"`
	Words []WordEntry  `json:"words" yaml:"words"`
}

// Difficulty tier names used by LexicalMap.
const (
	TierEasy        = "easy"        // scores 1-3
	TierMedium      = "medium"      // scores 4-6
	TierChallenging = "challenging" // scores 7-10
)

// LexicalMap is the complete vocabulary analysis of one document.
//
// Words are keyed by lowercased form. Tier placement happens once, at
// insertion: a repeat insert only bumps Frequency and never moves the
// word between tiers, even if the new entry carries a different score.
type LexicalMap struct {
	Words            map[string]*WordEntry `json:"words" yaml:"words"`
	Families         []MorphemeFamily      `json:"families,omitempty" yaml:"families,omitempty"`
	DifficultyTiers  map[string][]string   `json:"difficulty_tiers" yaml:"difficulty_tiers"`
	TotalUniqueWords int                   `json:"total_unique_words" yaml:"total_unique_words"`

	// order preserves insertion order of keys for deterministic output.
	order []string
}

// NewLexicalMap returns an empty lexical map with initialized tiers.
func NewLexicalMap() *LexicalMap {
	return &LexicalMap{
		Words: make(map[string]*WordEntry),
		DifficultyTiers: map[string][]string{
			TierEasy:        {},
			TierMedium:      {},
			TierChallenging: {},
		},
	}
}

// AddWord inserts a word entry or, when the word is already present,
// increments its frequency.
func (m *LexicalMap) AddWord(entry WordEntry) {
	key := strings.ToLower(entry.Word)
	if existing, ok := m.Words[key]; ok {
		existing.Frequency++
		return
	}

	if entry.Frequency == 0 {
		entry.Frequency = 1
	}
	m.Words[key] = &entry
	m.order = append(m.order, key)
	m.TotalUniqueWords++

	tier := TierChallenging
	switch {
	case entry.DifficultyScore <= 3:
		tier = TierEasy
	case entry.DifficultyScore <= 6:
		tier = TierMedium
	}
	m.DifficultyTiers[tier] = append(m.DifficultyTiers[tier], key)
}

// Keys returns the word keys in insertion order.
func (m *LexicalMap) Keys() []string {
	keys := make([]string, len(m.order))
	copy(keys, m.order)
	return keys
}

// RootFamilies groups the current words by normalized root and returns
// families with two or more members, largest first. Ties keep the order
// in which their roots were first encountered. The root's meaning and
// origin are filled in from the first member morpheme that knows them.
func (m *LexicalMap) RootFamilies() []MorphemeFamily {
	groups := make(map[string][]WordEntry)
	var rootOrder []string

	for _, key := range m.order {
		entry := m.Words[key]
		if entry.Root == "" {
			continue
		}
		rootKey := strings.ToLower(entry.Root)
		if _, seen := groups[rootKey]; !seen {
			rootOrder = append(rootOrder, rootKey)
		}
		groups[rootKey] = append(groups[rootKey], *entry)
	}

	var families []MorphemeFamily
	for _, rootText := range rootOrder {
		words := groups[rootText]
		if len(words) < 2 {
			continue
		}

		root := MorphemeInfo{Text: rootText, Type: MorphemeRoot}
	enrich:
		for _, w := range words {
			for _, mo := range w.Morphemes {
				if strings.ToLower(mo.Text) == rootText && mo.Meaning != "" {
					root.Meaning = mo.Meaning
					root.Origin = mo.Origin
					break enrich
				}
			}
		}
		families = append(families, MorphemeFamily{Root: root, Words: words})
	}

	sort.SliceStable(families, func(i, j int) bool {
		return len(families[i].Words) > len(families[j].Words)
	})
	return families
}
