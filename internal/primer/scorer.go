// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package primer selects the hardest words of a document and renders a
// pre-reading warm-up section with pronunciations, definitions, and a
// short practice exercise.
package primer

import (
	"sort"
	"strings"

	"github.com/anchortext/anchortext/internal/lexical"
	"github.com/anchortext/anchortext/pkg/types"
)

// academicWords lists vocabulary common in educational texts that
// readers tend to find hard. Membership adds a fixed difficulty bump.
var academicWords = map[string]bool{
	"analyze": true, "approach": true, "area": true, "assess": true,
	"assume": true, "authority": true, "available": true, "benefit": true,
	"concept": true, "consist": true, "constitute": true, "context": true,
	"contract": true, "create": true, "data": true, "define": true,
	"derive": true, "distribute": true, "economy": true, "environment": true,
	"establish": true, "estimate": true, "evident": true, "export": true,
	"factor": true, "finance": true, "formula": true, "function": true,
	"identify": true, "income": true, "indicate": true, "individual": true,
	"interpret": true, "involve": true, "issue": true, "labor": true,
	"legal": true, "legislate": true, "major": true, "method": true,
	"occur": true, "percent": true, "period": true, "policy": true,
	"principle": true, "proceed": true, "process": true, "require": true,
	"research": true, "respond": true, "role": true, "section": true,
	"sector": true, "significant": true, "similar": true, "source": true,
	"specific": true, "structure": true, "theory": true, "vary": true,
	"hypothesis": true, "phenomenon": true, "paradigm": true,
	"methodology": true, "synthesis": true, "correlation": true,
	"comprehensive": true, "fundamental": true,
}

// irregularPatterns are letter sequences whose pronunciation cannot be
// decoded letter by letter. A single match bumps the score once.
var irregularPatterns = []string{
	"ough", "tion", "sion", "ight", "eigh", "augh", "ious", "eous",
	"ible", "able", "ture", "sure", "que", "gue", "ph", "psy", "pneum",
	"kn", "wr", "gn", "mb", "bt",
}

// Scorer scores word difficulty for primer selection. Its formula
// weighs syllable count heaviest and differs deliberately from the
// analyzer's morpheme-centric score.
type Scorer struct{}

// ScoreWord scores a word 1-10. entry may be nil; when present its
// syllable and morpheme breakdown sharpens the estimate.
func (Scorer) ScoreWord(word string, entry *types.WordEntry) int {
	lower := strings.ToLower(word)
	score := 1.0

	syllableCount := 0
	if entry != nil && len(entry.Syllables) > 0 {
		syllableCount = len(entry.Syllables)
	} else {
		syllableCount = estimateSyllables(word)
	}
	switch {
	case syllableCount >= 4:
		score += 3
	case syllableCount >= 3:
		score += 2
	case syllableCount >= 2:
		score += 1
	}

	if len(word) > 10 {
		score += 1.5
	} else if len(word) > 7 {
		score += 0.5
	}

	for _, pattern := range irregularPatterns {
		if strings.Contains(lower, pattern) {
			score += 1.5
			break
		}
	}

	if academicWords[lower] {
		score += 2
	}

	if entry != nil && len(entry.Morphemes) > 0 {
		if len(entry.Morphemes) >= 3 {
			score++
		}
		for _, m := range entry.Morphemes {
			if m.Origin == "Greek" || m.Origin == "Latin" {
				score += 0.3
			}
		}
	}

	n := int(score)
	if n > 10 {
		return 10
	}
	if n < 1 {
		return 1
	}
	return n
}

// estimateSyllables counts vowel groups with a silent-e adjustment.
// Unlike the analyzer's estimator it has no consonant+"le" rule; the
// two stay separate on purpose.
func estimateSyllables(word string) int {
	w := strings.ToLower(word)
	count := 0
	prevVowel := false
	for i := 0; i < len(w); i++ {
		v := strings.IndexByte("aeiouy", w[i]) >= 0
		if v && !prevVowel {
			count++
		}
		prevVowel = v
	}
	if strings.HasSuffix(w, "e") && count > 1 {
		count--
	}
	if count < 1 {
		return 1
	}
	return count
}

// DifficultWords returns up to count words from text scoring at least
// minDifficulty, hardest first. Ties keep extraction order. Analysis is
// local only; the primer never blocks on the network to pick words.
func (s Scorer) DifficultWords(text string, count, minDifficulty int) []types.WordEntry {
	analyzer := lexical.NewAnalyzer(nil, types.LexicalConfig{})

	var entries []types.WordEntry
	for _, word := range analyzer.ExtractWords(text) {
		entry := lexical.AnalyzeWordLocally(word)
		entry.DifficultyScore = s.ScoreWord(word, &entry)
		if entry.DifficultyScore >= minDifficulty {
			entries = append(entries, entry)
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].DifficultyScore > entries[j].DifficultyScore
	})
	if len(entries) > count {
		entries = entries[:count]
	}
	return entries
}
