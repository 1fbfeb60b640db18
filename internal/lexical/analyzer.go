// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package lexical builds the vocabulary map of a document: it extracts
// multisyllabic words, breaks them into morphemes, scores their
// difficulty, and groups them into root families. Analysis prefers a
// model backend when one is available and silently falls back to the
// local morpheme tables, so it never fails a pipeline run.
package lexical

import (
	"context"
	"encoding/json"
	"regexp"
	"sort"
	"strings"

	"github.com/anchortext/anchortext/internal/llm"
	"github.com/anchortext/anchortext/internal/morpheme"
	"github.com/anchortext/anchortext/internal/syllable"
	"github.com/anchortext/anchortext/pkg/types"
)

// maxBatchWords caps the number of words sent in one analysis call.
const maxBatchWords = 50

var (
	starRun   = regexp.MustCompile(`\*+`)
	trapBlock = regexp.MustCompile(`\[Decoder Check:.*?\]`)
	wordToken = regexp.MustCompile(`[a-zA-Z']+`)
	fenceOpen = regexp.MustCompile("^```(?:json)?\n?")
	fenceEnd  = regexp.MustCompile("\n?```$")
)

// Analyzer extracts and analyzes document vocabulary.
type Analyzer struct {
	backend      llm.Backend
	minSyllables int
}

// NewAnalyzer returns an analyzer configured by cfg. backend may be
// nil, or cfg.UseLLM false, to run on local heuristics only.
func NewAnalyzer(backend llm.Backend, cfg types.LexicalConfig) *Analyzer {
	minSyllables := cfg.MinSyllables
	if minSyllables <= 0 {
		minSyllables = 2
	}
	if !cfg.UseLLM {
		backend = nil
	}
	return &Analyzer{backend: backend, minSyllables: minSyllables}
}

// ExtractWords returns the unique multisyllabic words of text, in
// first-appearance order, keeping the surface form of the first
// occurrence. Formatting markers and decoder-trap blocks are stripped
// first so already-transformed text analyzes the same as plain text.
func (a *Analyzer) ExtractWords(text string) []string {
	clean := starRun.ReplaceAllString(text, "")
	clean = strings.ReplaceAll(clean, "·", "")
	clean = trapBlock.ReplaceAllString(clean, "")

	seen := make(map[string]bool)
	var result []string
	for _, word := range wordToken.FindAllString(clean, -1) {
		key := strings.ToLower(word)
		if seen[key] {
			continue
		}
		if syllable.EstimateCount(word) >= a.minSyllables {
			seen[key] = true
			result = append(result, word)
		}
	}
	return result
}

// AnalyzeWordLocally breaks a word down using only the built-in
// morpheme tables. Prefixes strip in table order, at most one suffix
// strips, and the leftover becomes the root when no table root matches.
func AnalyzeWordLocally(word string) types.WordEntry {
	remaining := strings.ToLower(word)
	var morphemes []types.MorphemeInfo

	for _, p := range morpheme.Prefixes {
		if strings.HasPrefix(remaining, p.Text) && len(remaining) > len(p.Text)+2 {
			morphemes = append(morphemes, types.MorphemeInfo{
				Text:    p.Text,
				Meaning: p.Meaning,
				Origin:  p.Origin,
				Type:    types.MorphemePrefix,
			})
			remaining = remaining[len(p.Text):]
		}
	}

	var suffixes []types.MorphemeInfo
	for _, s := range morpheme.Suffixes {
		if strings.HasSuffix(remaining, s.Text) && len(remaining) > len(s.Text)+2 {
			suffixes = append(suffixes, types.MorphemeInfo{
				Text:    s.Text,
				Meaning: s.Meaning,
				Origin:  s.Origin,
				Type:    types.MorphemeSuffix,
			})
			remaining = remaining[:len(remaining)-len(s.Text)]
			break
		}
	}

	root := ""
	if r, ok := morpheme.FindRoot(remaining); ok {
		root = r.Text
		morphemes = append(morphemes, types.MorphemeInfo{
			Text:    r.Text,
			Meaning: r.Meaning,
			Origin:  r.Origin,
			Type:    types.MorphemeRoot,
		})
	} else if remaining != "" {
		root = remaining
		morphemes = append(morphemes, types.MorphemeInfo{
			Text: remaining,
			Type: types.MorphemeRoot,
		})
	}

	morphemes = append(morphemes, suffixes...)

	return types.WordEntry{
		Word:            word,
		Root:            root,
		Morphemes:       morphemes,
		Syllables:       syllable.Split(word),
		Frequency:       1,
		DifficultyScore: EstimateDifficulty(word, morphemes),
	}
}

// EstimateDifficulty scores a word 1-10 from its length and morpheme
// structure. Classical origins and morphemes with unknown meanings
// push the score up.
func EstimateDifficulty(word string, morphemes []types.MorphemeInfo) int {
	difficulty := 5.0

	if len(word) > 10 {
		difficulty++
	}
	if len(word) > 14 {
		difficulty++
	}

	if len(morphemes) > 3 {
		difficulty++
	}

	for _, m := range morphemes {
		switch m.Origin {
		case "Greek":
			difficulty += 0.5
		case "Latin":
			difficulty += 0.3
		}
		if m.Meaning == "" {
			difficulty += 0.5
		}
	}

	score := int(difficulty)
	if score > 10 {
		return 10
	}
	if score < 1 {
		return 1
	}
	return score
}

// wordAnalysis is the per-word schema of the model's JSON response.
type wordAnalysis struct {
	Word      string `json:"word"`
	Root      string `json:"root"`
	Morphemes []struct {
		Text    string `json:"text"`
		Type    string `json:"type"`
		Meaning string `json:"meaning"`
		Origin  string `json:"origin"`
	} `json:"morphemes"`
	Syllables  []string `json:"syllables"`
	Difficulty int      `json:"difficulty"`
}

// analyzeWordsWithLLM asks the backend for a morpheme breakdown of up
// to maxBatchWords words. Any failure, including an unparseable
// response, degrades to local analysis; every input word yields exactly
// one entry either way.
func (a *Analyzer) analyzeWordsWithLLM(ctx context.Context, words []string) []types.WordEntry {
	if len(words) == 0 {
		return nil
	}

	batch := words
	if len(batch) > maxBatchWords {
		batch = batch[:maxBatchWords]
	}
	prompt := analysisPrompt + strings.Join(batch, "\n")

	content, err := a.backend.Complete(ctx, "", prompt)
	if err != nil || content == "" {
		return analyzeAllLocally(words)
	}
	return a.parseAnalysis(content, words)
}

// parseAnalysis decodes the model's JSON (with or without a code
// fence) into word entries, locally analyzing every input word the
// response missed.
func (a *Analyzer) parseAnalysis(response string, originalWords []string) []types.WordEntry {
	response = strings.TrimSpace(response)
	if strings.HasPrefix(response, "```") {
		response = fenceOpen.ReplaceAllString(response, "")
		response = fenceEnd.ReplaceAllString(response, "")
	}

	var parsed []wordAnalysis
	if err := json.Unmarshal([]byte(response), &parsed); err != nil {
		var single wordAnalysis
		if err := json.Unmarshal([]byte(response), &single); err != nil {
			return analyzeAllLocally(originalWords)
		}
		parsed = []wordAnalysis{single}
	}

	var entries []types.WordEntry
	for _, item := range parsed {
		entry := types.WordEntry{
			Word:            item.Word,
			Root:            item.Root,
			Syllables:       item.Syllables,
			Frequency:       1,
			DifficultyScore: item.Difficulty,
		}
		if entry.DifficultyScore == 0 {
			entry.DifficultyScore = 5
		}
		for _, m := range item.Morphemes {
			mt := types.MorphemeType(m.Type)
			if mt == "" {
				mt = types.MorphemeRoot
			}
			entry.Morphemes = append(entry.Morphemes, types.MorphemeInfo{
				Text:    m.Text,
				Meaning: m.Meaning,
				Origin:  m.Origin,
				Type:    mt,
			})
		}
		entries = append(entries, entry)
	}

	analyzed := make(map[string]bool, len(entries))
	for _, e := range entries {
		analyzed[strings.ToLower(e.Word)] = true
	}
	for _, word := range originalWords {
		if !analyzed[strings.ToLower(word)] {
			entries = append(entries, AnalyzeWordLocally(word))
		}
	}
	return entries
}

func analyzeAllLocally(words []string) []types.WordEntry {
	entries := make([]types.WordEntry, 0, len(words))
	for _, w := range words {
		entries = append(entries, AnalyzeWordLocally(w))
	}
	return entries
}

// AnalyzeDocument builds the lexical map for a document: word
// extraction, per-word analysis, first-occurrence block indices, tier
// placement, and root families.
func (a *Analyzer) AnalyzeDocument(ctx context.Context, doc *types.Document) *types.LexicalMap {
	words := a.ExtractWords(doc.PlainText())

	var entries []types.WordEntry
	if a.backend != nil && len(words) > 0 {
		entries = a.analyzeWordsWithLLM(ctx, words)
	} else {
		entries = analyzeAllLocally(words)
	}

	m := types.NewLexicalMap()
	for _, entry := range entries {
		key := strings.ToLower(entry.Word)
		for i, block := range doc.Blocks {
			if strings.Contains(strings.ToLower(block.PlainText()), key) {
				entry.FirstOccurrence = i
				break
			}
		}
		m.AddWord(entry)
	}
	m.Families = m.RootFamilies()
	return m
}

// AnalyzeText is AnalyzeDocument for bare text; paragraphs separated by
// blank lines become the blocks used for first-occurrence indices.
func (a *Analyzer) AnalyzeText(ctx context.Context, text string) *types.LexicalMap {
	doc := &types.Document{}
	for _, para := range strings.Split(text, "\n\n") {
		if strings.TrimSpace(para) == "" {
			continue
		}
		block := types.Block{}
		block.Append(para, types.StyleNone)
		doc.AddBlock(block)
	}
	return a.AnalyzeDocument(ctx, doc)
}

// EnhanceDocument attaches the lexical map to the document's vocabulary
// metadata and selects the ten hardest words (earliest first on ties)
// as pre-reading words.
func (a *Analyzer) EnhanceDocument(ctx context.Context, doc *types.Document) {
	m := a.AnalyzeDocument(ctx, doc)

	if doc.Vocabulary == nil {
		doc.Vocabulary = &types.Vocabulary{ScaffoldLevel: types.LevelMax}
	}
	doc.Vocabulary.LexicalMap = m

	entries := make([]types.WordEntry, 0, len(m.Words))
	for _, key := range m.Keys() {
		entries = append(entries, *m.Words[key])
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].DifficultyScore != entries[j].DifficultyScore {
			return entries[i].DifficultyScore > entries[j].DifficultyScore
		}
		return entries[i].FirstOccurrence < entries[j].FirstOccurrence
	})
	if len(entries) > 10 {
		entries = entries[:10]
	}
	doc.Vocabulary.PreReadingWords = entries
}
