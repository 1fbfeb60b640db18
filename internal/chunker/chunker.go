// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package chunker splits documents into pieces that fit a model's
// context window. Splitting prefers paragraph boundaries and falls
// back to sentences, carrying a short sentence overlap across chunk
// boundaries for continuity.
package chunker

import (
	"regexp"
	"strings"
)

var (
	sentenceEnd = regexp.MustCompile(`([.!?])\s+`)
	blankLine   = regexp.MustCompile(`\n\s*\n`)
)

// Chunk is one piece of a split document with its position flags.
type Chunk struct {
	Text  string
	First bool
	Last  bool
}

// Chunker splits text under a per-chunk token budget.
type Chunker struct {
	maxTokens        int
	overlapSentences int
}

// New returns a chunker. maxTokens defaults to 3000 and
// overlapSentences to 2 when non-positive.
func New(maxTokens, overlapSentences int) *Chunker {
	if maxTokens <= 0 {
		maxTokens = 3000
	}
	if overlapSentences <= 0 {
		overlapSentences = 2
	}
	return &Chunker{maxTokens: maxTokens, overlapSentences: overlapSentences}
}

// EstimateTokens approximates the model token count of text. English
// prose averages roughly four characters per token; the estimate leans
// slightly high so chunks stay under budget.
func EstimateTokens(text string) int {
	if text == "" {
		return 0
	}
	runes := len([]rune(text))
	words := len(strings.Fields(text))
	// Blend character and word counts; either alone drifts badly on
	// dot-and-asterisk heavy protocol text.
	return (runes/4 + words + 1)
}

// NeedsChunking reports whether text exceeds the chunk budget.
func (c *Chunker) NeedsChunking(text string) bool {
	return EstimateTokens(text) > c.maxTokens
}

// SplitSentences splits text on sentence-ending punctuation.
func SplitSentences(text string) []string {
	parts := sentenceEnd.ReplaceAllString(text, "$1\x00")
	var sentences []string
	for _, s := range strings.Split(parts, "\x00") {
		if s = strings.TrimSpace(s); s != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}

// SplitParagraphs splits text on blank lines.
func SplitParagraphs(text string) []string {
	var paragraphs []string
	for _, p := range blankLine.Split(text, -1) {
		if p = strings.TrimSpace(p); p != "" {
			paragraphs = append(paragraphs, p)
		}
	}
	return paragraphs
}

func lastN(items []string, n int) []string {
	if len(items) <= n {
		return append([]string(nil), items...)
	}
	return append([]string(nil), items[len(items)-n:]...)
}

func sumTokens(items []string) int {
	total := 0
	for _, s := range items {
		total += EstimateTokens(s)
	}
	return total
}

// Split breaks text into chunks under the token budget. Text that fits
// comes back as a single chunk flagged both first and last.
func (c *Chunker) Split(text string) []Chunk {
	if EstimateTokens(text) <= c.maxTokens {
		return []Chunk{{Text: text, First: true, Last: true}}
	}

	var (
		chunks        []string
		currentChunk  []string
		currentTokens int
		overlap       []string
	)

	for _, para := range SplitParagraphs(text) {
		paraTokens := EstimateTokens(para)

		switch {
		case paraTokens > c.maxTokens:
			// Oversized paragraph: flush, then split it by sentences.
			if len(currentChunk) > 0 {
				chunks = append(chunks, strings.Join(currentChunk, "\n\n"))
				overlap = lastN(SplitSentences(currentChunk[len(currentChunk)-1]), c.overlapSentences)
				currentChunk = nil
				currentTokens = 0
			}

			sentenceChunk := append([]string(nil), overlap...)
			sentenceTokens := sumTokens(sentenceChunk)

			for _, sentence := range SplitSentences(para) {
				sentTokens := EstimateTokens(sentence)
				if sentenceTokens+sentTokens > c.maxTokens && len(sentenceChunk) > 0 {
					chunks = append(chunks, strings.Join(sentenceChunk, " "))
					overlap = lastN(sentenceChunk, c.overlapSentences)
					sentenceChunk = append([]string(nil), overlap...)
					sentenceTokens = sumTokens(sentenceChunk)
				}
				sentenceChunk = append(sentenceChunk, sentence)
				sentenceTokens += sentTokens
			}

			if len(sentenceChunk) > 0 {
				joined := strings.Join(sentenceChunk, " ")
				currentChunk = []string{joined}
				currentTokens = EstimateTokens(joined)
				overlap = lastN(sentenceChunk, c.overlapSentences)
			}

		case currentTokens+paraTokens > c.maxTokens:
			if len(currentChunk) > 0 {
				chunks = append(chunks, strings.Join(currentChunk, "\n\n"))
				overlap = lastN(SplitSentences(currentChunk[len(currentChunk)-1]), c.overlapSentences)
			}
			if len(overlap) > 0 {
				currentChunk = []string{strings.Join(overlap, " "), para}
				currentTokens = EstimateTokens(strings.Join(currentChunk, "\n\n"))
			} else {
				currentChunk = []string{para}
				currentTokens = paraTokens
			}

		default:
			currentChunk = append(currentChunk, para)
			currentTokens += paraTokens
		}
	}

	if len(currentChunk) > 0 {
		chunks = append(chunks, strings.Join(currentChunk, "\n\n"))
	}

	result := make([]Chunk, len(chunks))
	for i, text := range chunks {
		result[i] = Chunk{
			Text:  text,
			First: i == 0,
			Last:  i == len(chunks)-1,
		}
	}
	return result
}
