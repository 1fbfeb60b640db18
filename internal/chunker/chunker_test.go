// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package chunker

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimateTokens(t *testing.T) {
	assert.Equal(t, 0, EstimateTokens(""))
	assert.Greater(t, EstimateTokens("hello world"), 0)

	// Longer text estimates higher.
	short := EstimateTokens("One sentence.")
	long := EstimateTokens(strings.Repeat("One sentence. ", 50))
	assert.Greater(t, long, short)
}

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "basic punctuation",
			text: "First sentence. Second one! Third one? Fourth.",
			want: []string{"First sentence.", "Second one!", "Third one?", "Fourth."},
		},
		{
			name: "single sentence",
			text: "Just one sentence.",
			want: []string{"Just one sentence."},
		},
		{
			name: "empty",
			text: "",
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitSentences(tt.text))
		})
	}
}

func TestSplitParagraphs(t *testing.T) {
	text := "First paragraph.\n\nSecond paragraph.\n\n   \n\nThird."
	assert.Equal(t, []string{"First paragraph.", "Second paragraph.", "Third."}, SplitParagraphs(text))
}

func TestSplitSingleChunkPassthrough(t *testing.T) {
	c := New(3000, 2)
	text := "A short document.\n\nIt fits in one chunk."

	chunks := c.Split(text)
	require.Len(t, chunks, 1)
	assert.Equal(t, text, chunks[0].Text)
	assert.True(t, chunks[0].First)
	assert.True(t, chunks[0].Last)
}

func TestSplitParagraphBoundaries(t *testing.T) {
	para := strings.Repeat("The quick brown fox jumps over the lazy dog. ", 5)
	text := strings.TrimSpace(strings.Repeat(para+"\n\n", 6))

	c := New(200, 2)
	chunks := c.Split(text)
	require.Greater(t, len(chunks), 1)

	assert.True(t, chunks[0].First)
	assert.False(t, chunks[0].Last)
	for _, ch := range chunks[1 : len(chunks)-1] {
		assert.False(t, ch.First)
		assert.False(t, ch.Last)
	}
	last := chunks[len(chunks)-1]
	assert.False(t, last.First)
	assert.True(t, last.Last)
}

func TestSplitCarriesOverlap(t *testing.T) {
	paraA := "Alpha sentence one. Alpha sentence two. Alpha sentence three marker."
	filler := strings.Repeat("Filler words to push this paragraph over the budget limit. ", 8)
	text := paraA + "\n\n" + strings.TrimSpace(filler)

	c := New(60, 2)
	chunks := c.Split(text)
	require.Greater(t, len(chunks), 1)

	// The last sentences of the first chunk reappear at the head of the
	// second for continuity.
	assert.Contains(t, chunks[1].Text, "Alpha sentence three marker.")
}

func TestSplitOversizedParagraph(t *testing.T) {
	// One paragraph far over budget must fall back to sentence splitting.
	para := strings.TrimSpace(strings.Repeat("This sentence pads out an oversized paragraph nicely. ", 30))

	c := New(100, 2)
	chunks := c.Split(para)
	require.Greater(t, len(chunks), 1)
	for _, ch := range chunks {
		assert.NotEmpty(t, strings.TrimSpace(ch.Text))
	}

	// All the original sentences survive, in order.
	joined := strings.Join([]string{chunks[0].Text, chunks[len(chunks)-1].Text}, " ")
	assert.Contains(t, joined, "This sentence pads out an oversized paragraph nicely.")
}

func TestNeedsChunking(t *testing.T) {
	c := New(50, 2)
	assert.False(t, c.NeedsChunking("short text"))
	assert.True(t, c.NeedsChunking(strings.Repeat("many words here ", 50)))
}

func TestNewDefaults(t *testing.T) {
	c := New(0, 0)
	assert.Equal(t, 3000, c.maxTokens)
	assert.Equal(t, 2, c.overlapSentences)
}
