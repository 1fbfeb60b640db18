// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package llm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSystemPromptLevels(t *testing.T) {
	base := SystemPrompt(1, false, false, "")
	assert.True(t, strings.HasPrefix(base, "You are a text transformation specialist"))
	assert.Contains(t, base, "### 5. DECODER'S TRAP")
	assert.NotContains(t, base, "LEVEL ADJUSTMENT")

	tests := []struct {
		level int
		note  string
	}{
		{2, "LEVEL ADJUSTMENT (HIGH support)"},
		{3, "LEVEL ADJUSTMENT (MEDIUM support)"},
		{4, "LEVEL ADJUSTMENT (LOW support)"},
		{5, "LEVEL ADJUSTMENT (MINIMAL support)"},
	}
	for _, tt := range tests {
		p := SystemPrompt(tt.level, false, false, "")
		assert.Contains(t, p, tt.note, "level %d", tt.level)
		// Every level keeps the base rules text in front of the adjustment.
		assert.Less(t, strings.Index(p, "TRANSFORMATION RULES"), strings.Index(p, tt.note))
	}
}

func TestSystemPromptChunkNotes(t *testing.T) {
	first := SystemPrompt(1, false, false, "")
	assert.NotContains(t, first, "This is a continuation")
	assert.NotContains(t, first, "final section")

	middle := SystemPrompt(1, true, false, "")
	assert.Contains(t, middle, "This is a continuation of a longer document")
	assert.NotContains(t, middle, "final section")

	last := SystemPrompt(1, true, true, "")
	assert.Contains(t, last, "This is the final section of the document.")
	assert.NotContains(t, last, "This is a continuation")

	// A single-chunk document is both first and final; no chunk note.
	single := SystemPrompt(1, false, true, "")
	assert.NotContains(t, single, "final section")
	assert.NotContains(t, single, "This is a continuation")
}

func TestSystemPromptExclusionAppendedLast(t *testing.T) {
	exclusion := "\n\n## MASTERED WORDS (Do NOT format these - write them normally):\nDo NOT apply syllable dots, bold roots, or other formatting to: dinosaur\n"
	p := SystemPrompt(3, true, false, exclusion)
	assert.True(t, strings.HasSuffix(p, exclusion))
	assert.Less(t, strings.Index(p, "This is a continuation"), strings.Index(p, "MASTERED WORDS"))
}
