// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package primer

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/anchortext/anchortext/internal/llm"
	"github.com/anchortext/anchortext/pkg/types"
)

// definitionPrompt asks the model for pronunciation guides and simple
// definitions. The word list is appended, one word per line.
const definitionPrompt = `You are a vocabulary instruction specialist.

Create a brief pronunciation guide and definition for each word below.
Format as JSON array:

` + "```json" + `
[
  {
    "word": "hypothesis",
    "pronunciation": "hy-POTH-eh-sis",
    "definition": "an educated guess or proposed explanation",
    "example": "The scientist's hypothesis was proven correct."
  }
]
` + "```" + `

Guidelines:
- Pronunciation: Use hyphens for syllables, CAPS for stressed syllable
- Definition: Simple, clear, one sentence
- Example: Short sentence using the word naturally

Words to define:
`

var (
	fenceOpen = regexp.MustCompile("^```(?:json)?\n?")
	fenceEnd  = regexp.MustCompile("\n?```$")
)

// Definition is one primer entry for a word.
type Definition struct {
	Word          string `json:"word"`
	Pronunciation string `json:"pronunciation"`
	Definition    string `json:"definition"`
	Example       string `json:"example"`
}

// Generator builds the pre-reading primer section.
type Generator struct {
	backend   llm.Backend
	scorer    Scorer
	wordCount int
	minScore  int
}

// NewGenerator returns a primer generator configured by cfg. backend
// may be nil, or cfg.UseLLM false, for local-only definitions.
func NewGenerator(backend llm.Backend, cfg types.PrimerConfig) *Generator {
	wordCount := cfg.WordCount
	if wordCount <= 0 {
		wordCount = 5
	}
	minScore := cfg.MinDifficulty
	if minScore <= 0 {
		minScore = 5
	}
	if !cfg.UseLLM {
		backend = nil
	}
	return &Generator{backend: backend, wordCount: wordCount, minScore: minScore}
}

// Generate builds primer blocks for text: a header, the word entries
// with pronunciation and definition, a practice exercise, and a
// separator rule. No difficult words yields no blocks.
func (g *Generator) Generate(ctx context.Context, text string) []types.Block {
	words := g.scorer.DifficultWords(text, g.wordCount, g.minScore)
	if len(words) == 0 {
		return nil
	}

	var blocks []types.Block

	header := types.Block{}
	header.Append("WARM-UP: Preview These Words", types.StyleBold)
	blocks = append(blocks, header)

	intro := types.Block{}
	intro.Append("Before reading, practice these challenging words. " +
		"Say each word aloud, breaking it into syllables.")
	blocks = append(blocks, intro)

	var definitions []Definition
	if g.backend != nil {
		definitions = g.definitionsFromModel(ctx, words)
	} else {
		definitions = localDefinitions(words)
	}

	for i := range words {
		if i >= len(definitions) {
			break
		}
		blocks = append(blocks, wordBlocks(&words[i], definitions[i])...)
	}

	blocks = append(blocks, practiceBlocks(words)...)

	separator := types.Block{}
	separator.Append(strings.Repeat("─", 40))
	blocks = append(blocks, separator)

	return blocks
}

// definitionsFromModel asks the backend for definitions, falling back
// to the local generator on any failure.
func (g *Generator) definitionsFromModel(ctx context.Context, words []types.WordEntry) []Definition {
	var sb strings.Builder
	for _, w := range words {
		sb.WriteString(w.Word)
		sb.WriteString("\n")
	}

	content, err := g.backend.Complete(ctx, "", definitionPrompt+sb.String())
	if err != nil || content == "" {
		return localDefinitions(words)
	}

	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "```") {
		content = fenceOpen.ReplaceAllString(content, "")
		content = fenceEnd.ReplaceAllString(content, "")
	}

	var defs []Definition
	if err := json.Unmarshal([]byte(content), &defs); err != nil || len(defs) == 0 {
		return localDefinitions(words)
	}
	return defs
}

// localDefinitions builds primer entries from the words' own analysis:
// a stressed-syllable pronunciation and a morpheme-meaning gloss.
func localDefinitions(words []types.WordEntry) []Definition {
	defs := make([]Definition, 0, len(words))
	for _, entry := range words {
		syllables := entry.Syllables
		if len(syllables) == 0 {
			syllables = []string{entry.Word}
		}

		pron := make([]string, len(syllables))
		copy(pron, syllables)
		if len(pron) > 1 {
			// Stress usually falls on the penult.
			stress := len(pron) - 2
			pron[stress] = strings.ToUpper(pron[stress])
		}

		var meanings []string
		for _, m := range entry.Morphemes {
			if m.Meaning != "" {
				meanings = append(meanings, m.Meaning)
			}
		}
		definition := fmt.Sprintf("A %d-syllable word to practice", len(syllables))
		if len(meanings) > 0 {
			definition = "Related to: " + strings.Join(meanings, ", ")
		}

		defs = append(defs, Definition{
			Word:          entry.Word,
			Pronunciation: strings.Join(pron, "-"),
			Definition:    definition,
			Example:       "Practice saying: " + entry.Word,
		})
	}
	return defs
}

func wordBlocks(entry *types.WordEntry, def Definition) []types.Block {
	var blocks []types.Block

	word := types.Block{}
	word.Append(entry.SyllableText(), types.StyleBold)
	word.Append("  ["+def.Pronunciation+"]", types.StyleItalic)
	blocks = append(blocks, word)

	defn := types.Block{}
	defn.Append("  " + def.Definition)
	blocks = append(blocks, defn)

	if def.Example != "" {
		example := types.Block{}
		example.Append(`  Example: "`+def.Example+`"`, types.StyleItalic)
		blocks = append(blocks, example)
	}
	return blocks
}

// practiceBlocks renders a syllable-counting exercise over the first
// three words, answers included.
func practiceBlocks(words []types.WordEntry) []types.Block {
	var blocks []types.Block

	header := types.Block{}
	header.Append("Quick Practice", types.StyleBold)
	blocks = append(blocks, header)

	prompt := types.Block{}
	prompt.Append("Count the syllables in each word:")
	blocks = append(blocks, prompt)

	n := len(words)
	if n > 3 {
		n = 3
	}
	var answers []string
	for _, entry := range words[:n] {
		line := types.Block{}
		line.Append("  " + entry.Word + ": ____ syllables")
		blocks = append(blocks, line)
		answers = append(answers, fmt.Sprintf("%s=%d", entry.Word, len(entry.Syllables)))
	}

	answerBlock := types.Block{}
	answerBlock.Append("(Answers: "+strings.Join(answers, ", ")+")", types.StyleItalic)
	blocks = append(blocks, answerBlock)

	return blocks
}

// EnhanceDocument prepends the primer to a document and records the
// selected words in its vocabulary metadata.
func (g *Generator) EnhanceDocument(ctx context.Context, doc *types.Document) {
	blocks := g.Generate(ctx, doc.PlainText())
	if len(blocks) == 0 {
		return
	}

	words := g.scorer.DifficultWords(doc.PlainText(), g.wordCount, g.minScore)
	doc.Blocks = append(blocks, doc.Blocks...)

	if doc.Vocabulary == nil {
		doc.Vocabulary = &types.Vocabulary{ScaffoldLevel: types.LevelMax}
	}
	doc.Vocabulary.PreReadingWords = words
}
