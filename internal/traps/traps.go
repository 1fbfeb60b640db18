// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package traps upgrades the inline decoder checks of a transformed
// document into multiple-choice questions with lookalike distractors.
// Lookalikes share a word's first letters, length and shape, so a
// reader who guesses from word shape picks the wrong one.
package traps

import (
	"context"
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"github.com/anchortext/anchortext/internal/llm"
	"github.com/anchortext/anchortext/pkg/types"
)

const generatorPrompt = `You are a reading assessment specialist creating decoder traps for literacy rehabilitation.

Your task: Generate enhanced multiple-choice decoder traps that catch readers who GUESS words instead of DECODING them.

## WHAT MAKES A GOOD TRAP

Three-cueing readers guess words based on:
1. First letter + word length
2. Word shape (ascenders/descenders)
3. Context clues

A good trap includes "lookalike" distractors that:
- Start with the same letter
- Have similar length
- Have similar visual shape
- Would make sense in context (but are WRONG)

## INPUT FORMAT

You will receive paragraphs with target words marked. For each paragraph, generate a trap.

## OUTPUT FORMAT

Return a JSON array of trap objects. Each trap:
` + "```json" + `
{
  "paragraph_index": 0,
  "question": "What did the scientists do about the results?",
  "target_word": "hypothesized",
  "correct_answer": "hypothesized",
  "distractors": [
    {"word": "hospitalized", "is_lookalike": true},
    {"word": "harmonized", "is_lookalike": true},
    {"word": "analyzed", "is_lookalike": false}
  ],
  "explanation": "The word 'hypothesized' means to propose a theory. It starts with 'hypo-' (under/below) not 'hospi-' (guest/host)."
}
` + "```" + `

## LOOKALIKE SELECTION GUIDELINES

For a target word, find lookalikes that share:
- Same first 2-3 letters (hypothesis -> hospitalized)
- Same general shape (tall letters in same positions)
- Similar syllable count
- Same ending pattern when possible (-tion, -ment, -ly, etc.)

Include 2-3 lookalikes and 1 context-plausible non-lookalike per trap.

## IMPORTANT
- Output ONLY valid JSON, no markdown code blocks
- Each paragraph gets exactly one trap
- Questions should require READING the exact word, not guessing from context`

var (
	fenceOpen  = regexp.MustCompile("^```(?:json)?\n?")
	fenceEnd   = regexp.MustCompile("\n?```$")
	checkOpen  = regexp.MustCompile(`\[Decoder Check:\s*`)
	checkClose = regexp.MustCompile(`\]$`)
)

// target pairs an existing decoder check with the paragraph it follows.
type target struct {
	paragraphIndex   int
	paragraphText    string
	existingQuestion string
}

// Generator builds enhanced traps through a model backend.
type Generator struct {
	backend llm.Backend
}

// NewGenerator returns a trap generator. A nil backend always produces
// the simple fallback traps.
func NewGenerator(backend llm.Backend) *Generator {
	return &Generator{backend: backend}
}

// extractTargets walks the document pairing each decoder-trap block
// with the closest preceding body paragraph.
func extractTargets(doc *types.Document) []target {
	var targets []target
	bodyCount := 0

	for i := range doc.Blocks {
		if !doc.Blocks[i].IsDecoderTrap {
			bodyCount++
			continue
		}
		if bodyCount == 0 {
			continue
		}
		lastBody := -1
		for j := i - 1; j >= 0; j-- {
			if !doc.Blocks[j].IsDecoderTrap {
				lastBody = j
				break
			}
		}
		if lastBody < 0 {
			continue
		}
		targets = append(targets, target{
			paragraphIndex:   bodyCount - 1,
			paragraphText:    doc.Blocks[lastBody].PlainText(),
			existingQuestion: doc.Blocks[i].PlainText(),
		})
	}
	return targets
}

func buildPrompt(targets []target) string {
	var sb strings.Builder
	sb.WriteString("Generate enhanced decoder traps for these paragraphs:\n")
	for i, t := range targets {
		sb.WriteString("\n--- Paragraph ")
		sb.WriteString(strconv.Itoa(i))
		sb.WriteString(" ---\n")
		sb.WriteString(t.paragraphText)
		sb.WriteString("\n\nExisting question: ")
		sb.WriteString(t.existingQuestion)
		sb.WriteString("\n")
	}
	sb.WriteString("\n\nReturn JSON array of enhanced traps.")
	return sb.String()
}

// trapResponse is the per-trap schema of the model's JSON.
type trapResponse struct {
	ParagraphIndex int             `json:"paragraph_index"`
	Question       string          `json:"question"`
	TargetWord     string          `json:"target_word"`
	CorrectAnswer  string          `json:"correct_answer"`
	Distractors    json.RawMessage `json:"distractors"`
	Explanation    string          `json:"explanation"`
}

type distractor struct {
	Word        string `json:"word"`
	IsLookalike bool   `json:"is_lookalike"`
}

// parseResponse decodes the model's trap JSON, degrading to simple
// traps when the payload does not parse.
func parseResponse(response string, targets []target) []types.DecoderTrap {
	response = strings.TrimSpace(response)
	if strings.HasPrefix(response, "```") {
		response = fenceOpen.ReplaceAllString(response, "")
		response = fenceEnd.ReplaceAllString(response, "")
	}

	var items []trapResponse
	if err := json.Unmarshal([]byte(response), &items); err != nil {
		var single trapResponse
		if err := json.Unmarshal([]byte(response), &single); err != nil {
			return fallbackSimpleTraps(targets)
		}
		items = []trapResponse{single}
	}

	var traps []types.DecoderTrap
	for _, item := range items {
		correct := item.CorrectAnswer
		if correct == "" {
			correct = item.TargetWord
		}
		options := []types.TrapOption{{Text: correct, Correct: true}}

		// Distractors arrive either as objects or bare strings.
		var structured []distractor
		if err := json.Unmarshal(item.Distractors, &structured); err == nil {
			for _, d := range structured {
				options = append(options, types.TrapOption{Text: d.Word, Lookalike: d.IsLookalike})
			}
		} else {
			var plain []string
			if err := json.Unmarshal(item.Distractors, &plain); err == nil {
				for _, d := range plain {
					options = append(options, types.TrapOption{Text: d})
				}
			}
		}

		traps = append(traps, types.DecoderTrap{
			Question:       item.Question,
			TargetWord:     item.TargetWord,
			Options:        options,
			ParagraphIndex: item.ParagraphIndex,
			Explanation:    item.Explanation,
		})
	}
	return traps
}

// fallbackSimpleTraps keeps the document's existing questions as traps
// without options.
func fallbackSimpleTraps(targets []target) []types.DecoderTrap {
	traps := make([]types.DecoderTrap, 0, len(targets))
	for i, t := range targets {
		question := checkOpen.ReplaceAllString(t.existingQuestion, "")
		question = checkClose.ReplaceAllString(question, "")
		traps = append(traps, types.DecoderTrap{
			Question:       question,
			ParagraphIndex: i,
		})
	}
	return traps
}

// Generate builds enhanced traps for a document's decoder checks.
// Model failures degrade to simple traps; a document without checks
// yields none.
func (g *Generator) Generate(ctx context.Context, doc *types.Document) []types.DecoderTrap {
	targets := extractTargets(doc)
	if len(targets) == 0 {
		return nil
	}
	if g.backend == nil {
		return fallbackSimpleTraps(targets)
	}

	content, err := g.backend.Complete(ctx, generatorPrompt, buildPrompt(targets))
	if err != nil || content == "" {
		return fallbackSimpleTraps(targets)
	}
	return parseResponse(content, targets)
}

// EnhanceDocument populates the document's vocabulary metadata with
// generated traps.
func (g *Generator) EnhanceDocument(ctx context.Context, doc *types.Document) {
	traps := g.Generate(ctx, doc)
	if doc.Vocabulary == nil {
		doc.Vocabulary = &types.Vocabulary{ScaffoldLevel: types.LevelMax}
	}
	doc.Vocabulary.Traps = traps
}
