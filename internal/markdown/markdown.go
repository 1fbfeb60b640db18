// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package markdown converts the model's markdown output into the styled
// document representation and back. Only the protocol's subset is
// handled: ***bold italic***, **bold**, *italic*, and decoder-check
// lines.
package markdown

import (
	"regexp"
	"strings"

	"github.com/anchortext/anchortext/pkg/types"
)

// decoderTrapPattern matches the accepted decoder-trap spellings on a line.
var decoderTrapPattern = regexp.MustCompile(`(?is)\[Decoder\s*Check:.*?\]|DECODER'S\s*TRAP:.*|Decoder's\s*Trap:.*`)

var blankLine = regexp.MustCompile(`\n\s*\n`)

// Parse converts markdown text into a document. Paragraphs split on
// blank lines; each non-empty line inside a paragraph becomes its own
// block, matching the protocol's one-clause-per-line layout.
func Parse(text string, metadata map[string]string) *types.Document {
	doc := &types.Document{Metadata: metadata}

	for _, para := range blankLine.Split(strings.TrimSpace(text), -1) {
		if strings.TrimSpace(para) == "" {
			continue
		}
		for _, line := range strings.Split(strings.TrimSpace(para), "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			block := parseLine(line)
			if decoderTrapPattern.MatchString(line) {
				block.IsDecoderTrap = true
			}
			doc.AddBlock(block)
		}
	}
	return doc
}

func parseLine(line string) types.Block {
	var block types.Block
	for _, seg := range tokenize(line) {
		if seg.text != "" {
			block.Append(seg.text, seg.style)
		}
	}
	return block
}

type segment struct {
	text  string
	style types.Style
}

// tokenize walks the line splitting it into styled segments. Unclosed
// markers fall through to plain text rather than swallowing the rest of
// the line.
func tokenize(text string) []segment {
	var segments []segment
	pos := 0

	for pos < len(text) {
		if strings.HasPrefix(text[pos:], "***") {
			if end := strings.Index(text[pos+3:], "***"); end != -1 {
				segments = append(segments, segment{
					text:  text[pos+3 : pos+3+end],
					style: types.StyleBold | types.StyleItalic,
				})
				pos += end + 6
				continue
			}
		}

		if strings.HasPrefix(text[pos:], "**") {
			if end := strings.Index(text[pos+2:], "**"); end != -1 {
				segments = append(segments, segment{
					text:  text[pos+2 : pos+2+end],
					style: types.StyleBold,
				})
				pos += end + 4
				continue
			}
		}

		if text[pos] == '*' && pos+1 < len(text) && text[pos+1] != '*' {
			if end := findSingleStar(text, pos+1); end != -1 {
				segments = append(segments, segment{
					text:  text[pos+1 : end],
					style: types.StyleItalic,
				})
				pos = end + 1
				continue
			}
		}

		next := len(text)
		if idx := strings.IndexByte(text[pos:], '*'); idx != -1 && pos+idx < next {
			next = pos + idx
		}
		end := next
		if end <= pos {
			end = pos + 1
		}
		segments = append(segments, segment{text: text[pos:end], style: types.StyleNone})
		pos = end
	}

	return segments
}

// findSingleStar returns the index of the next "*" at or after start
// that is not part of a "**", or -1.
func findSingleStar(text string, start int) int {
	for i := start; i < len(text); i++ {
		if text[i] == '*' && (i+1 >= len(text) || text[i+1] != '*') {
			return i
		}
	}
	return -1
}

// ToMarkdown renders a document back to the markdown subset, one block
// per paragraph.
func ToMarkdown(doc *types.Document) string {
	lines := make([]string, 0, len(doc.Blocks))
	for _, block := range doc.Blocks {
		var sb strings.Builder
		for _, run := range block.Runs {
			switch {
			case run.Style.Bold() && run.Style.Italic():
				sb.WriteString("***" + run.Text + "***")
			case run.Style.Bold():
				sb.WriteString("**" + run.Text + "**")
			case run.Style.Italic():
				sb.WriteString("*" + run.Text + "*")
			default:
				sb.WriteString(run.Text)
			}
		}
		lines = append(lines, sb.String())
	}
	return strings.Join(lines, "\n\n")
}
