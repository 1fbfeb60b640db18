// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared data model: the styled-document
// intermediate representation, the lexical map, and stage configuration.
package types

import "strings"

// Scaffolding levels for graduated reading support. Lower numbers carry
// more formatting support.
const (
	LevelMax  = 1 // full protocol: all formatting, syllable dots, decoder traps
	LevelHigh = 2 // no syllable dots; keeps bold/italic/traps
	LevelMed  = 3 // no root anchoring; keeps syntactic spine/traps
	LevelLow  = 4 // decoder traps only
	LevelMin  = 5 // plain text, minimal formatting
)

// ClampLevel restricts a scaffolding level to the valid 1-5 range.
func ClampLevel(level int) int {
	if level < LevelMax {
		return LevelMax
	}
	if level > LevelMin {
		return LevelMin
	}
	return level
}

// Style is a combinable set of text styling flags.
type Style uint8

const (
	StyleBold Style = 1 << iota
	StyleItalic
)

// StyleNone is the zero style: plain text.
const StyleNone Style = 0

// Bold reports whether the bold flag is set.
func (s Style) Bold() bool { return s&StyleBold != 0 }

// Italic reports whether the italic flag is set.
func (s Style) Italic() bool { return s&StyleItalic != 0 }

// Run is a contiguous span of text with consistent styling.
type Run struct {
	Text  string `json:"text" yaml:"text"`
	Style Style  `json:"style" yaml:"style"`
}

// Block is a paragraph or line of text made of styled runs.
type Block struct {
	Runs []Run `json:"runs" yaml:"runs"`

	// IsDecoderTrap marks blocks holding a decoder-check question
	// rather than body text.
	IsDecoderTrap bool `json:"is_decoder_trap,omitempty" yaml:"is_decoder_trap,omitempty"`
}

// PlainText returns the block's text with styling stripped.
func (b *Block) PlainText() string {
	var sb strings.Builder
	for _, r := range b.Runs {
		sb.WriteString(r.Text)
	}
	return sb.String()
}

// Append adds a new run to the block. Styles are combined; with none
// given the run is plain text.
func (b *Block) Append(text string, styles ...Style) {
	style := StyleNone
	for _, s := range styles {
		style |= s
	}
	b.Runs = append(b.Runs, Run{Text: text, Style: style})
}

// Document is a fully parsed, styled document ready for rendering.
type Document struct {
	Blocks     []Block           `json:"blocks" yaml:"blocks"`
	Metadata   map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
	Vocabulary *Vocabulary       `json:"vocabulary,omitempty" yaml:"vocabulary,omitempty"`
}

// PlainText returns all block text joined by blank lines.
func (d *Document) PlainText() string {
	parts := make([]string, len(d.Blocks))
	for i := range d.Blocks {
		parts[i] = d.Blocks[i].PlainText()
	}
	return strings.Join(parts, "\n\n")
}

// HasDecoderTrap reports whether any block is a decoder-check question.
func (d *Document) HasDecoderTrap() bool {
	for i := range d.Blocks {
		if d.Blocks[i].IsDecoderTrap {
			return true
		}
	}
	return false
}

// AddBlock appends a block to the document.
func (d *Document) AddBlock(b Block) {
	d.Blocks = append(d.Blocks, b)
}

// Vocabulary holds per-document vocabulary analysis attached to a Document.
type Vocabulary struct {
	LexicalMap      *LexicalMap   `json:"lexical_map,omitempty" yaml:"lexical_map,omitempty"`
	Traps           []DecoderTrap `json:"traps,omitempty" yaml:"traps,omitempty"`
	PreReadingWords []WordEntry   `json:"pre_reading_words,omitempty" yaml:"pre_reading_words,omitempty"`
	ScaffoldLevel   int           `json:"scaffold_level" yaml:"scaffold_level"`
}
