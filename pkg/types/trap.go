// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// TrapOption is one answer choice in a decoder trap question.
type TrapOption struct {
	Text string `json:"text" yaml:"text"`
	// Correct marks the answer the reader should pick.
	Correct bool `json:"correct,omitempty" yaml:"correct,omitempty"`
	// Lookalike marks a visually similar distractor designed to catch
	// shape-based guessing.
	Lookalike bool `json:"lookalike,omitempty" yaml:"lookalike,omitempty"`
}

// DecoderTrap is a multiple-choice comprehension question that can only
// be answered by decoding a specific word from the preceding paragraph.
type DecoderTrap struct {
	Question       string       `json:"question" yaml:"question"`
	TargetWord     string       `json:"target_word" yaml:"target_word"`
	Options        []TrapOption `json:"options,omitempty" yaml:"options,omitempty"`
	ParagraphIndex int          `json:"paragraph_index" yaml:"paragraph_index"`
	Explanation    string       `json:"explanation,omitempty" yaml:"explanation,omitempty"`
}

// CorrectAnswer returns the text of the correct option, or "" when the
// trap has no marked answer.
func (t *DecoderTrap) CorrectAnswer() string {
	for _, opt := range t.Options {
		if opt.Correct {
			return opt.Text
		}
	}
	return ""
}

// SimpleText renders the trap in the inline [Decoder Check: ...] form.
func (t *DecoderTrap) SimpleText() string {
	return "[Decoder Check: " + t.Question + "]"
}
