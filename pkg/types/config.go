// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// AIConfig holds shared settings for stages that call a text-generation API.
type AIConfig struct {
	// Model is the model identifier (e.g. "gpt-4o-mini").
	Model string `json:"model" yaml:"model"`

	// APIBase is the base URL of an OpenAI-compatible endpoint. Empty
	// selects the default public endpoint.
	APIBase string `json:"api_base,omitempty" yaml:"api_base,omitempty"`

	// APIKey is the authentication key for the API.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// Temperature is the sampling temperature (default 0.3).
	Temperature float64 `json:"temperature" yaml:"temperature"`

	// MaxTokens caps the response length (default 4096).
	MaxTokens int `json:"max_tokens" yaml:"max_tokens"`

	// MaxRetries is the number of retry attempts for failed API calls
	// (default 3).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// LexicalConfig holds settings for vocabulary analysis.
type LexicalConfig struct {
	AIConfig `yaml:",inline"`

	// UseLLM selects model-backed morpheme analysis; when false only
	// the local heuristics run.
	UseLLM bool `json:"use_llm" yaml:"use_llm"`

	// MinSyllables filters extracted words (default 2).
	MinSyllables int `json:"min_syllables" yaml:"min_syllables"`
}

// ScaffoldingProfile controls how aggressively formatting support fades
// as words are re-encountered.
type ScaffoldingProfile string

const (
	ProfileStatic     ScaffoldingProfile = "static"     // never fade
	ProfileGentle     ScaffoldingProfile = "gentle"     // fade after 5 exposures
	ProfileAdaptive   ScaffoldingProfile = "adaptive"   // fade after 3 exposures
	ProfileAggressive ScaffoldingProfile = "aggressive" // fade after 2 exposures
)

// ChunkingConfig holds settings for splitting large documents.
type ChunkingConfig struct {
	// MaxTokens is the per-chunk token budget (default 3000).
	MaxTokens int `json:"max_tokens" yaml:"max_tokens"`

	// OverlapSentences is the number of sentences repeated across chunk
	// boundaries for context continuity (default 2).
	OverlapSentences int `json:"overlap_sentences" yaml:"overlap_sentences"`
}

// PrimerConfig holds settings for the pre-reading primer.
type PrimerConfig struct {
	AIConfig `yaml:",inline"`

	// UseLLM selects model-generated definitions; when false the local
	// morpheme-based fallback runs.
	UseLLM bool `json:"use_llm" yaml:"use_llm"`

	// WordCount is the number of difficult words to include (default 5).
	WordCount int `json:"word_count" yaml:"word_count"`

	// MinDifficulty filters primer candidates (default 5).
	MinDifficulty int `json:"min_difficulty" yaml:"min_difficulty"`
}

// TransformConfig groups all settings for a document transformation run.
type TransformConfig struct {
	AIConfig `yaml:",inline"`

	// Level is the scaffolding level, 1 (max support) to 5 (minimal).
	Level int `json:"level" yaml:"level"`

	// EnhancedTraps enables multiple-choice decoder traps with
	// lookalike distractors.
	EnhancedTraps bool `json:"enhanced_traps" yaml:"enhanced_traps"`

	// Primer prepends a pre-reading warm-up section.
	Primer bool `json:"primer" yaml:"primer"`

	// Adaptive enables exposure tracking and support fading.
	Adaptive bool `json:"adaptive" yaml:"adaptive"`

	// FadeThreshold overrides the profile-derived mastery threshold.
	// Zero keeps the profile default.
	FadeThreshold int `json:"fade_threshold" yaml:"fade_threshold"`

	Chunking ChunkingConfig `json:"chunking" yaml:"chunking"`
}
