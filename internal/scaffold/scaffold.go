// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scaffold tracks word exposure across document chunks so that
// formatting support can fade once a reader has decoded a word enough
// times. The context is single-document state; nothing persists past
// the run.
package scaffold

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/anchortext/anchortext/pkg/types"
)

// formatChars matches the formatting characters injected by earlier
// chunks; they are stripped before counting so exposure reflects the
// underlying words.
var formatChars = regexp.MustCompile(`[·*\[\]()]`)

// wordRun matches candidate word tokens after formatting is stripped.
var wordRun = regexp.MustCompile(`[a-zA-Z]+`)

// Exposure records how often one word has been seen and in which chunks.
type Exposure struct {
	Word       string `json:"word" yaml:"word"`
	Count      int    `json:"count" yaml:"count"`
	FirstChunk int    `json:"first_chunk" yaml:"first_chunk"`
	LastChunk  int    `json:"last_chunk" yaml:"last_chunk"`

	// FormattedCount counts how often the word was actually rendered
	// with formatting support.
	FormattedCount int `json:"formatted_count" yaml:"formatted_count"`
}

// Context accumulates exposure counts over the chunks of one document.
type Context struct {
	profile   types.ScaffoldingProfile
	threshold int
	chunk     int
	exposures map[string]*Exposure

	// order records first-sighting order so that count ties resolve
	// deterministically in reports and prompts.
	order []string
}

// NewContext returns a context for the given fading profile. A positive
// thresholdOverride replaces the profile's default mastery threshold.
func NewContext(profile types.ScaffoldingProfile, thresholdOverride int) *Context {
	c := &Context{
		profile:   profile,
		threshold: profileThreshold(profile),
		exposures: make(map[string]*Exposure),
	}
	if thresholdOverride > 0 {
		c.threshold = thresholdOverride
	}
	return c
}

func profileThreshold(profile types.ScaffoldingProfile) int {
	switch profile {
	case types.ProfileGentle:
		return 5
	case types.ProfileAggressive:
		return 2
	case types.ProfileStatic:
		return math.MaxInt
	default:
		return 3
	}
}

// Profile returns the fading profile the context was created with.
func (c *Context) Profile() types.ScaffoldingProfile { return c.profile }

// Threshold returns the effective mastery threshold.
func (c *Context) Threshold() int { return c.threshold }

// CurrentChunk returns the index the next UpdateExposure call will
// record against.
func (c *Context) CurrentChunk() int { return c.chunk }

// ExtractWords pulls trackable words out of chunk text: formatting
// characters are replaced with spaces, and alphabetic runs of four or
// more letters are kept, lowercased. Short function words are not worth
// tracking.
func ExtractWords(text string) []string {
	cleaned := formatChars.ReplaceAllString(text, " ")
	runs := wordRun.FindAllString(cleaned, -1)
	words := make([]string, 0, len(runs))
	for _, r := range runs {
		if len(r) >= 4 {
			words = append(words, strings.ToLower(r))
		}
	}
	return words
}

// UpdateExposure counts every qualifying word occurrence in the chunk
// text, then advances the chunk counter. Repeats within one chunk all
// count.
func (c *Context) UpdateExposure(text string) {
	for _, word := range ExtractWords(text) {
		if e, ok := c.exposures[word]; ok {
			e.Count++
			e.LastChunk = c.chunk
			continue
		}
		c.exposures[word] = &Exposure{
			Word:       word,
			Count:      1,
			FirstChunk: c.chunk,
			LastChunk:  c.chunk,
		}
		c.order = append(c.order, word)
	}
	c.chunk++
}

// FadedWords returns the words whose exposure count has reached the
// mastery threshold, in first-sighting order. The static profile never
// fades anything.
func (c *Context) FadedWords() []string {
	if c.profile == types.ProfileStatic {
		return nil
	}
	var faded []string
	for _, word := range c.order {
		if c.exposures[word].Count >= c.threshold {
			faded = append(faded, word)
		}
	}
	return faded
}

// IsMastered reports whether a word's exposure count has reached the
// mastery threshold.
func (c *Context) IsMastered(word string) bool {
	e, ok := c.exposures[strings.ToLower(word)]
	return ok && e.Count >= c.threshold
}

// ExposureCount returns how many times a word has been seen.
func (c *Context) ExposureCount(word string) int {
	if e, ok := c.exposures[strings.ToLower(word)]; ok {
		return e.Count
	}
	return 0
}

// MarkFormatted records that a tracked word was rendered with
// formatting support. Unknown words are ignored.
func (c *Context) MarkFormatted(word string) {
	if e, ok := c.exposures[strings.ToLower(word)]; ok {
		e.FormattedCount++
	}
}

// Reset clears all exposure data for a new document.
func (c *Context) Reset() {
	c.exposures = make(map[string]*Exposure)
	c.order = nil
	c.chunk = 0
}

// ExclusionPrompt renders the system-prompt addendum listing mastered
// words the model must leave unformatted. It returns "" when nothing
// has faded yet. At most the 50 most-seen words are listed.
func (c *Context) ExclusionPrompt() string {
	faded := c.FadedWords()
	if len(faded) == 0 {
		return ""
	}

	sort.SliceStable(faded, func(i, j int) bool {
		return c.exposures[faded[i]].Count > c.exposures[faded[j]].Count
	})
	if len(faded) > 50 {
		faded = faded[:50]
	}

	return "\n\n## MASTERED WORDS (Do NOT format these - write them normally):\n" +
		"The reader has seen these words multiple times and should decode them independently.\n" +
		"Do NOT apply syllable dots, bold roots, or other formatting to: " +
		strings.Join(faded, ", ") + "\n"
}

// Stats summarizes the context for progress reporting.
type Stats struct {
	Profile        types.ScaffoldingProfile `json:"profile" yaml:"profile"`
	Threshold      int                      `json:"threshold" yaml:"threshold"`
	ChunksSeen     int                      `json:"chunks_seen" yaml:"chunks_seen"`
	UniqueWords    int                      `json:"unique_words" yaml:"unique_words"`
	TotalExposures int                      `json:"total_exposures" yaml:"total_exposures"`
	FadedWords     int                      `json:"faded_words" yaml:"faded_words"`
	TopWords       []Exposure               `json:"top_words,omitempty" yaml:"top_words,omitempty"`
	FadedFraction  float64                  `json:"faded_fraction" yaml:"faded_fraction"`
}

// Stats returns a snapshot of tracking state. TopWords holds up to ten
// of the most-seen words, most frequent first.
func (c *Context) Stats() Stats {
	s := Stats{
		Profile:     c.profile,
		Threshold:   c.threshold,
		ChunksSeen:  c.chunk,
		UniqueWords: len(c.exposures),
		FadedWords:  len(c.FadedWords()),
	}
	for _, e := range c.exposures {
		s.TotalExposures += e.Count
	}
	if s.UniqueWords > 0 {
		s.FadedFraction = float64(s.FadedWords) / float64(s.UniqueWords)
	}

	top := make([]Exposure, 0, len(c.order))
	for _, word := range c.order {
		top = append(top, *c.exposures[word])
	}
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].Count > top[j].Count
	})
	if len(top) > 10 {
		top = top[:10]
	}
	s.TopWords = top
	return s
}

// String renders a one-line summary for progress output.
func (s Stats) String() string {
	return fmt.Sprintf("profile=%s chunks=%d unique=%d faded=%d",
		s.Profile, s.ChunksSeen, s.UniqueWords, s.FadedWords)
}
