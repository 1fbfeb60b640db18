// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package syllable splits words into syllable-like units for the
// syllable-breaking support format. Morpheme boundaries take priority
// over pure phonetic grouping: "react" splits re·act, never rea·ct.
package syllable

import (
	"strings"

	"github.com/anchortext/anchortext/internal/morpheme"
)

// splitSuffixes is the priority list of suffixes reserved as the final
// syllable. First match wins; only one suffix is ever applied.
var splitSuffixes = []string{
	"tion", "sion", "ment", "ness", "able", "ible", "ious", "eous",
	"ing", "est", "ful", "less", "ed", "ly", "er", "or", "ist", "ism",
	"ity", "ous", "ive", "ate", "ize", "en",
}

func isVowel(c byte) bool {
	switch c {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}

// EstimateCount estimates the syllable count of a word by counting
// vowel groups, with adjustments for silent "e" and consonant+"le"
// endings. It is a filtering heuristic, not an exact count.
func EstimateCount(word string) int {
	w := strings.ToLower(word)
	count := 0
	prevVowel := false
	for i := 0; i < len(w); i++ {
		v := isVowel(w[i])
		if v && !prevVowel {
			count++
		}
		prevVowel = v
	}

	if strings.HasSuffix(w, "e") && count > 1 {
		count--
	}
	if strings.HasSuffix(w, "le") && len(w) > 2 && !isVowel(w[len(w)-3]) {
		count++
	}

	if count < 1 {
		return 1
	}
	return count
}

// Split breaks a word into lowercase syllable strings. Known prefixes
// are emitted as leading syllables and one known suffix is reserved as
// the final syllable; the remaining middle is split phonetically.
// Concatenating the result reproduces the lowercased word.
//
// An affix is only stripped when the remaining string is longer than
// the affix plus two characters, so short words never collapse into a
// bare affix.
func Split(word string) []string {
	w := strings.ToLower(word)
	if w == "" {
		return nil
	}

	var syllables []string
	remaining := w

	for {
		matched := false
		for _, p := range morpheme.Prefixes {
			if strings.HasPrefix(remaining, p.Text) && len(remaining) > len(p.Text)+2 {
				syllables = append(syllables, p.Text)
				remaining = remaining[len(p.Text):]
				matched = true
				break
			}
		}
		if !matched {
			break
		}
	}

	suffix := ""
	for _, s := range splitSuffixes {
		if strings.HasSuffix(remaining, s) && len(remaining) > len(s)+2 {
			suffix = s
			remaining = remaining[:len(remaining)-len(s)]
			break
		}
	}

	if remaining != "" {
		syllables = append(syllables, phoneticSplit(remaining)...)
	}
	if suffix != "" {
		syllables = append(syllables, suffix)
	}

	if len(syllables) == 0 {
		return []string{w}
	}
	return syllables
}

// phoneticSplit applies vowel-group splitting: a VCV pattern breaks
// before the consonant (o·pen), a VCCV pattern breaks between the
// consonants (hap·py). Trailing fragments of one or two characters are
// merged into the preceding syllable unless they form a recognized
// short ending.
func phoneticSplit(word string) []string {
	var syllables []string
	var current strings.Builder

	for i := 0; i < len(word); i++ {
		current.WriteByte(word[i])

		if isVowel(word[i]) && i+1 < len(word) {
			next := word[i+1]
			if !isVowel(next) {
				if i+2 < len(word) && !isVowel(word[i+2]) {
					current.WriteByte(next)
					syllables = append(syllables, current.String())
					current.Reset()
					i++
				} else {
					syllables = append(syllables, current.String())
					current.Reset()
				}
			}
		}
	}

	if current.Len() > 0 {
		tail := current.String()
		if len(syllables) > 0 {
			if len(tail) <= 2 && tail != "ed" && tail != "er" && tail != "ly" {
				syllables[len(syllables)-1] += tail
			} else {
				syllables = append(syllables, tail)
			}
		} else {
			syllables = append(syllables, tail)
		}
	}

	if len(syllables) == 0 {
		return []string{word}
	}
	return syllables
}
