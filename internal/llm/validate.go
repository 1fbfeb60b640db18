// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package llm

import "strings"

// Expectations lists the output markers a scaffold level requires.
type Expectations struct {
	Bold        bool
	Italic      bool
	Dots        bool
	DecoderTrap bool
}

// ExpectationsForLevel maps a scaffold level to its required markers.
// Levels 1-3 keep bold and italic, only level 1 keeps syllable dots,
// and levels 1-4 keep decoder traps.
func ExpectationsForLevel(level int) Expectations {
	return Expectations{
		Bold:        level <= 3,
		Italic:      level <= 3,
		Dots:        level == 1,
		DecoderTrap: level <= 4,
	}
}

// trapMarkers are the accepted spellings of a decoder trap, matched
// case-insensitively.
var trapMarkers = []string{"[decoder check:", "decoder's trap:"}

// ValidateTransformation checks model output for the markers the level
// requires and reports what is missing. It cannot verify the rules were
// applied well, only that they were applied at all.
func ValidateTransformation(output string, expect Expectations) (bool, []string) {
	var issues []string

	if expect.Bold && !strings.Contains(output, "**") {
		issues = append(issues, "bold formatting (root anchoring/subjects)")
	}

	if expect.Italic && !hasSingleStar(output) {
		issues = append(issues, "italic formatting (verbs)")
	}

	if expect.Dots && !strings.Contains(output, "·") {
		issues = append(issues, "syllable breaks (middle dots)")
	}

	if expect.DecoderTrap {
		lower := strings.ToLower(output)
		found := false
		for _, m := range trapMarkers {
			if strings.Contains(lower, m) {
				found = true
				break
			}
		}
		if !found {
			issues = append(issues, "Decoder's Trap question")
		}
	}

	return len(issues) == 0, issues
}

// hasSingleStar reports whether the text contains a "*" that is not
// part of a "**" bold marker.
func hasSingleStar(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != '*' {
			continue
		}
		if i+1 < len(s) && s[i+1] == '*' {
			i++
			continue
		}
		return true
	}
	return false
}
