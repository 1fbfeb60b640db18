// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package traps

import "strings"

// prefixSubs maps word prefixes to visually similar replacements.
var prefixSubs = []struct {
	prefix string
	subs   []string
}{
	{"pre", []string{"pro", "per", "pri"}},
	{"con", []string{"com", "can", "cen"}},
	{"dis", []string{"des", "das", "dys"}},
	{"un", []string{"in", "on", "an"}},
	{"hypo", []string{"hyper", "hospi", "hippo"}},
	{"inter", []string{"intra", "intro", "enter"}},
	{"trans", []string{"trance", "train", "tract"}},
	{"super", []string{"supper", "supra", "souper"}},
}

// suffixSubs maps word endings to near-misses.
var suffixSubs = []struct {
	suffix string
	subs   []string
}{
	{"tion", []string{"sion", "cion", "tian"}},
	{"ment", []string{"mint", "meant", "mont"}},
	{"able", []string{"ible", "uble", "ably"}},
	{"ness", []string{"niss", "nous"}},
	{"ize", []string{"ise", "aze", "ice"}},
}

// similarLetters maps letters to ones with a similar printed shape.
var similarLetters = map[byte][]byte{
	'a': {'o', 'e'},
	'e': {'a', 'o'},
	'i': {'l', 'j'},
	'o': {'a', 'e'},
	'u': {'v', 'n'},
	'n': {'m', 'u'},
	'm': {'n', 'w'},
	'b': {'d', 'p'},
	'd': {'b', 'p'},
	'p': {'b', 'd', 'q'},
	'q': {'p', 'g'},
}

// Lookalikes generates up to count heuristic lookalike words for a
// target: prefix substitution first, then suffix substitution, then
// single-letter shape swaps near the start of the word. The model-based
// generator produces better distractors; this covers the offline path.
func Lookalikes(word string, count int) []string {
	if count <= 0 {
		return nil
	}

	var lookalikes []string
	lower := strings.ToLower(word)

	add := func(candidate string) bool {
		if strings.ToLower(candidate) != lower {
			lookalikes = append(lookalikes, candidate)
		}
		return len(lookalikes) >= count
	}

	for _, ps := range prefixSubs {
		if !strings.HasPrefix(lower, ps.prefix) {
			continue
		}
		for _, sub := range ps.subs {
			if add(sub + word[len(ps.prefix):]) {
				return lookalikes
			}
		}
	}

	for _, ss := range suffixSubs {
		if !strings.HasSuffix(lower, ss.suffix) {
			continue
		}
		for _, sub := range ss.subs {
			if add(word[:len(word)-len(ss.suffix)] + sub) {
				return lookalikes
			}
		}
	}

	if len(word) > 3 {
		for _, pos := range []int{2, 3, 1} {
			if pos >= len(word) {
				continue
			}
			replacements, ok := similarLetters[lower[pos]]
			if !ok {
				continue
			}
			for _, r := range replacements {
				if add(word[:pos] + string(r) + word[pos+1:]) {
					return lookalikes
				}
			}
		}
	}

	return lookalikes
}
