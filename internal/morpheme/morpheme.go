// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package morpheme holds the curated affix and root tables used by
// local word analysis. The tables are fixed priority lists: matching
// scans top to bottom and the first hit wins, so ordering is part of
// the contract.
package morpheme

import "strings"

// Affix is one prefix, suffix, or root with its meaning and language
// of origin.
type Affix struct {
	Text    string
	Meaning string
	Origin  string
}

// Prefixes lists the recognized prefixes in priority order.
var Prefixes = []Affix{
	{"un", "not", "Germanic"},
	{"re", "again, back", "Latin"},
	{"pre", "before", "Latin"},
	{"dis", "not, opposite", "Latin"},
	{"mis", "wrongly", "Germanic"},
	{"over", "too much", "Germanic"},
	{"under", "below", "Germanic"},
	{"sub", "under", "Latin"},
	{"super", "above", "Latin"},
	{"inter", "between", "Latin"},
	{"trans", "across", "Latin"},
	{"anti", "against", "Greek"},
	{"auto", "self", "Greek"},
	{"bi", "two", "Latin"},
	{"tri", "three", "Latin/Greek"},
	{"multi", "many", "Latin"},
	{"semi", "half", "Latin"},
	{"hypo", "under, below", "Greek"},
	{"hyper", "over, above", "Greek"},
	{"ex", "out, former", "Latin"},
	{"in", "not, into", "Latin"},
	{"im", "not", "Latin"},
	{"ir", "not", "Latin"},
	{"il", "not", "Latin"},
	{"non", "not", "Latin"},
	{"co", "together", "Latin"},
	{"con", "together", "Latin"},
	{"com", "together", "Latin"},
	{"de", "down, from", "Latin"},
	{"pro", "forward, for", "Latin"},
	{"post", "after", "Latin"},
}

// Suffixes lists the recognized suffixes in priority order.
var Suffixes = []Affix{
	{"tion", "act/state of", "Latin"},
	{"sion", "act/state of", "Latin"},
	{"ment", "act/state of", "Latin"},
	{"ness", "state of being", "Germanic"},
	{"able", "capable of", "Latin"},
	{"ible", "capable of", "Latin"},
	{"ful", "full of", "Germanic"},
	{"less", "without", "Germanic"},
	{"ly", "in manner of", "Germanic"},
	{"er", "one who", "Germanic"},
	{"or", "one who", "Latin"},
	{"ist", "one who", "Greek"},
	{"ism", "belief/practice", "Greek"},
	{"ity", "state of", "Latin"},
	{"ty", "state of", "Latin"},
	{"ous", "full of", "Latin"},
	{"ious", "full of", "Latin"},
	{"eous", "full of", "Latin"},
	{"al", "relating to", "Latin"},
	{"ial", "relating to", "Latin"},
	{"ive", "tending to", "Latin"},
	{"ative", "tending to", "Latin"},
	{"ize", "to make", "Greek"},
	{"ise", "to make", "Greek"},
	{"en", "to make", "Germanic"},
	{"ate", "to make, having", "Latin"},
	{"ify", "to make", "Latin"},
	{"ward", "direction", "Germanic"},
	{"wise", "manner", "Germanic"},
	{"dom", "state, realm", "Germanic"},
	{"ship", "state, skill", "Germanic"},
	{"hood", "state, condition", "Germanic"},
}

// Roots lists the known roots in priority order. The table is partial;
// model-backed analysis supplies roots the table lacks.
var Roots = []Affix{
	{"dict", "say, speak", "Latin"},
	{"scrib", "write", "Latin"},
	{"script", "write", "Latin"},
	{"port", "carry", "Latin"},
	{"ject", "throw", "Latin"},
	{"duct", "lead", "Latin"},
	{"struct", "build", "Latin"},
	{"tract", "pull, draw", "Latin"},
	{"spec", "see, look", "Latin"},
	{"spect", "see, look", "Latin"},
	{"vid", "see", "Latin"},
	{"vis", "see", "Latin"},
	{"aud", "hear", "Latin"},
	{"phon", "sound", "Greek"},
	{"graph", "write", "Greek"},
	{"gram", "write, record", "Greek"},
	{"log", "word, study", "Greek"},
	{"logy", "study of", "Greek"},
	{"bio", "life", "Greek"},
	{"geo", "earth", "Greek"},
	{"chron", "time", "Greek"},
	{"tele", "far", "Greek"},
	{"micro", "small", "Greek"},
	{"macro", "large", "Greek"},
	{"morph", "form, shape", "Greek"},
	{"path", "feeling, disease", "Greek"},
	{"phil", "love", "Greek"},
	{"phob", "fear", "Greek"},
	{"psych", "mind", "Greek"},
	{"soph", "wisdom", "Greek"},
	{"theo", "god", "Greek"},
}

// FindRoot returns the first table root contained in s, scanning the
// table in priority order.
func FindRoot(s string) (Affix, bool) {
	for _, r := range Roots {
		if strings.Contains(s, r.Text) {
			return r, true
		}
	}
	return Affix{}, false
}
