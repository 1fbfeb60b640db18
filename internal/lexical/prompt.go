// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package lexical

// analysisPrompt asks the model for a structured morpheme breakdown of
// a word batch. The word list is appended, one word per line.
const analysisPrompt = `You are a morphological analysis specialist.

Analyze the following words and provide their morpheme breakdown.

For each word, identify:
1. The ROOT morpheme (the core meaning-carrying part)
2. Any PREFIXES
3. Any SUFFIXES
4. Syllable breakdown
5. Difficulty score (1-10, where 1=common/easy, 10=rare/challenging)

Return JSON array:
` + "```json" + `
[
  {
    "word": "unpredictable",
    "root": "dict",
    "morphemes": [
      {"text": "un", "type": "prefix", "meaning": "not", "origin": "Germanic"},
      {"text": "pre", "type": "prefix", "meaning": "before", "origin": "Latin"},
      {"text": "dict", "type": "root", "meaning": "say, speak", "origin": "Latin"},
      {"text": "able", "type": "suffix", "meaning": "capable of", "origin": "Latin"}
    ],
    "syllables": ["un", "pre", "dict", "a", "ble"],
    "difficulty": 6
  }
]
` + "```" + `

Words to analyze:
`
