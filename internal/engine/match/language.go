package match

import (
	"strings"
	"unicode"
)

// NormalizeText lowercases s and collapses runs of whitespace into
// single spaces. Every analyzer operates on text prepared this way so
// the pipeline stays deterministic for equivalent inputs.
func NormalizeText(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// tokenizeWords splits prepared text into lowercase word tokens,
// keeping letters and digits and dropping everything else.
func tokenizeWords(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// DetectLanguage guesses the document language from function-word and
// section-heading frequencies. Section keywords weigh double since a
// single "formação acadêmica" is stronger evidence than a stray "de".
// Ties and empty input resolve by locale priority, Portuguese first.
func DetectLanguage(text string) string {
	c := Data()
	prepared := NormalizeText(text)
	words := tokenizeWords(prepared)

	scores := make(map[string]int, len(c.Locales))
	for code := range c.Locales {
		fn := c.functionSets[code]
		n := 0
		for _, w := range words {
			if fn.has(w) {
				n++
			}
		}
		for kw := range c.sectionSets[code] {
			if containsWord(prepared, kw) {
				n += 2
			}
		}
		scores[code] = n
	}

	best := DefaultLanguage
	bestScore := 0
	for _, code := range c.LocalePriority {
		if scores[code] > bestScore {
			best = code
			bestScore = scores[code]
		}
	}
	return best
}

// containsWord reports whether phrase occurs in text on word
// boundaries: the characters around the match must not be letters or
// digits. This keeps "java" from matching inside "javascript" while
// still matching terms like "c++" or "node.js" whole.
func containsWord(text, phrase string) bool {
	if phrase == "" {
		return false
	}
	for start := 0; ; {
		i := strings.Index(text[start:], phrase)
		if i < 0 {
			return false
		}
		i += start
		end := i + len(phrase)
		if boundaryBefore(text, i) && boundaryAfter(text, end) {
			return true
		}
		start = i + 1
	}
}

func boundaryBefore(text string, i int) bool {
	if i == 0 {
		return true
	}
	r := lastRune(text[:i])
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

func boundaryAfter(text string, end int) bool {
	if end >= len(text) {
		return true
	}
	r := firstRune(text[end:])
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}

func lastRune(s string) rune {
	var last rune
	for _, r := range s {
		last = r
	}
	return last
}

// countWord counts boundary-checked occurrences of phrase in text.
func countWord(text, phrase string) int {
	if phrase == "" {
		return 0
	}
	n := 0
	for start := 0; ; {
		i := strings.Index(text[start:], phrase)
		if i < 0 {
			return n
		}
		i += start
		end := i + len(phrase)
		if boundaryBefore(text, i) && boundaryAfter(text, end) {
			n++
		}
		start = i + 1
	}
}
