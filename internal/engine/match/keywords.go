package match

import (
	"sort"
	"strings"
	"unicode"
)

const (
	maxKeywords   = 30
	minKeywordLen = 4
	maxKeywordLen = 15

	// weight = keywordWeightBase + keywordWeightSpan·(freq/maxFreq),
	// so the most frequent keyword weighs 1.0 and rare ones bottom
	// out at 0.3 instead of vanishing.
	keywordWeightBase = 0.3
	keywordWeightSpan = 0.7

	ctxScoreStrong  = 0.9
	ctxScoreNeutral = 0.5
	ctxScoreMissing = 0.3

	freqFactor = 0.3
	ctxFactor  = 0.7
)

// ExtractKeywords pulls the salient vocabulary out of prepared job
// text: alphabetic words of 4–15 runes, minus the locale's stop words,
// ranked by frequency and truncated to the top 30. Equal frequencies
// break ties alphabetically so the result is stable.
func ExtractKeywords(text, lang string) []KeywordRecord {
	prepared := NormalizeText(text)
	if prepared == "" {
		return nil
	}
	stop := Data().StopWords(lang)

	freq := map[string]int{}
	for _, w := range tokenizeWords(prepared) {
		if !keywordShaped(w) || stop.has(w) {
			continue
		}
		freq[w]++
	}
	if len(freq) == 0 {
		return nil
	}

	words := make([]string, 0, len(freq))
	maxFreq := 0
	for w, n := range freq {
		words = append(words, w)
		if n > maxFreq {
			maxFreq = n
		}
	}
	sort.Slice(words, func(i, j int) bool {
		if freq[words[i]] != freq[words[j]] {
			return freq[words[i]] > freq[words[j]]
		}
		return words[i] < words[j]
	})
	if len(words) > maxKeywords {
		words = words[:maxKeywords]
	}

	out := make([]KeywordRecord, 0, len(words))
	for _, w := range words {
		out = append(out, KeywordRecord{
			Keyword:   w,
			Weight:    round2(keywordWeightBase + keywordWeightSpan*float64(freq[w])/float64(maxFreq)),
			Frequency: freq[w],
		})
	}
	return out
}

func keywordShaped(w string) bool {
	n := 0
	for _, r := range w {
		if !unicode.IsLetter(r) {
			return false
		}
		n++
	}
	return n >= minKeywordLen && n <= maxKeywordLen
}

// AnalyzeKeywords measures how much of the job's salient vocabulary
// the resume covers, weighting each hit by the keyword's importance
// and by how strong its context in the resume is. With no keywords to
// look for the score stays 0.
func AnalyzeKeywords(resumeText string, keywords []KeywordRecord, lang string) KeywordsAnalysis {
	a := KeywordsAnalysis{
		Matches:         []KeywordMatch{},
		MissingKeywords: []MissingKeyword{},
		TotalKeywords:   len(keywords),
	}
	if len(keywords) == 0 {
		return a
	}

	prepared := NormalizeText(resumeText)
	indicators := Data().Locale(lang).ContextIndicators

	var gained, possible float64
	for _, kw := range keywords {
		possible += kw.Weight
		freq := countWord(prepared, kw.Keyword)
		if freq == 0 {
			a.MissingKeywords = append(a.MissingKeywords, MissingKeyword{
				Keyword: kw.Keyword,
				Weight:  kw.Weight,
				Reason:  "not_found",
			})
			continue
		}
		ctx := contextScore(prepared, kw.Keyword, indicators)
		match := freqFactor*float64(freq) + ctxFactor*ctx
		if match > 1.0 {
			match = 1.0
		}
		match *= kw.Weight
		gained += match
		a.Matches = append(a.Matches, KeywordMatch{
			Keyword:      kw.Keyword,
			Weight:       kw.Weight,
			Frequency:    freq,
			ContextScore: ctx,
			MatchScore:   round2(match),
		})
	}

	a.Score = round2(clampScore(gained / possible * 100))
	return a
}

// contextScore rates the surroundings of a keyword in the resume: a
// context indicator ("experiência", "responsabilidade", ...) within
// the window upgrades the hit, bare mentions stay neutral, and a
// keyword that cannot be located at all scores low. The last case is
// unreachable when the caller already counted an occurrence, but the
// guard keeps the function total.
func contextScore(text, keyword string, indicators []string) float64 {
	i := strings.Index(text, keyword)
	if i < 0 {
		return ctxScoreMissing
	}
	lo := i - evidenceWindow
	if lo < 0 {
		lo = 0
	}
	hi := i + len(keyword) + evidenceWindow
	if hi > len(text) {
		hi = len(text)
	}
	window := text[lo:hi]
	for _, ind := range indicators {
		if strings.Contains(window, ind) {
			return ctxScoreStrong
		}
	}
	return ctxScoreNeutral
}
