package match

// Sub-weights of the experience analysis. Seniority and relevance
// dominate; raw tenure length matters less than what it was spent on.
const (
	wSeniority = 0.4
	wRelevance = 0.4
	wDuration  = 0.2

	relevanceDefault = 50
)

// AnalyzeExperience scores the fit between a resume's work history and
// the job. It combines a seniority band, how many entries look related
// to the job title, and a tenure-length band. An empty history falls
// through every band and lands on the floor values instead of erroring.
func AnalyzeExperience(entries []ExperienceEntry, jobTitle, lang string) ExperienceAnalysis {
	years := 0
	for _, e := range entries {
		years += e.Years
	}

	sen := senorityBand(years, lang)
	rel := ScoreOnly{Score: relevanceScore(entries, jobTitle)}
	dur := ScoreOnly{Score: durationScore(years)}

	return ExperienceAnalysis{
		Score:                round2(clampScore(wSeniority*sen.Score + wRelevance*rel.Score + wDuration*dur.Score)),
		SeniorityAnalysis:    sen,
		RelevanceAnalysis:    rel,
		DurationAnalysis:     dur,
		TotalExperienceYears: years,
	}
}

// senorityBand maps cumulative years to a band and a localized label:
// 8+ senior, 5+ mid ("pleno"), 2+ junior, otherwise intern.
func senorityBand(years int, lang string) SeniorityAnalysis {
	labels := Data().Locale(lang).Seniority
	var band string
	var score float64
	switch {
	case years >= 8:
		band, score = "senior", 90
	case years >= 5:
		band, score = "mid", 75
	case years >= 2:
		band, score = "junior", 60
	default:
		band, score = "intern", 40
	}
	level := labels[band]
	if level == "" {
		level = band
	}
	return SeniorityAnalysis{Score: score, Level: level, Years: years}
}

func durationScore(years int) float64 {
	switch {
	case years >= 5:
		return 90
	case years >= 3:
		return 75
	case years >= 1:
		return 60
	default:
		return 30
	}
}

// relevanceScore is the share of history entries that mention a word
// from the job title, scaled to 0–100. Without entries or usable title
// tokens there is nothing to compare, so the score stays neutral.
func relevanceScore(entries []ExperienceEntry, jobTitle string) float64 {
	tokens := titleTokens(jobTitle)
	if len(entries) == 0 || len(tokens) == 0 {
		return relevanceDefault
	}
	related := 0
	for _, e := range entries {
		text := NormalizeText(e.Position + " " + e.Description)
		for _, tok := range tokens {
			if containsWord(text, tok) {
				related++
				break
			}
		}
	}
	return float64(related) / float64(len(entries)) * 100
}

// titleTokens keeps title words of four or more runes so connectives
// like "de" or "for" never make an entry look relevant.
func titleTokens(title string) []string {
	var out []string
	for _, w := range tokenizeWords(NormalizeText(title)) {
		if len([]rune(w)) >= 4 {
			out = append(out, w)
		}
	}
	return out
}
