package match

// ExtractEducationRequirements finds degree-level demands in prepared
// job text by scanning the locale's education lexicon. At most one
// requirement per normalized degree type survives, in lexicon order.
func ExtractEducationRequirements(jobText, lang string) []EducationRequirement {
	prepared := NormalizeText(jobText)
	if prepared == "" {
		return nil
	}
	seen := map[string]bool{}
	var out []EducationRequirement
	for _, lvl := range Data().Locale(lang).EducationLevels {
		if seen[lvl.Type] || !containsWord(prepared, lvl.Term) {
			continue
		}
		seen[lvl.Type] = true
		out = append(out, EducationRequirement{Level: lvl.Term, Type: lvl.Type})
	}
	return out
}

// AnalyzeEducation checks each requirement against the resume's
// education entries and scores the satisfied fraction. A posting with
// no stated requirement cannot be failed, so the score defaults to a
// full 100.
func AnalyzeEducation(entries []EducationEntry, reqs []EducationRequirement, lang string) EducationAnalysis {
	a := EducationAnalysis{
		Score:               100,
		Matches:             []EducationMatch{},
		MissingRequirements: []EducationRequirement{},
	}
	if len(reqs) == 0 {
		return a
	}

	levels := Data().Locale(lang).EducationLevels
	for _, req := range reqs {
		entry, how := findEducationMatch(entries, req, levels)
		if how == "" {
			a.MissingRequirements = append(a.MissingRequirements, req)
			continue
		}
		a.Matches = append(a.Matches, EducationMatch{
			Requirement: req,
			Education:   entry,
			MatchType:   how,
		})
	}

	a.Score = round2(clampScore(float64(len(a.Matches)) / float64(len(reqs)) * 100))
	return a
}

// findEducationMatch looks for any lexicon term of the required type in
// an entry's course line first, then in its full description. The
// search covers every term of the type, so a "bachelor" requirement
// phrased as "graduação" still matches an entry saying "bacharelado".
func findEducationMatch(entries []EducationEntry, req EducationRequirement, levels []EducationLevel) (EducationEntry, string) {
	terms := []string{req.Level}
	for _, lvl := range levels {
		if lvl.Type == req.Type && lvl.Term != req.Level {
			terms = append(terms, lvl.Term)
		}
	}
	for _, e := range entries {
		course := NormalizeText(e.Course)
		desc := NormalizeText(e.Description)
		for _, t := range terms {
			if containsWord(course, t) {
				return e, "course"
			}
			if containsWord(desc, t) {
				return e, "description"
			}
		}
	}
	return EducationEntry{}, ""
}
