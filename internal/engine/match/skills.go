package match

import (
	"math"
	"strings"
)

// Confidence model for skills found in resume text. Every hit starts
// at the base; an evidentiary phrase nearby ("experiência em", ...)
// adds a large bonus, and repeated mentions add a small capped one.
const (
	confidenceBase     = 0.5
	confidenceEvidence = 0.3
	confidencePerExtra = 0.1
	confidenceExtraCap = 0.2

	// evidenceWindow is how far back (in bytes of prepared text) an
	// evidentiary phrase may sit from a skill mention and still count.
	evidenceWindow = 60
)

// ExtractResumeSkills scans prepared resume text against the catalog
// and returns confidence-scored hits in catalog order. Each canonical
// skill appears at most once; the first matching surface form wins.
func ExtractResumeSkills(text, lang string) []SkillRecord {
	prepared := NormalizeText(text)
	if prepared == "" {
		return nil
	}
	c := Data()
	loc := c.Locale(lang)

	var out []SkillRecord
	for _, area := range c.Areas {
		for _, sk := range area.Skills {
			term, freq := firstTermHit(prepared, sk, lang)
			if term == "" {
				continue
			}
			conf := confidenceBase
			if hasEvidenceNearby(prepared, term, loc.EvidencePhrases) {
				conf += confidenceEvidence
			}
			conf += math.Min(float64(freq-1)*confidencePerExtra, confidenceExtraCap)
			out = append(out, SkillRecord{
				Name:           sk.Name,
				Area:           area.Name,
				Confidence:     math.Min(conf, 1.0),
				VariationFound: term,
			})
		}
	}
	return out
}

// firstTermHit returns the first surface form of sk present in text
// and its occurrence count, or ("", 0) when absent.
func firstTermHit(text string, sk CatalogSkill, lang string) (string, int) {
	for _, term := range sk.SkillTerms(lang) {
		if n := countWord(text, term); n > 0 {
			return term, n
		}
	}
	return "", 0
}

// hasEvidenceNearby reports whether any evidentiary phrase ends within
// evidenceWindow bytes before an occurrence of term.
func hasEvidenceNearby(text, term string, phrases []string) bool {
	for start := 0; ; {
		i := strings.Index(text[start:], term)
		if i < 0 {
			return false
		}
		i += start
		lo := i - evidenceWindow
		if lo < 0 {
			lo = 0
		}
		window := text[lo:i]
		for _, p := range phrases {
			if strings.Contains(window, p) {
				return true
			}
		}
		start = i + 1
	}
}

// Importance model for skills demanded by job text.
const (
	importanceBase     = 1.0
	importanceEvidence = 0.5
	importanceRequired = 0.5
	importancePerExtra = 0.5
	importanceExtraCap = 1.0
	importanceMax      = 3.0
)

// ExtractJobSkills scans prepared job text against the catalog and
// weights each hit by how emphatically the posting asks for it.
func ExtractJobSkills(text, lang string) []JobSkill {
	prepared := NormalizeText(text)
	if prepared == "" {
		return nil
	}
	c := Data()
	loc := c.Locale(lang)

	var out []JobSkill
	for _, area := range c.Areas {
		for _, sk := range area.Skills {
			term, freq := firstTermHit(prepared, sk, lang)
			if term == "" {
				continue
			}
			imp := importanceBase
			ctx := ""
			if hasEvidenceNearby(prepared, term, loc.EvidencePhrases) {
				imp += importanceEvidence
				ctx = "evidence"
			}
			if markerNearby(prepared, term, loc.RequirementMarkers) {
				imp += importanceRequired
				ctx = "required"
			}
			imp += math.Min(float64(freq-1)*importancePerExtra, importanceExtraCap)
			out = append(out, JobSkill{
				Name:       sk.Name,
				Area:       area.Name,
				Importance: math.Min(imp, importanceMax),
				Context:    ctx,
			})
		}
	}
	return out
}

func markerNearby(text, term string, markers []string) bool {
	for _, m := range markers {
		i := strings.Index(text, m)
		if i < 0 {
			continue
		}
		j := strings.Index(text[i:], term)
		if j >= 0 && j <= evidenceWindow+len(m) {
			return true
		}
	}
	return false
}

// similarWeight is the score contribution of a similar (but not exact)
// skill match relative to an exact one.
const similarWeight = 0.7

// AnalyzeSkillsMatch compares required job skills against resume
// skills by name similarity and scores coverage on a 0–100 scale.
// With no job skills there is no coverage to measure and the score
// stays 0.
func AnalyzeSkillsMatch(resumeSkills []SkillRecord, jobSkills []JobSkill) SkillsAnalysis {
	a := SkillsAnalysis{
		ExactMatches:      []SkillMatch{},
		SimilarMatches:    []SkillMatch{},
		MissingSkills:     []JobSkill{},
		JobSkillsCount:    len(jobSkills),
		ResumeSkillsCount: len(resumeSkills),
	}
	if len(jobSkills) == 0 {
		return a
	}

	for _, js := range jobSkills {
		best := SkillMatch{JobSkill: js}
		for _, rs := range resumeSkills {
			if sim := Similarity(js.Name, rs.Name); sim > best.Similarity {
				best.ResumeSkill = rs
				best.Similarity = sim
			}
		}
		switch {
		case best.Similarity >= simExact:
			a.ExactMatches = append(a.ExactMatches, best)
		case best.Similarity >= simSimilar:
			a.SimilarMatches = append(a.SimilarMatches, best)
		default:
			a.MissingSkills = append(a.MissingSkills, js)
		}
	}

	raw := (float64(len(a.ExactMatches)) + similarWeight*float64(len(a.SimilarMatches))) /
		float64(len(jobSkills)) * 100
	a.Score = round2(clampScore(raw))
	return a
}
