package match

import (
	"log/slog"
	"math"
	"strings"
)

// Factor weights of the overall compatibility score. They sum to 1.0,
// so every sub-score being 100 yields exactly 100 overall.
const (
	weightSkills     = 0.35
	weightKeywords   = 0.30
	weightExperience = 0.25
	weightEducation  = 0.10
)

func clampScore(v float64) float64 {
	return math.Min(100, math.Max(0, v))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// JobText flattens a job profile into the single text every extractor
// works on. Structured skills and the company name are part of it, so
// a profile supplied with skills but a sparse description still gets
// credit for them. A skill name already present in the text is not
// appended again: profile builders derive the skill list from the
// description, and re-joining it would count every skill twice.
func JobText(job JobProfile) string {
	base := joinNonEmpty(job.Title, job.Description, job.Requirements,
		job.Responsibilities, job.Qualifications)
	return joinNonEmpty(base, absentTerms(base, job.Skills), job.Company)
}

// ResumeText flattens a resume profile the same way: raw text,
// experience, education and summary, plus any structured skills the
// text does not already mention. A profile built from structured
// fields alone still carries everything into keyword analysis.
func ResumeText(resume ResumeProfile) string {
	parts := make([]string, 0, 1+len(resume.Experience)+2*len(resume.Education)+1)
	parts = append(parts, resume.RawText)
	for _, e := range resume.Experience {
		parts = append(parts, e.Description)
	}
	for _, e := range resume.Education {
		parts = append(parts, e.Course, e.Description)
	}
	parts = append(parts, resume.Summary)

	base := joinNonEmpty(parts...)
	names := make([]string, 0, len(resume.Skills))
	for _, s := range resume.Skills {
		names = append(names, s.Name)
	}
	return joinNonEmpty(base, absentTerms(base, names))
}

// absentTerms joins the terms that have no boundary-checked occurrence
// in text yet.
func absentTerms(text string, terms []string) string {
	prepared := NormalizeText(text)
	missing := make([]string, 0, len(terms))
	for _, t := range terms {
		if countWord(prepared, NormalizeText(t)) == 0 {
			missing = append(missing, t)
		}
	}
	return strings.Join(missing, " ")
}

func joinNonEmpty(parts ...string) string {
	kept := parts[:0]
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, "\n")
}

// ComputeCompatibility runs the four analyzers over a resume/job pair
// and aggregates their scores. The function is total: empty inputs
// produce the zero result, and a panic anywhere in the pipeline is
// swallowed into the fallback result instead of crossing the API
// boundary. Identical inputs always produce identical results.
func ComputeCompatibility(resume ResumeProfile, job JobProfile) (result AnalysisResult) {
	lang := resume.DetectedLanguage
	if _, ok := Data().Locales[lang]; !ok {
		lang = DefaultLanguage
	}

	defer func() {
		if r := recover(); r != nil {
			slog.Error("compatibility analysis panicked", "panic", r)
			result = fallbackResult(lang)
		}
	}()

	jobText := JobText(job)
	resumeText := ResumeText(resume)
	if NormalizeText(resumeText) == "" && NormalizeText(jobText) == "" {
		return emptyInputResult(lang)
	}

	skills := AnalyzeSkillsMatch(comparableSkills(resume), ExtractJobSkills(jobText, lang))
	keywords := AnalyzeKeywords(resumeText, ExtractKeywords(jobText, lang), lang)
	experience := AnalyzeExperience(resume.Experience, job.Title, lang)
	education := AnalyzeEducation(resume.Education, ExtractEducationRequirements(jobText, lang), lang)

	overall := weightSkills*skills.Score +
		weightKeywords*keywords.Score +
		weightExperience*experience.Score +
		weightEducation*education.Score

	result = AnalysisResult{
		OverallScore:       round2(clampScore(overall)),
		SkillsAnalysis:     skills,
		KeywordAnalysis:    keywords,
		ExperienceAnalysis: experience,
		EducationAnalysis:  education,
	}
	result.DetailedBreakdown = BuildBreakdown(result, lang)
	return result
}

// comparableSkills widens the profile's hard skills with its soft
// skills and languages so a posting that demands "leadership" or
// "english" can still be satisfied.
func comparableSkills(resume ResumeProfile) []SkillRecord {
	out := make([]SkillRecord, 0, len(resume.Skills)+len(resume.SoftSkills)+len(resume.Languages))
	out = append(out, resume.Skills...)
	for _, s := range resume.SoftSkills {
		out = append(out, SkillRecord{Name: s, Area: "soft_skills", Confidence: confidenceBase})
	}
	for _, l := range resume.Languages {
		out = append(out, SkillRecord{Name: strings.ToLower(l.Language), Area: "languages", Confidence: confidenceBase})
	}
	return out
}

// zeroResult is the all-zero analysis skeleton shared by the two
// degenerate outcomes.
func zeroResult() AnalysisResult {
	return AnalysisResult{
		SkillsAnalysis: SkillsAnalysis{
			ExactMatches:   []SkillMatch{},
			SimilarMatches: []SkillMatch{},
			MissingSkills:  []JobSkill{},
		},
		KeywordAnalysis: KeywordsAnalysis{
			Matches:         []KeywordMatch{},
			MissingKeywords: []MissingKeyword{},
		},
		ExperienceAnalysis: ExperienceAnalysis{
			SeniorityAnalysis: SeniorityAnalysis{Level: "unknown"},
		},
		EducationAnalysis: EducationAnalysis{
			Matches:             []EducationMatch{},
			MissingRequirements: []EducationRequirement{},
		},
	}
}

// fallbackResult is returned when the pipeline panicked. Scores are
// zeroed and the breakdown says processing failed, so callers always
// receive a well-formed result with a non-empty explanation.
func fallbackResult(lang string) AnalysisResult {
	r := zeroResult()
	r.DetailedBreakdown = breakdownMessages(lang).fallback()
	r.Fallback = true
	return r
}

// emptyInputResult is returned when both texts are blank. Without the
// gate the neutral analyzer defaults would sum to a nonzero score for
// inputs that contain no information at all.
func emptyInputResult(lang string) AnalysisResult {
	r := zeroResult()
	r.DetailedBreakdown = breakdownMessages(lang).emptyInput()
	return r
}
