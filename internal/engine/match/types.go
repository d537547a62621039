// Package match implements the resume↔job compatibility engine:
// language detection, section extraction, skill and keyword extraction,
// and weighted multi-factor scoring with an explainable breakdown.
//
// Everything in this package is deterministic and side-effect free: the
// skill catalog and locale lexicons are loaded once and read-only, each
// analysis works on its own freshly built profiles, and no component
// mutates its inputs. One loaded catalog safely serves concurrent
// analyses without locking.
package match

// PersonalInfo holds contact details extracted from the top of a resume.
// Every field is optional; extractors fill locale-specific placeholder
// strings ("Nome não identificado") rather than failing.
type PersonalInfo struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
}

// EducationEntry is one education item. Description is never empty when
// the entry exists; Type is "education" or "unknown" for placeholder
// entries emitted when a window could not be segmented.
type EducationEntry struct {
	Course      string `json:"course,omitempty"`
	Institution string `json:"institution,omitempty"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"` // "Presente"/"Cursando"/"Current" when ongoing
	Description string `json:"description"`
	Type        string `json:"type"`
}

// ExperienceEntry is one professional experience item. Years is derived
// from a closed YYYY–YYYY range; open ranges contribute 0 so parsing
// never reads the wall clock.
type ExperienceEntry struct {
	Position    string `json:"position,omitempty"`
	Company     string `json:"company,omitempty"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
	Description string `json:"description"`
	Years       int    `json:"years,omitempty"`
	Type        string `json:"type"`
}

// CertificationEntry is one certification item.
type CertificationEntry struct {
	Name        string `json:"name"`
	Institution string `json:"institution,omitempty"`
	Date        string `json:"date,omitempty"`
	Type        string `json:"type"`
}

// ProjectEntry is one project item.
type ProjectEntry struct {
	Name        string `json:"name,omitempty"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
	Description string `json:"description"`
	Type        string `json:"type"`
}

// LanguageEntry is a spoken language with optional proficiency.
type LanguageEntry struct {
	Language    string `json:"language"`
	Proficiency string `json:"proficiency,omitempty"`
	Type        string `json:"type"`
}

// SkillRecord is a confidence-scored skill hit against the catalog.
// Name is the canonical lowercase key; at most one record per name
// survives in an extraction result.
type SkillRecord struct {
	Name           string  `json:"name"`
	Area           string  `json:"area"`
	Confidence     float64 `json:"confidence"`
	VariationFound string  `json:"variation_found"`
}

// ResumeProfile is the structured view of one resume. Built once per
// analysis invocation and never mutated by downstream analyzers.
type ResumeProfile struct {
	PersonalInfo     PersonalInfo         `json:"personal_info"`
	Summary          string               `json:"summary,omitempty"`
	Education        []EducationEntry     `json:"education"`
	Experience       []ExperienceEntry    `json:"experience"`
	Skills           []SkillRecord        `json:"skills"`
	SoftSkills       []string             `json:"soft_skills"`
	Languages        []LanguageEntry      `json:"languages"`
	Certifications   []CertificationEntry `json:"certifications"`
	Projects         []ProjectEntry       `json:"projects"`
	RawText          string               `json:"raw_text,omitempty"`
	DetectedLanguage string               `json:"detected_language"`
	AreaDetected     string               `json:"area_detected"`
}

// JobProfile is the structured view of one job posting.
type JobProfile struct {
	Title            string   `json:"title,omitempty"`
	Company          string   `json:"company,omitempty"`
	Description      string   `json:"description,omitempty"`
	Requirements     string   `json:"requirements,omitempty"`
	Responsibilities string   `json:"responsibilities,omitempty"`
	Qualifications   string   `json:"qualifications,omitempty"`
	Skills           []string `json:"skills,omitempty"`
	Location         string   `json:"location,omitempty"`
	EmploymentType   string   `json:"employment_type,omitempty"`
}

// JobSkill is a skill requirement extracted from job text with an
// importance weight (1.0 base, boosted by evidentiary context and
// explicit requirement markers, capped at 3.0).
type JobSkill struct {
	Name       string  `json:"name"`
	Area       string  `json:"area"`
	Importance float64 `json:"importance"`
	Context    string  `json:"context,omitempty"`
}

// SkillMatch pairs a job-required skill with the resume skill that
// satisfied it, plus their similarity ratio.
type SkillMatch struct {
	JobSkill    JobSkill    `json:"job_skill"`
	ResumeSkill SkillRecord `json:"resume_skill"`
	Similarity  float64     `json:"similarity"`
}

// SkillsAnalysis is the skills facet of an analysis.
type SkillsAnalysis struct {
	Score             float64      `json:"score"`
	ExactMatches      []SkillMatch `json:"exact_matches"`
	SimilarMatches    []SkillMatch `json:"similar_matches"`
	MissingSkills     []JobSkill   `json:"missing_skills"`
	JobSkillsCount    int          `json:"job_skills_count"`
	ResumeSkillsCount int          `json:"resume_skills_count"`
}

// KeywordRecord is a frequency-weighted salient term from job text.
type KeywordRecord struct {
	Keyword   string  `json:"keyword"`
	Weight    float64 `json:"weight"` // [0.3, 1.0], frequency-derived
	Frequency int     `json:"frequency"`
}

// KeywordMatch is a job keyword found in the resume.
type KeywordMatch struct {
	Keyword      string  `json:"keyword"`
	Weight       float64 `json:"weight"`
	Frequency    int     `json:"frequency"` // occurrences in the resume
	ContextScore float64 `json:"context_score"`
	MatchScore   float64 `json:"match_score"`
}

// MissingKeyword is a job keyword absent from the resume.
type MissingKeyword struct {
	Keyword string  `json:"keyword"`
	Weight  float64 `json:"weight"`
	Reason  string  `json:"reason"`
}

// KeywordsAnalysis is the keyword-density facet of an analysis.
type KeywordsAnalysis struct {
	Score           float64          `json:"score"`
	Matches         []KeywordMatch   `json:"matches"`
	MissingKeywords []MissingKeyword `json:"missing_keywords"`
	TotalKeywords   int              `json:"total_keywords"`
}

// SeniorityAnalysis holds the seniority band derived from cumulative
// experience years.
type SeniorityAnalysis struct {
	Score float64 `json:"score"`
	Level string  `json:"level"`
	Years int     `json:"years"`
}

// ScoreOnly wraps a bare sub-score.
type ScoreOnly struct {
	Score float64 `json:"score"`
}

// ExperienceAnalysis is the experience facet of an analysis.
type ExperienceAnalysis struct {
	Score                float64           `json:"score"`
	SeniorityAnalysis    SeniorityAnalysis `json:"seniority_analysis"`
	RelevanceAnalysis    ScoreOnly         `json:"relevance_analysis"`
	DurationAnalysis     ScoreOnly         `json:"duration_analysis"`
	TotalExperienceYears int               `json:"total_experience_years"`
}

// EducationRequirement is a required education level found in job text.
type EducationRequirement struct {
	Level string `json:"level"` // lexicon term as found ("mestrado")
	Type  string `json:"type"`  // canonical type ("masters")
}

// EducationMatch pairs a requirement with the entry that satisfied it.
type EducationMatch struct {
	Requirement EducationRequirement `json:"requirement"`
	Education   EducationEntry       `json:"education"`
	MatchType   string               `json:"match_type"`
}

// EducationAnalysis is the education facet of an analysis.
type EducationAnalysis struct {
	Score               float64                `json:"score"`
	Matches             []EducationMatch       `json:"matches"`
	MissingRequirements []EducationRequirement `json:"missing_requirements"`
}

// Breakdown is the human-readable summary derived from the four
// sub-scores, localized to the resume's detected language.
type Breakdown struct {
	Strengths       []string `json:"strengths"`
	Weaknesses      []string `json:"weaknesses"`
	Recommendations []string `json:"recommendations"`
}

// AnalysisResult is the single externally consumed artifact of the
// engine. It round-trips losslessly through JSON and is created fresh
// per (resume, job) pair; the engine never persists it.
type AnalysisResult struct {
	OverallScore       float64            `json:"overall_score"`
	SkillsAnalysis     SkillsAnalysis     `json:"skills_analysis"`
	KeywordAnalysis    KeywordsAnalysis   `json:"keyword_analysis"`
	ExperienceAnalysis ExperienceAnalysis `json:"experience_analysis"`
	EducationAnalysis  EducationAnalysis  `json:"education_analysis"`
	DetailedBreakdown  Breakdown          `json:"detailed_breakdown"`

	// Fallback marks a result produced by panic recovery rather than a
	// completed analysis. Process-local; not part of the wire format.
	Fallback bool `json:"-"`
}
