package engine

import (
	"github.com/anatolykoptev/go_match/internal/engine/match"
)

// --- resume_parse ---

type ResumeParseInput struct {
	Text     string `json:"text" jsonschema:"Raw resume text (plain text or HTML)"`
	Language string `json:"language,omitempty" jsonschema:"Language hint: pt, en, es. Default: auto-detect"`
}

type ResumeParseOutput struct {
	Profile  match.ResumeProfile `json:"profile"`
	Language string              `json:"language"`
}

// --- job_parse ---

type JobParseInput struct {
	Title       string `json:"title" jsonschema:"Job title"`
	Company     string `json:"company,omitempty" jsonschema:"Company name"`
	Description string `json:"description" jsonschema:"Job description (plain text or HTML)"`
}

type JobParseOutput struct {
	Profile  match.JobProfile `json:"profile"`
	Language string           `json:"language"`
}

// --- compatibility_analyze ---

type AnalyzeInput struct {
	ResumeText     string `json:"resume_text" jsonschema:"Raw resume text (plain text or HTML)"`
	JobTitle       string `json:"job_title" jsonschema:"Job title"`
	Company        string `json:"company,omitempty" jsonschema:"Company name"`
	JobDescription string `json:"job_description" jsonschema:"Job description (plain text or HTML)"`
	Save           bool   `json:"save,omitempty" jsonschema:"Persist the analysis to history (default: false)"`
}

type AnalyzeOutput struct {
	Result    match.AnalysisResult `json:"result"`
	Language  string               `json:"language"`
	HistoryID int64                `json:"history_id,omitempty"`
	Cached    bool                 `json:"cached,omitempty"`
}

// --- resume_suggestions ---

type SuggestInput struct {
	ResumeText     string `json:"resume_text" jsonschema:"Raw resume text"`
	JobTitle       string `json:"job_title" jsonschema:"Target job title"`
	JobDescription string `json:"job_description" jsonschema:"Target job description"`
}

// Suggestion is one improvement recommendation for a resume section.
type Suggestion struct {
	Section    string `json:"section"`  // summary, skills, experience, education, keywords
	Text       string `json:"text"`     // the recommendation itself
	Priority   string `json:"priority"` // high, medium, low
	SourceKind string `json:"source"`   // llm or rules
}

type SuggestOutput struct {
	Suggestions []Suggestion `json:"suggestions"`
	Language    string       `json:"language"`
}

// --- resume_optimize ---

type OptimizeInput struct {
	ResumeText     string `json:"resume_text" jsonschema:"Raw resume text"`
	JobTitle       string `json:"job_title" jsonschema:"Target job title"`
	JobDescription string `json:"job_description" jsonschema:"Target job description"`
}

type OptimizeOutput struct {
	OptimizedText string `json:"optimized_text"`
	Source        string `json:"source"` // llm or rules
	Language      string `json:"language"`
}
