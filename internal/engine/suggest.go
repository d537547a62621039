package engine

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/anatolykoptev/go_match/internal/engine/match"
)

// Resume length guard. Resumes longer than maxResumeWords get their
// oversized paragraphs trimmed before optimization so the output stays
// within one or two pages.
const (
	maxResumeWords    = 1000
	maxParagraphWords = 150
	trimmedParaLines  = 8
)

// GenerateSuggestions produces improvement suggestions for a resume
// against a job. With an LLM configured it asks the model and falls
// back to rule-derived suggestions on any failure, so the tool always
// answers.
func GenerateSuggestions(ctx context.Context, resumeText, jobTitle, jobDesc, lang string) []Suggestion {
	if out, err := llmSuggestions(ctx, resumeText, jobTitle, jobDesc, lang); err == nil {
		return out
	} else if !errors.Is(err, ErrLLMDisabled) {
		slog.Warn("suggestions: llm failed, using rules", slog.Any("error", err))
	}
	return ruleSuggestions(resumeText, jobTitle, jobDesc, lang)
}

func llmSuggestions(ctx context.Context, resumeText, jobTitle, jobDesc, lang string) ([]Suggestion, error) {
	prompt := fmt.Sprintf(suggestPrompt, languageName(lang), jobTitle, jobDesc, resumeText)
	raw, err := CallLLM(ctx, prompt)
	if err != nil {
		return nil, err
	}
	var out []Suggestion
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, fmt.Errorf("suggestions: parse failed on %q: %w", TruncateRunes(raw, 120, "..."), err)
	}
	for i := range out {
		out[i].SourceKind = "llm"
	}
	return out, nil
}

// ruleSuggestions derives suggestions from the deterministic analysis:
// missing skills, absent keywords, and weak facets become section
// advice. Identical inputs give identical suggestions.
func ruleSuggestions(resumeText, jobTitle, jobDesc, lang string) []Suggestion {
	resume := match.BuildResumeProfile(resumeText)
	job := match.BuildJobProfile(jobTitle, "", jobDesc)
	result := match.ComputeCompatibility(resume, job)

	var out []Suggestion
	add := func(section, text, priority string) {
		out = append(out, Suggestion{Section: section, Text: text, Priority: priority, SourceKind: "rules"})
	}

	for _, rec := range result.DetailedBreakdown.Recommendations {
		add(sectionForRecommendation(rec), rec, "high")
	}
	if resume.Summary == "" {
		add("summary", summaryAdvice(lang, jobTitle), "medium")
	}
	if len(result.KeywordAnalysis.MissingKeywords) > len(result.KeywordAnalysis.Matches) {
		add("keywords", keywordAdvice(lang), "medium")
	}

	if out == nil {
		out = []Suggestion{}
	}
	return out
}

// sectionForRecommendation buckets a localized recommendation string
// by the facet vocabulary it came from.
func sectionForRecommendation(rec string) string {
	l := strings.ToLower(rec)
	switch {
	case strings.Contains(l, "habilidade") || strings.Contains(l, "skill"):
		return "skills"
	case strings.Contains(l, "palavra") || strings.Contains(l, "keyword") || strings.Contains(l, "term") || strings.Contains(l, "palabra"):
		return "keywords"
	case strings.Contains(l, "experi"):
		return "experience"
	case strings.Contains(l, "forma") || strings.Contains(l, "education") || strings.Contains(l, "educa"):
		return "education"
	default:
		return "summary"
	}
}

func summaryAdvice(lang, jobTitle string) string {
	switch lang {
	case "en":
		return fmt.Sprintf("Add a professional summary targeting the %q position", jobTitle)
	case "es":
		return fmt.Sprintf("Agrega un resumen profesional orientado al puesto %q", jobTitle)
	default:
		return fmt.Sprintf("Adicione um resumo profissional direcionado à vaga %q", jobTitle)
	}
}

func keywordAdvice(lang string) string {
	switch lang {
	case "en":
		return "Mirror the posting's vocabulary in your experience descriptions"
	case "es":
		return "Refleja el vocabulario del puesto en las descripciones de experiencia"
	default:
		return "Espelhe o vocabulário da vaga nas descrições de experiência"
	}
}

// OptimizeResume rewrites a resume targeted at a job. The LLM path
// produces a real rewrite; without one the resume is returned with the
// length guard applied, which is still useful for oversized documents.
func OptimizeResume(ctx context.Context, resumeText, jobTitle, jobDesc, lang string) (text, source string) {
	prompt := fmt.Sprintf(optimizePrompt, languageName(lang), jobTitle, jobDesc, ValidateResumeLength(resumeText))
	raw, err := CallLLM(ctx, prompt)
	if err == nil && strings.TrimSpace(raw) != "" {
		return strings.TrimSpace(raw), "llm"
	}
	if err != nil && !errors.Is(err, ErrLLMDisabled) {
		slog.Warn("optimize: llm failed, returning length-validated resume", slog.Any("error", err))
	}
	return ValidateResumeLength(resumeText), "rules"
}

// ValidateResumeLength trims oversized paragraphs when the whole
// document exceeds maxResumeWords: any blank-line separated block
// longer than maxParagraphWords keeps only its first lines.
func ValidateResumeLength(text string) string {
	if wordCount(text) <= maxResumeWords {
		return text
	}
	paras := strings.Split(text, "\n\n")
	for i, p := range paras {
		if wordCount(p) <= maxParagraphWords {
			continue
		}
		lines := strings.Split(p, "\n")
		if len(lines) > trimmedParaLines {
			paras[i] = strings.Join(lines[:trimmedParaLines], "\n")
		}
	}
	return strings.Join(paras, "\n\n")
}

func wordCount(s string) int {
	return len(strings.Fields(s))
}

func languageName(lang string) string {
	if name, ok := languageNames[lang]; ok {
		return name
	}
	return languageNames["pt"]
}
