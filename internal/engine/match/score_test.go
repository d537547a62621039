package match

import (
	"reflect"
	"testing"
)

func TestComputeCompatibility(t *testing.T) {
	resume := ResumeProfile{
		RawText:          "experiência em python",
		DetectedLanguage: "pt",
		Skills:           []SkillRecord{{Name: "python", Area: "technology", Confidence: 0.8}},
	}
	job := JobProfile{Title: "python"}

	r := ComputeCompatibility(resume, job)

	// skills 100, keywords 93, experience 42, education 100
	// → 0.35·100 + 0.30·93 + 0.25·42 + 0.10·100 = 83.4.
	if r.OverallScore != 83.4 {
		t.Errorf("OverallScore = %v, want 83.4", r.OverallScore)
	}
	if r.SkillsAnalysis.Score != 100 {
		t.Errorf("skills = %v", r.SkillsAnalysis.Score)
	}
	if r.KeywordAnalysis.Score != 93 {
		t.Errorf("keywords = %v", r.KeywordAnalysis.Score)
	}
	if r.ExperienceAnalysis.Score != 42 {
		t.Errorf("experience = %v", r.ExperienceAnalysis.Score)
	}
	if r.EducationAnalysis.Score != 100 {
		t.Errorf("education = %v", r.EducationAnalysis.Score)
	}

	b := r.DetailedBreakdown
	if len(b.Strengths) != 3 {
		t.Errorf("strengths = %v", b.Strengths)
	}
	if len(b.Weaknesses) != 1 {
		t.Errorf("weaknesses = %v", b.Weaknesses)
	} else if b.Weaknesses[0] != "Experiência abaixo do esperado para a posição (nível estagiário)" {
		t.Errorf("weakness = %q", b.Weaknesses[0])
	}
	if len(b.Recommendations) != 2 {
		t.Errorf("recommendations = %v", b.Recommendations)
	}
	if r.Fallback {
		t.Error("Fallback must be false on the normal path")
	}
}

func TestComputeCompatibilityDeterministic(t *testing.T) {
	resume := ResumeProfile{
		RawText:          "experiência em python e django. graduação em computação.",
		DetectedLanguage: "pt",
		Skills: []SkillRecord{
			{Name: "python", Area: "technology", Confidence: 0.8},
			{Name: "django", Area: "technology", Confidence: 0.5},
		},
		Experience: []ExperienceEntry{{Position: "Desenvolvedor", Years: 6, Type: "experience"}},
		Education:  []EducationEntry{{Course: "Graduação em Computação", Type: "education"}},
	}
	job := JobProfile{
		Title:       "Desenvolvedor Python",
		Description: "requisito: python e django. graduação obrigatória.",
	}

	first := ComputeCompatibility(resume, job)
	for i := 0; i < 10; i++ {
		if got := ComputeCompatibility(resume, job); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d diverged:\n%+v\nvs\n%+v", i, got, first)
		}
	}
}

func TestComputeCompatibilityMissingEverything(t *testing.T) {
	resume := ResumeProfile{
		RawText:          "desenvolvedor java",
		DetectedLanguage: "pt",
	}
	job := JobProfile{Title: "python"}

	r := ComputeCompatibility(resume, job)

	// skills 0, keywords 0, experience 42, education 100 → 20.5.
	if r.OverallScore != 20.5 {
		t.Errorf("OverallScore = %v, want 20.5", r.OverallScore)
	}
	if len(r.SkillsAnalysis.MissingSkills) != 1 {
		t.Errorf("missing skills = %v", r.SkillsAnalysis.MissingSkills)
	}
	if len(r.DetailedBreakdown.Weaknesses) == 0 || len(r.DetailedBreakdown.Recommendations) == 0 {
		t.Error("low scores must produce weaknesses and recommendations")
	}
}

func TestComputeCompatibilityEmptyInputs(t *testing.T) {
	r := ComputeCompatibility(ResumeProfile{DetectedLanguage: "pt"}, JobProfile{})

	if r.OverallScore != 0 {
		t.Errorf("OverallScore = %v, want 0", r.OverallScore)
	}
	b := r.DetailedBreakdown
	if len(b.Weaknesses) != 1 || b.Weaknesses[0] != "Dados insuficientes para análise" {
		t.Errorf("weaknesses = %v", b.Weaknesses)
	}
	if len(b.Recommendations) != 1 {
		t.Errorf("recommendations = %v", b.Recommendations)
	}
	if r.SkillsAnalysis.ExactMatches == nil || r.KeywordAnalysis.Matches == nil {
		t.Error("degenerate results must keep non-nil slices")
	}
}

func TestComputeCompatibilityUnknownLanguage(t *testing.T) {
	r := ComputeCompatibility(ResumeProfile{DetectedLanguage: "de"}, JobProfile{})
	// Unsupported languages fall back to the default locale's texts.
	if len(r.DetailedBreakdown.Weaknesses) != 1 ||
		r.DetailedBreakdown.Weaknesses[0] != "Dados insuficientes para análise" {
		t.Errorf("weaknesses = %v", r.DetailedBreakdown.Weaknesses)
	}
}

func TestFallbackResult(t *testing.T) {
	r := fallbackResult("pt")
	if !r.Fallback {
		t.Error("Fallback marker not set")
	}
	if r.OverallScore != 0 {
		t.Errorf("OverallScore = %v", r.OverallScore)
	}
	if len(r.DetailedBreakdown.Weaknesses) != 1 ||
		r.DetailedBreakdown.Weaknesses[0] != "Erro durante o processamento detalhado" {
		t.Errorf("weaknesses = %v", r.DetailedBreakdown.Weaknesses)
	}
	if len(r.DetailedBreakdown.Recommendations) != 1 {
		t.Errorf("recommendations = %v", r.DetailedBreakdown.Recommendations)
	}
}

func TestJobText(t *testing.T) {
	job := JobProfile{
		Title:        "Desenvolvedor",
		Company:      "Empresa X",
		Description:  "Backend em Go.",
		Requirements: "Experiência com APIs.",
		Skills:       []string{"python", "django"},
	}
	got := JobText(job)
	want := "Desenvolvedor\nBackend em Go.\nExperiência com APIs.\npython django\nEmpresa X"
	if got != want {
		t.Errorf("JobText = %q, want %q", got, want)
	}
	if JobText(JobProfile{}) != "" {
		t.Error("empty profile must flatten to empty text")
	}
}

func TestResumeText(t *testing.T) {
	resume := ResumeProfile{
		Summary:    "Resumo profissional.",
		Skills:     []SkillRecord{{Name: "python"}, {Name: "django"}},
		Experience: []ExperienceEntry{{Description: "Desenvolvedor Backend"}},
		Education:  []EducationEntry{{Course: "Bacharelado em Computação"}},
	}
	got := ResumeText(resume)
	want := "Desenvolvedor Backend\nBacharelado em Computação\nResumo profissional.\npython django"
	if got != want {
		t.Errorf("ResumeText = %q, want %q", got, want)
	}
	if ResumeText(ResumeProfile{}) != "" {
		t.Error("empty profile must flatten to empty text")
	}
}

func TestComputeCompatibilityStructuredResume(t *testing.T) {
	// A profile supplied without raw text still carries its structured
	// fields into the analysis.
	resume := ResumeProfile{
		DetectedLanguage: "pt",
		Skills:           []SkillRecord{{Name: "python", Area: "technology", Confidence: 0.8}},
		Experience:       []ExperienceEntry{{Description: "experiência em python", Type: "experience"}},
	}
	job := JobProfile{Title: "python"}

	r := ComputeCompatibility(resume, job)
	if r.OverallScore == 0 {
		t.Fatalf("structured-only resume scored zero: %+v", r)
	}
	if r.KeywordAnalysis.Score == 0 || len(r.KeywordAnalysis.Matches) != 1 {
		t.Errorf("keyword analysis ignored structured fields: %+v", r.KeywordAnalysis)
	}
	if r.SkillsAnalysis.Score != 100 {
		t.Errorf("skills = %v, want 100", r.SkillsAnalysis.Score)
	}
}

func TestClampAndRound(t *testing.T) {
	if got := clampScore(120); got != 100 {
		t.Errorf("clampScore(120) = %v", got)
	}
	if got := clampScore(-3); got != 0 {
		t.Errorf("clampScore(-3) = %v", got)
	}
	if got := round2(66.666666); got != 66.67 {
		t.Errorf("round2 = %v", got)
	}
}
