package engine

import (
	"context"
	"reflect"
	"strings"
	"testing"
)

func TestGenerateSuggestionsWithoutLLM(t *testing.T) {
	// No LLM configured: the rule path must answer on its own.
	resume := "Desenvolvedor java com 3 anos de experiência"
	out := GenerateSuggestions(context.Background(), resume, "Desenvolvedor Python", "requisito: python e django", "pt")

	if len(out) == 0 {
		t.Fatal("rule path produced no suggestions for a mismatched pair")
	}
	for _, s := range out {
		if s.SourceKind != "rules" {
			t.Errorf("SourceKind = %q, want rules", s.SourceKind)
		}
		if s.Section == "" || s.Text == "" || s.Priority == "" {
			t.Errorf("incomplete suggestion: %+v", s)
		}
	}
}

func TestRuleSuggestionsDeterministic(t *testing.T) {
	resume := "Analista de suporte"
	first := ruleSuggestions(resume, "Desenvolvedor Python", "requisito: python", "pt")
	for i := 0; i < 5; i++ {
		if got := ruleSuggestions(resume, "Desenvolvedor Python", "requisito: python", "pt"); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d diverged:\n%+v\nvs\n%+v", i, got, first)
		}
	}
}

func TestSectionForRecommendation(t *testing.T) {
	tests := []struct {
		rec  string
		want string
	}{
		{"Desenvolva a habilidade: python", "skills"},
		{"Develop the skill: python", "skills"},
		{"Inclua no currículo termos relevantes da vaga: python", "keywords"},
		{"Destaque experiências relacionadas à posição desejada", "experience"},
		{"Considere complementar a formação exigida pela vaga", "education"},
		{"Seu perfil está bem alinhado com a vaga", "summary"},
	}
	for _, tt := range tests {
		if got := sectionForRecommendation(tt.rec); got != tt.want {
			t.Errorf("sectionForRecommendation(%q) = %q, want %q", tt.rec, got, tt.want)
		}
	}
}

func TestValidateResumeLengthShort(t *testing.T) {
	in := "Desenvolvedor backend\n\nExperiência com python"
	if got := ValidateResumeLength(in); got != in {
		t.Errorf("short resume must be untouched, got %q", got)
	}
}

func TestValidateResumeLengthTrimsParagraphs(t *testing.T) {
	line := "cada linha desta tem seis palavras"
	bigPara := strings.Repeat(line+"\n", 210)
	bigPara = strings.TrimSuffix(bigPara, "\n")
	in := "cabeçalho curto\n\n" + bigPara

	got := ValidateResumeLength(in)
	paras := strings.Split(got, "\n\n")
	if len(paras) != 2 {
		t.Fatalf("paragraph structure changed: %d blocks", len(paras))
	}
	if paras[0] != "cabeçalho curto" {
		t.Errorf("small paragraph modified: %q", paras[0])
	}
	if lines := strings.Split(paras[1], "\n"); len(lines) != trimmedParaLines {
		t.Errorf("oversized paragraph kept %d lines, want %d", len(lines), trimmedParaLines)
	}
}

func TestOptimizeResumeWithoutLLM(t *testing.T) {
	in := "Desenvolvedor backend com python"
	text, source := OptimizeResume(context.Background(), in, "Desenvolvedor", "vaga python", "pt")
	if source != "rules" {
		t.Errorf("source = %q, want rules", source)
	}
	if text != in {
		t.Errorf("without an LLM a short resume passes through, got %q", text)
	}
}

func TestLanguageName(t *testing.T) {
	if got := languageName("en"); got != "English" {
		t.Errorf("languageName(en) = %q", got)
	}
	if got := languageName("xx"); got != languageName("pt") {
		t.Errorf("unknown language must fall back to the default, got %q", got)
	}
}
