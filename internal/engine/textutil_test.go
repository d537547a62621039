package engine

import "testing"

func TestNormLang(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "pt"},
		{"pt", "pt"},
		{"PT-BR", "pt"},
		{"en_US", "en"},
		{"  Es  ", "es"},
		{"FR", "fr"},
	}
	for _, tt := range tests {
		if got := NormLang(tt.in); got != tt.want {
			t.Errorf("NormLang(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormLangConfiguredDefault(t *testing.T) {
	old := cfg.DefaultLanguage
	defer func() { cfg.DefaultLanguage = old }()

	cfg.DefaultLanguage = "en"
	if got := NormLang(""); got != "en" {
		t.Errorf("NormLang(\"\") = %q, want configured en", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("abcdef", 3); got != "abc" {
		t.Errorf("Truncate = %q", got)
	}
	if got := Truncate("ab", 10); got != "ab" {
		t.Errorf("Truncate short = %q", got)
	}
}

func TestClampInput(t *testing.T) {
	if got := ClampInput("short text", 100); got != "short text" {
		t.Errorf("under-limit input must pass through, got %q", got)
	}
	if got := ClampInput("anything at all", 0); got != "anything at all" {
		t.Errorf("zero limit disables clamping, got %q", got)
	}

	long := "palavra um dois tres quatro cinco seis sete oito nove dez"
	got := ClampInput(long, 20)
	if len(got) >= len(long) {
		t.Errorf("over-limit input must shrink, got %q", got)
	}
}
