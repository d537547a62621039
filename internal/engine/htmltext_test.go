package engine

import (
	"strings"
	"testing"
)

func TestLooksLikeHTML(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"doctype", "<!DOCTYPE html><html><body>hi</body></html>", true},
		{"lowercase doctype", "<!doctype html>", true},
		{"div fragment", "<div>vaga para desenvolvedor</div>", true},
		{"plain text", "Desenvolvedor backend com python", false},
		{"angle brackets in prose", "salário a < b combinar", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LooksLikeHTML(tt.in); got != tt.want {
				t.Errorf("LooksLikeHTML(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestHTMLToTextPassthrough(t *testing.T) {
	in := "Desenvolvedor backend\ncom python e django"
	if got := HTMLToText(in); got != in {
		t.Errorf("plain text must pass through unchanged, got %q", got)
	}
}

func TestHTMLToText(t *testing.T) {
	in := `<html><body>
<h2>Requisitos</h2>
<ul><li>python</li><li>django</li></ul>
</body></html>`

	got := HTMLToText(in)
	for _, want := range []string{"Requisitos", "python", "django"} {
		if !strings.Contains(got, want) {
			t.Errorf("output %q missing %q", got, want)
		}
	}
	if strings.Contains(got, "<") || strings.Contains(got, "#") {
		t.Errorf("markup leaked into output: %q", got)
	}
}

func TestStripMarkdownMarks(t *testing.T) {
	got := stripMarkdownMarks("## Requisitos\n- python\n**django**")
	want := "Requisitos\npython\ndjango\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
