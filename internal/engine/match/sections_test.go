package match

import (
	"strings"
	"testing"
)

const sampleResumePT = `João da Silva
joao.silva@email.com
(11) 98765-4321
linkedin.com/in/joaosilva

Resumo
Desenvolvedor backend com experiência em python e django.

Experiência Profissional
Desenvolvedor Backend 2018 - 2022
Empresa X
Desenvolvimento de APIs REST com django e postgresql.

Analista de Sistemas 2015 a 2018
Empresa Y

Formação Acadêmica
Bacharelado em Ciência da Computação 2011 - 2015
Universidade Z

Idiomas
Inglês - Avançado
Espanhol - Básico
`

func TestSplitSections(t *testing.T) {
	header, secs := splitSections(sampleResumePT, "pt")

	if !strings.Contains(header, "João da Silva") {
		t.Errorf("header missing name: %q", header)
	}
	for _, kind := range []string{"summary", "experience", "education", "languages"} {
		if secs[kind] == "" {
			t.Errorf("section %q not captured", kind)
		}
	}
	if !strings.Contains(secs["summary"], "experiência em python") {
		t.Errorf("summary window wrong: %q", secs["summary"])
	}
	if strings.Contains(secs["experience"], "Bacharelado") {
		t.Errorf("experience window bleeds into education: %q", secs["experience"])
	}
}

func TestExtractPersonalInfo(t *testing.T) {
	info := ExtractPersonalInfo(sampleResumePT, "pt")

	if info.Name != "João da Silva" {
		t.Errorf("Name = %q, want João da Silva", info.Name)
	}
	if info.Email != "joao.silva@email.com" {
		t.Errorf("Email = %q", info.Email)
	}
	if info.Phone == "" {
		t.Error("Phone not extracted")
	}
	if info.LinkedIn != "https://linkedin.com/in/joaosilva" {
		t.Errorf("LinkedIn = %q", info.LinkedIn)
	}
}

func TestExtractPersonalInfoFallbackName(t *testing.T) {
	tests := []struct {
		lang, want string
	}{
		{"pt", "Nome não identificado"},
		{"en", "Name not identified"},
		{"es", "Nombre no identificado"},
		{"xx", "Nome não identificado"},
	}
	for _, tt := range tests {
		info := ExtractPersonalInfo("texto sem nenhum dado pessoal aproveitável", tt.lang)
		if info.Name != tt.want {
			t.Errorf("lang %s: Name = %q, want %q", tt.lang, info.Name, tt.want)
		}
	}
}

func TestParseExperience(t *testing.T) {
	_, secs := splitSections(sampleResumePT, "pt")
	entries := ParseExperience(secs["experience"], "pt")

	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	first := entries[0]
	if first.Position != "Desenvolvedor Backend" {
		t.Errorf("Position = %q", first.Position)
	}
	if first.Company != "Empresa X" {
		t.Errorf("Company = %q", first.Company)
	}
	if first.StartDate != "2018" || first.EndDate != "2022" {
		t.Errorf("range = %s-%s", first.StartDate, first.EndDate)
	}
	if first.Years != 4 {
		t.Errorf("Years = %d, want 4", first.Years)
	}
	if entries[1].Years != 3 {
		t.Errorf("second entry Years = %d, want 3", entries[1].Years)
	}
	if first.Type != "experience" {
		t.Errorf("Type = %q", first.Type)
	}
}

func TestParseExperienceOngoingRange(t *testing.T) {
	entries := ParseExperience("Engenheiro de Dados 2020 - presente\nEmpresa W", "pt")
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0].EndDate != "presente" {
		t.Errorf("EndDate = %q, want presente", entries[0].EndDate)
	}
	// Open ranges never contribute years: parsing must not depend on
	// the current date.
	if entries[0].Years != 0 {
		t.Errorf("Years = %d, want 0 for ongoing range", entries[0].Years)
	}
}

func TestParseExperiencePlaceholder(t *testing.T) {
	entries := ParseExperience("Atuei em diversos projetos de software.", "pt")
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0].Type != "unknown" {
		t.Errorf("Type = %q, want unknown", entries[0].Type)
	}
	if entries[0].Description == "" {
		t.Error("placeholder entry must keep the window text")
	}
}

func TestParseExperienceEmpty(t *testing.T) {
	if entries := ParseExperience("", "pt"); entries != nil {
		t.Errorf("empty window should yield no entries, got %v", entries)
	}
}

func TestParseExperienceIgnoresPhoneNumbers(t *testing.T) {
	entries := ParseExperience("Contato 98765-4321 durante o projeto", "pt")
	if len(entries) != 1 || entries[0].Type != "unknown" {
		t.Errorf("phone fragment must not read as a date range: %+v", entries)
	}
}

func TestParseExperienceReparse(t *testing.T) {
	// Re-parsing the joined entry descriptions must not lose entries.
	_, secs := splitSections(sampleResumePT, "pt")
	first := ParseExperience(secs["experience"], "pt")

	var joined []string
	for _, e := range first {
		joined = append(joined, e.Description)
	}
	second := ParseExperience(strings.Join(joined, "\n"), "pt")
	if len(second) < len(first) {
		t.Errorf("re-parse lost entries: %d < %d", len(second), len(first))
	}
}

func TestParseEducation(t *testing.T) {
	_, secs := splitSections(sampleResumePT, "pt")
	entries := ParseEducation(secs["education"], "pt")

	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	e := entries[0]
	if e.Course != "Bacharelado em Ciência da Computação" {
		t.Errorf("Course = %q", e.Course)
	}
	if e.Institution != "Universidade Z" {
		t.Errorf("Institution = %q", e.Institution)
	}
	if e.Type != "education" {
		t.Errorf("Type = %q", e.Type)
	}
}

func TestParseLanguages(t *testing.T) {
	_, secs := splitSections(sampleResumePT, "pt")
	langs := ParseLanguages(secs["languages"])

	if len(langs) != 2 {
		t.Fatalf("got %d languages, want 2", len(langs))
	}
	if langs[0].Language != "Inglês" || langs[0].Proficiency != "Avançado" {
		t.Errorf("first language = %+v", langs[0])
	}
}

func TestParseCertifications(t *testing.T) {
	certs := ParseCertifications("- AWS Solutions Architect - Amazon\n* Scrum Master\n")
	if len(certs) != 2 {
		t.Fatalf("got %d certs, want 2", len(certs))
	}
	if certs[0].Name != "AWS Solutions Architect" || certs[0].Institution != "Amazon" {
		t.Errorf("first cert = %+v", certs[0])
	}
	if certs[1].Name != "Scrum Master" || certs[1].Institution != "" {
		t.Errorf("second cert = %+v", certs[1])
	}
}
