package match

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

// CatalogSkill is one canonical skill plus per-locale spellings.
type CatalogSkill struct {
	Name       string              `yaml:"name"`
	Variations map[string][]string `yaml:"variations"`
}

// CatalogArea groups skills under a functional area such as
// technology or project_management.
type CatalogArea struct {
	Name   string         `yaml:"name"`
	Skills []CatalogSkill `yaml:"skills"`
}

// EducationLevel is one lexicon entry mapping a surface term to a
// normalized degree type.
type EducationLevel struct {
	Term string `yaml:"term"`
	Type string `yaml:"type"`
}

// Locale bundles every language-dependent lexicon the analyzers use.
type Locale struct {
	FunctionWords      []string            `yaml:"function_words"`
	Sections           map[string][]string `yaml:"sections"`
	EvidencePhrases    []string            `yaml:"evidence_phrases"`
	ContextIndicators  []string            `yaml:"context_indicators"`
	RequirementMarkers []string            `yaml:"requirement_markers"`
	StopWords          []string            `yaml:"stop_words"`
	EducationLevels    []EducationLevel    `yaml:"education_levels"`
	Seniority          map[string]string   `yaml:"seniority"`
	OngoingMarkers     []string            `yaml:"ongoing_markers"`
}

// Catalog is the full embedded reference data set. It is loaded once
// and never mutated; concurrent readers need no locking.
type Catalog struct {
	LocalePriority []string               `yaml:"locale_priority"`
	Areas          []CatalogArea          `yaml:"areas"`
	Locales        map[string]Locale      `yaml:"locales"`
	stopSets       map[string]stringSet   `yaml:"-"`
	functionSets   map[string]stringSet   `yaml:"-"`
	sectionSets    map[string]stringSet   `yaml:"-"`
}

type stringSet map[string]struct{}

func (s stringSet) has(w string) bool {
	_, ok := s[w]
	return ok
}

func newStringSet(words []string) stringSet {
	s := make(stringSet, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}

var (
	catalogOnce sync.Once
	catalogData *Catalog
)

// Data returns the process-wide catalog, parsing the embedded YAML on
// first use. The YAML ships with the binary, so a parse failure is a
// build defect and panics.
func Data() *Catalog {
	catalogOnce.Do(func() {
		c := &Catalog{}
		if err := yaml.Unmarshal(catalogYAML, c); err != nil {
			panic(fmt.Sprintf("match: bad embedded catalog: %v", err))
		}
		c.stopSets = make(map[string]stringSet, len(c.Locales))
		c.functionSets = make(map[string]stringSet, len(c.Locales))
		c.sectionSets = make(map[string]stringSet, len(c.Locales))
		for code, loc := range c.Locales {
			c.stopSets[code] = newStringSet(loc.StopWords)
			c.functionSets[code] = newStringSet(loc.FunctionWords)
			sec := stringSet{}
			for _, kws := range loc.Sections {
				for _, kw := range kws {
					sec[kw] = struct{}{}
				}
			}
			c.sectionSets[code] = sec
		}
		catalogData = c
	})
	return catalogData
}

// Locale resolves a language code, falling back to Portuguese for
// anything the catalog does not carry.
func (c *Catalog) Locale(lang string) Locale {
	if loc, ok := c.Locales[lang]; ok {
		return loc
	}
	return c.Locales[DefaultLanguage]
}

// StopWords returns the stop-word set for lang, falling back to the
// default locale.
func (c *Catalog) StopWords(lang string) stringSet {
	if s, ok := c.stopSets[lang]; ok {
		return s
	}
	return c.stopSets[DefaultLanguage]
}

// SkillTerms yields every matchable surface form for a skill in the
// given language: the canonical name plus that locale's variations.
func (sk CatalogSkill) SkillTerms(lang string) []string {
	terms := []string{sk.Name}
	if vars, ok := sk.Variations[lang]; ok {
		terms = append(terms, vars...)
	}
	return terms
}

// DefaultLanguage is the locale assumed when detection finds no
// signal. The engine was built for the Brazilian market first.
const DefaultLanguage = "pt"
