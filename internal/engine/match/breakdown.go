package match

import (
	"fmt"
	"strings"
)

// Thresholds that turn sub-scores into narrative. A facet reads as a
// strength at or above the high mark, as a weakness below the low
// mark, and earns a recommendation below the advice mark.
const (
	strengthMark  = 70.0
	weaknessMark  = 50.0
	adviceMark    = 70.0
	educationHigh = 80.0
	educationLow  = 60.0
	overallStrong = 80.0

	maxListedSkills = 3
	maxSkillRecs    = 5
)

// bdMessages is the localized text set for one language.
type bdMessages struct {
	strongSkills    string
	skillCoverage   string // needs matched and total counts
	strongKeywords  string
	strongExp       string
	strongEducation string

	weakSkills    string // needs missing skill list
	weakKeywords  string
	weakExp       string // needs seniority level
	weakEducation string // needs missing requirement list

	recSkill     string // needs one missing skill name
	recKeywords  string // needs keyword list
	recExp       string
	recEducation string
	recAligned   string

	errProcessing string
	errRetry      string
	errNoData     string
	errProvide    string
}

var breakdownTexts = map[string]bdMessages{
	"pt": {
		strongSkills:    "Forte alinhamento de habilidades técnicas",
		skillCoverage:   "Possui %d de %d habilidades exigidas pela vaga",
		strongKeywords:  "Currículo contém as palavras-chave relevantes da vaga",
		strongExp:       "Nível de experiência adequado para a posição",
		strongEducation: "Formação acadêmica compatível com os requisitos",
		weakSkills:      "Faltam habilidades importantes: %s",
		weakKeywords:    "Baixa presença de palavras-chave da vaga no currículo",
		weakExp:         "Experiência abaixo do esperado para a posição (nível %s)",
		weakEducation:   "Requisitos de formação não atendidos: %s",
		recSkill:        "Desenvolva a habilidade: %s",
		recKeywords:     "Inclua no currículo termos relevantes da vaga: %s",
		recExp:          "Destaque experiências relacionadas à posição desejada",
		recEducation:    "Considere complementar a formação exigida pela vaga",
		recAligned:      "Seu perfil está bem alinhado com a vaga",
		errProcessing:   "Erro durante o processamento detalhado",
		errRetry:        "Tente novamente ou revise o conteúdo enviado",
		errNoData:       "Dados insuficientes para análise",
		errProvide:      "Forneça o texto do currículo e da vaga",
	},
	"en": {
		strongSkills:    "Strong technical skill alignment",
		skillCoverage:   "Has %d of %d skills required by the position",
		strongKeywords:  "Resume contains the position's relevant keywords",
		strongExp:       "Experience level fits the position",
		strongEducation: "Academic background matches the requirements",
		weakSkills:      "Missing important skills: %s",
		weakKeywords:    "Low presence of the position's keywords in the resume",
		weakExp:         "Experience below what the position expects (%s level)",
		weakEducation:   "Education requirements not met: %s",
		recSkill:        "Develop the skill: %s",
		recKeywords:     "Add relevant terms from the posting to the resume: %s",
		recExp:          "Highlight experience related to the target position",
		recEducation:    "Consider pursuing the education the position requires",
		recAligned:      "Your profile is well aligned with the position",
		errProcessing:   "Error during detailed processing",
		errRetry:        "Retry or review the submitted content",
		errNoData:       "Insufficient data for analysis",
		errProvide:      "Provide the resume and job posting text",
	},
	"es": {
		strongSkills:    "Fuerte alineación de habilidades técnicas",
		skillCoverage:   "Posee %d de %d habilidades exigidas por el puesto",
		strongKeywords:  "El currículum contiene las palabras clave relevantes del puesto",
		strongExp:       "Nivel de experiencia adecuado para el puesto",
		strongEducation: "Formación académica compatible con los requisitos",
		weakSkills:      "Faltan habilidades importantes: %s",
		weakKeywords:    "Baja presencia de palabras clave del puesto en el currículum",
		weakExp:         "Experiencia por debajo de lo esperado para el puesto (nivel %s)",
		weakEducation:   "Requisitos de formación no cumplidos: %s",
		recSkill:        "Desarrolla la habilidad: %s",
		recKeywords:     "Incluye en el currículum términos relevantes del puesto: %s",
		recExp:          "Destaca experiencias relacionadas con el puesto deseado",
		recEducation:    "Considera complementar la formación exigida por el puesto",
		recAligned:      "Tu perfil está bien alineado con el puesto",
		errProcessing:   "Error durante el procesamiento detallado",
		errRetry:        "Inténtalo de nuevo o revisa el contenido enviado",
		errNoData:       "Datos insuficientes para el análisis",
		errProvide:      "Proporciona el texto del currículum y del puesto",
	},
}

func breakdownMessages(lang string) bdMessages {
	if m, ok := breakdownTexts[lang]; ok {
		return m
	}
	return breakdownTexts[DefaultLanguage]
}

func (m bdMessages) fallback() Breakdown {
	return Breakdown{
		Strengths:       []string{},
		Weaknesses:      []string{m.errProcessing},
		Recommendations: []string{m.errRetry},
	}
}

func (m bdMessages) emptyInput() Breakdown {
	return Breakdown{
		Strengths:       []string{},
		Weaknesses:      []string{m.errNoData},
		Recommendations: []string{m.errProvide},
	}
}

// BuildBreakdown derives localized strengths, weaknesses and
// recommendations from the four sub-analyses. The lists are never nil
// and their order follows the factor weighting: skills, keywords,
// experience, education.
func BuildBreakdown(r AnalysisResult, lang string) Breakdown {
	m := breakdownMessages(lang)
	b := Breakdown{
		Strengths:       []string{},
		Weaknesses:      []string{},
		Recommendations: []string{},
	}

	matched := len(r.SkillsAnalysis.ExactMatches) + len(r.SkillsAnalysis.SimilarMatches)
	if r.SkillsAnalysis.Score >= strengthMark {
		b.Strengths = append(b.Strengths, m.strongSkills)
	}
	if matched >= 3 && r.SkillsAnalysis.JobSkillsCount > 0 {
		b.Strengths = append(b.Strengths, fmt.Sprintf(m.skillCoverage, matched, r.SkillsAnalysis.JobSkillsCount))
	}
	if r.KeywordAnalysis.Score >= strengthMark {
		b.Strengths = append(b.Strengths, m.strongKeywords)
	}
	if r.ExperienceAnalysis.Score >= strengthMark {
		b.Strengths = append(b.Strengths, m.strongExp)
	}
	if r.EducationAnalysis.Score >= educationHigh {
		b.Strengths = append(b.Strengths, m.strongEducation)
	}

	if r.SkillsAnalysis.Score < weaknessMark && len(r.SkillsAnalysis.MissingSkills) > 0 {
		b.Weaknesses = append(b.Weaknesses, fmt.Sprintf(m.weakSkills, missingSkillNames(r.SkillsAnalysis.MissingSkills)))
	}
	if r.KeywordAnalysis.Score < weaknessMark {
		b.Weaknesses = append(b.Weaknesses, m.weakKeywords)
	}
	if r.ExperienceAnalysis.Score < weaknessMark {
		b.Weaknesses = append(b.Weaknesses, fmt.Sprintf(m.weakExp, r.ExperienceAnalysis.SeniorityAnalysis.Level))
	}
	if r.EducationAnalysis.Score < educationLow && len(r.EducationAnalysis.MissingRequirements) > 0 {
		b.Weaknesses = append(b.Weaknesses, fmt.Sprintf(m.weakEducation, missingRequirementNames(r.EducationAnalysis.MissingRequirements)))
	}

	if r.SkillsAnalysis.Score < adviceMark {
		for i, s := range r.SkillsAnalysis.MissingSkills {
			if i == maxSkillRecs {
				break
			}
			b.Recommendations = append(b.Recommendations, fmt.Sprintf(m.recSkill, s.Name))
		}
	}
	if r.KeywordAnalysis.Score < adviceMark && len(r.KeywordAnalysis.MissingKeywords) > 0 {
		b.Recommendations = append(b.Recommendations, fmt.Sprintf(m.recKeywords, missingKeywordNames(r.KeywordAnalysis.MissingKeywords)))
	}
	if r.ExperienceAnalysis.Score < adviceMark {
		b.Recommendations = append(b.Recommendations, m.recExp)
	}
	if r.EducationAnalysis.Score < adviceMark {
		b.Recommendations = append(b.Recommendations, m.recEducation)
	}
	if r.OverallScore >= overallStrong {
		b.Recommendations = append(b.Recommendations, m.recAligned)
	}

	return b
}

func missingSkillNames(skills []JobSkill) string {
	names := make([]string, 0, maxListedSkills)
	for _, s := range skills {
		if len(names) == maxListedSkills {
			break
		}
		names = append(names, s.Name)
	}
	return strings.Join(names, ", ")
}

func missingKeywordNames(kws []MissingKeyword) string {
	names := make([]string, 0, maxListedSkills)
	for _, k := range kws {
		if len(names) == maxListedSkills {
			break
		}
		names = append(names, k.Keyword)
	}
	return strings.Join(names, ", ")
}

func missingRequirementNames(reqs []EducationRequirement) string {
	names := make([]string, 0, maxListedSkills)
	for _, r := range reqs {
		if len(names) == maxListedSkills {
			break
		}
		names = append(names, r.Level)
	}
	return strings.Join(names, ", ")
}
