package match

import "strings"

// BuildResumeProfile turns raw resume text into a structured profile:
// detect the language, carve the text into sections, and run the
// extractors over each window. The function is total; the worst case
// for malformed input is a profile full of empty slices and a
// placeholder name.
func BuildResumeProfile(raw string) ResumeProfile {
	return BuildResumeProfileLang(raw, DetectLanguage(raw))
}

// BuildResumeProfileLang builds a profile with a caller-supplied
// language instead of detecting one. Unknown codes fall back to the
// default locale's lexicons but are kept in DetectedLanguage.
func BuildResumeProfileLang(raw, lang string) ResumeProfile {
	_, secs := splitSections(raw, lang)

	p := ResumeProfile{
		PersonalInfo:     ExtractPersonalInfo(raw, lang),
		Summary:          secs["summary"],
		Education:        ParseEducation(secs["education"], lang),
		Experience:       ParseExperience(secs["experience"], lang),
		Certifications:   ParseCertifications(secs["certifications"]),
		Projects:         ParseProjects(secs["projects"]),
		Languages:        ParseLanguages(secs["languages"]),
		RawText:          raw,
		DetectedLanguage: lang,
	}

	all := ExtractResumeSkills(raw, lang)
	p.Skills, p.SoftSkills = splitSkillAreas(all)
	if len(p.Languages) == 0 {
		p.Languages = catalogLanguages(all)
	}
	p.AreaDetected = dominantArea(p.Skills)

	ensureProfileSlices(&p)
	return p
}

// splitSkillAreas separates hard skills from the soft_skills and
// languages areas, which the profile reports through dedicated fields.
func splitSkillAreas(all []SkillRecord) (hard []SkillRecord, soft []string) {
	for _, s := range all {
		switch s.Area {
		case "soft_skills":
			soft = append(soft, s.Name)
		case "languages":
			// surfaced via the languages section or catalogLanguages
		default:
			hard = append(hard, s)
		}
	}
	return hard, soft
}

// catalogLanguages builds language entries from catalog hits when the
// resume has no dedicated languages section.
func catalogLanguages(all []SkillRecord) []LanguageEntry {
	var out []LanguageEntry
	for _, s := range all {
		if s.Area == "languages" {
			out = append(out, LanguageEntry{Language: s.Name, Type: "language"})
		}
	}
	return out
}

// dominantArea picks the functional area with the highest summed skill
// confidence. Catalog order breaks ties so repeated runs agree; a
// profile with no catalog skills reads as "General".
func dominantArea(skills []SkillRecord) string {
	if len(skills) == 0 {
		return "General"
	}
	totals := map[string]float64{}
	for _, s := range skills {
		totals[s.Area] += s.Confidence
	}
	best, bestSum := "General", 0.0
	for _, area := range Data().Areas {
		if sum := totals[area.Name]; sum > bestSum {
			best, bestSum = area.Name, sum
		}
	}
	return best
}

// ensureProfileSlices replaces nil collections with empty ones so the
// profile serializes with [] instead of null.
func ensureProfileSlices(p *ResumeProfile) {
	if p.Education == nil {
		p.Education = []EducationEntry{}
	}
	if p.Experience == nil {
		p.Experience = []ExperienceEntry{}
	}
	if p.Skills == nil {
		p.Skills = []SkillRecord{}
	}
	if p.SoftSkills == nil {
		p.SoftSkills = []string{}
	}
	if p.Languages == nil {
		p.Languages = []LanguageEntry{}
	}
	if p.Certifications == nil {
		p.Certifications = []CertificationEntry{}
	}
	if p.Projects == nil {
		p.Projects = []ProjectEntry{}
	}
}

// jobSectionHeadings carve a posting into its conventional parts.
// Postings are far less uniform than resumes, so anything that does
// not sit under a recognized heading stays in Description.
var jobSectionHeadings = map[string][]string{
	"requirements":     {"requisitos", "requirements", "qualificações obrigatórias", "must have"},
	"responsibilities": {"responsabilidades", "responsibilities", "atividades", "atribuições", "responsabilidades y funciones", "funciones"},
	"qualifications":   {"qualificações", "qualifications", "diferenciais", "nice to have", "desejável", "deseable"},
}

// BuildJobProfile assembles a structured job profile from the posting
// title and body, detecting the language from both.
func BuildJobProfile(title, company, body string) JobProfile {
	p := JobProfile{
		Title:   title,
		Company: company,
	}

	lang := DetectLanguage(title + "\n" + body)
	for _, s := range ExtractJobSkills(title+"\n"+body, lang) {
		p.Skills = append(p.Skills, s.Name)
	}

	// Lines carved into a section field must leave Description, or
	// every term under a recognized heading would be counted twice
	// when the profile is flattened back into analysis text.
	current := ""
	var buf []string
	flush := func() {
		text := strings.TrimSpace(strings.Join(buf, "\n"))
		switch current {
		case "requirements":
			p.Requirements = text
		case "responsibilities":
			p.Responsibilities = text
		case "qualifications":
			p.Qualifications = text
		default:
			p.Description = text
		}
		buf = buf[:0]
	}
	for _, line := range strings.Split(body, "\n") {
		if kind := jobHeadingKind(line); kind != "" {
			flush()
			current = kind
			continue
		}
		buf = append(buf, line)
	}
	flush()
	return p
}

func jobHeadingKind(line string) string {
	t := strings.TrimSuffix(strings.TrimSpace(strings.ToLower(line)), ":")
	if t == "" || len([]rune(t)) > 60 {
		return ""
	}
	for _, kind := range []string{"requirements", "responsibilities", "qualifications"} {
		for _, kw := range jobSectionHeadings[kind] {
			if t == kw || strings.HasPrefix(t, kw+" ") {
				return kind
			}
		}
	}
	return ""
}
