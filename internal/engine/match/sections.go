package match

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var (
	emailRE    = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	phoneRE    = regexp.MustCompile(`(?:\+?55\s*)?(?:\(?\d{2}\)?[\s.-]*)?\d{4,5}[\s.-]?\d{4}`)
	linkedinRE = regexp.MustCompile(`(?i)linkedin\.com/in/[A-Za-z0-9_.-]+`)

	// A date range anchors one education or experience entry. The end
	// can be a year or an ongoing marker ("presente", "cursando", ...).
	// Separator alternatives are ordered longest first: Go regexps are
	// leftmost-first, so "a" would otherwise shadow "até".
	dateRangeRE = regexp.MustCompile(`(?i)(\d{4})\s*(?:até|hasta|to|a|-|–|—)\s*(\d{4}|[\p{L}\s]{2,20}?)(?:\s|[,.;)]|$)`)
)

// namePlaceholders per locale, used when no candidate name line exists.
var namePlaceholders = map[string]string{
	"pt": "Nome não identificado",
	"en": "Name not identified",
	"es": "Nombre no identificado",
}

// sections is the raw capture windows of one resume, keyed by section
// kind ("summary", "education", ...). Missing keys mean the heading was
// never seen.
type sections map[string]string

// splitSections walks the resume line by line, treating short lines
// that start with a known heading keyword as section boundaries. Lines
// before the first heading form the personal header.
func splitSections(raw, lang string) (header string, secs sections) {
	loc := Data().Locale(lang)
	lines := strings.Split(raw, "\n")
	secs = sections{}

	current := ""
	var buf []string
	flush := func() {
		if current == "" {
			header = strings.TrimSpace(strings.Join(buf, "\n"))
		} else {
			secs[current] = strings.TrimSpace(strings.Join(buf, "\n"))
		}
		buf = buf[:0]
	}

	for _, line := range lines {
		if kind := headingKind(line, loc); kind != "" {
			flush()
			current = kind
			continue
		}
		buf = append(buf, line)
	}
	flush()
	return header, secs
}

// headingKind reports which section a line opens, or "" when the line
// is ordinary content. Headings are short lines that begin with a
// known keyword, optionally decorated with a colon.
func headingKind(line string, loc Locale) string {
	t := strings.TrimSpace(strings.ToLower(line))
	t = strings.TrimSuffix(t, ":")
	if t == "" || len([]rune(t)) > 60 {
		return ""
	}
	for _, kind := range []string{"summary", "education", "experience", "certifications", "projects", "skills", "languages"} {
		for _, kw := range loc.Sections[kind] {
			if t == kw || strings.HasPrefix(t, kw+" ") {
				return kind
			}
		}
	}
	return ""
}

// ExtractPersonalInfo pulls contact details out of the resume header
// with regexes and a capitalized-name heuristic. It never fails: any
// field it cannot find is left empty, and Name falls back to a
// localized placeholder.
func ExtractPersonalInfo(raw, lang string) PersonalInfo {
	info := PersonalInfo{
		Email: emailRE.FindString(raw),
		Phone: strings.TrimSpace(phoneRE.FindString(raw)),
	}
	if m := linkedinRE.FindString(raw); m != "" {
		info.LinkedIn = "https://" + strings.ToLower(m)
	}

	for i, line := range strings.Split(raw, "\n") {
		if i >= 5 {
			break
		}
		if name := candidateName(line); name != "" {
			info.Name = name
			break
		}
	}
	if info.Name == "" {
		ph, ok := namePlaceholders[lang]
		if !ok {
			ph = namePlaceholders[DefaultLanguage]
		}
		info.Name = ph
	}
	return info
}

// nameParticles are lowercase connectives allowed inside a
// capitalized name ("João da Silva").
var nameParticles = map[string]struct{}{
	"da": {}, "de": {}, "do": {}, "dos": {}, "das": {}, "e": {},
	"van": {}, "von": {}, "del": {}, "la": {},
}

// candidateName accepts a line of two to five words that start with
// uppercase letters (lowercase name particles allowed) and contain no
// digits or contact markers.
func candidateName(line string) string {
	t := strings.TrimSpace(line)
	if t == "" || strings.ContainsAny(t, "@0123456789/") {
		return ""
	}
	words := strings.Fields(t)
	if len(words) < 2 || len(words) > 5 {
		return ""
	}
	capitalized := 0
	for _, w := range words {
		if unicode.IsUpper(firstRune(w)) {
			capitalized++
			continue
		}
		if _, ok := nameParticles[w]; !ok {
			return ""
		}
	}
	if capitalized < 2 {
		return ""
	}
	return t
}

// dateRange is one parsed YYYY–end anchor inside a capture window.
type dateRange struct {
	start   string
	end     string // year, ongoing marker, or ""
	line    int
	ongoing bool
	years   int // end-start for closed ranges, 0 otherwise
}

// findDateRanges locates every date range in the window, one entry
// anchor per hit. Ongoing markers are recognized per locale; anything
// else that is not a year invalidates the end part.
func findDateRanges(window string, loc Locale) []dateRange {
	var ranges []dateRange
	for lineNo, line := range strings.Split(window, "\n") {
		for _, m := range dateRangeRE.FindAllStringSubmatch(line, -1) {
			if !yearLike(m[1]) {
				continue
			}
			r := dateRange{start: m[1], line: lineNo}
			end := strings.TrimSpace(strings.ToLower(m[2]))
			switch {
			case yearLike(end):
				r.end = end
				s, _ := strconv.Atoi(m[1])
				e, _ := strconv.Atoi(end)
				if e >= s {
					r.years = e - s
				}
			case isOngoingMarker(end, loc):
				r.end = end
				r.ongoing = true
			default:
				continue
			}
			ranges = append(ranges, r)
		}
	}
	return ranges
}

// yearLike accepts plausible calendar years, which keeps phone number
// fragments from reading as date ranges.
func yearLike(s string) bool {
	if len(s) != 4 {
		return false
	}
	n, err := strconv.Atoi(s)
	return err == nil && n >= 1900 && n < 2100
}

func isOngoingMarker(s string, loc Locale) bool {
	for _, m := range loc.OngoingMarkers {
		if s == m {
			return true
		}
	}
	return false
}

// ParseExperience segments the experience window into entries, one per
// date range. A window with content but no recognizable range yields a
// single placeholder entry of type "unknown" so downstream counting
// still sees that the section exists.
func ParseExperience(window, lang string) []ExperienceEntry {
	window = strings.TrimSpace(window)
	if window == "" {
		return nil
	}
	loc := Data().Locale(lang)
	lines := strings.Split(window, "\n")
	ranges := findDateRanges(window, loc)
	if len(ranges) == 0 {
		return []ExperienceEntry{{Description: window, Type: "unknown"}}
	}

	entries := make([]ExperienceEntry, 0, len(ranges))
	for i, r := range ranges {
		last := len(lines)
		if i+1 < len(ranges) {
			last = ranges[i+1].line
		}
		seg := lines[r.line:last]
		e := ExperienceEntry{
			StartDate:   r.start,
			EndDate:     r.end,
			Years:       r.years,
			Description: strings.TrimSpace(strings.Join(seg, "\n")),
			Type:        "experience",
		}
		e.Position = titleAroundRange(lines, r.line)
		if r.line+1 < last {
			if c := strings.TrimSpace(lines[r.line+1]); c != "" && len([]rune(c)) <= 60 {
				e.Company = c
			}
		}
		entries = append(entries, e)
	}
	return entries
}

// titleAroundRange derives an entry title from the text on the range's
// own line (minus the dates) or, failing that, the previous line.
func titleAroundRange(lines []string, lineNo int) string {
	own := strings.TrimSpace(dateRangeRE.ReplaceAllString(lines[lineNo], ""))
	own = strings.Trim(own, " -–—|,")
	if own != "" {
		return own
	}
	if lineNo > 0 {
		return strings.TrimSpace(lines[lineNo-1])
	}
	return ""
}

// ParseEducation mirrors ParseExperience for the education window.
// Entries carry the degree line as Course and the following line as
// Institution when it looks like one.
func ParseEducation(window, lang string) []EducationEntry {
	window = strings.TrimSpace(window)
	if window == "" {
		return nil
	}
	loc := Data().Locale(lang)
	lines := strings.Split(window, "\n")
	ranges := findDateRanges(window, loc)
	if len(ranges) == 0 {
		return []EducationEntry{{Description: window, Type: "unknown"}}
	}

	entries := make([]EducationEntry, 0, len(ranges))
	for i, r := range ranges {
		last := len(lines)
		if i+1 < len(ranges) {
			last = ranges[i+1].line
		}
		seg := lines[r.line:last]
		e := EducationEntry{
			StartDate:   r.start,
			EndDate:     r.end,
			Description: strings.TrimSpace(strings.Join(seg, "\n")),
			Type:        "education",
		}
		e.Course = titleAroundRange(lines, r.line)
		if r.line+1 < last {
			if inst := strings.TrimSpace(lines[r.line+1]); inst != "" && len([]rune(inst)) <= 80 {
				e.Institution = inst
			}
		}
		entries = append(entries, e)
	}
	return entries
}

// ParseCertifications treats every non-empty line of the window as one
// certification, splitting an optional "name - institution" form.
func ParseCertifications(window string) []CertificationEntry {
	var out []CertificationEntry
	for _, line := range strings.Split(window, "\n") {
		t := strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "-•* "))
		if t == "" {
			continue
		}
		c := CertificationEntry{Name: t, Type: "certification"}
		if name, inst, ok := strings.Cut(t, " - "); ok {
			c.Name = strings.TrimSpace(name)
			c.Institution = strings.TrimSpace(inst)
		}
		out = append(out, c)
	}
	return out
}

// ParseProjects treats every non-empty line as one project, splitting
// an optional "name: description" form.
func ParseProjects(window string) []ProjectEntry {
	var out []ProjectEntry
	for _, line := range strings.Split(window, "\n") {
		t := strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "-•* "))
		if t == "" {
			continue
		}
		p := ProjectEntry{Name: t, Description: t, Type: "project"}
		if name, desc, ok := strings.Cut(t, ":"); ok {
			p.Name = strings.TrimSpace(name)
			p.Description = strings.TrimSpace(desc)
		}
		out = append(out, p)
	}
	return out
}

// ParseLanguages reads "language - proficiency" style lines from the
// languages window.
func ParseLanguages(window string) []LanguageEntry {
	var out []LanguageEntry
	for _, line := range strings.Split(window, "\n") {
		t := strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "-•* "))
		if t == "" {
			continue
		}
		l := LanguageEntry{Language: t, Type: "language"}
		for _, sep := range []string{" - ", ": ", " – "} {
			if lang, prof, ok := strings.Cut(t, sep); ok {
				l.Language = strings.TrimSpace(lang)
				l.Proficiency = strings.TrimSpace(prof)
				break
			}
		}
		out = append(out, l)
	}
	return out
}
