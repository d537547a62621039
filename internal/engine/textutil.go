package engine

import (
	"strings"

	"github.com/anatolykoptev/go-kit/strutil"
)

// NormLang normalises a language field: empty string → engine default,
// anything else lowercased ("PT-br" → "pt").
func NormLang(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if lang == "" {
		if cfg.DefaultLanguage != "" {
			return cfg.DefaultLanguage
		}
		return "pt"
	}
	if i := strings.IndexAny(lang, "-_"); i > 0 {
		lang = lang[:i]
	}
	return lang
}

// Truncate returns the first n bytes of s.
func Truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

// TruncateRunes caps s at limit runes, appending suffix if truncated.
// Pass suffix="" for no suffix. Safe for UTF-8 (accents, CJK, emoji).
func TruncateRunes(s string, limit int, suffix string) string {
	return strutil.TruncateWith(s, limit, suffix)
}

// TruncateAtWord truncates a string to maxLen runes at a word boundary.
func TruncateAtWord(s string, maxLen int) string {
	return strutil.TruncateAtWord(s, maxLen)
}

// ClampInput bounds free-text tool input to limit bytes, cutting at a
// word when possible so a truncated resume still parses cleanly.
func ClampInput(s string, limit int) string {
	if limit <= 0 || len(s) <= limit {
		return s
	}
	return TruncateAtWord(s, limit)
}
