// Package toolutil provides shared helper functions for go_match MCP
// tools: language normalization, document cleanup, and typed cache
// access.
package toolutil

import (
	"context"
	"strings"

	"github.com/anatolykoptev/go_match/internal/engine"
	"github.com/anatolykoptev/go_match/internal/engine/match"
)

// NormLang normalises a language field to a supported locale code.
func NormLang(lang string) string {
	return engine.NormLang(lang)
}

// CleanDocument prepares pasted tool input: converts HTML to plain
// text when needed and bounds the size so one oversized paste cannot
// dominate a request.
func CleanDocument(text string, limit int) string {
	return engine.ClampInput(engine.HTMLToText(text), limit)
}

// ResumeDisplayName derives a short label for history entries from the
// parsed profile.
func ResumeDisplayName(p match.ResumeProfile) string {
	name := strings.TrimSpace(p.PersonalInfo.Name)
	if name != "" {
		return engine.TruncateRunes(name, 80, "")
	}
	return "resume"
}

// CacheLoadJSON tries to load a cached value of type T from the engine cache.
// Returns the decoded value and true on hit; zero value and false on miss or decode error.
func CacheLoadJSON[T any](ctx context.Context, key string) (T, bool) {
	return engine.CacheLoadJSON[T](ctx, key)
}

// CacheStoreJSON marshals v and stores it in the engine cache.
func CacheStoreJSON[T any](ctx context.Context, key string, v T) {
	engine.CacheStoreJSON(ctx, key, v)
}
