package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"
)

// Metrics tracks operational counters across the engine.
var metrics struct {
	AnalyzeRequests     atomic.Int64
	ResumeParseRequests atomic.Int64
	JobParseRequests    atomic.Int64
	SuggestRequests     atomic.Int64
	OptimizeRequests    atomic.Int64
	HistoryRequests     atomic.Int64
	LLMCalls            atomic.Int64
	LLMErrors           atomic.Int64
	AnalysisFallbacks   atomic.Int64
}

// GetMetrics returns a snapshot of all metrics including cache stats.
func GetMetrics() map[string]int64 {
	hits, misses := CacheStats()
	return map[string]int64{
		"analyze_requests":      metrics.AnalyzeRequests.Load(),
		"resume_parse_requests": metrics.ResumeParseRequests.Load(),
		"job_parse_requests":    metrics.JobParseRequests.Load(),
		"suggest_requests":      metrics.SuggestRequests.Load(),
		"optimize_requests":     metrics.OptimizeRequests.Load(),
		"history_requests":      metrics.HistoryRequests.Load(),
		"llm_calls":             metrics.LLMCalls.Load(),
		"llm_errors":            metrics.LLMErrors.Load(),
		"analysis_fallbacks":    metrics.AnalysisFallbacks.Load(),
		"cache_hits":            hits,
		"cache_misses":          misses,
	}
}

// FormatMetrics returns metrics as a simple text format for HTTP endpoint.
func FormatMetrics() string {
	m := GetMetrics()
	var sb strings.Builder
	keys := []string{
		"analyze_requests", "resume_parse_requests", "job_parse_requests",
		"suggest_requests", "optimize_requests", "history_requests",
		"llm_calls", "llm_errors", "analysis_fallbacks",
		"cache_hits", "cache_misses",
	}
	for _, k := range keys {
		fmt.Fprintf(&sb, "%s %d\n", k, m[k])
	}
	return sb.String()
}

// Incrementors for tool handlers.
func IncrAnalyzeRequests()  { metrics.AnalyzeRequests.Add(1) }
func IncrResumeParses()     { metrics.ResumeParseRequests.Add(1) }
func IncrJobParses()        { metrics.JobParseRequests.Add(1) }
func IncrSuggestRequests()  { metrics.SuggestRequests.Add(1) }
func IncrOptimizeRequests() { metrics.OptimizeRequests.Add(1) }
func IncrHistoryRequests()  { metrics.HistoryRequests.Add(1) }

// IncrAnalysisFallbacks counts analyses that ended in the zeroed
// fallback result.
func IncrAnalysisFallbacks() { metrics.AnalysisFallbacks.Add(1) }

// TrackOperation logs a warning if an operation takes longer than threshold.
func TrackOperation(ctx context.Context, name string, fn func(context.Context) error) error {
	start := time.Now()
	err := fn(ctx)
	elapsed := time.Since(start)
	if elapsed > 5*time.Second {
		slog.Warn("slow operation", slog.String("op", name), slog.Duration("elapsed", elapsed))
	}
	return err
}
