package engine

import (
	"context"
	"errors"
	"strings"
	"sync"

	"golang.org/x/time/rate"
)

// ErrLLMDisabled is returned when no LLM client is configured.
// Callers that can degrade to deterministic stubs check for it.
var ErrLLMDisabled = errors.New("llm: no client configured")

var (
	limiterMu  sync.Mutex
	llmLimiter *rate.Limiter
)

// initLimiter rebuilds the request limiter from config. Called by Init.
func initLimiter() {
	limiterMu.Lock()
	defer limiterMu.Unlock()
	perMin := cfg.LLMRatePerMinute
	if perMin <= 0 {
		llmLimiter = nil
		return
	}
	llmLimiter = rate.NewLimiter(rate.Limit(float64(perMin)/60.0), perMin)
}

// stripFences removes markdown code fences from LLM output.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// CallLLM sends a prompt using the configured temperature and max_tokens,
// honoring the per-minute rate limit.
func CallLLM(ctx context.Context, prompt string) (string, error) {
	if cfg.LLMClient == nil {
		return "", ErrLLMDisabled
	}
	limiterMu.Lock()
	lim := llmLimiter
	limiterMu.Unlock()
	if lim != nil {
		if err := lim.Wait(ctx); err != nil {
			return "", err
		}
	}
	metrics.LLMCalls.Add(1)
	resp, err := cfg.LLMClient.Complete(ctx, "", prompt)
	if err != nil {
		metrics.LLMErrors.Add(1)
		return "", err
	}
	return stripFences(resp), nil
}
