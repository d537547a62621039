package engine

import (
	"time"

	"github.com/anatolykoptev/go-kit/llm"
)

// Config holds all engine configuration, injected from main.
type Config struct {
	DefaultLanguage      string
	LLMAPIKey            string
	LLMAPIKeyFallbacks   []string
	LLMAPIBase           string
	LLMModel             string
	LLMTemperature       float64
	LLMMaxTokens         int
	LLMClient            *llm.Client // nil = LLM-backed tools run in deterministic stub mode
	LLMRatePerMinute     int
	MaxResumeChars       int
	MaxJobChars          int
	CacheMaxEntries      int
	CacheCleanupInterval time.Duration
	HistoryPath          string // sqlite file for local analysis history
	DatabaseURL          string // optional PostgreSQL history backend
}

var cfg Config

// Cfg exposes the engine configuration for sub-packages.
// Always points to the current cfg value.
var Cfg = &cfg

// Init initializes the engine with the given configuration.
func Init(c Config) {
	cfg = c
	Cfg = &cfg
	initLimiter()
}
