// go_match — Resume/Job Compatibility MCP server.
//
// Exposes six MCP tools: resume_parse, job_parse, compatibility_analyze,
// resume_suggestions, resume_optimize, analysis_history.
// Runs as HTTP MCP server or stdio transport.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/anatolykoptev/go-kit/env"
	"github.com/anatolykoptev/go-kit/llm"
	"github.com/anatolykoptev/go-mcpserver"
	"github.com/anatolykoptev/go_match/internal/engine"
	"github.com/anatolykoptev/go_match/internal/engine/history"
	"github.com/anatolykoptev/go_match/internal/matchserver"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

var (
	version = "dev"
	mcpPort = env.Str("MCP_PORT", "8893")
)

func main() {
	initEngine()

	slog.Info("starting go_match",
		slog.String("port", mcpPort),
	)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "go_match",
		Version: version,
	}, nil)

	matchserver.RegisterTools(server)
	slog.Info("tools registered", slog.Int("count", 6))

	if err := mcpserver.Run(server, mcpserver.Config{
		Name:         "go_match",
		Version:      version,
		Port:         mcpPort,
		WriteTimeout: 600 * time.Second,
		Metrics:      engine.FormatMetrics,
	}); err != nil {
		slog.Error("server failed", slog.Any("error", err))
	}
}

func initEngine() {
	c := engine.Config{
		DefaultLanguage:      env.Str("DEFAULT_LANGUAGE", "pt"),
		LLMAPIKey:            env.Str("LLM_API_KEY", ""),
		LLMAPIKeyFallbacks:   env.List("LLM_API_KEY_FALLBACKS", ""),
		LLMAPIBase:           env.Str("LLM_API_BASE", "https://generativelanguage.googleapis.com/v1beta/openai"),
		LLMModel:             env.Str("LLM_MODEL", "gemini-2.5-flash"),
		LLMTemperature:       env.Float("LLM_TEMPERATURE", 0.2),
		LLMMaxTokens:         env.Int("LLM_MAX_TOKENS", 8192),
		LLMRatePerMinute:     env.Int("LLM_RATE_PER_MINUTE", 30),
		MaxResumeChars:       env.Int("MAX_RESUME_CHARS", 50000),
		MaxJobChars:          env.Int("MAX_JOB_CHARS", 50000),
		CacheMaxEntries:      env.Int("CACHE_MAX_ENTRIES", 1000),
		CacheCleanupInterval: env.Duration("CACHE_CLEANUP_INTERVAL", 300*time.Second),
		HistoryPath:          env.Str("HISTORY_PATH", ""),
		DatabaseURL:          env.Str("DATABASE_URL", ""),
	}

	// LLM client is optional: without a key the suggestion tools run
	// in deterministic rules mode.
	if c.LLMAPIKey != "" {
		c.LLMClient = llm.NewClient(c.LLMAPIBase, c.LLMAPIKey, c.LLMModel,
			llm.WithFallbackKeys(c.LLMAPIKeyFallbacks),
			llm.WithMaxTokens(c.LLMMaxTokens),
			llm.WithTemperature(c.LLMTemperature),
			llm.WithHTTPClient(&http.Client{Timeout: 60 * time.Second}),
		)
	}

	engine.Init(c)

	if c.HistoryPath != "" {
		history.SetPath(c.HistoryPath)
	}

	// Shared history backend (PostgreSQL), optional.
	if c.DatabaseURL != "" {
		db, err := history.Connect(context.Background(), c.DatabaseURL)
		if err != nil {
			slog.Warn("history DB init failed, using local sqlite", slog.Any("error", err))
		} else {
			history.SetSharedDB(db)
		}
	}

	cacheTTL := env.Duration("CACHE_TTL", 1*time.Hour)
	engine.InitCache(env.Str("REDIS_URL", ""), cacheTTL, c.CacheMaxEntries, c.CacheCleanupInterval)
}
