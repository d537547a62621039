package matchserver

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/anatolykoptev/go_match/internal/engine"
	"github.com/anatolykoptev/go_match/internal/engine/history"
	"github.com/anatolykoptev/go_match/internal/engine/match"
	"github.com/anatolykoptev/go_match/internal/toolutil"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerAnalyze(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "compatibility_analyze",
		Description: "Score a resume against a job posting on a 0-100 scale. Weighted factors: skills match (35%), keyword density (30%), experience fit (25%), education (10%). Returns the full per-factor breakdown with matched/missing skills and keywords plus localized strengths, weaknesses, and recommendations. Deterministic: identical inputs always give the same score.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input engine.AnalyzeInput) (*mcp.CallToolResult, engine.AnalyzeOutput, error) {
		if input.ResumeText == "" && input.JobDescription == "" {
			return nil, engine.AnalyzeOutput{}, fmt.Errorf("resume_text or job_description is required")
		}
		engine.IncrAnalyzeRequests()

		resumeText := toolutil.CleanDocument(input.ResumeText, engine.Cfg.MaxResumeChars)
		jobBody := toolutil.CleanDocument(input.JobDescription, engine.Cfg.MaxJobChars)

		cacheKey := engine.CacheKey("analyze", resumeText, input.JobTitle, input.Company, jobBody)
		if out, ok := toolutil.CacheLoadJSON[engine.AnalyzeOutput](ctx, cacheKey); ok {
			out.Cached = true
			if input.Save {
				out.HistoryID = saveAnalysis(ctx, out, resumeText, input)
			}
			return nil, out, nil
		}

		resume := match.BuildResumeProfile(resumeText)
		job := match.BuildJobProfile(input.JobTitle, input.Company, jobBody)
		result := match.ComputeCompatibility(resume, job)
		if result.Fallback {
			engine.IncrAnalysisFallbacks()
		}

		out := engine.AnalyzeOutput{
			Result:   result,
			Language: resume.DetectedLanguage,
		}
		toolutil.CacheStoreJSON(ctx, cacheKey, out)

		if input.Save {
			out.HistoryID = saveAnalysis(ctx, out, resumeText, input)
		}
		return nil, out, nil
	})
}

// saveAnalysis persists the result and returns the history id, or 0
// when storage is unavailable. Persistence failure never fails the
// analysis itself.
func saveAnalysis(ctx context.Context, out engine.AnalyzeOutput, resumeText string, input engine.AnalyzeInput) int64 {
	payload, err := json.Marshal(out.Result)
	if err != nil {
		return 0
	}
	resume := match.BuildResumeProfile(resumeText)
	id, err := history.Save(ctx, history.Entry{
		ResumeName:   toolutil.ResumeDisplayName(resume),
		JobTitle:     input.JobTitle,
		Company:      input.Company,
		Language:     out.Language,
		OverallScore: out.Result.OverallScore,
		Result:       payload,
	})
	if err != nil {
		slog.Warn("analyze: history save failed", slog.Any("error", err))
		return 0
	}
	return id
}
