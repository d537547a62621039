package matchserver

import (
	"context"
	"fmt"

	"github.com/anatolykoptev/go_match/internal/engine"
	"github.com/anatolykoptev/go_match/internal/engine/match"
	"github.com/anatolykoptev/go_match/internal/toolutil"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerSuggestions(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "resume_suggestions",
		Description: "Generate targeted suggestions to improve a resume for a specific job: which skills to surface, which of the posting's keywords to work in, and which sections are weak. Uses the configured LLM when available and deterministic analysis-derived rules otherwise.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input engine.SuggestInput) (*mcp.CallToolResult, engine.SuggestOutput, error) {
		if input.ResumeText == "" {
			return nil, engine.SuggestOutput{}, fmt.Errorf("resume_text is required")
		}
		engine.IncrSuggestRequests()

		resumeText := toolutil.CleanDocument(input.ResumeText, engine.Cfg.MaxResumeChars)
		jobBody := toolutil.CleanDocument(input.JobDescription, engine.Cfg.MaxJobChars)
		lang := match.DetectLanguage(resumeText)

		suggestions := engine.GenerateSuggestions(ctx, resumeText, input.JobTitle, jobBody, lang)
		return nil, engine.SuggestOutput{
			Suggestions: suggestions,
			Language:    lang,
		}, nil
	})
}
