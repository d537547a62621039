package matchserver

import (
	"context"
	"fmt"

	"github.com/anatolykoptev/go_match/internal/engine"
	"github.com/anatolykoptev/go_match/internal/engine/match"
	"github.com/anatolykoptev/go_match/internal/toolutil"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerOptimize(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "resume_optimize",
		Description: "Rewrite a resume targeted at a specific job without inventing facts. With an LLM configured the text is rephrased and reordered toward the posting; without one the resume is returned with oversized sections trimmed to a readable length.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input engine.OptimizeInput) (*mcp.CallToolResult, engine.OptimizeOutput, error) {
		if input.ResumeText == "" {
			return nil, engine.OptimizeOutput{}, fmt.Errorf("resume_text is required")
		}
		engine.IncrOptimizeRequests()

		resumeText := toolutil.CleanDocument(input.ResumeText, engine.Cfg.MaxResumeChars)
		jobBody := toolutil.CleanDocument(input.JobDescription, engine.Cfg.MaxJobChars)
		lang := match.DetectLanguage(resumeText)

		text, source := engine.OptimizeResume(ctx, resumeText, input.JobTitle, jobBody, lang)
		return nil, engine.OptimizeOutput{
			OptimizedText: text,
			Source:        source,
			Language:      lang,
		}, nil
	})
}
