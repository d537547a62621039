package matchserver

import (
	"context"
	"fmt"

	"github.com/anatolykoptev/go_match/internal/engine"
	"github.com/anatolykoptev/go_match/internal/engine/match"
	"github.com/anatolykoptev/go_match/internal/toolutil"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerResumeParse(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "resume_parse",
		Description: "Parse raw resume text (plain text or HTML) into a structured profile: personal info, summary, education, experience with derived years, skills with confidence scores, soft skills, languages, certifications, and projects. Language (pt/en/es) is auto-detected unless a hint is given.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input engine.ResumeParseInput) (*mcp.CallToolResult, engine.ResumeParseOutput, error) {
		if input.Text == "" {
			return nil, engine.ResumeParseOutput{}, fmt.Errorf("text is required")
		}
		engine.IncrResumeParses()

		text := toolutil.CleanDocument(input.Text, engine.Cfg.MaxResumeChars)

		var profile match.ResumeProfile
		if input.Language != "" {
			profile = match.BuildResumeProfileLang(text, toolutil.NormLang(input.Language))
		} else {
			profile = match.BuildResumeProfile(text)
		}

		return nil, engine.ResumeParseOutput{
			Profile:  profile,
			Language: profile.DetectedLanguage,
		}, nil
	})
}
