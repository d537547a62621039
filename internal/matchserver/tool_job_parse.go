package matchserver

import (
	"context"
	"fmt"

	"github.com/anatolykoptev/go_match/internal/engine"
	"github.com/anatolykoptev/go_match/internal/engine/match"
	"github.com/anatolykoptev/go_match/internal/toolutil"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerJobParse(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "job_parse",
		Description: "Parse a job posting (plain text or HTML) into a structured profile: requirements, responsibilities, qualifications, and the catalog skills the posting asks for. Language (pt/en/es) is auto-detected.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input engine.JobParseInput) (*mcp.CallToolResult, engine.JobParseOutput, error) {
		if input.Title == "" && input.Description == "" {
			return nil, engine.JobParseOutput{}, fmt.Errorf("title or description is required")
		}
		engine.IncrJobParses()

		body := toolutil.CleanDocument(input.Description, engine.Cfg.MaxJobChars)
		profile := match.BuildJobProfile(input.Title, input.Company, body)

		return nil, engine.JobParseOutput{
			Profile:  profile,
			Language: match.DetectLanguage(input.Title + "\n" + body),
		}, nil
	})
}
