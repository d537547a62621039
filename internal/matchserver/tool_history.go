package matchserver

import (
	"context"

	"github.com/anatolykoptev/go_match/internal/engine"
	"github.com/anatolykoptev/go_match/internal/engine/history"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerHistory(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "analysis_history",
		Description: "List saved compatibility analyses, newest first, with resume name, job title, overall score, and the stored result. Filter with min_score; limit defaults to 20.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input history.ListInput) (*mcp.CallToolResult, history.ListResult, error) {
		engine.IncrHistoryRequests()

		res, err := history.List(ctx, input)
		if err != nil {
			return nil, history.ListResult{}, err
		}
		return nil, *res, nil
	})
}
