// Package matchserver exposes the compatibility engine as MCP tools:
// resume_parse, job_parse, compatibility_analyze, resume_suggestions,
// resume_optimize, analysis_history.
package matchserver

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// RegisterTools registers all resume/job analysis tools on the given
// MCP server.
func RegisterTools(server *mcp.Server) {
	registerResumeParse(server)
	registerJobParse(server)
	registerAnalyze(server)
	registerSuggestions(server)
	registerOptimize(server)
	registerHistory(server)
}
