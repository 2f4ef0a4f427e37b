package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/patternlens/patternlens/internal/adapters/outbound/config"
	"github.com/patternlens/patternlens/internal/adapters/outbound/gitinfo"
	"github.com/patternlens/patternlens/internal/adapters/outbound/history"
	"github.com/patternlens/patternlens/internal/adapters/outbound/scanner"
	"github.com/patternlens/patternlens/internal/adapters/outbound/store"
	"github.com/patternlens/patternlens/internal/application"
	"github.com/patternlens/patternlens/internal/domain/report"
)

// defaultArtifact is where tools persist and look up the pattern report,
// relative to the project root.
const defaultArtifact = "project_patterns.json"

// registerTools registers all patternlens MCP tools on the given server.
func registerTools(s *server.MCPServer, projectPath string) {
	// 1. patternlens_scan
	s.AddTool(
		mcplib.NewTool("patternlens_scan",
			mcplib.WithDescription("Scan the project for design tokens and conventions, write the pattern report artifact, and return it as JSON"),
		),
		handleScan(projectPath),
	)

	// 2. patternlens_check
	s.AddTool(
		mcplib.NewTool("patternlens_check",
			mcplib.WithDescription("Check a component file against the project's pattern report and return the 0-100 compliance result"),
			mcplib.WithString("file",
				mcplib.Required(),
				mcplib.Description("Path to the component file to check, relative to the project root"),
			),
		),
		handleCheck(projectPath),
	)

	// 3. patternlens_report
	s.AddTool(
		mcplib.NewTool("patternlens_report",
			mcplib.WithDescription("Render the project's pattern report as a Markdown document"),
		),
		handleReport(projectPath),
	)
}

func artifactPath(projectPath string) string {
	return filepath.Join(projectPath, defaultArtifact)
}

func handleScan(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		svc := application.NewScanService(scanner.New(), store.New(), config.New())
		rep, err := svc.ScanProject(projectPath, artifactPath(projectPath))
		if err != nil {
			return errorResult(fmt.Sprintf("scan failed: %v", err)), nil
		}
		return jsonResult(rep)
	}
}

func handleCheck(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		file, err := request.RequireString("file")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		svc := application.NewCheckService(
			store.New(),
			config.New(),
			history.New(),
			gitinfo.New(),
		)

		result, err := svc.CheckFile(artifactPath(projectPath), filepath.Join(projectPath, file))
		if err != nil {
			return errorResult(fmt.Sprintf("check failed: %v", err)), nil
		}
		return jsonResult(result)
	}
}

func handleReport(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		st := store.New()
		patterns, err := st.Load(artifactPath(projectPath))
		if err != nil {
			return errorResult(fmt.Sprintf("loading patterns: %v", err)), nil
		}
		return textResult(report.Markdown(patterns)), nil
	}
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// textResult returns a plain text content result.
func textResult(text string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(text)},
	}
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
