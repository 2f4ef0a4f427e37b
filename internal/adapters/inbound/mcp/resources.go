package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/patternlens/patternlens/internal/adapters/outbound/config"
	"github.com/patternlens/patternlens/internal/adapters/outbound/history"
	"github.com/patternlens/patternlens/internal/adapters/outbound/scanner"
	"github.com/patternlens/patternlens/internal/adapters/outbound/store"
	"github.com/patternlens/patternlens/internal/adapters/outbound/tui"
	"github.com/patternlens/patternlens/internal/application"
)

// registerResources registers all patternlens MCP resources on the given server.
func registerResources(s *server.MCPServer, projectPath string) {
	// 1. patternlens://patterns - the persisted pattern report
	s.AddResource(
		mcplib.NewResource(
			"patternlens://patterns",
			"Pattern Report",
			mcplib.WithResourceDescription("Design tokens and conventions observed in the project"),
			mcplib.WithMIMEType("application/json"),
		),
		handlePatternsResource(projectPath),
	)

	// 2. patternlens://history - compliance check history
	s.AddResource(
		mcplib.NewResource(
			"patternlens://history",
			"Check History",
			mcplib.WithResourceDescription("Compliance check results recorded over time"),
			mcplib.WithMIMEType("text/plain"),
		),
		handleHistoryResource(projectPath),
	)
}

func handlePatternsResource(projectPath string) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		st := store.New()

		// Serve the persisted artifact when present, otherwise scan fresh.
		patterns, err := st.Load(artifactPath(projectPath))
		if err != nil {
			svc := application.NewScanService(scanner.New(), st, config.New())
			patterns, err = svc.ScanProject(projectPath, artifactPath(projectPath))
			if err != nil {
				return nil, fmt.Errorf("scan failed: %w", err)
			}
		}

		data, err := json.MarshalIndent(patterns, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling patterns: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      "patternlens://patterns",
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}

func handleHistoryResource(projectPath string) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		entries, err := history.New().Load(projectPath)
		if err != nil {
			return nil, fmt.Errorf("loading history: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      "patternlens://history",
				MIMEType: "text/plain",
				Text:     tui.RenderHistory(entries),
			},
		}, nil
	}
}
