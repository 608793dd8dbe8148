// Package mcp exposes the time tracker over the Model Context Protocol so
// assistants can manage projects and timers through stdio.
package mcp

import (
	"context"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ganot/punchcard/internal/domain/project"
	"github.com/ganot/punchcard/internal/domain/report"
	"github.com/ganot/punchcard/internal/domain/tracker"
)

// Server wraps the MCP server with the time tracking services.
type Server struct {
	mcpServer *mcp.Server
	projects  *project.Service
	tracker   *tracker.Service
	reports   *report.Service
	logger    *slog.Logger
}

// NewServer creates an MCP server over the given services.
func NewServer(projects *project.Service, trk *tracker.Service, reports *report.Service, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	impl := &mcp.Implementation{
		Name:    "punchcard",
		Version: "1.0.0",
	}

	s := &Server{
		mcpServer: mcp.NewServer(impl, nil),
		projects:  projects,
		tracker:   trk,
		reports:   reports,
		logger:    logger,
	}

	s.registerTools()

	return s
}

// Run serves MCP over stdio until the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	if _, err := s.tracker.Recover(ctx); err != nil {
		return err
	}
	transport := &mcp.StdioTransport{}
	return s.mcpServer.Run(ctx, transport)
}
