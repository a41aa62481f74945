// ABOUTME: MCP server exposing an in-memory notes board to AI agents.
// ABOUTME: Provides tools, resources, and prompts over stdio.

package mcp

import (
	"context"

	"github.com/harper/stickies/internal/board"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type Server struct {
	server *mcp.Server
	board  *board.Board
}

func NewServer(b *board.Board, version string) *Server {
	s := &Server{board: b}

	s.server = mcp.NewServer(
		&mcp.Implementation{
			Name:    "stickies",
			Version: version,
		},
		&mcp.ServerOptions{
			HasTools:     true,
			HasResources: true,
			HasPrompts:   true,
		},
	)

	s.registerTools()
	s.registerResources()
	s.registerPrompts()

	return s
}

func (s *Server) Serve(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}
