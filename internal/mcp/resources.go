// ABOUTME: MCP resources for exposing notes as readable resources.
// ABOUTME: Allows AI agents to read a note as markdown via URI scheme.

package mcp

import (
	"context"
	"fmt"

	"github.com/harper/stickies/internal/export"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const noteURIFormat = "stickies://note/%d"

func (s *Server) registerResources() {
	s.server.AddResourceTemplate(
		&mcp.ResourceTemplate{
			URITemplate: "stickies://note/{id}",
			Name:        "Note",
			Description: "Access individual notes by id",
			MIMEType:    "text/markdown",
		},
		s.handleReadResource,
	)
}

func (s *Server) handleReadResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	var id int
	if _, err := fmt.Sscanf(req.Params.URI, noteURIFormat, &id); err != nil {
		return nil, fmt.Errorf("invalid resource URI: %s", req.Params.URI)
	}

	content, err := s.noteMarkdown(id)
	if err != nil {
		return nil, err
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{
				URI:      req.Params.URI,
				MIMEType: "text/markdown",
				Text:     content,
			},
		},
	}, nil
}

func (s *Server) noteMarkdown(id int) (string, error) {
	snap := s.board.Snapshot()
	note, ok := snap.Find(id)
	if !ok {
		return "", fmt.Errorf("note %d not found", id)
	}
	return export.Markdown(export.FromModel(note, snap.IsFavorite(note.Title)))
}
