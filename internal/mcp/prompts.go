// ABOUTME: MCP prompts for board workflows.
// ABOUTME: Provides a pre-configured prompt for tidying the board.

package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerPrompts() {
	s.server.AddPrompt(&mcp.Prompt{
		Name:        "organize-board",
		Description: "Suggest labels and favorites for the notes currently on the board",
		Arguments: []*mcp.PromptArgument{
			{
				Name:        "focus",
				Description: "Optional label to concentrate on (personal, study, work, other)",
				Required:    false,
			},
		},
	}, s.getOrganizeBoardPrompt)
}

func (s *Server) getOrganizeBoardPrompt(ctx context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	focus := req.Params.Arguments["focus"]

	var sb strings.Builder
	for _, n := range s.board.Notes() {
		if focus != "" && string(n.Label) != focus {
			continue
		}
		sb.WriteString(fmt.Sprintf("- #%d [%s] %s: %s\n", n.ID, n.Label, n.Title, n.Content))
	}
	if sb.Len() == 0 {
		sb.WriteString("(the board is empty)\n")
	}

	template := fmt.Sprintf(`Here are the sticky notes on my board:

%s
Please:
1. Suggest a better label (personal, study, work, other) for any note that looks mislabeled.
2. Point out notes that share a title, since favorites are tracked by title.
3. Recommend which notes to star as favorites.

To apply a change, call select_note for the note, then update_note with field "label".
Use toggle_favorite to star a title.`, sb.String())

	return &mcp.GetPromptResult{
		Messages: []*mcp.PromptMessage{
			{
				Role: "user",
				Content: &mcp.TextContent{
					Text: template,
				},
			},
		},
	}, nil
}
