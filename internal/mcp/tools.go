// ABOUTME: MCP tools for board operations.
// ABOUTME: Each tool maps onto one board operation and reports the outcome as text.

package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/harper/stickies/internal/export"
	"github.com/harper/stickies/internal/models"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	// list_notes
	s.server.AddTool(&mcp.Tool{
		Name:        "list_notes",
		Description: "List all notes on the board, most recent first",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"label": {"type": "string", "enum": ["personal", "study", "work", "other"], "description": "Only notes with this label"}
			}
		}`),
	}, s.handleListNotes)

	// create_note
	s.server.AddTool(&mcp.Tool{
		Name:        "create_note",
		Description: "Create a note at the front of the board. Title and content must not be blank.",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"title": {"type": "string", "description": "Note title"},
				"content": {"type": "string", "description": "Note content"},
				"label": {"type": "string", "enum": ["personal", "study", "work", "other"], "default": "other"}
			},
			"required": ["title", "content"]
		}`),
	}, s.handleCreateNote)

	// delete_note
	s.server.AddTool(&mcp.Tool{
		Name:        "delete_note",
		Description: "Delete a note by id",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"id": {"type": "integer", "description": "Note id"}
			},
			"required": ["id"]
		}`),
	}, s.handleDeleteNote)

	// select_note
	s.server.AddTool(&mcp.Tool{
		Name:        "select_note",
		Description: "Open a note for editing. Only the selected note accepts update_note. Use -1 to close.",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"id": {"type": "integer", "description": "Note id, or -1 for none"}
			},
			"required": ["id"]
		}`),
	}, s.handleSelectNote)

	// update_note
	s.server.AddTool(&mcp.Tool{
		Name:        "update_note",
		Description: "Set the title, content or label of the selected note",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"id": {"type": "integer", "description": "Note id (must be selected)"},
				"field": {"type": "string", "enum": ["title", "content", "label"]},
				"value": {"type": "string", "description": "New value"}
			},
			"required": ["id", "field", "value"]
		}`),
	}, s.handleUpdateNote)

	// toggle_favorite
	s.server.AddTool(&mcp.Tool{
		Name:        "toggle_favorite",
		Description: "Star or unstar a title. Favorites are keyed by title, not id.",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"title": {"type": "string", "description": "Note title"}
			},
			"required": ["title"]
		}`),
	}, s.handleToggleFavorite)

	// list_favorites
	s.server.AddTool(&mcp.Tool{
		Name:        "list_favorites",
		Description: "List starred titles in the order they were starred",
		InputSchema: json.RawMessage(`{"type": "object", "properties": {}}`),
	}, s.handleListFavorites)
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
	}
}

func errorResult(text string) *mcp.CallToolResult {
	r := textResult(text)
	r.IsError = true
	return r
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return textResult(string(data)), nil
}

// Tool handlers.
func (s *Server) handleListNotes(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		Label string `json:"label"`
	}
	if len(req.Params.Arguments) > 0 {
		if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
			return nil, err
		}
	}

	snap := s.board.Snapshot()
	notes := make([]export.Note, 0, len(snap.Notes))
	for _, n := range snap.Notes {
		if params.Label != "" && string(n.Label) != params.Label {
			continue
		}
		notes = append(notes, export.FromModel(n, snap.IsFavorite(n.Title)))
	}
	return jsonResult(notes)
}

func (s *Server) handleCreateNote(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		Title   string `json:"title"`
		Content string `json:"content"`
		Label   string `json:"label"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return nil, err
	}

	draft := models.NewDraft()
	draft.Title = params.Title
	draft.Content = params.Content
	draft.Label = models.Label(params.Label)

	note, ok := s.board.CreateNote(draft)
	if !ok {
		return errorResult("title and content must not be blank"), nil
	}
	return textResult(fmt.Sprintf("Created note %d", note.ID)), nil
}

func (s *Server) handleDeleteNote(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		ID int `json:"id"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return nil, err
	}

	if !s.board.DeleteNote(params.ID) {
		return textResult(fmt.Sprintf("No note %d", params.ID)), nil
	}
	return textResult(fmt.Sprintf("Deleted note %d", params.ID)), nil
}

func (s *Server) handleSelectNote(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		ID int `json:"id"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return nil, err
	}

	if !s.board.SelectNote(params.ID) {
		return errorResult(fmt.Sprintf("no note %d", params.ID)), nil
	}
	if params.ID < 0 {
		return textResult("Selection cleared"), nil
	}
	return textResult(fmt.Sprintf("Selected note %d", params.ID)), nil
}

func (s *Server) handleUpdateNote(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		ID    int          `json:"id"`
		Field models.Field `json:"field"`
		Value string       `json:"value"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return nil, err
	}

	switch params.Field {
	case models.FieldTitle, models.FieldContent:
	case models.FieldLabel:
		if _, ok := models.ParseLabel(params.Value); !ok {
			return errorResult(fmt.Sprintf("unknown label %q", params.Value)), nil
		}
	default:
		return errorResult(fmt.Sprintf("unknown field %q", params.Field)), nil
	}

	if !s.board.UpdateField(params.ID, params.Field, params.Value) {
		return errorResult(fmt.Sprintf("note %d is not selected", params.ID)), nil
	}

	note, ok := s.board.Find(params.ID)
	if !ok {
		return errorResult(fmt.Sprintf("no note %d", params.ID)), nil
	}
	return jsonResult(export.FromModel(note, s.board.Snapshot().IsFavorite(note.Title)))
}

func (s *Server) handleToggleFavorite(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		Title string `json:"title"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return nil, err
	}

	if s.board.ToggleFavorite(params.Title) {
		return textResult(fmt.Sprintf("Starred %q", params.Title)), nil
	}
	return textResult(fmt.Sprintf("Unstarred %q", params.Title)), nil
}

func (s *Server) handleListFavorites(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	favorites := s.board.Favorites()
	if favorites == nil {
		favorites = []string{}
	}
	return jsonResult(favorites)
}
