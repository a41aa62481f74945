// ABOUTME: Snapshot export of a board to JSON or markdown.
// ABOUTME: Markdown notes carry YAML frontmatter with id, label and favorite flag.

package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/harper/stickies/internal/board"
	"github.com/harper/stickies/internal/models"
	"gopkg.in/yaml.v3"
)

const Version = "1.0"

type Note struct {
	ID       int          `json:"id" yaml:"id"`
	Title    string       `json:"title" yaml:"title"`
	Content  string       `json:"content" yaml:"-"`
	Label    models.Label `json:"label" yaml:"label"`
	Favorite bool         `json:"favorite" yaml:"favorite"`
}

type Data struct {
	ExportedAt time.Time `json:"exported_at"`
	Version    string    `json:"version"`
	Session    string    `json:"session"`
	Notes      []Note    `json:"notes"`
	Favorites  []string  `json:"favorites"`
}

// Build converts a board state into export records, keeping board order.
func Build(session uuid.UUID, s board.State, now time.Time) Data {
	data := Data{
		ExportedAt: now,
		Version:    Version,
		Session:    session.String(),
		Notes:      make([]Note, 0, len(s.Notes)),
		Favorites:  append([]string{}, s.Favorites...),
	}
	for _, n := range s.Notes {
		data.Notes = append(data.Notes, FromModel(n, s.IsFavorite(n.Title)))
	}
	return data
}

func FromModel(n models.Note, favorite bool) Note {
	return Note{
		ID:       n.ID,
		Title:    n.Title,
		Content:  n.Content,
		Label:    n.Label,
		Favorite: favorite,
	}
}

// WriteJSON writes data as indented JSON.
func WriteJSON(w io.Writer, data Data) error {
	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

// Markdown renders one note as a markdown document with frontmatter.
func Markdown(n Note) (string, error) {
	var sb strings.Builder
	sb.WriteString("---\n")

	frontmatter, err := yaml.Marshal(n)
	if err != nil {
		return "", fmt.Errorf("marshal frontmatter: %w", err)
	}
	sb.Write(frontmatter)
	sb.WriteString("---\n\n")
	sb.WriteString(n.Content)
	if !strings.HasSuffix(n.Content, "\n") {
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

// WriteMarkdown writes every note as consecutive markdown documents.
func WriteMarkdown(w io.Writer, data Data) error {
	for i, n := range data.Notes {
		doc, err := Markdown(n)
		if err != nil {
			return err
		}
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, doc); err != nil {
			return err
		}
	}
	return nil
}

// WriteMarkdownDir writes one file per note into dir and returns how many
// files were written.
func WriteMarkdownDir(dir string, data Data) (int, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return 0, err
	}

	for i, n := range data.Notes {
		doc, err := Markdown(n)
		if err != nil {
			return i, err
		}
		filename := fmt.Sprintf("%d-%s.md", n.ID, SanitizeFilename(n.Title))
		if err := os.WriteFile(filepath.Join(dir, filename), []byte(doc), 0600); err != nil {
			return i, err
		}
	}
	return len(data.Notes), nil
}

const maxFilenameBytes = 100

func SanitizeFilename(name string) string {
	// Replace unsafe characters
	replacer := strings.NewReplacer(
		"/", "-", "\\", "-", ":", "-", "*", "-",
		"?", "-", "\"", "-", "<", "-", ">", "-", "|", "-",
	)
	name = replacer.Replace(name)
	if len(name) > maxFilenameBytes {
		cut := maxFilenameBytes
		for cut > 0 && !utf8.RuneStart(name[cut]) {
			cut--
		}
		name = name[:cut]
	}
	return name
}
