// ABOUTME: Tests for board snapshot export.
// ABOUTME: Covers JSON layout, markdown frontmatter and directory output.

package export

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/harper/stickies/internal/board"
	"github.com/harper/stickies/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleState() board.State {
	s := board.NewState([]models.Note{
		models.NewNote(2, "Plan: week", "- gym\n- read", models.LabelPersonal),
		models.NewNote(1, "Lecture", "chapter 4", models.LabelStudy),
	})
	return board.ToggleFavorite(s, "Lecture")
}

func TestBuild(t *testing.T) {
	session := uuid.New()
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	data := Build(session, sampleState(), now)

	assert.Equal(t, session.String(), data.Session)
	assert.Equal(t, now, data.ExportedAt)
	require.Len(t, data.Notes, 2)
	assert.Equal(t, 2, data.Notes[0].ID)
	assert.False(t, data.Notes[0].Favorite)
	assert.True(t, data.Notes[1].Favorite)
	assert.Equal(t, []string{"Lecture"}, data.Favorites)
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, Build(uuid.New(), sampleState(), time.Now())))

	var decoded Data
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, Version, decoded.Version)
	assert.Equal(t, "chapter 4", decoded.Notes[1].Content)
	assert.Equal(t, models.LabelStudy, decoded.Notes[1].Label)
}

func TestMarkdownFrontmatter(t *testing.T) {
	doc, err := Markdown(Note{ID: 5, Title: "Groceries", Content: "eggs", Label: models.LabelWork, Favorite: true})
	require.NoError(t, err)

	parts := strings.SplitN(doc, "---\n", 3)
	require.Len(t, parts, 3)

	var fm struct {
		ID       int    `yaml:"id"`
		Title    string `yaml:"title"`
		Label    string `yaml:"label"`
		Favorite bool   `yaml:"favorite"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(parts[1]), &fm))
	assert.Equal(t, 5, fm.ID)
	assert.Equal(t, "Groceries", fm.Title)
	assert.Equal(t, "work", fm.Label)
	assert.True(t, fm.Favorite)
	assert.Equal(t, "\neggs\n", parts[2])
}

func TestWriteMarkdown(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteMarkdown(&buf, Build(uuid.New(), sampleState(), time.Now())))

	out := buf.String()
	assert.Equal(t, 4, strings.Count(out, "---\n"))
	assert.Less(t, strings.Index(out, "Plan: week"), strings.Index(out, "Lecture"))
}

func TestWriteMarkdownDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")

	n, err := WriteMarkdownDir(dir, Build(uuid.New(), sampleState(), time.Now()))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	_, err = os.Stat(filepath.Join(dir, "2-Plan- week.md"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "1-Lecture.md"))
	assert.NoError(t, err)
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "a-b-c", SanitizeFilename("a/b:c"))
	assert.Len(t, SanitizeFilename(strings.Repeat("x", 150)), 100)
}

func TestSanitizeFilenameKeepsRunesWhole(t *testing.T) {
	name := SanitizeFilename(strings.Repeat("a", 99) + "é")
	assert.True(t, utf8.ValidString(name))
	assert.Equal(t, strings.Repeat("a", 99), name)

	name = SanitizeFilename(strings.Repeat("日本", 30))
	assert.True(t, utf8.ValidString(name))
	assert.LessOrEqual(t, len(name), 100)
	assert.Equal(t, 99, len(name))
}
