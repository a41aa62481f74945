// ABOUTME: Seed notes the board starts with.
// ABOUTME: Built-in sample notes or a YAML list loaded from disk.

package board

import (
	"fmt"
	"os"

	"github.com/harper/stickies/internal/models"
	"gopkg.in/yaml.v3"
)

// DefaultSeed is the sample board shown on first launch.
func DefaultSeed() []models.Note {
	return []models.Note{
		models.NewNote(1, "test note 1 title", "test note 1 content", models.LabelOther),
		models.NewNote(2, "test note 2 title", "test note 2 content", models.LabelPersonal),
		models.NewNote(3, "test note 3 title", "test note 3 content", models.LabelWork),
		models.NewNote(4, "test note 4 title", "test note 4 content", models.LabelStudy),
		models.NewNote(5, "test note 5 title", "test note 5 content", models.LabelOther),
		models.NewNote(6, "test note 6 title", "test note 6 content", models.LabelPersonal),
	}
}

// LoadSeed reads a YAML list of notes. Ids must be positive and unique.
func LoadSeed(path string) ([]models.Note, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-specified file path is expected CLI behavior
	if err != nil {
		return nil, err
	}

	var notes []models.Note
	if err := yaml.Unmarshal(data, &notes); err != nil {
		return nil, fmt.Errorf("parse seed: %w", err)
	}

	seen := make(map[int]bool, len(notes))
	for i, n := range notes {
		if n.ID <= 0 {
			return nil, fmt.Errorf("seed note %d: id must be positive", i+1)
		}
		if seen[n.ID] {
			return nil, fmt.Errorf("seed note %d: duplicate id %d", i+1, n.ID)
		}
		seen[n.ID] = true
		notes[i].Label = models.NormalizeLabel(n.Label)
	}
	return notes, nil
}
