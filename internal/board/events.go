// ABOUTME: Recorded UI events and the dispatcher that maps them onto reducers.
// ABOUTME: Event scripts are YAML lists, used to replay a session deterministically.

package board

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/harper/stickies/internal/models"
	"gopkg.in/yaml.v3"
)

var ErrUnknownEvent = errors.New("unknown event type")

type EventType string

const (
	EventDraft    EventType = "draft"
	EventCreate   EventType = "create"
	EventDelete   EventType = "delete"
	EventSelect   EventType = "select"
	EventBlur     EventType = "blur"
	EventLabel    EventType = "label"
	EventFavorite EventType = "favorite"
)

// Event is one user interaction. Which fields matter depends on Type:
//
//	draft     Field, Value
//	create    Title, Content, Label (empty: commit the current draft)
//	delete    ID
//	select    ID
//	blur      ID, Field, Value
//	label     ID, Label (or Value)
//	favorite  Title
type Event struct {
	Type    EventType    `json:"type" yaml:"type"`
	ID      int          `json:"id,omitempty" yaml:"id,omitempty"`
	Field   models.Field `json:"field,omitempty" yaml:"field,omitempty"`
	Value   string       `json:"value,omitempty" yaml:"value,omitempty"`
	Title   string       `json:"title,omitempty" yaml:"title,omitempty"`
	Content string       `json:"content,omitempty" yaml:"content,omitempty"`
	Label   models.Label `json:"label,omitempty" yaml:"label,omitempty"`
}

// Apply runs the reducer for e. On error s is returned unchanged.
func Apply(s State, e Event) (State, error) {
	switch e.Type {
	case EventDraft:
		return UpdateDraft(s, e.Field, e.Value), nil
	case EventCreate:
		if e.Title == "" && e.Content == "" && e.Label == "" {
			return CreateNote(s, s.Draft), nil
		}
		// An inline note leaves the pending draft alone.
		next := CreateNote(s, models.Note{ID: models.DraftID, Title: e.Title, Content: e.Content, Label: e.Label})
		next.Draft = s.Draft
		return next, nil
	case EventDelete:
		return DeleteNote(s, e.ID), nil
	case EventSelect:
		return SelectNote(s, e.ID), nil
	case EventBlur:
		return Blur(s, e.ID, e.Field, e.Value), nil
	case EventLabel:
		label := e.Label
		if label == "" {
			label = models.Label(e.Value)
		}
		return ChangeLabel(s, e.ID, label), nil
	case EventFavorite:
		return ToggleFavorite(s, e.Title), nil
	default:
		return s, fmt.Errorf("%w: %q", ErrUnknownEvent, e.Type)
	}
}

// Replay applies events in order, stopping at the first unknown one.
func Replay(s State, events []Event) (State, error) {
	for i, e := range events {
		next, err := Apply(s, e)
		if err != nil {
			return s, fmt.Errorf("event %d: %w", i+1, err)
		}
		s = next
	}
	return s, nil
}

// DecodeEvents reads a YAML list of events.
func DecodeEvents(r io.Reader) ([]Event, error) {
	var events []Event
	if err := yaml.NewDecoder(r).Decode(&events); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decode events: %w", err)
	}
	return events, nil
}

// LoadEvents reads an event script from path.
func LoadEvents(path string) ([]Event, error) {
	f, err := os.Open(path) //nolint:gosec // User-specified file path is expected CLI behavior
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return DecodeEvents(f)
}
