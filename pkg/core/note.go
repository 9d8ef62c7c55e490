package core

import (
	"encoding/json"
	"time"
)

// Default values applied when a persisted record is missing a header field,
// and when a creation draft leaves a field unset.
const (
	DefaultTitle = "Untitled"
	DefaultType  = "text"
	DefaultColor = "#ffffff"
)

// Note is the central entity of the domain.
// It represents one rich-text note identified by an ID, scoped to a folder
// (or the root scope when FolderID is nil) and ordered within that scope
// by Position.
type Note struct {
	ID        string          `json:"id"`
	Title     string          `json:"title"`
	RawText   string          `json:"rawText,omitempty"`
	Content   json.RawMessage `json:"content,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
	Sticky    bool            `json:"sticky"`
	Ephemeral bool            `json:"ephemeral"`
	Archived  bool            `json:"archived"`
	Type      string          `json:"type"`
	Color     string          `json:"color"`
	FolderID  *string         `json:"folderId,omitempty"`
	Position  int             `json:"position"`
}

// Scope returns the partition key of the note: the folder id, or "" for the
// root scope. Positions must be dense within one scope.
func (n Note) Scope() string {
	if n.FolderID == nil {
		return ""
	}
	return *n.FolderID
}

// NoteDraft carries the caller-supplied fields for note creation.
// Nil pointers mean "use the default"; ID, timestamps and position are
// always assigned by the service.
type NoteDraft struct {
	Title     *string
	RawText   *string
	Content   json.RawMessage
	Sticky    *bool
	Ephemeral *bool
	Type      *string
	Color     *string
	FolderID  *string
}

// EmptyDoc is the content document of a note without any text.
var EmptyDoc = json.RawMessage(`{"type":"doc","content":[]}`)

// SynthesizeContent builds the minimal single-paragraph content document
// wrapping rawText. Used when a record carries body text but no stored
// content value.
func SynthesizeContent(rawText string) json.RawMessage {
	if rawText == "" {
		return append(json.RawMessage(nil), EmptyDoc...)
	}
	doc := map[string]any{
		"type": "doc",
		"content": []any{
			map[string]any{
				"type": "paragraph",
				"content": []any{
					map[string]any{"type": "text", "text": rawText},
				},
			},
		},
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return append(json.RawMessage(nil), EmptyDoc...)
	}
	return data
}
