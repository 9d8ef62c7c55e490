package fs

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"github.com/aretw0/mulch/pkg/core"
)

// A note record is self-describing: a JSON header between "---" fences
// followed by the free-text body.
//
//	---
//	{ ...every note field except rawText... }
//	---
//
//	<rawText>
//
// Decoding is total: a record whose fence region is malformed or absent is
// treated as pure body text with an empty header, and each missing header
// field falls back to its default. Decode never returns an error.

type noteHeader struct {
	ID        string          `json:"id"`
	Title     string          `json:"title"`
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

// EncodeNote serializes a note as a header block plus body.
func EncodeNote(n core.Note) ([]byte, error) {
	header, err := json.MarshalIndent(noteHeader{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
		Sticky:    n.Sticky,
		Ephemeral: n.Ephemeral,
		Archived:  n.Archived,
		Type:      n.Type,
		Color:     n.Color,
		FolderID:  n.FolderID,
		Position:  n.Position,
	}, "", "  ")
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteString("---\n")
	buf.Write(header)
	buf.WriteString("\n---\n\n")
	buf.WriteString(n.RawText)
	return buf.Bytes(), nil
}

// DecodeNote parses a note record. The id comes from the record's file
// name and always wins over a stored header id.
func DecodeNote(id string, data []byte) core.Note {
	header, body := splitRecord(string(data))

	now := time.Now()
	n := core.Note{
		ID:        id,
		Title:     core.DefaultTitle,
		RawText:   body,
		CreatedAt: now,
		UpdatedAt: now,
		Ephemeral: true,
		Type:      core.DefaultType,
		Color:     core.DefaultColor,
	}

	if v, ok := header["title"]; ok {
		unmarshalInto(v, &n.Title)
	}
	if v, ok := header["createdAt"]; ok {
		unmarshalInto(v, &n.CreatedAt)
	}
	if v, ok := header["updatedAt"]; ok {
		unmarshalInto(v, &n.UpdatedAt)
	}
	if v, ok := header["sticky"]; ok {
		unmarshalInto(v, &n.Sticky)
	}
	if v, ok := header["ephemeral"]; ok {
		unmarshalInto(v, &n.Ephemeral)
	}
	if v, ok := header["archived"]; ok {
		unmarshalInto(v, &n.Archived)
	}
	if v, ok := header["type"]; ok {
		unmarshalInto(v, &n.Type)
	}
	if v, ok := header["color"]; ok {
		unmarshalInto(v, &n.Color)
	}
	if v, ok := header["position"]; ok {
		unmarshalInto(v, &n.Position)
	}
	if v, ok := header["folderId"]; ok {
		var folder string
		if err := json.Unmarshal(v, &folder); err == nil && folder != "" {
			n.FolderID = &folder
		}
	}

	if v, ok := header["content"]; ok && !isJSONNull(v) {
		n.Content = append(json.RawMessage(nil), v...)
	} else if n.RawText != "" {
		n.Content = core.SynthesizeContent(n.RawText)
	} else {
		n.Content = append(json.RawMessage(nil), core.EmptyDoc...)
	}

	return n
}

// splitRecord separates the header fields from the body. A record without
// a well-formed fence region is all body.
//
// Known limitation: the fence scan is a plain "---" split, so a "---"
// inside a header string value (say a title) breaks the header apart and
// the record degrades to defaults plus body. Matches the reference reader;
// writers that care should keep "---" out of header strings.
func splitRecord(record string) (map[string]json.RawMessage, string) {
	parts := strings.Split(record, "---")
	if len(parts) < 3 || strings.TrimSpace(parts[0]) != "" {
		return nil, record
	}

	var header map[string]json.RawMessage
	if err := json.Unmarshal([]byte(parts[1]), &header); err != nil {
		header = nil
	}
	body := strings.TrimSpace(strings.Join(parts[2:], "---"))
	return header, body
}

// unmarshalInto decodes v into dst. Failures leave dst at its default so a
// single bad field never poisons the rest of the header.
func unmarshalInto(v json.RawMessage, dst any) {
	_ = json.Unmarshal(v, dst)
}

func isJSONNull(v json.RawMessage) bool {
	return len(bytes.TrimSpace(v)) == 0 || bytes.Equal(bytes.TrimSpace(v), []byte("null"))
}
