package fs_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/aretw0/mulch/pkg/adapters/fs"
	"github.com/aretw0/mulch/pkg/core"
)

func TestEncodeNote(t *testing.T) {
	t.Run("Writes Header Fences and Body", func(t *testing.T) {
		n := core.Note{
			ID:        "abc",
			Title:     "Groceries",
			RawText:   "milk, eggs",
			Content:   core.SynthesizeContent("milk, eggs"),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
			Type:      "text",
			Color:     "#ffffff",
		}

		data, err := fs.EncodeNote(n)
		if err != nil {
			t.Fatalf("EncodeNote failed: %v", err)
		}

		record := string(data)
		if !strings.HasPrefix(record, "---\n") {
			t.Errorf("record does not start with a fence: %q", record[:10])
		}
		if !strings.HasSuffix(record, "milk, eggs") {
			t.Errorf("body not at end of record")
		}
		if strings.Contains(record, "rawText") {
			t.Errorf("rawText must not appear in the header")
		}
	})
}

func TestDecodeNote(t *testing.T) {
	t.Run("Round Trip Preserves Every Field", func(t *testing.T) {
		folder := "folder-1"
		label := time.Date(2024, 3, 9, 12, 30, 0, 0, time.FixedZone("", 2*3600))
		n := core.Note{
			ID:        "note-1",
			Title:     "Plans",
			RawText:   "step one\nstep two",
			Content:   json.RawMessage(`{"type":"doc","content":[{"type":"paragraph"}]}`),
			CreatedAt: label,
			UpdatedAt: label.Add(time.Hour),
			Sticky:    true,
			Ephemeral: false,
			Archived:  true,
			Type:      "list",
			Color:     "#ffcc00",
			FolderID:  &folder,
			Position:  4,
		}

		data, err := fs.EncodeNote(n)
		if err != nil {
			t.Fatalf("EncodeNote failed: %v", err)
		}
		got := fs.DecodeNote("note-1", data)

		if got.Title != n.Title || got.RawText != n.RawText {
			t.Errorf("title/body mismatch: %+v", got)
		}
		if !got.CreatedAt.Equal(n.CreatedAt) || !got.UpdatedAt.Equal(n.UpdatedAt) {
			t.Errorf("timestamps mismatch: got %v / %v", got.CreatedAt, got.UpdatedAt)
		}
		if got.Sticky != true || got.Ephemeral != false || got.Archived != true {
			t.Errorf("flags mismatch: %+v", got)
		}
		if got.Type != "list" || got.Color != "#ffcc00" || got.Position != 4 {
			t.Errorf("tag fields mismatch: %+v", got)
		}
		if got.FolderID == nil || *got.FolderID != folder {
			t.Errorf("folder id mismatch: %v", got.FolderID)
		}

		var want, have any
		if err := json.Unmarshal(n.Content, &want); err != nil {
			t.Fatal(err)
		}
		if err := json.Unmarshal(got.Content, &have); err != nil {
			t.Fatalf("decoded content is not valid JSON: %v", err)
		}
		if string(mustMarshal(t, want)) != string(mustMarshal(t, have)) {
			t.Errorf("content mismatch: %s", got.Content)
		}
	})

	t.Run("Record Without Fences Is All Body", func(t *testing.T) {
		got := fs.DecodeNote("x", []byte("just some text"))

		if got.RawText != "just some text" {
			t.Errorf("body mismatch: %q", got.RawText)
		}
		if got.Title != core.DefaultTitle {
			t.Errorf("expected default title, got %q", got.Title)
		}
		if !got.Ephemeral || got.Sticky || got.Archived {
			t.Errorf("expected default flags, got %+v", got)
		}
		if got.Type != core.DefaultType || got.Color != core.DefaultColor {
			t.Errorf("expected default type/color, got %+v", got)
		}
		if got.Position != 0 || got.FolderID != nil {
			t.Errorf("expected root scope position 0, got %+v", got)
		}
	})

	t.Run("Malformed Header JSON Falls Back to Defaults", func(t *testing.T) {
		record := "---\n{not json at all\n---\n\nthe body survives"
		got := fs.DecodeNote("x", []byte(record))

		if got.Title != core.DefaultTitle {
			t.Errorf("expected default title, got %q", got.Title)
		}
		if got.RawText != "the body survives" {
			t.Errorf("body mismatch: %q", got.RawText)
		}
	})

	t.Run("Bad Field Does Not Poison the Header", func(t *testing.T) {
		record := "---\n" +
			`{"title":"Kept","position":"not-a-number","sticky":true}` +
			"\n---\n\nbody"
		got := fs.DecodeNote("x", []byte(record))

		if got.Title != "Kept" || !got.Sticky {
			t.Errorf("valid fields lost: %+v", got)
		}
		if got.Position != 0 {
			t.Errorf("expected default position, got %d", got.Position)
		}
	})

	t.Run("Fence Run Inside a Header String Degrades to Defaults", func(t *testing.T) {
		// Known limitation of the plain fence split: a "---" inside a
		// header value breaks the header apart. The record must still
		// decode lossily rather than error.
		record := "---\n" + `{"title":"a---b","sticky":true}` + "\n---\n\nbody"
		got := fs.DecodeNote("x", []byte(record))

		if got.Title != core.DefaultTitle {
			t.Errorf("expected default title, got %q", got.Title)
		}
		if got.Sticky {
			t.Error("expected the broken header to be discarded entirely")
		}
	})

	t.Run("Body Containing Fence Runs Survives", func(t *testing.T) {
		n := core.Note{ID: "x", Title: "T", RawText: "before --- after", Type: "text", Color: "#ffffff"}
		data, err := fs.EncodeNote(n)
		if err != nil {
			t.Fatal(err)
		}
		got := fs.DecodeNote("x", data)
		if got.RawText != "before --- after" {
			t.Errorf("body mismatch: %q", got.RawText)
		}
	})

	t.Run("Missing Content Is Synthesized From Body", func(t *testing.T) {
		record := "---\n" + `{"title":"T"}` + "\n---\n\nhello world"
		got := fs.DecodeNote("x", []byte(record))

		var doc struct {
			Type    string `json:"type"`
			Content []struct {
				Type    string `json:"type"`
				Content []struct {
					Type string `json:"type"`
					Text string `json:"text"`
				} `json:"content"`
			} `json:"content"`
		}
		if err := json.Unmarshal(got.Content, &doc); err != nil {
			t.Fatalf("synthesized content invalid: %v", err)
		}
		if doc.Type != "doc" || len(doc.Content) != 1 || doc.Content[0].Type != "paragraph" {
			t.Errorf("unexpected document shape: %s", got.Content)
		}
		if doc.Content[0].Content[0].Text != "hello world" {
			t.Errorf("synthesized text mismatch: %s", got.Content)
		}
	})

	t.Run("Empty Record Yields Empty Document", func(t *testing.T) {
		got := fs.DecodeNote("x", []byte(""))
		if string(got.Content) != string(core.EmptyDoc) {
			t.Errorf("expected empty doc, got %s", got.Content)
		}
	})

	t.Run("Stored Content Wins Over Synthesis", func(t *testing.T) {
		record := "---\n" + `{"content":{"type":"doc","content":[{"type":"heading"}]}}` + "\n---\n\nraw"
		got := fs.DecodeNote("x", []byte(record))
		if !strings.Contains(string(got.Content), "heading") {
			t.Errorf("stored content not used verbatim: %s", got.Content)
		}
	})
}

func mustMarshal(t *testing.T, v any) []byte {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	return data
}
