package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/mulch/pkg/core"
)

// noteStore persists one record per note under notes/{id}.md.
type noteStore struct {
	st *Store
}

// List decodes every .md record in the note collection. Decoding is total,
// so a malformed record yields a defaulted note rather than aborting the
// scan; only real I/O failures surface.
func (ns *noteStore) List(ctx context.Context) ([]core.Note, error) {
	entries, err := os.ReadDir(ns.st.notesDir())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan notes: %w", err)
	}

	var notes []core.Note
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".md" {
			continue
		}
		id := strings.TrimSuffix(entry.Name(), ".md")
		data, err := os.ReadFile(filepath.Join(ns.st.notesDir(), entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read note %s: %w", id, err)
		}
		notes = append(notes, DecodeNote(id, data))
	}
	return notes, nil
}

// Get retrieves one note record.
func (ns *noteStore) Get(ctx context.Context, id string) (core.Note, error) {
	data, err := os.ReadFile(ns.st.notePath(id))
	if err != nil {
		if os.IsNotExist(err) {
			return core.Note{}, fmt.Errorf("note %s: %w", id, core.ErrNotFound)
		}
		return core.Note{}, fmt.Errorf("failed to read note %s: %w", id, err)
	}
	return DecodeNote(id, data), nil
}

// Save encodes and writes one note record.
func (ns *noteStore) Save(ctx context.Context, n core.Note) error {
	if n.ID == "" {
		return fmt.Errorf("note has no ID")
	}
	data, err := EncodeNote(n)
	if err != nil {
		return fmt.Errorf("failed to encode note %s: %w", n.ID, err)
	}
	return ns.st.writeFile(ns.st.notePath(n.ID), data)
}

// Delete removes a note record. Absent records are a no-op.
func (ns *noteStore) Delete(ctx context.Context, id string) error {
	if err := os.Remove(ns.st.notePath(id)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove note %s: %w", id, err)
	}
	return nil
}

// DeleteAll removes every note record and reports how many were removed.
func (ns *noteStore) DeleteAll(ctx context.Context) (int, error) {
	entries, err := os.ReadDir(ns.st.notesDir())
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to scan notes: %w", err)
	}

	count := 0
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".md" {
			continue
		}
		if err := os.Remove(filepath.Join(ns.st.notesDir(), entry.Name())); err != nil {
			return count, fmt.Errorf("failed to remove %s: %w", entry.Name(), err)
		}
		count++
	}
	return count, nil
}
