package core

import "context"

// NoteRepository is the port for the note record collection.
// Adhering to this interface keeps the core independent of the underlying
// storage mechanism (filesystem, SQL, in-memory).
type NoteRepository interface {
	// List decodes every record in the collection. Individual malformed
	// records fall back to header defaults rather than aborting the listing.
	// No presentation order is implied; the service sorts.
	List(ctx context.Context) ([]Note, error)

	// Get retrieves one note. Returns ErrNotFound if no record exists.
	Get(ctx context.Context, id string) (Note, error)

	// Save persists a note record, creating or replacing it.
	Save(ctx context.Context, n Note) error

	// Delete removes the record if present. Absent records are a no-op.
	Delete(ctx context.Context, id string) error

	// DeleteAll removes every note record and returns how many were removed.
	DeleteAll(ctx context.Context) (int, error)
}

// FolderRepository is the port for the folder forest, persisted as one
// whole-collection document.
type FolderRepository interface {
	List(ctx context.Context) ([]Folder, error)

	// SaveAll overwrites the folder list wholesale.
	SaveAll(ctx context.Context, folders []Folder) error
}

// GraphRepository is the port for the process-wide relationship graph.
type GraphRepository interface {
	// Get returns the graph, or an empty one if no record exists.
	Get(ctx context.Context) (Graph, error)

	// Save overwrites the graph wholesale. No partial/merge semantics.
	Save(ctx context.Context, g Graph) error
}

// CanvasRepository is the port for per-note canvas documents.
type CanvasRepository interface {
	// Get returns the canvas for a note, or an empty one if absent.
	Get(ctx context.Context, noteID string) (Canvas, error)

	// Save overwrites the canvas wholesale.
	Save(ctx context.Context, noteID string, c Canvas) error

	// Delete removes the canvas document if present. Idempotent.
	Delete(ctx context.Context, noteID string) error
}

// Vault groups the four stores behind one handle. The service receives a
// Vault explicitly rather than reaching for process-wide singletons.
type Vault interface {
	Notes() NoteRepository
	Folders() FolderRepository
	Graph() GraphRepository
	Canvases() CanvasRepository

	// Initialize ensures the underlying storage is ready
	// (e.g. create directories).
	Initialize(ctx context.Context) error
}

// EventType represents the type of change observed in the vault.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event represents a change to a note record in the vault.
type Event struct {
	Type      EventType
	ID        string
	Timestamp int64 // Unix timestamp
}

// Watchable is implemented by vaults that can observe external changes to
// the note collection.
type Watchable interface {
	Watch(ctx context.Context, pattern string) (<-chan Event, error)
}
