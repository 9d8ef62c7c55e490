package fs

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"

	"github.com/aretw0/mulch/pkg/core"
)

// Store implements core.Vault on top of a local file tree:
//
//	<root>/notes/{id}.md      one record per note
//	<root>/folders.json       the whole folder forest
//	<root>/graph.json         the relationship graph
//	<root>/canvas/{id}.json   one canvas document per note
//	<root>/attachments/       reserved
//	<root>/<system dir>/      vault config
type Store struct {
	Path   string
	config Config
}

// Config holds the configuration for the filesystem vault.
type Config struct {
	Path      string
	MustExist bool
	Logger    *slog.Logger
	SystemDir string // e.g. ".mulch"
	// ErrorHandler receives runtime watcher failures that would otherwise
	// only be logged.
	ErrorHandler func(error)
}

// NewStore creates a new filesystem-backed vault.
func NewStore(config Config) *Store {
	if config.SystemDir == "" {
		config.SystemDir = ".mulch"
	}
	if config.Logger == nil {
		config.Logger = slog.New(slog.DiscardHandler)
	}
	return &Store{Path: config.Path, config: config}
}

// Initialize ensures the vault directory layout exists.
func (s *Store) Initialize(ctx context.Context) error {
	if s.config.MustExist {
		info, err := os.Stat(s.Path)
		if os.IsNotExist(err) {
			return fmt.Errorf("vault path does not exist: %s", s.Path)
		}
		if err != nil {
			return err
		}
		if !info.IsDir() {
			return fmt.Errorf("vault path is not a directory: %s", s.Path)
		}
	}

	for _, dir := range []string{
		s.Path,
		s.notesDir(),
		s.canvasDir(),
		s.attachmentsDir(),
		filepath.Join(s.Path, s.config.SystemDir),
	} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create vault directory: %w", err)
		}
	}
	return nil
}

// Notes returns the note record store.
func (s *Store) Notes() core.NoteRepository { return &noteStore{s} }

// Folders returns the folder forest store.
func (s *Store) Folders() core.FolderRepository { return &folderStore{s} }

// Graph returns the relationship graph store.
func (s *Store) Graph() core.GraphRepository { return &graphStore{s} }

// Canvases returns the per-note canvas store.
func (s *Store) Canvases() core.CanvasRepository { return &canvasStore{s} }

func (s *Store) notesDir() string       { return filepath.Join(s.Path, "notes") }
func (s *Store) canvasDir() string      { return filepath.Join(s.Path, "canvas") }
func (s *Store) attachmentsDir() string { return filepath.Join(s.Path, "attachments") }
func (s *Store) foldersFile() string    { return filepath.Join(s.Path, "folders.json") }
func (s *Store) graphFile() string      { return filepath.Join(s.Path, "graph.json") }

func (s *Store) notePath(id string) string {
	return filepath.Join(s.notesDir(), id+".md")
}

func (s *Store) canvasPath(noteID string) string {
	return filepath.Join(s.canvasDir(), noteID+".json")
}

// writeFile persists data atomically so a crash mid-write never leaves a
// half-encoded record behind.
func (s *Store) writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directories: %w", err)
	}
	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to write %s: %w", filepath.Base(path), err)
	}
	return nil
}

var _ core.Vault = (*Store)(nil)
