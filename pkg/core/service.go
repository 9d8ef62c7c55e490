package core

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Service handles the business logic for notes, folders, the relationship
// graph and canvases. It owns the ordering engine and the cross-store
// cascades (note delete -> graph prune, folder delete -> reparent/evict).
//
// Every operation runs under a process-wide lock: the stores themselves do
// not coordinate, and a reorder or folder delete touches several records
// sequentially.
type Service struct {
	mu       sync.RWMutex
	vault    Vault
	logger   *slog.Logger
	readOnly bool
}

// NewService creates a new Service on top of a vault.
func NewService(vault Vault, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{vault: vault, logger: logger}
}

// SetReadOnly toggles read-only mode. Write operations return ErrReadOnly
// while enabled.
func (s *Service) SetReadOnly(ro bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.readOnly = ro
}

// --- Notes ---

// ListNotes returns every note in presentation order: root scope first,
// then folder scopes in folder-list order, each scope sorted by position
// with most-recently-updated first on ties.
func (s *Service) ListNotes(ctx context.Context) ([]Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	notes, err := s.vault.Notes().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	folders, err := s.vault.Folders().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list folders: %w", err)
	}
	return PresentationOrder(notes, folders), nil
}

// GetNote retrieves a note by its ID.
func (s *Service) GetNote(ctx context.Context, id string) (Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.vault.Notes().Get(ctx, id)
}

// CreateNote assigns a fresh ID and timestamps, fills defaults for fields
// the draft leaves unset, computes the position via the append rule for the
// target scope, and persists the note.
func (s *Service) CreateNote(ctx context.Context, draft NoteDraft) (Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.readOnly {
		return Note{}, ErrReadOnly
	}

	now := time.Now()
	n := Note{
		ID:        uuid.NewString(),
		Title:     DefaultTitle,
		Ephemeral: true,
		Type:      DefaultType,
		Color:     DefaultColor,
		CreatedAt: now,
		UpdatedAt: now,
		FolderID:  draft.FolderID,
	}
	if draft.Title != nil {
		n.Title = *draft.Title
	}
	if draft.RawText != nil {
		n.RawText = *draft.RawText
	}
	if draft.Sticky != nil {
		n.Sticky = *draft.Sticky
	}
	if draft.Ephemeral != nil {
		n.Ephemeral = *draft.Ephemeral
	}
	if draft.Type != nil {
		n.Type = *draft.Type
	}
	if draft.Color != nil {
		n.Color = *draft.Color
	}
	if draft.Content != nil {
		n.Content = draft.Content
	} else {
		n.Content = SynthesizeContent(n.RawText)
	}

	notes, err := s.vault.Notes().List(ctx)
	if err != nil {
		return Note{}, fmt.Errorf("failed to scan scope for position: %w", err)
	}
	n.Position = NextPosition(notes, n.Scope())

	if err := s.vault.Notes().Save(ctx, n); err != nil {
		return Note{}, fmt.Errorf("failed to save note: %w", err)
	}
	s.logger.Debug("note created", "id", n.ID, "scope", n.Scope(), "position", n.Position)
	return n, nil
}

// UpdateNote applies only the fields the patch supplies, refreshes
// updatedAt and persists. It never renumbers positions; callers that move
// a note between scopes and care about density must use ReorderNote.
func (s *Service) UpdateNote(ctx context.Context, id string, patch NotePatch) (Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.readOnly {
		return Note{}, ErrReadOnly
	}

	n, err := s.vault.Notes().Get(ctx, id)
	if err != nil {
		return Note{}, err
	}

	patch.Title.Apply(&n.Title)
	patch.RawText.Apply(&n.RawText)
	patch.Sticky.Apply(&n.Sticky)
	patch.Ephemeral.Apply(&n.Ephemeral)
	patch.Archived.Apply(&n.Archived)
	patch.Type.Apply(&n.Type)
	patch.Color.Apply(&n.Color)
	patch.FolderID.ApplyPtr(&n.FolderID)
	if patch.Content != nil {
		n.Content = patch.Content
	}
	n.UpdatedAt = time.Now()

	if err := s.vault.Notes().Save(ctx, n); err != nil {
		return Note{}, fmt.Errorf("failed to save note: %w", err)
	}
	return n, nil
}

// DeleteNote removes a note record if present, renumbers the remaining
// notes of its scope, and prunes the relationship graph. Deleting an
// absent ID is a no-op. Graph cleanup is best-effort on read: an
// unreadable graph record does not fail the delete.
func (s *Service) DeleteNote(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.readOnly {
		return ErrReadOnly
	}

	n, err := s.vault.Notes().Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to read note: %w", err)
	}

	if err := s.vault.Notes().Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}

	if err := s.compactScope(ctx, n.Scope()); err != nil {
		return err
	}

	return s.pruneGraph(ctx, id)
}

// DeleteAllNotes removes every note record and resets the graph to empty.
// Returns how many records were removed.
func (s *Service) DeleteAllNotes(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.readOnly {
		return 0, ErrReadOnly
	}

	count, err := s.vault.Notes().DeleteAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete notes: %w", err)
	}
	if err := s.vault.Graph().Save(ctx, EmptyGraph()); err != nil {
		return count, fmt.Errorf("failed to reset graph: %w", err)
	}
	return count, nil
}

// ReorderNote moves a note into targetFolderID (nil = root scope) at
// newPosition, clamped into the bounds of the target scope. Both the
// target and, for cross-scope moves, the source scope are renumbered to
// 0..n-1; no other scope is touched.
func (s *Service) ReorderNote(ctx context.Context, id string, targetFolderID *string, newPosition int) (Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.readOnly {
		return Note{}, ErrReadOnly
	}

	notes, err := s.vault.Notes().List(ctx)
	if err != nil {
		return Note{}, fmt.Errorf("failed to list notes: %w", err)
	}

	var moved *Note
	rest := notes[:0]
	for i := range notes {
		if notes[i].ID == id {
			n := notes[i]
			moved = &n
			continue
		}
		rest = append(rest, notes[i])
	}
	if moved == nil {
		return Note{}, fmt.Errorf("note %s: %w", id, ErrNotFound)
	}

	prevScope := moved.Scope()
	moved.FolderID = targetFolderID
	targetScope := moved.Scope()

	target := ScopeNotes(rest, targetScope)
	idx := ClampIndex(newPosition, len(target))
	target = InsertAt(target, idx, *moved)

	dirty := map[string]Note{moved.ID: *moved}
	for _, n := range Renumber(target) {
		dirty[n.ID] = n
	}
	// Renumber wrote into target; the local copy is stale.
	*moved = target[idx]
	dirty[moved.ID] = *moved

	if prevScope != targetScope {
		for _, n := range Renumber(ScopeNotes(rest, prevScope)) {
			dirty[n.ID] = n
		}
	}

	for _, n := range dirty {
		if err := s.vault.Notes().Save(ctx, n); err != nil {
			return Note{}, fmt.Errorf("failed to persist reorder of %s: %w", n.ID, err)
		}
	}
	s.logger.Debug("note reordered",
		"id", id, "from", prevScope, "to", targetScope, "position", moved.Position)
	return *moved, nil
}

// compactScope renumbers the notes of one scope to 0..n-1 and persists the
// records whose position changed.
func (s *Service) compactScope(ctx context.Context, scope string) error {
	notes, err := s.vault.Notes().List(ctx)
	if err != nil {
		return fmt.Errorf("failed to rescan scope: %w", err)
	}
	for _, n := range Renumber(ScopeNotes(notes, scope)) {
		if err := s.vault.Notes().Save(ctx, n); err != nil {
			return fmt.Errorf("failed to renumber %s: %w", n.ID, err)
		}
	}
	return nil
}

// pruneGraph drops every graph reference to the deleted note. An
// unreadable graph skips the cleanup without failing the delete; a failed
// write still surfaces.
func (s *Service) pruneGraph(ctx context.Context, noteID string) error {
	g, err := s.vault.Graph().Get(ctx)
	if err != nil {
		s.logger.Debug("graph unreadable, skipping cleanup", "note", noteID, "error", err)
		return nil
	}
	if !g.Prune(noteID) {
		return nil
	}
	if err := s.vault.Graph().Save(ctx, g); err != nil {
		return fmt.Errorf("failed to persist graph cleanup: %w", err)
	}
	return nil
}

// --- Folders ---

// ListFolders returns the folder forest.
func (s *Service) ListFolders(ctx context.Context) ([]Folder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.vault.Folders().List(ctx)
}

// CreateFolder adds a folder under parentID (nil = top level).
func (s *Service) CreateFolder(ctx context.Context, name string, parentID *string) (Folder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.readOnly {
		return Folder{}, ErrReadOnly
	}

	folders, err := s.vault.Folders().List(ctx)
	if err != nil {
		return Folder{}, fmt.Errorf("failed to list folders: %w", err)
	}
	if parentID != nil && findFolder(folders, *parentID) == -1 {
		return Folder{}, fmt.Errorf("parent folder %s: %w", *parentID, ErrNotFound)
	}

	now := time.Now()
	f := Folder{
		ID:        uuid.NewString(),
		Name:      name,
		ParentID:  parentID,
		CreatedAt: now,
		UpdatedAt: now,
		Expanded:  true,
	}
	folders = append(folders, f)
	if err := s.vault.Folders().SaveAll(ctx, folders); err != nil {
		return Folder{}, fmt.Errorf("failed to save folders: %w", err)
	}
	return f, nil
}

// UpdateFolder applies a partial update. Re-parenting validates the
// ancestor chain and rejects moves that would make the folder its own
// descendant.
func (s *Service) UpdateFolder(ctx context.Context, id string, patch FolderPatch) (Folder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.readOnly {
		return Folder{}, ErrReadOnly
	}

	folders, err := s.vault.Folders().List(ctx)
	if err != nil {
		return Folder{}, fmt.Errorf("failed to list folders: %w", err)
	}
	i := findFolder(folders, id)
	if i == -1 {
		return Folder{}, fmt.Errorf("folder %s: %w", id, ErrNotFound)
	}

	f := folders[i]
	patch.Name.Apply(&f.Name)
	patch.Expanded.Apply(&f.Expanded)
	if patch.ParentID.IsSet() {
		parent := patch.ParentID.Value()
		if findFolder(folders, parent) == -1 {
			return Folder{}, fmt.Errorf("parent folder %s: %w", parent, ErrNotFound)
		}
		if err := checkAncestry(folders, id, parent); err != nil {
			return Folder{}, err
		}
	}
	patch.ParentID.ApplyPtr(&f.ParentID)
	f.UpdatedAt = time.Now()
	folders[i] = f

	if err := s.vault.Folders().SaveAll(ctx, folders); err != nil {
		return Folder{}, fmt.Errorf("failed to save folders: %w", err)
	}
	return f, nil
}

// DeleteFolder removes a folder: its notes are evicted to the root scope,
// its child folders are reparented to its own former parent, and the
// folder record is dropped. Deleting an absent ID is a silent no-op.
//
// Eviction deliberately does not renumber the root scope; positions there
// may end up duplicated or gapped until the next reorder. This mirrors the
// reference behavior and is documented rather than hidden.
func (s *Service) DeleteFolder(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.readOnly {
		return ErrReadOnly
	}

	folders, err := s.vault.Folders().List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list folders: %w", err)
	}
	i := findFolder(folders, id)
	if i == -1 {
		return nil
	}
	former := folders[i].ParentID

	notes, err := s.vault.Notes().List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list notes: %w", err)
	}
	for _, n := range notes {
		if n.FolderID == nil || *n.FolderID != id {
			continue
		}
		n.FolderID = nil
		n.UpdatedAt = time.Now()
		if err := s.vault.Notes().Save(ctx, n); err != nil {
			return fmt.Errorf("failed to evict note %s: %w", n.ID, err)
		}
	}

	kept := folders[:0]
	for _, f := range folders {
		if f.ID == id {
			continue
		}
		if f.ParentID != nil && *f.ParentID == id {
			f.ParentID = former
			f.UpdatedAt = time.Now()
		}
		kept = append(kept, f)
	}
	if err := s.vault.Folders().SaveAll(ctx, kept); err != nil {
		return fmt.Errorf("failed to save folders: %w", err)
	}
	s.logger.Debug("folder deleted", "id", id)
	return nil
}

// --- Graph & Canvas ---

// GetGraph returns the relationship graph, empty if none is persisted.
func (s *Service) GetGraph(ctx context.Context) (Graph, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.vault.Graph().Get(ctx)
}

// SaveGraph overwrites the relationship graph wholesale.
func (s *Service) SaveGraph(ctx context.Context, g Graph) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.readOnly {
		return ErrReadOnly
	}
	return s.vault.Graph().Save(ctx, g)
}

// GetCanvas returns the canvas for a note, empty if none is persisted.
func (s *Service) GetCanvas(ctx context.Context, noteID string) (Canvas, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.vault.Canvases().Get(ctx, noteID)
}

// SaveCanvas overwrites the canvas for a note wholesale.
func (s *Service) SaveCanvas(ctx context.Context, noteID string, c Canvas) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.readOnly {
		return ErrReadOnly
	}
	return s.vault.Canvases().Save(ctx, noteID, c)
}

// DeleteCanvas removes the canvas document for a note. Canvases are not
// part of the note delete cascade; this is the manual cleanup for orphans.
func (s *Service) DeleteCanvas(ctx context.Context, noteID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.readOnly {
		return ErrReadOnly
	}
	return s.vault.Canvases().Delete(ctx, noteID)
}

// Watch observes external changes to the note collection if the vault
// supports it.
func (s *Service) Watch(ctx context.Context, pattern string) (<-chan Event, error) {
	w, ok := s.vault.(Watchable)
	if !ok {
		return nil, errors.New("vault does not support watching")
	}
	return w.Watch(ctx, pattern)
}

func findFolder(folders []Folder, id string) int {
	for i := range folders {
		if folders[i].ID == id {
			return i
		}
	}
	return -1
}

// checkAncestry walks up from newParent and fails if it reaches folderID.
func checkAncestry(folders []Folder, folderID, newParent string) error {
	byID := make(map[string]Folder, len(folders))
	for _, f := range folders {
		byID[f.ID] = f
	}
	cur := newParent
	for range folders {
		if cur == folderID {
			return fmt.Errorf("folder %s: %w", folderID, ErrCycleDetected)
		}
		f, ok := byID[cur]
		if !ok || f.ParentID == nil {
			return nil
		}
		cur = *f.ParentID
	}
	// Pre-existing cycle in the chain; refuse the write rather than loop.
	return fmt.Errorf("folder %s: %w", folderID, ErrCycleDetected)
}
