// Package mulch is the Composition Root for the mulch application.
//
// It connects the core business logic (Domain Layer) with the
// infrastructure adapters (Persistence Layer) using the Hexagonal
// Architecture pattern.
//
// Philosophy:
//
// Mulch is a local-first vault for rich-text notes. Each note lives as one
// self-describing record on disk (a JSON header block plus a free-text
// body), folders form a forest persisted as a single document, and the
// auxiliary structures (a cross-note relationship graph and per-note
// canvases) are kept referentially consistent by the service as notes
// come and go. Within a folder, notes keep dense zero-based positions
// with no gaps or duplicates, restored after every move or delete.
//
// Features:
//
//   - **Hexagonal Architecture**: Core domain is isolated from persistence details.
//   - **Self-describing records**: Every note file carries its own header; a
//     damaged header degrades to defaults instead of failing the vault.
//   - **Dense ordering**: A move renumbers exactly the scopes it touches.
//   - **Cascades**: Deleting a note prunes the relationship graph; deleting a
//     folder evicts its notes to the root and reparents its children.
//   - **Default Adapter (FS)**: Plain Markdown-style files, atomic writes,
//     optional fsnotify watching.
//   - **Extensible**: Other backends can implement core.Vault.
//
// Usage:
//
//	// Initialize service with functional options
//	svc, err := mulch.New("./vault",
//		mulch.WithLogger(logger),
//	)
//
//	// Create a note in the root scope
//	note, err := svc.CreateNote(ctx, core.NoteDraft{})
package mulch
