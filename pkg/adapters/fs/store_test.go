package fs_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/mulch/pkg/adapters/fs"
	"github.com/aretw0/mulch/pkg/core"
)

// setupStore creates an initialized vault in a temp directory.
func setupStore(t *testing.T, opts ...func(*fs.Config)) (*fs.Store, string) {
	t.Helper()

	tmpDir := t.TempDir()
	vaultPath := filepath.Join(tmpDir, "vault")

	cfg := fs.Config{
		Path: vaultPath,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	store := fs.NewStore(cfg)
	if err := store.Initialize(context.Background()); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	return store, vaultPath
}

func TestInitialize(t *testing.T) {
	t.Run("Creates Vault Layout", func(t *testing.T) {
		_, path := setupStore(t)

		for _, dir := range []string{"notes", "canvas", "attachments", ".mulch"} {
			if info, err := os.Stat(filepath.Join(path, dir)); err != nil || !info.IsDir() {
				t.Errorf("expected directory %s to exist", dir)
			}
		}
	})

	t.Run("Fails if MustExist and Missing", func(t *testing.T) {
		store := fs.NewStore(fs.Config{
			Path:      filepath.Join(t.TempDir(), "missing"),
			MustExist: true,
		})
		if err := store.Initialize(context.Background()); err == nil {
			t.Error("expected Initialize to fail when directory is missing and MustExist=true")
		}
	})
}

func TestNoteStore(t *testing.T) {
	ctx := context.Background()

	t.Run("Save Then Get", func(t *testing.T) {
		store, path := setupStore(t)

		n := core.Note{ID: "n1", Title: "First", RawText: "hello", Type: "text", Color: "#ffffff"}
		if err := store.Notes().Save(ctx, n); err != nil {
			t.Fatalf("Save failed: %v", err)
		}

		if _, err := os.Stat(filepath.Join(path, "notes", "n1.md")); err != nil {
			t.Errorf("record file not written: %v", err)
		}

		got, err := store.Notes().Get(ctx, "n1")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if got.Title != "First" || got.RawText != "hello" {
			t.Errorf("unexpected note: %+v", got)
		}
	})

	t.Run("Get Missing Returns ErrNotFound", func(t *testing.T) {
		store, _ := setupStore(t)

		_, err := store.Notes().Get(ctx, "ghost")
		if !errors.Is(err, core.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("List Tolerates Malformed Records", func(t *testing.T) {
		store, path := setupStore(t)

		if err := store.Notes().Save(ctx, core.Note{ID: "good", Title: "Good"}); err != nil {
			t.Fatal(err)
		}
		// A file that is not note-shaped at all.
		if err := os.WriteFile(filepath.Join(path, "notes", "junk.md"), []byte("free text"), 0644); err != nil {
			t.Fatal(err)
		}

		notes, err := store.Notes().List(ctx)
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(notes) != 2 {
			t.Fatalf("expected 2 notes, got %d", len(notes))
		}
		for _, n := range notes {
			if n.ID == "junk" && n.Title != core.DefaultTitle {
				t.Errorf("malformed record did not default: %+v", n)
			}
		}
	})

	t.Run("Delete Is Idempotent", func(t *testing.T) {
		store, _ := setupStore(t)

		if err := store.Notes().Save(ctx, core.Note{ID: "n1", Title: "T"}); err != nil {
			t.Fatal(err)
		}
		if err := store.Notes().Delete(ctx, "n1"); err != nil {
			t.Fatalf("first Delete failed: %v", err)
		}
		if err := store.Notes().Delete(ctx, "n1"); err != nil {
			t.Fatalf("second Delete failed: %v", err)
		}
	})

	t.Run("DeleteAll Returns Count", func(t *testing.T) {
		store, _ := setupStore(t)

		for _, id := range []string{"a", "b", "c"} {
			if err := store.Notes().Save(ctx, core.Note{ID: id}); err != nil {
				t.Fatal(err)
			}
		}
		count, err := store.Notes().DeleteAll(ctx)
		if err != nil {
			t.Fatalf("DeleteAll failed: %v", err)
		}
		if count != 3 {
			t.Errorf("expected 3 removed, got %d", count)
		}

		notes, err := store.Notes().List(ctx)
		if err != nil {
			t.Fatal(err)
		}
		if len(notes) != 0 {
			t.Errorf("expected empty collection, got %d", len(notes))
		}
	})
}

func TestFolderStore(t *testing.T) {
	ctx := context.Background()

	t.Run("Empty Without Document", func(t *testing.T) {
		store, _ := setupStore(t)

		folders, err := store.Folders().List(ctx)
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(folders) != 0 {
			t.Errorf("expected no folders, got %d", len(folders))
		}
	})

	t.Run("SaveAll Round Trip", func(t *testing.T) {
		store, _ := setupStore(t)

		parent := "f1"
		in := []core.Folder{
			{ID: "f1", Name: "Inbox", Expanded: true},
			{ID: "f2", Name: "Archive", ParentID: &parent},
		}
		if err := store.Folders().SaveAll(ctx, in); err != nil {
			t.Fatalf("SaveAll failed: %v", err)
		}

		got, err := store.Folders().List(ctx)
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != 2 || got[1].ParentID == nil || *got[1].ParentID != "f1" {
			t.Errorf("unexpected folders: %+v", got)
		}
	})
}

func TestGraphStore(t *testing.T) {
	ctx := context.Background()

	t.Run("Empty Defaults Without Document", func(t *testing.T) {
		store, _ := setupStore(t)

		g, err := store.Graph().Get(ctx)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if g.Nodes == nil || g.Edges == nil || len(g.Nodes) != 0 || len(g.Edges) != 0 {
			t.Errorf("expected empty graph, got %+v", g)
		}
	})

	t.Run("Save Overwrites Wholesale", func(t *testing.T) {
		store, _ := setupStore(t)

		g := core.EmptyGraph()
		g.Edges = append(g.Edges, core.Edge{ID: "e1", Source: "a", Target: "b"})
		if err := store.Graph().Save(ctx, g); err != nil {
			t.Fatal(err)
		}
		if err := store.Graph().Save(ctx, core.EmptyGraph()); err != nil {
			t.Fatal(err)
		}

		got, err := store.Graph().Get(ctx)
		if err != nil {
			t.Fatal(err)
		}
		if len(got.Edges) != 0 {
			t.Errorf("expected graph reset, got %+v", got)
		}
	})
}

func TestCanvasStore(t *testing.T) {
	ctx := context.Background()

	t.Run("Empty Defaults Without Document", func(t *testing.T) {
		store, _ := setupStore(t)

		c, err := store.Canvases().Get(ctx, "n1")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if string(c.Nodes) != "[]" || string(c.Edges) != "[]" {
			t.Errorf("expected empty canvas, got %+v", c)
		}
	})

	t.Run("Save Then Get Then Delete", func(t *testing.T) {
		store, _ := setupStore(t)

		c := core.Canvas{Nodes: []byte(`[{"id":"b1"}]`), Edges: []byte(`[]`)}
		if err := store.Canvases().Save(ctx, "n1", c); err != nil {
			t.Fatal(err)
		}

		got, err := store.Canvases().Get(ctx, "n1")
		if err != nil {
			t.Fatal(err)
		}
		var nodes []map[string]any
		if err := json.Unmarshal(got.Nodes, &nodes); err != nil || len(nodes) != 1 {
			t.Errorf("unexpected canvas nodes: %s", got.Nodes)
		}

		if err := store.Canvases().Delete(ctx, "n1"); err != nil {
			t.Fatal(err)
		}
		if err := store.Canvases().Delete(ctx, "n1"); err != nil {
			t.Fatalf("second Delete failed: %v", err)
		}
	})
}

func TestVaultConfig(t *testing.T) {
	t.Run("Missing File Yields Zero Config", func(t *testing.T) {
		store, _ := setupStore(t)

		cfg, err := store.LoadVaultConfig()
		if err != nil {
			t.Fatalf("LoadVaultConfig failed: %v", err)
		}
		if cfg.ReadOnly || len(cfg.Ignore) != 0 {
			t.Errorf("expected zero config, got %+v", cfg)
		}
	})

	t.Run("Parses Yaml", func(t *testing.T) {
		store, path := setupStore(t)

		raw := "read_only: true\ndebounce_ms: 100\nignore:\n  - \"draft-*\"\n"
		if err := os.WriteFile(filepath.Join(path, ".mulch", "config.yaml"), []byte(raw), 0644); err != nil {
			t.Fatal(err)
		}

		cfg, err := store.LoadVaultConfig()
		if err != nil {
			t.Fatalf("LoadVaultConfig failed: %v", err)
		}
		if !cfg.ReadOnly || cfg.DebounceMS != 100 || len(cfg.Ignore) != 1 {
			t.Errorf("unexpected config: %+v", cfg)
		}
	})
}
