package core_test

import (
	"testing"
	"time"

	"github.com/aretw0/mulch/pkg/core"
)

func note(id string, folder string, pos int) core.Note {
	n := core.Note{ID: id, Position: pos}
	if folder != "" {
		n.FolderID = &folder
	}
	return n
}

func TestNextPosition(t *testing.T) {
	t.Run("Empty Scope Starts at Zero", func(t *testing.T) {
		if got := core.NextPosition(nil, ""); got != 0 {
			t.Errorf("expected 0, got %d", got)
		}
	})

	t.Run("Appends After Max", func(t *testing.T) {
		notes := []core.Note{
			note("a", "", 0), note("b", "", 1), note("c", "", 2),
			note("x", "f1", 7), // other scope must not leak in
		}
		if got := core.NextPosition(notes, ""); got != 3 {
			t.Errorf("expected 3, got %d", got)
		}
		if got := core.NextPosition(notes, "f1"); got != 8 {
			t.Errorf("expected 8, got %d", got)
		}
	})
}

func TestClampIndex(t *testing.T) {
	cases := []struct {
		idx, length, want int
	}{
		{-5, 2, 0},
		{0, 2, 0},
		{1, 2, 1},
		{2, 2, 2},
		{1000, 2, 2},
	}
	for _, c := range cases {
		if got := core.ClampIndex(c.idx, c.length); got != c.want {
			t.Errorf("ClampIndex(%d, %d) = %d, want %d", c.idx, c.length, got, c.want)
		}
	}
}

func TestRenumber(t *testing.T) {
	t.Run("Returns Only Changed Notes", func(t *testing.T) {
		notes := []core.Note{
			note("a", "", 0), note("b", "", 3), note("c", "", 4),
		}
		changed := core.Renumber(notes)
		if len(changed) != 2 {
			t.Fatalf("expected 2 changed, got %d", len(changed))
		}
		for i, n := range notes {
			if n.Position != i {
				t.Errorf("position %d for %s, want %d", n.Position, n.ID, i)
			}
		}
	})

	t.Run("Dense List Untouched", func(t *testing.T) {
		notes := []core.Note{note("a", "", 0), note("b", "", 1)}
		if changed := core.Renumber(notes); len(changed) != 0 {
			t.Errorf("expected no changes, got %v", changed)
		}
	})
}

func TestPresentationOrder(t *testing.T) {
	t.Run("Root First Then Folder List Order", func(t *testing.T) {
		folders := []core.Folder{{ID: "fB", Name: "B"}, {ID: "fA", Name: "A"}}
		notes := []core.Note{
			note("a2", "fA", 0),
			note("r1", "", 0),
			note("b1", "fB", 0),
			note("r2", "", 1),
		}

		got := core.PresentationOrder(notes, folders)
		ids := idsOf(got)
		want := []string{"r1", "r2", "b1", "a2"}
		for i := range want {
			if ids[i] != want[i] {
				t.Fatalf("order mismatch: got %v, want %v", ids, want)
			}
		}
	})

	t.Run("Ties Broken by Most Recent Update", func(t *testing.T) {
		now := time.Now()
		older := note("old", "", 1)
		older.UpdatedAt = now.Add(-time.Hour)
		newer := note("new", "", 1)
		newer.UpdatedAt = now

		got := core.PresentationOrder([]core.Note{older, newer}, nil)
		if got[0].ID != "new" {
			t.Errorf("expected most recent first, got %v", idsOf(got))
		}
	})

	t.Run("Orphan Scopes Listed Last", func(t *testing.T) {
		notes := []core.Note{
			note("ghost", "gone", 0),
			note("r", "", 0),
		}
		got := core.PresentationOrder(notes, nil)
		if got[0].ID != "r" || got[1].ID != "ghost" {
			t.Errorf("unexpected order: %v", idsOf(got))
		}
	})
}

func idsOf(notes []core.Note) []string {
	ids := make([]string, len(notes))
	for i, n := range notes {
		ids[i] = n.ID
	}
	return ids
}
