package core

import "sort"

// The ordering engine maintains the dense-position invariant: within every
// scope the positions of its notes are exactly {0..n-1}. It never touches
// scopes other than the ones involved in an operation.

// NextPosition implements the append rule: 1 + max(position) over the notes
// of the target scope, or 0 when the scope is empty.
func NextPosition(notes []Note, scope string) int {
	next := 0
	for _, n := range notes {
		if n.Scope() != scope {
			continue
		}
		if n.Position >= next {
			next = n.Position + 1
		}
	}
	return next
}

// ScopeNotes returns the notes of one scope ordered by their existing
// positions, ties broken by most recent update first.
func ScopeNotes(notes []Note, scope string) []Note {
	var out []Note
	for _, n := range notes {
		if n.Scope() == scope {
			out = append(out, n)
		}
	}
	sortWithinScope(out)
	return out
}

// Renumber assigns positions 0..n-1 in list order and returns the notes
// whose position actually changed.
func Renumber(notes []Note) []Note {
	var changed []Note
	for i := range notes {
		if notes[i].Position != i {
			notes[i].Position = i
			changed = append(changed, notes[i])
		}
	}
	return changed
}

// ClampIndex saturates idx into [0, length].
func ClampIndex(idx, length int) int {
	if idx < 0 {
		return 0
	}
	if idx > length {
		return length
	}
	return idx
}

// InsertAt places n into notes at index idx, shifting the tail.
func InsertAt(notes []Note, idx int, n Note) []Note {
	notes = append(notes, Note{})
	copy(notes[idx+1:], notes[idx:])
	notes[idx] = n
	return notes
}

func sortWithinScope(notes []Note) {
	sort.SliceStable(notes, func(i, j int) bool {
		if notes[i].Position != notes[j].Position {
			return notes[i].Position < notes[j].Position
		}
		return notes[i].UpdatedAt.After(notes[j].UpdatedAt)
	})
}

// PresentationOrder sorts notes for listing: the root scope first, then
// folder scopes in folder-list order, then scopes whose folder no longer
// exists, by scope id. Within each scope, ascending position with
// most-recently-updated first on ties.
//
// Grouping first and concatenating in a fixed scope order avoids the
// non-transitive pairwise folder-id comparison of the reference behavior.
func PresentationOrder(notes []Note, folders []Folder) []Note {
	groups := make(map[string][]Note)
	for _, n := range notes {
		groups[n.Scope()] = append(groups[n.Scope()], n)
	}

	var scopes []string
	scopes = append(scopes, "")
	known := map[string]bool{"": true}
	for _, f := range folders {
		if !known[f.ID] {
			scopes = append(scopes, f.ID)
			known[f.ID] = true
		}
	}
	var orphans []string
	for scope := range groups {
		if !known[scope] {
			orphans = append(orphans, scope)
		}
	}
	sort.Strings(orphans)
	scopes = append(scopes, orphans...)

	out := make([]Note, 0, len(notes))
	for _, scope := range scopes {
		group := groups[scope]
		sortWithinScope(group)
		out = append(out, group...)
	}
	return out
}
