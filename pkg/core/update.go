package core

import "encoding/json"

// Field is a three-state value for partial updates: left alone, cleared,
// or set. A plain optional cannot distinguish "not supplied" from
// "supplied as empty", which matters for moving a note back to the root
// scope.
type Field[T any] struct {
	state fieldState
	value T
}

type fieldState uint8

const (
	fieldUnset fieldState = iota
	fieldClear
	fieldSet
)

// Set returns a Field carrying v.
func Set[T any](v T) Field[T] {
	return Field[T]{state: fieldSet, value: v}
}

// Clear returns a Field that resets the target to its absent/zero state.
func Clear[T any]() Field[T] {
	return Field[T]{state: fieldClear}
}

// IsSet reports whether the field carries a value.
func (f Field[T]) IsSet() bool { return f.state == fieldSet }

// IsClear reports whether the field clears the target.
func (f Field[T]) IsClear() bool { return f.state == fieldClear }

// IsUnset reports whether the field leaves the target untouched.
func (f Field[T]) IsUnset() bool { return f.state == fieldUnset }

// Value returns the carried value; meaningful only when IsSet.
func (f Field[T]) Value() T { return f.value }

// Apply writes the field into dst according to its state.
func (f Field[T]) Apply(dst *T) {
	if f.state == fieldSet {
		*dst = f.value
	}
	// Clear has no meaning for non-pointer targets; callers handle it.
}

// ApplyPtr writes the field into an optional target: Set stores a copy,
// Clear nils it out, Unset leaves it.
func (f Field[T]) ApplyPtr(dst **T) {
	switch f.state {
	case fieldSet:
		v := f.value
		*dst = &v
	case fieldClear:
		*dst = nil
	}
}

// NotePatch carries a partial update for a note. Content replaces the
// stored document wholesale when non-nil.
type NotePatch struct {
	Title     Field[string]
	RawText   Field[string]
	Content   json.RawMessage
	Sticky    Field[bool]
	Ephemeral Field[bool]
	Archived  Field[bool]
	Type      Field[string]
	Color     Field[string]
	FolderID  Field[string]
}

// IsZero reports whether the patch changes nothing.
func (p NotePatch) IsZero() bool {
	return p.Title.IsUnset() && p.RawText.IsUnset() && p.Content == nil &&
		p.Sticky.IsUnset() && p.Ephemeral.IsUnset() && p.Archived.IsUnset() &&
		p.Type.IsUnset() && p.Color.IsUnset() && p.FolderID.IsUnset()
}
