package core

import "encoding/json"

// Edge is one directed relationship between two notes in the global graph.
type Edge struct {
	ID     string  `json:"id"`
	Source string  `json:"source"`
	Target string  `json:"target"`
	Label  *string `json:"label,omitempty"`
}

// Graph is the single process-wide relationship record. Nodes maps note ids
// to opaque position/metadata values; Edges is the ordered edge set.
// Referential integrity against the note collection is enforced only by the
// delete cascade, never on read.
type Graph struct {
	Nodes map[string]json.RawMessage `json:"nodes"`
	Edges []Edge                     `json:"edges"`
}

// EmptyGraph returns a graph with no nodes and no edges, the default when
// no graph record exists yet.
func EmptyGraph() Graph {
	return Graph{Nodes: map[string]json.RawMessage{}, Edges: []Edge{}}
}

// Prune removes every edge touching the given note id and the node entry
// keyed by it. Reports whether anything changed.
func (g *Graph) Prune(noteID string) bool {
	changed := false
	if _, ok := g.Nodes[noteID]; ok {
		delete(g.Nodes, noteID)
		changed = true
	}
	kept := g.Edges[:0]
	for _, e := range g.Edges {
		if e.Source == noteID || e.Target == noteID {
			changed = true
			continue
		}
		kept = append(kept, e)
	}
	g.Edges = kept
	return changed
}

// Canvas is the per-note diagram document. Nodes and Edges are opaque to
// the store; there are no cross-references between canvases.
type Canvas struct {
	Nodes json.RawMessage `json:"nodes"`
	Edges json.RawMessage `json:"edges"`
}

// EmptyCanvas returns the default canvas for a note without one on disk.
func EmptyCanvas() Canvas {
	return Canvas{
		Nodes: json.RawMessage(`[]`),
		Edges: json.RawMessage(`[]`),
	}
}
