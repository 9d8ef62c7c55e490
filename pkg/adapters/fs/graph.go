package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/aretw0/mulch/pkg/core"
)

// graphStore persists the process-wide relationship graph as graph.json.
type graphStore struct {
	st *Store
}

// Get returns the graph, or an empty one if no record exists.
func (gs *graphStore) Get(ctx context.Context) (core.Graph, error) {
	data, err := os.ReadFile(gs.st.graphFile())
	if err != nil {
		if os.IsNotExist(err) {
			return core.EmptyGraph(), nil
		}
		return core.Graph{}, fmt.Errorf("failed to read graph: %w", err)
	}

	var g core.Graph
	if err := json.Unmarshal(data, &g); err != nil {
		return core.Graph{}, fmt.Errorf("failed to parse graph.json: %w", err)
	}
	if g.Nodes == nil {
		g.Nodes = map[string]json.RawMessage{}
	}
	if g.Edges == nil {
		g.Edges = []core.Edge{}
	}
	return g, nil
}

// Save overwrites the graph wholesale.
func (gs *graphStore) Save(ctx context.Context, g core.Graph) error {
	if g.Nodes == nil {
		g.Nodes = map[string]json.RawMessage{}
	}
	if g.Edges == nil {
		g.Edges = []core.Edge{}
	}
	data, err := json.MarshalIndent(g, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize graph: %w", err)
	}
	return gs.st.writeFile(gs.st.graphFile(), data)
}

// canvasStore persists one diagram document per note under canvas/.
type canvasStore struct {
	st *Store
}

// Get returns the canvas for a note, or an empty one if absent.
func (cs *canvasStore) Get(ctx context.Context, noteID string) (core.Canvas, error) {
	data, err := os.ReadFile(cs.st.canvasPath(noteID))
	if err != nil {
		if os.IsNotExist(err) {
			return core.EmptyCanvas(), nil
		}
		return core.Canvas{}, fmt.Errorf("failed to read canvas %s: %w", noteID, err)
	}

	var c core.Canvas
	if err := json.Unmarshal(data, &c); err != nil {
		return core.Canvas{}, fmt.Errorf("failed to parse canvas %s: %w", noteID, err)
	}
	return c, nil
}

// Save overwrites the canvas wholesale.
func (cs *canvasStore) Save(ctx context.Context, noteID string, c core.Canvas) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize canvas %s: %w", noteID, err)
	}
	return cs.st.writeFile(cs.st.canvasPath(noteID), data)
}

// Delete removes the canvas document if present.
func (cs *canvasStore) Delete(ctx context.Context, noteID string) error {
	if err := os.Remove(cs.st.canvasPath(noteID)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove canvas %s: %w", noteID, err)
	}
	return nil
}
