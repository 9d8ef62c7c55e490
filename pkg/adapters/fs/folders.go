package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/aretw0/mulch/pkg/core"
)

// folderStore persists the whole folder forest as one JSON document.
type folderStore struct {
	st *Store
}

// List returns the folder list, empty if no document exists yet.
func (fs *folderStore) List(ctx context.Context) ([]core.Folder, error) {
	data, err := os.ReadFile(fs.st.foldersFile())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read folders: %w", err)
	}

	var folders []core.Folder
	if err := json.Unmarshal(data, &folders); err != nil {
		return nil, fmt.Errorf("failed to parse folders.json: %w", err)
	}
	return folders, nil
}

// SaveAll overwrites the folder list wholesale.
func (fs *folderStore) SaveAll(ctx context.Context, folders []core.Folder) error {
	if folders == nil {
		folders = []core.Folder{}
	}
	data, err := json.MarshalIndent(folders, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize folders: %w", err)
	}
	return fs.st.writeFile(fs.st.foldersFile(), data)
}
