package core

import "time"

// Folder is a node in the folder forest. ParentID references another
// folder, or is nil for a top-level folder.
type Folder struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	ParentID  *string   `json:"parentId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Expanded  bool      `json:"expanded"`
}

// FolderPatch carries a partial update for a folder.
// Only Name, ParentID and Expanded are mutable.
type FolderPatch struct {
	Name     Field[string]
	ParentID Field[string]
	Expanded Field[bool]
}
