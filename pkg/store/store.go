// Package store persists property-tree documents. A Store moves one whole
// backing dictionary at a time; it knows nothing about the tree that owns it.
package store

import "time"

// Meta is storage-owned metadata stamped on every save, used for trace/audit.
type Meta struct {
	SnapshotID string    `json:"snapshot_id,omitempty"`
	UpdatedAt  time.Time `json:"updated_at,omitempty"`
}

// Store loads and saves one document keyed by filename.
//
// Load reports ok=false with a nil error when the document does not exist;
// every other failure is returned as a non-nil error. Save overwrites whatever
// is already stored under filename and returns the metadata it recorded.
type Store interface {
	Load(filename string) (document map[string]any, meta Meta, ok bool, err error)
	Save(filename string, document map[string]any, meta Meta) (Meta, error)
}
