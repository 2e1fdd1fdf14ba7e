package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
)

// FileStore persists documents as UTF-8 JSON files: a single object at the
// top level, 2-space indentation, non-ASCII characters emitted literally.
// Saves are plain overwrites with no atomic-rename or backup step, so a crash
// mid-write can leave a truncated file behind.
type FileStore struct{}

// NewFileStore constructs a FileStore.
func NewFileStore() *FileStore {
	return &FileStore{}
}

// Load reads and decodes the file at filename. A missing file reports
// ok=false with a nil error; content whose top level is not a JSON object is
// a decode error with the original cause preserved.
func (s *FileStore) Load(filename string) (map[string]any, Meta, bool, error) {
	raw, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, Meta{}, false, nil
		}
		return nil, Meta{}, false, fmt.Errorf("store: read %s: %w", filename, err)
	}

	var document map[string]any
	if err := json.Unmarshal(raw, &document); err != nil {
		return nil, Meta{}, false, fmt.Errorf("store: decode %s: %w", filename, err)
	}
	return document, Meta{UpdatedAt: modTime(filename)}, true, nil
}

// Save encodes document and overwrites filename. Missing metadata fields are
// stamped: SnapshotID with a fresh uuid, UpdatedAt with the current time.
func (s *FileStore) Save(filename string, document map[string]any, meta Meta) (Meta, error) {
	if document == nil {
		document = map[string]any{}
	}
	if meta.SnapshotID == "" {
		meta.SnapshotID = uuid.NewString()
	}
	if meta.UpdatedAt.IsZero() {
		meta.UpdatedAt = time.Now()
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(document); err != nil {
		return Meta{}, fmt.Errorf("store: encode %s: %w", filename, err)
	}
	if err := os.WriteFile(filename, buf.Bytes(), 0o644); err != nil {
		return Meta{}, fmt.Errorf("store: write %s: %w", filename, err)
	}
	return meta, nil
}

func modTime(filename string) time.Time {
	info, err := os.Stat(filename)
	if err != nil {
		return time.Time{}
	}
	return info.ModTime()
}
