package store

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore is a minimal in-memory Store intended for tests and examples.
// It keys records by filename and makes no persistence assumptions. Documents
// are deep-copied on both load and save so callers never alias stored state.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]memoryRecord
}

type memoryRecord struct {
	document map[string]any
	meta     Meta
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: map[string]memoryRecord{}}
}

func (s *MemoryStore) Load(filename string) (map[string]any, Meta, bool, error) {
	s.mu.RLock()
	record, ok := s.records[filename]
	s.mu.RUnlock()
	if !ok {
		return nil, Meta{}, false, nil
	}
	return cloneDocument(record.document), record.meta, true, nil
}

func (s *MemoryStore) Save(filename string, document map[string]any, meta Meta) (Meta, error) {
	if meta.SnapshotID == "" {
		meta.SnapshotID = uuid.NewString()
	}
	if meta.UpdatedAt.IsZero() {
		meta.UpdatedAt = time.Now()
	}

	s.mu.Lock()
	s.records[filename] = memoryRecord{document: cloneDocument(document), meta: meta}
	s.mu.Unlock()
	return meta, nil
}

func cloneDocument(document map[string]any) map[string]any {
	if document == nil {
		return map[string]any{}
	}
	out := make(map[string]any, len(document))
	for key, value := range document {
		out[key] = cloneValue(value)
	}
	return out
}

func cloneValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		return cloneDocument(v)
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = cloneValue(item)
		}
		return out
	default:
		return v
	}
}
