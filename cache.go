package proptree

import "sync"

// ProgramCache stores compiled expression programs keyed by expression
// strings, letting evaluators skip recompilation of repeated expressions.
type ProgramCache interface {
	Get(key string) (any, bool)
	Set(key string, value any)
}

// MapCache is a ProgramCache backed by a plain map. Safe for concurrent use.
type MapCache struct {
	mu       sync.RWMutex
	programs map[string]any
}

// NewMapCache constructs an empty MapCache.
func NewMapCache() *MapCache {
	return &MapCache{programs: map[string]any{}}
}

func (c *MapCache) Get(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	value, ok := c.programs[key]
	return value, ok
}

func (c *MapCache) Set(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.programs == nil {
		c.programs = map[string]any{}
	}
	c.programs[key] = value
}
