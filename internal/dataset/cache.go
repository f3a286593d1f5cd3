// internal/dataset/cache.go
package dataset

import "sync"

// Cache memoizes loaded tables by source path. A table loaded once stays
// cached for the process lifetime; failed loads are not cached.
type Cache struct {
	mutex  sync.Mutex
	tables map[string]*Table
}

// NewCache creates an empty table cache.
func NewCache() *Cache {
	return &Cache{tables: make(map[string]*Table)}
}

// Load returns the cached table for path, loading it on first use.
func (c *Cache) Load(path string, schema Schema) (*Table, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if table, ok := c.tables[path]; ok {
		return table, nil
	}

	table, err := Load(path, schema)
	if err != nil {
		return nil, err
	}
	c.tables[path] = table
	return table, nil
}
