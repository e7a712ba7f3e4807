// Package record provides a central registry for declared record types.
package record

import (
	"fmt"
	"sync"
)

var globalRegistry = &registry{
	byTable: make(map[string]*RecordType),
}

// registry maintains the mapping from table names to declared record types.
// It enforces the invariant that a table name belongs to exactly one type.
type registry struct {
	mu      sync.RWMutex
	byTable map[string]*RecordType
}

func register(t *RecordType) error {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()

	if existing, ok := globalRegistry.byTable[t.table]; ok && existing != t {
		return fmt.Errorf("table %q already declared", t.table)
	}
	globalRegistry.byTable[t.table] = t
	return nil
}

// Lookup retrieves a declared record type by table name.
func Lookup(table string) (*RecordType, bool) {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	t, ok := globalRegistry.byTable[table]
	return t, ok
}

// RegisteredTypes returns all declared record types.
func RegisteredTypes() []*RecordType {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	result := make([]*RecordType, 0, len(globalRegistry.byTable))
	for _, t := range globalRegistry.byTable {
		result = append(result, t)
	}
	return result
}

// ClearRegistry resets the global registry, removing all declared types.
// This is primarily used for testing purposes.
func ClearRegistry() {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	globalRegistry.byTable = make(map[string]*RecordType)
}
