package theme

import (
	"sync"

	"github.com/oklog/ulid/v2"
)

// registry maps theme handles stored in the toolkit's user-data slot back to
// their managers.
var registry = struct {
	mu       sync.RWMutex
	managers map[ulid.ULID]*Manager
}{managers: make(map[ulid.ULID]*Manager)}

func register(h ulid.ULID, m *Manager) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.managers[h] = m
}

func unregister(h ulid.ULID) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	delete(registry.managers, h)
}

// lookup resolves a user-data value to its manager.
func lookup(userData any) (*Manager, bool) {
	h, ok := userData.(ulid.ULID)
	if !ok {
		return nil, false
	}
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	m, ok := registry.managers[h]
	return m, ok
}
