package symbols

import (
	"context"
	"log/slog"
	"maps"
	"sync"
)

type MemoryTable struct {
	lock    sync.RWMutex
	entries map[string]string
}

func NewMemoryTable() *MemoryTable {
	return &MemoryTable{
		entries: make(map[string]string),
	}
}

func (t *MemoryTable) Assign(ctx context.Context, name, value string) error {
	t.lock.Lock()
	defer t.lock.Unlock()

	t.entries[name] = value
	slog.Debug("Symbol assigned", "name", name, "value", value)
	return nil
}

func (t *MemoryTable) Lookup(ctx context.Context, name string) (string, bool, error) {
	t.lock.RLock()
	defer t.lock.RUnlock()

	v, ok := t.entries[name]
	return v, ok, nil
}

// Snapshot returns a copy; later assignments do not show up in it.
func (t *MemoryTable) Snapshot(ctx context.Context) (map[string]string, error) {
	t.lock.RLock()
	defer t.lock.RUnlock()

	return maps.Clone(t.entries), nil
}

func (t *MemoryTable) Reset(ctx context.Context) error {
	t.lock.Lock()
	defer t.lock.Unlock()

	clear(t.entries)
	return nil
}

func (t *MemoryTable) Len() int {
	t.lock.RLock()
	defer t.lock.RUnlock()

	return len(t.entries)
}
