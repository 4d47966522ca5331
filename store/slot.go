package store

import (
	"context"
	"sync"
)

// Slot is the durable key/value substrate the store persists its collection to.
type Slot interface {
	// Read returns the bytes stored under key; ok is false when nothing is stored.
	Read(ctx context.Context, key string) (data []byte, ok bool, err error)
	Write(ctx context.Context, key string, data []byte) error
	Close(ctx context.Context) error
}

// MemorySlot keeps values in process memory. Useful for tests and throwaway runs.
type MemorySlot struct {
	mu     sync.Mutex
	values map[string][]byte
	writes int
}

func NewMemorySlot() *MemorySlot {
	return &MemorySlot{values: make(map[string][]byte)}
}

func (m *MemorySlot) Read(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, ok := m.values[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

func (m *MemorySlot) Write(_ context.Context, key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[key] = append([]byte(nil), data...)
	m.writes++
	return nil
}

// WriteCount returns how many writes the slot has accepted.
func (m *MemorySlot) WriteCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}

func (m *MemorySlot) Close(context.Context) error {
	return nil
}
