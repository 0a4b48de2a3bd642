package session

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	ident     Identity
	expiresAt time.Time
}

// MemoryBackend keeps sessions in-process. Entries expire lazily on load;
// suitable for a single server, which is the default deployment.
type MemoryBackend struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{entries: make(map[string]memoryEntry)}
}

func (b *MemoryBackend) Load(_ context.Context, id string) (*Identity, error) {
	b.mu.RLock()
	entry, ok := b.entries[id]
	b.mu.RUnlock()
	if !ok {
		return nil, ErrNoSession
	}
	if time.Now().After(entry.expiresAt) {
		b.mu.Lock()
		delete(b.entries, id)
		b.mu.Unlock()
		return nil, ErrNoSession
	}
	ident := entry.ident
	return &ident, nil
}

func (b *MemoryBackend) Save(_ context.Context, id string, ident *Identity, ttl time.Duration) error {
	b.mu.Lock()
	b.entries[id] = memoryEntry{ident: *ident, expiresAt: time.Now().Add(ttl)}
	b.mu.Unlock()
	return nil
}

func (b *MemoryBackend) Delete(_ context.Context, id string) error {
	b.mu.Lock()
	delete(b.entries, id)
	b.mu.Unlock()
	return nil
}
