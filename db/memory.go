package db

import (
	"context"
	"encoding/json"
	"sync"
)

// MemoryBackend keeps collections in process memory.
type MemoryBackend struct {
	mu          sync.RWMutex
	collections map[string][]json.RawMessage
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{collections: make(map[string][]json.RawMessage)}
}

func (b *MemoryBackend) Load(_ context.Context, name string) ([]json.RawMessage, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return cloneRecords(b.collections[name]), nil
}

func (b *MemoryBackend) Replace(_ context.Context, name string, records []json.RawMessage) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.collections[name] = cloneRecords(records)
	return nil
}

func (b *MemoryBackend) Close(context.Context) error {
	return nil
}

func cloneRecords(in []json.RawMessage) []json.RawMessage {
	out := make([]json.RawMessage, len(in))
	for i, r := range in {
		out[i] = append(json.RawMessage(nil), r...)
	}
	return out
}
