package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"sync"
)

// Store caches external-generator responses. Implementations must tolerate
// concurrent use; duplicate in-flight requests for the same key are not
// deduplicated (an accepted cost, not a correctness issue).
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, payload []byte) error
}

const fingerprintPrefix = 128

// Key builds the composite cache key: kind, scope id and a fingerprint of the
// transcript prefix.
func Key(kind, scopeID, transcript string) string {
	if len(transcript) > fingerprintPrefix {
		transcript = transcript[:fingerprintPrefix]
	}
	sum := sha256.Sum256([]byte(transcript))
	return kind + ":" + scopeID + ":" + hex.EncodeToString(sum[:8])
}

// Memory is the in-process store. Unlike the single-threaded UI runtime this
// design came from, fiber handlers run concurrently, so access is guarded.
type Memory struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{entries: make(map[string][]byte)}
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	payload, ok := m.entries[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(payload))
	copy(out, payload)
	return out, true, nil
}

func (m *Memory) Set(_ context.Context, key string, payload []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := make([]byte, len(payload))
	copy(stored, payload)
	m.entries[key] = stored
	return nil
}

// Layered reads stores in order and backfills earlier layers on a hit; Set
// writes through every layer. Used to put the in-memory store in front of the
// database-backed one.
type Layered struct {
	stores []Store
}

func NewLayered(stores ...Store) *Layered {
	return &Layered{stores: stores}
}

func (l *Layered) Get(ctx context.Context, key string) ([]byte, bool, error) {
	for i, s := range l.stores {
		payload, ok, err := s.Get(ctx, key)
		if err != nil {
			return nil, false, err
		}
		if !ok {
			continue
		}
		for j := 0; j < i; j++ {
			_ = l.stores[j].Set(ctx, key, payload)
		}
		return payload, true, nil
	}
	return nil, false, nil
}

func (l *Layered) Set(ctx context.Context, key string, payload []byte) error {
	for _, s := range l.stores {
		if err := s.Set(ctx, key, payload); err != nil {
			return err
		}
	}
	return nil
}
