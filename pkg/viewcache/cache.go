package viewcache

import (
	"context"
	"sync"
	"time"

	"github.com/stagecrew/stagekit/pkg/role"
)

// DefaultTTL is how long a cached view configuration stays fresh.
const DefaultTTL = 5 * time.Minute

// Cache memoizes role view configurations per (user, show, role). Staleness
// up to the TTL window is an accepted tradeoff, not a bug; a read past the
// deadline is simply a miss.
type Cache interface {
	Get(ctx context.Context, key Key) (role.ViewConfig, bool)
	Set(ctx context.Context, key Key, cfg role.ViewConfig)
	Clear(ctx context.Context)
	Size(ctx context.Context) int
}

type memoryEntry struct {
	cfg      role.ViewConfig
	deadline time.Time
}

// Memory is the in-process Cache backend. Eviction is lazy: expired entries
// are dropped when read, never swept proactively.
type Memory struct {
	mu      sync.Mutex
	entries map[Key]memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewMemory creates an in-memory cache. A non-positive ttl falls back to
// DefaultTTL.
func NewMemory(ttl time.Duration) *Memory {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Memory{
		entries: make(map[Key]memoryEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (m *Memory) Get(ctx context.Context, key Key) (role.ViewConfig, bool) {
	key = key.normalized()

	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.entries[key]
	if !ok {
		return role.ViewConfig{}, false
	}
	if m.now().After(entry.deadline) {
		delete(m.entries, key)
		return role.ViewConfig{}, false
	}
	return entry.cfg, true
}

func (m *Memory) Set(ctx context.Context, key Key, cfg role.ViewConfig) {
	key = key.normalized()

	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[key] = memoryEntry{cfg: cfg, deadline: m.now().Add(m.ttl)}
}

func (m *Memory) Clear(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries = make(map[Key]memoryEntry)
}

// Size counts entries including any not yet lazily evicted.
func (m *Memory) Size(ctx context.Context) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.entries)
}
