package docstore

import (
	"context"
	"maps"
	"sync"
)

// MemoryStore is an in-memory Store used in tests and offline development.
// It supports the same equality-filter semantics as the real adapters and
// can be instructed to fail every call to exercise fail-open paths.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string][]Document
	failWith    error
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string][]Document)}
}

// Seed replaces the documents of a collection.
func (s *MemoryStore) Seed(collection string, docs ...Document) {
	s.mu.Lock()
	defer s.mu.Unlock()

	copies := make([]Document, 0, len(docs))
	for _, d := range docs {
		copies = append(copies, maps.Clone(d))
	}
	s.collections[collection] = copies
}

// Add appends a document to a collection.
func (s *MemoryStore) Add(collection string, doc Document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.collections[collection] = append(s.collections[collection], maps.Clone(doc))
}

// FailWith makes every subsequent call return err. Pass nil to heal.
func (s *MemoryStore) FailWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failWith = err
}

func (s *MemoryStore) GetDocuments(ctx context.Context, collection string, filter map[string]any) ([]Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.failWith != nil {
		return nil, s.failWith
	}

	var out []Document
	for _, doc := range s.collections[collection] {
		if matchesFilter(doc, filter) {
			out = append(out, maps.Clone(doc))
		}
	}
	return out, nil
}

func (s *MemoryStore) GetDocument(ctx context.Context, collection, id string) (Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.failWith != nil {
		return nil, s.failWith
	}

	for _, doc := range s.collections[collection] {
		if doc.ID() == id {
			return maps.Clone(doc), nil
		}
	}
	return nil, ErrNotFound
}

func matchesFilter(doc Document, filter map[string]any) bool {
	for field, want := range filter {
		if doc[field] != want {
			return false
		}
	}
	return true
}
