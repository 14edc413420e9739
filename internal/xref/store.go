// Package xref holds the cross-reference mappings a lookup populates
// opportunistically: ISBN to vendor identifier, and vendor identifier to
// cover URL. Entries are idempotent facts, so last-writer-wins is fine and
// no invalidation happens within a lookup.
package xref

import "sync"

// Store is the cache collaborator consulted and updated by fetch tasks and
// the cover workflow. Implementations must be safe for concurrent use.
type Store interface {
	// IdentifierForISBN resolves an ISBN to a vendor identifier.
	IdentifierForISBN(isbn string) (string, bool)
	// SetIdentifierForISBN records an ISBN to vendor identifier mapping.
	SetIdentifierForISBN(isbn, id string)
	// CoverURLForIdentifier resolves a vendor identifier to a cover URL.
	CoverURLForIdentifier(id string) (string, bool)
	// SetCoverURLForIdentifier records a vendor identifier to cover URL mapping.
	SetCoverURLForIdentifier(id, url string)
}

// MemoryStore is an in-process Store backed by maps.
type MemoryStore struct {
	mu     sync.RWMutex
	isbns  map[string]string
	covers map[string]string
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		isbns:  make(map[string]string),
		covers: make(map[string]string),
	}
}

func (s *MemoryStore) IdentifierForISBN(isbn string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.isbns[isbn]
	return id, ok
}

func (s *MemoryStore) SetIdentifierForISBN(isbn, id string) {
	if isbn == "" || id == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isbns[isbn] = id
}

func (s *MemoryStore) CoverURLForIdentifier(id string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	url, ok := s.covers[id]
	return url, ok
}

func (s *MemoryStore) SetCoverURLForIdentifier(id, url string) {
	if id == "" || url == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.covers[id] = url
}
