package server

import (
	"sync"
	"time"

	"github.com/gaurav-prasanna/deckparse/core"
)

// Document is one imported document held for the current session.
type Document struct {
	ID         string               `json:"id"`
	ImportedAt time.Time            `json:"imported_at"`
	Result     *core.AnalysisResult `json:"result"`
}

// Store is a thread-safe in-memory document registry. Nothing is persisted
// beyond the process lifetime; imported documents belong to the session.
type Store struct {
	mu    sync.Mutex
	docs  map[string]*Document
	order []string // insertion order for stable listings
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{docs: make(map[string]*Document)}
}

// Put registers a document.
func (s *Store) Put(doc *Document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.docs[doc.ID]; !ok {
		s.order = append(s.order, doc.ID)
	}
	s.docs[doc.ID] = doc
}

// Get returns a document by id, or nil.
func (s *Store) Get(id string) *Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.docs[id]
}

// Delete removes a document. Returns false if it wasn't present.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.docs[id]; !ok {
		return false
	}
	delete(s.docs, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// List returns all documents in import order.
func (s *Store) List() []*Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*Document, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.docs[id])
	}
	return out
}
