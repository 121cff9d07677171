package mapping

import (
	"fmt"
	"sync"
)

// Persister owns the durable form of the merchant mapping. Load returns the
// whole mapping; Write persists only the changed entries and must replace
// the backing medium atomically.
type Persister interface {
	Load() (map[string]string, error)
	Write(delta map[string]string) error
}

// Store is the in-memory merchant-signature to category mapping with dirty
// tracking: only entries added or changed since the last Load/Flush are
// re-persisted. It is the single source of learned categorization knowledge
// for a run.
type Store struct {
	mu        sync.Mutex
	persister Persister
	entries   map[string]string
	dirty     map[string]struct{}
}

// NewStore creates an empty store over a persister. Call Load before use.
func NewStore(p Persister) *Store {
	return &Store{
		persister: p,
		entries:   make(map[string]string),
		dirty:     make(map[string]struct{}),
	}
}

// Load replaces in-memory state from the durable form and clears the dirty
// set.
func (s *Store) Load() error {
	loaded, err := s.persister.Load()
	if err != nil {
		return fmt.Errorf("loading merchant mappings: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[string]string, len(loaded))
	for sig, cat := range loaded {
		s.entries[sig] = cat
	}
	s.dirty = make(map[string]struct{})
	return nil
}

// Lookup returns the category for a signature.
func (s *Store) Lookup(signature string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cat, ok := s.entries[signature]
	return cat, ok
}

// Set records a signature to category mapping. Overwriting with a different
// category is a correction; re-setting the same value does not mark the
// entry dirty again.
func (s *Store) Set(signature, category string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.entries[signature]; ok && existing == category {
		return
	}
	s.entries[signature] = category
	s.dirty[signature] = struct{}{}
}

// Flush persists dirty entries and clears the dirty set. With nothing dirty
// it performs no write at all; calling it any number of times is safe.
func (s *Store) Flush() error {
	s.mu.Lock()
	delta := make(map[string]string, len(s.dirty))
	for sig := range s.dirty {
		delta[sig] = s.entries[sig]
	}
	s.mu.Unlock()

	if len(delta) == 0 {
		return nil
	}
	if err := s.persister.Write(delta); err != nil {
		return fmt.Errorf("flushing merchant mappings: %w", err)
	}

	s.mu.Lock()
	for sig := range delta {
		delete(s.dirty, sig)
	}
	s.mu.Unlock()
	return nil
}

// Dirty returns a snapshot of the entries pending persistence.
func (s *Store) Dirty() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]string, len(s.dirty))
	for sig := range s.dirty {
		out[sig] = s.entries[sig]
	}
	return out
}

// Len returns the number of known mappings.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// All returns a copy of every known mapping.
func (s *Store) All() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]string, len(s.entries))
	for sig, cat := range s.entries {
		out[sig] = cat
	}
	return out
}
