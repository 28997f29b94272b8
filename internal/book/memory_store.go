package book

import (
	"context"
	"fmt"
	"slices"
	"sync"
)

// MemoryStore keeps books in process memory in insertion order.
// It is safe for concurrent use.
type MemoryStore struct {
	mu     sync.RWMutex
	books  map[string]Book
	order  []string
	issued map[string]struct{}
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		books:  make(map[string]Book),
		issued: make(map[string]struct{}),
	}
}

// Insert appends b. Ids that were ever stored, even if since deleted, are rejected.
func (s *MemoryStore) Insert(_ context.Context, b Book) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if b.ID == "" {
		return fmt.Errorf("%w: empty id", ErrInsertFailed)
	}
	if _, seen := s.issued[b.ID]; seen {
		return fmt.Errorf("%w: id %s already issued", ErrInsertFailed, b.ID)
	}

	s.books[b.ID] = b
	s.order = append(s.order, b.ID)
	s.issued[b.ID] = struct{}{}
	return nil
}

func (s *MemoryStore) List(_ context.Context, f Filter) ([]Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Book, 0, len(s.order))
	for _, id := range s.order {
		b := s.books[id]
		if f.Match(b) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.books[id]
	if !ok {
		return Book{}, ErrNotFound
	}
	return b, nil
}

func (s *MemoryStore) Update(_ context.Context, id string, mutate func(*Book) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.books[id]
	if !ok {
		return ErrNotFound
	}
	if err := mutate(&b); err != nil {
		return err
	}
	// id is immutable even if mutate touched it
	b.ID = id
	s.books[id] = b
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.books[id]; !ok {
		return ErrNotFound
	}
	delete(s.books, id)
	if i := slices.Index(s.order, id); i >= 0 {
		s.order = slices.Delete(s.order, i, i+1)
	}
	return nil
}
