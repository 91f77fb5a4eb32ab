package store

import (
	"context"
	"sync"

	"crmbackend/internal/models"
)

// MemoryStore keeps each user's products in an ordered slice guarded by a
// single lock. State lives for the process lifetime only.
type MemoryStore struct {
	mu       sync.RWMutex
	products map[int][]models.Product
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{products: make(map[int][]models.Product)}
}

func (s *MemoryStore) List(ctx context.Context, userID int) ([]models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Product, len(s.products[userID]))
	copy(out, s.products[userID])
	return out, nil
}

func (s *MemoryStore) Get(ctx context.Context, userID int, id string) (models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products[userID] {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, ErrNotFound
}

func (s *MemoryStore) Create(ctx context.Context, userID int, p models.Product) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.UserID = userID
	s.products[userID] = append(s.products[userID], p)
	return p, nil
}

func (s *MemoryStore) Update(ctx context.Context, userID int, id string, p models.Product) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.products[userID]
	for i, existing := range list {
		if existing.ID == id {
			p.ID = existing.ID
			p.UserID = userID
			p.CreatedAt = existing.CreatedAt
			list[i] = p
			return p, nil
		}
	}
	return models.Product{}, ErrNotFound
}

func (s *MemoryStore) Delete(ctx context.Context, userID int, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.products[userID]
	for i, p := range list {
		if p.ID == id {
			s.products[userID] = append(list[:i], list[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (s *MemoryStore) BulkDelete(ctx context.Context, userID int, ids []string) (int, error) {
	drop := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.products[userID]
	kept := list[:0]
	removed := 0
	for _, p := range list {
		if _, ok := drop[p.ID]; ok {
			removed++
			continue
		}
		kept = append(kept, p)
	}
	s.products[userID] = kept
	return removed, nil
}

func (s *MemoryStore) Statistics(ctx context.Context, userID int) (models.Statistics, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return models.ComputeStatistics(s.products[userID]), nil
}
