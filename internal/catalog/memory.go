package catalog

import (
	"context"
	"sync"

	"order-fulfillment/internal/domain"
)

// MemoryStore keeps the catalog in a mutex-guarded map. The lock makes
// each conditional decrement linearizable, which is all the reservation
// contract needs.
type MemoryStore struct {
	mu       sync.Mutex
	products map[uint64]Product
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore(products ...Product) *MemoryStore {
	s := &MemoryStore{products: make(map[uint64]Product, len(products))}
	for _, p := range products {
		s.products[p.ID] = p
	}
	return s
}

func (s *MemoryStore) FindByID(ctx context.Context, id uint64) (*Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (s *MemoryStore) DecrementStock(ctx context.Context, id uint64, qty int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[id]
	if !ok || p.Stock < qty {
		return domain.ErrStockConflict
	}
	p.Stock -= qty
	s.products[id] = p
	return nil
}

func (s *MemoryStore) RestoreStock(ctx context.Context, id uint64, qty int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[id]
	if !ok {
		return domain.ErrProductNotFound
	}
	p.Stock += qty
	s.products[id] = p
	return nil
}

// Stock reports current stock, for tests and diagnostics.
func (s *MemoryStore) Stock(id uint64) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.products[id].Stock
}
