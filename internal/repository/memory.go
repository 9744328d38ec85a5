package repository

import (
	"context"
	"sort"
	"sync"

	"order-fulfillment/internal/domain"
)

// MemoryOrderRepository is a mutex-guarded in-memory OrderRepository, used
// in tests and local runs without MySQL.
type MemoryOrderRepository struct {
	mu     sync.RWMutex
	orders map[string]domain.Order
}

var _ OrderRepository = (*MemoryOrderRepository)(nil)

func NewMemoryOrderRepository() *MemoryOrderRepository {
	return &MemoryOrderRepository{orders: make(map[string]domain.Order)}
}

func (r *MemoryOrderRepository) Insert(ctx context.Context, order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[order.ID] = *order
	return nil
}

func (r *MemoryOrderRepository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	return &o, nil
}

func (r *MemoryOrderRepository) FindByOwner(ctx context.Context, ownerID string) ([]domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.Order
	for _, o := range r.orders {
		if o.OwnerID == ownerID {
			out = append(out, o)
		}
	}
	sortNewestFirst(out)
	return out, nil
}

func (r *MemoryOrderRepository) FindAll(ctx context.Context) ([]domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Order, 0, len(r.orders))
	for _, o := range r.orders {
		out = append(out, o)
	}
	sortNewestFirst(out)
	return out, nil
}

func (r *MemoryOrderRepository) UpdateIfStatus(ctx context.Context, order *domain.Order, from domain.OrderStatus) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.orders[order.ID]
	if !ok || stored.Status != from {
		return false, nil
	}
	stored.Status = order.Status
	stored.IsPaid = order.IsPaid
	stored.PaidAt = order.PaidAt
	stored.IsDelivered = order.IsDelivered
	stored.DeliveredAt = order.DeliveredAt
	stored.UpdatedAt = order.UpdatedAt
	r.orders[order.ID] = stored
	return true, nil
}

func sortNewestFirst(orders []domain.Order) {
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
}
