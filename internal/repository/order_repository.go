package repository

import (
	"context"

	"order-fulfillment/internal/domain"
)

// OrderRepository persists the Order aggregate. It enforces no business
// rules; transition checks happen in the service layer.
type OrderRepository interface {
	Insert(ctx context.Context, order *domain.Order) error
	// FindByID returns (nil, nil) when the order does not exist.
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	// FindByOwner returns the owner's orders, newest first.
	FindByOwner(ctx context.Context, ownerID string) ([]domain.Order, error)
	// FindAll returns every order, newest first.
	FindAll(ctx context.Context) ([]domain.Order, error)
	// UpdateIfStatus writes the order's status/payment/delivery fields only
	// if the stored status still equals from. Returns false when another
	// writer got there first.
	UpdateIfStatus(ctx context.Context, order *domain.Order, from domain.OrderStatus) (bool, error)
}
