package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"order-fulfillment/internal/catalog"
	"order-fulfillment/internal/domain"
)

// InventoryReservation commits stock decrements for a validated order,
// all-or-nothing. Each per-product decrement is conditional in the store;
// validation success is no guarantee here, since a concurrent order may
// have consumed the stock in between.
type InventoryReservation struct {
	catalog catalog.Store
}

func NewInventoryReservation(store catalog.Store) *InventoryReservation {
	return &InventoryReservation{catalog: store}
}

// Reserve decrements stock for every line item. On the first failed
// decrement it restores the ones already applied, in reverse order, and
// returns ErrStockConflict.
func (r *InventoryReservation) Reserve(ctx context.Context, items []domain.LineItem) error {
	for i, it := range items {
		if err := r.catalog.DecrementStock(ctx, it.ProductID, it.Quantity); err != nil {
			r.Release(ctx, items[:i])
			if errors.Is(err, domain.ErrStockConflict) {
				return fmt.Errorf("%w: %s", domain.ErrStockConflict, it.Name)
			}
			return err
		}
	}
	return nil
}

// Release restores previously reserved stock, newest decrement first.
// A failed restore is logged; there is no caller that could do better.
func (r *InventoryReservation) Release(ctx context.Context, items []domain.LineItem) {
	for i := len(items) - 1; i >= 0; i-- {
		it := items[i]
		if err := r.catalog.RestoreStock(ctx, it.ProductID, it.Quantity); err != nil {
			slog.Error("failed to restore reserved stock",
				"productId", it.ProductID, "quantity", it.Quantity, "error", err)
		}
	}
}
