package services

import (
	"context"
	"fmt"

	"order-fulfillment/internal/catalog"
	"order-fulfillment/internal/domain"
)

// LineItemRequest is a raw cart line as submitted by the client.
type LineItemRequest struct {
	ProductID uint64
	Quantity  int64
}

// OrderValidator checks requested lines against the catalog and produces
// priced snapshots. Fail-fast: the first bad line aborts the whole
// validation and no catalog state is touched.
type OrderValidator struct {
	catalog catalog.Reader
}

func NewOrderValidator(reader catalog.Reader) *OrderValidator {
	return &OrderValidator{catalog: reader}
}

func (v *OrderValidator) Validate(ctx context.Context, reqs []LineItemRequest) ([]domain.LineItem, error) {
	if len(reqs) == 0 {
		return nil, domain.ErrEmptyOrder
	}

	items := make([]domain.LineItem, 0, len(reqs))
	for _, r := range reqs {
		if r.Quantity < 1 {
			return nil, fmt.Errorf("%w: product %d", domain.ErrInvalidQuantity, r.ProductID)
		}

		p, err := v.catalog.FindByID(ctx, r.ProductID)
		if err != nil {
			return nil, fmt.Errorf("catalog lookup for product %d: %w", r.ProductID, err)
		}
		if p == nil || !p.IsActive {
			return nil, fmt.Errorf("%w: product %d", domain.ErrProductNotFound, r.ProductID)
		}
		if r.Quantity > p.Stock {
			return nil, fmt.Errorf("%w: %s", domain.ErrInsufficientStock, p.Name)
		}

		items = append(items, domain.LineItem{
			ProductID: p.ID,
			Name:      p.Name,
			Image:     p.Image,
			UnitPrice: p.Price,
			Quantity:  r.Quantity,
		})
	}

	return items, nil
}
