package services

import (
	"time"

	"order-fulfillment/internal/auth"
	"order-fulfillment/internal/catalog"
	"order-fulfillment/internal/domain"
)

var testClock = func() time.Time {
	return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
}

func testProduct(id uint64, name string, price, stock int64) *catalog.Product {
	return &catalog.Product{
		ID:       id,
		Name:     name,
		Image:    "/images/" + name + ".jpg",
		Price:    price,
		Stock:    stock,
		IsActive: true,
	}
}

func testOrder(id, ownerID string, status domain.OrderStatus) *domain.Order {
	items := []domain.LineItem{{ProductID: 1, Name: "Widget", UnitPrice: 2000, Quantity: 2}}
	quote := domain.Price(items)
	now := testClock()
	return &domain.Order{
		ID:             id,
		OwnerID:        ownerID,
		Items:          items,
		PaymentMethod:  "card",
		Subtotal:       quote.Subtotal,
		TaxAmount:      quote.Tax,
		ShippingAmount: quote.Shipping,
		TotalAmount:    quote.Total,
		Status:         status,
		CreatedAt:      now.Add(-time.Hour),
		UpdatedAt:      now.Add(-time.Hour),
	}
}

var (
	testUser  = auth.Principal{ID: "user-1", Role: auth.RoleUser}
	testOther = auth.Principal{ID: "user-2", Role: auth.RoleUser}
	testAdmin = auth.Principal{ID: "admin-1", Role: auth.RoleAdmin}
)
