package services

import (
	"context"
	"testing"

	"order-fulfillment/internal/catalog"
	"order-fulfillment/internal/domain"
	"order-fulfillment/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestReserveAllOrNothing(t *testing.T) {
	store := catalog.NewMemoryStore(
		catalog.Product{ID: 1, Name: "Widget", Stock: 10, IsActive: true},
		catalog.Product{ID: 2, Name: "Gadget", Stock: 1, IsActive: true},
	)
	r := NewInventoryReservation(store)

	items := []domain.LineItem{
		{ProductID: 1, Name: "Widget", Quantity: 4},
		{ProductID: 2, Name: "Gadget", Quantity: 2}, // exceeds stock
	}

	err := r.Reserve(context.Background(), items)
	assert.ErrorIs(t, err, domain.ErrStockConflict)
	assert.Contains(t, err.Error(), "Gadget")

	// the decrement applied for product 1 was reverted
	assert.Equal(t, int64(10), store.Stock(1))
	assert.Equal(t, int64(1), store.Stock(2))
}

func TestReserveCommits(t *testing.T) {
	store := catalog.NewMemoryStore(
		catalog.Product{ID: 1, Stock: 10, IsActive: true},
		catalog.Product{ID: 2, Stock: 3, IsActive: true},
	)
	r := NewInventoryReservation(store)

	err := r.Reserve(context.Background(), []domain.LineItem{
		{ProductID: 1, Quantity: 4},
		{ProductID: 2, Quantity: 3},
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(6), store.Stock(1))
	assert.Equal(t, int64(0), store.Stock(2))
}

func TestReleaseRunsInReverseOrder(t *testing.T) {
	mockCatalog := new(mocks.MockCatalogStore)
	var restored []uint64
	mockCatalog.On("RestoreStock", mock.Anything, mock.Anything, mock.Anything).
		Return(nil).
		Run(func(args mock.Arguments) {
			restored = append(restored, args.Get(1).(uint64))
		})

	r := NewInventoryReservation(mockCatalog)
	r.Release(context.Background(), []domain.LineItem{
		{ProductID: 1, Quantity: 1},
		{ProductID: 2, Quantity: 1},
		{ProductID: 3, Quantity: 1},
	})

	assert.Equal(t, []uint64{3, 2, 1}, restored)
}
