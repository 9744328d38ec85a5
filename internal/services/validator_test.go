package services

import (
	"context"
	"errors"
	"testing"

	"order-fulfillment/internal/domain"
	"order-fulfillment/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestOrderValidator(t *testing.T) {
	tests := []struct {
		name       string
		reqs       []LineItemRequest
		setupMocks func(*mocks.MockCatalogStore)
		wantErr    error
		wantItems  int
	}{
		{
			name:       "empty order fails before any lookup",
			reqs:       nil,
			setupMocks: func(m *mocks.MockCatalogStore) {},
			wantErr:    domain.ErrEmptyOrder,
		},
		{
			name:       "quantity below one",
			reqs:       []LineItemRequest{{ProductID: 1, Quantity: 0}},
			setupMocks: func(m *mocks.MockCatalogStore) {},
			wantErr:    domain.ErrInvalidQuantity,
		},
		{
			name: "unknown product",
			reqs: []LineItemRequest{{ProductID: 99, Quantity: 1}},
			setupMocks: func(m *mocks.MockCatalogStore) {
				m.On("FindByID", mock.Anything, uint64(99)).Return(nil, nil)
			},
			wantErr: domain.ErrProductNotFound,
		},
		{
			name: "inactive product counts as not found",
			reqs: []LineItemRequest{{ProductID: 1, Quantity: 1}},
			setupMocks: func(m *mocks.MockCatalogStore) {
				p := testProduct(1, "Widget", 2000, 5)
				p.IsActive = false
				m.On("FindByID", mock.Anything, uint64(1)).Return(p, nil)
			},
			wantErr: domain.ErrProductNotFound,
		},
		{
			name: "insufficient stock",
			reqs: []LineItemRequest{{ProductID: 1, Quantity: 6}},
			setupMocks: func(m *mocks.MockCatalogStore) {
				m.On("FindByID", mock.Anything, uint64(1)).Return(testProduct(1, "Widget", 2000, 5), nil)
			},
			wantErr: domain.ErrInsufficientStock,
		},
		{
			name: "fail-fast stops at first bad line",
			reqs: []LineItemRequest{
				{ProductID: 1, Quantity: 1},
				{ProductID: 99, Quantity: 1},
				{ProductID: 2, Quantity: 1},
			},
			setupMocks: func(m *mocks.MockCatalogStore) {
				m.On("FindByID", mock.Anything, uint64(1)).Return(testProduct(1, "Widget", 2000, 5), nil)
				m.On("FindByID", mock.Anything, uint64(99)).Return(nil, nil)
			},
			wantErr: domain.ErrProductNotFound,
		},
		{
			name: "snapshots keep submission order",
			reqs: []LineItemRequest{
				{ProductID: 2, Quantity: 1},
				{ProductID: 1, Quantity: 2},
			},
			setupMocks: func(m *mocks.MockCatalogStore) {
				m.On("FindByID", mock.Anything, uint64(2)).Return(testProduct(2, "Gadget", 3000, 5), nil)
				m.On("FindByID", mock.Anything, uint64(1)).Return(testProduct(1, "Widget", 2000, 5), nil)
			},
			wantItems: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockCatalog := new(mocks.MockCatalogStore)
			tt.setupMocks(mockCatalog)

			v := NewOrderValidator(mockCatalog)
			items, err := v.Validate(context.Background(), tt.reqs)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, items)
			} else {
				assert.NoError(t, err)
				assert.Len(t, items, tt.wantItems)
			}
			mockCatalog.AssertExpectations(t)
		})
	}
}

func TestOrderValidatorSnapshotFields(t *testing.T) {
	mockCatalog := new(mocks.MockCatalogStore)
	mockCatalog.On("FindByID", mock.Anything, uint64(2)).Return(testProduct(2, "Gadget", 3000, 5), nil)
	mockCatalog.On("FindByID", mock.Anything, uint64(1)).Return(testProduct(1, "Widget", 2000, 5), nil)

	v := NewOrderValidator(mockCatalog)
	items, err := v.Validate(context.Background(), []LineItemRequest{
		{ProductID: 2, Quantity: 1},
		{ProductID: 1, Quantity: 2},
	})

	assert.NoError(t, err)
	assert.Equal(t, []domain.LineItem{
		{ProductID: 2, Name: "Gadget", Image: "/images/Gadget.jpg", UnitPrice: 3000, Quantity: 1},
		{ProductID: 1, Name: "Widget", Image: "/images/Widget.jpg", UnitPrice: 2000, Quantity: 2},
	}, items)
}

func TestOrderValidatorCatalogError(t *testing.T) {
	mockCatalog := new(mocks.MockCatalogStore)
	mockCatalog.On("FindByID", mock.Anything, uint64(1)).Return(nil, errors.New("connection refused"))

	v := NewOrderValidator(mockCatalog)
	_, err := v.Validate(context.Background(), []LineItemRequest{{ProductID: 1, Quantity: 1}})

	assert.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrProductNotFound)
}
