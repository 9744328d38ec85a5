package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrice(t *testing.T) {
	tests := []struct {
		name         string
		items        []LineItem
		wantSubtotal int64
		wantTax      int64
		wantShipping int64
		wantTotal    int64
	}{
		{
			name:         "subtotal at free-shipping threshold",
			items:        []LineItem{{ProductID: 1, UnitPrice: 10000, Quantity: 1}},
			wantSubtotal: 10000,
			wantTax:      1800,
			wantShipping: 0,
			wantTotal:    11800,
		},
		{
			name:         "subtotal below threshold pays flat shipping",
			items:        []LineItem{{ProductID: 1, UnitPrice: 5000, Quantity: 1}},
			wantSubtotal: 5000,
			wantTax:      900,
			wantShipping: 2500,
			wantTotal:    8400,
		},
		{
			name: "two items priced 20x2 and 30x1",
			items: []LineItem{
				{ProductID: 1, UnitPrice: 2000, Quantity: 2},
				{ProductID: 2, UnitPrice: 3000, Quantity: 1},
			},
			wantSubtotal: 7000,
			wantTax:      1260,
			wantShipping: 2500,
			wantTotal:    10760,
		},
		{
			name:         "tax rounds half-up to the cent",
			items:        []LineItem{{ProductID: 1, UnitPrice: 3, Quantity: 1}},
			wantSubtotal: 3,
			wantTax:      1, // 0.54 cents rounds to 1
			wantShipping: 2500,
			wantTotal:    2504,
		},
		{
			name:         "just above threshold ships free",
			items:        []LineItem{{ProductID: 1, UnitPrice: 10001, Quantity: 1}},
			wantSubtotal: 10001,
			wantTax:      1800,
			wantShipping: 0,
			wantTotal:    11801,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := Price(tt.items)

			assert.Equal(t, tt.wantSubtotal, q.Subtotal)
			assert.Equal(t, tt.wantTax, q.Tax)
			assert.Equal(t, tt.wantShipping, q.Shipping)
			assert.Equal(t, tt.wantTotal, q.Total)
			assert.Equal(t, q.Subtotal+q.Tax+q.Shipping, q.Total)
		})
	}
}

func TestPriceIsDeterministic(t *testing.T) {
	items := []LineItem{
		{ProductID: 1, UnitPrice: 1999, Quantity: 3},
		{ProductID: 2, UnitPrice: 450, Quantity: 7},
	}

	first := Price(items)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Price(items))
	}
}
