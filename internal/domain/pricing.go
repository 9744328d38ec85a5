package domain

// Pricing constants, in cents. Shipping is waived at or above the
// free-shipping threshold; tax is a flat 18% of the subtotal.
const (
	TaxRatePercent        = 18
	FreeShippingThreshold = 10000
	FlatShippingRate      = 2500
)

type Quote struct {
	Subtotal int64 `json:"subtotal"`
	Tax      int64 `json:"taxAmount"`
	Shipping int64 `json:"shippingAmount"`
	Total    int64 `json:"totalAmount"`
}

// Price computes the order totals from line-item snapshots. Pure: no I/O,
// no side effects. Tax is rounded half-up to the cent.
func Price(items []LineItem) Quote {
	var subtotal int64
	for _, it := range items {
		subtotal += it.UnitPrice * it.Quantity
	}

	tax := (subtotal*TaxRatePercent + 50) / 100

	var shipping int64
	if subtotal < FreeShippingThreshold {
		shipping = FlatShippingRate
	}

	return Quote{
		Subtotal: subtotal,
		Tax:      tax,
		Shipping: shipping,
		Total:    subtotal + tax + shipping,
	}
}
