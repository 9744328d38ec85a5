package domain

import "time"

type OrderCreatedEvent struct {
	OrderID     string    `json:"orderId"`
	OwnerID     string    `json:"ownerId"`
	TotalAmount int64     `json:"totalAmount"`
	CreatedAt   time.Time `json:"createdAt"`
}

type OrderPaidEvent struct {
	OrderID string    `json:"orderId"`
	OwnerID string    `json:"ownerId"`
	PaidAt  time.Time `json:"paidAt"`
}

type OrderStatusChangedEvent struct {
	OrderID   string      `json:"orderId"`
	From      OrderStatus `json:"from"`
	To        OrderStatus `json:"to"`
	ChangedAt time.Time   `json:"changedAt"`
}
