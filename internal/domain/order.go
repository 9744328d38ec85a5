package domain

import "time"

// LineItem is a snapshot of one product taken at order-creation time.
// Prices are in cents; later catalog changes never flow back into it.
type LineItem struct {
	ProductID uint64 `json:"productId"`
	Name      string `json:"name"`
	Image     string `json:"image"`
	UnitPrice int64  `json:"unitPrice"`
	Quantity  int64  `json:"quantity"`
}

type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
}

type Order struct {
	ID              string      `json:"id" gorm:"primaryKey;size:36"`
	OwnerID         string      `json:"ownerId" gorm:"not null;index;size:64"`
	Items           []LineItem  `json:"items" gorm:"serializer:json;not null"`
	ShippingAddress Address     `json:"shippingAddress" gorm:"serializer:json"`
	PaymentMethod   string      `json:"paymentMethod" gorm:"size:64"`
	Subtotal        int64       `json:"subtotal" gorm:"not null"`
	TaxAmount       int64       `json:"taxAmount" gorm:"not null"`
	ShippingAmount  int64       `json:"shippingAmount" gorm:"not null"`
	TotalAmount     int64       `json:"totalAmount" gorm:"not null"`
	Status          OrderStatus `json:"status" gorm:"size:16;not null;default:'pending';index"`
	IsPaid          bool        `json:"isPaid" gorm:"not null;default:false"`
	PaidAt          *time.Time  `json:"paidAt"`
	IsDelivered     bool        `json:"isDelivered" gorm:"not null;default:false"`
	DeliveredAt     *time.Time  `json:"deliveredAt"`
	CreatedAt       time.Time   `json:"createdAt" gorm:"index"`
	UpdatedAt       time.Time   `json:"updatedAt"`
}
