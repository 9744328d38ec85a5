package http

type OrderItemRequest struct {
	Product uint64 `json:"product" binding:"required"`
	Qty     int64  `json:"qty" binding:"required,min=1"`
}

type AddressRequest struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
}

type CreateOrderRequest struct {
	Items           []OrderItemRequest `json:"items" binding:"required,dive"`
	ShippingAddress AddressRequest     `json:"shippingAddress"`
	PaymentMethod   string             `json:"paymentMethod"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
