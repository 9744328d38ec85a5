package catalog

import "context"

// Product is the catalog record consumed by order validation. Price is in
// cents. Stock read through FindByID is advisory only; the conditional
// decrement is the authoritative check.
type Product struct {
	ID       uint64 `json:"id" gorm:"primaryKey"`
	Name     string `json:"name" gorm:"size:100;not null"`
	Image    string `json:"image" gorm:"size:255"`
	Price    int64  `json:"price" gorm:"not null"`
	Stock    int64  `json:"stock" gorm:"not null;default:0"`
	IsActive bool   `json:"isActive" gorm:"not null;default:true"`
}

// Reader is the read side of the catalog. FindByID returns (nil, nil) when
// the product does not exist.
type Reader interface {
	FindByID(ctx context.Context, id uint64) (*Product, error)
}

// Store adds stock mutation. DecrementStock must be conditional: it
// succeeds only if current stock >= qty, atomically, and returns
// domain.ErrStockConflict otherwise. RestoreStock undoes a decrement.
type Store interface {
	Reader
	DecrementStock(ctx context.Context, id uint64, qty int64) error
	RestoreStock(ctx context.Context, id uint64, qty int64) error
}
