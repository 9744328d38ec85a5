package mysql

import (
	"context"
	"errors"

	"order-fulfillment/internal/catalog"
	"order-fulfillment/internal/domain"

	"gorm.io/gorm"
)

type catalogStore struct {
	db *gorm.DB
}

func NewCatalogStore(db *gorm.DB) catalog.Store {
	return &catalogStore{db: db}
}

func (s *catalogStore) FindByID(ctx context.Context, id uint64) (*catalog.Product, error) {
	var p catalog.Product
	if err := s.db.WithContext(ctx).First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// DecrementStock is the linearization point of a reservation: a single
// conditional UPDATE, so two racing orders can never both take the last
// units. Zero rows affected means the stock guard failed.
func (s *catalogStore) DecrementStock(ctx context.Context, id uint64, qty int64) error {
	res := s.db.WithContext(ctx).
		Model(&catalog.Product{}).
		Where("id = ? AND stock >= ?", id, qty).
		UpdateColumn("stock", gorm.Expr("stock - ?", qty))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrStockConflict
	}
	return nil
}

func (s *catalogStore) RestoreStock(ctx context.Context, id uint64, qty int64) error {
	res := s.db.WithContext(ctx).
		Model(&catalog.Product{}).
		Where("id = ?", id).
		UpdateColumn("stock", gorm.Expr("stock + ?", qty))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}
