package mysql

import (
	"context"
	"errors"

	"order-fulfillment/internal/domain"
	"order-fulfillment/internal/repository"

	"gorm.io/gorm"
)

type orderRepo struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepo{db: db}
}

func (r *orderRepo) Insert(ctx context.Context, order *domain.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *orderRepo) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	var o domain.Order
	if err := r.db.WithContext(ctx).First(&o, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &o, nil
}

func (r *orderRepo) FindByOwner(ctx context.Context, ownerID string) ([]domain.Order, error) {
	var out []domain.Order
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

func (r *orderRepo) FindAll(ctx context.Context) ([]domain.Order, error) {
	var out []domain.Order
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&out).Error
	return out, err
}

// UpdateIfStatus is a compare-and-swap on status: the WHERE clause pins the
// expected current value, so racing administrative updates cannot both win.
func (r *orderRepo) UpdateIfStatus(ctx context.Context, order *domain.Order, from domain.OrderStatus) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&domain.Order{}).
		Where("id = ? AND status = ?", order.ID, from).
		Updates(map[string]any{
			"status":       order.Status,
			"is_paid":      order.IsPaid,
			"paid_at":      order.PaidAt,
			"is_delivered": order.IsDelivered,
			"delivered_at": order.DeliveredAt,
			"updated_at":   order.UpdatedAt,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
