package mysql

import (
	"context"
	"errors"

	"marketplace-service/internal/domain"
	"marketplace-service/internal/repository"

	"gorm.io/gorm"
)

type orderRepo struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepo{db: db}
}

// PlaceOrder writes the order with its item snapshots and removes the
// consumed cart lines inside a single transaction. A failure at any point
// rolls the whole checkout back, so an order can never exist while its
// source lines are still in the cart. Nil lineIDs means a full checkout:
// every line of the cart is deleted, sweeping up lines added concurrently.
func (r *orderRepo) PlaceOrder(ctx context.Context, order *domain.Order, cartID uint, lineIDs []uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		del := tx.Where("cart_id = ?", cartID)
		if lineIDs != nil {
			del = del.Where("id IN ?", lineIDs)
		}
		return del.Delete(&domain.CartItem{}).Error
	})
}

func (r *orderRepo) FindByIDAndUser(ctx context.Context, id uint, userID string) (*domain.Order, error) {
	var o domain.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("id = ? AND user_id = ?", id, userID).
		First(&o).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &o, nil
}

func (r *orderRepo) FindByUser(ctx context.Context, userID string, page, pageSize int) ([]domain.Order, error) {
	var out []domain.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *orderRepo) CountByUser(ctx context.Context, userID string) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&domain.Order{}).
		Where("user_id = ?", userID).
		Count(&total).Error
	return total, err
}
