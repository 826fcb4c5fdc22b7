package mysql

import (
	"context"
	"errors"

	"marketplace-service/internal/domain"
	"marketplace-service/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type cartRepo struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepo{db: db}
}

func (r *cartRepo) GetOrCreateByUser(ctx context.Context, userID string) (*domain.Cart, error) {
	var cart domain.Cart
	err := r.db.WithContext(ctx).
		Where(domain.Cart{UserID: userID}).
		FirstOrCreate(&cart).Error
	if err != nil {
		// A concurrent request may have won the insert race; the unique
		// index rejects the duplicate and the winner's row is reread.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			err = r.db.WithContext(ctx).Where("user_id = ?", userID).First(&cart).Error
		}
		if err != nil {
			return nil, err
		}
	}
	return &cart, nil
}

func (r *cartRepo) FindByUser(ctx context.Context, userID string) (*domain.Cart, error) {
	var cart domain.Cart
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&cart).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cart, nil
}

func (r *cartRepo) FindLinesByCart(ctx context.Context, cartID uint) ([]domain.CartItem, error) {
	var lines []domain.CartItem
	err := r.db.WithContext(ctx).
		Preload("Product").
		Where("cart_id = ?", cartID).
		Order("created_at ASC").
		Find(&lines).Error
	if err != nil {
		return nil, err
	}
	return lines, nil
}

func (r *cartRepo) FindLine(ctx context.Context, cartID, productID uint) (*domain.CartItem, error) {
	var line domain.CartItem
	err := r.db.WithContext(ctx).
		Where("cart_id = ? AND product_id = ?", cartID, productID).
		First(&line).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &line, nil
}

func (r *cartRepo) CreateLine(ctx context.Context, line *domain.CartItem) error {
	// On a concurrent insert of the same (cart, product) pair the unique
	// index turns the loser into a quantity increment instead of a
	// duplicate row.
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "cart_id"}, {Name: "product_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{"quantity": gorm.Expr("quantity + ?", line.Quantity)}),
		}).
		Create(line).Error
}

func (r *cartRepo) SaveLine(ctx context.Context, line *domain.CartItem) error {
	return r.db.WithContext(ctx).Save(line).Error
}

func (r *cartRepo) DeleteLine(ctx context.Context, cartID, productID uint) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("cart_id = ? AND product_id = ?", cartID, productID).
		Delete(&domain.CartItem{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *cartRepo) DeleteLinesByCart(ctx context.Context, cartID uint) error {
	return r.db.WithContext(ctx).
		Where("cart_id = ?", cartID).
		Delete(&domain.CartItem{}).Error
}
