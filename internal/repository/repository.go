package repository

import (
	"context"

	"marketplace-service/internal/domain"
)

// Not-found is reported as (nil, nil); services translate that into the
// domain sentinels so storage errors and validation failures stay distinct.

type ProductRepository interface {
	FindByID(ctx context.Context, id uint) (*domain.Product, error)
	Search(ctx context.Context, filter domain.ProductFilter, page, pageSize int) ([]domain.Product, int64, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
}

type CartRepository interface {
	// GetOrCreateByUser relies on the unique index on cart.user_id to keep
	// one cart per user under concurrent creation.
	GetOrCreateByUser(ctx context.Context, userID string) (*domain.Cart, error)
	FindByUser(ctx context.Context, userID string) (*domain.Cart, error)
	FindLinesByCart(ctx context.Context, cartID uint) ([]domain.CartItem, error)
	FindLine(ctx context.Context, cartID, productID uint) (*domain.CartItem, error)
	CreateLine(ctx context.Context, line *domain.CartItem) error
	SaveLine(ctx context.Context, line *domain.CartItem) error
	DeleteLine(ctx context.Context, cartID, productID uint) (bool, error)
	DeleteLinesByCart(ctx context.Context, cartID uint) error
}

type OrderRepository interface {
	// PlaceOrder persists the order with its items and deletes the consumed
	// cart lines in one transaction; either everything commits or nothing
	// does. A nil lineIDs slice clears every line of cartID (full checkout);
	// a non-nil slice deletes exactly those lines (selective checkout).
	PlaceOrder(ctx context.Context, order *domain.Order, cartID uint, lineIDs []uint) error
	FindByIDAndUser(ctx context.Context, id uint, userID string) (*domain.Order, error)
	FindByUser(ctx context.Context, userID string, page, pageSize int) ([]domain.Order, error)
	CountByUser(ctx context.Context, userID string) (int64, error)
}
