package services

import (
	"time"

	"marketplace-service/internal/domain"

	"github.com/shopspring/decimal"
)

func testProduct(id uint, name, price string) *domain.Product {
	return &domain.Product{
		ID:          id,
		Name:        name,
		Description: name + " description",
		Price:       decimal.RequireFromString(price),
		CategoryID:  1,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
}

func testCartLine(id, cartID uint, product *domain.Product, quantity int) domain.CartItem {
	return domain.CartItem{
		ID:        id,
		CartID:    cartID,
		ProductID: product.ID,
		Product:   *product,
		Quantity:  quantity,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

const (
	testUserID = "user-1"
	testCartID = uint(7)
)

var testUser = domain.User{ID: testUserID, Email: "user-1@example.com"}
