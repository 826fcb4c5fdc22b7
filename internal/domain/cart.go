package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cart holds at most one row per user; the unique index on UserID is what
// enforces that, not application logic.
type Cart struct {
	ID        uint       `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    string     `json:"userId" gorm:"uniqueIndex;not null"`
	Items     []CartItem `json:"items" gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time  `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt time.Time  `json:"updatedAt" gorm:"autoUpdateTime"`
}

// CartItem keeps one row per (cart, product); adding an already-present
// product increments the existing row instead of inserting a duplicate.
// Quantity zero is a valid stored state.
type CartItem struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	CartID    uint      `json:"cartId" gorm:"uniqueIndex:idx_cart_product;not null"`
	ProductID uint      `json:"productId" gorm:"uniqueIndex:idx_cart_product;not null"`
	Product   Product   `json:"product" gorm:"foreignKey:ProductID"`
	Quantity  int       `json:"quantity" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

// Subtotal prices the line at the product's current price.
func (ci *CartItem) Subtotal() decimal.Decimal {
	return ci.Product.Price.Mul(decimal.NewFromInt(int64(ci.Quantity)))
}

// CartView is the read model returned to clients. A user without a cart row
// gets a zero-valued view; the read path never creates the row.
type CartView struct {
	ID        uint            `json:"id"`
	Items     []CartItemView  `json:"items"`
	Total     decimal.Decimal `json:"total"`
	ItemCount int             `json:"itemCount"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

type CartItemView struct {
	ID       uint            `json:"id"`
	Product  ProductSnapshot `json:"product"`
	Quantity int             `json:"quantity"`
	Subtotal decimal.Decimal `json:"subtotal"`
}
