package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusProcessing OrderStatus = "processing"
	StatusCompleted  OrderStatus = "completed"
	StatusCancelled  OrderStatus = "cancelled"
)

// Order is written exactly once at checkout. Total is frozen at creation time
// and never recomputed from the items afterwards.
type Order struct {
	ID        uint            `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    string          `json:"userId" gorm:"not null;index"`
	Total     decimal.Decimal `json:"total" gorm:"type:decimal(12,2);not null"`
	Status    OrderStatus     `json:"status" gorm:"type:varchar(20);default:'pending'"`
	Items     []OrderItem     `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time       `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt time.Time       `json:"updatedAt" gorm:"autoUpdateTime"`
}

// OrderItem snapshots the product at the moment the order was placed. Price
// must not follow later product price changes.
type OrderItem struct {
	ID                 uint            `json:"id" gorm:"primaryKey;autoIncrement"`
	OrderID            uint            `json:"orderId" gorm:"not null;index"`
	ProductID          uint            `json:"productId" gorm:"not null"`
	ProductName        string          `json:"productName" gorm:"not null"`
	ProductDescription string          `json:"productDescription"`
	Price              decimal.Decimal `json:"price" gorm:"type:decimal(12,2);not null"`
	Quantity           int             `json:"quantity" gorm:"not null"`
	CreatedAt          time.Time       `json:"createdAt" gorm:"autoCreateTime"`
}

// Subtotal is always derived from the snapshot price, never stored.
func (oi *OrderItem) Subtotal() decimal.Decimal {
	return oi.Price.Mul(decimal.NewFromInt(int64(oi.Quantity)))
}

type OrderView struct {
	ID        uint            `json:"id"`
	Total     decimal.Decimal `json:"total"`
	Status    OrderStatus     `json:"status"`
	Items     []OrderItemView `json:"items"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

type OrderItemView struct {
	ID       uint            `json:"id"`
	Product  ProductSnapshot `json:"product"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

func (o *Order) View() OrderView {
	items := make([]OrderItemView, 0, len(o.Items))
	for i := range o.Items {
		it := &o.Items[i]
		items = append(items, OrderItemView{
			ID: it.ID,
			Product: ProductSnapshot{
				ID:          it.ProductID,
				Name:        it.ProductName,
				Description: it.ProductDescription,
				Price:       it.Price,
			},
			Quantity: it.Quantity,
			Price:    it.Price,
			Subtotal: it.Subtotal(),
		})
	}
	return OrderView{
		ID:        o.ID,
		Total:     o.Total,
		Status:    o.Status,
		Items:     items,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}
