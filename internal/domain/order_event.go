package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderCreatedEvent is published after a checkout transaction commits.
type OrderCreatedEvent struct {
	OrderID   uint            `json:"orderId"`
	UserID    string          `json:"userId"`
	Total     decimal.Decimal `json:"total"`
	ItemCount int             `json:"itemCount"`
	CreatedAt time.Time       `json:"createdAt"`
}
