package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func item(price string, qty int) OrderItem {
	return OrderItem{Price: decimal.RequireFromString(price), Quantity: qty}
}

func TestOrderTotal(t *testing.T) {
	tests := []struct {
		name     string
		items    []OrderItem
		expected string
	}{
		{
			name:     "empty list is zero",
			items:    nil,
			expected: "0",
		},
		{
			name:     "single line",
			items:    []OrderItem{item("10.00", 2)},
			expected: "20.00",
		},
		{
			name:     "two lines",
			items:    []OrderItem{item("10.00", 2), item("5.00", 3)},
			expected: "35.00",
		},
		{
			name:     "zero quantity contributes nothing",
			items:    []OrderItem{item("9.99", 0), item("1.50", 4)},
			expected: "6.00",
		},
		{
			name: "cent prices accumulate without drift",
			items: func() []OrderItem {
				out := make([]OrderItem, 1000)
				for i := range out {
					out[i] = item("0.10", 1)
				}
				return out
			}(),
			expected: "100.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total := OrderTotal(tt.items)
			assert.True(t, total.Equal(decimal.RequireFromString(tt.expected)),
				"got %s, want %s", total, tt.expected)
		})
	}
}

func TestSubtotals(t *testing.T) {
	oi := item("19.99", 3)
	assert.Equal(t, "59.97", oi.Subtotal().StringFixed(2))

	ci := CartItem{
		Product:  Product{Price: decimal.RequireFromString("2.50")},
		Quantity: 4,
	}
	assert.Equal(t, "10.00", ci.Subtotal().StringFixed(2))
}
