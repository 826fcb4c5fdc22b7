package domain

import "github.com/shopspring/decimal"

// OrderTotal sums quantity x snapshot price over the given items in decimal
// arithmetic, so long item lists accumulate no binary rounding drift.
// Returns zero for an empty slice.
func OrderTotal(items []OrderItem) decimal.Decimal {
	total := decimal.Zero
	for i := range items {
		total = total.Add(items[i].Subtotal())
	}
	return total
}
