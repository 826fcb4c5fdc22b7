package domain

import "github.com/shopspring/decimal"

type ProductSort string

const (
	SortNewest    ProductSort = "newest"
	SortOldest    ProductSort = "oldest"
	SortPriceAsc  ProductSort = "price_asc"
	SortPriceDesc ProductSort = "price_desc"
	SortName      ProductSort = "name"
)

// ProductFilter narrows a catalog search. Zero values mean "no constraint".
// Query matches name OR description, case-insensitively. Price bounds are
// inclusive.
type ProductFilter struct {
	Query      string
	CategoryID uint
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
	Sort       ProductSort
}
