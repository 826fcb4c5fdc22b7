package http

type AddCartItemRequest struct {
	ProductID uint `json:"productId" binding:"required"`
	// Quantity zero is a valid cart line, so no min=1 here.
	Quantity int `json:"quantity" binding:"gte=0"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"gte=0"`
}

type PlaceOrderRequest struct {
	// ItemIds restricts the checkout to these cart line ids. Empty or absent
	// means the whole cart.
	ItemIDs []uint `json:"itemIds"`
}
