package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

func (h *Handler) GetCart(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		fail(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	view, err := h.cart.ViewWithTotals(c.Request.Context(), user)
	if err != nil {
		failFromError(c, err)
		return
	}
	respond(c, http.StatusOK, view)
}

func (h *Handler) AddCartItem(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		fail(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	line, err := h.cart.AddItem(c.Request.Context(), user, req.ProductID, req.Quantity)
	if err != nil {
		failFromError(c, err)
		return
	}
	respond(c, http.StatusCreated, line)
}

func (h *Handler) UpdateCartItem(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		fail(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	productID, err := parseUintParam(c, "productId")
	if err != nil {
		fail(c, http.StatusBadRequest, "invalid product id")
		return
	}

	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	line, err := h.cart.UpdateItem(c.Request.Context(), user, productID, req.Quantity)
	if err != nil {
		failFromError(c, err)
		return
	}
	respond(c, http.StatusOK, line)
}

func (h *Handler) RemoveCartItem(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		fail(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	productID, err := parseUintParam(c, "productId")
	if err != nil {
		fail(c, http.StatusBadRequest, "invalid product id")
		return
	}

	if err := h.cart.RemoveItem(c.Request.Context(), user, productID); err != nil {
		failFromError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"removed": true})
}

func (h *Handler) ClearCart(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		fail(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	if err := h.cart.Clear(c.Request.Context(), user); err != nil {
		failFromError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"cleared": true})
}

func parseUintParam(c *gin.Context, name string) (uint, error) {
	v, err := strconv.ParseUint(c.Param(name), 10, 32)
	return uint(v), err
}
