package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

func (h *Handler) PlaceOrder(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		fail(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	// An empty body is a full-cart checkout.
	var req PlaceOrderRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			fail(c, http.StatusBadRequest, "invalid request body: "+err.Error())
			return
		}
	}

	view, err := h.orders.PlaceOrder(c.Request.Context(), user, req.ItemIDs)
	if err != nil {
		failFromError(c, err)
		return
	}
	respond(c, http.StatusCreated, view)
}

func (h *Handler) GetOrder(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		fail(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, err := parseUintParam(c, "id")
	if err != nil {
		fail(c, http.StatusBadRequest, "invalid order id")
		return
	}

	view, err := h.orders.GetOrderByID(c.Request.Context(), user, id)
	if err != nil {
		failFromError(c, err)
		return
	}
	respond(c, http.StatusOK, view)
}

func (h *Handler) GetOrderHistory(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		fail(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "0"))

	views, meta, err := h.orders.GetOrderHistory(c.Request.Context(), user, page, pageSize)
	if err != nil {
		failFromError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"orders": views, "pagination": meta})
}
