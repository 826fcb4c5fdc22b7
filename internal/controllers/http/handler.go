package http

import (
	"net/http"

	"marketplace-service/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

type Handler struct {
	catalog *services.CatalogService
	cart    *services.CartService
	orders  *services.OrderService
	rdb     *redis.Client
}

func NewHandler(catalog *services.CatalogService, cart *services.CartService, orders *services.OrderService, rdb *redis.Client) *Handler {
	return &Handler{catalog: catalog, cart: cart, orders: orders, rdb: rdb}
}

func (h *Handler) RegisterRoutes(r *gin.Engine, jwtSecret string) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/products", h.SearchProducts)
	r.GET("/products/:id", h.GetProduct)
	r.GET("/categories", h.ListCategories)

	authed := r.Group("/", AuthMiddleware(jwtSecret))
	{
		authed.GET("/cart", h.GetCart)
		authed.POST("/cart/items", h.AddCartItem)
		authed.PUT("/cart/items/:productId", h.UpdateCartItem)
		authed.DELETE("/cart/items/:productId", h.RemoveCartItem)
		authed.DELETE("/cart", h.ClearCart)

		authed.POST("/orders", h.PlaceOrder)
		authed.GET("/orders", h.GetOrderHistory)
		authed.GET("/orders/:id", h.GetOrder)
	}
}
