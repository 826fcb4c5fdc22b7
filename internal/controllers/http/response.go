package http

import (
	"errors"
	"net/http"

	"marketplace-service/internal/domain"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

func respond(c *gin.Context, status int, data interface{}) {
	c.JSON(status, Response{Success: true, Data: data})
}

func fail(c *gin.Context, status int, message string) {
	c.JSON(status, Response{Success: false, Message: message})
}

// failFromError maps the domain error taxonomy onto statuses; anything
// unrecognized is an infrastructure failure and must not leak detail.
func failFromError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrCartNotFound),
		errors.Is(err, domain.ErrItemNotFound),
		errors.Is(err, domain.ErrCartEmpty),
		errors.Is(err, domain.ErrNoValidItemsSelected),
		errors.Is(err, domain.ErrOrderNotFound):
		fail(c, http.StatusBadRequest, err.Error())
	default:
		fail(c, http.StatusInternalServerError, "internal server error")
	}
}
