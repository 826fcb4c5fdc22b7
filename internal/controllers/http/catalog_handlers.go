package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"marketplace-service/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

const searchCacheTTL = 10 * time.Second

func (h *Handler) SearchProducts(c *gin.Context) {
	filter, page, pageSize, err := parseSearchQuery(c)
	if err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	ctx := c.Request.Context()

	// The catalog is read-only from this core's perspective, so a short
	// response cache keyed on the raw query string is safe.
	cacheKey := "products:search:" + c.Request.URL.RawQuery
	if h.rdb != nil {
		if cached, err := h.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var body gin.H
			if json.Unmarshal([]byte(cached), &body) == nil {
				respond(c, http.StatusOK, body)
				return
			}
		}
	}

	products, meta, err := h.catalog.SearchProducts(ctx, filter, page, pageSize)
	if err != nil {
		failFromError(c, err)
		return
	}

	body := gin.H{"products": products, "pagination": meta}
	if h.rdb != nil {
		if data, err := json.Marshal(body); err == nil {
			h.rdb.Set(ctx, cacheKey, data, searchCacheTTL)
		}
	}
	respond(c, http.StatusOK, body)
}

func (h *Handler) GetProduct(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		fail(c, http.StatusBadRequest, "invalid product id")
		return
	}

	product, err := h.catalog.GetProduct(c.Request.Context(), id)
	if err != nil {
		failFromError(c, err)
		return
	}
	respond(c, http.StatusOK, product)
}

func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.catalog.ListCategories(c.Request.Context())
	if err != nil {
		failFromError(c, err)
		return
	}
	respond(c, http.StatusOK, categories)
}

func parseSearchQuery(c *gin.Context) (domain.ProductFilter, int, int, error) {
	filter := domain.ProductFilter{
		Query: c.Query("q"),
		Sort:  domain.ProductSort(c.DefaultQuery("sort", string(domain.SortNewest))),
	}

	if raw := c.Query("categoryId"); raw != "" {
		v, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return filter, 0, 0, errInvalidQuery("categoryId")
		}
		filter.CategoryID = uint(v)
	}
	if raw := c.Query("minPrice"); raw != "" {
		v, err := decimal.NewFromString(raw)
		if err != nil {
			return filter, 0, 0, errInvalidQuery("minPrice")
		}
		filter.MinPrice = &v
	}
	if raw := c.Query("maxPrice"); raw != "" {
		v, err := decimal.NewFromString(raw)
		if err != nil {
			return filter, 0, 0, errInvalidQuery("maxPrice")
		}
		filter.MaxPrice = &v
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "0"))
	return filter, page, pageSize, nil
}

func errInvalidQuery(param string) error {
	return fmt.Errorf("invalid query parameter: %s", param)
}
