package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"marketplace-service/internal/domain"
	"marketplace-service/internal/pkg/logger"
	"marketplace-service/internal/repository"

	"github.com/go-redis/redis/v8"
	"golang.org/x/sync/errgroup"
)

const productCacheTTL = 5 * time.Minute

type CatalogService struct {
	products    repository.ProductRepository
	redisClient *redis.Client
	log         *logger.Logger
}

func NewCatalogService(products repository.ProductRepository, log *logger.Logger) *CatalogService {
	return &CatalogService{
		products: products,
		log:      log.With("service", "CatalogService"),
	}
}

// SetRedisClient enables the read-through product cache. The service works
// without it; every lookup then goes to the database.
func (s *CatalogService) SetRedisClient(client *redis.Client) {
	s.redisClient = client
}

func (s *CatalogService) SearchProducts(ctx context.Context, filter domain.ProductFilter, page, pageSize int) ([]domain.Product, domain.PageMeta, error) {
	page, pageSize = domain.NormalizePage(page, pageSize)

	products, total, err := s.products.Search(ctx, filter, page, pageSize)
	if err != nil {
		return nil, domain.PageMeta{}, err
	}
	if products == nil {
		products = []domain.Product{}
	}
	return products, domain.NewPageMeta(page, pageSize, total), nil
}

func (s *CatalogService) GetProduct(ctx context.Context, id uint) (*domain.Product, error) {
	cacheKey := fmt.Sprintf("product:%d", id)

	if s.redisClient != nil {
		cached, err := s.redisClient.Get(ctx, cacheKey).Result()
		if err == nil {
			var p domain.Product
			if err := json.Unmarshal([]byte(cached), &p); err == nil {
				return &p, nil
			}
		}
	}

	p, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrProductNotFound
	}

	if s.redisClient != nil {
		if data, err := json.Marshal(p); err == nil {
			s.redisClient.Set(ctx, cacheKey, data, productCacheTTL)
		}
	}
	return p, nil
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.products.ListCategories(ctx)
}

// WarmupProductCache primes the cache for the given products concurrently.
// Individual misses are logged and skipped rather than failing the warmup.
func (s *CatalogService) WarmupProductCache(ctx context.Context, productIDs []uint) error {
	if s.redisClient == nil {
		return nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for _, id := range productIDs {
		id := id
		g.Go(func() error {
			p, err := s.products.FindByID(ctx, id)
			if err != nil {
				return err
			}
			if p == nil {
				s.log.Warn("warmup skipped missing product", "productId", id)
				return nil
			}
			data, err := json.Marshal(p)
			if err != nil {
				return err
			}
			return s.redisClient.Set(ctx, fmt.Sprintf("product:%d", id), data, productCacheTTL).Err()
		})
	}
	return g.Wait()
}
