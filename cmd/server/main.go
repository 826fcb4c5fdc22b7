package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"marketplace-service/internal/config"
	httpctl "marketplace-service/internal/controllers/http"
	"marketplace-service/internal/domain"
	"marketplace-service/internal/infra/mysql"
	"marketplace-service/internal/infra/rabbitmq"
	"marketplace-service/internal/pkg/logger"
	"marketplace-service/internal/repository"
	mysqlrepo "marketplace-service/internal/repository/mysql"
	"marketplace-service/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logg, err := logger.New(cfg.Log.Mode)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logg.Sync()

	db, err := mysql.New(cfg.MySQL)
	if err != nil {
		logg.Fatal("db connect failed", "error", err)
	}

	productRepo := mysqlrepo.NewProductRepository(db)
	cartRepo := mysqlrepo.NewCartRepository(db)
	orderRepo := mysqlrepo.NewOrderRepository(db)

	publisher, err := rabbitmq.NewPublisher(cfg.RabbitMQ.URL, cfg.RabbitMQ.Exchange, logg)
	if err != nil {
		logg.Fatal("rabbitmq connect failed", "error", err)
	}
	defer publisher.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	})

	catalogSvc := services.NewCatalogService(productRepo, logg)
	catalogSvc.SetRedisClient(redisClient)
	cartSvc := services.NewCartService(cartRepo, productRepo, logg)
	orderSvc := services.NewOrderService(orderRepo, cartRepo, publisher, logg)

	go func() {
		// Give redis a moment to come up in fresh deployments before the
		// warmup fan-out.
		time.Sleep(5 * time.Second)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := warmupCatalog(ctx, catalogSvc, productRepo); err != nil {
			logg.Warn("catalog cache warmup failed", "error", err)
		}
	}()

	handler := httpctl.NewHandler(catalogSvc, cartSvc, orderSvc, redisClient)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	handler.RegisterRoutes(r, cfg.Auth.JWTSecret)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	logg.Info("starting marketplace service", "addr", addr)
	if err := r.Run(addr); err != nil {
		logg.Fatal("server run failed", "error", err)
	}
}

// warmupCatalog primes the product cache with the first page of the newest
// products, the likeliest lookups right after a deploy.
func warmupCatalog(ctx context.Context, catalog *services.CatalogService, products repository.ProductRepository) error {
	page, _, err := products.Search(ctx, domain.ProductFilter{}, 1, domain.DefaultPageSize)
	if err != nil {
		return err
	}
	ids := make([]uint, 0, len(page))
	for i := range page {
		ids = append(ids, page[i].ID)
	}
	return catalog.WarmupProductCache(ctx, ids)
}
