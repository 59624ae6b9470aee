package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/akramov/telepos/internal/adapters/config"
	"github.com/akramov/telepos/internal/adapters/excel"
	"github.com/akramov/telepos/internal/adapters/http"
	"github.com/akramov/telepos/internal/adapters/http/controllers"
	"github.com/akramov/telepos/internal/adapters/http/middleware"
	"github.com/akramov/telepos/internal/adapters/local"
	"github.com/akramov/telepos/internal/adapters/memory"
	"github.com/akramov/telepos/internal/adapters/mongo"
	"github.com/akramov/telepos/internal/adapters/rabbitmq"
	"github.com/akramov/telepos/internal/adapters/redis"
	"github.com/akramov/telepos/internal/core/logger"
	"github.com/akramov/telepos/internal/core/port"
	"github.com/akramov/telepos/internal/core/service"
)

func main() {
	// initialize config and logger
	cfg := config.NewConfig()
	if err := logger.Initialize(cfg.Logger.Endpoint, cfg.Logger.ServiceName, cfg.Logger.IsProduction); err != nil {
		// logger not available yet, fall back to stderr
		fmt.Println("failed to initialize logger: " + err.Error())
		os.Exit(1)
	}

	// cancellable context for background goroutines
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var (
		store       port.StorePort
		rateLimiter middleware.RateLimiter = middleware.AllowAll{}
		checkers    []controllers.HealthChecker
	)

	// catalog snapshot store, selected once at startup
	switch cfg.Store.Backend {
	case config.StoreRedis:
		redisClient, err := redis.NewConnection(cfg.Redis)
		if err != nil {
			logger.Fatal(ctx, "Failed to connect to Redis", err, nil)
		}
		defer redisClient.Close()
		logger.Info(ctx, "Connected to Redis", nil)

		store = redis.NewStore(redisClient, "catalog")
		rateLimiter = redis.NewRateLimiter(redisClient)
		checkers = append(checkers, controllers.HealthChecker{
			Name:  "redis",
			Check: func(ctx context.Context) error { return redisClient.Ping(ctx) },
		})
	case config.StoreMongo:
		mongoClient, err := mongo.NewConnection(cfg.Mongo)
		if err != nil {
			logger.Fatal(ctx, "Failed to connect to MongoDB", err, nil)
		}
		defer mongo.Disconnect(mongoClient)
		logger.Info(ctx, "Connected to MongoDB", map[string]any{"database": cfg.Mongo.Database})

		store = mongo.NewStore(mongoClient.Database(cfg.Mongo.Database), cfg.Mongo.Collection)
		checkers = append(checkers, controllers.HealthChecker{
			Name:  "mongodb",
			Check: func(ctx context.Context) error { return mongoClient.Ping(ctx, nil) },
		})
	default:
		store = memory.NewStore()
		logger.Info(ctx, "Using in-memory store, catalog changes will not survive restarts", nil)
	}

	// outbound order transport
	var transport port.TransportPort
	switch cfg.Bridge.Transport {
	case config.TransportBridge:
		bridge, err := rabbitmq.NewBridgeTransport(cfg.Bridge)
		if err != nil {
			logger.Fatal(ctx, "Failed to connect to RabbitMQ", err, nil)
		}
		defer bridge.Close()
		logger.Info(ctx, "Connected to RabbitMQ", map[string]any{"exchange": cfg.Bridge.Exchange})

		transport = bridge
		checkers = append(checkers, controllers.HealthChecker{
			Name:  "rabbitmq",
			Check: func(ctx context.Context) error { return bridge.HealthCheck() },
		})
	default:
		transport = local.NewFallbackTransport()
	}

	// services
	catalogService := service.NewCatalogService(store, excel.NewImporter(), cfg.Store.CatalogKey)
	catalogService.Load(ctx)
	cartService := service.NewCartService(catalogService)
	entryService := service.NewEntryService(cartService)
	orderService := service.NewOrderService(cartService, transport)

	// controllers
	catalogController := controllers.NewCatalogController(catalogService, cartService)
	cartController := controllers.NewCartController(cartService)
	entryController := controllers.NewEntryController(entryService, cartService)
	orderController := controllers.NewOrderController(orderService)
	healthController := controllers.NewHealthController(checkers)

	// router
	router := http.NewRouter(healthController, catalogController, cartController, entryController, orderController, rateLimiter)

	// graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info(ctx, "Received shutdown signal", map[string]interface{}{"signal": sig.String()})
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := logger.Shutdown(shutdownCtx); err != nil {
			fmt.Println("logger shutdown error: " + err.Error())
		}
	}()

	logger.Info(ctx, "Starting HTTP server", map[string]any{"addr": cfg.HTTP.BindInterface + ":" + cfg.HTTP.Port})
	err := router.ListenAndServe(ctx, cfg.HTTP)
	if err != nil {
		logger.Fatal(ctx, "Failed to start HTTP server", err, nil)
	}
}
