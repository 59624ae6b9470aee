package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/akramov/telepos/internal/adapters/config"
	"github.com/akramov/telepos/internal/adapters/http/controllers"
	"github.com/akramov/telepos/internal/adapters/http/middleware"
)

type Router struct {
	healthController  *controllers.HealthController
	catalogController *controllers.CatalogController
	cartController    *controllers.CartController
	entryController   *controllers.EntryController
	orderController   *controllers.OrderController
	rateLimiter       middleware.RateLimiter
}

func NewRouter(
	healthController *controllers.HealthController,
	catalogController *controllers.CatalogController,
	cartController *controllers.CartController,
	entryController *controllers.EntryController,
	orderController *controllers.OrderController,
	rateLimiter middleware.RateLimiter,
) *Router {
	return &Router{
		healthController:  healthController,
		catalogController: catalogController,
		cartController:    cartController,
		entryController:   entryController,
		orderController:   orderController,
		rateLimiter:       rateLimiter,
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	rl := r.rateLimiter

	apiGroup := router.Group("/api")
	v1Group := apiGroup.Group("/v1")
	{
		v1Group.Use(middleware.LogRequest())
		v1Group.GET("/health", r.healthController.Health)

		v1Group.GET("/catalog", r.catalogController.GetAll)
		v1Group.POST("/catalog", r.catalogController.AddProduct)
		v1Group.DELETE("/catalog/:id", r.catalogController.RemoveProduct)
		v1Group.POST("/catalog/import", middleware.RateLimit(rl, 5, 1*time.Minute), r.catalogController.ImportFile)

		v1Group.GET("/cart", r.cartController.GetCart)
		v1Group.POST("/cart/lines", r.cartController.AddLine)
		v1Group.POST("/cart/lines/:id/increment", r.cartController.Increment)
		v1Group.POST("/cart/lines/:id/decrement", r.cartController.Decrement)
		v1Group.PUT("/cart/lines/:id/quantity", r.cartController.SetQuantity)
		v1Group.PUT("/cart/lines/:id/price", r.cartController.SetPrice)
		v1Group.DELETE("/cart/lines/:id", r.cartController.RemoveLine)
		v1Group.DELETE("/cart", r.cartController.Clear)

		v1Group.GET("/entry", r.entryController.GetSession)
		v1Group.POST("/entry/begin", r.entryController.Begin)
		v1Group.POST("/entry/digit", r.entryController.Digit)
		v1Group.POST("/entry/decimal", r.entryController.DecimalPoint)
		v1Group.POST("/entry/backspace", r.entryController.Backspace)
		v1Group.POST("/entry/clear", r.entryController.ClearPending)
		v1Group.POST("/entry/adjust", r.entryController.Adjust)
		v1Group.POST("/entry/commit", r.entryController.Commit)
		v1Group.POST("/entry/live", r.entryController.LiveUpdate)
		v1Group.POST("/entry/finalize", r.entryController.Finalize)

		v1Group.GET("/order/message", r.orderController.GetMessage)
		v1Group.POST("/order/checkout", r.orderController.Checkout)
		v1Group.POST("/order/submit", middleware.RateLimit(rl, 15, 1*time.Minute), r.orderController.Submit)
	}
}

func (r *Router) ListenAndServe(ctx context.Context, config config.HTTPConfig) error {
	engine := gin.Default()
	r.SetupRoutes(engine)

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", config.BindInterface, config.Port),
		Handler: engine,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
