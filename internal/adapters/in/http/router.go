package http

import (
	"log/slog"

	"shop/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type RouterOptions struct {
	Logger *slog.Logger

	// Metrics enables the request metrics middleware and GET /metrics.
	Metrics *metrics.Metrics

	// Idempotency enables Idempotency-Key handling on POST routes.
	Idempotency IdempotencyStore
}

// NewRouter builds the echo instance serving the API.
func NewRouter(s *Server, opts RouterOptions) *echo.Echo {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(RequestLogger(logger))
	if opts.Metrics != nil {
		e.Use(Metrics(opts.Metrics))
		e.GET("/metrics", echo.WrapHandler(opts.Metrics.Handler()))
	}

	e.GET("/health", s.Health)

	var writes []echo.MiddlewareFunc
	if opts.Idempotency != nil {
		writes = append(writes, Idempotency(opts.Idempotency, logger))
	}

	api := e.Group("/api")

	products := api.Group("/products")
	products.GET("", s.GetProducts)
	products.GET("/active", s.GetActiveProducts)
	products.GET("/category/:category", s.GetProductsByCategory)
	products.GET("/:code", s.GetProduct)

	orders := api.Group("/orders")
	orders.POST("", s.PlaceOrder, writes...)
	orders.GET("/:id/exists", s.OrderExists)

	payments := api.Group("/payments")
	payments.POST("", s.ProcessPayment, writes...)
	payments.POST("/confirm", s.ConfirmPayment)

	ship := api.Group("/shipping")
	ship.POST("", s.ShipOrder, writes...)
	ship.GET("/carriers", s.GetCarriers)

	return e
}
