// Package http exposes the shop over a JSON API built on echo.
package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/application/usecases/queries"
	"shop/internal/core/domain/model/order"
	"shop/internal/core/domain/model/payment"
	"shop/internal/core/domain/model/shipping"
	"shop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Handlers groups the use cases the API dispatches to.
type Handlers struct {
	PlaceOrder     commands.PlaceOrderCommandHandler
	ProcessPayment commands.ProcessPaymentCommandHandler
	ShipOrder      commands.ShipOrderCommandHandler

	GetProducts queries.GetProductsQueryHandler
	GetProduct  queries.GetProductQueryHandler
	GetCarriers queries.GetCarriersQueryHandler
	OrderExists queries.OrderExistsQueryHandler
}

// Server turns HTTP requests into commands and queries and wraps results in
// the Response envelope.
type Server struct {
	handlers Handlers
	logger   *slog.Logger
	now      func() time.Time
}

func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{handlers: handlers, logger: logger.With("component", "http"), now: time.Now}
}

// Health handles GET /health.
func (s *Server) Health(c echo.Context) error {
	return c.String(http.StatusOK, "Healthy")
}

// GetProducts handles GET /api/products.
func (s *Server) GetProducts(c echo.Context) error {
	return s.listProducts(c, queries.NewGetAllProductsQuery(), "products")
}

// GetActiveProducts handles GET /api/products/active.
func (s *Server) GetActiveProducts(c echo.Context) error {
	return s.listProducts(c, queries.NewGetActiveProductsQuery(), "active products")
}

// GetProductsByCategory handles GET /api/products/category/:category.
func (s *Server) GetProductsByCategory(c echo.Context) error {
	category := c.Param("category")
	query, err := queries.NewGetProductsByCategoryQuery(category)
	if err != nil {
		return c.JSON(http.StatusBadRequest, failure("Invalid category", "Category must not be empty"))
	}
	return s.listProducts(c, query, fmt.Sprintf("products in category '%s'", category))
}

func (s *Server) listProducts(c echo.Context, query queries.GetProductsQuery, what string) error {
	products, err := s.handlers.GetProducts.Handle(c.Request().Context(), query)
	if err != nil {
		return s.internalError(c, "Failed to retrieve products", err)
	}
	return c.JSON(http.StatusOK, ok(products, fmt.Sprintf("Found %d %s", len(products), what)))
}

// GetProduct handles GET /api/products/:code.
func (s *Server) GetProduct(c echo.Context) error {
	code := c.Param("code")
	query, err := queries.NewGetProductQuery(code)
	if err != nil {
		return c.JSON(http.StatusBadRequest, failure("Invalid product code", errs.Reasons(err)...))
	}

	p, err := s.handlers.GetProduct.Handle(c.Request().Context(), query)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return c.JSON(http.StatusNotFound, failure("Product not found", fmt.Sprintf("Product '%s' not found", code)))
	}
	if err != nil {
		return s.internalError(c, "Failed to retrieve product", err)
	}
	return c.JSON(http.StatusOK, ok(p, ""))
}

// PlaceOrder handles POST /api/orders.
func (s *Server) PlaceOrder(c echo.Context) error {
	var req PlaceOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, failure("Invalid request body", err.Error()))
	}

	lines := make([]commands.OrderLine, 0, len(req.OrderLines))
	for _, l := range req.OrderLines {
		lines = append(lines, commands.OrderLine{ProductCode: l.ProductCode, Quantity: string(l.Quantity)})
	}
	cmd := commands.NewPlaceOrderCommand(req.CustomerName, req.CustomerEmail, commands.Address{
		Street:     req.ShippingStreet,
		City:       req.ShippingCity,
		PostalCode: req.ShippingPostalCode,
		Country:    req.ShippingCountry,
	}, lines)

	event, err := s.handlers.PlaceOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.internalError(c, "Failed to place order", err)
	}

	switch e := event.(type) {
	case order.OrderPendingPayment:
		return c.JSON(http.StatusCreated, ok(e, fmt.Sprintf("Order %s placed successfully", e.OrderID)))
	case order.OrderPlaced:
		return c.JSON(http.StatusCreated, ok(e, fmt.Sprintf("Order %s placed successfully", e.OrderID)))
	case order.OrderPlacementFailed:
		return c.JSON(http.StatusBadRequest, failure("Order placement failed", e.Reasons...))
	default:
		return s.internalError(c, "Unknown workflow result", fmt.Errorf("unexpected order event %T", event))
	}
}

// OrderExists handles GET /api/orders/:id/exists.
func (s *Server) OrderExists(c echo.Context) error {
	query, err := queries.NewOrderExistsQuery(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, failure("Invalid order ID", errs.Reasons(err)...))
	}

	result, err := s.handlers.OrderExists.Handle(c.Request().Context(), query)
	if err != nil {
		return s.internalError(c, "Failed to check order", err)
	}
	return c.JSON(http.StatusOK, ok(result.Exists, ""))
}

// ProcessPayment handles POST /api/payments.
func (s *Server) ProcessPayment(c echo.Context) error {
	var req ProcessPaymentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, failure("Invalid request body", err.Error()))
	}

	cmd := commands.NewProcessPaymentCommand(req.OrderID, string(req.Amount), req.CardNumber,
		req.CardHolderName, req.ExpiryDate, req.CVV)

	event, err := s.handlers.ProcessPayment.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.internalError(c, "Failed to process payment", err)
	}

	switch e := event.(type) {
	case payment.PaymentProcessed:
		return c.JSON(http.StatusOK, ok(e,
			fmt.Sprintf("Payment processed successfully. Transaction: %s", e.TransactionReference)))
	case payment.PaymentFailed:
		return c.JSON(http.StatusBadRequest, failure("Payment processing failed", e.Reasons...))
	default:
		return s.internalError(c, "Unknown workflow result", fmt.Errorf("unexpected payment event %T", event))
	}
}

// ConfirmPayment handles POST /api/payments/confirm, the acknowledgement the
// simulated payment processor sends before the client proceeds to shipping.
func (s *Server) ConfirmPayment(c echo.Context) error {
	var req ConfirmPaymentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, failure("Invalid request body", err.Error()))
	}

	query, err := queries.NewOrderExistsQuery(req.OrderID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, failure("The OrderId format is invalid", errs.Reasons(err)...))
	}
	result, err := s.handlers.OrderExists.Handle(c.Request().Context(), query)
	if err != nil {
		return s.internalError(c, "Failed to confirm payment", err)
	}
	if !result.Exists {
		return c.JSON(http.StatusNotFound, failure("The specified order does not exist", "Order not found"))
	}

	s.logger.InfoContext(c.Request().Context(), "Payment confirmation received", "order_id", result.OrderID)
	return c.JSON(http.StatusOK, ok(PaymentConfirmation{
		OrderID:     result.OrderID,
		Status:      "Confirmed",
		ConfirmedAt: s.now().UTC().Format(time.RFC3339),
	}, "Payment confirmed successfully"))
}

// ShipOrder handles POST /api/shipping.
func (s *Server) ShipOrder(c echo.Context) error {
	var req ShipOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, failure("Invalid request body", err.Error()))
	}

	event, err := s.handlers.ShipOrder.Handle(c.Request().Context(), commands.NewShipOrderCommand(req.OrderID, req.Carrier))
	if err != nil {
		return s.internalError(c, "Failed to ship order", err)
	}

	switch e := event.(type) {
	case shipping.OrderShipped:
		return c.JSON(http.StatusOK, ok(e, fmt.Sprintf("Order shipped successfully. Tracking: %s", e.TrackingNumber)))
	case shipping.ShippingFailed:
		return c.JSON(http.StatusBadRequest, failure("Shipping failed", e.Reasons...))
	default:
		return s.internalError(c, "Unknown workflow result", fmt.Errorf("unexpected shipping event %T", event))
	}
}

// GetCarriers handles GET /api/shipping/carriers.
func (s *Server) GetCarriers(c echo.Context) error {
	carriers, err := s.handlers.GetCarriers.Handle(c.Request().Context(), queries.NewGetCarriersQuery())
	if err != nil {
		return s.internalError(c, "Failed to retrieve carriers", err)
	}
	return c.JSON(http.StatusOK, ok(carriers, fmt.Sprintf("Found %d supported carriers", len(carriers))))
}

func (s *Server) internalError(c echo.Context, message string, err error) error {
	ctx := c.Request().Context()
	if errors.Is(err, context.Canceled) {
		s.logger.WarnContext(ctx, "Request cancelled", "path", c.Path())
	} else {
		s.logger.ErrorContext(ctx, message, "path", c.Path(), "error", err)
	}
	return c.JSON(http.StatusInternalServerError, failure(message))
}
