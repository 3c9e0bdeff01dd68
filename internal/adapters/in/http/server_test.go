package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	shophttp "shop/internal/adapters/in/http"
	"shop/internal/adapters/out/gateway"
	"shop/internal/adapters/out/memory"
	"shop/internal/adapters/out/seed"
	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/application/usecases/queries"
	"shop/internal/core/domain/model/shipping"
	"shop/internal/core/ports"
	"shop/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Errors  []string        `json:"errors"`
}

type api struct {
	echo    *echo.Echo
	events  *memory.EventLog
	metrics *metrics.Metrics
}

func newAPI(t *testing.T, idempotency shophttp.IdempotencyStore) *api {
	t.Helper()
	store := memory.NewStore()
	_, err := seed.Load(context.Background(), store.Products())
	require.NoError(t, err)

	events := memory.NewEventLog()
	m := metrics.New()
	server := shophttp.NewServer(shophttp.Handlers{
		PlaceOrder: commands.NewPlaceOrderCommandHandler(
			commands.NewPlaceOrderWorkflow(store.Products(), store.Orders()), events, m, nil),
		ProcessPayment: commands.NewProcessPaymentCommandHandler(
			commands.NewProcessPaymentWorkflow(store.Orders(), gateway.NewSimulator(), store.Payments()), events, m, nil),
		ShipOrder: commands.NewShipOrderCommandHandler(
			commands.NewShipOrderWorkflow(store.Orders(), store.Shipments(), shipping.StandardLeadTimes{}), events, m, nil),
		GetProducts: queries.NewGetProductsQueryHandler(store.Products()),
		GetProduct:  queries.NewGetProductQueryHandler(store.Products()),
		GetCarriers: queries.NewGetCarriersQueryHandler(shipping.StandardLeadTimes{}),
		OrderExists: queries.NewOrderExistsQueryHandler(store.Orders()),
	}, nil)

	return &api{
		echo:    shophttp.NewRouter(server, shophttp.RouterOptions{Metrics: m, Idempotency: idempotency}),
		events:  events,
		metrics: m,
	}
}

func (a *api) do(t *testing.T, method, path, body string, headers ...string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	a.echo.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	}
	return rec, env
}

const orderBody = `{
	"customerName": "Ana Popescu",
	"customerEmail": "ana@example.com",
	"shippingStreet": "Strada Lunga 12",
	"shippingCity": "Cluj-Napoca",
	"shippingPostalCode": "400001",
	"shippingCountry": "Romania",
	"orderLines": [{"productCode": "GPU001", "quantity": 2}]
}`

func (a *api) placeOrder(t *testing.T) (string, string) {
	t.Helper()
	rec, env := a.do(t, http.MethodPost, "/api/orders", orderBody)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var data struct {
		OrderID    string `json:"orderId"`
		TotalPrice string `json:"totalPrice"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	return data.OrderID, data.TotalPrice
}

func TestHealth(t *testing.T) {
	a := newAPI(t, nil)

	rec, _ := a.do(t, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())
}

func TestProducts(t *testing.T) {
	a := newAPI(t, nil)

	t.Run("should list the catalog", func(t *testing.T) {
		rec, env := a.do(t, http.MethodGet, "/api/products", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, env.Success)
		assert.Equal(t, "Found 12 products", env.Message)
	})

	t.Run("should list a category", func(t *testing.T) {
		rec, env := a.do(t, http.MethodGet, "/api/products/category/GPU", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Found 2 products in category 'GPU'", env.Message)
	})

	t.Run("should return one product", func(t *testing.T) {
		rec, env := a.do(t, http.MethodGet, "/api/products/GPU001", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var p queries.ProductResponse
		require.NoError(t, json.Unmarshal(env.Data, &p))
		assert.Equal(t, "GPU001", p.Code)
		assert.Equal(t, 25, p.Stock)
	})

	t.Run("should reject a malformed code", func(t *testing.T) {
		rec, env := a.do(t, http.MethodGet, "/api/products/BAD", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.False(t, env.Success)
		require.Len(t, env.Errors, 1)
		assert.Contains(t, env.Errors[0], "Invalid product code format")
	})

	t.Run("should report an unknown product", func(t *testing.T) {
		rec, env := a.do(t, http.MethodGet, "/api/products/XYZ999", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, []string{"Product 'XYZ999' not found"}, env.Errors)
	})
}

func TestOrderPaymentShippingFlow(t *testing.T) {
	a := newAPI(t, nil)

	orderID, total := a.placeOrder(t)
	assert.Equal(t, "3199.98", total)

	rec, env := a.do(t, http.MethodGet, "/api/orders/"+orderID+"/exists", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "true", string(env.Data))

	rec, env = a.do(t, http.MethodPost, "/api/shipping", `{"orderId":"`+orderID+`","carrier":"DHL"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Len(t, env.Errors, 1)
	assert.Contains(t, env.Errors[0], "has not been paid yet")

	rec, env = a.do(t, http.MethodPost, "/api/payments", `{
		"orderId": "`+orderID+`",
		"amount": 3199.98,
		"cardNumber": "4111 1111 1111 1234",
		"cardHolderName": "Ana Popescu",
		"expiryDate": "12/99",
		"cvv": "123"
	}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.True(t, strings.HasPrefix(env.Message, "Payment processed successfully. Transaction: TXN-"))

	rec, env = a.do(t, http.MethodPost, "/api/payments/confirm", `{"orderId":"`+orderID+`"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Payment confirmed successfully", env.Message)

	rec, env = a.do(t, http.MethodPost, "/api/shipping", `{"orderId":"`+orderID+`","carrier":"ups"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.True(t, strings.HasPrefix(env.Message, "Order shipped successfully. Tracking: 1Z"))

	assert.Len(t, a.events.Topic(ports.TopicOrderPendingPayment), 1)
	assert.Len(t, a.events.Topic(ports.TopicShippingFailed), 1)
	assert.Len(t, a.events.Topic(ports.TopicPaymentProcessed), 1)
	assert.Len(t, a.events.Topic(ports.TopicOrderShipped), 1)
}

func TestPlaceOrder_Failures(t *testing.T) {
	a := newAPI(t, nil)

	t.Run("should return every reason", func(t *testing.T) {
		rec, env := a.do(t, http.MethodPost, "/api/orders", `{
			"customerName": "A",
			"customerEmail": "nope",
			"shippingStreet": "Strada Lunga 12",
			"shippingCity": "Cluj-Napoca",
			"shippingPostalCode": "400001",
			"shippingCountry": "Romania",
			"orderLines": [{"productCode": "GPU001", "quantity": "1"}]
		}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Order placement failed", env.Message)
		assert.Len(t, env.Errors, 2)
	})

	t.Run("should reject a body that is not JSON", func(t *testing.T) {
		rec, env := a.do(t, http.MethodPost, "/api/orders", `{"orderLines": [{"quantity": true}]}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid request body", env.Message)
	})
}

func TestPaymentConfirm_UnknownOrder(t *testing.T) {
	a := newAPI(t, nil)

	rec, env := a.do(t, http.MethodPost, "/api/payments/confirm", `{"orderId":"6f1c1c0e-8f5e-4f1a-9d6b-0b5b8f6f2c11"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, []string{"Order not found"}, env.Errors)
}

func TestCarriers(t *testing.T) {
	a := newAPI(t, nil)

	rec, env := a.do(t, http.MethodGet, "/api/shipping/carriers", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Found 8 supported carriers", env.Message)
}

func TestMetricsEndpoint(t *testing.T) {
	a := newAPI(t, nil)
	a.do(t, http.MethodGet, "/api/products/XYZ999", "")

	rec, _ := a.do(t, http.MethodGet, "/metrics", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `path="/api/products/:code",status="404"`)
}
