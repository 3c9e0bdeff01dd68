package http

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"shop/internal/pkg/logging"
	"shop/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const (
	HeaderIdempotencyKey = "Idempotency-Key"
	HeaderReplayed       = "Idempotent-Replayed"
)

// IdempotencyStore remembers Idempotency-Key headers and the responses they
// produced.
type IdempotencyStore interface {
	Claim(ctx context.Context, scope, key string) (bool, error)
	Release(ctx context.Context, scope, key string) error
	Remember(ctx context.Context, scope, key string, response []byte) error
	Recall(ctx context.Context, scope, key string) ([]byte, bool, error)
}

// RequestLogger logs one line per request and puts a request scoped logger
// into the request context.
func RequestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURIPath:   true,
		LogRoutePath: true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		BeforeNextFunc: func(c echo.Context) {
			id := c.Response().Header().Get(echo.HeaderXRequestID)
			ctx := logging.WithCtx(c.Request().Context(), logger.With("request_id", id))
			c.SetRequest(c.Request().WithContext(ctx))
		},
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				"method", v.Method,
				"path", v.URIPath,
				"route", v.RoutePath,
				"status", v.Status,
				"latency_ms", v.Latency.Milliseconds(),
				"request_id", v.RequestID,
			}
			if v.Error != nil {
				logger.ErrorContext(c.Request().Context(), "request failed", append(attrs, "error", v.Error)...)
				return nil
			}
			logger.InfoContext(c.Request().Context(), "request", attrs...)
			return nil
		},
	})
}

// Metrics records request counts and latency per route pattern.
func Metrics(m *metrics.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}
			path := c.Path()
			if path == "" {
				path = c.Request().URL.Path
			}
			m.ObserveRequest(c.Request().Method, path, c.Response().Status, time.Since(start))
			return nil
		}
	}
}

type storedResponse struct {
	Status int             `json:"status"`
	Body   json.RawMessage `json:"body"`
}

type teeWriter struct {
	http.ResponseWriter
	body bytes.Buffer
}

func (w *teeWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// Idempotency makes a POST with an Idempotency-Key header run at most once.
// A repeat of a finished request gets the first response again with the
// Idempotent-Replayed header; a repeat of a request still running gets 409.
// Requests without the header pass through.
func Idempotency(store IdempotencyStore, logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := c.Request().Header.Get(HeaderIdempotencyKey)
			if key == "" || c.Request().Method != http.MethodPost {
				return next(c)
			}
			ctx := c.Request().Context()
			scope := c.Path()

			claimed, err := store.Claim(ctx, scope, key)
			if err != nil {
				logger.ErrorContext(ctx, "idempotency store unavailable", "error", err)
				return c.JSON(http.StatusServiceUnavailable, failure("Idempotency store unavailable"))
			}
			if !claimed {
				return replay(c, store, scope, key)
			}

			tee := &teeWriter{ResponseWriter: c.Response().Writer}
			c.Response().Writer = tee
			if err = next(c); err != nil {
				if releaseErr := store.Release(ctx, scope, key); releaseErr != nil {
					logger.WarnContext(ctx, "failed to release idempotency key", "key", key, "error", releaseErr)
				}
				return err
			}

			stored, err := json.Marshal(storedResponse{Status: c.Response().Status, Body: tee.body.Bytes()})
			if err == nil {
				err = store.Remember(ctx, scope, key, stored)
			}
			if err != nil {
				// without a stored response the claim would answer 409 until it expires
				logger.WarnContext(ctx, "failed to remember idempotent response", "key", key, "error", err)
				if releaseErr := store.Release(ctx, scope, key); releaseErr != nil {
					logger.WarnContext(ctx, "failed to release idempotency key", "key", key, "error", releaseErr)
				}
			}
			return nil
		}
	}
}

func replay(c echo.Context, store IdempotencyStore, scope, key string) error {
	raw, found, err := store.Recall(c.Request().Context(), scope, key)
	if err != nil || !found {
		return c.JSON(http.StatusConflict,
			failure("A request with this Idempotency-Key is already being processed"))
	}

	var stored storedResponse
	if err = json.Unmarshal(raw, &stored); err != nil {
		return c.JSON(http.StatusConflict, failure("A request with this Idempotency-Key was already processed"))
	}
	c.Response().Header().Set(HeaderReplayed, "true")
	return c.JSONBlob(stored.Status, stored.Body)
}
