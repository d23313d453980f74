package middlewares

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dmitrymomot/newsletter/internal/server"
	"github.com/dmitrymomot/newsletter/pkg/logger"
)

type requestIDKey struct{}

// RequestIDHeader is read from the request and echoed in the response.
const RequestIDHeader = "X-Request-ID"

// RequestIDOption configures RequestID.
type RequestIDOption func(*requestIDConfig)

type requestIDConfig struct {
	generator func() string
	headers   []string
}

// WithRequestIDGenerator replaces the UUID generator.
func WithRequestIDGenerator(gen func() string) RequestIDOption {
	return func(cfg *requestIDConfig) {
		if gen != nil {
			cfg.generator = gen
		}
	}
}

// WithRequestIDHeaders sets the incoming headers checked, in order, for an
// upstream ID.
func WithRequestIDHeaders(headers ...string) RequestIDOption {
	return func(cfg *requestIDConfig) {
		cfg.headers = headers
	}
}

// RequestID keeps an upstream request ID or generates one, stores it in the
// request context and sets the X-Request-ID response header.
func RequestID(opts ...RequestIDOption) server.Middleware {
	cfg := &requestIDConfig{
		generator: uuid.NewString,
		headers:   []string{RequestIDHeader, "X-Correlation-ID"},
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next server.HandlerFunc) server.HandlerFunc {
		return func(c server.Context) error {
			var id string
			for _, h := range cfg.headers {
				if id = c.Header(h); id != "" {
					break
				}
			}
			if id == "" {
				id = cfg.generator()
			}

			c.Set(requestIDKey{}, id)
			c.SetHeader(RequestIDHeader, id)
			return next(c)
		}
	}
}

// GetRequestID returns the request ID stored by RequestID, or "".
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// RequestIDExtractor adds request_id to log records.
func RequestIDExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if id := GetRequestID(ctx); id != "" {
			return slog.String("request_id", id), true
		}
		return slog.Attr{}, false
	}
}
