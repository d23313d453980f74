package middlewares

import (
	"log/slog"
	"strings"
	"time"

	"github.com/dmitrymomot/newsletter/internal/server"
)

// Logging logs one record per request after the handler finished.
// Health probes are logged at debug level.
func Logging() server.Middleware {
	return func(next server.HandlerFunc) server.HandlerFunc {
		return func(c server.Context) error {
			start := time.Now()
			err := next(c)

			r := c.Request()
			level := slog.LevelInfo
			if strings.HasPrefix(r.URL.Path, "/health/") {
				level = slog.LevelDebug
			}

			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", c.ResponseWriter().Status()),
				slog.Int64("size", c.ResponseWriter().Size()),
				slog.Duration("duration", time.Since(start)),
			}
			if err != nil {
				attrs = append(attrs, slog.String("error", err.Error()))
			}
			c.Logger().LogAttrs(c, level, "http request", attrs...)
			return err
		}
	}
}
