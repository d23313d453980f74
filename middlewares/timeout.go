package middlewares

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrymomot/newsletter/internal/server"
)

// DefaultTimeout applies when Timeout is given a non-positive duration.
const DefaultTimeout = 30 * time.Second

// Timeout gives the handler a deadline and returns *TimeoutError when it is
// missed. The handler keeps running until it notices ctx.Done.
func Timeout(d time.Duration) server.Middleware {
	if d <= 0 {
		d = DefaultTimeout
	}

	return func(next server.HandlerFunc) server.HandlerFunc {
		return func(c server.Context) error {
			ctx, cancel := context.WithTimeout(c.Request().Context(), d)
			defer cancel()
			c.SetContext(ctx)

			done := make(chan error, 1)
			go func() {
				done <- next(c)
			}()

			select {
			case err := <-done:
				return err
			case <-ctx.Done():
				if errors.Is(ctx.Err(), context.DeadlineExceeded) {
					c.Logger().WarnContext(ctx, "request timeout", "timeout", d.String())
					return &TimeoutError{Duration: d}
				}
				return ctx.Err()
			}
		}
	}
}
