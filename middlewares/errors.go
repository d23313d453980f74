package middlewares

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/dmitrymomot/newsletter/internal/server"
)

// PanicError is a recovered panic.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// TimeoutError reports a handler that did not finish in time.
type TimeoutError struct {
	Duration time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("request timeout after %s", e.Duration)
}

// ErrorHandler extends server.DefaultErrorHandler with the typed errors of
// this package.
func ErrorHandler(c server.Context, err error) error {
	var te *TimeoutError
	if errors.As(err, &te) {
		err = server.NewHTTPError(http.StatusGatewayTimeout, "", err)
	}
	return server.DefaultErrorHandler(c, err)
}
