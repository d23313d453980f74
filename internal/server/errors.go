package server

import (
	"errors"
	"net/http"
)

// HTTPError is an error with a status code and a user-facing message.
type HTTPError struct {
	// Err is logged but never shown to the user.
	Err     error
	Message string
	Code    int
}

func (e *HTTPError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

// NewHTTPError creates an HTTPError. An empty message defaults to the
// status text.
func NewHTTPError(code int, message string, err error) *HTTPError {
	if message == "" {
		message = http.StatusText(code)
	}
	return &HTTPError{Code: code, Message: message, Err: err}
}

func ErrBadRequest(message string, err error) *HTTPError {
	return NewHTTPError(http.StatusBadRequest, message, err)
}

func ErrNotFound(message string) *HTTPError {
	return NewHTTPError(http.StatusNotFound, message, nil)
}

func ErrPayloadTooLarge(message string, err error) *HTTPError {
	return NewHTTPError(http.StatusRequestEntityTooLarge, message, err)
}

func ErrUnsupportedMediaType(message string, err error) *HTTPError {
	return NewHTTPError(http.StatusUnsupportedMediaType, message, err)
}

func ErrServiceUnavailable(message string, err error) *HTTPError {
	return NewHTTPError(http.StatusServiceUnavailable, message, err)
}

func ErrInternal(err error) *HTTPError {
	return NewHTTPError(http.StatusInternalServerError, "", err)
}

// AsHTTPError finds an HTTPError in err's chain.
func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	if errors.As(err, &he) {
		return he, true
	}
	return nil, false
}

// ErrorResponse is the JSON body written by DefaultErrorHandler.
type ErrorResponse struct {
	Error     string `json:"error"`
	Code      int    `json:"code"`
	RequestID string `json:"requestId,omitempty"`
}

// DefaultErrorHandler answers with an ErrorResponse. Errors that are not
// HTTPErrors become 500 and their text is not exposed. Server errors are
// logged at error level, client errors at debug.
func DefaultErrorHandler(c Context, err error) error {
	he, ok := AsHTTPError(err)
	if !ok {
		he = ErrInternal(err)
	}

	if he.Code >= http.StatusInternalServerError {
		c.Logger().ErrorContext(c, "request failed",
			"status", he.Code,
			"error", err.Error())
	} else {
		c.Logger().DebugContext(c, "request rejected",
			"status", he.Code,
			"error", err.Error())
	}

	return c.JSON(he.Code, ErrorResponse{
		Error:     he.Message,
		Code:      he.Code,
		RequestID: c.Response().Header().Get("X-Request-ID"),
	})
}
