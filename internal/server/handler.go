package server

// Handler declares routes on a router.
type Handler interface {
	Routes(r Router)
}

// HandlerFunc handles a request. A returned error is passed to the
// App's ErrorHandler unless the response was already written.
type HandlerFunc func(c Context) error

// Middleware wraps a HandlerFunc.
type Middleware func(next HandlerFunc) HandlerFunc

// ErrorHandler renders an error returned by a handler.
type ErrorHandler func(Context, error) error
