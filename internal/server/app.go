package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/newsletter/pkg/health"
)

const (
	defaultLivenessPath  = "/health/live"
	defaultReadinessPath = "/health/ready"
)

// App owns the router. It is immutable after New.
type App struct {
	router       chi.Router
	logger       *slog.Logger
	errorHandler ErrorHandler
	notFound     HandlerFunc
	middlewares  []Middleware
	handlers     []Handler
	healthChecks health.Checks
	withHealth   bool
}

// Option configures an App.
type Option func(*App)

// WithLogger sets the logger handed to every Context.
func WithLogger(l *slog.Logger) Option {
	return func(a *App) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithMiddleware appends global middleware. The first listed runs first.
func WithMiddleware(mw ...Middleware) Option {
	return func(a *App) {
		a.middlewares = append(a.middlewares, mw...)
	}
}

// WithHandlers registers route declarations.
func WithHandlers(h ...Handler) Option {
	return func(a *App) {
		a.handlers = append(a.handlers, h...)
	}
}

// WithErrorHandler replaces DefaultErrorHandler.
func WithErrorHandler(h ErrorHandler) Option {
	return func(a *App) {
		if h != nil {
			a.errorHandler = h
		}
	}
}

// WithNotFoundHandler sets the handler for unmatched routes.
func WithNotFoundHandler(h HandlerFunc) Option {
	return func(a *App) {
		a.notFound = h
	}
}

// WithHealthChecks mounts /health/live and /health/ready running checks.
func WithHealthChecks(checks health.Checks) Option {
	return func(a *App) {
		a.withHealth = true
		if a.healthChecks == nil {
			a.healthChecks = health.Checks{}
		}
		for name, fn := range checks {
			a.healthChecks[name] = fn
		}
	}
}

// New builds an App.
func New(opts ...Option) *App {
	a := &App{
		router:       chi.NewRouter(),
		logger:       slog.New(slog.DiscardHandler),
		errorHandler: DefaultErrorHandler,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.setupRoutes()
	return a
}

// ServeHTTP makes App an http.Handler.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.router.ServeHTTP(w, r)
}

func (a *App) setupRoutes() {
	for _, mw := range a.middlewares {
		a.router.Use(a.adaptMiddleware(mw))
	}

	if a.notFound != nil {
		a.router.NotFound(a.wrapHandler(a.notFound))
	}

	if a.withHealth {
		a.router.Get(defaultLivenessPath, health.LivenessHandler())
		a.router.Get(defaultReadinessPath, health.ReadinessHandler(a.healthChecks, health.WithLogger(a.logger)))
	}

	r := &routerAdapter{router: a.router, app: a}
	for _, h := range a.handlers {
		h.Routes(r)
	}
}

func (a *App) wrapHandler(h HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := newContext(w, r, a.logger)
		if err := h(c); err != nil {
			a.handleError(c, err)
		}
	}
}

// adaptMiddleware turns a Middleware into chi middleware. Values stored with
// Context.Set travel on to the next handler through the request.
func (a *App) adaptMiddleware(mw Middleware) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c := newContext(w, r, a.logger)
			wrapped := mw(func(c Context) error {
				next.ServeHTTP(c.Response(), c.Request())
				return nil
			})
			if err := wrapped(c); err != nil {
				a.handleError(c, err)
			}
		})
	}
}

func (a *App) handleError(c Context, err error) {
	if c.Written() {
		a.logger.WarnContext(c, "error after response was written", slog.String("error", err.Error()))
		return
	}
	if herr := a.errorHandler(c, err); herr != nil {
		a.logger.ErrorContext(c, "error handler failed", slog.String("error", herr.Error()))
	}
}
