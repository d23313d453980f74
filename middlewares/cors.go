package middlewares

import (
	"net/http"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrymomot/newsletter/internal/server"
)

// CORSOption configures CORS.
type CORSOption func(*corsConfig)

type corsConfig struct {
	origins []string
	methods []string
	headers []string
	expose  []string
	maxAge  time.Duration
}

// WithAllowOrigins sets the allowed origins. "*" allows any.
func WithAllowOrigins(origins ...string) CORSOption {
	return func(c *corsConfig) {
		c.origins = origins
	}
}

// WithCORSMaxAge sets how long browsers cache a preflight.
func WithCORSMaxAge(d time.Duration) CORSOption {
	return func(c *corsConfig) {
		c.maxAge = d
	}
}

// CORS lets an editor front end served from another origin call the API.
// Without allowed origins it does nothing. Preflight requests are answered
// with 204 before routing.
func CORS(opts ...CORSOption) server.Middleware {
	cfg := &corsConfig{
		methods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		headers: []string{"Content-Type", "Accept", RequestIDHeader},
		expose:  []string{"Content-Disposition", RequestIDHeader},
		maxAge:  12 * time.Hour,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	anyOrigin := slices.Contains(cfg.origins, "*")

	return func(next server.HandlerFunc) server.HandlerFunc {
		if len(cfg.origins) == 0 {
			return next
		}
		return func(c server.Context) error {
			origin := c.Header("Origin")
			if origin == "" || (!anyOrigin && !slices.Contains(cfg.origins, origin)) {
				return next(c)
			}

			h := c.Response().Header()
			h.Add("Vary", "Origin")
			if anyOrigin {
				h.Set("Access-Control-Allow-Origin", "*")
			} else {
				h.Set("Access-Control-Allow-Origin", origin)
			}
			h.Set("Access-Control-Expose-Headers", strings.Join(cfg.expose, ", "))

			if c.Request().Method == http.MethodOptions && c.Header("Access-Control-Request-Method") != "" {
				h.Set("Access-Control-Allow-Methods", strings.Join(cfg.methods, ", "))
				h.Set("Access-Control-Allow-Headers", strings.Join(cfg.headers, ", "))
				h.Set("Access-Control-Max-Age", strconv.Itoa(int(cfg.maxAge.Seconds())))
				return c.NoContent(http.StatusNoContent)
			}
			return next(c)
		}
	}
}
