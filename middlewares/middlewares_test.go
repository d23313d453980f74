package middlewares_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/newsletter/internal/server"
	"github.com/dmitrymomot/newsletter/middlewares"
	"github.com/dmitrymomot/newsletter/pkg/logger"
)

type routes func(r server.Router)

func (f routes) Routes(r server.Router) { f(r) }

func serve(t *testing.T, app *server.App, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)
	return rec
}

func TestRequestID(t *testing.T) {
	t.Parallel()

	app := server.New(
		server.WithMiddleware(middlewares.RequestID(middlewares.WithRequestIDGenerator(func() string { return "generated" }))),
		server.WithHandlers(routes(func(r server.Router) {
			r.GET("/", func(c server.Context) error {
				return c.String(http.StatusOK, middlewares.GetRequestID(c))
			})
		})),
	)

	t.Run("generated", func(t *testing.T) {
		t.Parallel()

		rec := serve(t, app, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, "generated", rec.Body.String())
		require.Equal(t, "generated", rec.Header().Get(middlewares.RequestIDHeader))
	})

	t.Run("upstream kept", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Correlation-ID", "upstream")
		rec := serve(t, app, req)
		require.Equal(t, "upstream", rec.Body.String())
		require.Equal(t, "upstream", rec.Header().Get(middlewares.RequestIDHeader))
	})
}

func TestRequestIDExtractor(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(logger.WithExtractors(slog.NewJSONHandler(&buf, nil), middlewares.RequestIDExtractor()))

	app := server.New(
		server.WithLogger(log),
		server.WithMiddleware(middlewares.RequestID(middlewares.WithRequestIDGenerator(func() string { return "rid-1" }))),
		server.WithHandlers(routes(func(r server.Router) {
			r.GET("/", func(c server.Context) error {
				c.LogInfo("handled")
				return c.NoContent(http.StatusNoContent)
			})
		})),
	)
	serve(t, app, httptest.NewRequest(http.MethodGet, "/", nil))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	require.Equal(t, "rid-1", rec["request_id"])

	_, ok := middlewares.RequestIDExtractor()(context.Background())
	require.False(t, ok)
}

func TestRecover(t *testing.T) {
	t.Parallel()

	app := server.New(
		server.WithMiddleware(middlewares.Recover()),
		server.WithErrorHandler(func(c server.Context, err error) error {
			pe, ok := err.(*middlewares.PanicError)
			require.True(t, ok)
			require.Equal(t, "kaboom", pe.Value)
			require.NotEmpty(t, pe.Stack)
			return c.String(http.StatusInternalServerError, "recovered")
		}),
		server.WithHandlers(routes(func(r server.Router) {
			r.GET("/", func(server.Context) error { panic("kaboom") })
		})),
	)

	rec := serve(t, app, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, "recovered", rec.Body.String())
}

func TestTimeout(t *testing.T) {
	t.Parallel()

	app := server.New(
		server.WithErrorHandler(middlewares.ErrorHandler),
		server.WithHandlers(routes(func(r server.Router) {
			r.GET("/slow", func(c server.Context) error {
				<-c.Done()
				return c.Err()
			}, middlewares.Timeout(20*time.Millisecond))
			r.GET("/fast", func(c server.Context) error {
				_, ok := c.Deadline()
				require.True(t, ok)
				return c.NoContent(http.StatusNoContent)
			}, middlewares.Timeout(time.Second))
		})),
	)

	require.Equal(t, http.StatusGatewayTimeout, serve(t, app, httptest.NewRequest(http.MethodGet, "/slow", nil)).Code)
	require.Equal(t, http.StatusNoContent, serve(t, app, httptest.NewRequest(http.MethodGet, "/fast", nil)).Code)
}

func TestLogging(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	app := server.New(
		server.WithLogger(slog.New(slog.NewJSONHandler(&buf, nil))),
		server.WithMiddleware(middlewares.Logging()),
		server.WithHandlers(routes(func(r server.Router) {
			r.GET("/teapot", func(c server.Context) error {
				return c.String(http.StatusTeapot, "short and stout")
			})
		})),
	)
	serve(t, app, httptest.NewRequest(http.MethodGet, "/teapot", nil))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	require.Equal(t, "http request", rec["msg"])
	require.Equal(t, "/teapot", rec["path"])
	require.EqualValues(t, http.StatusTeapot, rec["status"])
	require.EqualValues(t, len("short and stout"), rec["size"])
}

func TestCORS(t *testing.T) {
	t.Parallel()

	app := server.New(
		server.WithMiddleware(middlewares.CORS(middlewares.WithAllowOrigins("https://editor.example.com"))),
		server.WithHandlers(routes(func(r server.Router) {
			r.GET("/api/lint", func(c server.Context) error { return c.NoContent(http.StatusOK) })
		})),
	)

	t.Run("preflight", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodOptions, "/api/lint", nil)
		req.Header.Set("Origin", "https://editor.example.com")
		req.Header.Set("Access-Control-Request-Method", http.MethodPatch)
		rec := serve(t, app, req)
		require.Equal(t, http.StatusNoContent, rec.Code)
		require.Equal(t, "https://editor.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
		require.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPatch)
	})

	t.Run("foreign origin ignored", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/api/lint", nil)
		req.Header.Set("Origin", "https://evil.example.com")
		rec := serve(t, app, req)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})
}
