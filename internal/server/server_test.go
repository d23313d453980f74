package server_test

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/newsletter/internal/server"
)

type routes func(r server.Router)

func (f routes) Routes(r server.Router) { f(r) }

type ctxKey struct{}

func TestApp_Routing(t *testing.T) {
	t.Parallel()

	app := server.New(server.WithHandlers(routes(func(r server.Router) {
		r.Route("/api", func(r server.Router) {
			r.GET("/items/{id}", func(c server.Context) error {
				return c.JSON(http.StatusOK, map[string]string{"id": c.Param("id"), "q": c.Query("q")})
			})
			r.POST("/echo", func(c server.Context) error {
				var v map[string]any
				if err := c.BindJSON(&v); err != nil {
					return server.ErrBadRequest("invalid json", err)
				}
				return c.JSON(http.StatusCreated, v)
			})
		})
	})))

	t.Run("params and query", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		app.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/items/42?q=x", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `{"id":"42","q":"x"}`, rec.Body.String())
	})

	t.Run("bind json", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		app.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/echo", strings.NewReader(`{"a":1}`)))
		require.Equal(t, http.StatusCreated, rec.Code)
		require.JSONEq(t, `{"a":1}`, rec.Body.String())
	})

	t.Run("http error rendered as json", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		app.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/echo", strings.NewReader(`{`)))
		require.Equal(t, http.StatusBadRequest, rec.Code)

		var resp server.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, "invalid json", resp.Error)
		require.Equal(t, http.StatusBadRequest, resp.Code)
	})
}

func TestApp_PlainErrorsHidden(t *testing.T) {
	t.Parallel()

	app := server.New(server.WithHandlers(routes(func(r server.Router) {
		r.GET("/boom", func(server.Context) error { return errors.New("secret detail") })
	})))

	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.NotContains(t, rec.Body.String(), "secret detail")
}

func TestApp_MiddlewareOrderAndValues(t *testing.T) {
	t.Parallel()

	var order []string
	tag := func(name string) server.Middleware {
		return func(next server.HandlerFunc) server.HandlerFunc {
			return func(c server.Context) error {
				order = append(order, name)
				return next(c)
			}
		}
	}
	setter := func(next server.HandlerFunc) server.HandlerFunc {
		return func(c server.Context) error {
			c.Set(ctxKey{}, "value")
			return next(c)
		}
	}

	app := server.New(
		server.WithMiddleware(tag("global"), setter),
		server.WithHandlers(routes(func(r server.Router) {
			r.GET("/", func(c server.Context) error {
				return c.String(http.StatusOK, c.Get(ctxKey{}).(string))
			}, tag("route-1"), tag("route-2"))
		})),
	)

	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, "value", rec.Body.String())
	require.Equal(t, []string{"global", "route-1", "route-2"}, order)
}

func TestApp_Attachment(t *testing.T) {
	t.Parallel()

	app := server.New(server.WithHandlers(routes(func(r server.Router) {
		r.GET("/file", func(c server.Context) error {
			return c.Attachment("newsletter-7.eml", "message/rfc822", []byte("body"))
		})
	})))

	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/file", nil))
	require.Equal(t, `attachment; filename=newsletter-7.eml`, rec.Header().Get("Content-Disposition"))
	require.Equal(t, "message/rfc822", rec.Header().Get("Content-Type"))
	require.Equal(t, "body", rec.Body.String())
}

func TestApp_Health(t *testing.T) {
	t.Parallel()

	app := server.New(server.WithHealthChecks(nil))

	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestResponseWriter(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	w := server.NewResponseWriter(rec)
	require.Same(t, w, server.NewResponseWriter(w))
	require.False(t, w.Written())

	_, err := w.Write([]byte("abc"))
	require.NoError(t, err)
	w.WriteHeader(http.StatusTeapot)

	require.True(t, w.Written())
	require.Equal(t, http.StatusOK, w.Status())
	require.Equal(t, int64(3), w.Size())
}

func TestApp_RunGracefulShutdown(t *testing.T) {
	t.Parallel()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	hookCalled := make(chan struct{})

	done := make(chan error, 1)
	go func() {
		done <- server.New().Run(ctx,
			server.Listener(ln),
			server.ShutdownHook(func(context.Context) error {
				close(hookCalled)
				return nil
			}),
		)
	}()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + ln.Addr().String() + "/missing")
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusNotFound
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
	<-hookCalled
}
