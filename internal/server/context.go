package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// DefaultBodyLimit caps request bodies read through Body and BindJSON.
const DefaultBodyLimit = 8 << 20

// ErrBodyTooLarge is returned when a request body exceeds the limit.
var ErrBodyTooLarge = errors.New("server: request body too large")

// Component renders a document. templ.Component satisfies it.
type Component interface {
	Render(ctx context.Context, w io.Writer) error
}

// Context gives handlers access to the request and response.
// It implements context.Context by delegating to the request context.
type Context interface {
	context.Context

	Request() *http.Request
	Response() http.ResponseWriter
	ResponseWriter() *ResponseWriter

	// Param returns a chi URL parameter.
	Param(name string) string
	Query(name string) string
	QueryDefault(name, defaultValue string) string
	Header(name string) string
	SetHeader(name, value string)

	// Body reads the whole request body up to DefaultBodyLimit.
	Body() ([]byte, error)
	// BindJSON decodes the request body into v.
	BindJSON(v any) error
	// FormFile returns an uploaded multipart file.
	FormFile(name string, maxMemory int64) (multipart.File, *multipart.FileHeader, error)

	JSON(code int, v any) error
	String(code int, s string) error
	HTML(code int, s string) error
	Blob(code int, contentType string, data []byte) error
	// Attachment sends data as a download named filename.
	Attachment(filename, contentType string, data []byte) error
	Render(code int, c Component) error
	NoContent(code int) error
	Written() bool

	Logger() *slog.Logger
	LogInfo(msg string, attrs ...any)
	LogError(msg string, attrs ...any)

	// Set stores a value in the request context for later middleware and handlers.
	Set(key, value any)
	Get(key any) any
	// SetContext replaces the request context, e.g. to add a deadline.
	SetContext(ctx context.Context)
}

type requestContext struct {
	request  *http.Request
	response *ResponseWriter
	logger   *slog.Logger
}

func newContext(w http.ResponseWriter, r *http.Request, log *slog.Logger) *requestContext {
	return &requestContext{
		request:  r,
		response: NewResponseWriter(w),
		logger:   log,
	}
}

func (c *requestContext) Deadline() (time.Time, bool)   { return c.request.Context().Deadline() }
func (c *requestContext) Done() <-chan struct{}         { return c.request.Context().Done() }
func (c *requestContext) Err() error                    { return c.request.Context().Err() }
func (c *requestContext) Value(key any) any             { return c.request.Context().Value(key) }
func (c *requestContext) Request() *http.Request        { return c.request }
func (c *requestContext) Response() http.ResponseWriter { return c.response }
func (c *requestContext) ResponseWriter() *ResponseWriter {
	return c.response
}

func (c *requestContext) Param(name string) string {
	return chi.URLParam(c.request, name)
}

func (c *requestContext) Query(name string) string {
	return c.request.URL.Query().Get(name)
}

func (c *requestContext) QueryDefault(name, defaultValue string) string {
	if v := c.Query(name); v != "" {
		return v
	}
	return defaultValue
}

func (c *requestContext) Header(name string) string {
	return c.request.Header.Get(name)
}

func (c *requestContext) SetHeader(name, value string) {
	c.response.Header().Set(name, value)
}

func (c *requestContext) Body() ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(c.request.Body, DefaultBodyLimit+1))
	if err != nil {
		return nil, err
	}
	if len(data) > DefaultBodyLimit {
		return nil, ErrBodyTooLarge
	}
	return data, nil
}

func (c *requestContext) BindJSON(v any) error {
	data, err := c.Body()
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("bind json: %w", err)
	}
	return nil
}

func (c *requestContext) FormFile(name string, maxMemory int64) (multipart.File, *multipart.FileHeader, error) {
	if err := c.request.ParseMultipartForm(maxMemory); err != nil {
		return nil, nil, err
	}
	return c.request.FormFile(name)
}

func (c *requestContext) JSON(code int, v any) error {
	c.SetHeader("Content-Type", "application/json; charset=utf-8")
	c.response.WriteHeader(code)
	return json.NewEncoder(c.response).Encode(v)
}

func (c *requestContext) String(code int, s string) error {
	return c.Blob(code, "text/plain; charset=utf-8", []byte(s))
}

func (c *requestContext) HTML(code int, s string) error {
	return c.Blob(code, "text/html; charset=utf-8", []byte(s))
}

func (c *requestContext) Blob(code int, contentType string, data []byte) error {
	c.SetHeader("Content-Type", contentType)
	c.response.WriteHeader(code)
	_, err := c.response.Write(data)
	return err
}

func (c *requestContext) Attachment(filename, contentType string, data []byte) error {
	c.SetHeader("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": filename}))
	return c.Blob(http.StatusOK, contentType, data)
}

func (c *requestContext) Render(code int, comp Component) error {
	c.SetHeader("Content-Type", "text/html; charset=utf-8")
	c.response.WriteHeader(code)
	return comp.Render(c.request.Context(), c.response)
}

func (c *requestContext) NoContent(code int) error {
	c.response.WriteHeader(code)
	return nil
}

func (c *requestContext) Written() bool {
	return c.response.Written()
}

func (c *requestContext) Logger() *slog.Logger {
	return c.logger
}

func (c *requestContext) LogInfo(msg string, attrs ...any) {
	c.logger.InfoContext(c.request.Context(), msg, attrs...)
}

func (c *requestContext) LogError(msg string, attrs ...any) {
	c.logger.ErrorContext(c.request.Context(), msg, attrs...)
}

func (c *requestContext) Set(key, value any) {
	c.request = c.request.WithContext(context.WithValue(c.request.Context(), key, value))
}

func (c *requestContext) Get(key any) any {
	return c.request.Context().Value(key)
}

func (c *requestContext) SetContext(ctx context.Context) {
	c.request = c.request.WithContext(ctx)
}
