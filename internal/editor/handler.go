package editor

import (
	"net/http"
	"strconv"
	"time"

	"github.com/dmitrymomot/newsletter/internal/server"
	"github.com/dmitrymomot/newsletter/middlewares"
	"github.com/dmitrymomot/newsletter/pkg/content"
	"github.com/dmitrymomot/newsletter/pkg/emailhtml"
	"github.com/dmitrymomot/newsletter/pkg/export"
	"github.com/dmitrymomot/newsletter/pkg/helpdoc"
	"github.com/dmitrymomot/newsletter/pkg/project"
	"github.com/dmitrymomot/newsletter/pkg/storage"
)

// Notification texts shown by the editor.
const (
	msgProjectLoaded   = "✅ Projekt wczytany pomyślnie!"
	msgImportFailed    = "❌ Błąd wczytywania pliku! Sprawdź format."
	msgNewProject      = "📄 Nowy projekt utworzony!"
	msgTemplateLoaded  = "📋 Szablon wczytany!"
	msgSchemeApplied   = "🎨 Schemat kolorów zastosowany!"
	msgImageUploaded   = "🖼️ Obraz przesłany!"
	msgPublished       = "🌐 Wersja online opublikowana!"
	msgInvalidData     = "Nieprawidłowe dane."
	msgNoStorage       = "Przechowywanie plików nie jest skonfigurowane."
	msgNoStore         = "Historia projektów jest niedostępna."
	msgImageTooLarge   = "Obraz jest za duży (maks. 5 MB)."
	msgNotAnImage      = "Wybierz plik graficzny."
	msgUnknownExport   = "Nieznany format eksportu."
	msgUnknownTemplate = "Nieznany szablon."
	msgUnknownScheme   = "Nieznany schemat kolorów."
	msgUnknownStyle    = "Nieznany styl oceny."
	msgNoRecent        = "Nie znaleziono projektu."
	msgHelpNotFound    = "Nie znaleziono strony pomocy."
)

const (
	exportTimeout = 30 * time.Second
	uploadMemory  = 1 << 20
)

// Handler serves the editor API.
type Handler struct {
	session  *Session
	store    project.Store
	storage  storage.Storage
	help     *helpdoc.Renderer
	renderer *emailhtml.Renderer
	export   []export.Option
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithStore enables the recent projects routes.
func WithStore(s project.Store) HandlerOption {
	return func(h *Handler) {
		h.store = s
	}
}

// WithStorage enables image upload and publishing.
func WithStorage(s storage.Storage) HandlerOption {
	return func(h *Handler) {
		h.storage = s
	}
}

// WithHelp serves help pages from r.
func WithHelp(r *helpdoc.Renderer) HandlerOption {
	return func(h *Handler) {
		h.help = r
	}
}

// WithRenderer replaces the default HTML renderer.
func WithRenderer(r *emailhtml.Renderer) HandlerOption {
	return func(h *Handler) {
		if r != nil {
			h.renderer = r
		}
	}
}

// WithExportOptions sets the envelope options of EML, draft and MHT downloads.
func WithExportOptions(opts ...export.Option) HandlerOption {
	return func(h *Handler) {
		h.export = append(h.export, opts...)
	}
}

// NewHandler serves session.
func NewHandler(session *Session, opts ...HandlerOption) *Handler {
	h := &Handler{
		session:  session,
		renderer: emailhtml.New(),
		help:     helpdoc.New(helpdoc.Docs()),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Routes implements server.Handler.
func (h *Handler) Routes(r server.Router) {
	r.Route("/api", func(r server.Router) {
		r.GET("/newsletter", h.getNewsletter)
		r.PUT("/newsletter", h.replaceNewsletter)
		r.PATCH("/newsletter", h.patchNewsletter)
		r.POST("/newsletter/reset", h.resetNewsletter)
		r.POST("/newsletter/templates/{template}", h.applyTemplate)
		r.POST("/newsletter/schemes/{scheme}", h.applyScheme)
		r.GET("/newsletter/images", h.listImages)
		r.GET("/autosave", h.autosaveStatus)
		r.GET("/presets", h.presets)

		r.POST("/articles", h.addArticle)
		r.PATCH("/articles/{id}", h.updateArticle)
		r.DELETE("/articles/{id}", h.deleteArticle)
		r.POST("/articles/{id}/move/{direction}", h.moveArticle)
		r.POST("/articles/{id}/select", h.selectArticle)

		r.PUT("/feedback/style/{style}", h.setFeedbackStyle)
		r.POST("/feedback/options", h.addFeedbackOption)
		r.PATCH("/feedback/options/{id}", h.updateFeedbackOption)
		r.DELETE("/feedback/options/{id}", h.deleteFeedbackOption)

		r.GET("/lint", h.lint)
		r.GET("/projects/recent", h.recentProjects)
		r.POST("/projects/recent/{index}/load", h.loadRecentProject)
		r.POST("/import", h.importProject)
		r.POST("/images", h.uploadImage, middlewares.Timeout(exportTimeout))
		r.POST("/publish", h.publish, middlewares.Timeout(exportTimeout))
	})

	r.GET("/preview", h.preview)
	r.GET("/export/{kind}", h.download, middlewares.Timeout(exportTimeout))
	r.GET("/help", h.helpIndex)
	r.GET("/help/{doc}", h.helpPage)
}

// stateResponse is returned by every route that reads or changes the model.
type stateResponse struct {
	Newsletter content.Newsletter `json:"newsletter"`
	SaveStatus project.Status     `json:"saveStatus"`
	Message    string             `json:"message,omitempty"`
}

func (h *Handler) state(c server.Context, n content.Newsletter, msg string) error {
	return c.JSON(http.StatusOK, stateResponse{
		Newsletter: n,
		SaveStatus: h.session.SaveStatus(),
		Message:    msg,
	})
}

func intParam(c server.Context, name string) (int, error) {
	v, err := strconv.Atoi(c.Param(name))
	if err != nil {
		return 0, server.ErrBadRequest(msgInvalidData, err)
	}
	return v, nil
}
