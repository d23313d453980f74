package editor

import (
	"errors"
	"net/http"
	"slices"
	"time"

	"github.com/dmitrymomot/newsletter/internal/server"
	"github.com/dmitrymomot/newsletter/pkg/content"
	"github.com/dmitrymomot/newsletter/pkg/project"
)

func (h *Handler) getNewsletter(c server.Context) error {
	return h.state(c, h.session.Snapshot(), "")
}

// replaceNewsletter takes a full snapshot. Missing or mistyped fields fall
// back to their defaults, the same way an imported file does.
func (h *Handler) replaceNewsletter(c server.Context) error {
	data, err := c.Body()
	if err != nil {
		return bodyError(err)
	}
	n, err := content.Import(data)
	if err != nil {
		return server.ErrBadRequest(msgImportFailed, err)
	}
	return h.state(c, h.session.Replace(n), "")
}

func (h *Handler) patchNewsletter(c server.Context) error {
	var p content.Patch
	if err := c.BindJSON(&p); err != nil {
		return bodyError(err)
	}
	n := h.session.Apply(func(n content.Newsletter) content.Newsletter {
		return content.Normalize(content.Merge(n, p))
	})
	return h.state(c, n, "")
}

func (h *Handler) resetNewsletter(c server.Context) error {
	return h.state(c, h.session.Replace(content.Default()), msgNewProject)
}

func (h *Handler) applyTemplate(c server.Context) error {
	t := content.Template(c.Param("template"))
	if !slices.Contains(content.Templates, t) {
		return server.ErrNotFound(msgUnknownTemplate)
	}
	n := h.session.Apply(func(n content.Newsletter) content.Newsletter {
		return content.ApplyTemplate(n, t)
	})
	return h.state(c, n, msgTemplateLoaded)
}

func (h *Handler) applyScheme(c server.Context) error {
	name := c.Param("scheme")
	if !slices.ContainsFunc(content.ColorSchemes, func(s content.ColorScheme) bool { return s.Name == name }) {
		return server.ErrNotFound(msgUnknownScheme)
	}
	n := h.session.Apply(func(n content.Newsletter) content.Newsletter {
		return content.ApplyColorScheme(n, name)
	})
	return h.state(c, n, msgSchemeApplied)
}

func (h *Handler) listImages(c server.Context) error {
	return c.JSON(http.StatusOK, h.session.Snapshot().Images())
}

type presetsResponse struct {
	Templates    []content.Template    `json:"templates"`
	ColorSchemes []content.ColorScheme `json:"colorSchemes"`
	Fonts        []content.Font        `json:"fonts"`
}

func (h *Handler) presets(c server.Context) error {
	return c.JSON(http.StatusOK, presetsResponse{
		Templates:    content.Templates,
		ColorSchemes: content.ColorSchemes,
		Fonts:        content.Fonts,
	})
}

type autosaveResponse struct {
	Status  project.Status `json:"status"`
	SavedAt *time.Time     `json:"savedAt,omitempty"`
	Error   string         `json:"error,omitempty"`
}

func (h *Handler) autosaveStatus(c server.Context) error {
	resp := autosaveResponse{Status: h.session.SaveStatus()}
	if a := h.session.Autosaver(); a != nil {
		if p, ok := a.LastSaved(); ok {
			resp.SavedAt = &p.SavedAt
		}
		if err := a.Err(); err != nil {
			resp.Error = err.Error()
		}
	}
	return c.JSON(http.StatusOK, resp)
}

func bodyError(err error) error {
	if errors.Is(err, server.ErrBodyTooLarge) {
		return server.ErrPayloadTooLarge(msgInvalidData, err)
	}
	return server.ErrBadRequest(msgInvalidData, err)
}
