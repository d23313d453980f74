package editor

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/newsletter/internal/server"
	"github.com/dmitrymomot/newsletter/pkg/compat"
	"github.com/dmitrymomot/newsletter/pkg/export"
)

func (h *Handler) preview(c server.Context) error {
	return c.Render(http.StatusOK, h.renderer.Component(h.session.Snapshot()))
}

func (h *Handler) lint(c server.Context) error {
	return c.JSON(http.StatusOK, compat.Summarize(compat.Check(h.session.Snapshot())))
}

func (h *Handler) download(c server.Context) error {
	n := h.session.Snapshot()
	kind := export.Kind(c.Param("kind"))

	data, err := export.Build(n, h.renderer.Render(n), kind, h.export...)
	switch {
	case errors.Is(err, export.ErrUnknownKind):
		return server.ErrNotFound(msgUnknownExport)
	case err != nil:
		return server.ErrInternal(err)
	}

	c.LogInfo("newsletter exported", "kind", string(kind), "size", len(data))
	return c.Attachment(export.FileName(n.IssueNumber, kind), kind.ContentType(), data)
}
