package editor

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/newsletter/internal/server"
	"github.com/dmitrymomot/newsletter/pkg/helpdoc"
)

type helpEntry struct {
	Name        string `json:"name"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

func (h *Handler) helpIndex(c server.Context) error {
	pages, err := h.help.List()
	if err != nil {
		return server.ErrInternal(err)
	}
	out := make([]helpEntry, 0, len(pages))
	for _, p := range pages {
		out = append(out, helpEntry{Name: p.Name, Title: p.Meta.Title, Description: p.Meta.Description})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *Handler) helpPage(c server.Context) error {
	p, err := h.help.Render(c.Param("doc"))
	if errors.Is(err, helpdoc.ErrPageNotFound) {
		return server.ErrNotFound(msgHelpNotFound)
	}
	if err != nil {
		return server.ErrInternal(err)
	}
	return c.HTML(http.StatusOK, p.HTML)
}
