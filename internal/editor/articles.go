package editor

import (
	"github.com/dmitrymomot/newsletter/internal/server"
	"github.com/dmitrymomot/newsletter/pkg/content"
)

var directions = map[string]content.Direction{
	"up":   content.Up,
	"down": content.Down,
}

func (h *Handler) addArticle(c server.Context) error {
	return h.state(c, h.session.Apply(content.AddArticle), "")
}

func (h *Handler) updateArticle(c server.Context) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	var p content.ArticlePatch
	if err := c.BindJSON(&p); err != nil {
		return bodyError(err)
	}
	n := h.session.Apply(func(n content.Newsletter) content.Newsletter {
		return content.UpdateArticle(n, id, p)
	})
	return h.state(c, n, "")
}

func (h *Handler) deleteArticle(c server.Context) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	n := h.session.Apply(func(n content.Newsletter) content.Newsletter {
		return content.DeleteArticle(n, id)
	})
	return h.state(c, n, "")
}

func (h *Handler) moveArticle(c server.Context) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	d, ok := directions[c.Param("direction")]
	if !ok {
		return server.ErrBadRequest(msgInvalidData, nil)
	}
	n := h.session.Apply(func(n content.Newsletter) content.Newsletter {
		return content.MoveArticle(n, id, d)
	})
	return h.state(c, n, "")
}

func (h *Handler) selectArticle(c server.Context) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	n := h.session.Apply(func(n content.Newsletter) content.Newsletter {
		return content.SelectArticle(n, id)
	})
	return h.state(c, n, "")
}
