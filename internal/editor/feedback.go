package editor

import (
	"github.com/dmitrymomot/newsletter/internal/server"
	"github.com/dmitrymomot/newsletter/pkg/content"
)

func (h *Handler) setFeedbackStyle(c server.Context) error {
	style := content.FeedbackStyle(c.Param("style"))
	if !style.Valid() {
		return server.ErrNotFound(msgUnknownStyle)
	}
	n := h.session.Apply(func(n content.Newsletter) content.Newsletter {
		return content.SetFeedbackStyle(n, style)
	})
	return h.state(c, n, "")
}

func (h *Handler) addFeedbackOption(c server.Context) error {
	return h.state(c, h.session.Apply(content.AddFeedbackOption), "")
}

func (h *Handler) updateFeedbackOption(c server.Context) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	var p content.FeedbackOptionPatch
	if err := c.BindJSON(&p); err != nil {
		return bodyError(err)
	}
	n := h.session.Apply(func(n content.Newsletter) content.Newsletter {
		return content.UpdateFeedbackOption(n, id, p)
	})
	return h.state(c, n, "")
}

func (h *Handler) deleteFeedbackOption(c server.Context) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	n := h.session.Apply(func(n content.Newsletter) content.Newsletter {
		return content.DeleteFeedbackOption(n, id)
	})
	return h.state(c, n, "")
}
