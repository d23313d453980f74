package editor

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/newsletter/internal/server"
	"github.com/dmitrymomot/newsletter/pkg/content"
	"github.com/dmitrymomot/newsletter/pkg/storage"
)

func (h *Handler) uploadImage(c server.Context) error {
	if h.storage == nil {
		return server.ErrServiceUnavailable(msgNoStorage, storage.ErrNotConfigured)
	}
	f, fh, err := c.FormFile("image", uploadMemory)
	if err != nil {
		return server.ErrBadRequest(msgNotAnImage, err)
	}
	defer f.Close()

	obj, err := storage.UploadImage(c, h.storage, f, fh.Size)
	if err != nil {
		return storageError(err)
	}
	c.LogInfo("image uploaded", "key", obj.Key, "size", obj.Size, "content_type", obj.ContentType)

	resp := struct {
		storage.Object
		Message string `json:"message"`
	}{obj, msgImageUploaded}
	return c.JSON(http.StatusCreated, resp)
}

// publish uploads the rendered issue and points its "view online" link at
// the uploaded copy. The published document already carries that link.
func (h *Handler) publish(c server.Context) error {
	if h.storage == nil {
		return server.ErrServiceUnavailable(msgNoStorage, storage.ErrNotConfigured)
	}
	n := h.session.Snapshot()
	url := h.storage.URL(storage.PublishedKey(n.IssueNumber))
	n.ViewOnlineURL = url

	obj, err := storage.PublishHTML(c, h.storage, n.IssueNumber, h.renderer.Render(n))
	if err != nil {
		return storageError(err)
	}
	c.LogInfo("newsletter published", "key", obj.Key, "url", obj.URL)

	updated := h.session.Apply(func(n content.Newsletter) content.Newsletter {
		n = n.Clone()
		n.ViewOnlineURL = url
		return n
	})
	return h.state(c, updated, msgPublished)
}

func storageError(err error) error {
	switch {
	case errors.Is(err, storage.ErrFileTooLarge):
		return server.ErrPayloadTooLarge(msgImageTooLarge, err)
	case errors.Is(err, storage.ErrNotAnImage), errors.Is(err, storage.ErrEmptyFile):
		return server.ErrUnsupportedMediaType(msgNotAnImage, err)
	case errors.Is(err, storage.ErrNotConfigured):
		return server.ErrServiceUnavailable(msgNoStorage, err)
	}
	return server.ErrInternal(err)
}
