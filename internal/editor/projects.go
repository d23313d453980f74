package editor

import (
	"io"
	"mime"
	"net/http"

	"github.com/dmitrymomot/newsletter/internal/server"
	"github.com/dmitrymomot/newsletter/pkg/content"
	"github.com/dmitrymomot/newsletter/pkg/project"
)

func (h *Handler) recentProjects(c server.Context) error {
	if h.store == nil {
		return c.JSON(http.StatusOK, []project.Project{})
	}
	list, err := h.store.Recent(c)
	if err != nil {
		return server.ErrInternal(err)
	}
	if list == nil {
		list = []project.Project{}
	}
	return c.JSON(http.StatusOK, list)
}

func (h *Handler) loadRecentProject(c server.Context) error {
	if h.store == nil {
		return server.ErrServiceUnavailable(msgNoStore, nil)
	}
	i, err := intParam(c, "index")
	if err != nil {
		return err
	}
	list, err := h.store.Recent(c)
	if err != nil {
		return server.ErrInternal(err)
	}
	if i < 0 || i >= len(list) {
		return server.ErrNotFound(msgNoRecent)
	}
	return h.state(c, h.session.Replace(list[i].State), msgProjectLoaded)
}

// importProject loads a project file sent either as the raw request body
// or as the "file" field of a multipart form. A malformed file leaves the
// current newsletter untouched.
func (h *Handler) importProject(c server.Context) error {
	data, err := readUpload(c)
	if err != nil {
		return err
	}
	n, err := content.Import(data)
	if err != nil {
		c.Logger().WarnContext(c, "project import rejected", "error", err)
		return server.ErrBadRequest(msgImportFailed, err)
	}
	return h.state(c, h.session.Replace(n), msgProjectLoaded)
}

func readUpload(c server.Context) ([]byte, error) {
	mt, _, _ := mime.ParseMediaType(c.Header("Content-Type"))
	if mt != "multipart/form-data" {
		data, err := c.Body()
		if err != nil {
			return nil, bodyError(err)
		}
		return data, nil
	}

	f, _, err := c.FormFile("file", uploadMemory)
	if err != nil {
		return nil, server.ErrBadRequest(msgImportFailed, err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, server.DefaultBodyLimit+1))
	if err != nil {
		return nil, server.ErrBadRequest(msgImportFailed, err)
	}
	if len(data) > server.DefaultBodyLimit {
		return nil, server.ErrPayloadTooLarge(msgImportFailed, server.ErrBodyTooLarge)
	}
	return data, nil
}
