package notes

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/geonote/business/v1/note"
	"github.com/ribgsilva/geonote/platform/web/handler"
)

// Import godoc
// @Summary Import a collection
// @Description Replaces the whole collection with an exported notes.json blob, either as multipart field "file" or as the raw body. A malformed blob leaves the store untouched.
// @Tags Note
// @Accept json
// @Success 204
// @Failure 400 {object} handler.Error
// @Failure 500 {object} handler.Error
// @Router /v1/notes/import [post]
func (h *Handler) Import(ctx *gin.Context) handler.Result {
	data, err := importBody(ctx)
	if err != nil {
		return handler.Result{
			Status: http.StatusBadRequest,
			Body:   handler.Error{Message: "could not read import file"},
		}
	}

	err = h.Store.Import(ctx, data)
	switch {
	case errors.Is(err, note.ErrInvalidImport):
		h.Log.Warnf("import rejected: %s", err)
		return handler.Result{
			Status: http.StatusBadRequest,
			Body:   handler.Error{Message: err.Error()},
		}
	case err != nil:
		h.Log.Errorf("failed to import notes: %s", err)
		return handler.Result{
			Status: http.StatusInternalServerError,
			Body:   handler.Error{Message: "failed to import notes"},
		}
	default:
		return handler.Result{Status: http.StatusNoContent}
	}
}

func importBody(ctx *gin.Context) ([]byte, error) {
	file, err := ctx.FormFile("file")
	if err != nil {
		// not multipart, take the raw body
		return io.ReadAll(ctx.Request.Body)
	}

	f, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()
	return io.ReadAll(f)
}
