package editor

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/geonote/business/v1/editor"
	"github.com/ribgsilva/geonote/platform/web/handler"
)

// Commit godoc
// @Summary Commit the active draft or edit
// @Description Finishes composing. A draft commit waits for the device location first; if it cannot be obtained the note is created without a coordinate. Blank drafts commit to nothing.
// @Tags Editor
// @Produce json
// @Success 200 {object} note.Note
// @Success 204
// @Failure 409 {object} handler.Error
// @Failure 500 {object} handler.Error
// @Router /v1/editor/commit [post]
func (h *Handler) Commit(ctx *gin.Context) handler.Result {
	n, err := h.Editor.Commit(ctx)
	switch {
	case errors.Is(err, editor.ErrIdle):
		return handler.Result{
			Status: http.StatusConflict,
			Body:   handler.Error{Message: err.Error()},
		}
	case err != nil:
		h.Log.Errorf("failed to commit: %s", err)
		return handler.Result{
			Status: http.StatusInternalServerError,
			Body:   handler.Error{Message: "failed to commit"},
		}
	case n == nil:
		return handler.Result{Status: http.StatusNoContent}
	default:
		return handler.Result{
			Status: http.StatusOK,
			Body:   n,
		}
	}
}
