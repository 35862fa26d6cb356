package editor

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/geonote/platform/web/handler"
)

// Cancel godoc
// @Summary Cancel the active draft or edit
// @Description Discards the compose buffer without touching the store.
// @Tags Editor
// @Success 204
// @Failure 409 {object} handler.Error
// @Router /v1/editor/cancel [post]
func (h *Handler) Cancel(_ *gin.Context) handler.Result {
	if err := h.Editor.Cancel(); err != nil {
		return handler.Result{
			Status: http.StatusConflict,
			Body:   handler.Error{Message: err.Error()},
		}
	}
	return handler.Result{Status: http.StatusNoContent}
}
