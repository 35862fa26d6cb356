package editor

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/geonote/platform/web/handler"
)

// Draft godoc
// @Summary Start a draft
// @Description Begins composing a new note. Fails while another draft or edit is active.
// @Tags Editor
// @Produce json
// @Success 201 {object} editor.State
// @Failure 409 {object} handler.Error
// @Router /v1/editor/draft [post]
func (h *Handler) Draft(_ *gin.Context) handler.Result {
	if err := h.Editor.StartDraft(); err != nil {
		return handler.Result{
			Status: http.StatusConflict,
			Body:   handler.Error{Message: err.Error()},
		}
	}
	return handler.Result{
		Status: http.StatusCreated,
		Body:   h.Editor.State(),
	}
}
