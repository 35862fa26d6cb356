package editor

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/geonote/platform/web/handler"
)

// SetContent godoc
// @Summary Update the compose buffer
// @Description Replaces the content of the active draft or edit.
// @Tags Editor
// @Accept json
// @Param content body Content true "Buffer content"
// @Success 204
// @Failure 400 {object} handler.Error
// @Failure 409 {object} handler.Error
// @Router /v1/editor/content [put]
func (h *Handler) SetContent(ctx *gin.Context) handler.Result {
	var body Content
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return handler.Result{
			Status: http.StatusBadRequest,
			Body:   handler.Error{Message: "invalid body"},
		}
	}

	if err := h.Editor.SetContent(body.Content); err != nil {
		return handler.Result{
			Status: http.StatusConflict,
			Body:   handler.Error{Message: err.Error()},
		}
	}
	return handler.Result{Status: http.StatusNoContent}
}
