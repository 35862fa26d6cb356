package editor

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/geonote/business/v1/editor"
	"github.com/ribgsilva/geonote/platform/web/handler"
)

// Edit godoc
// @Summary Start editing a note
// @Description Begins editing an existing note, seeding the buffer with its current content.
// @Tags Editor
// @Produce json
// @Param id path int true "Note id"
// @Success 201 {object} editor.State
// @Failure 400 {object} handler.Error
// @Failure 404 {object} handler.Error
// @Failure 409 {object} handler.Error
// @Router /v1/editor/edit/{id} [post]
func (h *Handler) Edit(ctx *gin.Context) handler.Result {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return handler.Result{
			Status: http.StatusBadRequest,
			Body:   handler.Error{Message: "invalid id"},
		}
	}

	switch err := h.Editor.StartEdit(id); err {
	case nil:
		return handler.Result{
			Status: http.StatusCreated,
			Body:   h.Editor.State(),
		}
	case editor.ErrUnknownNote:
		return handler.Result{
			Status: http.StatusNotFound,
			Body:   handler.Error{Message: "note not found"},
		}
	default:
		return handler.Result{
			Status: http.StatusConflict,
			Body:   handler.Error{Message: err.Error()},
		}
	}
}
