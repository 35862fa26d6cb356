package notes

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/geonote/platform/web/handler"
)

// Update godoc
// @Summary Update a note
// @Description Replaces the content of a note. Id, date and coordinates never change.
// @Tags Note
// @Accept json
// @Param id path int true "Note id"
// @Param note body UpdateNote true "New content"
// @Success 204
// @Failure 400 {object} handler.Error
// @Failure 404 {object} handler.Error
// @Failure 500 {object} handler.Error
// @Router /v1/notes/{id} [put]
func (h *Handler) Update(ctx *gin.Context) handler.Result {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return handler.Result{
			Status: http.StatusBadRequest,
			Body:   handler.Error{Message: "invalid id"},
		}
	}

	var body UpdateNote
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return handler.Result{
			Status: http.StatusBadRequest,
			Body:   handler.Error{Message: "invalid body"},
		}
	}

	found, err := h.Store.Update(ctx, id, body.Content)
	switch {
	case err != nil:
		h.Log.Errorf("failed to update note %d: %s", id, err)
		return handler.Result{
			Status: http.StatusInternalServerError,
			Body:   handler.Error{Message: "failed to update note"},
		}
	case !found:
		return handler.Result{
			Status: http.StatusNotFound,
			Body:   handler.Error{Message: "note not found"},
		}
	default:
		return handler.Result{Status: http.StatusNoContent}
	}
}
