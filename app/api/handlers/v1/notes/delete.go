package notes

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/geonote/platform/web/handler"
)

// Delete godoc
// @Summary Delete a note
// @Description Removes a note. Its id is never reused.
// @Tags Note
// @Param id path int true "Note id"
// @Success 204
// @Failure 400 {object} handler.Error
// @Failure 404 {object} handler.Error
// @Failure 500 {object} handler.Error
// @Router /v1/notes/{id} [delete]
func (h *Handler) Delete(ctx *gin.Context) handler.Result {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return handler.Result{
			Status: http.StatusBadRequest,
			Body:   handler.Error{Message: "invalid id"},
		}
	}

	found, err := h.Store.Remove(ctx, id)
	switch {
	case err != nil:
		h.Log.Errorf("failed to delete note %d: %s", id, err)
		return handler.Result{
			Status: http.StatusInternalServerError,
			Body:   handler.Error{Message: "failed to delete note"},
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
