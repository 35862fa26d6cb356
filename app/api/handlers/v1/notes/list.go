package notes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/geonote/platform/web/handler"
)

// List godoc
// @Summary List notes
// @Description Lists all notes, newest first
// @Tags Note
// @Produce json
// @Success 200 {array} note.Note
// @Router /v1/notes [get]
func (h *Handler) List(_ *gin.Context) handler.Result {
	return handler.Result{
		Status: http.StatusOK,
		Body:   h.Store.List(),
	}
}
