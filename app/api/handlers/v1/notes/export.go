package notes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/geonote/platform/web/handler"
)

// Export godoc
// @Summary Export the collection
// @Description Downloads the whole collection, id counter included, as notes.json. The blob round-trips through import.
// @Tags Note
// @Produce json
// @Success 200 {object} note.Export
// @Router /v1/notes/export [get]
func (h *Handler) Export(ctx *gin.Context) handler.Result {
	ctx.Header("Content-Disposition", `attachment; filename="notes.json"`)
	return handler.Result{
		Status: http.StatusOK,
		Body:   h.Store.Export(),
	}
}
