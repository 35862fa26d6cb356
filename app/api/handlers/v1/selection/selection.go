package selection

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/geonote/business/v1/selection"
	"github.com/ribgsilva/geonote/platform/web/handler"
)

// Handler serves the map-to-list selection contract
type Handler struct {
	Tracker *selection.Tracker
}

// Highlight is what the list polls to know which entry to emphasize
type Highlight struct {
	NoteId int64 `json:"noteId,omitempty"`
	Active bool  `json:"active"`
}

// Select godoc
// @Summary Select a note from the map
// @Description Asks the list to scroll to the note and highlight it. The highlight clears itself after a second; selecting again restarts the clock. Unknown ids are ignored.
// @Tags Selection
// @Param id path int true "Note id"
// @Success 204
// @Failure 400 {object} handler.Error
// @Router /v1/selection/{id} [post]
func (h *Handler) Select(ctx *gin.Context) handler.Result {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return handler.Result{
			Status: http.StatusBadRequest,
			Body:   handler.Error{Message: "invalid id"},
		}
	}

	h.Tracker.Select(id)
	return handler.Result{Status: http.StatusNoContent}
}

// Get godoc
// @Summary Current highlight
// @Description Reports the note the list should be highlighting, if any.
// @Tags Selection
// @Produce json
// @Success 200 {object} Highlight
// @Router /v1/selection [get]
func (h *Handler) Get(_ *gin.Context) handler.Result {
	id, active := h.Tracker.Current()
	return handler.Result{
		Status: http.StatusOK,
		Body:   Highlight{NoteId: id, Active: active},
	}
}
