package notes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/geonote/business/v1/note"
	"github.com/ribgsilva/geonote/platform/location"
	"github.com/ribgsilva/geonote/platform/web/handler"
)

// Create godoc
// @Summary Create a note
// @Description Creates a note with an optional coordinate pair. Content that is blank after trimming is silently ignored.
// @Tags Note
// @Accept json
// @Produce json
// @Param note body note.NewNote true "New note"
// @Success 201 {object} note.Note
// @Success 204
// @Failure 400 {object} handler.Error
// @Failure 500 {object} handler.Error
// @Router /v1/notes [post]
func (h *Handler) Create(ctx *gin.Context) handler.Result {
	var body note.NewNote
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return handler.Result{
			Status: http.StatusBadRequest,
			Body:   handler.Error{Message: "invalid body"},
		}
	}
	if (body.Latitude == nil) != (body.Longitude == nil) {
		return handler.Result{
			Status: http.StatusBadRequest,
			Body:   handler.Error{Message: "latitude and longitude must be sent together"},
		}
	}

	var coord *location.Coordinate
	if body.Latitude != nil {
		coord = &location.Coordinate{Latitude: *body.Latitude, Longitude: *body.Longitude}
	}

	created, err := h.Store.Add(ctx, body.Content, coord)
	switch {
	case err != nil:
		h.Log.Errorf("failed to create note: %s", err)
		return handler.Result{
			Status: http.StatusInternalServerError,
			Body:   handler.Error{Message: "failed to create note"},
		}
	case created == nil:
		return handler.Result{Status: http.StatusNoContent}
	default:
		return handler.Result{
			Status: http.StatusCreated,
			Body:   created,
		}
	}
}
