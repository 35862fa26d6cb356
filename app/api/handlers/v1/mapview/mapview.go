package mapview

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/geonote/business/v1/mapview"
	"github.com/ribgsilva/geonote/business/v1/note"
	"github.com/ribgsilva/geonote/platform/web/handler"
	"go.uber.org/zap"
)

// Handler serves the map widget boundary: a starting center plus one marker
// descriptor per located note
type Handler struct {
	Log   *zap.SugaredLogger
	Store *note.Store
	View  *mapview.View
}

// Markers godoc
// @Summary Marker descriptors
// @Description One marker per note that carries a coordinate; unlocated notes stay off the map.
// @Tags Map
// @Produce json
// @Success 200 {array} mapview.Marker
// @Router /v1/map/markers [get]
func (h *Handler) Markers(_ *gin.Context) handler.Result {
	return handler.Result{
		Status: http.StatusOK,
		Body:   mapview.Markers(h.Store.List()),
	}
}

// Center godoc
// @Summary Initial map center
// @Description The device position the map starts from. Without it the map cannot render, so failure here is the one location error shown to the user.
// @Tags Map
// @Produce json
// @Success 200 {object} mapview.Center
// @Failure 503 {object} handler.Error
// @Router /v1/map/center [get]
func (h *Handler) Center(ctx *gin.Context) handler.Result {
	center, err := h.View.Center(ctx)
	if err != nil {
		h.Log.Warnf("initial center unavailable: %s", err)
		return handler.Result{
			Status: http.StatusServiceUnavailable,
			Body:   handler.Error{Message: "could not determine your location"},
		}
	}
	return handler.Result{
		Status: http.StatusOK,
		Body:   center,
	}
}

// Recenter godoc
// @Summary Recenter the map
// @Description Re-queries the device position. If it cannot be obtained the view simply does not move.
// @Tags Map
// @Produce json
// @Success 200 {object} mapview.Center
// @Success 204
// @Router /v1/map/recenter [post]
func (h *Handler) Recenter(ctx *gin.Context) handler.Result {
	center, ok := h.View.Recenter(ctx)
	if !ok {
		return handler.Result{Status: http.StatusNoContent}
	}
	return handler.Result{
		Status: http.StatusOK,
		Body:   center,
	}
}
