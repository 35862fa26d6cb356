package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/geonote/app/api/handlers/v1/editor"
	"github.com/ribgsilva/geonote/app/api/handlers/v1/healthcheck"
	"github.com/ribgsilva/geonote/app/api/handlers/v1/mapview"
	"github.com/ribgsilva/geonote/app/api/handlers/v1/notes"
	"github.com/ribgsilva/geonote/app/api/handlers/v1/selection"
	editorBiz "github.com/ribgsilva/geonote/business/v1/editor"
	mapviewBiz "github.com/ribgsilva/geonote/business/v1/mapview"
	"github.com/ribgsilva/geonote/business/v1/note"
	selectionBiz "github.com/ribgsilva/geonote/business/v1/selection"
	"github.com/ribgsilva/geonote/platform/web/handler"
	"go.uber.org/zap"
)

// API carries the collaborators the handlers work against
type API struct {
	Log       *zap.SugaredLogger
	Store     *note.Store
	Editor    *editorBiz.Editor
	Selection *selectionBiz.Tracker
	Map       *mapviewBiz.View
}

func MapDefaults(r *gin.Engine) {
	r.GET("/v1/healthcheck", handler.Wrapper(healthcheck.Get))
}

func MapApi(r *gin.Engine, api API) {
	n := notes.Handler{Log: api.Log, Store: api.Store}
	r.GET("/v1/notes", handler.Wrapper(n.List))
	r.POST("/v1/notes", handler.Wrapper(n.Create))
	r.PUT("/v1/notes/:id", handler.Wrapper(n.Update))
	r.DELETE("/v1/notes/:id", handler.Wrapper(n.Delete))
	r.GET("/v1/notes/export", handler.Wrapper(n.Export))
	r.POST("/v1/notes/import", handler.Wrapper(n.Import))

	e := editor.Handler{Log: api.Log, Editor: api.Editor}
	r.POST("/v1/editor/draft", handler.Wrapper(e.Draft))
	r.POST("/v1/editor/edit/:id", handler.Wrapper(e.Edit))
	r.PUT("/v1/editor/content", handler.Wrapper(e.SetContent))
	r.POST("/v1/editor/commit", handler.Wrapper(e.Commit))
	r.POST("/v1/editor/cancel", handler.Wrapper(e.Cancel))

	s := selection.Handler{Tracker: api.Selection}
	r.GET("/v1/selection", handler.Wrapper(s.Get))
	r.POST("/v1/selection/:id", handler.Wrapper(s.Select))

	m := mapview.Handler{Log: api.Log, Store: api.Store, View: api.Map}
	r.GET("/v1/map/markers", handler.Wrapper(m.Markers))
	r.GET("/v1/map/center", handler.Wrapper(m.Center))
	r.POST("/v1/map/recenter", handler.Wrapper(m.Recenter))
}
