package notes

import (
	"github.com/ribgsilva/geonote/business/v1/note"
	"go.uber.org/zap"
)

// Handler serves the note collection endpoints
type Handler struct {
	Log   *zap.SugaredLogger
	Store *note.Store
}

// UpdateNote is the content replacement payload
type UpdateNote struct {
	Content string `json:"content"`
}
