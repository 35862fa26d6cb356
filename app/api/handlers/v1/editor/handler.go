package editor

import (
	"github.com/ribgsilva/geonote/business/v1/editor"
	"go.uber.org/zap"
)

// Handler serves the compose surface: one draft or one in-place edit at a
// time, mirrored from the page
type Handler struct {
	Log    *zap.SugaredLogger
	Editor *editor.Editor
}

// Content is the compose buffer payload
type Content struct {
	Content string `json:"content"`
}
