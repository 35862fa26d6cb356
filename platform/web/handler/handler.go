package handler

import (
	"github.com/gin-gonic/gin"
)

// Result is what a handler produces: a status code and an optional body
type Result struct {
	Status int
	Body   interface{}
}

// Error is the default error response body
type Error struct {
	Message string `json:"message"`
}

// Handler is a gin handler that returns a Result instead of writing to the context
type Handler func(ctx *gin.Context) Result

// Wrapper adapts a Handler into a gin.HandlerFunc, writing the Result as json
func Wrapper(h Handler) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		result := h(ctx)
		if result.Body == nil {
			ctx.Status(result.Status)
			return
		}
		ctx.JSON(result.Status, result.Body)
	}
}
