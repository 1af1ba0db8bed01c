package api

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/echolytics/persona-engine/api/handlers"
)

// NewRouter builds the gin engine with all routes registered.
func NewRouter(h *handlers.Handler) *gin.Engine {
	r := gin.Default()
	SetupRoutes(r, h)
	return r
}

// StartServer initializes the REST API and blocks serving it.
func StartServer(port int, h *handlers.Handler) error {
	return NewRouter(h).Run(fmt.Sprintf(":%d", port))
}
