package api

import (
	"github.com/gin-gonic/gin"

	"github.com/echolytics/persona-engine/api/handlers"
)

// SetupRoutes initializes all API endpoints.
func SetupRoutes(router *gin.Engine, h *handlers.Handler) {
	router.GET("/", IndexPage)
	router.GET("/ws", handlers.HandleWebSocket)

	api := router.Group("/api")
	{
		api.POST("/personas", h.GeneratePersona)
		api.GET("/personas", h.ListPersonas)
		api.GET("/personas/:username", h.GetPersona)
		api.DELETE("/personas/:username", h.DeletePersona)
		api.GET("/health", h.Health)
	}
}
