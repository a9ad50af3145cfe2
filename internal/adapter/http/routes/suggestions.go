package routes

import (
	"dispatch_service/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathSuggestions = "/suggestions"

func addSuggestionRoutes(rg *gin.RouterGroup, h *handlers.SuggestionHandler) {
	suggestions := rg.Group(PathSuggestions)
	{
		suggestions.POST("", h.Generate)
		suggestions.GET("/stats", h.Stats)
		suggestions.GET("/:id", h.Get)
		suggestions.POST("/:id/accept", h.Accept)
		suggestions.POST("/:id/reject", h.Reject)
	}
}
