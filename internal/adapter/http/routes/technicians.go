package routes

import (
	"dispatch_service/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathTechnicians = "/technicians"

func addTechnicianRoutes(rg *gin.RouterGroup, h *handlers.TechnicianHandler) {
	technicians := rg.Group(PathTechnicians)
	{
		technicians.POST("", h.Create)
		technicians.GET("", h.List)
		technicians.GET("/available", h.ListAvailable)
		technicians.GET("/:id", h.Get)
		technicians.DELETE("/:id", h.Deactivate)
		technicians.PUT("/:id/status", h.SetStatus)
		technicians.PUT("/:id/location", h.UpdateLocation)
		technicians.GET("/:id/location-history", h.LocationHistory)
		technicians.POST("/:id/availability", h.AddAvailability)
		technicians.POST("/:id/availability/:availability_id/approve", h.ApproveAvailability)
	}
}
