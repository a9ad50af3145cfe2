package routes

import (
	"dispatch_service/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathSchedule = "/schedule"
	PathRoutes   = "/routes"
	PathEvents   = "/events"
)

func addScheduleRoutes(rg *gin.RouterGroup, schedule *handlers.ScheduleHandler, route *handlers.RouteHandler) {
	s := rg.Group(PathSchedule)
	{
		s.POST("/entries", schedule.Assign)
		s.GET("/entries/:id", schedule.GetEntry)
		s.PATCH("/entries/:id/status", schedule.AdvanceStatus)
		s.GET("/technicians/:tech_id/days/:date", schedule.ListDay)
		s.PUT("/technicians/:tech_id/days/:date/order", schedule.Reorder)
	}

	rg.Group(PathRoutes).POST("/technicians/:tech_id/days/:date/optimize", route.Optimize)
}
