package routes

import (
	"time"

	"tutorly/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterScheduleRoutes registers the timetable views.
func RegisterScheduleRoutes(r *gin.Engine, h *handlers.ScheduleHandler) {
	api := r.Group("/api/schedule")
	{
		api.GET("/week", h.WeekView) // weekly timetable, filtered by period/level
		api.GET("/now", h.CurrentView)
		api.PUT("/:branch/sessions/:sessionID/status", h.SetSessionStatus)
	}
}

// RegisterPeriodRoutes registers the period catalog and authoring endpoints.
func RegisterPeriodRoutes(r *gin.Engine, h *handlers.ScheduleHandler) {
	api := r.Group("/api/periods")
	{
		api.GET("", h.ListPeriods)
		api.GET("/active", h.ActivePeriod)
		api.POST("/:branch", h.CreatePeriod)
	}
}

// RegisterOccupancyRoutes registers the analytics views.
func RegisterOccupancyRoutes(r *gin.Engine, h *handlers.ScheduleHandler) {
	api := r.Group("/api/occupancy")
	{
		api.GET("", h.Occupancy)
	}
}

// RegisterHealthRoute registers the health endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.Health)
}

// RegisterRoutes applies CORS and wires every route group.
func RegisterRoutes(r *gin.Engine, h *handlers.ScheduleHandler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterScheduleRoutes(r, h)
	RegisterPeriodRoutes(r, h)
	RegisterOccupancyRoutes(r, h)
	RegisterHealthRoute(r)
}
