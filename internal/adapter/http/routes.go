package http

import (
	"github.com/gin-gonic/gin"

	"todolist/internal/adapter/http/handlers"
	"todolist/internal/adapter/http/middleware"
)

type Handlers struct {
	Health     *handlers.HealthHandler
	Tasks      *handlers.TaskHandler
	Categories *handlers.CategoryHandler
	Transfer   *handlers.TransferHandler
}

// RegisterRoutes mounts the API. Everything under /api/v1 requires an owner identity.
func RegisterRoutes(r *gin.Engine, h Handlers, jwtSecret string) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", h.Health.CheckHealth)
		api.GET("/health/report", h.Health.CheckHealthReport)
	}

	v1 := api.Group("/v1")
	v1.Use(middleware.OwnerMiddleware(jwtSecret))
	{
		v1.GET("/tasks", h.Tasks.ListTasks)
		v1.POST("/tasks", h.Tasks.CreateTask)
		v1.GET("/tasks/search", h.Tasks.SearchTasks)
		v1.GET("/tasks/stats", h.Tasks.TaskStats)
		v1.GET("/tasks/upcoming", h.Tasks.UpcomingTasks)
		v1.GET("/tasks/export", h.Transfer.ExportTasks)
		v1.POST("/tasks/import", h.Transfer.ImportTasks)
		v1.GET("/tasks/:id", h.Tasks.GetTask)
		v1.PATCH("/tasks/:id", h.Tasks.UpdateTask)
		v1.DELETE("/tasks/:id", h.Tasks.DeleteTask)

		v1.GET("/categories", h.Categories.ListCategories)
		v1.POST("/categories", h.Categories.CreateCategory)
		v1.GET("/categories/:id", h.Categories.GetCategory)
		v1.PUT("/categories/:id", h.Categories.UpdateCategory)
		v1.DELETE("/categories/:id", h.Categories.DeleteCategory)
	}
}
