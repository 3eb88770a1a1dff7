package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/caronvincent/todo-burbanie/internal/adapter/http/handlers"
	"github.com/caronvincent/todo-burbanie/internal/adapter/http/middleware"
)

type Handlers struct {
	Health   *handlers.HealthHandler
	Category *handlers.CategoryHandler
	Task     *handlers.TaskHandler
}

// RegisterRoutes mounts the public health endpoints and the authenticated resources.
// authMiddleware runs after language negotiation so a 401 is translated too.
func RegisterRoutes(r *gin.Engine, authMiddleware gin.HandlerFunc, h Handlers) {
	root := r.Group("/")
	root.Use(middleware.LanguageMiddleware())
	{
		root.GET("/health", h.Health.CheckHealth)
		root.GET("/health/report", h.Health.CheckHealthReport)
	}

	secured := root.Group("/")
	secured.Use(authMiddleware)
	{
		secured.POST("/categories", h.Category.CreateCategory)
		secured.GET("/categories/:id", h.Category.GetCategory)
		secured.PUT("/categories/:id", h.Category.UpdateCategory)
		secured.DELETE("/categories/:id", h.Category.DeleteCategory)

		secured.POST("/tasks", h.Task.CreateTask)
		secured.GET("/tasks/search", h.Task.SearchTasks)
		secured.GET("/tasks/:id", h.Task.GetTask)
		secured.PUT("/tasks/:id", h.Task.UpdateTask)
		secured.DELETE("/tasks/:id", h.Task.DeleteTask)
	}
}

// RegisterMetrics exposes the registry's collectors on GET /metrics.
func RegisterMetrics(r *gin.Engine, gatherer prometheus.Gatherer) {
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
}
