package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewRouter wires the page, action and API routes. Anything unmatched is
// handed to assets, which serves files from the static directory.
func NewRouter(h *Handler, assets http.Handler) *gin.Engine {
	router := gin.Default()

	// Pages
	router.GET("/", h.Index)
	router.HEAD("/", h.Index)
	router.GET("/courses/new", h.NewCourseForm)
	router.POST("/courses/save", h.SaveCourse)
	router.GET("/tasks/new", h.NewTaskForm)
	router.POST("/tasks/save", h.SaveTask)
	router.POST("/actions", h.Dispatch)

	api := router.Group("/api")
	{
		// Course routes
		api.GET("/courses", h.GetAllCourses)
		api.POST("/courses", h.AddCourse)
		api.GET("/courses/:id", h.GetCourseByID)
		api.PUT("/courses/:id", h.UpdateCourse)
		api.DELETE("/courses/:id", h.DeleteCourse)

		// Task routes
		api.GET("/tasks", h.GetAllTasks)
		api.POST("/tasks", h.AddTask)
		api.GET("/tasks/:id", h.GetTaskByID)
		api.PUT("/tasks/:id", h.UpdateTask)
		api.DELETE("/tasks/:id", h.DeleteTask)
		api.POST("/tasks/:id/toggle", h.ToggleTask)

		// Aggregates
		api.GET("/progress", h.GetProgress)
		api.GET("/report", h.GetReport)
		api.POST("/report/export", h.ExportReport)

		// Import route
		api.POST("/import/tasks", h.ImportTasks)

		api.GET("/ping", PingHandler)
	}

	if assets != nil {
		router.NoRoute(gin.WrapH(assets))
	}
	return router
}
