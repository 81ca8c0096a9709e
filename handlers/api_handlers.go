package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"coursetrack/db"
	"coursetrack/models"
	"coursetrack/tracker"
	"coursetrack/views"
)

// Handler holds the dependencies shared by the page and API handlers
type Handler struct {
	Store   *db.Store
	Views   *views.Renderer
	Now     func() time.Time
	actions map[string]actionFunc
}

// NewHandler creates a Handler and registers the page actions once
func NewHandler(store *db.Store, renderer *views.Renderer) *Handler {
	h := &Handler{
		Store: store,
		Views: renderer,
		Now:   time.Now,
	}
	h.actions = h.actionTable()
	return h
}

type courseRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

type taskRequest struct {
	Title    string `json:"title"`
	CourseID int    `json:"courseId"`
	DueDate  string `json:"dueDate"`
}

func paramID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return 0, false
	}
	return id, true
}

// isValidation reports whether err is a user input problem rather than a storage failure
func isValidation(err error) bool {
	for target := range validationMessages {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// --- Course Handlers ---

// GetAllCourses handles GET /api/courses
func (h *Handler) GetAllCourses(c *gin.Context) {
	courses, err := h.Store.GetCourses(c.Request.Context())
	if err != nil {
		log.Printf("Error in GetAllCourses handler: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve courses"})
		return
	}
	c.JSON(http.StatusOK, courses)
}

// GetCourseByID handles GET /api/courses/:id
func (h *Handler) GetCourseByID(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	course, err := h.Store.GetCourse(c.Request.Context(), id)
	if err != nil {
		log.Printf("Error in GetCourseByID handler for ID %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve course"})
		return
	}
	if course == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
		return
	}
	c.JSON(http.StatusOK, course)
}

// AddCourse handles POST /api/courses
func (h *Handler) AddCourse(c *gin.Context) {
	var req courseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	course, err := h.Store.CreateCourse(c.Request.Context(), req.Name, req.Color)
	if err != nil {
		h.writeMutationError(c, "AddCourse", err)
		return
	}
	c.JSON(http.StatusCreated, course)
}

// UpdateCourse handles PUT /api/courses/:id
func (h *Handler) UpdateCourse(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req courseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	course, err := h.Store.UpdateCourse(c.Request.Context(), id, req.Name, req.Color)
	if err != nil {
		h.writeMutationError(c, "UpdateCourse", err)
		return
	}
	if course == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
		return
	}
	c.JSON(http.StatusOK, course)
}

// DeleteCourse handles DELETE /api/courses/:id. Tasks of the course are kept.
func (h *Handler) DeleteCourse(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	removed, err := h.Store.DeleteCourse(c.Request.Context(), id)
	if err != nil {
		h.writeMutationError(c, "DeleteCourse", err)
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

// --- Task Handlers ---

// GetAllTasks handles GET /api/tasks
func (h *Handler) GetAllTasks(c *gin.Context) {
	tasks, err := h.Store.GetTasks(c.Request.Context())
	if err != nil {
		log.Printf("Error in GetAllTasks handler: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve tasks"})
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// GetTaskByID handles GET /api/tasks/:id
func (h *Handler) GetTaskByID(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	task, err := h.Store.GetTask(c.Request.Context(), id)
	if err != nil {
		log.Printf("Error in GetTaskByID handler for ID %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve task"})
		return
	}
	if task == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}
	c.JSON(http.StatusOK, task)
}

// AddTask handles POST /api/tasks
func (h *Handler) AddTask(c *gin.Context) {
	var req taskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	task, err := h.Store.CreateTask(c.Request.Context(), req.Title, req.CourseID, req.DueDate)
	if err != nil {
		h.writeMutationError(c, "AddTask", err)
		return
	}
	c.JSON(http.StatusCreated, task)
}

// UpdateTask handles PUT /api/tasks/:id. Status is changed only through toggle.
func (h *Handler) UpdateTask(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req taskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	task, err := h.Store.UpdateTask(c.Request.Context(), id, req.Title, req.CourseID, req.DueDate)
	if err != nil {
		h.writeMutationError(c, "UpdateTask", err)
		return
	}
	if task == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}
	c.JSON(http.StatusOK, task)
}

// ToggleTask handles POST /api/tasks/:id/toggle
func (h *Handler) ToggleTask(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	task, err := h.Store.ToggleTask(c.Request.Context(), id)
	if err != nil {
		h.writeMutationError(c, "ToggleTask", err)
		return
	}
	if task == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}
	c.JSON(http.StatusOK, task)
}

// DeleteTask handles DELETE /api/tasks/:id
func (h *Handler) DeleteTask(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	removed, err := h.Store.DeleteTask(c.Request.Context(), id)
	if err != nil {
		h.writeMutationError(c, "DeleteTask", err)
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

// --- Progress & Report Handlers ---

// GetProgress handles GET /api/progress
func (h *Handler) GetProgress(c *gin.Context) {
	courses, tasks, err := h.loadAll(c)
	if err != nil {
		log.Printf("Error in GetProgress handler: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute progress"})
		return
	}
	c.JSON(http.StatusOK, tracker.BuildProgress(courses, tasks, h.Now()))
}

// GetReport handles GET /api/report
func (h *Handler) GetReport(c *gin.Context) {
	courses, tasks, err := h.loadAll(c)
	if err != nil {
		log.Printf("Error in GetReport handler: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute report"})
		return
	}
	c.JSON(http.StatusOK, tracker.BuildReport(courses, tasks))
}

// ExportReport handles POST /api/report/export. It only acknowledges the request.
func (h *Handler) ExportReport(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": tracker.ExportMessage})
}

// --- Import Handler ---

// ImportTasks handles POST /api/import/tasks
func (h *Handler) ImportTasks(c *gin.Context) {
	courseID, err := strconv.Atoi(c.PostForm("courseId"))
	if err != nil || courseID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing 'courseId' in form data"})
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		log.Printf("Error getting form file: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"message": "Error retrieving uploaded file: " + err.Error()})
		return
	}
	defer file.Close()

	log.Printf("Received file upload: %s for course: %d", header.Filename, courseID)

	imported, err := h.Store.ImportTasksFromExcel(c.Request.Context(), file, courseID)
	if err != nil {
		log.Printf("Error importing tasks from file %s for course %d: %v", header.Filename, courseID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to import tasks: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       "Import successful",
		"importedCount": imported,
		"courseId":      courseID,
	})
}

// PingHandler handles GET /api/ping
func PingHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Pong!"})
}

func (h *Handler) writeMutationError(c *gin.Context, op string, err error) {
	if isValidation(err) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	log.Printf("Error in %s handler: %v", op, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save changes"})
}

func (h *Handler) loadAll(c *gin.Context) ([]models.Course, []models.Task, error) {
	courses, err := h.Store.GetCourses(c.Request.Context())
	if err != nil {
		return nil, nil, err
	}
	tasks, err := h.Store.GetTasks(c.Request.Context())
	if err != nil {
		return nil, nil, err
	}
	return courses, tasks, nil
}
