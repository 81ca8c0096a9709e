package handlers

import (
	"errors"
	"html/template"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"coursetrack/db"
	"coursetrack/tracker"
	"coursetrack/views"
)

// user-facing messages for validation failures
var validationMessages = map[error]string{
	db.ErrNameRequired:   "Please enter a course name",
	db.ErrTitleRequired:  "Please enter a task title",
	db.ErrCourseRequired: "Please select a course for the task",
	db.ErrInvalidID:      "The record you are editing is invalid",
}

func validationMessage(err error) string {
	for target, msg := range validationMessages {
		if errors.Is(err, target) {
			return msg
		}
	}
	return err.Error()
}

// renderView recomputes the fragment for a view from the current collections
func (h *Handler) renderView(c *gin.Context, v views.View) (template.HTML, error) {
	courses, tasks, err := h.loadAll(c)
	if err != nil {
		return "", err
	}

	var out string
	switch v {
	case views.ViewTasks:
		out, err = h.Views.TaskList(tasks, courses)
	case views.ViewProgress:
		out, err = h.Views.Progress(tracker.BuildProgress(courses, tasks, h.Now()))
	case views.ViewReports:
		out, err = h.Views.Reports(tracker.BuildReport(courses, tasks))
	default:
		out, err = h.Views.CourseList(courses)
	}
	if err != nil {
		return "", err
	}
	return template.HTML(out), nil
}

// writePage renders the active view and wraps it in the layout
func (h *Handler) writePage(c *gin.Context, status int, page views.PageData) {
	body, err := h.renderView(c, page.Active)
	if err != nil {
		h.pageError(c, err)
		return
	}
	page.Body = body
	html, err := h.Views.Page(page)
	if err != nil {
		h.pageError(c, err)
		return
	}
	c.Data(status, "text/html; charset=utf-8", []byte(html))
}

func (h *Handler) pageError(c *gin.Context, err error) {
	log.Printf("Error rendering page %s: %v", c.Request.URL.Path, err)
	c.String(http.StatusInternalServerError, "Failed to render page")
}

func redirectToView(c *gin.Context, v views.View) {
	c.Redirect(http.StatusSeeOther, "/?view="+string(v))
}

// Index handles GET /?view=NAME. Switching to a view always re-renders it.
func (h *Handler) Index(c *gin.Context) {
	h.writePage(c, http.StatusOK, views.PageData{Active: views.ParseView(c.Query("view"))})
}

// NewCourseForm handles GET /courses/new
func (h *Handler) NewCourseForm(c *gin.Context) {
	h.showCourseForm(c, http.StatusOK, views.NewCourseForm(), "")
}

// NewTaskForm handles GET /tasks/new
func (h *Handler) NewTaskForm(c *gin.Context) {
	courses, err := h.Store.GetCourses(c.Request.Context())
	if err != nil {
		h.pageError(c, err)
		return
	}
	h.showTaskForm(c, http.StatusOK, views.NewTaskForm(courses, h.Now()), "")
}

// SaveCourse handles POST /courses/save: blank id creates, otherwise updates
func (h *Handler) SaveCourse(c *gin.Context) {
	form := views.CourseFormData{
		ID:    c.PostForm("id"),
		Name:  c.PostForm("name"),
		Color: views.CourseColor(c.PostForm("color"), c.PostForm("colorText")),
	}
	_, err := h.Store.SaveCourseForm(c.Request.Context(), form.ID, form.Name, form.Color)
	if err != nil {
		if isValidation(err) {
			h.showCourseForm(c, http.StatusUnprocessableEntity, form, validationMessage(err))
			return
		}
		h.pageError(c, err)
		return
	}
	redirectToView(c, views.ViewCourses)
}

// SaveTask handles POST /tasks/save: blank id creates, otherwise updates
func (h *Handler) SaveTask(c *gin.Context) {
	courses, err := h.Store.GetCourses(c.Request.Context())
	if err != nil {
		h.pageError(c, err)
		return
	}
	form := views.TaskFormData{
		ID:      c.PostForm("id"),
		Title:   c.PostForm("title"),
		DueDate: c.PostForm("dueDate"),
		Courses: courses,
	}
	courseField := c.PostForm("courseId")

	_, err = h.Store.SaveTaskForm(c.Request.Context(), form.ID, form.Title, courseField, form.DueDate)
	if err != nil {
		if isValidation(err) {
			form.CourseID = atoiOrZero(courseField)
			h.showTaskForm(c, http.StatusUnprocessableEntity, form, validationMessage(err))
			return
		}
		h.pageError(c, err)
		return
	}
	redirectToView(c, views.ViewTasks)
}

func (h *Handler) showCourseForm(c *gin.Context, status int, form views.CourseFormData, alert string) {
	modal, err := h.Views.CourseForm(form)
	if err != nil {
		h.pageError(c, err)
		return
	}
	h.writePage(c, status, views.PageData{
		Active: views.ViewCourses,
		Alert:  alert,
		Modal:  template.HTML(modal),
	})
}

func (h *Handler) showTaskForm(c *gin.Context, status int, form views.TaskFormData, alert string) {
	modal, err := h.Views.TaskForm(form)
	if err != nil {
		h.pageError(c, err)
		return
	}
	h.writePage(c, status, views.PageData{
		Active: views.ViewTasks,
		Alert:  alert,
		Modal:  template.HTML(modal),
	})
}
