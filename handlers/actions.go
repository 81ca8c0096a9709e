package handlers

import (
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"coursetrack/tracker"
	"coursetrack/views"
)

// actionFunc handles one button kind posted to /actions
type actionFunc func(h *Handler, c *gin.Context, id int)

const (
	ActionCourseEdit   = "course.edit"
	ActionCourseDelete = "course.delete"
	ActionTaskToggle   = "task.toggle"
	ActionTaskEdit     = "task.edit"
	ActionTaskDelete   = "task.delete"
	ActionReportExport = "report.export"
)

// actionTable maps data-action values to handlers. Built once per Handler;
// re-rendering a view never registers anything.
func (h *Handler) actionTable() map[string]actionFunc {
	return map[string]actionFunc{
		ActionCourseEdit:   (*Handler).editCourse,
		ActionCourseDelete: (*Handler).deleteCourse,
		ActionTaskToggle:   (*Handler).toggleTask,
		ActionTaskEdit:     (*Handler).editTask,
		ActionTaskDelete:   (*Handler).deleteTask,
		ActionReportExport: (*Handler).exportReport,
	}
}

// Dispatch handles POST /actions, routing on the "action" form field
func (h *Handler) Dispatch(c *gin.Context) {
	name := c.PostForm("action")
	fn, ok := h.actions[name]
	if !ok {
		c.String(http.StatusBadRequest, "Unknown action %q", name)
		return
	}
	id := atoiOrZero(c.PostForm("id"))
	fn(h, c, id)
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

func confirmed(c *gin.Context) bool {
	return c.PostForm("confirm") == "yes"
}

func (h *Handler) confirm(c *gin.Context, back views.View, action string, id int, message string) {
	modal, err := h.Views.Confirm(views.ConfirmData{
		Message: message,
		Action:  action,
		ID:      id,
		Back:    back,
	})
	if err != nil {
		h.pageError(c, err)
		return
	}
	h.writePage(c, http.StatusOK, views.PageData{Active: back, Modal: template.HTML(modal)})
}

func (h *Handler) editCourse(c *gin.Context, id int) {
	course, err := h.Store.GetCourse(c.Request.Context(), id)
	if err != nil {
		h.pageError(c, err)
		return
	}
	if course == nil {
		redirectToView(c, views.ViewCourses)
		return
	}
	h.showCourseForm(c, http.StatusOK, views.EditCourseForm(*course), "")
}

func (h *Handler) deleteCourse(c *gin.Context, id int) {
	if !confirmed(c) {
		h.confirm(c, views.ViewCourses, ActionCourseDelete, id,
			"Delete this course? Its tasks are kept and will show as uncategorized.")
		return
	}
	if _, err := h.Store.DeleteCourse(c.Request.Context(), id); err != nil {
		h.pageError(c, err)
		return
	}
	redirectToView(c, views.ViewCourses)
}

func (h *Handler) toggleTask(c *gin.Context, id int) {
	if _, err := h.Store.ToggleTask(c.Request.Context(), id); err != nil {
		h.pageError(c, err)
		return
	}
	redirectToView(c, views.ViewTasks)
}

func (h *Handler) editTask(c *gin.Context, id int) {
	task, err := h.Store.GetTask(c.Request.Context(), id)
	if err != nil {
		h.pageError(c, err)
		return
	}
	if task == nil {
		redirectToView(c, views.ViewTasks)
		return
	}
	courses, err := h.Store.GetCourses(c.Request.Context())
	if err != nil {
		h.pageError(c, err)
		return
	}
	h.showTaskForm(c, http.StatusOK, views.EditTaskForm(*task, courses), "")
}

func (h *Handler) deleteTask(c *gin.Context, id int) {
	if !confirmed(c) {
		h.confirm(c, views.ViewTasks, ActionTaskDelete, id, fmt.Sprintf("Delete task #%d?", id))
		return
	}
	if _, err := h.Store.DeleteTask(c.Request.Context(), id); err != nil {
		h.pageError(c, err)
		return
	}
	redirectToView(c, views.ViewTasks)
}

func (h *Handler) exportReport(c *gin.Context, _ int) {
	h.writePage(c, http.StatusOK, views.PageData{Active: views.ViewReports, Notice: tracker.ExportMessage})
}
