// Package views turns the collections into HTML. Every function here is a
// pure function of its arguments: no storage access, no globals.
package views

import (
	"bytes"
	"fmt"
	"html/template"
	"regexp"
	"strconv"
	"strings"
	"time"

	"coursetrack/models"
	"coursetrack/tracker"
)

// TaskCard is a task joined with its course for display
type TaskCard struct {
	Task        models.Task
	CourseName  string
	CourseColor string
	Completed   bool
}

// TaskCards cross-references every task with its course. Dangling course
// references come out as uncategorized.
func TaskCards(tasks []models.Task, courses []models.Course) []TaskCard {
	cards := make([]TaskCard, 0, len(tasks))
	for _, t := range tasks {
		name, color := tracker.CourseLabel(courses, t.CourseID)
		cards = append(cards, TaskCard{
			Task:        t,
			CourseName:  name,
			CourseColor: color,
			Completed:   t.Status == models.StatusCompleted,
		})
	}
	return cards
}

// CourseFormData fills the course modal. An empty ID means "create".
type CourseFormData struct {
	ID    string
	Name  string
	Color string
}

var hexColor = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// CourseColor picks the submitted course color. The hex text field wins when it
// holds a valid #RRGGBB value; otherwise the color picker's value is used.
func CourseColor(picker, text string) string {
	text = strings.TrimSpace(text)
	if hexColor.MatchString(text) {
		return text
	}
	return picker
}

// NewCourseForm is the blank course modal
func NewCourseForm() CourseFormData {
	return CourseFormData{Color: models.DefaultCourseColor}
}

// EditCourseForm fills the modal from an existing course
func EditCourseForm(c models.Course) CourseFormData {
	return CourseFormData{ID: strconv.Itoa(c.ID), Name: c.Name, Color: c.Color}
}

// TaskFormData fills the task modal. An empty ID means "create".
type TaskFormData struct {
	ID       string
	Title    string
	CourseID int
	DueDate  string
	Courses  []models.Course
}

// NewTaskForm is the blank task modal; the due date defaults to tomorrow
func NewTaskForm(courses []models.Course, today time.Time) TaskFormData {
	return TaskFormData{
		DueDate: today.AddDate(0, 0, 1).Format(models.DueDateLayout),
		Courses: courses,
	}
}

// EditTaskForm fills the modal from an existing task
func EditTaskForm(t models.Task, courses []models.Course) TaskFormData {
	return TaskFormData{
		ID:       strconv.Itoa(t.ID),
		Title:    t.Title,
		CourseID: t.CourseID,
		DueDate:  t.DueDate,
		Courses:  courses,
	}
}

// ConfirmData backs the confirmation prompt for destructive actions
type ConfirmData struct {
	Message string
	Action  string
	ID      int
	Back    View
}

// PageData is the full page: navigation, the four view containers and an
// optional modal on top.
type PageData struct {
	Active View
	Body   template.HTML // content of the active view
	Alert  string        // blocking error message
	Notice string        // informational message
	Modal  template.HTML
}

type pageView struct {
	Title    string
	Nav      []NavItem
	Sections []sectionView
	Alert    string
	Notice   string
	Modal    template.HTML
}

type sectionView struct {
	View    View
	Visible bool
	Body    template.HTML
}

// Renderer executes the parsed templates
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses all templates once
func NewRenderer() (*Renderer, error) {
	t := template.New("coursetrack")
	for _, src := range []string{
		layoutTemplate,
		courseListTemplate,
		taskListTemplate,
		progressTemplate,
		reportsTemplate,
		courseFormTemplate,
		taskFormTemplate,
		confirmTemplate,
	} {
		if _, err := t.Parse(src); err != nil {
			return nil, fmt.Errorf("parsing templates: %w", err)
		}
	}
	return &Renderer{tmpl: t}, nil
}

func (r *Renderer) execute(name string, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("rendering %s: %w", name, err)
	}
	return buf.String(), nil
}

// CourseList renders one card per course
func (r *Renderer) CourseList(courses []models.Course) (string, error) {
	return r.execute("courses", courses)
}

// TaskList renders one card per task; completed tasks are struck through and dimmed
func (r *Renderer) TaskList(tasks []models.Task, courses []models.Course) (string, error) {
	return r.execute("tasks", TaskCards(tasks, courses))
}

// Progress renders the progress view
func (r *Renderer) Progress(p tracker.Progress) (string, error) {
	return r.execute("progress", p)
}

// Reports renders the reports view
func (r *Renderer) Reports(rep tracker.Report) (string, error) {
	return r.execute("reports", rep)
}

// CourseForm renders the course modal
func (r *Renderer) CourseForm(d CourseFormData) (string, error) {
	return r.execute("courseForm", d)
}

// TaskForm renders the task modal with the course select populated
func (r *Renderer) TaskForm(d TaskFormData) (string, error) {
	return r.execute("taskForm", d)
}

// Confirm renders the prompt that gates a destructive action
func (r *Renderer) Confirm(d ConfirmData) (string, error) {
	return r.execute("confirm", d)
}

// Page renders the layout with only the active view visible
func (r *Renderer) Page(d PageData) (string, error) {
	nav, sections := Switch(d.Active)
	pv := pageView{
		Nav:    nav,
		Alert:  d.Alert,
		Notice: d.Notice,
		Modal:  d.Modal,
	}
	for _, s := range sections {
		sv := sectionView{View: s.View, Visible: s.Visible}
		if s.Visible {
			pv.Title = s.View.Title()
			sv.Body = d.Body
		}
		pv.Sections = append(pv.Sections, sv)
	}
	return r.execute("page", pv)
}
