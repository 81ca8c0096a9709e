package views

import "strings"

// View names one of the four page sections
type View string

const (
	ViewCourses  View = "courses"
	ViewTasks    View = "tasks"
	ViewProgress View = "progress"
	ViewReports  View = "reports"
)

// AllViews is the navigation order
var AllViews = []View{ViewCourses, ViewTasks, ViewProgress, ViewReports}

var viewTitles = map[View]string{
	ViewCourses:  "Courses",
	ViewTasks:    "Tasks",
	ViewProgress: "Progress",
	ViewReports:  "Reports",
}

// ParseView returns the named view, or the courses view for anything unknown
func ParseView(name string) View {
	v := View(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := viewTitles[v]; ok {
		return v
	}
	return ViewCourses
}

// Title is the navigation label
func (v View) Title() string { return viewTitles[v] }

// NavItem is one navigation link
type NavItem struct {
	View   View
	Title  string
	Active bool
}

// Section is one view container on the page
type Section struct {
	View    View
	Visible bool
}

// Switch hides every view except active and marks its nav link.
// Exactly one nav item and one section come back active/visible.
func Switch(active View) ([]NavItem, []Section) {
	active = ParseView(string(active))
	nav := make([]NavItem, 0, len(AllViews))
	sections := make([]Section, 0, len(AllViews))
	for _, v := range AllViews {
		nav = append(nav, NavItem{View: v, Title: v.Title(), Active: v == active})
		sections = append(sections, Section{View: v, Visible: v == active})
	}
	return nav, sections
}
