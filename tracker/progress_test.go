package tracker

import (
	"testing"
	"time"

	"coursetrack/models"
)

var today = time.Date(2026, 10, 19, 15, 30, 0, 0, time.UTC)

func dueIn(days int) string {
	return today.AddDate(0, 0, days).Format(models.DueDateLayout)
}

func TestCompletionRate(t *testing.T) {
	tests := []struct {
		completed, total, want int
	}{
		{0, 0, 0},
		{1, 3, 33},
		{2, 3, 67},
		{1, 2, 50},
		{3, 3, 100},
		{0, 5, 0},
	}
	for _, tt := range tests {
		if got := CompletionRate(tt.completed, tt.total); got != tt.want {
			t.Errorf("CompletionRate(%d, %d) = %d, want %d", tt.completed, tt.total, got, tt.want)
		}
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize(models.SeedTasks())
	if s.Total != 3 || s.Completed != 1 || s.Pending != 2 || s.Rate != 33 {
		t.Errorf("unexpected summary: %+v", s)
	}
	if empty := Summarize(nil); empty != (Summary{}) {
		t.Errorf("expected zero summary, got %+v", empty)
	}
}

func TestCourseStats(t *testing.T) {
	courses := models.SeedCourses()
	tasks := []models.Task{
		{ID: 1, CourseID: 1, Status: models.StatusCompleted},
		{ID: 2, CourseID: 1, Status: models.StatusPending},
		{ID: 3, CourseID: 2, Status: models.StatusCompleted},
		{ID: 4, CourseID: 42, Status: models.StatusCompleted},
	}
	stats := CourseStats(courses, tasks)
	if len(stats) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(stats))
	}
	want := []Summary{
		{Total: 2, Completed: 1, Pending: 1, Rate: 50},
		{Total: 1, Completed: 1, Pending: 0, Rate: 100},
		{Total: 0, Completed: 0, Pending: 0, Rate: 0},
	}
	for i, w := range want {
		if stats[i].Summary != w {
			t.Errorf("row %d (%s): got %+v, want %+v", i, stats[i].Name, stats[i].Summary, w)
		}
	}
}

func TestDaysUntil(t *testing.T) {
	tests := []struct {
		due  string
		want int
	}{
		{"2026-10-19", 0},
		{"2026-10-18", -1},
		{"2026-10-20", 1},
		{"2026-11-01", 13},
	}
	for _, tt := range tests {
		got, err := DaysUntil(tt.due, today)
		if err != nil {
			t.Fatalf("DaysUntil(%q): %v", tt.due, err)
		}
		if got != tt.want {
			t.Errorf("DaysUntil(%q) = %d, want %d", tt.due, got, tt.want)
		}
	}
	if _, err := DaysUntil("", today); err == nil {
		t.Error("expected error for empty due date")
	}
}

func TestUpcomingWindowAndOrder(t *testing.T) {
	courses := models.SeedCourses()
	tasks := []models.Task{
		{ID: 1, Title: "ten", CourseID: 1, DueDate: dueIn(10), Status: models.StatusPending},
		{ID: 2, Title: "three", CourseID: 1, DueDate: dueIn(3), Status: models.StatusPending},
		{ID: 3, Title: "tomorrow", CourseID: 2, DueDate: dueIn(1), Status: models.StatusPending},
		{ID: 4, Title: "today", CourseID: 3, DueDate: dueIn(0), Status: models.StatusPending},
		{ID: 5, Title: "yesterday", CourseID: 99, DueDate: dueIn(-1), Status: models.StatusPending},
	}

	got := Upcoming(tasks, courses, today)
	want := []struct {
		title   string
		urgency Urgency
		label   string
	}{
		{"yesterday", UrgencyOverdue, "Overdue"},
		{"today", UrgencyToday, "Due today"},
		{"tomorrow", UrgencyTomorrow, "Due tomorrow"},
		{"three", UrgencySoon, "Due in 3 days"},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d upcoming tasks, got %d: %+v", len(want), len(got), got)
	}
	for i, w := range want {
		if got[i].Task.Title != w.title || got[i].Urgency != w.urgency || got[i].Label != w.label {
			t.Errorf("item %d: got (%s, %s, %q), want (%s, %s, %q)",
				i, got[i].Task.Title, got[i].Urgency, got[i].Label, w.title, w.urgency, w.label)
		}
	}
	if got[0].CourseName != models.UncategorizedName || got[0].CourseColor != models.UncategorizedColor {
		t.Errorf("dangling course should be uncategorized, got %q %q", got[0].CourseName, got[0].CourseColor)
	}
}

func TestUpcomingSkipsCompletedAndBadDates(t *testing.T) {
	tasks := []models.Task{
		{ID: 1, Title: "done", DueDate: dueIn(1), Status: models.StatusCompleted},
		{ID: 2, Title: "no date", DueDate: "", Status: models.StatusPending},
		{ID: 3, Title: "edge", DueDate: dueIn(7), Status: models.StatusPending},
		{ID: 4, Title: "beyond", DueDate: dueIn(8), Status: models.StatusPending},
	}
	got := Upcoming(tasks, nil, today)
	if len(got) != 1 || got[0].Task.Title != "edge" {
		t.Fatalf("expected only the 7-day task, got %+v", got)
	}
	if got[0].Urgency != UrgencyLater || got[0].Label != "Due in 7 days" {
		t.Errorf("unexpected urgency %s / %q", got[0].Urgency, got[0].Label)
	}
}

func TestUrgencyClassesDistinct(t *testing.T) {
	seen := map[string]Urgency{}
	for _, u := range []Urgency{UrgencyOverdue, UrgencyToday, UrgencyTomorrow, UrgencySoon, UrgencyLater} {
		if prev, ok := seen[u.Class()]; ok {
			t.Errorf("%s and %s share class %q", prev, u, u.Class())
		}
		seen[u.Class()] = u
	}
}

func TestBuildReport(t *testing.T) {
	r := BuildReport(models.SeedCourses(), models.SeedTasks())
	if r.Total != 3 || r.Completed != 1 || r.Pending != 2 || r.Rate != 33 {
		t.Errorf("unexpected report summary: %+v", r.Summary)
	}
	if len(r.Courses) != 3 || r.Courses[1].Rate != 100 {
		t.Errorf("unexpected course breakdown: %+v", r.Courses)
	}
}
