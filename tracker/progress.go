// Package tracker computes the progress and report figures shown in the
// progress and reports views. Everything here is a pure function of the
// collections and a reference date.
package tracker

import (
	"fmt"
	"math"
	"sort"
	"time"

	"coursetrack/models"
)

// UpcomingWindowDays is how far ahead the upcoming panel looks
const UpcomingWindowDays = 7

// Summary is the aggregate task count for a set of tasks
type Summary struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Pending   int `json:"pending"`
	Rate      int `json:"rate"` // percent, 0..100
}

// CourseStat is the per-course breakdown row
type CourseStat struct {
	CourseID int    `json:"courseId"`
	Name     string `json:"name"`
	Color    string `json:"color"`
	Summary
}

// CompletionRate returns round(100 * completed / total), or 0 when total is 0
func CompletionRate(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(completed) * 100 / float64(total)))
}

// Summarize counts tasks by status
func Summarize(tasks []models.Task) Summary {
	var s Summary
	for _, t := range tasks {
		s.Total++
		switch t.Status {
		case models.StatusCompleted:
			s.Completed++
		case models.StatusPending:
			s.Pending++
		}
	}
	s.Rate = CompletionRate(s.Completed, s.Total)
	return s
}

// CourseStats returns one row per course, in course order. Tasks whose
// course no longer exists are not counted in any row.
func CourseStats(courses []models.Course, tasks []models.Task) []CourseStat {
	byCourse := make(map[int][]models.Task, len(courses))
	for _, t := range tasks {
		byCourse[t.CourseID] = append(byCourse[t.CourseID], t)
	}

	stats := make([]CourseStat, 0, len(courses))
	for _, c := range courses {
		stats = append(stats, CourseStat{
			CourseID: c.ID,
			Name:     c.Name,
			Color:    c.Color,
			Summary:  Summarize(byCourse[c.ID]),
		})
	}
	return stats
}

// Urgency classifies an upcoming task by days left until its due date
type Urgency string

const (
	UrgencyOverdue  Urgency = "overdue"
	UrgencyToday    Urgency = "today"
	UrgencyTomorrow Urgency = "tomorrow"
	UrgencySoon     Urgency = "soon"
	UrgencyLater    Urgency = "later"
)

// UrgencyFor maps days-until-due to an urgency bucket
func UrgencyFor(days int) Urgency {
	switch {
	case days < 0:
		return UrgencyOverdue
	case days == 0:
		return UrgencyToday
	case days == 1:
		return UrgencyTomorrow
	case days <= 3:
		return UrgencySoon
	default:
		return UrgencyLater
	}
}

// Label is the text shown on the urgency tag
func (u Urgency) Label(days int) string {
	switch u {
	case UrgencyOverdue:
		return "Overdue"
	case UrgencyToday:
		return "Due today"
	case UrgencyTomorrow:
		return "Due tomorrow"
	default:
		return fmt.Sprintf("Due in %d days", days)
	}
}

// Class is the CSS class set of the urgency tag
func (u Urgency) Class() string {
	switch u {
	case UrgencyOverdue:
		return "bg-red-100 text-red-800"
	case UrgencyToday:
		return "bg-orange-100 text-orange-800"
	case UrgencyTomorrow:
		return "bg-yellow-100 text-yellow-800"
	case UrgencySoon:
		return "bg-blue-100 text-blue-800"
	default:
		return "bg-green-100 text-green-800"
	}
}

// UpcomingTask is a pending task inside the upcoming window
type UpcomingTask struct {
	Task        models.Task `json:"task"`
	CourseName  string      `json:"courseName"`
	CourseColor string      `json:"courseColor"`
	DaysLeft    int         `json:"daysLeft"`
	Urgency     Urgency     `json:"urgency"`
	Label       string      `json:"label"`
}

// DaysUntil counts calendar days from today to the due date in today's
// location. The time of day of today is ignored.
func DaysUntil(dueDate string, today time.Time) (int, error) {
	due, err := time.ParseInLocation(models.DueDateLayout, dueDate, today.Location())
	if err != nil {
		return 0, err
	}
	y, m, d := today.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, today.Location())
	// Round absorbs DST shifts between the two midnights.
	return int(math.Round(due.Sub(start).Hours() / 24)), nil
}

// Upcoming returns pending tasks due within UpcomingWindowDays of today,
// overdue ones included, sorted by due date ascending. Tasks with an
// unparseable due date never appear.
func Upcoming(tasks []models.Task, courses []models.Course, today time.Time) []UpcomingTask {
	var out []UpcomingTask
	for _, t := range tasks {
		if t.Status != models.StatusPending {
			continue
		}
		days, err := DaysUntil(t.DueDate, today)
		if err != nil || days > UpcomingWindowDays {
			continue
		}
		u := UrgencyFor(days)
		name, color := CourseLabel(courses, t.CourseID)
		out = append(out, UpcomingTask{
			Task:        t,
			CourseName:  name,
			CourseColor: color,
			DaysLeft:    days,
			Urgency:     u,
			Label:       u.Label(days),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DaysLeft < out[j].DaysLeft
	})
	return out
}

// CourseLabel resolves a task's course reference to a display name and color,
// falling back to the uncategorized label for dangling references.
func CourseLabel(courses []models.Course, courseID int) (string, string) {
	if c := models.FindCourse(courses, courseID); c != nil {
		return c.Name, c.Color
	}
	return models.UncategorizedName, models.UncategorizedColor
}
