package tracker

import (
	"time"

	"coursetrack/models"
)

// ExportMessage is shown when the export action is triggered. No file is produced.
const ExportMessage = "Report export triggered. A real deployment would generate a PDF or Excel report here."

// Progress backs the progress view
type Progress struct {
	Overall  Summary        `json:"overall"`
	Courses  []CourseStat   `json:"courses"`
	Upcoming []UpcomingTask `json:"upcoming"`
}

// Report backs the reports view
type Report struct {
	Summary
	Courses []CourseStat `json:"courses"`
}

// BuildProgress computes the progress view from scratch
func BuildProgress(courses []models.Course, tasks []models.Task, today time.Time) Progress {
	return Progress{
		Overall:  Summarize(tasks),
		Courses:  CourseStats(courses, tasks),
		Upcoming: Upcoming(tasks, courses, today),
	}
}

// BuildReport computes the reports view from scratch
func BuildReport(courses []models.Course, tasks []models.Task) Report {
	return Report{
		Summary: Summarize(tasks),
		Courses: CourseStats(courses, tasks),
	}
}
