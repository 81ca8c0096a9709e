package models

// TaskStatus is the completion state of a task
type TaskStatus string

const (
	StatusPending   TaskStatus = "pending"
	StatusCompleted TaskStatus = "completed"
)

// Toggled returns the opposite status
func (s TaskStatus) Toggled() TaskStatus {
	if s == StatusCompleted {
		return StatusPending
	}
	return StatusCompleted
}

// Course represents a course that tasks can be filed under
type Course struct {
	ID    int    `json:"id"`    // Unique course ID, assigned as max+1
	Name  string `json:"name"`  // Display name
	Color string `json:"color"` // Hex color, e.g. #3b82f6
}

// Task represents a unit of work with a due date
type Task struct {
	ID       int        `json:"id"`
	Title    string     `json:"title"`
	CourseID int        `json:"courseId"` // May reference a deleted course
	DueDate  string     `json:"dueDate"`  // YYYY-MM-DD
	Status   TaskStatus `json:"status"`
}

const (
	// DefaultCourseColor is used when a course is saved without a color
	DefaultCourseColor = "#3b82f6"
	// UncategorizedColor is shown for tasks whose course no longer exists
	UncategorizedColor = "#6b7280"
	// UncategorizedName is the label for tasks whose course no longer exists
	UncategorizedName = "Uncategorized"
	// DueDateLayout is the calendar date format of Task.DueDate
	DueDateLayout = "2006-01-02"
)

// SeedCourses 首次运行时写入的示例课程
func SeedCourses() []Course {
	return []Course{
		{ID: 1, Name: "软件工程", Color: "#3b82f6"},
		{ID: 2, Name: "数据结构", Color: "#10b981"},
		{ID: 3, Name: "算法分析", Color: "#f59e0b"},
	}
}

// SeedTasks 首次运行时写入的示例任务
func SeedTasks() []Task {
	return []Task{
		{ID: 1, Title: "完成软件设计文档", CourseID: 1, DueDate: "2025-12-10", Status: StatusPending},
		{ID: 2, Title: "复习链表章节", CourseID: 2, DueDate: "2025-12-08", Status: StatusCompleted},
		{ID: 3, Title: "解决排序算法问题", CourseID: 3, DueDate: "2025-12-15", Status: StatusPending},
	}
}

// FindCourse returns the course with the given id, or nil
func FindCourse(courses []Course, id int) *Course {
	for i := range courses {
		if courses[i].ID == id {
			return &courses[i]
		}
	}
	return nil
}
