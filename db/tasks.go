package db

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	"coursetrack/models"
)

// --- Task Operations ---

// GetTask returns the task with the given id, or nil if it does not exist
func (s *Store) GetTask(ctx context.Context, id int) (*models.Task, error) {
	tasks, err := s.GetTasks(ctx)
	if err != nil {
		return nil, err
	}
	if i := taskIndex(tasks, id); i >= 0 {
		t := tasks[i]
		return &t, nil
	}
	return nil, nil
}

// CreateTask appends a pending task with id = max existing id + 1.
// The course id is not checked against the course collection.
func (s *Store) CreateTask(ctx context.Context, title string, courseID int, dueDate string) (*models.Task, error) {
	title, err := validateTask(title, courseID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tasks, err := s.GetTasks(ctx)
	if err != nil {
		return nil, err
	}
	task := models.Task{
		ID:       nextTaskID(tasks),
		Title:    title,
		CourseID: courseID,
		DueDate:  dueDate,
		Status:   models.StatusPending,
	}
	tasks = append(tasks, task)
	if err := s.SaveTasks(ctx, tasks); err != nil {
		return nil, err
	}
	return &task, nil
}

// UpdateTask replaces title, course and due date. Status is untouched.
// Returns nil without error when no task has the id.
func (s *Store) UpdateTask(ctx context.Context, id int, title string, courseID int, dueDate string) (*models.Task, error) {
	title, err := validateTask(title, courseID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tasks, err := s.GetTasks(ctx)
	if err != nil {
		return nil, err
	}
	i := taskIndex(tasks, id)
	if i < 0 {
		return nil, nil
	}
	tasks[i].Title = title
	tasks[i].CourseID = courseID
	tasks[i].DueDate = dueDate
	if err := s.SaveTasks(ctx, tasks); err != nil {
		return nil, err
	}
	updated := tasks[i]
	return &updated, nil
}

// ToggleTask flips a task between pending and completed
func (s *Store) ToggleTask(ctx context.Context, id int) (*models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks, err := s.GetTasks(ctx)
	if err != nil {
		return nil, err
	}
	i := taskIndex(tasks, id)
	if i < 0 {
		return nil, nil
	}
	tasks[i].Status = tasks[i].Status.Toggled()
	if err := s.SaveTasks(ctx, tasks); err != nil {
		return nil, err
	}
	toggled := tasks[i]
	return &toggled, nil
}

// DeleteTask removes a task; the bool reports whether anything was removed
func (s *Store) DeleteTask(ctx context.Context, id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks, err := s.GetTasks(ctx)
	if err != nil {
		return false, err
	}
	kept := tasks[:0]
	for _, t := range tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	if len(kept) == len(tasks) {
		return false, nil
	}
	if err := s.SaveTasks(ctx, kept); err != nil {
		return false, err
	}
	log.Printf("Deleted task %d", id)
	return true, nil
}

// SaveTaskForm handles the task modal: a blank id creates, anything else updates
func (s *Store) SaveTaskForm(ctx context.Context, idField, title, courseField, dueDate string) (*models.Task, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrTitleRequired
	}
	courseID, err := strconv.Atoi(strings.TrimSpace(courseField))
	if err != nil {
		return nil, ErrCourseRequired
	}

	idField = strings.TrimSpace(idField)
	if idField == "" {
		return s.CreateTask(ctx, title, courseID, dueDate)
	}
	id, err := strconv.Atoi(idField)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidID, idField)
	}
	return s.UpdateTask(ctx, id, title, courseID, dueDate)
}

func validateTask(title string, courseID int) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", ErrTitleRequired
	}
	if courseID <= 0 {
		return "", ErrCourseRequired
	}
	return title, nil
}

func taskIndex(tasks []models.Task, id int) int {
	for i := range tasks {
		if tasks[i].ID == id {
			return i
		}
	}
	return -1
}

func nextTaskID(tasks []models.Task) int {
	maxID := 0
	for _, t := range tasks {
		if t.ID > maxID {
			maxID = t.ID
		}
	}
	return maxID + 1
}
