package db

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"coursetrack/models"
)

var (
	ErrNameRequired   = errors.New("course name is required")
	ErrTitleRequired  = errors.New("task title is required")
	ErrCourseRequired = errors.New("a course must be selected")
	ErrInvalidID      = errors.New("invalid id")
)

// --- Course Operations ---

// GetCourse returns the course with the given id, or nil if it does not exist
func (s *Store) GetCourse(ctx context.Context, id int) (*models.Course, error) {
	courses, err := s.GetCourses(ctx)
	if err != nil {
		return nil, err
	}
	course := models.FindCourse(courses, id)
	if course == nil {
		return nil, nil
	}
	c := *course
	return &c, nil
}

// CreateCourse appends a new course with id = max existing id + 1
func (s *Store) CreateCourse(ctx context.Context, name, color string) (*models.Course, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	if color == "" {
		color = models.DefaultCourseColor
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	courses, err := s.GetCourses(ctx)
	if err != nil {
		return nil, err
	}
	course := models.Course{ID: nextCourseID(courses), Name: name, Color: color}
	courses = append(courses, course)
	if err := s.SaveCourses(ctx, courses); err != nil {
		return nil, err
	}
	log.Printf("Added course: %s (%d)", course.Name, course.ID)
	return &course, nil
}

// UpdateCourse replaces name and color of an existing course.
// Returns nil without error when no course has the id.
func (s *Store) UpdateCourse(ctx context.Context, id int, name, color string) (*models.Course, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	if color == "" {
		color = models.DefaultCourseColor
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	courses, err := s.GetCourses(ctx)
	if err != nil {
		return nil, err
	}
	course := models.FindCourse(courses, id)
	if course == nil {
		return nil, nil
	}
	course.Name = name
	course.Color = color
	updated := *course
	if err := s.SaveCourses(ctx, courses); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteCourse removes a course. Tasks that reference it keep their CourseID
// and are shown as uncategorized from then on.
func (s *Store) DeleteCourse(ctx context.Context, id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	courses, err := s.GetCourses(ctx)
	if err != nil {
		return false, err
	}
	kept := courses[:0]
	for _, c := range courses {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	if len(kept) == len(courses) {
		return false, nil
	}
	if err := s.SaveCourses(ctx, kept); err != nil {
		return false, err
	}
	log.Printf("Deleted course %d", id)
	return true, nil
}

// SaveCourseForm handles the course modal: a blank id creates, anything else updates
func (s *Store) SaveCourseForm(ctx context.Context, idField, name, color string) (*models.Course, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrNameRequired
	}
	idField = strings.TrimSpace(idField)
	if idField == "" {
		return s.CreateCourse(ctx, name, color)
	}
	id, err := strconv.Atoi(idField)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidID, idField)
	}
	return s.UpdateCourse(ctx, id, name, color)
}

func nextCourseID(courses []models.Course) int {
	maxID := 0
	for _, c := range courses {
		if c.ID > maxID {
			maxID = c.ID
		}
	}
	return maxID + 1
}
