package db

import (
	"context"
	"errors"
	"testing"

	"coursetrack/models"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(NewMemoryKV())
}

func seededStore(t *testing.T) *Store {
	t.Helper()
	s := setupTestStore(t)
	if err := s.Seed(context.Background()); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	return s
}

func TestGetOnEmptyStore(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	courses, err := s.GetCourses(ctx)
	if err != nil {
		t.Fatalf("GetCourses: %v", err)
	}
	if courses == nil || len(courses) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", courses)
	}
	tasks, err := s.GetTasks(ctx)
	if err != nil {
		t.Fatalf("GetTasks: %v", err)
	}
	if tasks == nil || len(tasks) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", tasks)
	}
}

func TestSeedWritesDefaultsOnce(t *testing.T) {
	s := seededStore(t)
	ctx := context.Background()

	courses, _ := s.GetCourses(ctx)
	tasks, _ := s.GetTasks(ctx)
	if len(courses) != 3 || len(tasks) != 3 {
		t.Fatalf("expected 3 courses and 3 tasks, got %d and %d", len(courses), len(tasks))
	}
	if courses[1].Name != "数据结构" {
		t.Errorf("unexpected seed course %q", courses[1].Name)
	}
	if tasks[1].Status != models.StatusCompleted {
		t.Errorf("expected seeded task 2 completed, got %s", tasks[1].Status)
	}

	// A second seed must not overwrite user data.
	if err := s.SaveCourses(ctx, nil); err != nil {
		t.Fatalf("SaveCourses: %v", err)
	}
	if err := s.Seed(ctx); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	courses, _ = s.GetCourses(ctx)
	if len(courses) != 0 {
		t.Errorf("expected emptied courses to stay empty, got %d", len(courses))
	}
}

func TestSeedOnlyMissingKey(t *testing.T) {
	kv := NewMemoryKV()
	ctx := context.Background()
	_ = kv.Set(ctx, TasksKey, `[]`)

	s := NewStore(kv)
	if err := s.Seed(ctx); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	courses, _ := s.GetCourses(ctx)
	tasks, _ := s.GetTasks(ctx)
	if len(courses) != 3 {
		t.Errorf("expected seeded courses, got %d", len(courses))
	}
	if len(tasks) != 0 {
		t.Errorf("expected existing empty tasks to be kept, got %d", len(tasks))
	}
}

func TestCorruptCollectionPropagates(t *testing.T) {
	kv := NewMemoryKV()
	ctx := context.Background()
	_ = kv.Set(ctx, CoursesKey, `{not json`)

	s := NewStore(kv)
	if _, err := s.GetCourses(ctx); err == nil {
		t.Fatal("expected decode error")
	}
	if _, err := s.CreateCourse(ctx, "Physics", "#000000"); err == nil {
		t.Fatal("expected create to fail on corrupt collection")
	}
}

func TestCreateCourseAssignsNextID(t *testing.T) {
	tests := []struct {
		name   string
		before []models.Course
		wantID int
	}{
		{"empty", nil, 1},
		{"sequential", models.SeedCourses(), 4},
		{"gap", []models.Course{{ID: 2, Name: "a"}, {ID: 9, Name: "b"}, {ID: 5, Name: "c"}}, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := setupTestStore(t)
			ctx := context.Background()
			if err := s.SaveCourses(ctx, tt.before); err != nil {
				t.Fatalf("SaveCourses: %v", err)
			}

			created, err := s.CreateCourse(ctx, "  Operating Systems  ", "#123456")
			if err != nil {
				t.Fatalf("CreateCourse: %v", err)
			}
			if created.ID != tt.wantID {
				t.Errorf("expected id %d, got %d", tt.wantID, created.ID)
			}
			if created.Name != "Operating Systems" {
				t.Errorf("expected trimmed name, got %q", created.Name)
			}

			courses, _ := s.GetCourses(ctx)
			if len(courses) != len(tt.before)+1 {
				t.Fatalf("expected %d courses, got %d", len(tt.before)+1, len(courses))
			}
			matches := 0
			for _, c := range courses {
				if c.ID == tt.wantID {
					matches++
				}
			}
			if matches != 1 {
				t.Errorf("expected exactly one course with id %d, got %d", tt.wantID, matches)
			}
		})
	}
}

func TestCreateCourseValidation(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	if _, err := s.CreateCourse(ctx, "   ", "#fff000"); !errors.Is(err, ErrNameRequired) {
		t.Errorf("expected ErrNameRequired, got %v", err)
	}
	c, err := s.CreateCourse(ctx, "Calculus", "")
	if err != nil {
		t.Fatalf("CreateCourse: %v", err)
	}
	if c.Color != models.DefaultCourseColor {
		t.Errorf("expected default color, got %q", c.Color)
	}
}

func TestUpdateCourse(t *testing.T) {
	s := seededStore(t)
	ctx := context.Background()

	updated, err := s.UpdateCourse(ctx, 2, "Data Structures", "#ff0000")
	if err != nil {
		t.Fatalf("UpdateCourse: %v", err)
	}
	if updated == nil || updated.ID != 2 || updated.Name != "Data Structures" || updated.Color != "#ff0000" {
		t.Errorf("unexpected update result: %+v", updated)
	}

	missing, err := s.UpdateCourse(ctx, 42, "Nope", "#000000")
	if err != nil {
		t.Fatalf("UpdateCourse missing: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for missing course, got %+v", missing)
	}
	courses, _ := s.GetCourses(ctx)
	if len(courses) != 3 {
		t.Errorf("missing update must be a no-op, got %d courses", len(courses))
	}
}

func TestSaveCourseForm(t *testing.T) {
	s := seededStore(t)
	ctx := context.Background()

	created, err := s.SaveCourseForm(ctx, "", "Compilers", "#00ff00")
	if err != nil {
		t.Fatalf("SaveCourseForm create: %v", err)
	}
	if created.ID != 4 {
		t.Errorf("expected new id 4, got %d", created.ID)
	}

	edited, err := s.SaveCourseForm(ctx, "1", "Software Engineering", "#3b82f6")
	if err != nil {
		t.Fatalf("SaveCourseForm update: %v", err)
	}
	if edited.ID != 1 || edited.Name != "Software Engineering" {
		t.Errorf("unexpected edit result: %+v", edited)
	}

	if _, err := s.SaveCourseForm(ctx, "1", "", "#3b82f6"); !errors.Is(err, ErrNameRequired) {
		t.Errorf("expected ErrNameRequired, got %v", err)
	}
	if _, err := s.SaveCourseForm(ctx, "abc", "X", ""); !errors.Is(err, ErrInvalidID) {
		t.Errorf("expected ErrInvalidID, got %v", err)
	}
}

func TestDeleteCourseKeepsTaskReferences(t *testing.T) {
	s := seededStore(t)
	ctx := context.Background()

	before, _ := s.GetTasks(ctx)

	removed, err := s.DeleteCourse(ctx, 1)
	if err != nil {
		t.Fatalf("DeleteCourse: %v", err)
	}
	if !removed {
		t.Fatal("expected course 1 to be removed")
	}
	if c, _ := s.GetCourse(ctx, 1); c != nil {
		t.Errorf("course 1 still present: %+v", c)
	}

	after, _ := s.GetTasks(ctx)
	if len(after) != len(before) {
		t.Fatalf("task count changed: %d -> %d", len(before), len(after))
	}
	for i := range before {
		if after[i] != before[i] {
			t.Errorf("task %d changed: %+v -> %+v", before[i].ID, before[i], after[i])
		}
	}

	removed, err = s.DeleteCourse(ctx, 1)
	if err != nil {
		t.Fatalf("DeleteCourse again: %v", err)
	}
	if removed {
		t.Error("expected second delete to report nothing removed")
	}
}
