package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"

	"coursetrack/models"
)

const (
	CoursesKey = "courses" // JSON array of models.Course
	TasksKey   = "tasks"   // JSON array of models.Task
)

// Store reads and writes the two collections as whole snapshots.
// Every mutation rewrites the entire collection under its key.
type Store struct {
	KV KV
	mu sync.Mutex // serializes read-modify-write cycles within this process
}

// NewStore creates a Store on top of the given backend
func NewStore(kv KV) *Store {
	return &Store{KV: kv}
}

// GetCourses returns all courses, or an empty slice if none were ever saved
func (s *Store) GetCourses(ctx context.Context) ([]models.Course, error) {
	courses := []models.Course{}
	if err := s.load(ctx, CoursesKey, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

// GetTasks returns all tasks, or an empty slice if none were ever saved
func (s *Store) GetTasks(ctx context.Context) ([]models.Task, error) {
	tasks := []models.Task{}
	if err := s.load(ctx, TasksKey, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// SaveCourses overwrites the whole course collection
func (s *Store) SaveCourses(ctx context.Context, courses []models.Course) error {
	if courses == nil {
		courses = []models.Course{}
	}
	return s.save(ctx, CoursesKey, courses)
}

// SaveTasks overwrites the whole task collection
func (s *Store) SaveTasks(ctx context.Context, tasks []models.Task) error {
	if tasks == nil {
		tasks = []models.Task{}
	}
	return s.save(ctx, TasksKey, tasks)
}

func (s *Store) load(ctx context.Context, key string, dst interface{}) error {
	raw, err := s.KV.Get(ctx, key)
	if errors.Is(err, ErrKeyNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", key, err)
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return nil
}

func (s *Store) save(ctx context.Context, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := s.KV.Set(ctx, key, string(data)); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

// Seed writes the sample collections for every key that does not exist yet.
// Existing keys are left alone, even if they hold an empty array.
func (s *Store) Seed(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	seeded, err := s.seedKey(ctx, CoursesKey, models.SeedCourses())
	if err != nil {
		return err
	}
	if seeded {
		log.Printf("No '%s' found in storage, added sample data", CoursesKey)
	}

	seeded, err = s.seedKey(ctx, TasksKey, models.SeedTasks())
	if err != nil {
		return err
	}
	if seeded {
		log.Printf("No '%s' found in storage, added sample data", TasksKey)
	}
	return nil
}

func (s *Store) seedKey(ctx context.Context, key string, v interface{}) (bool, error) {
	_, err := s.KV.Get(ctx, key)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, ErrKeyNotFound) {
		return false, fmt.Errorf("failed to check %s before seeding: %w", key, err)
	}
	if err := s.save(ctx, key, v); err != nil {
		return false, err
	}
	return true, nil
}
