package store

import (
	"encoding/json"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/tgienger/taskman/internal/models"
)

// Store owns the full task collection and its backing JSON document.
// All state lives in memory; the document is read once at construction
// and rewritten in full after every mutation. A single mutex serializes
// mutations so concurrent web requests cannot interleave file writes.
type Store struct {
	mu     sync.Mutex
	path   string
	tasks  []models.Task
	nextID int64
}

// UpdateFields enumerates the fields Update may change. A nil field is
// left untouched. Timestamps are store-managed and not expressible here.
type UpdateFields struct {
	Title       *string
	Description *string
	Priority    *string
	Status      *string
}

// New creates a store backed by the JSON document at path. A missing
// file, or one that does not parse as JSON, yields an empty store.
func New(path string) *Store {
	s := &Store{path: path}
	s.tasks = load(path)
	s.nextID = 1
	for _, t := range s.tasks {
		if t.ID >= s.nextID {
			s.nextID = t.ID + 1
		}
	}
	return s
}

func load(path string) []models.Task {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	var tasks []models.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil
	}
	return tasks
}

// save rewrites the whole backing document. Two-space indentation keeps
// the file human-diffable.
func (s *Store) save() error {
	data, err := json.MarshalIndent(s.tasks, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0644)
}

// Add creates a new task with the next id and pending status, persists
// the collection and returns the new record. Title and priority are
// stored verbatim; validation is the caller's job.
func (s *Store) Add(title, description, priority string) (*models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	task := models.Task{
		ID:          s.nextID,
		Title:       title,
		Description: description,
		Priority:    priority,
		Status:      models.StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.tasks = append(s.tasks, task)
	s.nextID++

	if err := s.save(); err != nil {
		return nil, err
	}
	return &task, nil
}

// Update applies the supplied fields to the task with the given id and
// refreshes updated_at. A nil task return means the id was not found;
// nothing is persisted in that case. Enum values are not validated here.
func (s *Store) Update(id int64, fields UpdateFields) (*models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID != id {
			continue
		}
		t := &s.tasks[i]
		if fields.Title != nil {
			t.Title = *fields.Title
		}
		if fields.Description != nil {
			t.Description = *fields.Description
		}
		if fields.Priority != nil {
			t.Priority = *fields.Priority
		}
		if fields.Status != nil {
			t.Status = *fields.Status
		}
		t.UpdatedAt = time.Now()

		if err := s.save(); err != nil {
			return nil, err
		}
		task := *t
		return &task, nil
	}
	return nil, nil
}

// Delete removes the task with the given id. It reports whether a task
// was removed; deleting an unknown id is not an error. Freed ids are
// never reused.
func (s *Store) Delete(id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			if err := s.save(); err != nil {
				return true, err
			}
			return true, nil
		}
	}
	return false, nil
}

// Get returns a copy of the task with the given id, or nil if absent.
func (s *Store) Get(id int64) *models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID == id {
			task := s.tasks[i]
			return &task
		}
	}
	return nil
}

// List returns tasks matching all supplied non-empty filters, ascending
// by id. The result is a fresh slice of copies.
func (s *Store) List(status, priority string) []models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks := make([]models.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if status != "" && t.Status != status {
			continue
		}
		if priority != "" && t.Priority != priority {
			continue
		}
		tasks = append(tasks, t)
	}
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].ID < tasks[j].ID })
	return tasks
}

// Search returns tasks whose title or description contains query,
// case-insensitively, in original collection order.
func (s *Store) Search(query string) []models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	q := strings.ToLower(query)
	matches := make([]models.Task, 0)
	for _, t := range s.tasks {
		if strings.Contains(strings.ToLower(t.Title), q) ||
			strings.Contains(strings.ToLower(t.Description), q) {
			matches = append(matches, t)
		}
	}
	return matches
}

// Stats returns aggregate counts over the collection.
func (s *Store) Stats() models.Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := models.Stats{
		Total:      len(s.tasks),
		ByPriority: make(map[string]int),
	}
	for _, t := range s.tasks {
		switch t.Status {
		case models.StatusPending:
			stats.Pending++
		case models.StatusCompleted:
			stats.Completed++
		}
		stats.ByPriority[t.Priority]++
	}
	return stats
}
