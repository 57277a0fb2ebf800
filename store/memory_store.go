package store

import (
	"sync"

	"github.com/taskforge-dev/taskforge/task"
)

// InMemoryStore is an in-memory implementation of Store with no backing
// storage. Useful for testing and as a reference implementation.
type InMemoryStore struct {
	mu    sync.RWMutex
	tasks []*task.Task
}

// NewInMemoryStore creates a new in-memory task store
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{}
}

// Add creates a task from raw input and appends it to the sequence
func (s *InMemoryStore) Add(title, priorityText, dueText string) (*task.Task, error) {
	t := NewTask(title, priorityText, dueText)
	s.mu.Lock()
	s.tasks = append(s.tasks, t)
	s.mu.Unlock()
	return t, nil
}

// FindByID returns the task with the matching id, or ErrNotFound
func (s *InMemoryStore) FindByID(id string) (*task.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, ErrNotFound
}

// Update applies the supplied fields to the matching task
func (s *InMemoryStore) Update(id string, upd TaskUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.tasks {
		if t.ID == id {
			ApplyUpdate(t, upd)
			return nil
		}
	}
	return ErrNotFound
}

// MarkComplete sets the task's status to Completed
func (s *InMemoryStore) MarkComplete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.tasks {
		if t.ID == id {
			t.Status = task.StatusCompleted
			return nil
		}
	}
	return ErrNotFound
}

// Delete removes the matching task from the sequence
func (s *InMemoryStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, t := range s.tasks {
		if t.ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// Filter returns the subset matching the criterion, in insertion order
func (s *InMemoryStore) Filter(criterion FilterCriterion, value string) []*task.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return MatchTasks(s.tasks, criterion, value, timeNow())
}

// List returns all tasks in insertion order
func (s *InMemoryStore) List() []*task.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	tasks := make([]*task.Task, len(s.tasks))
	copy(tasks, s.tasks)
	return tasks
}

// Save is a no-op; the store has no backing storage
func (s *InMemoryStore) Save() error { return nil }

// Reload is a no-op; the store has no backing storage
func (s *InMemoryStore) Reload() error { return nil }

// ensure InMemoryStore implements Store
var _ Store = (*InMemoryStore)(nil)
