package forgestore

import (
	"fmt"
	"log/slog"

	"github.com/taskforge-dev/taskforge/store"
	taskpkg "github.com/taskforge-dev/taskforge/task"
)

// Add creates a task from raw operator input, appends it to the sequence,
// and saves. The task stays in memory even when the save fails; the error
// then reports the persistence problem only.
func (s *ForgeStore) Add(title, priorityText, dueText string) (*taskpkg.Task, error) {
	t := store.NewTask(title, priorityText, dueText)

	s.mu.Lock()
	s.tasks = append(s.tasks, t)
	err := s.saveLocked()
	s.mu.Unlock()

	if err != nil {
		slog.Error("failed to save after add, in-memory state kept", "task_id", t.ID, "error", err)
		return t, fmt.Errorf("saving tasks: %w", err)
	}
	slog.Info("task added", "task_id", t.ID, "priority", t.Priority, "due", t.DueText())
	return t, nil
}

// FindByID returns the task with the matching id, or store.ErrNotFound.
func (s *ForgeStore) FindByID(id string) (*taskpkg.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if t := s.findLocked(id); t != nil {
		return t, nil
	}
	return nil, store.ErrNotFound
}

// Update applies the supplied fields to the matching task and saves.
// Returns store.ErrNotFound without changing anything when the id is unknown.
func (s *ForgeStore) Update(id string, upd store.TaskUpdate) error {
	s.mu.Lock()
	t := s.findLocked(id)
	if t == nil {
		s.mu.Unlock()
		return store.ErrNotFound
	}
	store.ApplyUpdate(t, upd)
	err := s.saveLocked()
	s.mu.Unlock()

	if err != nil {
		slog.Error("failed to save after update, in-memory state kept", "task_id", id, "error", err)
		return fmt.Errorf("saving tasks: %w", err)
	}
	slog.Info("task updated", "task_id", id)
	return nil
}

// MarkComplete sets the task's status to Completed and saves. Completion is
// terminal; calling it again on a completed task is a harmless no-op save.
func (s *ForgeStore) MarkComplete(id string) error {
	s.mu.Lock()
	t := s.findLocked(id)
	if t == nil {
		s.mu.Unlock()
		return store.ErrNotFound
	}
	t.Status = taskpkg.StatusCompleted
	err := s.saveLocked()
	s.mu.Unlock()

	if err != nil {
		slog.Error("failed to save after completion, in-memory state kept", "task_id", id, "error", err)
		return fmt.Errorf("saving tasks: %w", err)
	}
	slog.Info("task completed", "task_id", id)
	return nil
}

// Delete removes the matching task from the sequence and saves.
func (s *ForgeStore) Delete(id string) error {
	s.mu.Lock()
	idx := -1
	for i, t := range s.tasks {
		if t.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return store.ErrNotFound
	}
	s.tasks = append(s.tasks[:idx], s.tasks[idx+1:]...)
	err := s.saveLocked()
	s.mu.Unlock()

	if err != nil {
		slog.Error("failed to save after delete, in-memory state kept", "task_id", id, "error", err)
		return fmt.Errorf("saving tasks: %w", err)
	}
	slog.Info("task deleted", "task_id", id)
	return nil
}
