package forgestore

import (
	"time"

	"github.com/taskforge-dev/taskforge/store"
	taskpkg "github.com/taskforge-dev/taskforge/task"
)

// Filter returns the subset of tasks matching the criterion, in insertion
// order. Pure read; nothing is persisted.
func (s *ForgeStore) Filter(criterion store.FilterCriterion, value string) []*taskpkg.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return store.MatchTasks(s.tasks, criterion, value, time.Now())
}

// List returns all tasks in insertion order. Pure read.
func (s *ForgeStore) List() []*taskpkg.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	tasks := make([]*taskpkg.Task, len(s.tasks))
	copy(tasks, s.tasks)
	return tasks
}
