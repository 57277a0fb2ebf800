package forgestore

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	taskpkg "github.com/taskforge-dev/taskforge/task"
)

// loadLocked reads the task file into memory. Caller must hold s.mu.
// A missing file yields an empty store; any other problem also yields an
// empty store and records a load warning instead of failing.
func (s *ForgeStore) loadLocked() {
	s.tasks = nil
	s.loadWarning = ""

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Debug("no task file yet, starting empty", "path", s.path)
			return
		}
		s.loadWarning = fmt.Sprintf("failed to read task file %s: %v; starting with an empty list", s.path, err)
		slog.Warn("failed to read task file, starting empty", "path", s.path, "error", err)
		return
	}

	var records []taskpkg.Record
	if err := yaml.Unmarshal(data, &records); err != nil {
		s.loadWarning = fmt.Sprintf("task file %s is corrupt: %v; starting with an empty list", s.path, err)
		slog.Warn("task file is corrupt, starting empty", "path", s.path, "error", err)
		return
	}

	tasks := make([]*taskpkg.Task, 0, len(records))
	for _, r := range records {
		tasks = append(tasks, taskpkg.FromRecord(r))
	}
	s.tasks = tasks
	slog.Debug("loaded tasks", "path", s.path, "num_tasks", len(tasks))
}

// saveLocked rewrites the task file in full. Caller must hold s.mu.
func (s *ForgeStore) saveLocked() error {
	records := make([]taskpkg.Record, 0, len(s.tasks))
	for _, t := range s.tasks {
		records = append(records, t.ToRecord())
	}

	data, err := yaml.Marshal(records)
	if err != nil {
		return fmt.Errorf("marshaling tasks: %w", err)
	}

	//nolint:gosec // G306: 0644 is appropriate for a user data file
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("writing task file: %w", err)
	}

	slog.Debug("task file saved", "path", s.path, "num_tasks", len(s.tasks))
	return nil
}

// Save writes the full task sequence to the backing file.
func (s *ForgeStore) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked()
}

// Reload replaces the in-memory state with what the backing file holds.
func (s *ForgeStore) Reload() error {
	s.mu.Lock()
	s.loadLocked()
	warning := s.loadWarning
	s.mu.Unlock()

	if warning != "" {
		return fmt.Errorf("reloading tasks: %s", warning)
	}
	return nil
}
