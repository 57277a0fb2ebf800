package forgestore

// ForgeStore is a file-based Store implementation that persists the whole
// task list as one YAML document.

import (
	"log/slog"
	"sync"

	"github.com/taskforge-dev/taskforge/store"
	taskpkg "github.com/taskforge-dev/taskforge/task"
)

// ForgeStore keeps tasks in an ordered in-memory sequence (insertion order
// is the display order and is preserved across save/load) and rewrites the
// backing file in full after every mutation.
type ForgeStore struct {
	mu          sync.RWMutex
	path        string // backing task file
	tasks       []*taskpkg.Task
	loadWarning string // non-fatal problem encountered while loading, if any
}

// New creates a ForgeStore backed by the given file and loads it.
// A missing file means an empty store; an unreadable or corrupt file also
// means an empty store, with the problem kept as a load warning for the
// operator rather than a failure.
func New(path string) *ForgeStore {
	s := &ForgeStore{path: path}

	s.mu.Lock()
	s.loadLocked()
	s.mu.Unlock()

	slog.Info("forgeStore initialized", "path", path, "num_tasks", len(s.tasks))
	return s
}

// Path returns the backing file path.
func (s *ForgeStore) Path() string {
	return s.path
}

// LoadWarning returns the diagnostic from the most recent load, or empty
// when the load was clean.
func (s *ForgeStore) LoadWarning() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadWarning
}

// findLocked returns the task with the matching id, or nil.
// Caller must hold s.mu. A linear scan is fine at personal-list scale.
func (s *ForgeStore) findLocked(id string) *taskpkg.Task {
	for _, t := range s.tasks {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// ensure ForgeStore implements Store
var _ store.Store = (*ForgeStore)(nil)
