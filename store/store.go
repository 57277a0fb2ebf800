package store

import (
	"errors"

	"github.com/taskforge-dev/taskforge/task"
)

// ErrNotFound indicates an operation referenced a task id the store does
// not hold. Callers treat it as an operator message, not a failure.
var ErrNotFound = errors.New("task not found")

// TaskUpdate describes a partial update to a task. Nil fields are left
// unchanged, which is how "field omitted" is kept distinct from "field
// explicitly cleared": an empty DueText clears the due date, while a nil
// DueText leaves it alone. An empty or blank Title is ignored.
type TaskUpdate struct {
	Title    *string
	Priority *string
	DueText  *string
}

// FilterCriterion selects which task attribute Filter matches on.
type FilterCriterion string

const (
	FilterByStatus  FilterCriterion = "status"
	FilterByDueDate FilterCriterion = "due_date"
)

// Store is the interface for task storage engines. Mutating operations
// persist synchronously before returning; reads never touch storage.
type Store interface {
	// Add creates a task from raw operator input, coercing an unknown
	// priority to Low and an unparseable due date to absent, and appends it
	// to the end of the sequence. The task is returned even when the save
	// fails; the error then reports the persistence problem only.
	Add(title, priorityText, dueText string) (*task.Task, error)

	// FindByID returns the task with the matching id, or ErrNotFound.
	FindByID(id string) (*task.Task, error)

	// Update applies the supplied fields to the matching task.
	// Returns ErrNotFound without changing anything when the id is unknown.
	Update(id string, upd TaskUpdate) error

	// MarkComplete sets the task's status to Completed. Idempotent.
	MarkComplete(id string) error

	// Delete removes the matching task from the sequence.
	Delete(id string) error

	// Filter returns the subset of tasks matching the criterion, in the
	// store's order. An unrecognized value yields an empty result.
	Filter(criterion FilterCriterion, value string) []*task.Task

	// List returns all tasks in the store's order.
	List() []*task.Task

	// Save writes the full task sequence to storage.
	Save() error

	// Reload replaces the in-memory state with what storage holds.
	Reload() error
}
