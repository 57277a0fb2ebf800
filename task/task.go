package task

import (
	"time"

	"github.com/taskforge-dev/taskforge/config"
)

// Task is one trackable to-do item.
type Task struct {
	ID       string
	Title    string
	Priority Priority
	DueDate  time.Time // zero when the task has no due date
	Status   Status
}

// New constructs a pending task with a freshly generated ID.
func New(title string, priority Priority, due time.Time) *Task {
	return &Task{
		ID:       config.GenerateTaskID(),
		Title:    title,
		Priority: priority,
		DueDate:  DateOnly(due),
		Status:   StatusPending,
	}
}

// HasDueDate reports whether the task carries a due date.
func (t *Task) HasDueDate() bool {
	return !t.DueDate.IsZero()
}

// DueText returns the due date in the fixed format, or empty when absent.
func (t *Task) DueText() string {
	if !t.HasDueDate() {
		return ""
	}
	return FormatDate(t.DueDate)
}
