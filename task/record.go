package task

import (
	"log/slog"
	"time"

	"github.com/taskforge-dev/taskforge/config"
)

// Record is the persisted form of a Task. The due date is textual in the
// fixed format and omitted entirely when the task has none.
type Record struct {
	ID       string `yaml:"id"`
	Title    string `yaml:"title"`
	Priority string `yaml:"priority"`
	DueDate  string `yaml:"due_date,omitempty"`
	Status   string `yaml:"status"`
}

// ToRecord converts the task into its persisted form.
func (t *Task) ToRecord() Record {
	return Record{
		ID:       t.ID,
		Title:    t.Title,
		Priority: string(t.Priority),
		DueDate:  t.DueText(),
		Status:   string(t.Status),
	}
}

// FromRecord rebuilds a Task from a persisted record on a best-effort
// basis: an unknown priority degrades to Low, an unknown status to Pending,
// an unparseable due date is dropped, and a missing ID is regenerated.
// It never fails.
func FromRecord(r Record) *Task {
	priority, ok := ParsePriority(r.Priority)
	if !ok {
		slog.Warn("unrecognized priority in stored task, defaulting", "task_id", r.ID, "priority", r.Priority, "default", priority)
	}

	status, ok := ParseStatus(r.Status)
	if !ok {
		slog.Warn("unrecognized status in stored task, defaulting", "task_id", r.ID, "status", r.Status, "default", status)
	}

	var due time.Time
	if r.DueDate != "" {
		d, err := ParseDate(r.DueDate)
		if err != nil {
			slog.Warn("unparseable due date in stored task, dropping", "task_id", r.ID, "due_date", r.DueDate)
		} else {
			due = d
		}
	}

	id := r.ID
	if id == "" {
		id = config.GenerateTaskID()
		slog.Warn("stored task has no id, generated one", "task_id", id, "title", r.Title)
	}

	return &Task{
		ID:       id,
		Title:    r.Title,
		Priority: priority,
		DueDate:  due,
		Status:   status,
	}
}
