package store

import (
	"log/slog"
	"strings"
	"time"

	"github.com/taskforge-dev/taskforge/task"
)

// NewTask builds a task from raw operator input. An unknown priority is
// coerced to Low and an unparseable due date is dropped; both are warned
// about, never rejected.
func NewTask(title, priorityText, dueText string) *task.Task {
	priority, ok := task.ParsePriority(priorityText)
	if !ok {
		slog.Warn("unknown priority, defaulting", "input", priorityText, "default", priority, "valid", task.PriorityNames())
	}

	var due time.Time
	if strings.TrimSpace(dueText) != "" {
		d, err := task.ParseDate(dueText)
		if err != nil {
			slog.Warn("invalid due date, leaving task without one", "input", dueText, "expected", task.DateFormat)
		} else {
			due = d
		}
	}

	return task.New(strings.TrimSpace(title), priority, due)
}

// ApplyUpdate mutates t with the fields upd supplies. Omitted (nil) fields
// are untouched. A blank title is ignored; an unknown priority coerces to
// Low; a supplied empty due text clears the due date, and an unparseable
// one degrades to cleared.
func ApplyUpdate(t *task.Task, upd TaskUpdate) {
	if upd.Title != nil {
		if title := strings.TrimSpace(*upd.Title); title != "" {
			t.Title = title
		}
	}

	if upd.Priority != nil {
		priority, ok := task.ParsePriority(*upd.Priority)
		if !ok {
			slog.Warn("unknown priority, defaulting", "task_id", t.ID, "input", *upd.Priority, "default", priority, "valid", task.PriorityNames())
		}
		t.Priority = priority
	}

	if upd.DueText != nil {
		switch text := strings.TrimSpace(*upd.DueText); text {
		case "":
			t.DueDate = time.Time{}
		default:
			d, err := task.ParseDate(text)
			if err != nil {
				slog.Warn("invalid due date, clearing", "task_id", t.ID, "input", text, "expected", task.DateFormat)
				t.DueDate = time.Time{}
			} else {
				t.DueDate = d
			}
		}
	}
}
