package testutil

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/taskforge-dev/taskforge/task"
)

// WriteTaskFile writes a task file holding the given records, in the same
// YAML layout the store produces.
func WriteTaskFile(path string, records []task.Record) error {
	data, err := yaml.Marshal(records)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// WriteCorruptTaskFile writes a file that is not a valid task document.
func WriteCorruptTaskFile(path string) error {
	return os.WriteFile(path, []byte("{{ this is not yaml ]"), 0644)
}

// PendingTask returns a record for a pending task with the given fields.
// An empty due leaves the task without a due date.
func PendingTask(id, title, priority, due string) task.Record {
	return task.Record{
		ID:       id,
		Title:    title,
		Priority: priority,
		DueDate:  due,
		Status:   string(task.StatusPending),
	}
}
