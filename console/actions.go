package console

import (
	"errors"

	"github.com/taskforge-dev/taskforge/store"
	taskpkg "github.com/taskforge-dev/taskforge/task"
)

// clearDueSentinel is what the operator types in an update prompt to clear
// the due date, since a blank answer means "keep the current value".
const clearDueSentinel = "-"

func (c *Console) addTask() error {
	in, err := c.promptAdd()
	if err != nil {
		return err
	}

	c.warnOnCoercion(in.priority, in.due)

	t, err := c.store.Add(in.title, in.priority, in.due)
	if err != nil {
		// Task is in memory; only persistence lagged.
		c.printf("Warning: %v\n", err)
	}
	c.printf("Task added (ID: %s)\n", t.ID)
	return nil
}

func (c *Console) viewTasks() error {
	mode, err := c.promptViewMode()
	if err != nil {
		return err
	}

	var tasks []*taskpkg.Task
	switch mode {
	case viewAll:
		tasks = c.store.List()
	case viewByStatus:
		value, err := c.promptStatusValue()
		if err != nil {
			return err
		}
		tasks = c.store.Filter(store.FilterByStatus, value)
	case viewByDueDate:
		value, err := c.promptDueValue()
		if err != nil {
			return err
		}
		tasks = c.store.Filter(store.FilterByDueDate, value)
	}

	c.renderTasks(tasks)
	return nil
}

func (c *Console) updateTask() error {
	id, err := c.promptTaskID("Task ID to update")
	if err != nil {
		return err
	}

	current, err := c.store.FindByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.printf("Task not found.\n")
			return nil
		}
		return err
	}

	upd, raw, err := c.promptUpdate(current)
	if err != nil {
		return err
	}

	c.warnOnCoercion(raw.priority, raw.due)

	if err := c.store.Update(id, upd); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.printf("Task not found.\n")
			return nil
		}
		c.printf("Warning: %v\n", err)
	}
	c.printf("Task updated.\n")
	return nil
}

func (c *Console) markComplete() error {
	id, err := c.promptTaskID("Task ID to mark complete")
	if err != nil {
		return err
	}

	if err := c.store.MarkComplete(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.printf("Task not found.\n")
			return nil
		}
		c.printf("Warning: %v\n", err)
	}
	c.printf("Task marked as completed.\n")
	return nil
}

func (c *Console) deleteTask() error {
	id, err := c.promptTaskID("Task ID to delete")
	if err != nil {
		return err
	}

	if c.confirmDelete {
		confirmed, err := c.promptConfirmDelete(id)
		if err != nil {
			return err
		}
		if !confirmed {
			c.printf("Delete cancelled.\n")
			return nil
		}
	}

	if err := c.store.Delete(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.printf("Task not found.\n")
			return nil
		}
		c.printf("Warning: %v\n", err)
	}
	c.printf("Task deleted.\n")
	return nil
}

func (c *Console) filterTasks() error {
	criterion, err := c.promptFilterCriterion()
	if err != nil {
		return err
	}

	var tasks []*taskpkg.Task
	switch criterion {
	case store.FilterByStatus:
		value, err := c.promptStatusValue()
		if err != nil {
			return err
		}
		tasks = c.store.Filter(store.FilterByStatus, value)
	case store.FilterByDueDate:
		value, err := c.promptDueValue()
		if err != nil {
			return err
		}
		tasks = c.store.Filter(store.FilterByDueDate, value)
	}

	c.renderTasks(tasks)
	return nil
}

// warnOnCoercion tells the operator when raw input is about to be coerced,
// mirroring the warnings the store logs.
func (c *Console) warnOnCoercion(priorityText, dueText string) {
	if priorityText != "" {
		if _, ok := taskpkg.ParsePriority(priorityText); !ok {
			c.printf("Unknown priority %q, defaulting to %s. Valid: %s\n",
				priorityText, taskpkg.PriorityLow, taskpkg.PriorityNames())
		}
	}
	if dueText != "" && dueText != clearDueSentinel {
		if _, err := taskpkg.ParseDate(dueText); err != nil {
			c.printf("Invalid date format: %s. Expected %s.\n", dueText, taskpkg.DateFormat)
		}
	}
}

// renderTasks prints a task table, or a placeholder when there is nothing
// to show.
func (c *Console) renderTasks(tasks []*taskpkg.Task) {
	if len(tasks) == 0 {
		c.printf("No tasks to show.\n")
		return
	}
	c.printf("%s\n", renderTable(tasks))
}
