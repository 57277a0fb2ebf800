package console

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/taskforge-dev/taskforge/store"
	taskpkg "github.com/taskforge-dev/taskforge/task"
)

type viewMode string

const (
	viewAll       viewMode = "all"
	viewByStatus  viewMode = "status"
	viewByDueDate viewMode = "due"
)

// addInput carries the raw operator answers for an add operation.
type addInput struct {
	title    string
	priority string
	due      string
}

// updateInput carries the raw answers for an update, before they are
// translated into a store.TaskUpdate.
type updateInput struct {
	priority string
	due      string
}

func runForm(fields ...huh.Field) error {
	return huh.NewForm(huh.NewGroup(fields...)).WithTheme(huh.ThemeCharm()).Run()
}

func validateNonEmpty(text string) error {
	if strings.TrimSpace(text) == "" {
		return errors.New("input cannot be empty")
	}
	return nil
}

func (c *Console) promptAdd() (addInput, error) {
	var in addInput
	err := runForm(
		huh.NewInput().
			Title("Title").
			Validate(validateNonEmpty).
			Value(&in.title),
		huh.NewInput().
			Title(fmt.Sprintf("Priority (%s)", taskpkg.PriorityNames())).
			Placeholder(string(taskpkg.PriorityLow)).
			Value(&in.priority),
		huh.NewInput().
			Title(fmt.Sprintf("Due date (%s)", taskpkg.DateFormat)).
			Placeholder("blank = none").
			Value(&in.due),
	)
	if err != nil {
		return addInput{}, err
	}
	in.title = strings.TrimSpace(in.title)
	in.priority = strings.TrimSpace(in.priority)
	in.due = strings.TrimSpace(in.due)
	return in, nil
}

func (c *Console) promptTaskID(title string) (string, error) {
	var id string
	err := runForm(
		huh.NewInput().
			Title(title).
			Validate(validateNonEmpty).
			Value(&id),
	)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(id), nil
}

// promptUpdate collects new field values for an existing task. A blank
// answer keeps the current value; for the due date, the clear sentinel
// removes it. The raw priority/due texts are returned alongside the update
// so the caller can warn about coercions.
func (c *Console) promptUpdate(current *taskpkg.Task) (store.TaskUpdate, updateInput, error) {
	dueDisplay := current.DueText()
	if dueDisplay == "" {
		dueDisplay = "none"
	}

	var title, priority, due string
	err := runForm(
		huh.NewInput().
			Title(fmt.Sprintf("Title [%s]", current.Title)).
			Placeholder("blank = keep").
			Value(&title),
		huh.NewInput().
			Title(fmt.Sprintf("Priority (%s) [%s]", taskpkg.PriorityNames(), current.Priority)).
			Placeholder("blank = keep").
			Value(&priority),
		huh.NewInput().
			Title(fmt.Sprintf("Due date (%s) [%s]", taskpkg.DateFormat, dueDisplay)).
			Placeholder(fmt.Sprintf("blank = keep, %s = clear", clearDueSentinel)).
			Value(&due),
	)
	if err != nil {
		return store.TaskUpdate{}, updateInput{}, err
	}

	title = strings.TrimSpace(title)
	priority = strings.TrimSpace(priority)
	due = strings.TrimSpace(due)

	var upd store.TaskUpdate
	if title != "" {
		upd.Title = &title
	}
	if priority != "" {
		upd.Priority = &priority
	}
	if due != "" {
		dueValue := due
		if due == clearDueSentinel {
			dueValue = ""
		}
		upd.DueText = &dueValue
	}
	return upd, updateInput{priority: priority, due: due}, nil
}

func (c *Console) promptConfirmDelete(id string) (bool, error) {
	var confirmed bool
	err := runForm(
		huh.NewConfirm().
			Title(fmt.Sprintf("Are you sure you want to delete %s?", id)).
			Affirmative("Yes").
			Negative("No").
			Value(&confirmed),
	)
	if err != nil {
		return false, err
	}
	return confirmed, nil
}

func (c *Console) promptViewMode() (viewMode, error) {
	var mode viewMode
	err := runForm(
		huh.NewSelect[viewMode]().
			Title("View").
			Options(
				huh.NewOption("a. All", viewAll),
				huh.NewOption("b. By status", viewByStatus),
				huh.NewOption("c. By due date", viewByDueDate),
			).
			Value(&mode),
	)
	if err != nil {
		return "", err
	}
	return mode, nil
}

func (c *Console) promptFilterCriterion() (store.FilterCriterion, error) {
	var criterion store.FilterCriterion
	err := runForm(
		huh.NewSelect[store.FilterCriterion]().
			Title("Filter by").
			Options(
				huh.NewOption("1. Status", store.FilterByStatus),
				huh.NewOption("2. Due date", store.FilterByDueDate),
			).
			Value(&criterion),
	)
	if err != nil {
		return "", err
	}
	return criterion, nil
}

func (c *Console) promptStatusValue() (string, error) {
	var value string
	err := runForm(
		huh.NewInput().
			Title(fmt.Sprintf("Status (%s/%s)", taskpkg.StatusPending, taskpkg.StatusCompleted)).
			Placeholder(string(taskpkg.StatusPending)).
			Value(&value),
	)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(value), nil
}

func (c *Console) promptDueValue() (string, error) {
	var value string
	err := runForm(
		huh.NewInput().
			Title(fmt.Sprintf("Due (today, week, or %s)", taskpkg.DateFormat)).
			Placeholder("today").
			Value(&value),
	)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(value), nil
}
