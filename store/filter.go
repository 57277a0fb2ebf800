package store

import (
	"log/slog"
	"strings"
	"time"

	"github.com/taskforge-dev/taskforge/task"
)

// timeNow is swappable in tests that pin the current day.
var timeNow = time.Now

// MatchTasks applies a filter criterion to an ordered task sequence and
// returns the matching subset in the original order. The caller supplies
// the current instant so the "today" and "week" windows are testable.
//
// Status values are title-cased and compared exactly, without validation
// against the enum: an unrecognized status simply matches nothing. Due
// date values are "today", "week" (the inclusive 7-day window starting
// today), or a literal date in the fixed format. Tasks without a due date
// never match a due date filter.
func MatchTasks(tasks []*task.Task, criterion FilterCriterion, value string, now time.Time) []*task.Task {
	switch criterion {
	case FilterByStatus:
		want := task.TitleCase(value)
		if want == "" {
			want = string(task.StatusPending)
		}
		var matched []*task.Task
		for _, t := range tasks {
			if string(t.Status) == want {
				matched = append(matched, t)
			}
		}
		return matched

	case FilterByDueDate:
		return matchByDueDate(tasks, value, task.DateOnly(now))

	default:
		slog.Debug("unknown filter criterion", "criterion", criterion)
		return nil
	}
}

func matchByDueDate(tasks []*task.Task, value string, today time.Time) []*task.Task {
	key := strings.ToLower(strings.TrimSpace(value))
	if key == "" {
		key = "today"
	}

	var matched []*task.Task
	switch key {
	case "today":
		for _, t := range tasks {
			if t.HasDueDate() && t.DueDate.Equal(today) {
				matched = append(matched, t)
			}
		}
	case "week":
		end := today.AddDate(0, 0, 6)
		for _, t := range tasks {
			if t.HasDueDate() && !t.DueDate.Before(today) && !t.DueDate.After(end) {
				matched = append(matched, t)
			}
		}
	default:
		day, err := task.ParseDate(value)
		if err != nil {
			slog.Debug("due date filter value is neither a keyword nor a date", "value", value)
			return nil
		}
		for _, t := range tasks {
			if t.HasDueDate() && t.DueDate.Equal(day) {
				matched = append(matched, t)
			}
		}
	}
	return matched
}
