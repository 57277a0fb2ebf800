package forgestore

import (
	"testing"
	"time"

	"github.com/taskforge-dev/taskforge/store"
	"github.com/taskforge-dev/taskforge/task"
)

func seedStore(t *testing.T) *ForgeStore {
	t.Helper()
	s := New(taskFile(t))

	today := task.FormatDate(time.Now())
	inSixDays := task.FormatDate(time.Now().AddDate(0, 0, 6))
	inTenDays := task.FormatDate(time.Now().AddDate(0, 0, 10))

	mustAdd := func(title, priority, due string) *task.Task {
		created, err := s.Add(title, priority, due)
		if err != nil {
			t.Fatalf("Add %q: %v", title, err)
		}
		return created
	}

	mustAdd("due today", "low", today)
	mustAdd("due in six days", "medium", inSixDays)
	mustAdd("due in ten days", "high", inTenDays)
	mustAdd("no due date", "low", "")

	done := mustAdd("finished", "low", today)
	if err := s.MarkComplete(done.ID); err != nil {
		t.Fatalf("MarkComplete: %v", err)
	}
	return s
}

func titles(tasks []*task.Task) []string {
	out := make([]string, len(tasks))
	for i, tk := range tasks {
		out[i] = tk.Title
	}
	return out
}

func TestFilterByStatus(t *testing.T) {
	s := seedStore(t)

	pending := s.Filter(store.FilterByStatus, "")
	if len(pending) != 4 {
		t.Errorf("pending tasks = %v, want 4", titles(pending))
	}

	completed := s.Filter(store.FilterByStatus, "completed")
	if len(completed) != 1 || completed[0].Title != "finished" {
		t.Errorf("completed tasks = %v", titles(completed))
	}

	if got := s.Filter(store.FilterByStatus, "archived"); len(got) != 0 {
		t.Errorf("unrecognized status matched %v", titles(got))
	}
}

func TestFilterByDueDate(t *testing.T) {
	s := seedStore(t)

	today := s.Filter(store.FilterByDueDate, "today")
	if len(today) != 2 {
		t.Errorf("due today = %v, want 2", titles(today))
	}
	for _, tk := range today {
		if !tk.HasDueDate() {
			t.Errorf("task %q has no due date but matched today", tk.Title)
		}
	}

	week := s.Filter(store.FilterByDueDate, "week")
	if len(week) != 3 {
		t.Errorf("due this week = %v, want 3", titles(week))
	}

	literal := s.Filter(store.FilterByDueDate, task.FormatDate(time.Now().AddDate(0, 0, 10)))
	if len(literal) != 1 || literal[0].Title != "due in ten days" {
		t.Errorf("literal date matched %v", titles(literal))
	}

	if got := s.Filter(store.FilterByDueDate, "eventually"); len(got) != 0 {
		t.Errorf("garbage due value matched %v", titles(got))
	}
}

func TestListPreservesInsertionOrder(t *testing.T) {
	path := taskFile(t)
	s := New(path)

	var want []string
	for _, title := range []string{"first", "second", "third", "fourth"} {
		created, err := s.Add(title, "low", "")
		if err != nil {
			t.Fatalf("Add: %v", err)
		}
		want = append(want, created.ID)
	}

	check := func(label string, tasks []*task.Task) {
		t.Helper()
		if len(tasks) != len(want) {
			t.Fatalf("%s: task count = %d, want %d", label, len(tasks), len(want))
		}
		for i, tk := range tasks {
			if tk.ID != want[i] {
				t.Errorf("%s: tasks[%d].ID = %q, want %q", label, i, tk.ID, want[i])
			}
		}
	}

	check("same instance", s.List())
	check("after reopen", New(path).List())
}
