package forgestore

import (
	"path/filepath"
	"testing"

	"github.com/taskforge-dev/taskforge/task"
	"github.com/taskforge-dev/taskforge/testutil"
)

func taskFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "tasks.yaml")
}

func TestNewMissingFileStartsEmpty(t *testing.T) {
	s := New(taskFile(t))

	if got := len(s.List()); got != 0 {
		t.Errorf("task count = %d, want 0", got)
	}
	if s.LoadWarning() != "" {
		t.Errorf("missing file produced a warning: %q", s.LoadWarning())
	}
}

func TestNewCorruptFileStartsEmptyWithWarning(t *testing.T) {
	path := taskFile(t)
	if err := testutil.WriteCorruptTaskFile(path); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}

	s := New(path)
	if got := len(s.List()); got != 0 {
		t.Errorf("task count = %d, want 0", got)
	}
	if s.LoadWarning() == "" {
		t.Error("corrupt file should produce a load warning")
	}
}

func TestNewLoadsRecordsInFileOrder(t *testing.T) {
	path := taskFile(t)
	records := []task.Record{
		testutil.PendingTask("aaaa0001", "first", "High", "2025-10-10"),
		testutil.PendingTask("aaaa0002", "second", "Low", ""),
		testutil.PendingTask("aaaa0003", "third", "Medium", "2025-12-01"),
	}
	if err := testutil.WriteTaskFile(path, records); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	s := New(path)
	got := s.List()
	if len(got) != 3 {
		t.Fatalf("task count = %d, want 3", len(got))
	}
	for i, want := range []string{"aaaa0001", "aaaa0002", "aaaa0003"} {
		if got[i].ID != want {
			t.Errorf("tasks[%d].ID = %q, want %q", i, got[i].ID, want)
		}
	}
	if got[1].HasDueDate() {
		t.Error("second task should have no due date")
	}
}

func TestNewToleratesMalformedFields(t *testing.T) {
	path := taskFile(t)
	records := []task.Record{
		{ID: "aaaa0001", Title: "bad everything", Priority: "urgent", DueDate: "soon", Status: "archived"},
	}
	if err := testutil.WriteTaskFile(path, records); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	s := New(path)
	got := s.List()
	if len(got) != 1 {
		t.Fatalf("task count = %d, want 1", len(got))
	}
	if got[0].Priority != task.PriorityLow {
		t.Errorf("priority = %q, want Low", got[0].Priority)
	}
	if got[0].Status != task.StatusPending {
		t.Errorf("status = %q, want Pending", got[0].Status)
	}
	if got[0].HasDueDate() {
		t.Error("malformed due date should be dropped")
	}
}
