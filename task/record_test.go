package task

import (
	"testing"
	"time"
)

func TestRecordRoundTrip(t *testing.T) {
	due, _ := ParseDate("2025-10-10")
	original := &Task{
		ID:       "a1b2c3d4",
		Title:    "Write report",
		Priority: PriorityHigh,
		DueDate:  due,
		Status:   StatusCompleted,
	}

	got := FromRecord(original.ToRecord())
	if *got != *original {
		t.Errorf("round trip = %+v, want %+v", got, original)
	}
}

func TestRecordRoundTripNoDueDate(t *testing.T) {
	original := &Task{
		ID:       "a1b2c3d4",
		Title:    "Water plants",
		Priority: PriorityLow,
		Status:   StatusPending,
	}

	r := original.ToRecord()
	if r.DueDate != "" {
		t.Errorf("record due_date = %q, want empty", r.DueDate)
	}

	got := FromRecord(r)
	if got.HasDueDate() {
		t.Error("task without due date should stay without one")
	}
	if *got != *original {
		t.Errorf("round trip = %+v, want %+v", got, original)
	}
}

func TestFromRecordTolerance(t *testing.T) {
	tests := []struct {
		name   string
		record Record
		check  func(t *testing.T, got *Task)
	}{
		{
			name:   "malformed due date degrades to absent",
			record: Record{ID: "a1b2c3d4", Title: "x", Priority: "Low", DueDate: "not-a-date", Status: "Pending"},
			check: func(t *testing.T, got *Task) {
				if got.HasDueDate() {
					t.Error("malformed due date should be dropped")
				}
			},
		},
		{
			name:   "missing priority defaults to Low",
			record: Record{ID: "a1b2c3d4", Title: "x", Status: "Pending"},
			check: func(t *testing.T, got *Task) {
				if got.Priority != PriorityLow {
					t.Errorf("priority = %q, want Low", got.Priority)
				}
			},
		},
		{
			name:   "unknown priority defaults to Low",
			record: Record{ID: "a1b2c3d4", Title: "x", Priority: "urgent", Status: "Pending"},
			check: func(t *testing.T, got *Task) {
				if got.Priority != PriorityLow {
					t.Errorf("priority = %q, want Low", got.Priority)
				}
			},
		},
		{
			name:   "missing status defaults to Pending",
			record: Record{ID: "a1b2c3d4", Title: "x", Priority: "Low"},
			check: func(t *testing.T, got *Task) {
				if got.Status != StatusPending {
					t.Errorf("status = %q, want Pending", got.Status)
				}
			},
		},
		{
			name:   "missing id gets generated",
			record: Record{Title: "x", Priority: "Low", Status: "Pending"},
			check: func(t *testing.T, got *Task) {
				if len(got.ID) != 8 {
					t.Errorf("generated id = %q, want 8 characters", got.ID)
				}
			},
		},
		{
			name:   "missing title tolerated",
			record: Record{ID: "a1b2c3d4", Priority: "Low", Status: "Pending"},
			check: func(t *testing.T, got *Task) {
				if got.Title != "" {
					t.Errorf("title = %q, want empty", got.Title)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromRecord(tt.record)
			if got == nil {
				t.Fatal("FromRecord returned nil")
			}
			tt.check(t, got)
		})
	}
}

func TestNew(t *testing.T) {
	due := time.Date(2025, 10, 10, 15, 30, 0, 0, time.Local)
	got := New("Buy milk", PriorityMedium, due)

	if len(got.ID) != 8 {
		t.Errorf("id = %q, want 8 characters", got.ID)
	}
	if got.Status != StatusPending {
		t.Errorf("status = %q, want Pending", got.Status)
	}
	if got.DueText() != "2025-10-10" {
		t.Errorf("due = %q, want 2025-10-10", got.DueText())
	}
}
