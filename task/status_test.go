package task

import "testing"

func TestParseStatus(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Status
		ok    bool
	}{
		{"lowercase pending", "pending", StatusPending, true},
		{"all caps completed", "COMPLETED", StatusCompleted, true},
		{"empty means default", "", StatusPending, true},
		{"unrecognized coerces to Pending", "done", StatusPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseStatus(tt.input)
			if got != tt.want || ok != tt.ok {
				t.Errorf("ParseStatus(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.ok)
			}
		})
	}
}
