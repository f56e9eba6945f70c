package section

import (
	"testing"
	"time"
)

func TestStatusAt(t *testing.T) {
	start := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	end := time.Date(2026, 12, 18, 17, 0, 0, 0, time.UTC)
	sec := Section{StartDate: start, EndDate: end}

	tests := []struct {
		name string
		now  time.Time
		want string
	}{
		{name: "before start", now: start.Add(-time.Hour), want: StatusUpcoming},
		{name: "at start", now: start, want: StatusActive},
		{name: "mid term", now: start.AddDate(0, 1, 0), want: StatusActive},
		{name: "at end", now: end, want: StatusActive},
		{name: "after end", now: end.Add(time.Minute), want: StatusCompleted},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StatusAt(sec, tt.now); got != tt.want {
				t.Errorf("StatusAt() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsFull(t *testing.T) {
	tests := []struct {
		name string
		sec  Section
		want bool
	}{
		{name: "empty", sec: Section{MaxStudents: 30}},
		{name: "below capacity", sec: Section{MaxStudents: 30, EnrollmentCount: 29}},
		{name: "at capacity", sec: Section{MaxStudents: 30, EnrollmentCount: 30}, want: true},
		{name: "over capacity", sec: Section{MaxStudents: 30, EnrollmentCount: 31}, want: true},
		{name: "no limit set", sec: Section{EnrollmentCount: 100}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.sec.IsFull(); got != tt.want {
				t.Errorf("IsFull() = %v, want %v", got, tt.want)
			}
		})
	}
}
