package submission

import (
	"testing"
	"time"

	"github.com/volatiletech/null/v8"
)

var allStatuses = []string{StatusDraft, StatusSubmitted, StatusGraded, StatusReturned}

func TestCanTransition(t *testing.T) {
	allowed := map[string]map[string]bool{
		StatusDraft:     {StatusSubmitted: true},
		StatusSubmitted: {StatusGraded: true, StatusReturned: true},
		StatusReturned:  {StatusSubmitted: true},
	}

	for _, from := range allStatuses {
		for _, to := range allStatuses {
			want := allowed[from][to]
			if got := CanTransition(from, to); got != want {
				t.Errorf("CanTransition(%s, %s) = %v, want %v", from, to, got, want)
			}
		}
	}
}

func TestGradedIsTerminal(t *testing.T) {
	for _, to := range allStatuses {
		if CanTransition(StatusGraded, to) {
			t.Errorf("CanTransition(%s, %s) = true, graded submissions must not change status", StatusGraded, to)
		}
	}
}

func TestCanTransitionUnknownStatus(t *testing.T) {
	if CanTransition("LOL", StatusSubmitted) {
		t.Error("unknown statuses must not transition")
	}
	if CanTransition(StatusDraft, "LOL") {
		t.Error("transition to an unknown status must be rejected")
	}
}

func TestIsEditable(t *testing.T) {
	want := map[string]bool{
		StatusDraft:     true,
		StatusSubmitted: false,
		StatusGraded:    false,
		StatusReturned:  true,
	}
	for _, status := range allStatuses {
		if got := IsEditable(status); got != want[status] {
			t.Errorf("IsEditable(%s) = %v, want %v", status, got, want[status])
		}
	}
}

func TestIsLate(t *testing.T) {
	due := time.Date(2026, 9, 20, 23, 59, 0, 0, time.UTC)

	tests := []struct {
		name string
		sub  Submission
		want bool
	}{
		{name: "not submitted", sub: Submission{Status: StatusDraft}},
		{name: "submitted early", sub: Submission{Status: StatusSubmitted, SubmittedAt: null.TimeFrom(due.Add(-time.Hour))}},
		{name: "submitted at the deadline", sub: Submission{Status: StatusSubmitted, SubmittedAt: null.TimeFrom(due)}},
		{name: "submitted late", sub: Submission{Status: StatusSubmitted, SubmittedAt: null.TimeFrom(due.Add(time.Hour))}, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsLate(tt.sub, due); got != tt.want {
				t.Errorf("IsLate() = %v, want %v", got, tt.want)
			}
		})
	}
}
