package testutil

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/volatiletech/null/v8"

	"github.com/shulehub/shule/core/submission"
)

// The API's nullable fields ride as JSON null, not as zero values; a
// regression here silently corrupts lateness and grade derivations.
func TestSubmissionWireFormat(t *testing.T) {
	created := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	submitted := time.Date(2026, 9, 2, 10, 0, 0, 0, time.UTC)

	sub := submission.Submission{
		ID:           "1",
		AssignmentID: "100",
		StudentID:    "10",
		Content:      "my answers",
		Status:       submission.StatusGraded,
		SubmittedAt:  null.TimeFrom(submitted),
		PointsEarned: null.Float64From(95),
		Feedback:     "well done",
		GradedAt:     null.TimeFrom(submitted.Add(time.Hour)),
		GraderID:     null.StringFrom("2"),
		CreatedAt:    created,
		UpdatedAt:    created,
	}

	got, err := json.Marshal(sub)
	if err != nil {
		t.Fatalf("Marshal() failed, %v", err)
	}
	want := []byte(`{
		"id": "1",
		"assignment_id": "100",
		"student_id": "10",
		"content": "my answers",
		"status": "GRADED",
		"submitted_at": "2026-09-02T10:00:00Z",
		"points_earned": 95,
		"feedback": "well done",
		"graded_at": "2026-09-02T11:00:00Z",
		"grader_id": "2",
		"created_at": "2026-09-01T10:00:00Z",
		"updated_at": "2026-09-01T10:00:00Z"
	}`)
	if !JSONEqual(t, want, got) {
		t.Errorf("unexpected wire format:\n%s", JSONDiff(t, want, got))
	}

	// ungraded drafts carry explicit nulls
	draft := submission.Submission{
		ID:           "2",
		AssignmentID: "100",
		StudentID:    "10",
		Status:       submission.StatusDraft,
		CreatedAt:    created,
		UpdatedAt:    created,
	}
	got, err = json.Marshal(draft)
	if err != nil {
		t.Fatalf("Marshal() failed, %v", err)
	}
	want = []byte(`{
		"id": "2",
		"assignment_id": "100",
		"student_id": "10",
		"status": "DRAFT",
		"submitted_at": null,
		"points_earned": null,
		"graded_at": null,
		"grader_id": null,
		"created_at": "2026-09-01T10:00:00Z",
		"updated_at": "2026-09-01T10:00:00Z"
	}`)
	if !JSONEqual(t, want, got) {
		t.Errorf("unexpected wire format:\n%s", JSONDiff(t, want, got))
	}
}
