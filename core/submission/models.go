package submission

import (
	"net/url"
	"strconv"
	"time"

	"github.com/volatiletech/null/v8"

	"github.com/shulehub/shule/core"
)

type Submission struct {
	ID           string `json:"id"`
	AssignmentID string `json:"assignment_id"`
	StudentID    string `json:"student_id"`
	StudentName  string `json:"student_name,omitempty"`
	// Content is rich text (sanitized server-side).
	Content      string            `json:"content,omitempty"`
	Attachments  []core.Attachment `json:"attachments,omitempty"`
	Status       string            `json:"status"`
	SubmittedAt  null.Time         `json:"submitted_at,omitempty"`
	PointsEarned null.Float64      `json:"points_earned,omitempty"`
	Feedback     string            `json:"feedback,omitempty"`
	GradedAt     null.Time         `json:"graded_at,omitempty"`
	GraderID     null.String       `json:"grader_id,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// IsLate derives lateness against the assignment's due date.
// An unsubmitted submission is never late.
func IsLate(sub Submission, dueDate time.Time) bool {
	return sub.SubmittedAt.Valid && sub.SubmittedAt.Time.After(dueDate)
}

// NewSubmission creates a DRAFT.
type NewSubmission struct {
	AssignmentID string `json:"assignment_id" validate:"required"`
	Content      string `json:"content,omitempty"`
}

func (ns NewSubmission) Validate() error {
	return core.TranslateValidationErrors(core.Validate.Struct(ns))
}

// UpdateSubmission edits a DRAFT or RETURNED submission's content.
type UpdateSubmission struct {
	Content string `json:"content,omitempty"`
}

// Grade carries a professor's grading of one submission. Return hands
// the work back for revision (RETURNED) instead of finalizing (GRADED).
type Grade struct {
	PointsEarned float64 `json:"points_earned" validate:"min=0"`
	Feedback     string  `json:"feedback,omitempty"`
	Return       bool    `json:"return,omitempty"`
}

type QueryFilter struct {
	AssignmentID string
	StudentID    string
	Status       string
	Page         int
	PageSize     int
}

func (qf QueryFilter) Values() url.Values {
	v := make(url.Values)
	if qf.AssignmentID != "" {
		v.Set("assignment_id", qf.AssignmentID)
	}
	if qf.StudentID != "" {
		v.Set("student_id", qf.StudentID)
	}
	if qf.Status != "" {
		v.Set("status", qf.Status)
	}
	if qf.Page > 0 {
		v.Set("page", strconv.Itoa(qf.Page))
	}
	if qf.PageSize > 0 {
		v.Set("page_size", strconv.Itoa(qf.PageSize))
	}
	return v
}
