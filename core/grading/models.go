package grading

import (
	"github.com/volatiletech/null/v8"

	"github.com/shulehub/shule/core"
)

// GradeBookEntry is one cell-row of the Student x Assignment grid for a
// section: the join of student, assignment, submission and enrollment.
// It is a read-model assembled server-side, never persisted on its own.
type GradeBookEntry struct {
	StudentID       string       `json:"student_id"`
	StudentName     string       `json:"student_name"`
	EnrollmentID    string       `json:"enrollment_id"`
	AssignmentID    string       `json:"assignment_id"`
	AssignmentTitle string       `json:"assignment_title"`
	MaxPoints       float64      `json:"max_points"`
	SubmissionID    null.String  `json:"submission_id,omitempty"`
	Status          string       `json:"status,omitempty"`
	PointsEarned    null.Float64 `json:"points_earned,omitempty"`
	IsLate          bool         `json:"is_late"`
}

// GradeSummary aggregates grading progress for one assignment.
type GradeSummary struct {
	AssignmentID   string       `json:"assignment_id"`
	SubmittedCount int          `json:"submitted_count"`
	GradedCount    int          `json:"graded_count"`
	AveragePoints  null.Float64 `json:"average_points,omitempty"`
	MaxPoints      float64      `json:"max_points"`
}

// StudentGrade is one row of a student's personal grade view.
type StudentGrade struct {
	AssignmentID    string       `json:"assignment_id"`
	AssignmentTitle string       `json:"assignment_title"`
	SectionID       string       `json:"section_id"`
	SectionName     string       `json:"section_name"`
	Status          string       `json:"status"`
	PointsEarned    null.Float64 `json:"points_earned,omitempty"`
	MaxPoints       float64      `json:"max_points"`
	IsLate          bool         `json:"is_late"`
}

// BulkGradeItem grades one submission within a bulk-grade request.
type BulkGradeItem struct {
	SubmissionID string  `json:"submission_id" validate:"required"`
	PointsEarned float64 `json:"points_earned" validate:"min=0"`
	Feedback     string  `json:"feedback,omitempty"`
}

// BulkGrade is the bulk-grade request body.
type BulkGrade struct {
	Items []BulkGradeItem `json:"items" validate:"required,min=1,dive"`
}

func (bg BulkGrade) Validate() error {
	return core.TranslateValidationErrors(core.Validate.Struct(bg))
}

// BulkItemResult is the per-submission outcome of a bulk grade. The
// batch is not atomic: partial success is expected and surfaced per id.
type BulkItemResult struct {
	SubmissionID string `json:"submission_id"`
	OK           bool   `json:"ok"`
	Error        string `json:"error,omitempty"`
}

// BulkResult tallies a bulk grade. Failed items are reported, never
// retried automatically.
type BulkResult struct {
	Results []BulkItemResult `json:"results"`
}

func (br BulkResult) Succeeded() int {
	var n int
	for _, r := range br.Results {
		if r.OK {
			n++
		}
	}
	return n
}

func (br BulkResult) Failed() []BulkItemResult {
	var failed []BulkItemResult
	for _, r := range br.Results {
		if !r.OK {
			failed = append(failed, r)
		}
	}
	return failed
}

// Percent converts earned points to a 0-100 percentage.
func Percent(points, maxPoints float64) float64 {
	if maxPoints <= 0 {
		return 0
	}
	return points / maxPoints * 100
}

// Grade categories.
const (
	CategoryExcellent        = "Excellent"
	CategoryGood             = "Good"
	CategorySatisfactory     = "Satisfactory"
	CategoryNeedsImprovement = "Needs Improvement"
	CategoryFailing          = "Failing"
)

// Category maps a percentage to its display category.
func Category(pct float64) string {
	switch {
	case pct >= 90:
		return CategoryExcellent
	case pct >= 80:
		return CategoryGood
	case pct >= 70:
		return CategorySatisfactory
	case pct >= 60:
		return CategoryNeedsImprovement
	default:
		return CategoryFailing
	}
}
