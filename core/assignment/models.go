package assignment

import (
	"net/url"
	"strconv"
	"time"

	"github.com/shulehub/shule/core"
	"github.com/shulehub/shule/core/submission"
)

// Types
const (
	TypeHomework   = "HOMEWORK"
	TypeQuiz       = "QUIZ"
	TypeExam       = "EXAM"
	TypeProject    = "PROJECT"
	TypeDiscussion = "DISCUSSION"
)

type Assignment struct {
	ID          string `json:"id"`
	SectionID   string `json:"section_id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	// Instructions is rich text (sanitized server-side).
	Instructions string            `json:"instructions,omitempty"`
	Type         string            `json:"type"`
	DueDate      time.Time         `json:"due_date"`
	MaxPoints    float64           `json:"max_points"`
	Attachments  []core.Attachment `json:"attachments,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// WithSubmissions is the expanded "with relations" variant used by the
// grading view.
type WithSubmissions struct {
	Assignment
	Submissions []submission.Submission `json:"submissions"`
}

// NewAssignment contains information needed to create a new Assignment.
// DueDate must be strictly in the future at creation time; editing an
// existing assignment deliberately skips that check.
type NewAssignment struct {
	SectionID    string    `json:"section_id" validate:"required"`
	Title        string    `json:"title" validate:"required,max=200"`
	Description  string    `json:"description,omitempty"`
	Instructions string    `json:"instructions,omitempty"`
	Type         string    `json:"type" validate:"required,oneof=HOMEWORK QUIZ EXAM PROJECT DISCUSSION"`
	DueDate      time.Time `json:"due_date" validate:"required,future"`
	MaxPoints    float64   `json:"max_points" validate:"required,gt=0,lte=1000"`
}

func (na *NewAssignment) Validate() error {
	na.Title = core.CleanString(na.Title)
	return core.TranslateValidationErrors(core.Validate.Struct(na))
}

type UpdateAssignment struct {
	Title        string     `json:"title,omitempty" validate:"omitempty,max=200"`
	Description  string     `json:"description,omitempty"`
	Instructions string     `json:"instructions,omitempty"`
	Type         string     `json:"type,omitempty" validate:"omitempty,oneof=HOMEWORK QUIZ EXAM PROJECT DISCUSSION"`
	DueDate      *time.Time `json:"due_date,omitempty"`
	MaxPoints    float64    `json:"max_points,omitempty" validate:"omitempty,gt=0,lte=1000"`
}

func (ua *UpdateAssignment) Validate() error {
	ua.Title = core.CleanString(ua.Title)
	return core.TranslateValidationErrors(core.Validate.Struct(ua))
}

type QueryFilter struct {
	Search    string
	SectionID string
	Type      string
	Page      int
	PageSize  int
}

func (qf *QueryFilter) Clean() {
	qf.Search = core.CleanString(qf.Search)
}

func (qf QueryFilter) Values() url.Values {
	v := make(url.Values)
	if qf.Search != "" {
		v.Set("search", qf.Search)
	}
	if qf.SectionID != "" {
		v.Set("section_id", qf.SectionID)
	}
	if qf.Type != "" {
		v.Set("type", qf.Type)
	}
	if qf.Page > 0 {
		v.Set("page", strconv.Itoa(qf.Page))
	}
	if qf.PageSize > 0 {
		v.Set("page_size", strconv.Itoa(qf.PageSize))
	}
	return v
}
