package enrollment

import (
	"net/url"
	"strconv"
	"time"

	"github.com/volatiletech/null/v8"

	"github.com/shulehub/shule/core"
)

// Statuses
const (
	StatusEnrolled  = "ENROLLED"
	StatusDropped   = "DROPPED"
	StatusCompleted = "COMPLETED"
)

type Enrollment struct {
	ID          string `json:"id"`
	StudentID   string `json:"student_id"`
	StudentName string `json:"student_name,omitempty"`
	SectionID   string `json:"section_id"`
	SectionName string `json:"section_name,omitempty"`
	Status      string `json:"status"`
	// Grade is the rolled-up final grade (0-100), set once graded work
	// aggregates server-side.
	Grade          null.Float64 `json:"grade,omitempty"`
	EnrollmentDate time.Time    `json:"enrollment_date"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

type NewEnrollment struct {
	StudentID string `json:"student_id" validate:"required"`
	SectionID string `json:"section_id" validate:"required"`
}

func (ne NewEnrollment) Validate() error {
	return core.TranslateValidationErrors(core.Validate.Struct(ne))
}

type UpdateEnrollment struct {
	Status string   `json:"status,omitempty" validate:"omitempty,oneof=ENROLLED DROPPED COMPLETED"`
	Grade  *float64 `json:"grade,omitempty" validate:"omitempty,min=0,max=100"`
}

func (ue UpdateEnrollment) Validate() error {
	return core.TranslateValidationErrors(core.Validate.Struct(ue))
}

type QueryFilter struct {
	StudentID string
	SectionID string
	Status    string
	Page      int
	PageSize  int
}

func (qf QueryFilter) Values() url.Values {
	v := make(url.Values)
	if qf.StudentID != "" {
		v.Set("student_id", qf.StudentID)
	}
	if qf.SectionID != "" {
		v.Set("section_id", qf.SectionID)
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
