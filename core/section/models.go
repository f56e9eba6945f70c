package section

import (
	"net/url"
	"strconv"
	"time"

	"github.com/shulehub/shule/core"
)

type Section struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	SubjectID     string    `json:"subject_id"`
	SubjectName   string    `json:"subject_name,omitempty"`
	ProfessorID   string    `json:"professor_id"`
	ProfessorName string    `json:"professor_name,omitempty"`
	StartDate     time.Time `json:"start_date"`
	EndDate       time.Time `json:"end_date"`
	MaxStudents   int       `json:"max_students"`
	// EnrollmentCount is derived server-side; the client never patches it.
	EnrollmentCount int       `json:"enrollment_count"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// IsFull reports whether the section has reached capacity. This is the
// soft client-side check; the authoritative check is server-side.
func (s *Section) IsFull() bool {
	return s.MaxStudents > 0 && s.EnrollmentCount >= s.MaxStudents
}

type NewSection struct {
	Name        string    `json:"name" validate:"required,max=120"`
	SubjectID   string    `json:"subject_id" validate:"required"`
	ProfessorID string    `json:"professor_id" validate:"required"`
	StartDate   time.Time `json:"start_date" validate:"required"`
	EndDate     time.Time `json:"end_date" validate:"required,gtfield=StartDate"`
	MaxStudents int       `json:"max_students" validate:"required,min=1,max=500"`
}

func (ns *NewSection) Validate() error {
	ns.Name = core.CleanString(ns.Name)
	return core.TranslateValidationErrors(core.Validate.Struct(ns))
}

type UpdateSection struct {
	Name        string     `json:"name,omitempty"`
	ProfessorID string     `json:"professor_id,omitempty"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	MaxStudents int        `json:"max_students,omitempty" validate:"omitempty,min=1,max=500"`
}

func (us *UpdateSection) Validate() error {
	us.Name = core.CleanString(us.Name)
	return core.TranslateValidationErrors(core.Validate.Struct(us))
}

type QueryFilter struct {
	Search      string
	SubjectID   string
	ProfessorID string
	Page        int
	PageSize    int
}

func (qf *QueryFilter) Clean() {
	qf.Search = core.CleanString(qf.Search)
}

func (qf QueryFilter) Values() url.Values {
	v := make(url.Values)
	if qf.Search != "" {
		v.Set("search", qf.Search)
	}
	if qf.SubjectID != "" {
		v.Set("subject_id", qf.SubjectID)
	}
	if qf.ProfessorID != "" {
		v.Set("professor_id", qf.ProfessorID)
	}
	if qf.Page > 0 {
		v.Set("page", strconv.Itoa(qf.Page))
	}
	if qf.PageSize > 0 {
		v.Set("page_size", strconv.Itoa(qf.PageSize))
	}
	return v
}
