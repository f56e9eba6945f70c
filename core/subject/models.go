package subject

import (
	"net/url"
	"strconv"
	"time"

	"github.com/shulehub/shule/core"
)

// Subject is a catalog entry referenced by sections.
type Subject struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type NewSubject struct {
	Code string `json:"code" validate:"required,max=16"`
	Name string `json:"name" validate:"required,max=120"`
}

func (ns *NewSubject) Validate() error {
	ns.Code = core.CleanString(ns.Code)
	ns.Name = core.CleanString(ns.Name)
	return core.TranslateValidationErrors(core.Validate.Struct(ns))
}

type UpdateSubject struct {
	Code string `json:"code,omitempty" validate:"omitempty,max=16"`
	Name string `json:"name,omitempty" validate:"omitempty,max=120"`
}

func (us *UpdateSubject) Validate() error {
	us.Code = core.CleanString(us.Code)
	us.Name = core.CleanString(us.Name)
	return core.TranslateValidationErrors(core.Validate.Struct(us))
}

type QueryFilter struct {
	Search   string
	Page     int
	PageSize int
}

func (qf *QueryFilter) Clean() {
	qf.Search = core.CleanString(qf.Search)
}

func (qf QueryFilter) Values() url.Values {
	v := make(url.Values)
	if qf.Search != "" {
		v.Set("search", qf.Search)
	}
	if qf.Page > 0 {
		v.Set("page", strconv.Itoa(qf.Page))
	}
	if qf.PageSize > 0 {
		v.Set("page_size", strconv.Itoa(qf.PageSize))
	}
	return v
}
