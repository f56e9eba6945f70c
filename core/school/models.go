package school

import (
	"net/url"
	"strconv"
	"time"

	"github.com/shulehub/shule/core"
	"github.com/shulehub/shule/core/subscription"
)

type School struct {
	ID           string                     `json:"id"`
	Name         string                     `json:"name"`
	Subdomain    string                     `json:"subdomain"` // unique, URL-safe
	IsActive     bool                       `json:"is_active"`
	Subscription *subscription.Subscription `json:"subscription,omitempty"`
	CreatedAt    time.Time                  `json:"created_at"`
	UpdatedAt    time.Time                  `json:"updated_at"`
}

// NewSchool contains information needed to create a new School;
// super-admin only.
type NewSchool struct {
	Name      string `json:"name" validate:"required,max=120"`
	Subdomain string `json:"subdomain" validate:"required,min=2,max=63,subdomain"`
	Plan      string `json:"plan" validate:"required,oneof=BASIC PREMIUM"`
}

func (ns *NewSchool) Validate() error {
	ns.Name = core.CleanString(ns.Name)
	ns.Subdomain = core.CleanString(ns.Subdomain, true /* lower */)
	return core.TranslateValidationErrors(core.Validate.Struct(ns))
}

type UpdateSchool struct {
	Name      string `json:"name,omitempty"`
	Subdomain string `json:"subdomain,omitempty" validate:"omitempty,min=2,max=63,subdomain"`
}

func (us *UpdateSchool) Validate() error {
	us.Name = core.CleanString(us.Name)
	us.Subdomain = core.CleanString(us.Subdomain, true /* lower */)
	return core.TranslateValidationErrors(core.Validate.Struct(us))
}

type QueryFilter struct {
	Search   string
	IsActive *bool
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
	if qf.IsActive != nil {
		v.Set("is_active", strconv.FormatBool(*qf.IsActive))
	}
	if qf.Page > 0 {
		v.Set("page", strconv.Itoa(qf.Page))
	}
	if qf.PageSize > 0 {
		v.Set("page_size", strconv.Itoa(qf.PageSize))
	}
	return v
}
