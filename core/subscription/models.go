package subscription

import (
	"net/url"
	"strconv"
	"time"

	"github.com/volatiletech/null/v8"

	"github.com/shulehub/shule/core"
)

// Plans
const (
	PlanBasic   = "BASIC"
	PlanPremium = "PREMIUM"
)

// Statuses. Status is never stored client-side: it is derived from
// EndDate/CanceledAt against the current time on every read.
const (
	StatusActive   = "ACTIVE"
	StatusExpired  = "EXPIRED"
	StatusCanceled = "CANCELED"
)

type Subscription struct {
	ID         string    `json:"id"`
	SchoolID   string    `json:"school_id"`
	Plan       string    `json:"plan"`
	EndDate    time.Time `json:"end_date"`
	CanceledAt null.Time `json:"canceled_at,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// StatusAt derives the subscription status at `now`.
// Pure: repeated calls at the same instant yield the same result.
func StatusAt(sub Subscription, now time.Time) string {
	if sub.CanceledAt.Valid {
		return StatusCanceled
	}
	if now.After(sub.EndDate) {
		return StatusExpired
	}
	return StatusActive
}

// Renew extends the subscription's end date.
type Renew struct {
	Months int `json:"months" validate:"required,min=1,max=36"`
}

func (r Renew) Validate() error {
	return core.TranslateValidationErrors(core.Validate.Struct(r))
}

type QueryFilter struct {
	SchoolID string
	Plan     string
	Page     int
	PageSize int
}

func (qf QueryFilter) Values() url.Values {
	v := make(url.Values)
	if qf.SchoolID != "" {
		v.Set("school_id", qf.SchoolID)
	}
	if qf.Plan != "" {
		v.Set("plan", qf.Plan)
	}
	if qf.Page > 0 {
		v.Set("page", strconv.Itoa(qf.Page))
	}
	if qf.PageSize > 0 {
		v.Set("page_size", strconv.Itoa(qf.PageSize))
	}
	return v
}
