package user

import (
	"net/url"
	"strconv"
	"time"

	"github.com/volatiletech/null/v8"

	"github.com/shulehub/shule/core"
)

// Roles
const (
	RoleSuperAdmin = "SUPERADMIN"
	RoleAdmin      = "ADMIN"
	RoleProfessor  = "PROFESSOR"
	RoleStudent    = "STUDENT"
)

var (
	AllRoles = []string{RoleSuperAdmin, RoleAdmin, RoleProfessor, RoleStudent}

	rolePriorities = map[string]int{
		RoleSuperAdmin: 40,
		RoleAdmin:      30,
		RoleProfessor:  20,
		RoleStudent:    10,
	}

	Roles = []Role{
		{Name: "Student", Value: RoleStudent},
		{Name: "Professor", Value: RoleProfessor},
		{Name: "Admin", Value: RoleAdmin},
		{Name: "Super Admin", Value: RoleSuperAdmin},
	}
)

func RolePriority(role string) int {
	return rolePriorities[role]
}

type Role struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type User struct {
	ID        string      `json:"id"`
	FirstName string      `json:"first_name"`
	LastName  string      `json:"last_name"`
	Email     string      `json:"email"`
	Role      string      `json:"role"`
	IsActive  bool        `json:"is_active"`
	SchoolID  null.String `json:"school_id,omitempty"`
	CreatedAt time.Time   `json:"created_at"` // UTC
	UpdatedAt time.Time   `json:"updated_at"` // UTC
	LastLogin null.Time   `json:"last_login,omitempty"`
}

func (u *User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

func (u *User) IsSuperAdmin() bool { return u.Role == RoleSuperAdmin }
func (u *User) IsAdmin() bool      { return u.Role == RoleAdmin || u.Role == RoleSuperAdmin }
func (u *User) IsProfessor() bool  { return u.Role == RoleProfessor }
func (u *User) IsStudent() bool    { return u.Role == RoleStudent }

// CanManage reports whether u outranks other. Role checks client-side
// are a UX convenience only; the server enforces authorization.
func (u *User) CanManage(other User) bool {
	return RolePriority(u.Role) > RolePriority(other.Role)
}

// NewUser contains information needed to create a new User.
type NewUser struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Role      string `json:"role" validate:"required,oneof=SUPERADMIN ADMIN PROFESSOR STUDENT"`
	SchoolID  string `json:"school_id,omitempty" validate:"omitempty,uuid4"`
}

func (nu *NewUser) Validate() error {
	nu.FirstName = core.CleanString(nu.FirstName)
	nu.LastName = core.CleanString(nu.LastName)
	nu.Email = core.CleanString(nu.Email, true /* lower */)
	return core.TranslateValidationErrors(core.Validate.Struct(nu))
}

// UpdateUser defines what information may be provided to modify an existing User.
type UpdateUser struct {
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Email     string `json:"email,omitempty" validate:"omitempty,email"`
	Role      string `json:"role,omitempty" validate:"omitempty,oneof=SUPERADMIN ADMIN PROFESSOR STUDENT"`
	IsActive  *bool  `json:"is_active,omitempty"`
}

func (uu *UpdateUser) Validate() error {
	uu.FirstName = core.CleanString(uu.FirstName)
	uu.LastName = core.CleanString(uu.LastName)
	uu.Email = core.CleanString(uu.Email, true /* lower */)
	return core.TranslateValidationErrors(core.Validate.Struct(uu))
}

type QueryFilter struct {
	Search   string
	Role     string
	SchoolID string
	IsActive *bool
	Page     int
	PageSize int
}

func (qf *QueryFilter) Clean() {
	qf.Search = core.CleanString(qf.Search)
}

// Values is the single serialization of the filter: it feeds both the
// request query string and the cache key, so structural filter equality
// and cache-key equality coincide.
func (qf QueryFilter) Values() url.Values {
	v := make(url.Values)
	if qf.Search != "" {
		v.Set("search", qf.Search)
	}
	if qf.Role != "" {
		v.Set("role", qf.Role)
	}
	if qf.SchoolID != "" {
		v.Set("school_id", qf.SchoolID)
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
