package cache

import "net/url"

// Key addresses one cached query result: a resource name plus the
// canonical encoding of its filter parameters. url.Values.Encode sorts
// by key, so structurally equal filters always produce the same Key
// and hit the same cache entry.
type Key struct {
	Resource string
	Params   string
}

func NewKey(resource string, params url.Values) Key {
	k := Key{Resource: resource}
	if params != nil {
		k.Params = params.Encode()
	}
	return k
}

// DetailKey addresses the single-object variant of a resource.
func DetailKey(resource, id string) Key {
	return NewKey(resource, url.Values{"id": []string{id}})
}

func (k Key) String() string {
	if k.Params == "" {
		return k.Resource
	}
	return k.Resource + "?" + k.Params
}

// Cache resource names. Mutations invalidate by resource name, which
// covers both list keys and detail keys of that resource.
const (
	ResSchools              = "schools"
	ResSubscriptions        = "subscriptions"
	ResExpiredSubscriptions = "expired-subscriptions"
	ResUsers                = "users"
	ResSubjects             = "subjects"
	ResSections             = "sections"
	ResEnrollments          = "enrollments"
	ResMyEnrollments        = "my-enrollments"
	ResAssignments          = "assignments"
	ResMyAssignments        = "my-assignments"
	ResSubmissions          = "submissions"
	ResGradeSummaries       = "assignment-grade-summary"
	ResSectionGradebook     = "section-gradebook"
	ResStudentGrades        = "student-grades"
	ResMyGrades             = "my-grades"
	ResSystemHealth         = "system-health"
	ResSchoolOverview       = "school-overview"
)
