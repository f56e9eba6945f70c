package submission

// Statuses
const (
	StatusDraft     = "DRAFT"
	StatusSubmitted = "SUBMITTED"
	StatusGraded    = "GRADED"
	StatusReturned  = "RETURNED"
)

// transitions is the submission state machine:
// DRAFT -submit-> SUBMITTED -grade-> GRADED | RETURNED;
// RETURNED is re-editable and resubmittable. GRADED is terminal.
var transitions = map[string][]string{
	StatusDraft:     {StatusSubmitted},
	StatusSubmitted: {StatusGraded, StatusReturned},
	StatusReturned:  {StatusSubmitted},
}

// CanTransition reports whether the state machine allows from -> to.
func CanTransition(from, to string) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsEditable reports whether the submission's content may still be changed.
func IsEditable(status string) bool {
	return status == StatusDraft || status == StatusReturned
}
