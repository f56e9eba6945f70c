package section

import "time"

// Derived section statuses. Never persisted: "now" changes continuously,
// so status is re-derived from the dates on every read.
const (
	StatusUpcoming  = "upcoming"
	StatusActive    = "active"
	StatusCompleted = "completed"
)

// StatusAt derives the section status at `now`. Pure and monotonic:
// as now moves past StartDate then EndDate the status progresses
// upcoming -> active -> completed and never goes back.
func StatusAt(s Section, now time.Time) string {
	if now.Before(s.StartDate) {
		return StatusUpcoming
	}
	if now.After(s.EndDate) {
		return StatusCompleted
	}
	return StatusActive
}
