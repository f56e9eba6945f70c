package assignment

import "time"

// Derived due statuses, from hours-until-due. Re-derived on every read,
// never stored.
const (
	DueStatusOverdue  = "overdue"
	DueStatusDueSoon  = "due-soon"
	DueStatusUpcoming = "upcoming"
	DueStatusFuture   = "future"
)

const (
	dueSoonWindow  = 24 * time.Hour
	upcomingWindow = 7 * 24 * time.Hour
)

// DueStatusAt derives the assignment's due status at `now`.
func DueStatusAt(a Assignment, now time.Time) string {
	until := a.DueDate.Sub(now)
	switch {
	case until < 0:
		return DueStatusOverdue
	case until <= dueSoonWindow:
		return DueStatusDueSoon
	case until <= upcomingWindow:
		return DueStatusUpcoming
	default:
		return DueStatusFuture
	}
}
