package report

import "time"

// SystemHealth is the super-admin dashboard's most volatile read-model;
// it is polled on the shortest interval.
type SystemHealth struct {
	Status       string    `json:"status"`
	APILatencyMS float64   `json:"api_latency_ms"`
	ActiveUsers  int       `json:"active_users"`
	GeneratedAt  time.Time `json:"generated_at"`
}

// SchoolOverview aggregates one school's headline numbers for the admin
// dashboard.
type SchoolOverview struct {
	SchoolID          string    `json:"school_id"`
	Students          int       `json:"students"`
	Professors        int       `json:"professors"`
	Sections          int       `json:"sections"`
	ActiveEnrollments int       `json:"active_enrollments"`
	GeneratedAt       time.Time `json:"generated_at"`
}
