package model

// Stats aggregates counters shown on the admin dashboard.
type Stats struct {
	TotalUsers   int64
	TotalMatti   int64
	TotalPoints  int64
	PendingMatti int64
}
