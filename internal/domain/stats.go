package domain

// DailyStats holds the dashboard counters for one calendar day.
//
// InsideNow is global, not day-scoped: a visitor who checked in yesterday
// and has not checked out is still counted.
type DailyStats struct {
	TotalToday      int64 `json:"total_today"`
	InsideNow       int64 `json:"inside_now"`
	CheckedOutToday int64 `json:"checked_out_today"`
}
