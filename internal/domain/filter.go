package domain

import "time"

// VisitStatus selects which visits a listing query returns.
type VisitStatus string

const (
	// StatusAll applies no check-out filter.
	StatusAll VisitStatus = "all"
	// StatusInside matches visits with no check-out stamp.
	StatusInside VisitStatus = "inside"
	// StatusCheckedOut matches visits that have been checked out.
	StatusCheckedOut VisitStatus = "checkedout"
)

// ParseVisitStatus maps a raw query-string value to a VisitStatus.
// Anything other than "inside" or "checkedout" means no filter.
func ParseVisitStatus(s string) VisitStatus {
	switch VisitStatus(s) {
	case StatusInside:
		return StatusInside
	case StatusCheckedOut:
		return StatusCheckedOut
	default:
		return StatusAll
	}
}

// VisitFilter carries listing criteria from the HTTP layer to the repo layer.
//
// From is an inclusive lower bound on check-in. To is an exclusive upper
// bound: NewVisitFilter stores the start of the day *after* the requested
// to-date, which includes the entire requested day down to its last instant.
type VisitFilter struct {
	Status VisitStatus
	From   *time.Time
	To     *time.Time
}

// NewVisitFilter builds a VisitFilter from raw query-string values.
// from and to are calendar dates in "2006-01-02" form, interpreted in loc.
// Malformed date strings are silently dropped; the bound is simply not
// applied.
func NewVisitFilter(status, from, to string, loc *time.Location) VisitFilter {
	f := VisitFilter{Status: ParseVisitStatus(status)}

	if d, err := time.ParseInLocation("2006-01-02", from, loc); err == nil {
		f.From = &d
	}
	if d, err := time.ParseInLocation("2006-01-02", to, loc); err == nil {
		end := d.AddDate(0, 0, 1)
		f.To = &end
	}
	return f
}

// DayRange returns the [start, end) bounds of the calendar day containing t,
// in t's location. end is the start of the following day.
func DayRange(t time.Time) (start, end time.Time) {
	y, m, d := t.Date()
	start = time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1)
}
