package leave

import (
	"time"

	"github.com/cmlabs-hris/hr-portal-backend/internal/pkg/calendar"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Request is an employee's leave request over an inclusive date range.
type Request struct {
	ID              string
	EmployeeID      string
	Type            *string
	StartDate       calendar.Date
	EndDate         calendar.Date
	Reason          string
	Status          Status
	AppliedDate     calendar.Date
	ApprovedAt      *time.Time
	RejectionReason *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (r Request) Range() calendar.Range {
	return calendar.Range{Start: r.StartDate, End: r.EndDate}
}

// Covers reports whether d falls inside the request's range. Status is not
// considered; callers filter on IsApproved.
func (r Request) Covers(d calendar.Date) bool {
	return r.Range().Contains(d)
}

// Overlaps implements start <= q.End AND end >= q.Start. A single-day query
// is the range [day, day].
func (r Request) Overlaps(q calendar.Range) bool {
	return r.Range().Overlaps(q)
}

func (r Request) IsApproved() bool { return r.Status == StatusApproved }
func (r Request) IsPending() bool  { return r.Status == StatusPending }
