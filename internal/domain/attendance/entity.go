package attendance

import (
	"time"

	"github.com/cmlabs-hris/hr-portal-backend/internal/domain/leave"
	"github.com/cmlabs-hris/hr-portal-backend/internal/pkg/calendar"
)

type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusLeave   Status = "leave"
)

var validStatuses = []string{string(StatusPresent), string(StatusAbsent), string(StatusLeave)}

// Record is one attendance mark. There is at most one per (EmployeeID, Date);
// the store enforces it with a unique key and writes go through an upsert.
type Record struct {
	ID         string
	EmployeeID string
	Date       calendar.Date
	Status     Status
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// EnrichedRecord is a Record annotated with the approved leave covering its
// date, if any.
type EnrichedRecord struct {
	Record
	IsOnLeave    bool
	LeaveDetails *leave.Request
}

// EffectiveStatus is the status reports should count: approved leave
// overrides whatever was marked for the day.
func (e EnrichedRecord) EffectiveStatus() Status {
	if e.IsOnLeave {
		return StatusLeave
	}
	return e.Status
}
