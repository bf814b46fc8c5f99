package attendance

import (
	"context"

	"github.com/cmlabs-hris/hr-portal-backend/internal/pkg/calendar"
)

type AttendanceRepository interface {
	// Upsert inserts the record or overwrites the status of the existing
	// record for the same (EmployeeID, Date) in a single statement.
	Upsert(ctx context.Context, rec Record) (Record, error)

	// List returns records matching filter, newest first.
	List(ctx context.Context, filter AttendanceFilter) ([]Record, error)

	// ListInRange returns records dated within rg, optionally for one employee.
	ListInRange(ctx context.Context, rg calendar.Range, employeeID *string) ([]Record, error)
}
