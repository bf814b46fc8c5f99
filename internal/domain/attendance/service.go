package attendance

import "context"

type AttendanceService interface {
	// MarkAttendance records or overwrites an employee's status for a day.
	MarkAttendance(ctx context.Context, req MarkAttendanceRequest) (AttendanceResponse, error)

	// ListAttendance returns matching records reconciled against approved
	// leave, newest first.
	ListAttendance(ctx context.Context, filter AttendanceFilter) ([]EnrichedAttendanceResponse, error)
}
