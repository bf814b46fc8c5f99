package report

import "context"

// ReportService builds dashboard summaries. Every call recomputes from the
// store; nothing is cached.
type ReportService interface {
	// AttendanceTrend returns one entry per day of the window, oldest first.
	AttendanceTrend(ctx context.Context, req AttendanceReportRequest) ([]AttendanceDaySummary, error)

	// DepartmentStats groups active employees by department with today's
	// attendance.
	DepartmentStats(ctx context.Context) ([]DepartmentStat, error)

	LeaveStats(ctx context.Context, req PeriodReportRequest) (LeaveReport, error)
	LoanStats(ctx context.Context, req PeriodReportRequest) (LoanReport, error)

	// EmployeeReport bundles the reports above for a single employee.
	EmployeeReport(ctx context.Context, req EmployeeReportRequest) (EmployeeReport, error)
}
