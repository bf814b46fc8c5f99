package report

import (
	"github.com/cmlabs-hris/hr-portal-backend/internal/domain/attendance"
	"github.com/cmlabs-hris/hr-portal-backend/internal/pkg/calendar"
	"github.com/cmlabs-hris/hr-portal-backend/internal/pkg/validator"
)

const (
	DefaultTrendDays = 7
	MaxTrendDays     = 366

	DefaultMonths = 6
	MaxMonths     = 120
)

// ========================================
// REQUESTS
// ========================================

type AttendanceReportRequest struct {
	Days int `json:"days"`
}

func (r *AttendanceReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInRange(r.Days, 1, MaxTrendDays) {
		errs.Add("days", ErrInvalidDays.Error())
	}

	return errs.Err()
}

// PeriodReportRequest scopes leave and loan stats to requests applied in the
// last Months months.
type PeriodReportRequest struct {
	Months int `json:"months"`
}

func (r *PeriodReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInRange(r.Months, 1, MaxMonths) {
		errs.Add("months", ErrInvalidMonths.Error())
	}

	return errs.Err()
}

type EmployeeReportRequest struct {
	EmployeeID string `json:"employee_id"`
	Days       int    `json:"days"`
	Months     int    `json:"months"`
}

func (r *EmployeeReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs.Add("employee_id", "employee_id is required")
	} else if !validator.IsValidUUID(r.EmployeeID) {
		errs.Add("employee_id", "employee_id must be a valid UUID")
	}
	if !validator.IsInRange(r.Days, 1, MaxTrendDays) {
		errs.Add("days", ErrInvalidDays.Error())
	}
	if !validator.IsInRange(r.Months, 1, MaxMonths) {
		errs.Add("months", ErrInvalidMonths.Error())
	}

	return errs.Err()
}

// ========================================
// ATTENDANCE
// ========================================

type AttendanceDaySummary struct {
	Date    calendar.Date `json:"date"`
	Present int           `json:"present"`
	Absent  int           `json:"absent"`
	Leave   int           `json:"leave"`
}

// AttendanceTotals sums a trend over its whole window.
type AttendanceTotals struct {
	Present int `json:"present"`
	Absent  int `json:"absent"`
	Leave   int `json:"leave"`
	Total   int `json:"total"`
}

type DepartmentStat struct {
	Department string `json:"department"`
	Total      int    `json:"total"`
	Present    int    `json:"present"`
	Absent     int    `json:"absent"`
	Leave      int    `json:"leave"`
}

// ========================================
// LEAVE
// ========================================

type LeaveTypeStat struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

type LeaveSummary struct {
	Total    int `json:"total"`
	Approved int `json:"approved"`
	Pending  int `json:"pending"`
	Rejected int `json:"rejected"`
}

type LeaveReport struct {
	ByType  []LeaveTypeStat `json:"by_type"`
	Summary LeaveSummary    `json:"summary"`
}

// ========================================
// LOANS
// ========================================

type LoanTypeStat struct {
	Type        string  `json:"type"`
	Count       int     `json:"count"`
	TotalAmount float64 `json:"total_amount"`
}

type LoanSummary struct {
	TotalLoans     int `json:"total_loans"`
	ApprovedLoans  int `json:"approved_loans"`
	PendingLoans   int `json:"pending_loans"`
	RejectedLoans  int `json:"rejected_loans"`
	CompletedLoans int `json:"completed_loans"`

	TotalAmount float64 `json:"total_amount"`
	// ApprovedAmount covers every loan that was approved, including the
	// ones since completed.
	ApprovedAmount float64 `json:"approved_amount"`
	// OutstandingAmount sums loans currently in approved status only.
	OutstandingAmount float64 `json:"outstanding_amount"`
}

type LoanReport struct {
	ByType  []LoanTypeStat `json:"by_type"`
	Summary LoanSummary    `json:"summary"`
}

// ========================================
// PER-EMPLOYEE BUNDLE
// ========================================

type EmployeeReport struct {
	EmployeeID string `json:"employee_id"`
	Days       int    `json:"days"`
	Months     int    `json:"months"`

	AttendanceTrend   []AttendanceDaySummary                  `json:"attendance_trend"`
	AttendanceSummary AttendanceTotals                        `json:"attendance_summary"`
	AttendanceRate    int                                     `json:"attendance_rate"`
	Attendance        []attendance.EnrichedAttendanceResponse `json:"attendance"`
	LeaveStats        LeaveReport                             `json:"leave_stats"`
	LoanStats         LoanReport                              `json:"loan_stats"`
}
