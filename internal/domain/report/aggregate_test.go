package report

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/hr-portal-backend/internal/domain/attendance"
	"github.com/cmlabs-hris/hr-portal-backend/internal/domain/employee"
	"github.com/cmlabs-hris/hr-portal-backend/internal/domain/leave"
	"github.com/cmlabs-hris/hr-portal-backend/internal/domain/loan"
	"github.com/cmlabs-hris/hr-portal-backend/internal/pkg/calendar"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	empA = "0190f5a4-0000-7000-8000-00000000000a"
	empB = "0190f5a4-0000-7000-8000-00000000000b"
	empC = "0190f5a4-0000-7000-8000-00000000000c"
)

func day(s string) calendar.Date { return calendar.MustParse(s) }

func strPtr(s string) *string { return &s }

func mark(emp, date string, status attendance.Status) attendance.Record {
	return attendance.Record{ID: emp + date, EmployeeID: emp, Date: day(date), Status: status}
}

func TestAttendanceTrend(t *testing.T) {
	today := day("2024-03-10")

	t.Run("pads missing days and orders oldest first", func(t *testing.T) {
		rows := []attendance.Record{
			mark(empA, "2024-03-10", attendance.StatusPresent),
			mark(empB, "2024-03-10", attendance.StatusAbsent),
			mark(empA, "2024-03-08", attendance.StatusLeave),
			mark(empA, "2024-02-01", attendance.StatusPresent), // outside
		}

		trend := AttendanceTrend(rows, 7, today)
		require.Len(t, trend, 7)

		assert.Equal(t, day("2024-03-04"), trend[0].Date)
		assert.Equal(t, day("2024-03-10"), trend[6].Date)
		for i := 1; i < len(trend); i++ {
			assert.True(t, trend[i-1].Date.Before(trend[i].Date))
		}

		assert.Equal(t, AttendanceDaySummary{Date: day("2024-03-04")}, trend[0])
		assert.Equal(t, 1, trend[4].Leave)
		assert.Equal(t, AttendanceDaySummary{Date: today, Present: 1, Absent: 1}, trend[6])
	})

	t.Run("empty input still yields every day", func(t *testing.T) {
		for _, days := range []int{1, 7, 30, 366} {
			trend := AttendanceTrend(nil, days, today)
			require.Len(t, trend, days)
			for _, d := range trend {
				assert.Zero(t, d.Present+d.Absent+d.Leave)
			}
		}
	})

	t.Run("crosses month and leap day", func(t *testing.T) {
		trend := AttendanceTrend(nil, 3, day("2024-03-01"))
		require.Len(t, trend, 3)
		assert.Equal(t, day("2024-02-28"), trend[0].Date)
		assert.Equal(t, day("2024-02-29"), trend[1].Date)
	})

	t.Run("non-positive days", func(t *testing.T) {
		assert.Empty(t, AttendanceTrend(nil, 0, today))
		assert.NotNil(t, AttendanceTrend(nil, -1, today))
	})
}

func TestAttendanceRate(t *testing.T) {
	cases := []struct {
		name   string
		totals AttendanceTotals
		want   int
	}{
		{"empty", AttendanceTotals{}, 0},
		{"all present", AttendanceTotals{Present: 5, Total: 5}, 100},
		{"leave counts as attended", AttendanceTotals{Present: 1, Leave: 1, Total: 2}, 100},
		{"half", AttendanceTotals{Present: 1, Absent: 1, Total: 2}, 50},
		{"two thirds", AttendanceTotals{Present: 2, Absent: 1, Total: 3}, 67},
		{"one third", AttendanceTotals{Present: 1, Absent: 2, Total: 3}, 33},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, AttendanceRate(tc.totals))
		})
	}
}

func TestDepartmentStats(t *testing.T) {
	employees := []employee.Employee{
		{ID: empA, Department: strPtr("Engineering")},
		{ID: empB, Department: strPtr("Engineering")},
		{ID: empC},
		{ID: "0190f5a4-0000-7000-8000-00000000000d", Department: strPtr("  ")},
	}
	today := []attendance.Record{
		mark(empA, "2024-03-10", attendance.StatusPresent),
		mark(empC, "2024-03-10", attendance.StatusLeave),
		mark("0190f5a4-0000-7000-8000-0000000000ff", "2024-03-10", attendance.StatusPresent), // not an employee
	}

	stats := DepartmentStats(employees, today)
	require.Len(t, stats, 2)

	assert.Equal(t, DepartmentStat{Department: "Engineering", Total: 2, Present: 1, Absent: 1}, stats[0])
	assert.Equal(t, DepartmentStat{Department: UnassignedDepartment, Total: 2, Leave: 1, Absent: 1}, stats[1])

	total := 0
	for _, s := range stats {
		total += s.Total
		assert.Equal(t, s.Total, s.Present+s.Absent+s.Leave)
	}
	assert.Equal(t, len(employees), total)
}

func TestDepartmentStats_Empty(t *testing.T) {
	stats := DepartmentStats(nil, nil)
	assert.NotNil(t, stats)
	assert.Empty(t, stats)
}

func TestLeaveStats(t *testing.T) {
	today := day("2024-06-15")
	rows := []leave.Request{
		{ID: "1", Type: strPtr("annual"), Status: leave.StatusApproved, AppliedDate: day("2024-06-01")},
		{ID: "2", Type: strPtr("annual"), Status: leave.StatusPending, AppliedDate: day("2024-05-01")},
		{ID: "3", Type: strPtr("sick"), Status: leave.StatusRejected, AppliedDate: day("2023-12-15")}, // window start, inclusive
		{ID: "4", Status: leave.StatusApproved, AppliedDate: day("2024-06-15")},
		{ID: "5", Type: strPtr("sick"), Status: leave.StatusApproved, AppliedDate: day("2023-12-14")}, // outside
		{ID: "6", Type: strPtr("sick"), Status: leave.StatusApproved},                                 // no applied date
	}

	stats := LeaveStats(rows, 6, today)

	assert.Equal(t, LeaveSummary{Total: 4, Approved: 2, Pending: 1, Rejected: 1}, stats.Summary)
	assert.Equal(t, []LeaveTypeStat{
		{Type: OtherType, Count: 1},
		{Type: "annual", Count: 2},
		{Type: "sick", Count: 1},
	}, stats.ByType)
}

func TestLeaveStats_Empty(t *testing.T) {
	stats := LeaveStats(nil, 6, day("2024-06-15"))
	assert.Equal(t, LeaveSummary{}, stats.Summary)
	assert.NotNil(t, stats.ByType)
	assert.Empty(t, stats.ByType)
}

func loanRow(id string, typ *string, amount string, status loan.Status, applied string) loan.Request {
	return loan.Request{
		ID:          id,
		EmployeeID:  empA,
		Type:        typ,
		Amount:      decimal.RequireFromString(amount),
		Status:      status,
		AppliedDate: day(applied),
	}
}

func TestLoanStats(t *testing.T) {
	today := day("2024-06-15")
	rows := []loan.Request{
		loanRow("1", strPtr("personal"), "1000.50", loan.StatusApproved, "2024-06-01"),
		loanRow("2", strPtr("personal"), "2000", loan.StatusCompleted, "2024-05-01"),
		loanRow("3", strPtr("emergency"), "300", loan.StatusPending, "2024-04-01"),
		loanRow("4", nil, "400", loan.StatusRejected, "2024-03-01"),
		loanRow("5", strPtr("emergency"), "250.25", loan.StatusApproved, "2024-02-01"),
		loanRow("6", strPtr("personal"), "9999", loan.StatusApproved, "2023-01-01"), // outside
	}

	stats := LoanStats(rows, 6, today)

	assert.Equal(t, LoanSummary{
		TotalLoans:        5,
		ApprovedLoans:     2,
		PendingLoans:      1,
		RejectedLoans:     1,
		CompletedLoans:    1,
		TotalAmount:       3950.75,
		ApprovedAmount:    3250.75,
		OutstandingAmount: 1250.75,
	}, stats.Summary)

	assert.Equal(t, []LoanTypeStat{
		{Type: OtherType, Count: 1, TotalAmount: 400},
		{Type: "emergency", Count: 2, TotalAmount: 550.25},
		{Type: "personal", Count: 2, TotalAmount: 3000.5},
	}, stats.ByType)
}

func TestLoanStats_OutstandingIgnoresNonApproved(t *testing.T) {
	today := day("2024-06-15")
	base := []loan.Request{
		loanRow("1", nil, "500", loan.StatusApproved, "2024-06-01"),
		loanRow("2", nil, "700", loan.StatusApproved, "2024-06-02"),
	}
	want := LoanStats(base, 6, today).Summary.OutstandingAmount
	assert.Equal(t, 1200.0, want)

	for _, status := range []loan.Status{loan.StatusPending, loan.StatusRejected, loan.StatusCompleted} {
		rows := append(append([]loan.Request{}, base...), loanRow("x", nil, "12345", status, "2024-06-03"))
		assert.Equal(t, want, LoanStats(rows, 6, today).Summary.OutstandingAmount, status)
	}
}

func TestLoanStats_Empty(t *testing.T) {
	stats := LoanStats(nil, 6, day("2024-06-15"))
	assert.Equal(t, LoanSummary{}, stats.Summary)
	assert.NotNil(t, stats.ByType)
}

func TestBuildEmployeeReport(t *testing.T) {
	approvedAt := time.Date(2023, 12, 20, 9, 0, 0, 0, time.UTC)
	vacation := leave.Request{
		ID:          "leave-1",
		EmployeeID:  empA,
		Type:        strPtr("annual"),
		StartDate:   day("2024-01-02"),
		EndDate:     day("2024-01-03"),
		Status:      leave.StatusApproved,
		AppliedDate: day("2023-12-18"),
		ApprovedAt:  &approvedAt,
	}

	report := BuildEmployeeReport(EmployeeReportInput{
		EmployeeID: empA,
		Days:       2,
		Months:     6,
		Today:      day("2024-01-02"),
		Attendance: []attendance.Record{
			mark(empA, "2024-01-01", attendance.StatusPresent),
			mark(empA, "2024-01-02", attendance.StatusAbsent),
			mark(empB, "2024-01-02", attendance.StatusPresent),
		},
		ApprovedLeave: []leave.Request{vacation},
		LeaveRequests: []leave.Request{vacation},
		LoanRequests: []loan.Request{
			loanRow("loan-1", nil, "1000", loan.StatusApproved, "2023-12-01"),
		},
	})

	require.Len(t, report.Attendance, 2)
	// newest first
	assert.Equal(t, day("2024-01-02"), report.Attendance[0].Date)
	assert.True(t, report.Attendance[0].IsOnLeave)
	require.NotNil(t, report.Attendance[0].LeaveDetails)
	assert.Equal(t, "leave-1", report.Attendance[0].LeaveDetails.ID)
	assert.Equal(t, "absent", report.Attendance[0].Status)
	assert.False(t, report.Attendance[1].IsOnLeave)
	assert.Nil(t, report.Attendance[1].LeaveDetails)

	assert.Equal(t, AttendanceTotals{Present: 1, Leave: 1, Total: 2}, report.AttendanceSummary)
	assert.Equal(t, 100, report.AttendanceRate)
	require.Len(t, report.AttendanceTrend, 2)
	assert.Equal(t, AttendanceDaySummary{Date: day("2024-01-02"), Leave: 1}, report.AttendanceTrend[1])

	assert.Equal(t, 1, report.LeaveStats.Summary.Approved)
	assert.Equal(t, 1000.0, report.LoanStats.Summary.OutstandingAmount)
}

func TestBuildEmployeeReport_NoData(t *testing.T) {
	report := BuildEmployeeReport(EmployeeReportInput{
		EmployeeID: empA,
		Days:       7,
		Months:     6,
		Today:      day("2024-01-07"),
	})

	assert.Len(t, report.AttendanceTrend, 7)
	assert.Equal(t, 0, report.AttendanceRate)
	assert.NotNil(t, report.Attendance)
	assert.Empty(t, report.Attendance)
	assert.Equal(t, LeaveSummary{}, report.LeaveStats.Summary)
	assert.Equal(t, LoanSummary{}, report.LoanStats.Summary)
}
