package report

import (
	"cmp"
	"math"
	"slices"
	"strings"

	"github.com/cmlabs-hris/hr-portal-backend/internal/domain/attendance"
	"github.com/cmlabs-hris/hr-portal-backend/internal/domain/employee"
	"github.com/cmlabs-hris/hr-portal-backend/internal/domain/leave"
	"github.com/cmlabs-hris/hr-portal-backend/internal/domain/loan"
	"github.com/cmlabs-hris/hr-portal-backend/internal/pkg/calendar"
	"github.com/shopspring/decimal"
)

const (
	UnassignedDepartment = "Not assigned"
	OtherType            = "Other"
)

// AttendanceTrend counts rows per status for each of the last days calendar
// days ending on today. It always returns exactly days entries, oldest first;
// a day without rows has all-zero counts. Rows outside the window are
// ignored.
func AttendanceTrend(rows []attendance.Record, days int, today calendar.Date) []AttendanceDaySummary {
	if days <= 0 || today.IsZero() {
		return []AttendanceDaySummary{}
	}

	window := calendar.LastDays(today, days)
	trend := make([]AttendanceDaySummary, 0, days)
	index := make(map[calendar.Date]int, days)
	for i, d := range window.Dates() {
		index[d] = i
		trend = append(trend, AttendanceDaySummary{Date: d})
	}

	for _, row := range rows {
		i, ok := index[row.Date]
		if !ok {
			continue
		}
		switch row.Status {
		case attendance.StatusPresent:
			trend[i].Present++
		case attendance.StatusAbsent:
			trend[i].Absent++
		case attendance.StatusLeave:
			trend[i].Leave++
		}
	}
	return trend
}

// Totals sums a trend.
func Totals(trend []AttendanceDaySummary) AttendanceTotals {
	var t AttendanceTotals
	for _, day := range trend {
		t.Present += day.Present
		t.Absent += day.Absent
		t.Leave += day.Leave
	}
	t.Total = t.Present + t.Absent + t.Leave
	return t
}

// AttendanceRate is round((present + leave) / total * 100). Leave days count
// as attended. It is 0 when there is nothing to count.
func AttendanceRate(t AttendanceTotals) int {
	if t.Total <= 0 {
		return 0
	}
	return int(math.Round(float64(t.Present+t.Leave) / float64(t.Total) * 100))
}

// DepartmentStats groups employees by department and tallies today's
// attendance for each. An employee without a row in attendanceToday counts
// as absent. Every employee is counted exactly once, so the totals add up to
// len(employees). Departments are sorted by name.
func DepartmentStats(employees []employee.Employee, attendanceToday []attendance.Record) []DepartmentStat {
	statusByEmployee := make(map[string]attendance.Status, len(attendanceToday))
	for _, row := range attendanceToday {
		statusByEmployee[row.EmployeeID] = row.Status
	}

	byDepartment := make(map[string]*DepartmentStat)
	for _, e := range employees {
		name := UnassignedDepartment
		if e.Department != nil && strings.TrimSpace(*e.Department) != "" {
			name = strings.TrimSpace(*e.Department)
		}

		stat, ok := byDepartment[name]
		if !ok {
			stat = &DepartmentStat{Department: name}
			byDepartment[name] = stat
		}

		stat.Total++
		switch statusByEmployee[e.ID] {
		case attendance.StatusPresent:
			stat.Present++
		case attendance.StatusLeave:
			stat.Leave++
		default:
			stat.Absent++
		}
	}

	stats := make([]DepartmentStat, 0, len(byDepartment))
	for _, stat := range byDepartment {
		stats = append(stats, *stat)
	}
	slices.SortFunc(stats, func(a, b DepartmentStat) int {
		return cmp.Compare(a.Department, b.Department)
	})
	return stats
}

// MonthsWindow is the inclusive range [today - months, today]. A negative
// months is treated as zero.
func MonthsWindow(months int, today calendar.Date) calendar.Range {
	if months < 0 {
		months = 0
	}
	return calendar.Range{Start: today.AddMonths(-months), End: today}
}

// LeaveStats summarises leave requests applied within the last months
// months. Requests without a type are grouped under "Other".
func LeaveStats(rows []leave.Request, months int, today calendar.Date) LeaveReport {
	window := MonthsWindow(months, today)

	stats := LeaveReport{ByType: []LeaveTypeStat{}}
	counts := make(map[string]int)
	for _, r := range rows {
		if !window.Contains(r.AppliedDate) {
			continue
		}

		counts[typeName(r.Type)]++
		stats.Summary.Total++
		switch r.Status {
		case leave.StatusApproved:
			stats.Summary.Approved++
		case leave.StatusPending:
			stats.Summary.Pending++
		case leave.StatusRejected:
			stats.Summary.Rejected++
		}
	}

	for t, n := range counts {
		stats.ByType = append(stats.ByType, LeaveTypeStat{Type: t, Count: n})
	}
	slices.SortFunc(stats.ByType, func(a, b LeaveTypeStat) int {
		return cmp.Compare(a.Type, b.Type)
	})
	return stats
}

// LoanStats summarises loan requests applied within the last months months.
// OutstandingAmount is the sum over loans in approved status only; pending,
// rejected and completed loans do not contribute to it.
func LoanStats(rows []loan.Request, months int, today calendar.Date) LoanReport {
	window := MonthsWindow(months, today)

	type typeTotal struct {
		count  int
		amount decimal.Decimal
	}
	byType := make(map[string]*typeTotal)

	var summary LoanSummary
	total, approved, outstanding := decimal.Zero, decimal.Zero, decimal.Zero
	for _, r := range rows {
		if !window.Contains(r.AppliedDate) {
			continue
		}

		name := typeName(r.Type)
		tt, ok := byType[name]
		if !ok {
			tt = &typeTotal{amount: decimal.Zero}
			byType[name] = tt
		}
		tt.count++
		tt.amount = tt.amount.Add(r.Amount)

		summary.TotalLoans++
		total = total.Add(r.Amount)
		switch r.Status {
		case loan.StatusApproved:
			summary.ApprovedLoans++
			approved = approved.Add(r.Amount)
			outstanding = outstanding.Add(r.Amount)
		case loan.StatusCompleted:
			summary.CompletedLoans++
			approved = approved.Add(r.Amount)
		case loan.StatusPending:
			summary.PendingLoans++
		case loan.StatusRejected:
			summary.RejectedLoans++
		}
	}

	summary.TotalAmount = total.InexactFloat64()
	summary.ApprovedAmount = approved.InexactFloat64()
	summary.OutstandingAmount = outstanding.InexactFloat64()

	stats := LoanReport{ByType: make([]LoanTypeStat, 0, len(byType)), Summary: summary}
	for name, tt := range byType {
		stats.ByType = append(stats.ByType, LoanTypeStat{
			Type:        name,
			Count:       tt.count,
			TotalAmount: tt.amount.InexactFloat64(),
		})
	}
	slices.SortFunc(stats.ByType, func(a, b LoanTypeStat) int {
		return cmp.Compare(a.Type, b.Type)
	})
	return stats
}

// EmployeeReportInput carries the rows fetched for one employee.
type EmployeeReportInput struct {
	EmployeeID string
	Days       int
	Months     int
	Today      calendar.Date

	// Attendance holds the employee's rows for the trend window.
	Attendance []attendance.Record
	// ApprovedLeave holds approved requests overlapping the trend window.
	ApprovedLeave []leave.Request
	// LeaveRequests and LoanRequests hold everything applied within the
	// months window, any status.
	LeaveRequests []leave.Request
	LoanRequests  []loan.Request
}

// BuildEmployeeReport reconciles the employee's attendance against approved
// leave before counting, so a day under approved leave counts as leave
// whatever was marked for it. Rows belonging to other employees are ignored.
func BuildEmployeeReport(in EmployeeReportInput) EmployeeReport {
	window := calendar.LastDays(in.Today, max(in.Days, 1))

	var rows []attendance.Record
	for _, r := range in.Attendance {
		if r.EmployeeID == in.EmployeeID && window.Contains(r.Date) {
			rows = append(rows, r)
		}
	}
	enriched := attendance.Reconcile(rows, ownedLeave(in.ApprovedLeave, in.EmployeeID))

	effective := make([]attendance.Record, 0, len(enriched))
	for _, e := range enriched {
		rec := e.Record
		rec.Status = e.EffectiveStatus()
		effective = append(effective, rec)
	}

	trend := AttendanceTrend(effective, in.Days, in.Today)
	totals := Totals(trend)

	attendance.SortByDateDesc(enriched)
	rowsOut := make([]attendance.EnrichedAttendanceResponse, 0, len(enriched))
	for _, e := range enriched {
		rowsOut = append(rowsOut, attendance.ToEnrichedResponse(e))
	}

	var loans []loan.Request
	for _, l := range in.LoanRequests {
		if l.EmployeeID == in.EmployeeID {
			loans = append(loans, l)
		}
	}

	return EmployeeReport{
		EmployeeID:        in.EmployeeID,
		Days:              in.Days,
		Months:            in.Months,
		AttendanceTrend:   trend,
		AttendanceSummary: totals,
		AttendanceRate:    AttendanceRate(totals),
		Attendance:        rowsOut,
		LeaveStats:        LeaveStats(ownedLeave(in.LeaveRequests, in.EmployeeID), in.Months, in.Today),
		LoanStats:         LoanStats(loans, in.Months, in.Today),
	}
}

func ownedLeave(rows []leave.Request, employeeID string) []leave.Request {
	var out []leave.Request
	for _, r := range rows {
		if r.EmployeeID == employeeID {
			out = append(out, r)
		}
	}
	return out
}

func typeName(t *string) string {
	if t == nil || strings.TrimSpace(*t) == "" {
		return OtherType
	}
	return strings.TrimSpace(*t)
}
