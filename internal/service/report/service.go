package report

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hr-portal-backend/internal/domain/attendance"
	"github.com/cmlabs-hris/hr-portal-backend/internal/domain/employee"
	"github.com/cmlabs-hris/hr-portal-backend/internal/domain/leave"
	"github.com/cmlabs-hris/hr-portal-backend/internal/domain/loan"
	"github.com/cmlabs-hris/hr-portal-backend/internal/domain/report"
	"github.com/cmlabs-hris/hr-portal-backend/internal/pkg/calendar"
	"golang.org/x/sync/errgroup"
)

type ReportServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	leaveRepo      leave.LeaveRequestRepository
	loanRepo       loan.LoanRequestRepository
	loc            *time.Location
	now            func() time.Time
}

func NewReportService(
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	leaveRepo leave.LeaveRequestRepository,
	loanRepo loan.LoanRequestRepository,
	loc *time.Location,
) report.ReportService {
	return &ReportServiceImpl{
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		leaveRepo:      leaveRepo,
		loanRepo:       loanRepo,
		loc:            loc,
		now:            time.Now,
	}
}

func (s *ReportServiceImpl) today() calendar.Date {
	return calendar.Today(s.now(), s.loc)
}

// AttendanceTrend implements report.ReportService.
func (s *ReportServiceImpl) AttendanceTrend(ctx context.Context, req report.AttendanceReportRequest) ([]report.AttendanceDaySummary, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	today := s.today()
	rows, err := s.attendanceRepo.ListInRange(ctx, calendar.LastDays(today, req.Days), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch attendance: %w", err)
	}

	return report.AttendanceTrend(rows, req.Days, today), nil
}

// DepartmentStats implements report.ReportService.
func (s *ReportServiceImpl) DepartmentStats(ctx context.Context) ([]report.DepartmentStat, error) {
	today := s.today()
	active := string(employee.StatusActive)

	var (
		employees []employee.Employee
		rows      []attendance.Record
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		employees, err = s.employeeRepo.List(gCtx, employee.EmployeeFilter{Status: &active})
		if err != nil {
			return fmt.Errorf("failed to fetch employees: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		rows, err = s.attendanceRepo.ListInRange(gCtx, calendar.Day(today), nil)
		if err != nil {
			return fmt.Errorf("failed to fetch today's attendance: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return report.DepartmentStats(employees, rows), nil
}

// LeaveStats implements report.ReportService.
func (s *ReportServiceImpl) LeaveStats(ctx context.Context, req report.PeriodReportRequest) (report.LeaveReport, error) {
	if err := req.Validate(); err != nil {
		return report.LeaveReport{}, err
	}

	today := s.today()
	rows, err := s.leaveRepo.ListAppliedSince(ctx, report.MonthsWindow(req.Months, today).Start, nil)
	if err != nil {
		return report.LeaveReport{}, fmt.Errorf("failed to fetch leave requests: %w", err)
	}

	return report.LeaveStats(rows, req.Months, today), nil
}

// LoanStats implements report.ReportService.
func (s *ReportServiceImpl) LoanStats(ctx context.Context, req report.PeriodReportRequest) (report.LoanReport, error) {
	if err := req.Validate(); err != nil {
		return report.LoanReport{}, err
	}

	today := s.today()
	rows, err := s.loanRepo.ListAppliedSince(ctx, report.MonthsWindow(req.Months, today).Start, nil)
	if err != nil {
		return report.LoanReport{}, fmt.Errorf("failed to fetch loan requests: %w", err)
	}

	return report.LoanStats(rows, req.Months, today), nil
}

// EmployeeReport implements report.ReportService. The five fetches are
// independent and run concurrently; the first failure cancels the rest.
func (s *ReportServiceImpl) EmployeeReport(ctx context.Context, req report.EmployeeReportRequest) (report.EmployeeReport, error) {
	if err := req.Validate(); err != nil {
		return report.EmployeeReport{}, err
	}

	today := s.today()
	window := calendar.LastDays(today, req.Days)
	since := report.MonthsWindow(req.Months, today).Start
	employeeID := req.EmployeeID

	in := report.EmployeeReportInput{
		EmployeeID: employeeID,
		Days:       req.Days,
		Months:     req.Months,
		Today:      today,
	}

	g, gCtx := errgroup.WithContext(ctx)

	// 1. Employee must exist
	g.Go(func() error {
		if _, err := s.employeeRepo.GetByID(gCtx, employeeID); err != nil {
			return fmt.Errorf("failed to get employee: %w", err)
		}
		return nil
	})

	// 2. Attendance in the trend window
	g.Go(func() error {
		rows, err := s.attendanceRepo.ListInRange(gCtx, window, &employeeID)
		if err != nil {
			return fmt.Errorf("failed to fetch attendance: %w", err)
		}
		in.Attendance = rows
		return nil
	})

	// 3. Approved leave overlapping the trend window
	g.Go(func() error {
		rows, err := s.leaveRepo.ListApprovedOverlapping(gCtx, []string{employeeID}, window)
		if err != nil {
			return fmt.Errorf("failed to fetch approved leave: %w", err)
		}
		in.ApprovedLeave = rows
		return nil
	})

	// 4. Leave requests applied in the months window
	g.Go(func() error {
		rows, err := s.leaveRepo.ListAppliedSince(gCtx, since, &employeeID)
		if err != nil {
			return fmt.Errorf("failed to fetch leave requests: %w", err)
		}
		in.LeaveRequests = rows
		return nil
	})

	// 5. Loan requests applied in the months window
	g.Go(func() error {
		rows, err := s.loanRepo.ListAppliedSince(gCtx, since, &employeeID)
		if err != nil {
			return fmt.Errorf("failed to fetch loan requests: %w", err)
		}
		in.LoanRequests = rows
		return nil
	})

	if err := g.Wait(); err != nil {
		return report.EmployeeReport{}, err
	}

	return report.BuildEmployeeReport(in), nil
}
