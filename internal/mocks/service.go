package mocks

import (
	"context"

	"github.com/cmlabs-hris/hr-portal-backend/internal/domain/attendance"
	"github.com/cmlabs-hris/hr-portal-backend/internal/domain/employee"
	"github.com/cmlabs-hris/hr-portal-backend/internal/domain/leave"
	"github.com/cmlabs-hris/hr-portal-backend/internal/domain/loan"
	"github.com/cmlabs-hris/hr-portal-backend/internal/domain/report"
	"github.com/stretchr/testify/mock"
)

type AttendanceService struct {
	mock.Mock
}

func (m *AttendanceService) MarkAttendance(ctx context.Context, req attendance.MarkAttendanceRequest) (attendance.AttendanceResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(attendance.AttendanceResponse), args.Error(1)
}

func (m *AttendanceService) ListAttendance(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.EnrichedAttendanceResponse, error) {
	args := m.Called(ctx, filter)
	rows, _ := args.Get(0).([]attendance.EnrichedAttendanceResponse)
	return rows, args.Error(1)
}

type LeaveService struct {
	mock.Mock
}

func (m *LeaveService) CreateLeaveRequest(ctx context.Context, req leave.CreateLeaveRequestRequest) (leave.LeaveRequestResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(leave.LeaveRequestResponse), args.Error(1)
}

func (m *LeaveService) GetLeaveRequest(ctx context.Context, id string) (leave.LeaveRequestResponse, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(leave.LeaveRequestResponse), args.Error(1)
}

func (m *LeaveService) ListLeaveRequests(ctx context.Context, filter leave.LeaveRequestFilter) ([]leave.LeaveRequestResponse, error) {
	args := m.Called(ctx, filter)
	rows, _ := args.Get(0).([]leave.LeaveRequestResponse)
	return rows, args.Error(1)
}

func (m *LeaveService) ApproveLeaveRequest(ctx context.Context, id string) (leave.LeaveRequestResponse, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(leave.LeaveRequestResponse), args.Error(1)
}

func (m *LeaveService) RejectLeaveRequest(ctx context.Context, req leave.RejectLeaveRequestRequest) (leave.LeaveRequestResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(leave.LeaveRequestResponse), args.Error(1)
}

type LoanService struct {
	mock.Mock
}

func (m *LoanService) CreateLoanRequest(ctx context.Context, req loan.CreateLoanRequestRequest) (loan.LoanRequestResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(loan.LoanRequestResponse), args.Error(1)
}

func (m *LoanService) GetLoanRequest(ctx context.Context, id string) (loan.LoanRequestResponse, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(loan.LoanRequestResponse), args.Error(1)
}

func (m *LoanService) ListLoanRequests(ctx context.Context, filter loan.LoanRequestFilter) ([]loan.LoanRequestResponse, error) {
	args := m.Called(ctx, filter)
	rows, _ := args.Get(0).([]loan.LoanRequestResponse)
	return rows, args.Error(1)
}

func (m *LoanService) ApproveLoanRequest(ctx context.Context, id string) (loan.LoanRequestResponse, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(loan.LoanRequestResponse), args.Error(1)
}

func (m *LoanService) RejectLoanRequest(ctx context.Context, req loan.RejectLoanRequestRequest) (loan.LoanRequestResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(loan.LoanRequestResponse), args.Error(1)
}

func (m *LoanService) CompleteLoanRequest(ctx context.Context, id string) (loan.LoanRequestResponse, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(loan.LoanRequestResponse), args.Error(1)
}

type EmployeeService struct {
	mock.Mock
}

func (m *EmployeeService) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(employee.EmployeeResponse), args.Error(1)
}

func (m *EmployeeService) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(employee.EmployeeResponse), args.Error(1)
}

func (m *EmployeeService) GetEmployeeByEmail(ctx context.Context, email string) (employee.EmployeeResponse, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(employee.EmployeeResponse), args.Error(1)
}

func (m *EmployeeService) ListEmployees(ctx context.Context, filter employee.EmployeeFilter) ([]employee.EmployeeResponse, error) {
	args := m.Called(ctx, filter)
	rows, _ := args.Get(0).([]employee.EmployeeResponse)
	return rows, args.Error(1)
}

type ReportService struct {
	mock.Mock
}

func (m *ReportService) AttendanceTrend(ctx context.Context, req report.AttendanceReportRequest) ([]report.AttendanceDaySummary, error) {
	args := m.Called(ctx, req)
	rows, _ := args.Get(0).([]report.AttendanceDaySummary)
	return rows, args.Error(1)
}

func (m *ReportService) DepartmentStats(ctx context.Context) ([]report.DepartmentStat, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]report.DepartmentStat)
	return rows, args.Error(1)
}

func (m *ReportService) LeaveStats(ctx context.Context, req report.PeriodReportRequest) (report.LeaveReport, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(report.LeaveReport), args.Error(1)
}

func (m *ReportService) LoanStats(ctx context.Context, req report.PeriodReportRequest) (report.LoanReport, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(report.LoanReport), args.Error(1)
}

func (m *ReportService) EmployeeReport(ctx context.Context, req report.EmployeeReportRequest) (report.EmployeeReport, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(report.EmployeeReport), args.Error(1)
}
