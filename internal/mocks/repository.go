// Package mocks holds testify mocks of the repository and service
// interfaces for unit tests.
package mocks

import (
	"context"

	"github.com/cmlabs-hris/hr-portal-backend/internal/domain/attendance"
	"github.com/cmlabs-hris/hr-portal-backend/internal/domain/employee"
	"github.com/cmlabs-hris/hr-portal-backend/internal/domain/leave"
	"github.com/cmlabs-hris/hr-portal-backend/internal/domain/loan"
	"github.com/cmlabs-hris/hr-portal-backend/internal/pkg/calendar"
	"github.com/stretchr/testify/mock"
)

// Transactor runs fn directly on the caller's context.
type Transactor struct {
	Calls int
}

func (t *Transactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	t.Calls++
	return fn(ctx)
}

type AttendanceRepository struct {
	mock.Mock
}

func (m *AttendanceRepository) Upsert(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	args := m.Called(ctx, rec)
	return args.Get(0).(attendance.Record), args.Error(1)
}

func (m *AttendanceRepository) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Record, error) {
	args := m.Called(ctx, filter)
	rows, _ := args.Get(0).([]attendance.Record)
	return rows, args.Error(1)
}

func (m *AttendanceRepository) ListInRange(ctx context.Context, rg calendar.Range, employeeID *string) ([]attendance.Record, error) {
	args := m.Called(ctx, rg, employeeID)
	rows, _ := args.Get(0).([]attendance.Record)
	return rows, args.Error(1)
}

type LeaveRequestRepository struct {
	mock.Mock
}

func (m *LeaveRequestRepository) Create(ctx context.Context, req leave.Request) (leave.Request, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(leave.Request), args.Error(1)
}

func (m *LeaveRequestRepository) GetByID(ctx context.Context, id string) (leave.Request, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(leave.Request), args.Error(1)
}

func (m *LeaveRequestRepository) GetByIDForUpdate(ctx context.Context, id string) (leave.Request, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(leave.Request), args.Error(1)
}

func (m *LeaveRequestRepository) List(ctx context.Context, filter leave.LeaveRequestFilter) ([]leave.Request, error) {
	args := m.Called(ctx, filter)
	rows, _ := args.Get(0).([]leave.Request)
	return rows, args.Error(1)
}

func (m *LeaveRequestRepository) ListApprovedOverlapping(ctx context.Context, employeeIDs []string, rg calendar.Range) ([]leave.Request, error) {
	args := m.Called(ctx, employeeIDs, rg)
	rows, _ := args.Get(0).([]leave.Request)
	return rows, args.Error(1)
}

func (m *LeaveRequestRepository) ListAppliedSince(ctx context.Context, since calendar.Date, employeeID *string) ([]leave.Request, error) {
	args := m.Called(ctx, since, employeeID)
	rows, _ := args.Get(0).([]leave.Request)
	return rows, args.Error(1)
}

func (m *LeaveRequestRepository) UpdateStatus(ctx context.Context, req leave.Request) error {
	return m.Called(ctx, req).Error(0)
}

type LoanRequestRepository struct {
	mock.Mock
}

func (m *LoanRequestRepository) Create(ctx context.Context, req loan.Request) (loan.Request, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(loan.Request), args.Error(1)
}

func (m *LoanRequestRepository) GetByID(ctx context.Context, id string) (loan.Request, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(loan.Request), args.Error(1)
}

func (m *LoanRequestRepository) GetByIDForUpdate(ctx context.Context, id string) (loan.Request, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(loan.Request), args.Error(1)
}

func (m *LoanRequestRepository) List(ctx context.Context, filter loan.LoanRequestFilter) ([]loan.Request, error) {
	args := m.Called(ctx, filter)
	rows, _ := args.Get(0).([]loan.Request)
	return rows, args.Error(1)
}

func (m *LoanRequestRepository) ListAppliedSince(ctx context.Context, since calendar.Date, employeeID *string) ([]loan.Request, error) {
	args := m.Called(ctx, since, employeeID)
	rows, _ := args.Get(0).([]loan.Request)
	return rows, args.Error(1)
}

func (m *LoanRequestRepository) UpdateStatus(ctx context.Context, req loan.Request) error {
	return m.Called(ctx, req).Error(0)
}

type EmployeeRepository struct {
	mock.Mock
}

func (m *EmployeeRepository) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	args := m.Called(ctx, e)
	return args.Get(0).(employee.Employee), args.Error(1)
}

func (m *EmployeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(employee.Employee), args.Error(1)
}

func (m *EmployeeRepository) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(employee.Employee), args.Error(1)
}

func (m *EmployeeRepository) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, error) {
	args := m.Called(ctx, filter)
	rows, _ := args.Get(0).([]employee.Employee)
	return rows, args.Error(1)
}
