package postgresql_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/cmlabs-hris/hr-portal-backend/internal/domain/attendance"
	"github.com/cmlabs-hris/hr-portal-backend/internal/domain/employee"
	"github.com/cmlabs-hris/hr-portal-backend/internal/domain/leave"
	"github.com/cmlabs-hris/hr-portal-backend/internal/domain/loan"
	"github.com/cmlabs-hris/hr-portal-backend/internal/pkg/calendar"
	"github.com/cmlabs-hris/hr-portal-backend/internal/pkg/database"
	"github.com/cmlabs-hris/hr-portal-backend/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createEmployee(t *testing.T, db *database.DB, email string) employee.Employee {
	t.Helper()

	dept := "Engineering"
	salary := decimal.RequireFromString("7500000.00")
	emp, err := postgresql.NewEmployeeRepository(db).Create(context.Background(), employee.Employee{
		FirstName:  "Test",
		LastName:   "Employee",
		Email:      email,
		Department: &dept,
		Salary:     &salary,
		JoinDate:   calendar.MustParse("2023-01-09"),
		Status:     employee.StatusActive,
	})
	require.NoError(t, err)
	return emp
}

func TestEmployeeRepository_CreateAndGet(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	repo := postgresql.NewEmployeeRepository(db)

	created := createEmployee(t, db, "jane@example.com")
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, calendar.MustParse("2023-01-09"), created.JoinDate)
	require.NotNil(t, created.Salary)
	assert.True(t, decimal.RequireFromString("7500000").Equal(*created.Salary))
	assert.Nil(t, created.Manager)

	byEmail, err := repo.GetByEmail(ctx, "JANE@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)

	_, err = repo.Create(ctx, employee.Employee{FirstName: "Dup", Email: "Jane@Example.com", Status: employee.StatusActive})
	assert.ErrorIs(t, err, employee.ErrEmailExists)

	_, err = repo.GetByID(ctx, "0190f5a4-0000-7000-8000-000000000000")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestAttendanceRepository_UpsertIsKeyedByEmployeeAndDate(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	repo := postgresql.NewAttendanceRepository(db)
	emp := createEmployee(t, db, "marker@example.com")
	date := calendar.MustParse("2024-01-02")

	first, err := repo.Upsert(ctx, attendance.Record{EmployeeID: emp.ID, Date: date, Status: attendance.StatusAbsent})
	require.NoError(t, err)

	second, err := repo.Upsert(ctx, attendance.Record{EmployeeID: emp.ID, Date: date, Status: attendance.StatusPresent})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, attendance.StatusPresent, second.Status)

	rows, err := repo.ListInRange(ctx, calendar.Day(date), &emp.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, date, rows[0].Date)
}

func TestAttendanceRepository_ConcurrentUpsertsLeaveOneRow(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	repo := postgresql.NewAttendanceRepository(db)
	emp := createEmployee(t, db, "race@example.com")
	date := calendar.MustParse("2024-01-03")

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			status := attendance.StatusPresent
			if i%2 == 0 {
				status = attendance.StatusAbsent
			}
			_, err := repo.Upsert(ctx, attendance.Record{EmployeeID: emp.ID, Date: date, Status: status})
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	rows, err := repo.ListInRange(ctx, calendar.Day(date), &emp.ID)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestAttendanceRepository_UnknownEmployee(t *testing.T) {
	db := openTestDB(t)

	_, err := postgresql.NewAttendanceRepository(db).Upsert(context.Background(), attendance.Record{
		EmployeeID: "0190f5a4-0000-7000-8000-000000000000",
		Date:       calendar.MustParse("2024-01-02"),
		Status:     attendance.StatusPresent,
	})
	assert.ErrorIs(t, err, attendance.ErrEmployeeNotFound)
}

func TestLeaveRequestRepository_ListApprovedOverlapping(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	repo := postgresql.NewLeaveRequestRepository(db)
	a := createEmployee(t, db, "a@example.com")
	b := createEmployee(t, db, "b@example.com")

	create := func(emp, start, end string, status leave.Status) leave.Request {
		req, err := repo.Create(ctx, leave.Request{
			EmployeeID:  emp,
			StartDate:   calendar.MustParse(start),
			EndDate:     calendar.MustParse(end),
			Reason:      "test",
			Status:      status,
			AppliedDate: calendar.MustParse("2023-12-01"),
		})
		require.NoError(t, err)
		return req
	}

	hit := create(a.ID, "2024-01-02", "2024-01-03", leave.StatusApproved)
	create(a.ID, "2024-01-02", "2024-01-03", leave.StatusPending)
	create(a.ID, "2024-01-10", "2024-01-12", leave.StatusApproved)
	other := create(b.ID, "2023-12-30", "2024-01-01", leave.StatusApproved)

	window, err := calendar.NewRange(calendar.MustParse("2024-01-01"), calendar.MustParse("2024-01-03"))
	require.NoError(t, err)

	scoped, err := repo.ListApprovedOverlapping(ctx, []string{a.ID}, window)
	require.NoError(t, err)
	require.Len(t, scoped, 1)
	assert.Equal(t, hit.ID, scoped[0].ID)

	all, err := repo.ListApprovedOverlapping(ctx, nil, window)
	require.NoError(t, err)
	require.Len(t, all, 2)
	ids := []string{all[0].ID, all[1].ID}
	assert.ElementsMatch(t, []string{hit.ID, other.ID}, ids)
}

func TestLeaveRequestRepository_UpdateStatus(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	repo := postgresql.NewLeaveRequestRepository(db)
	emp := createEmployee(t, db, "leave@example.com")

	req, err := repo.Create(ctx, leave.Request{
		EmployeeID:  emp.ID,
		StartDate:   calendar.MustParse("2024-02-01"),
		EndDate:     calendar.MustParse("2024-02-02"),
		Reason:      "family",
		Status:      leave.StatusPending,
		AppliedDate: calendar.MustParse("2024-01-20"),
	})
	require.NoError(t, err)

	now := time.Now().UTC().Truncate(time.Second)
	req.Status = leave.StatusApproved
	req.ApprovedAt = &now

	err = postgresql.WithTransaction(ctx, db, func(tx pgx.Tx) error {
		txCtx := postgresql.ContextWithTx(ctx, tx)
		locked, err := repo.GetByIDForUpdate(txCtx, req.ID)
		if err != nil {
			return err
		}
		if !locked.IsPending() {
			return errors.New("expected pending")
		}
		return repo.UpdateStatus(txCtx, req)
	})
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, leave.StatusApproved, got.Status)
	require.NotNil(t, got.ApprovedAt)
	assert.True(t, now.Equal(*got.ApprovedAt))

	err = repo.UpdateStatus(ctx, leave.Request{ID: "0190f5a4-0000-7000-8000-000000000000", Status: leave.StatusRejected})
	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)
}

func TestLoanRequestRepository_RoundTrip(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	repo := postgresql.NewLoanRequestRepository(db)
	emp := createEmployee(t, db, "loan@example.com")

	amount := decimal.RequireFromString("12000")
	created, err := repo.Create(ctx, loan.Request{
		EmployeeID:         emp.ID,
		Name:               emp.FullName(),
		Email:              emp.Email,
		Amount:             amount,
		Purpose:            "laptop",
		RepaymentMonths:    12,
		MonthlyInstallment: loan.MonthlyInstallment(amount, 12),
		Status:             loan.StatusPending,
		AppliedDate:        calendar.MustParse("2024-03-01"),
	})
	require.NoError(t, err)
	assert.Equal(t, "1027.29", created.MonthlyInstallment.StringFixed(2))
	assert.True(t, created.ApprovalDate.IsZero())

	created.Status = loan.StatusApproved
	created.ApprovalDate = calendar.MustParse("2024-03-02")
	require.NoError(t, repo.UpdateStatus(ctx, created))

	since, err := repo.ListAppliedSince(ctx, calendar.MustParse("2024-01-01"), &emp.ID)
	require.NoError(t, err)
	require.Len(t, since, 1)
	assert.Equal(t, loan.StatusApproved, since[0].Status)
	assert.Equal(t, calendar.MustParse("2024-03-02"), since[0].ApprovalDate)

	none, err := repo.ListAppliedSince(ctx, calendar.MustParse("2024-04-01"), nil)
	require.NoError(t, err)
	assert.Empty(t, none)

	_, err = repo.GetByID(ctx, fmt.Sprintf("0190f5a4-0000-7000-8000-%012d", 1))
	assert.ErrorIs(t, err, loan.ErrLoanRequestNotFound)
}
