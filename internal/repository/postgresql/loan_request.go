package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/hr-portal-backend/internal/domain/loan"
	"github.com/cmlabs-hris/hr-portal-backend/internal/pkg/calendar"
	"github.com/cmlabs-hris/hr-portal-backend/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type loanRequestRepositoryImpl struct {
	db *database.DB
}

func NewLoanRequestRepository(db *database.DB) loan.LoanRequestRepository {
	return &loanRequestRepositoryImpl{db: db}
}

const loanRequestColumns = `
	id, employee_id, name, email, type, amount, purpose, repayment_months, monthly_installment,
	status, applied_date, approval_date, completed_date, rejection_reason, created_at, updated_at`

func (r *loanRequestRepositoryImpl) Create(ctx context.Context, req loan.Request) (loan.Request, error) {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return loan.Request{}, fmt.Errorf("generate loan request id: %w", err)
	}

	query := `
		INSERT INTO loan_requests (
			id, employee_id, name, email, type, amount, purpose, repayment_months, monthly_installment,
			status, applied_date, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9,
			$10, $11, NOW(), NOW()
		) RETURNING ` + loanRequestColumns

	created, err := scanLoanRequest(q.QueryRow(ctx, query,
		id.String(), req.EmployeeID, req.Name, req.Email, req.Type, req.Amount, req.Purpose,
		req.RepaymentMonths, req.MonthlyInstallment, req.Status, req.AppliedDate,
	))
	if err != nil {
		return loan.Request{}, fmt.Errorf("failed to create loan request: %w", err)
	}
	return created, nil
}

func (r *loanRequestRepositoryImpl) GetByID(ctx context.Context, id string) (loan.Request, error) {
	return r.getByID(ctx, id, false)
}

func (r *loanRequestRepositoryImpl) GetByIDForUpdate(ctx context.Context, id string) (loan.Request, error) {
	return r.getByID(ctx, id, true)
}

func (r *loanRequestRepositoryImpl) getByID(ctx context.Context, id string, forUpdate bool) (loan.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + loanRequestColumns + ` FROM loan_requests WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	req, err := scanLoanRequest(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return loan.Request{}, loan.ErrLoanRequestNotFound
		}
		return loan.Request{}, fmt.Errorf("failed to get loan request %s: %w", id, err)
	}
	return req, nil
}

func (r *loanRequestRepositoryImpl) List(ctx context.Context, filter loan.LoanRequestFilter) ([]loan.Request, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "TRUE"
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		baseWhere += fmt.Sprintf(" AND employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.Type != nil && *filter.Type != "" {
		baseWhere += fmt.Sprintf(" AND type = $%d", argIdx)
		args = append(args, *filter.Type)
	}

	query := `SELECT ` + loanRequestColumns + ` FROM loan_requests WHERE ` + baseWhere + ` ORDER BY applied_date DESC, created_at DESC`
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list loan requests: %w", err)
	}
	return collectLoanRequests(rows)
}

func (r *loanRequestRepositoryImpl) ListAppliedSince(ctx context.Context, since calendar.Date, employeeID *string) ([]loan.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + loanRequestColumns + `
		FROM loan_requests
		WHERE applied_date >= $1
		  AND ($2::uuid IS NULL OR employee_id = $2::uuid)
		ORDER BY applied_date
	`

	rows, err := q.Query(ctx, query, since, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list loan requests applied since %s: %w", since, err)
	}
	return collectLoanRequests(rows)
}

func (r *loanRequestRepositoryImpl) UpdateStatus(ctx context.Context, req loan.Request) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE loan_requests
		SET status = $1, approval_date = $2, completed_date = $3, rejection_reason = $4, updated_at = NOW()
		WHERE id = $5
	`

	commandTag, err := q.Exec(ctx, query, req.Status, req.ApprovalDate, req.CompletedDate, req.RejectionReason, req.ID)
	if err != nil {
		return fmt.Errorf("failed to update loan request %s: %w", req.ID, err)
	}
	if commandTag.RowsAffected() == 0 {
		return loan.ErrLoanRequestNotFound
	}
	return nil
}

func scanLoanRequest(row pgx.Row) (loan.Request, error) {
	var lr loan.Request
	err := row.Scan(
		&lr.ID, &lr.EmployeeID, &lr.Name, &lr.Email, &lr.Type,
		&lr.Amount, &lr.Purpose, &lr.RepaymentMonths, &lr.MonthlyInstallment,
		&lr.Status, &lr.AppliedDate, &lr.ApprovalDate, &lr.CompletedDate,
		&lr.RejectionReason, &lr.CreatedAt, &lr.UpdatedAt,
	)
	return lr, err
}

func collectLoanRequests(rows pgx.Rows) ([]loan.Request, error) {
	defer rows.Close()

	requests := []loan.Request{}
	for rows.Next() {
		lr, err := scanLoanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan loan request: %w", err)
		}
		requests = append(requests, lr)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return requests, nil
}
