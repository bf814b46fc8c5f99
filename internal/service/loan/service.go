package loan

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hr-portal-backend/internal/domain/employee"
	"github.com/cmlabs-hris/hr-portal-backend/internal/domain/loan"
	"github.com/cmlabs-hris/hr-portal-backend/internal/pkg/calendar"
	"github.com/cmlabs-hris/hr-portal-backend/internal/pkg/database"
	"github.com/cmlabs-hris/hr-portal-backend/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type LoanServiceImpl struct {
	tx           database.Transactor
	loanRepo     loan.LoanRequestRepository
	employeeRepo employee.EmployeeRepository
	loc          *time.Location
	now          func() time.Time
}

func NewLoanService(
	tx database.Transactor,
	loanRepo loan.LoanRequestRepository,
	employeeRepo employee.EmployeeRepository,
	loc *time.Location,
) loan.LoanService {
	return &LoanServiceImpl{
		tx:           tx,
		loanRepo:     loanRepo,
		employeeRepo: employeeRepo,
		loc:          loc,
		now:          time.Now,
	}
}

func (s *LoanServiceImpl) today() calendar.Date {
	return calendar.Today(s.now(), s.loc)
}

// CreateLoanRequest implements loan.LoanService. The borrower's name and
// email are copied from the employee record at application time.
func (s *LoanServiceImpl) CreateLoanRequest(ctx context.Context, req loan.CreateLoanRequestRequest) (loan.LoanRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return loan.LoanRequestResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return loan.LoanRequestResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	amount := decimal.NewFromFloat(req.Amount).Round(2)
	created, err := s.loanRepo.Create(ctx, loan.Request{
		EmployeeID:         emp.ID,
		Name:               emp.FullName(),
		Email:              emp.Email,
		Type:               req.Type,
		Amount:             amount,
		Purpose:            req.Purpose,
		RepaymentMonths:    req.RepaymentMonths,
		MonthlyInstallment: loan.MonthlyInstallment(amount, req.RepaymentMonths),
		Status:             loan.StatusPending,
		AppliedDate:        s.today(),
	})
	if err != nil {
		return loan.LoanRequestResponse{}, fmt.Errorf("failed to create loan request: %w", err)
	}

	return loan.ToResponse(created), nil
}

// GetLoanRequest implements loan.LoanService.
func (s *LoanServiceImpl) GetLoanRequest(ctx context.Context, id string) (loan.LoanRequestResponse, error) {
	if err := validator.ValidateID("id", id); err != nil {
		return loan.LoanRequestResponse{}, err
	}

	req, err := s.loanRepo.GetByID(ctx, id)
	if err != nil {
		return loan.LoanRequestResponse{}, err
	}
	return loan.ToResponse(req), nil
}

// ListLoanRequests implements loan.LoanService.
func (s *LoanServiceImpl) ListLoanRequests(ctx context.Context, filter loan.LoanRequestFilter) ([]loan.LoanRequestResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	requests, err := s.loanRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list loan requests: %w", err)
	}

	responses := make([]loan.LoanRequestResponse, 0, len(requests))
	for _, r := range requests {
		responses = append(responses, loan.ToResponse(r))
	}
	return responses, nil
}

// ApproveLoanRequest implements loan.LoanService.
func (s *LoanServiceImpl) ApproveLoanRequest(ctx context.Context, id string) (loan.LoanRequestResponse, error) {
	return s.transition(ctx, id, func(r *loan.Request) error {
		if r.Status != loan.StatusPending {
			return loan.ErrLoanRequestAlreadyProcessed
		}
		r.Status = loan.StatusApproved
		r.ApprovalDate = s.today()
		return nil
	})
}

// RejectLoanRequest implements loan.LoanService.
func (s *LoanServiceImpl) RejectLoanRequest(ctx context.Context, req loan.RejectLoanRequestRequest) (loan.LoanRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return loan.LoanRequestResponse{}, err
	}

	return s.transition(ctx, req.ID, func(r *loan.Request) error {
		if r.Status != loan.StatusPending {
			return loan.ErrLoanRequestAlreadyProcessed
		}
		reason := req.Reason
		r.Status = loan.StatusRejected
		r.RejectionReason = &reason
		return nil
	})
}

// CompleteLoanRequest implements loan.LoanService.
func (s *LoanServiceImpl) CompleteLoanRequest(ctx context.Context, id string) (loan.LoanRequestResponse, error) {
	return s.transition(ctx, id, func(r *loan.Request) error {
		if r.Status != loan.StatusApproved {
			return loan.ErrLoanNotApproved
		}
		r.Status = loan.StatusCompleted
		r.CompletedDate = s.today()
		return nil
	})
}

// transition locks the request, applies mutate and persists the result in one
// transaction.
func (s *LoanServiceImpl) transition(ctx context.Context, id string, mutate func(r *loan.Request) error) (loan.LoanRequestResponse, error) {
	if err := validator.ValidateID("id", id); err != nil {
		return loan.LoanRequestResponse{}, err
	}

	var updated loan.Request

	err := s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		request, err := s.loanRepo.GetByIDForUpdate(txCtx, id)
		if err != nil {
			return err
		}
		if err := mutate(&request); err != nil {
			return err
		}
		if err := s.loanRepo.UpdateStatus(txCtx, request); err != nil {
			return fmt.Errorf("failed to update loan request: %w", err)
		}
		updated = request
		return nil
	})
	if err != nil {
		return loan.LoanRequestResponse{}, err
	}

	return loan.ToResponse(updated), nil
}
