package loan

import (
	"context"

	"github.com/cmlabs-hris/hr-portal-backend/internal/pkg/calendar"
)

type LoanRequestRepository interface {
	Create(ctx context.Context, req Request) (Request, error)

	// GetByID returns ErrLoanRequestNotFound when no row matches.
	GetByID(ctx context.Context, id string) (Request, error)

	// GetByIDForUpdate locks the row; it must run inside a transaction.
	GetByIDForUpdate(ctx context.Context, id string) (Request, error)

	List(ctx context.Context, filter LoanRequestFilter) ([]Request, error)

	// ListAppliedSince returns requests applied on or after since, optionally
	// scoped to one employee.
	ListAppliedSince(ctx context.Context, since calendar.Date, employeeID *string) ([]Request, error)

	// UpdateStatus persists Status, ApprovalDate, CompletedDate and
	// RejectionReason.
	UpdateStatus(ctx context.Context, req Request) error
}
