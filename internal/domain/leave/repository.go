package leave

import (
	"context"

	"github.com/cmlabs-hris/hr-portal-backend/internal/pkg/calendar"
)

type LeaveRequestRepository interface {
	Create(ctx context.Context, req Request) (Request, error)

	// GetByID returns ErrLeaveRequestNotFound when no row matches.
	GetByID(ctx context.Context, id string) (Request, error)

	// GetByIDForUpdate locks the row; it must run inside a transaction.
	GetByIDForUpdate(ctx context.Context, id string) (Request, error)

	List(ctx context.Context, filter LeaveRequestFilter) ([]Request, error)

	// ListApprovedOverlapping returns approved requests overlapping rg. An
	// empty employeeIDs slice means every employee.
	ListApprovedOverlapping(ctx context.Context, employeeIDs []string, rg calendar.Range) ([]Request, error)

	// ListAppliedSince returns requests applied on or after since, optionally
	// scoped to one employee.
	ListAppliedSince(ctx context.Context, since calendar.Date, employeeID *string) ([]Request, error)

	// UpdateStatus persists Status, ApprovedAt and RejectionReason.
	UpdateStatus(ctx context.Context, req Request) error
}
