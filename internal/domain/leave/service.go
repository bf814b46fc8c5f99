package leave

import "context"

type LeaveService interface {
	CreateLeaveRequest(ctx context.Context, req CreateLeaveRequestRequest) (LeaveRequestResponse, error)
	GetLeaveRequest(ctx context.Context, id string) (LeaveRequestResponse, error)
	ListLeaveRequests(ctx context.Context, filter LeaveRequestFilter) ([]LeaveRequestResponse, error)

	// ApproveLeaveRequest moves a pending request to approved. It refuses when
	// the employee already has approved leave overlapping the same range.
	ApproveLeaveRequest(ctx context.Context, id string) (LeaveRequestResponse, error)

	RejectLeaveRequest(ctx context.Context, req RejectLeaveRequestRequest) (LeaveRequestResponse, error)
}
