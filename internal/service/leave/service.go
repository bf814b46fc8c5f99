package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hr-portal-backend/internal/domain/employee"
	"github.com/cmlabs-hris/hr-portal-backend/internal/domain/leave"
	"github.com/cmlabs-hris/hr-portal-backend/internal/pkg/calendar"
	"github.com/cmlabs-hris/hr-portal-backend/internal/pkg/database"
	"github.com/cmlabs-hris/hr-portal-backend/internal/pkg/validator"
)

type LeaveServiceImpl struct {
	tx database.Transactor
	leave.LeaveRequestRepository
	employee.EmployeeRepository
	loc *time.Location
	now func() time.Time
}

func NewLeaveService(
	tx database.Transactor,
	leaveRepo leave.LeaveRequestRepository,
	employeeRepo employee.EmployeeRepository,
	loc *time.Location,
) leave.LeaveService {
	return &LeaveServiceImpl{
		tx:                     tx,
		LeaveRequestRepository: leaveRepo,
		EmployeeRepository:     employeeRepo,
		loc:                    loc,
		now:                    time.Now,
	}
}

// CreateLeaveRequest implements leave.LeaveService.
func (s *LeaveServiceImpl) CreateLeaveRequest(ctx context.Context, req leave.CreateLeaveRequestRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	if _, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID); err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	start, err := calendar.Parse(req.StartDate)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	end, err := calendar.Parse(req.EndDate)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	created, err := s.LeaveRequestRepository.Create(ctx, leave.Request{
		EmployeeID:  req.EmployeeID,
		Type:        req.Type,
		StartDate:   start,
		EndDate:     end,
		Reason:      req.Reason,
		Status:      leave.StatusPending,
		AppliedDate: calendar.Today(s.now(), s.loc),
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return leave.ToResponse(created), nil
}

// GetLeaveRequest implements leave.LeaveService.
func (s *LeaveServiceImpl) GetLeaveRequest(ctx context.Context, id string) (leave.LeaveRequestResponse, error) {
	if err := validator.ValidateID("id", id); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	req, err := s.LeaveRequestRepository.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	return leave.ToResponse(req), nil
}

// ListLeaveRequests implements leave.LeaveService.
func (s *LeaveServiceImpl) ListLeaveRequests(ctx context.Context, filter leave.LeaveRequestFilter) ([]leave.LeaveRequestResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	requests, err := s.LeaveRequestRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}

	responses := make([]leave.LeaveRequestResponse, 0, len(requests))
	for _, r := range requests {
		responses = append(responses, leave.ToResponse(r))
	}
	return responses, nil
}

// ApproveLeaveRequest implements leave.LeaveService.
func (s *LeaveServiceImpl) ApproveLeaveRequest(ctx context.Context, id string) (leave.LeaveRequestResponse, error) {
	if err := validator.ValidateID("id", id); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	var approved leave.Request

	err := s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		request, err := s.LeaveRequestRepository.GetByIDForUpdate(txCtx, id)
		if err != nil {
			return err
		}
		if !request.IsPending() {
			return leave.ErrLeaveRequestAlreadyProcessed
		}

		overlapping, err := s.LeaveRequestRepository.ListApprovedOverlapping(txCtx, []string{request.EmployeeID}, request.Range())
		if err != nil {
			return fmt.Errorf("failed to check overlapping leave: %w", err)
		}
		for _, other := range overlapping {
			if other.ID != request.ID {
				return leave.ErrOverlappingLeave
			}
		}

		approvedAt := s.now()
		request.Status = leave.StatusApproved
		request.ApprovedAt = &approvedAt
		request.RejectionReason = nil
		if err := s.LeaveRequestRepository.UpdateStatus(txCtx, request); err != nil {
			return fmt.Errorf("failed to update leave request: %w", err)
		}

		approved = request
		return nil
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	return leave.ToResponse(approved), nil
}

// RejectLeaveRequest implements leave.LeaveService.
func (s *LeaveServiceImpl) RejectLeaveRequest(ctx context.Context, req leave.RejectLeaveRequestRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	var rejected leave.Request
	err := s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		request, err := s.LeaveRequestRepository.GetByIDForUpdate(txCtx, req.ID)
		if err != nil {
			return err
		}
		if !request.IsPending() {
			return leave.ErrLeaveRequestAlreadyProcessed
		}

		reason := req.Reason
		request.Status = leave.StatusRejected
		request.RejectionReason = &reason
		if err := s.LeaveRequestRepository.UpdateStatus(txCtx, request); err != nil {
			return fmt.Errorf("failed to update leave request: %w", err)
		}

		rejected = request
		return nil
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	return leave.ToResponse(rejected), nil
}
