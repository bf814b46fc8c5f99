package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hr-portal-backend/internal/domain/attendance"
	"github.com/cmlabs-hris/hr-portal-backend/internal/domain/leave"
	"github.com/cmlabs-hris/hr-portal-backend/internal/pkg/calendar"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	leaveRepo      leave.LeaveRequestRepository
	loc            *time.Location
	now            func() time.Time
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	leaveRepo leave.LeaveRequestRepository,
	loc *time.Location,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		leaveRepo:      leaveRepo,
		loc:            loc,
		now:            time.Now,
	}
}

// MarkAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) MarkAttendance(ctx context.Context, req attendance.MarkAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	date := calendar.Today(s.now(), s.loc)
	if req.Date != "" {
		d, err := calendar.Parse(req.Date)
		if err != nil {
			return attendance.AttendanceResponse{}, err
		}
		date = d
	}

	saved, err := s.attendanceRepo.Upsert(ctx, attendance.Record{
		EmployeeID: req.EmployeeID,
		Date:       date,
		Status:     attendance.Status(req.Status),
	})
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to mark attendance: %w", err)
	}

	return attendance.ToResponse(saved), nil
}

// ListAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.EnrichedAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	rows, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	if len(rows) == 0 {
		return []attendance.EnrichedAttendanceResponse{}, nil
	}

	window, ok := filter.Window()
	if !ok {
		window = spanOf(rows)
	}

	leaves, err := s.leaveRepo.ListApprovedOverlapping(ctx, employeeIDsOf(rows), window)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved leave: %w", err)
	}

	enriched := attendance.Reconcile(rows, leaves)
	attendance.SortByDateDesc(enriched)

	responses := make([]attendance.EnrichedAttendanceResponse, 0, len(enriched))
	for _, e := range enriched {
		responses = append(responses, attendance.ToEnrichedResponse(e))
	}
	return responses, nil
}

// spanOf returns the smallest range holding every row's date.
func spanOf(rows []attendance.Record) calendar.Range {
	var rg calendar.Range
	for _, r := range rows {
		if r.Date.IsZero() {
			continue
		}
		if rg.Start.IsZero() || r.Date.Before(rg.Start) {
			rg.Start = r.Date
		}
		if rg.End.IsZero() || r.Date.After(rg.End) {
			rg.End = r.Date
		}
	}
	return rg
}

func employeeIDsOf(rows []attendance.Record) []string {
	seen := make(map[string]struct{}, len(rows))
	ids := make([]string, 0, len(rows))
	for _, r := range rows {
		if _, ok := seen[r.EmployeeID]; ok {
			continue
		}
		seen[r.EmployeeID] = struct{}{}
		ids = append(ids, r.EmployeeID)
	}
	return ids
}
