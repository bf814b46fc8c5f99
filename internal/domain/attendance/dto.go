package attendance

import (
	"time"

	"github.com/cmlabs-hris/hr-portal-backend/internal/domain/leave"
	"github.com/cmlabs-hris/hr-portal-backend/internal/pkg/calendar"
	"github.com/cmlabs-hris/hr-portal-backend/internal/pkg/validator"
)

type MarkAttendanceRequest struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date,omitempty"` // YYYY-MM-DD, defaults to today
	Status     string `json:"status"`
}

func (r *MarkAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs.Add("employee_id", "employee_id is required")
	} else if !validator.IsValidUUID(r.EmployeeID) {
		errs.Add("employee_id", "employee_id must be a valid UUID")
	}

	if r.Date != "" {
		if _, valid := validator.IsValidDate(r.Date); !valid {
			errs.Add("date", "date must be in YYYY-MM-DD format")
		}
	}

	if validator.IsEmpty(r.Status) {
		errs.Add("status", "status is required")
	} else if !validator.IsInSlice(r.Status, validStatuses) {
		errs.Add("status", "status must be one of: present, absent, leave")
	}

	return errs.Err()
}

type AttendanceFilter struct {
	EmployeeID *string `json:"employee_id,omitempty"`
	Date       *string `json:"date,omitempty"`       // YYYY-MM-DD
	StartDate  *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate    *string `json:"end_date,omitempty"`   // YYYY-MM-DD
	Status     *string `json:"status,omitempty"`
}

func (f *AttendanceFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.EmployeeID != nil && !validator.IsValidUUID(*f.EmployeeID) {
		errs.Add("employee_id", "employee_id must be a valid UUID")
	}

	if f.Date != nil {
		if _, valid := validator.IsValidDate(*f.Date); !valid {
			errs.Add("date", "date must be in YYYY-MM-DD format")
		}
		if f.StartDate != nil || f.EndDate != nil {
			errs.Add("date", "date cannot be combined with start_date/end_date")
		}
	}

	if (f.StartDate == nil) != (f.EndDate == nil) {
		errs.Add("start_date", "start_date and end_date must be given together")
	}

	var start, end time.Time
	startOK, endOK := false, false
	if f.StartDate != nil {
		if start, startOK = validator.IsValidDate(*f.StartDate); !startOK {
			errs.Add("start_date", "start_date must be in YYYY-MM-DD format")
		}
	}
	if f.EndDate != nil {
		if end, endOK = validator.IsValidDate(*f.EndDate); !endOK {
			errs.Add("end_date", "end_date must be in YYYY-MM-DD format")
		}
	}
	if startOK && endOK && end.Before(start) {
		errs.Add("end_date", "end_date must not be before start_date")
	}

	if f.Status != nil && !validator.IsInSlice(*f.Status, validStatuses) {
		errs.Add("status", "status must be one of: present, absent, leave")
	}

	return errs.Err()
}

// Window returns the date range the filter restricts to, if any. It assumes
// Validate has passed.
func (f AttendanceFilter) Window() (calendar.Range, bool) {
	if f.Date != nil {
		d, err := calendar.Parse(*f.Date)
		if err != nil {
			return calendar.Range{}, false
		}
		return calendar.Day(d), true
	}
	if f.StartDate != nil && f.EndDate != nil {
		start, err := calendar.Parse(*f.StartDate)
		if err != nil {
			return calendar.Range{}, false
		}
		end, err := calendar.Parse(*f.EndDate)
		if err != nil {
			return calendar.Range{}, false
		}
		rg, err := calendar.NewRange(start, end)
		return rg, err == nil
	}
	return calendar.Range{}, false
}

type AttendanceResponse struct {
	ID         string        `json:"id"`
	EmployeeID string        `json:"employee_id"`
	Date       calendar.Date `json:"date"`
	Status     string        `json:"status"`
	CreatedAt  string        `json:"created_at"`
	UpdatedAt  string        `json:"updated_at"`
}

type EnrichedAttendanceResponse struct {
	AttendanceResponse
	IsOnLeave    bool                        `json:"is_on_leave"`
	LeaveDetails *leave.LeaveRequestResponse `json:"leave_details"`
}

func ToResponse(r Record) AttendanceResponse {
	return AttendanceResponse{
		ID:         r.ID,
		EmployeeID: r.EmployeeID,
		Date:       r.Date,
		Status:     string(r.Status),
		CreatedAt:  r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  r.UpdatedAt.Format(time.RFC3339),
	}
}

func ToEnrichedResponse(e EnrichedRecord) EnrichedAttendanceResponse {
	resp := EnrichedAttendanceResponse{
		AttendanceResponse: ToResponse(e.Record),
		IsOnLeave:          e.IsOnLeave,
	}
	if e.LeaveDetails != nil {
		details := leave.ToResponse(*e.LeaveDetails)
		resp.LeaveDetails = &details
	}
	return resp
}
