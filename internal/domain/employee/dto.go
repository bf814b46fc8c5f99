package employee

import (
	"strings"

	"github.com/cmlabs-hris/hr-portal-backend/internal/pkg/calendar"
	"github.com/cmlabs-hris/hr-portal-backend/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	FirstName  string   `json:"first_name"`
	LastName   string   `json:"last_name"`
	Email      string   `json:"email"`
	Department *string  `json:"department,omitempty"`
	Position   *string  `json:"position,omitempty"`
	Salary     *float64 `json:"salary,omitempty"`
	JoinDate   string   `json:"join_date,omitempty"` // YYYY-MM-DD
	Manager    *string  `json:"manager,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FirstName) {
		errs.Add("first_name", "first_name is required")
	}

	r.Email = strings.TrimSpace(r.Email)
	if validator.IsEmpty(r.Email) {
		errs.Add("email", "email is required")
	} else if !validator.IsValidEmail(r.Email) {
		errs.Add("email", "email is invalid")
	}

	if r.Salary != nil && *r.Salary < 0 {
		errs.Add("salary", "salary must not be negative")
	}

	if r.JoinDate != "" {
		if _, valid := validator.IsValidDate(r.JoinDate); !valid {
			errs.Add("join_date", "join_date must be in YYYY-MM-DD format")
		}
	}

	return errs.Err()
}

type EmployeeFilter struct {
	Department *string `json:"department,omitempty"`
	Status     *string `json:"status,omitempty"`
}

func (f *EmployeeFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Status != nil && !validator.IsInSlice(*f.Status, []string{string(StatusActive), string(StatusInactive)}) {
		errs.Add("status", "status must be one of: active, inactive")
	}

	return errs.Err()
}

type EmployeeResponse struct {
	ID         string        `json:"id"`
	FirstName  string        `json:"first_name"`
	LastName   string        `json:"last_name"`
	FullName   string        `json:"full_name"`
	Email      string        `json:"email"`
	Department *string       `json:"department"`
	Position   *string       `json:"position"`
	Salary     *float64      `json:"salary"`
	JoinDate   calendar.Date `json:"join_date"`
	Manager    *string       `json:"manager"`
	Status     string        `json:"status"`
}

func ToResponse(e Employee) EmployeeResponse {
	var salary *float64
	if e.Salary != nil {
		v := e.Salary.InexactFloat64()
		salary = &v
	}

	return EmployeeResponse{
		ID:         e.ID,
		FirstName:  e.FirstName,
		LastName:   e.LastName,
		FullName:   e.FullName(),
		Email:      e.Email,
		Department: e.Department,
		Position:   e.Position,
		Salary:     salary,
		JoinDate:   e.JoinDate,
		Manager:    e.Manager,
		Status:     string(e.Status),
	}
}
