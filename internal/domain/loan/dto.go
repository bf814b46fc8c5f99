package loan

import (
	"time"

	"github.com/cmlabs-hris/hr-portal-backend/internal/pkg/calendar"
	"github.com/cmlabs-hris/hr-portal-backend/internal/pkg/validator"
)

// MaxRepaymentMonths caps the loan term.
const MaxRepaymentMonths = 120

type CreateLoanRequestRequest struct {
	EmployeeID      string  `json:"employee_id"`
	Type            *string `json:"type,omitempty"`
	Amount          float64 `json:"amount"`
	Purpose         string  `json:"purpose"`
	RepaymentMonths int     `json:"repayment_months"`
}

func (r *CreateLoanRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs.Add("employee_id", "employee_id is required")
	} else if !validator.IsValidUUID(r.EmployeeID) {
		errs.Add("employee_id", "employee_id must be a valid UUID")
	}

	if r.Amount <= 0 {
		errs.Add("amount", "amount must be greater than 0")
	}

	if !validator.IsInRange(r.RepaymentMonths, 1, MaxRepaymentMonths) {
		errs.Add("repayment_months", "repayment_months must be between 1 and 120")
	}

	if validator.IsEmpty(r.Purpose) {
		errs.Add("purpose", "purpose is required")
	}

	return errs.Err()
}

type RejectLoanRequestRequest struct {
	ID     string `json:"-"`
	Reason string `json:"reason"`
}

func (r *RejectLoanRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.ID) {
		errs.Add("id", "id must be a valid UUID")
	}
	if validator.IsEmpty(r.Reason) {
		errs.Add("reason", "rejection reason is required")
	}

	return errs.Err()
}

type LoanRequestFilter struct {
	EmployeeID *string `json:"employee_id,omitempty"`
	Status     *string `json:"status,omitempty"`
	Type       *string `json:"type,omitempty"`
}

func (f *LoanRequestFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.EmployeeID != nil && !validator.IsValidUUID(*f.EmployeeID) {
		errs.Add("employee_id", "employee_id must be a valid UUID")
	}

	if f.Status != nil {
		validStatuses := []string{string(StatusPending), string(StatusApproved), string(StatusRejected), string(StatusCompleted)}
		if !validator.IsInSlice(*f.Status, validStatuses) {
			errs.Add("status", "status must be one of: pending, approved, rejected, completed")
		}
	}

	return errs.Err()
}

type LoanRequestResponse struct {
	ID                 string        `json:"id"`
	EmployeeID         string        `json:"employee_id"`
	Name               string        `json:"name"`
	Email              string        `json:"email"`
	Type               *string       `json:"type"`
	Amount             float64       `json:"amount"`
	Purpose            string        `json:"purpose"`
	RepaymentMonths    int           `json:"repayment_months"`
	MonthlyInstallment float64       `json:"monthly_installment"`
	Status             string        `json:"status"`
	AppliedDate        calendar.Date `json:"applied_date"`
	ApprovalDate       calendar.Date `json:"approval_date"`
	CompletedDate      calendar.Date `json:"completed_date"`
	RejectionReason    *string       `json:"rejection_reason,omitempty"`
	CreatedAt          string        `json:"created_at"`
	UpdatedAt          string        `json:"updated_at"`
}

func ToResponse(r Request) LoanRequestResponse {
	return LoanRequestResponse{
		ID:                 r.ID,
		EmployeeID:         r.EmployeeID,
		Name:               r.Name,
		Email:              r.Email,
		Type:               r.Type,
		Amount:             r.Amount.InexactFloat64(),
		Purpose:            r.Purpose,
		RepaymentMonths:    r.RepaymentMonths,
		MonthlyInstallment: r.MonthlyInstallment.InexactFloat64(),
		Status:             string(r.Status),
		AppliedDate:        r.AppliedDate,
		ApprovalDate:       r.ApprovalDate,
		CompletedDate:      r.CompletedDate,
		RejectionReason:    r.RejectionReason,
		CreatedAt:          r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          r.UpdatedAt.Format(time.RFC3339),
	}
}
