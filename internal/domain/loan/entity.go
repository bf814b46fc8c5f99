package loan

import (
	"time"

	"github.com/cmlabs-hris/hr-portal-backend/internal/pkg/calendar"
	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCompleted Status = "completed"
)

// Request is an employee loan application. MonthlyInstallment is fixed at
// creation and never recomputed.
type Request struct {
	ID                 string
	EmployeeID         string
	Name               string
	Email              string
	Type               *string
	Amount             decimal.Decimal
	Purpose            string
	RepaymentMonths    int
	MonthlyInstallment decimal.Decimal
	Status             Status
	AppliedDate        calendar.Date
	ApprovalDate       calendar.Date
	CompletedDate      calendar.Date
	RejectionReason    *string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
