package employee

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/hr-portal-backend/internal/pkg/calendar"
	"github.com/shopspring/decimal"
)

// Employee is the single canonical employee record. Email is the natural key
// other records are joined on.
type Employee struct {
	ID         string
	FirstName  string
	LastName   string
	Email      string
	Department *string
	Position   *string
	Salary     *decimal.Decimal
	JoinDate   calendar.Date
	Manager    *string
	Status     Status
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

func (e Employee) FullName() string {
	return strings.TrimSpace(e.FirstName + " " + e.LastName)
}
