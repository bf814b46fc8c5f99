package report

import "errors"

var (
	ErrInvalidDays   = errors.New("days must be between 1 and 366")
	ErrInvalidMonths = errors.New("months must be between 1 and 120")
)
