package loan

import "errors"

var (
	ErrLoanRequestNotFound         = errors.New("loan request not found")
	ErrLoanRequestAlreadyProcessed = errors.New("loan request already processed")
	ErrLoanNotApproved             = errors.New("only approved loans can be completed")
)
