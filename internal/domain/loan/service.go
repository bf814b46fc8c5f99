package loan

import "context"

type LoanService interface {
	// CreateLoanRequest stores a pending request with its installment fixed.
	CreateLoanRequest(ctx context.Context, req CreateLoanRequestRequest) (LoanRequestResponse, error)
	GetLoanRequest(ctx context.Context, id string) (LoanRequestResponse, error)
	ListLoanRequests(ctx context.Context, filter LoanRequestFilter) ([]LoanRequestResponse, error)

	// pending -> approved
	ApproveLoanRequest(ctx context.Context, id string) (LoanRequestResponse, error)
	// pending -> rejected
	RejectLoanRequest(ctx context.Context, req RejectLoanRequestRequest) (LoanRequestResponse, error)
	// approved -> completed
	CompleteLoanRequest(ctx context.Context, id string) (LoanRequestResponse, error)
}
