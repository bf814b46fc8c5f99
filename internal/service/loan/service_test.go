package loan

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/hr-portal-backend/internal/domain/employee"
	"github.com/cmlabs-hris/hr-portal-backend/internal/domain/loan"
	"github.com/cmlabs-hris/hr-portal-backend/internal/mocks"
	"github.com/cmlabs-hris/hr-portal-backend/internal/pkg/calendar"
	"github.com/cmlabs-hris/hr-portal-backend/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	empA  = "0190f5a4-0000-7000-8000-00000000000a"
	loan1 = "0190f5a4-0000-7000-8000-0000000000c1"
)

func newTestService(t *testing.T) (*LoanServiceImpl, *mocks.LoanRequestRepository, *mocks.EmployeeRepository) {
	loanRepo := &mocks.LoanRequestRepository{}
	employeeRepo := &mocks.EmployeeRepository{}
	t.Cleanup(func() {
		loanRepo.AssertExpectations(t)
		employeeRepo.AssertExpectations(t)
	})

	svc := NewLoanService(&mocks.Transactor{}, loanRepo, employeeRepo, time.UTC).(*LoanServiceImpl)
	svc.now = func() time.Time { return time.Date(2024, 5, 20, 8, 0, 0, 0, time.UTC) }
	return svc, loanRepo, employeeRepo
}

func loanWithStatus(status loan.Status) loan.Request {
	return loan.Request{
		ID:                 loan1,
		EmployeeID:         empA,
		Amount:             decimal.NewFromInt(12000),
		RepaymentMonths:    12,
		MonthlyInstallment: decimal.RequireFromString("1027.29"),
		Status:             status,
		AppliedDate:        calendar.MustParse("2024-05-01"),
	}
}

func TestCreateLoanRequest_ComputesInstallmentOnce(t *testing.T) {
	svc, loanRepo, employeeRepo := newTestService(t)

	employeeRepo.On("GetByID", mock.Anything, empA).
		Return(employee.Employee{ID: empA, FirstName: "Siti", LastName: "Rahma", Email: "siti@example.com"}, nil).Once()
	loanRepo.On("Create", mock.Anything, mock.MatchedBy(func(r loan.Request) bool {
		return r.Name == "Siti Rahma" &&
			r.Email == "siti@example.com" &&
			r.Status == loan.StatusPending &&
			r.MonthlyInstallment.StringFixed(2) == "1027.29" &&
			r.AppliedDate.Equal(calendar.MustParse("2024-05-20"))
	})).Return(loanWithStatus(loan.StatusPending), nil).Once()

	resp, err := svc.CreateLoanRequest(context.Background(), loan.CreateLoanRequestRequest{
		EmployeeID:      empA,
		Amount:          12000,
		Purpose:         "laptop",
		RepaymentMonths: 12,
	})
	require.NoError(t, err)
	assert.Equal(t, 1027.29, resp.MonthlyInstallment)
	assert.Equal(t, "pending", resp.Status)
}

func TestCreateLoanRequest_Invalid(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.CreateLoanRequest(context.Background(), loan.CreateLoanRequestRequest{
		EmployeeID:      empA,
		Amount:          -5,
		Purpose:         "laptop",
		RepaymentMonths: 0,
	})
	assert.Error(t, err)
}

func TestApproveLoanRequest(t *testing.T) {
	svc, loanRepo, _ := newTestService(t)

	loanRepo.On("GetByIDForUpdate", mock.Anything, loan1).Return(loanWithStatus(loan.StatusPending), nil).Once()
	loanRepo.On("UpdateStatus", mock.Anything, mock.MatchedBy(func(r loan.Request) bool {
		return r.Status == loan.StatusApproved && r.ApprovalDate.Equal(calendar.MustParse("2024-05-20"))
	})).Return(nil).Once()

	resp, err := svc.ApproveLoanRequest(context.Background(), loan1)
	require.NoError(t, err)
	assert.Equal(t, "approved", resp.Status)
	assert.Equal(t, "2024-05-20", resp.ApprovalDate.String())
}

func TestApproveLoanRequest_AlreadyProcessed(t *testing.T) {
	svc, loanRepo, _ := newTestService(t)
	loanRepo.On("GetByIDForUpdate", mock.Anything, loan1).Return(loanWithStatus(loan.StatusRejected), nil).Once()

	_, err := svc.ApproveLoanRequest(context.Background(), loan1)
	assert.ErrorIs(t, err, loan.ErrLoanRequestAlreadyProcessed)
}

func TestRejectLoanRequest(t *testing.T) {
	svc, loanRepo, _ := newTestService(t)
	loanRepo.On("GetByIDForUpdate", mock.Anything, loan1).Return(loanWithStatus(loan.StatusPending), nil).Once()
	loanRepo.On("UpdateStatus", mock.Anything, mock.MatchedBy(func(r loan.Request) bool {
		return r.Status == loan.StatusRejected && *r.RejectionReason == "budget"
	})).Return(nil).Once()

	resp, err := svc.RejectLoanRequest(context.Background(), loan.RejectLoanRequestRequest{ID: loan1, Reason: "budget"})
	require.NoError(t, err)
	assert.Equal(t, "rejected", resp.Status)
}

func TestCompleteLoanRequest(t *testing.T) {
	cases := []struct {
		name    string
		status  loan.Status
		wantErr error
	}{
		{"approved completes", loan.StatusApproved, nil},
		{"pending cannot complete", loan.StatusPending, loan.ErrLoanNotApproved},
		{"completed cannot complete again", loan.StatusCompleted, loan.ErrLoanNotApproved},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, loanRepo, _ := newTestService(t)
			loanRepo.On("GetByIDForUpdate", mock.Anything, loan1).Return(loanWithStatus(tc.status), nil).Once()
			if tc.wantErr == nil {
				loanRepo.On("UpdateStatus", mock.Anything, mock.MatchedBy(func(r loan.Request) bool {
					return r.Status == loan.StatusCompleted && r.CompletedDate.Equal(calendar.MustParse("2024-05-20"))
				})).Return(nil).Once()
			}

			resp, err := svc.CompleteLoanRequest(context.Background(), loan1)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "completed", resp.Status)
		})
	}
}

func TestLoanRequestIDMustBeUUID(t *testing.T) {
	svc, loanRepo, _ := newTestService(t)
	ctx := context.Background()
	var verrs validator.ValidationErrors

	_, err := svc.GetLoanRequest(ctx, "not-a-uuid")
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "id")
	assert.NotErrorIs(t, err, loan.ErrLoanRequestNotFound)

	_, err = svc.ApproveLoanRequest(ctx, "not-a-uuid")
	assert.ErrorAs(t, err, &verrs)

	_, err = svc.CompleteLoanRequest(ctx, "not-a-uuid")
	assert.ErrorAs(t, err, &verrs)

	_, err = svc.RejectLoanRequest(ctx, loan.RejectLoanRequestRequest{ID: "loan-1", Reason: "budget"})
	assert.ErrorAs(t, err, &verrs)

	loanRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	loanRepo.AssertNotCalled(t, "GetByIDForUpdate", mock.Anything, mock.Anything)
}
