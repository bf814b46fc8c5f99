package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hr-portal-backend/internal/domain/loan"
	"github.com/cmlabs-hris/hr-portal-backend/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type LoanHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	Complete(w http.ResponseWriter, r *http.Request)
}

type loanHandlerImpl struct {
	loanService loan.LoanService
}

func NewLoanHandler(loanService loan.LoanService) LoanHandler {
	return &loanHandlerImpl{
		loanService: loanService,
	}
}

func (h *loanHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := loan.LoanRequestFilter{
		EmployeeID: optionalQuery(r, "employee_id"),
		Status:     optionalQuery(r, "status"),
		Type:       optionalQuery(r, "type"),
	}

	loans, err := h.loanService.ListLoanRequests(r.Context(), filter)
	if err != nil {
		response.HandleError(w, r, err)
		return
	}

	response.List(w, "Loan requests retrieved successfully", loans, len(loans))
}

func (h *loanHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.loanService.GetLoanRequest(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, r, err)
		return
	}

	response.Success(w, result)
}

func (h *loanHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req loan.CreateLoanRequestRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create loan decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.loanService.CreateLoanRequest(r.Context(), req)
	if err != nil {
		response.HandleError(w, r, err)
		return
	}

	response.Created(w, "Loan request submitted successfully", result)
}

func (h *loanHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	result, err := h.loanService.ApproveLoanRequest(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, r, err)
		return
	}

	response.SuccessWithMessage(w, "Loan request approved successfully", result)
}

func (h *loanHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	var req loan.RejectLoanRequestRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Reject loan decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.loanService.RejectLoanRequest(r.Context(), req)
	if err != nil {
		response.HandleError(w, r, err)
		return
	}

	response.SuccessWithMessage(w, "Loan request rejected successfully", result)
}

func (h *loanHandlerImpl) Complete(w http.ResponseWriter, r *http.Request) {
	result, err := h.loanService.CompleteLoanRequest(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, r, err)
		return
	}

	response.SuccessWithMessage(w, "Loan marked as completed", result)
}
