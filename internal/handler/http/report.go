package http

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/cmlabs-hris/hr-portal-backend/internal/domain/report"
	"github.com/cmlabs-hris/hr-portal-backend/internal/handler/http/middleware"
	"github.com/cmlabs-hris/hr-portal-backend/internal/handler/http/response"
	"github.com/cmlabs-hris/hr-portal-backend/internal/pkg/spreadsheet"
	"github.com/go-chi/jwtauth/v5"
)

type ReportHandler interface {
	// GET /admin/reports/attendance
	GetAttendanceTrend(w http.ResponseWriter, r *http.Request)

	// GET /admin/reports/employees
	GetDepartmentStats(w http.ResponseWriter, r *http.Request)

	// GET /admin/reports/leave
	GetLeaveStats(w http.ResponseWriter, r *http.Request)

	// GET /admin/reports/loans
	GetLoanStats(w http.ResponseWriter, r *http.Request)

	// GET /employee/reports
	GetEmployeeReport(w http.ResponseWriter, r *http.Request)

	// GET /admin/reports/export
	ExportWorkbook(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// GetAttendanceTrend handles GET /admin/reports/attendance?days=N
func (h *reportHandlerImpl) GetAttendanceTrend(w http.ResponseWriter, r *http.Request) {
	days, err := intQuery(r, "days", report.DefaultTrendDays)
	if err != nil {
		response.BadRequest(w, "invalid days parameter", nil)
		return
	}

	result, err := h.reportService.AttendanceTrend(r.Context(), report.AttendanceReportRequest{Days: days})
	if err != nil {
		response.HandleError(w, r, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance trend retrieved successfully", result)
}

// GetDepartmentStats handles GET /admin/reports/employees
func (h *reportHandlerImpl) GetDepartmentStats(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.DepartmentStats(r.Context())
	if err != nil {
		response.HandleError(w, r, err)
		return
	}

	response.SuccessWithMessage(w, "Department statistics retrieved successfully", result)
}

// GetLeaveStats handles GET /admin/reports/leave?months=N
func (h *reportHandlerImpl) GetLeaveStats(w http.ResponseWriter, r *http.Request) {
	months, err := intQuery(r, "months", report.DefaultMonths)
	if err != nil {
		response.BadRequest(w, "invalid months parameter", nil)
		return
	}

	result, err := h.reportService.LeaveStats(r.Context(), report.PeriodReportRequest{Months: months})
	if err != nil {
		response.HandleError(w, r, err)
		return
	}

	response.SuccessWithMessage(w, "Leave statistics retrieved successfully", result)
}

// GetLoanStats handles GET /admin/reports/loans?months=N
func (h *reportHandlerImpl) GetLoanStats(w http.ResponseWriter, r *http.Request) {
	months, err := intQuery(r, "months", report.DefaultMonths)
	if err != nil {
		response.BadRequest(w, "invalid months parameter", nil)
		return
	}

	result, err := h.reportService.LoanStats(r.Context(), report.PeriodReportRequest{Months: months})
	if err != nil {
		response.HandleError(w, r, err)
		return
	}

	response.SuccessWithMessage(w, "Loan statistics retrieved successfully", result)
}

// GetEmployeeReport handles GET /employee/reports. Without an employee_id
// query parameter the caller's own employee_id claim is used.
func (h *reportHandlerImpl) GetEmployeeReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	employeeID := r.URL.Query().Get("employee_id")
	if employeeID == "" {
		if _, claims, err := jwtauth.FromContext(ctx); err == nil {
			employeeID, _ = claims["employee_id"].(string)
		}
	}

	days, err := intQuery(r, "days", report.DefaultTrendDays)
	if err != nil {
		response.BadRequest(w, "invalid days parameter", nil)
		return
	}
	months, err := intQuery(r, "months", report.DefaultMonths)
	if err != nil {
		response.BadRequest(w, "invalid months parameter", nil)
		return
	}

	if !middleware.CanActFor(ctx, employeeID) {
		response.Forbidden(w, "You can only view your own report")
		return
	}

	req := report.EmployeeReportRequest{
		EmployeeID: employeeID,
		Days:       days,
		Months:     months,
	}

	result, err := h.reportService.EmployeeReport(ctx, req)
	if err != nil {
		response.HandleError(w, r, err)
		return
	}

	response.SuccessWithMessage(w, "Employee report retrieved successfully", result)
}

// ExportWorkbook handles GET /admin/reports/export?days=N, returning the
// attendance trend and today's department stats as an XLSX download.
func (h *reportHandlerImpl) ExportWorkbook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	days, err := intQuery(r, "days", report.DefaultTrendDays)
	if err != nil {
		response.BadRequest(w, "invalid days parameter", nil)
		return
	}

	trend, err := h.reportService.AttendanceTrend(ctx, report.AttendanceReportRequest{Days: days})
	if err != nil {
		response.HandleError(w, r, err)
		return
	}

	departments, err := h.reportService.DepartmentStats(ctx)
	if err != nil {
		response.HandleError(w, r, err)
		return
	}

	trendTable := spreadsheet.Table{
		Sheet:   "Attendance trend",
		Headers: []string{"Date", "Present", "Absent", "Leave"},
	}
	for _, d := range trend {
		trendTable.Rows = append(trendTable.Rows, []interface{}{d.Date.String(), d.Present, d.Absent, d.Leave})
	}

	departmentTable := spreadsheet.Table{
		Sheet:   "Departments",
		Headers: []string{"Department", "Total", "Present", "Absent", "Leave"},
	}
	for _, d := range departments {
		departmentTable.Rows = append(departmentTable.Rows, []interface{}{d.Department, d.Total, d.Present, d.Absent, d.Leave})
	}

	var buf bytes.Buffer
	if err := spreadsheet.Write(&buf, trendTable, departmentTable); err != nil {
		response.HandleError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", spreadsheet.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="hr-report.xlsx"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// intQuery reads an integer query parameter, falling back to def when absent.
func intQuery(r *http.Request, key string, def int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}

// optionalQuery returns nil for an absent or empty query parameter.
func optionalQuery(r *http.Request, key string) *string {
	if v := r.URL.Query().Get(key); v != "" {
		return &v
	}
	return nil
}
