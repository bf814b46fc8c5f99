package http

import (
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/cmlabs-hris/hr-portal-backend/internal/handler/http/middleware"
	"github.com/cmlabs-hris/hr-portal-backend/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

const requestTimeout = 30 * time.Second

// Handlers groups the route handlers mounted under /api.
type Handlers struct {
	Attendance AttendanceHandler
	Leave      LeaveHandler
	Loan       LoanHandler
	Employee   EmployeeHandler
	Report     ReportHandler
}

type RouterConfig struct {
	AllowedOrigins []string
	LogLevel       slog.Level

	// TokenAuth verifies bearer tokens. Nil disables authentication and the
	// admin role check, for local development only.
	TokenAuth *jwtauth.JWTAuth
}

// NewTokenAuth returns an HS256 verifier for tokens signed with secret by the
// identity provider.
func NewTokenAuth(secret string) *jwtauth.JWTAuth {
	return jwtauth.New("HS256", []byte(secret), nil, jwt.WithAcceptableSkew(30*time.Second))
}

// NewLogger builds the JSON logger shared by the request logger and the rest
// of the process, using ECS field names.
func NewLogger(w io.Writer, level slog.Level, env string) *slog.Logger {
	logFormat := httplog.SchemaECS.Concise(false)
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hr-portal"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)
}

func NewRouter(logger *slog.Logger, cfg RouterConfig, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token", middleware.RequestIDHeader},
		ExposedHeaders:   []string{"Link", middleware.RequestIDHeader},
		MaxAge:           300,
	}))

	r.Use(middleware.RequestID)

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  cfg.LogLevel,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(requestTimeout))
	r.Use(chiMiddleware.Heartbeat("/"))

	authenticated := func(r chi.Router) {
		if cfg.TokenAuth == nil {
			return
		}
		r.Use(jwtauth.Verifier(cfg.TokenAuth))
		r.Use(middleware.AuthRequired)
	}
	adminOnly := func(r chi.Router) {
		if cfg.TokenAuth == nil {
			return
		}
		r.Use(middleware.AdminOnly)
	}

	r.Route("/api", func(r chi.Router) {
		// Requires authentication
		r.Group(func(r chi.Router) {
			authenticated(r)

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/", h.Attendance.List)
				r.Post("/", h.Attendance.Mark)
			})

			r.Route("/leave", func(r chi.Router) {
				r.Get("/", h.Leave.ListRequests)
				r.Post("/", h.Leave.CreateRequest)
				r.Get("/{id}", h.Leave.GetRequest)

				// Admin only
				r.Group(func(r chi.Router) {
					adminOnly(r)
					r.Post("/{id}/approve", h.Leave.ApproveRequest)
					r.Post("/{id}/reject", h.Leave.RejectRequest)
				})
			})

			r.Route("/loans", func(r chi.Router) {
				r.Get("/", h.Loan.List)
				r.Post("/", h.Loan.Create)
				r.Get("/{id}", h.Loan.Get)

				// Admin only
				r.Group(func(r chi.Router) {
					adminOnly(r)
					r.Post("/{id}/approve", h.Loan.Approve)
					r.Post("/{id}/reject", h.Loan.Reject)
					r.Post("/{id}/complete", h.Loan.Complete)
				})
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.Employee.ListEmployees)
				r.Get("/lookup", h.Employee.LookupEmployee)
				r.Get("/{id}", h.Employee.GetEmployee)

				// Admin only
				r.Group(func(r chi.Router) {
					adminOnly(r)
					r.Post("/", h.Employee.CreateEmployee)
				})
			})

			r.Get("/employee/reports", h.Report.GetEmployeeReport)

			r.Route("/admin/reports", func(r chi.Router) {
				adminOnly(r)
				r.Get("/attendance", h.Report.GetAttendanceTrend)
				r.Get("/employees", h.Report.GetDepartmentStats)
				r.Get("/leave", h.Report.GetLeaveStats)
				r.Get("/loans", h.Report.GetLoanStats)
				r.Get("/export", h.Report.ExportWorkbook)
			})
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.NotFound(w, "Route not found")
	})

	return r
}
