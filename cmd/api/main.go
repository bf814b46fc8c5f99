package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/hr-portal-backend/internal/config"
	appHTTP "github.com/cmlabs-hris/hr-portal-backend/internal/handler/http"
	"github.com/cmlabs-hris/hr-portal-backend/internal/pkg/database"
	"github.com/cmlabs-hris/hr-portal-backend/internal/repository/postgresql"
	attendanceService "github.com/cmlabs-hris/hr-portal-backend/internal/service/attendance"
	employeeService "github.com/cmlabs-hris/hr-portal-backend/internal/service/employee"
	leaveService "github.com/cmlabs-hris/hr-portal-backend/internal/service/leave"
	loanService "github.com/cmlabs-hris/hr-portal-backend/internal/service/loan"
	reportService "github.com/cmlabs-hris/hr-portal-backend/internal/service/report"
	"github.com/go-chi/jwtauth/v5"
)

const shutdownTimeout = 30 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := appHTTP.NewLogger(os.Stdout, cfg.SlogLevel(), cfg.App.Env)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL(), database.PoolOptions{
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	})
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	if cfg.Database.MigrateOnStart {
		if err := db.Migrate(ctx); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	loanRequestRepo := postgresql.NewLoanRequestRepository(db)
	transactor := postgresql.NewTransactor(db)

	loc := cfg.App.Location
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, leaveRequestRepo, loc)
	leaveSvc := leaveService.NewLeaveService(transactor, leaveRequestRepo, employeeRepo, loc)
	loanSvc := loanService.NewLoanService(transactor, loanRequestRepo, employeeRepo, loc)
	reportSvc := reportService.NewReportService(employeeRepo, attendanceRepo, leaveRequestRepo, loanRequestRepo, loc)

	var tokenAuth *jwtauth.JWTAuth
	if cfg.JWT.Disabled {
		slog.Warn("authentication disabled, every route is open")
	} else {
		tokenAuth = appHTTP.NewTokenAuth(cfg.JWT.Secret)
	}

	router := appHTTP.NewRouter(logger, appHTTP.RouterConfig{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		LogLevel:       cfg.SlogLevel(),
		TokenAuth:      tokenAuth,
	}, appHTTP.Handlers{
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Leave:      appHTTP.NewLeaveHandler(leaveSvc),
		Loan:       appHTTP.NewLoanHandler(loanSvc),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Report:     appHTTP.NewReportHandler(reportSvc),
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", server.Addr)
		serveErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	slog.Info("server stopped")
	return nil
}
