// Package http exposes the application use cases over a REST API.
// Identity arrives in the X-Tenant-Id, X-User-Id and X-User-Role headers,
// resolved by the upstream gateway; this layer only builds the auth context
// and maps domain errors to HTTP status codes.
package http

import (
	"errors"
	"net/http"
	"time"

	"fleetadmin/internal/core/application/usecases/commands"
	"fleetadmin/internal/core/application/usecases/queries"
	"fleetadmin/internal/core/domain/model/contract"
	"fleetadmin/internal/core/domain/model/kernel"
	"fleetadmin/internal/pkg/auth"
	"fleetadmin/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createContractHandler     commands.CreateContractCommandHandler
	transitionContractHandler commands.TransitionContractCommandHandler
	assignDriverHandler       commands.AssignDriverCommandHandler
	unassignDriverHandler     commands.UnassignDriverCommandHandler
	registerDriverHandler     commands.RegisterDriverCommandHandler
	suspendDriverHandler      commands.SuspendDriverCommandHandler
	resumeDriverHandler       commands.ResumeDriverCommandHandler

	statusSummaryHandler     queries.GetStatusSummaryQueryHandler
	activeAssignmentsHandler queries.GetActiveAssignmentsQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	createContractHandler commands.CreateContractCommandHandler,
	transitionContractHandler commands.TransitionContractCommandHandler,
	assignDriverHandler commands.AssignDriverCommandHandler,
	unassignDriverHandler commands.UnassignDriverCommandHandler,
	registerDriverHandler commands.RegisterDriverCommandHandler,
	suspendDriverHandler commands.SuspendDriverCommandHandler,
	resumeDriverHandler commands.ResumeDriverCommandHandler,
	statusSummaryHandler queries.GetStatusSummaryQueryHandler,
	activeAssignmentsHandler queries.GetActiveAssignmentsQueryHandler,
) *Server {
	return &Server{
		createContractHandler:     createContractHandler,
		transitionContractHandler: transitionContractHandler,
		assignDriverHandler:       assignDriverHandler,
		unassignDriverHandler:     unassignDriverHandler,
		registerDriverHandler:     registerDriverHandler,
		suspendDriverHandler:      suspendDriverHandler,
		resumeDriverHandler:       resumeDriverHandler,
		statusSummaryHandler:      statusSummaryHandler,
		activeAssignmentsHandler:  activeAssignmentsHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	v1 := e.Group("/api/v1")
	v1.POST("/contracts", s.CreateContract)
	v1.POST("/contracts/:contractId/transition", s.TransitionContract)
	v1.POST("/contracts/:contractId/driver", s.AssignDriver)
	v1.DELETE("/contracts/:contractId/driver", s.UnassignDriver)
	v1.POST("/drivers", s.RegisterDriver)
	v1.POST("/drivers/:driverId/suspend", s.SuspendDriver)
	v1.POST("/drivers/:driverId/resume", s.ResumeDriver)
	v1.GET("/drivers/:driverId/assignments", s.GetActiveAssignments)
	v1.GET("/reports/status-summary", s.GetStatusSummary)
}

// ErrorResponse is the JSON body returned on failures.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// VehicleRequest is one rented vehicle in a contract creation request.
type VehicleRequest struct {
	VehicleID string `json:"vehicleId"`
	RateCents int64  `json:"rateCents"`
}

// CreateContractRequest is the body for POST /api/v1/contracts.
type CreateContractRequest struct {
	ContractNumber string           `json:"contractNumber"`
	PeriodStart    string           `json:"periodStart"`
	PeriodEnd      string           `json:"periodEnd"`
	IncludeDriver  bool             `json:"includeDriver"`
	PricingModel   string           `json:"pricingModel"`
	Vehicles       []VehicleRequest `json:"vehicles"`
}

// CreateContract handles POST /api/v1/contracts.
func (s *Server) CreateContract(ctx echo.Context) error {
	ac, err := s.authContext(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var req CreateContractRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, errors.New("invalid request body"))
	}

	period, err := parseDateRange(req.PeriodStart, req.PeriodEnd)
	if err != nil {
		return badRequest(ctx, err)
	}

	pricing, err := contract.ParsePricingModel(req.PricingModel)
	if err != nil {
		return badRequest(ctx, err)
	}

	vehicles := make([]commands.VehicleSpec, 0, len(req.Vehicles))
	for _, v := range req.Vehicles {
		vehicleID, idErr := kernel.UUIDFromString(v.VehicleID)
		if idErr != nil {
			return badRequest(ctx, idErr)
		}
		vehicles = append(vehicles, commands.VehicleSpec{
			VehicleID: vehicleID,
			RateCents: v.RateCents,
		})
	}

	cmd, err := commands.NewCreateContractCommand(
		ac.TenantID(), req.ContractNumber, period,
		req.IncludeDriver, pricing, vehicles, time.Now().UTC(),
	)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.createContractHandler.Handle(ctx.Request().Context(), ac, cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{
		"contractId": cmd.ContractID().String(),
	})
}

// TransitionContractRequest is the body for the status transition endpoint.
type TransitionContractRequest struct {
	Target string `json:"target"`
}

// TransitionContract handles POST /api/v1/contracts/:contractId/transition.
func (s *Server) TransitionContract(ctx echo.Context) error {
	ac, err := s.authContext(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	contractID, err := kernel.UUIDFromString(ctx.Param("contractId"))
	if err != nil {
		return badRequest(ctx, err)
	}

	var req TransitionContractRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, errors.New("invalid request body"))
	}

	target, err := contract.ParseStatus(req.Target)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewTransitionContractCommand(
		ac.TenantID(), contractID, target, time.Now().UTC())
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.transitionContractHandler.Handle(ctx.Request().Context(), ac, cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// AssignDriverRequest is the body for the driver assignment endpoint.
type AssignDriverRequest struct {
	DriverID string `json:"driverId"`
}

// AssignDriver handles POST /api/v1/contracts/:contractId/driver.
func (s *Server) AssignDriver(ctx echo.Context) error {
	ac, err := s.authContext(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	contractID, err := kernel.UUIDFromString(ctx.Param("contractId"))
	if err != nil {
		return badRequest(ctx, err)
	}

	var req AssignDriverRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, errors.New("invalid request body"))
	}

	driverID, err := kernel.UUIDFromString(req.DriverID)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewAssignDriverCommand(
		ac.TenantID(), contractID, driverID, time.Now().UTC())
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.assignDriverHandler.Handle(ctx.Request().Context(), ac, cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// UnassignDriverRequest is the body for the driver unassignment endpoint.
type UnassignDriverRequest struct {
	Reason string `json:"reason"`
}

// UnassignDriver handles DELETE /api/v1/contracts/:contractId/driver.
func (s *Server) UnassignDriver(ctx echo.Context) error {
	ac, err := s.authContext(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	contractID, err := kernel.UUIDFromString(ctx.Param("contractId"))
	if err != nil {
		return badRequest(ctx, err)
	}

	var req UnassignDriverRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, errors.New("invalid request body"))
	}

	cmd, err := commands.NewUnassignDriverCommand(
		ac.TenantID(), contractID, req.Reason, time.Now().UTC())
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.unassignDriverHandler.Handle(ctx.Request().Context(), ac, cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// RegisterDriverRequest is the body for POST /api/v1/drivers.
type RegisterDriverRequest struct {
	LicenseExpiry string `json:"licenseExpiry"`
}

// RegisterDriver handles POST /api/v1/drivers.
func (s *Server) RegisterDriver(ctx echo.Context) error {
	ac, err := s.authContext(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var req RegisterDriverRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, errors.New("invalid request body"))
	}

	expiry, err := time.Parse(time.DateOnly, req.LicenseExpiry)
	if err != nil {
		return badRequest(ctx, errors.New("licenseExpiry must be YYYY-MM-DD"))
	}

	cmd, err := commands.NewRegisterDriverCommand(ac.TenantID(), expiry, time.Now().UTC())
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.registerDriverHandler.Handle(ctx.Request().Context(), ac, cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{
		"driverId": cmd.DriverID().String(),
	})
}

// SuspendDriverRequest is the body for the driver suspension endpoint.
type SuspendDriverRequest struct {
	Reason string `json:"reason"`
}

// SuspendDriver handles POST /api/v1/drivers/:driverId/suspend.
func (s *Server) SuspendDriver(ctx echo.Context) error {
	ac, err := s.authContext(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	driverID, err := kernel.UUIDFromString(ctx.Param("driverId"))
	if err != nil {
		return badRequest(ctx, err)
	}

	var req SuspendDriverRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, errors.New("invalid request body"))
	}

	cmd, err := commands.NewSuspendDriverCommand(
		ac.TenantID(), driverID, req.Reason, time.Now().UTC())
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.suspendDriverHandler.Handle(ctx.Request().Context(), ac, cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// ResumeDriver handles POST /api/v1/drivers/:driverId/resume.
func (s *Server) ResumeDriver(ctx echo.Context) error {
	ac, err := s.authContext(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	driverID, err := kernel.UUIDFromString(ctx.Param("driverId"))
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewResumeDriverCommand(ac.TenantID(), driverID, time.Now().UTC())
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.resumeDriverHandler.Handle(ctx.Request().Context(), ac, cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// ActiveAssignmentResponse is one row of the active assignments read model.
type ActiveAssignmentResponse struct {
	ID          string    `json:"id"`
	ContractID  string    `json:"contractId"`
	PeriodStart string    `json:"periodStart"`
	PeriodEnd   string    `json:"periodEnd"`
	AssignedAt  time.Time `json:"assignedAt"`
}

// GetActiveAssignments handles GET /api/v1/drivers/:driverId/assignments.
func (s *Server) GetActiveAssignments(ctx echo.Context) error {
	ac, err := s.authContext(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	driverID, err := kernel.UUIDFromString(ctx.Param("driverId"))
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetActiveAssignmentsQuery(ac.TenantID(), driverID)
	if err != nil {
		return badRequest(ctx, err)
	}

	rows, err := s.activeAssignmentsHandler.Handle(ctx.Request().Context(), ac, query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]ActiveAssignmentResponse, len(rows))
	for i, row := range rows {
		response[i] = ActiveAssignmentResponse{
			ID:          row.ID.String(),
			ContractID:  row.ContractID.String(),
			PeriodStart: row.PeriodStart.Format(time.DateOnly),
			PeriodEnd:   row.PeriodEnd.Format(time.DateOnly),
			AssignedAt:  row.AssignedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// StatusSummaryResponse is one row of the status summary read model.
type StatusSummaryResponse struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// GetStatusSummary handles GET /api/v1/reports/status-summary.
func (s *Server) GetStatusSummary(ctx echo.Context) error {
	ac, err := s.authContext(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetStatusSummaryQuery(ac.TenantID())
	if err != nil {
		return badRequest(ctx, err)
	}

	rows, err := s.statusSummaryHandler.Handle(ctx.Request().Context(), ac, query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]StatusSummaryResponse, len(rows))
	for i, row := range rows {
		response[i] = StatusSummaryResponse{Status: row.Status, Count: row.Count}
	}

	return ctx.JSON(http.StatusOK, response)
}

// authContext builds the auth context from the identity headers.
func (s *Server) authContext(ctx echo.Context) (auth.Context, error) {
	tenantID, err := kernel.UUIDFromString(ctx.Request().Header.Get("X-Tenant-Id"))
	if err != nil {
		return auth.Context{}, errors.New("missing or invalid X-Tenant-Id header")
	}

	userID, err := kernel.UUIDFromString(ctx.Request().Header.Get("X-User-Id"))
	if err != nil {
		return auth.Context{}, errors.New("missing or invalid X-User-Id header")
	}

	role := auth.Role(ctx.Request().Header.Get("X-User-Role"))
	return auth.NewContext(tenantID, userID, role)
}

func parseDateRange(start, end string) (kernel.DateRange, error) {
	startDate, err := time.Parse(time.DateOnly, start)
	if err != nil {
		return kernel.DateRange{}, errors.New("periodStart must be YYYY-MM-DD")
	}

	endDate, err := time.Parse(time.DateOnly, end)
	if err != nil {
		return kernel.DateRange{}, errors.New("periodEnd must be YYYY-MM-DD")
	}

	return kernel.NewDateRange(startDate, endDate)
}

func badRequest(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: err.Error(),
	})
}

// domainError maps application errors to HTTP status codes.
func domainError(ctx echo.Context, err error) error {
	var status int
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, auth.ErrPermissionDenied), errors.Is(err, auth.ErrTenantMismatch):
		status = http.StatusForbidden
	case errors.Is(err, errs.ErrAssignmentConflict),
		errors.Is(err, errs.ErrConcurrencyConflict),
		errors.Is(err, errs.ErrInvalidStateTransition),
		errors.Is(err, errs.ErrSuspensionBlocked),
		errors.Is(err, commands.ErrNoActiveAssignmentFound):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrDriverIneligible),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusUnprocessableEntity
	default:
		status = http.StatusInternalServerError
	}

	return ctx.JSON(status, ErrorResponse{Code: status, Message: err.Error()})
}
