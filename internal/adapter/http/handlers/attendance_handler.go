package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	request "barbearia_matheus/internal/adapter/http/dto/request"
	response "barbearia_matheus/internal/adapter/http/dto/response"
	"barbearia_matheus/internal/domain/entities"
	"barbearia_matheus/internal/usecase"
	"barbearia_matheus/internal/viewmodel"
	"barbearia_matheus/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidAttendancePayload = pkg.NewDomainErrorSimple("INVALID_ATTENDANCE_INPUT", "Invalid attendance payload", http.StatusBadRequest)

// AttendanceHandler handles the booking flow and the admin board.
//
// The "today" listing is served from the polling board snapshot rather than
// hitting the store on every request; filter and sort are applied per request
// over that snapshot.

type AttendanceHandler struct {
	usecase usecase.IAttendanceUseCase
	board   *viewmodel.Board
}

func NewAttendanceHandler(uc usecase.IAttendanceUseCase, board *viewmodel.Board) *AttendanceHandler {
	return &AttendanceHandler{usecase: uc, board: board}
}

// Create books an attendance from the client's service cart.
func (h *AttendanceHandler) Create(c *gin.Context) {
	var payload request.AttendanceCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAttendancePayload.HTTPStatus, errInvalidAttendancePayload.ToHTTPError())
		return
	}

	appointmentDate, err := payload.ResolveAppointmentDate()
	if err != nil {
		c.JSON(errInvalidAttendancePayload.HTTPStatus, errInvalidAttendancePayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Book(
		c.Request.Context(),
		payload.ClientID,
		payload.ServiceIDs,
		entities.PaymentMethod(payload.PaymentMethod),
		appointmentDate,
		payload.Notes,
	)
	if err != nil {
		log.Printf("[attendance][handler] create failed client_id=%s err=%v", payload.ClientID, err)
		appErr := mapAttendanceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	// A new booking should show up on the board without waiting a tick.
	h.board.Refresh(c.Request.Context())

	c.JSON(http.StatusCreated, response.FromAttendance(created))
}

// GetToday returns the board snapshot. Query params:
//   - status: waiting|progress|finished|all (default all)
//   - sort: id|client|services|status|payment (default id)
//   - direction: asc|desc (default desc)
func (h *AttendanceHandler) GetToday(c *gin.Context) {
	filter := c.DefaultQuery("status", viewmodel.FilterAll)
	field := viewmodel.SortField(c.DefaultQuery("sort", string(viewmodel.DefaultSortField)))
	direction := viewmodel.SortDirection(c.DefaultQuery("direction", string(viewmodel.DefaultSortDirection)))

	if !field.IsValid() || !direction.IsValid() {
		appErr := pkg.NewDomainErrorSimple("INVALID_SORT", "Invalid sort field or direction", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if filter != viewmodel.FilterAll && !entities.AttendanceStatus(filter).IsValid() {
		appErr := pkg.NewDomainErrorSimple("INVALID_STATUS_FILTER", "Invalid status filter", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	records, stats := h.board.View(filter, field, direction)
	c.JSON(http.StatusOK, response.BoardResponse{
		Attendances: response.FromAttendances(records),
		Stats: response.BoardStatsResponse{
			Total:    stats.Total,
			Waiting:  stats.Waiting,
			Progress: stats.Progress,
			Finished: stats.Finished,
		},
	})
}

func (h *AttendanceHandler) GetByID(c *gin.Context) {
	id, ok := attendanceID(c)
	if !ok {
		return
	}
	a, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapAttendanceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromAttendance(a))
}

// ListByClient returns a client's attendance history.
func (h *AttendanceHandler) ListByClient(c *gin.Context) {
	attendances, err := h.usecase.ListByClient(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapAttendanceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromAttendances(attendances))
}

// UpdateStatus applies a forward-only status change.
func (h *AttendanceHandler) UpdateStatus(c *gin.Context) {
	id, ok := attendanceID(c)
	if !ok {
		return
	}

	var payload request.AttendanceUpdateStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAttendancePayload.HTTPStatus, errInvalidAttendancePayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.UpdateStatus(c.Request.Context(), id, entities.AttendanceStatus(payload.Status))
	if err != nil {
		appErr := mapAttendanceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	h.board.Refresh(c.Request.Context())
	c.JSON(http.StatusOK, response.FromAttendance(updated))
}

// Advance moves the attendance one step forward in the lifecycle. Finished
// attendances stay finished.
func (h *AttendanceHandler) Advance(c *gin.Context) {
	id, ok := attendanceID(c)
	if !ok {
		return
	}
	updated, err := h.usecase.Advance(c.Request.Context(), id)
	if err != nil {
		appErr := mapAttendanceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	h.board.Refresh(c.Request.Context())
	c.JSON(http.StatusOK, response.FromAttendance(updated))
}

// SettlePayment marks the attendance as paid, charging the gateway for
// card/pix.
func (h *AttendanceHandler) SettlePayment(c *gin.Context) {
	id, ok := attendanceID(c)
	if !ok {
		return
	}
	updated, err := h.usecase.SettlePayment(c.Request.Context(), id)
	if err != nil {
		log.Printf("[attendance][handler] settle payment failed id=%d err=%v", id, err)
		appErr := mapAttendanceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	h.board.Refresh(c.Request.Context())
	c.JSON(http.StatusOK, response.FromAttendance(updated))
}

func (h *AttendanceHandler) CancelPayment(c *gin.Context) {
	id, ok := attendanceID(c)
	if !ok {
		return
	}
	updated, err := h.usecase.CancelPayment(c.Request.Context(), id)
	if err != nil {
		appErr := mapAttendanceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	h.board.Refresh(c.Request.Context())
	c.JSON(http.StatusOK, response.FromAttendance(updated))
}

func attendanceID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		appErr := pkg.NewDomainErrorSimple("INVALID_ATTENDANCE_ID", "Attendance id must be a positive number", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return 0, false
	}
	return id, true
}

func mapAttendanceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAttendanceID),
		errors.Is(err, usecase.ErrInvalidClientID),
		errors.Is(err, usecase.ErrNoServicesSelected),
		errors.Is(err, usecase.ErrInvalidAttendanceStatus),
		errors.Is(err, usecase.ErrInvalidPaymentMethod):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidStatusTransition):
		return pkg.NewDomainErrorSimple("INVALID_STATUS_TRANSITION", "Attendance status can only move forward", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentAlreadySettled):
		return pkg.NewDomainErrorSimple("PAYMENT_ALREADY_SETTLED", "Payment has already been settled", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentGatewayDeclined):
		return pkg.NewDomainErrorSimple("PAYMENT_DECLINED", "Payment was declined by the provider", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrAttendanceNotFound):
		return pkg.NewDomainErrorSimple("ATTENDANCE_NOT_FOUND", "Attendance not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
