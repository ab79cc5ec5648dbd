package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"barbearia_matheus/internal/domain/entities"
	"barbearia_matheus/internal/usecase/interfaces"
	"barbearia_matheus/internal/utils"
)

var (
	ErrAttendanceNotFound      = errors.New("attendance not found")
	ErrInvalidAttendanceID     = errors.New("invalid attendance id")
	ErrNoServicesSelected      = errors.New("no services selected")
	ErrInvalidAttendanceStatus = errors.New("invalid attendance status")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrInvalidPaymentMethod    = errors.New("invalid payment method")
	ErrPaymentAlreadySettled   = errors.New("payment already settled")
	ErrPaymentGatewayDeclined  = errors.New("payment declined by gateway")
)

// IAttendanceUseCase owns the attendance lifecycle:
//   - booking (the client cart flow: selected services become line items with
//     derived total price and minutes)
//   - the admin board's "today" listing
//   - forward-only status transitions (waiting -> progress -> finished)
//   - payment settlement through the payment gateway

type IAttendanceUseCase interface {
	Book(ctx context.Context, clientID string, serviceIDs []string, method entities.PaymentMethod, appointmentDate time.Time, notes string) (entities.Attendance, error)
	GetByID(ctx context.Context, id int) (entities.Attendance, error)
	ListToday(ctx context.Context) ([]entities.Attendance, error)
	ListByClient(ctx context.Context, clientID string) ([]entities.Attendance, error)
	UpdateStatus(ctx context.Context, id int, requested entities.AttendanceStatus) (entities.Attendance, error)
	Advance(ctx context.Context, id int) (entities.Attendance, error)
	SettlePayment(ctx context.Context, id int) (entities.Attendance, error)
	CancelPayment(ctx context.Context, id int) (entities.Attendance, error)
}

type AttendanceUseCase struct {
	repo     interfaces.IAttendanceRepository
	clients  interfaces.IClientRepository
	services interfaces.IServiceRepository
	gateway  interfaces.IPaymentGateway
}

var _ IAttendanceUseCase = (*AttendanceUseCase)(nil)

func NewAttendanceUseCase(repo interfaces.IAttendanceRepository, clients interfaces.IClientRepository, services interfaces.IServiceRepository, gateway interfaces.IPaymentGateway) *AttendanceUseCase {
	return &AttendanceUseCase{repo: repo, clients: clients, services: services, gateway: gateway}
}

func (u *AttendanceUseCase) Book(ctx context.Context, clientID string, serviceIDs []string, method entities.PaymentMethod, appointmentDate time.Time, notes string) (entities.Attendance, error) {
	if clientID == "" {
		return entities.Attendance{}, ErrInvalidClientID
	}
	if len(serviceIDs) == 0 {
		return entities.Attendance{}, ErrNoServicesSelected
	}
	if !method.IsValid() {
		return entities.Attendance{}, ErrInvalidPaymentMethod
	}

	client, err := u.clients.GetByID(ctx, clientID)
	if err != nil {
		return entities.Attendance{}, err
	}
	if client.ID == "" {
		return entities.Attendance{}, ErrClientNotFound
	}

	items := make([]entities.AttendanceService, 0, len(serviceIDs))
	totalPrice := 0.0
	totalMinutes := 0
	for _, sid := range serviceIDs {
		svc, err := u.services.GetByID(ctx, sid)
		if err != nil {
			return entities.Attendance{}, err
		}
		if svc.ID == "" {
			return entities.Attendance{}, ErrServiceNotFound
		}
		items = append(items, entities.AttendanceService{
			ID:              svc.ID,
			Name:            svc.Name,
			Price:           svc.Price,
			DurationMinutes: svc.DurationMinutes,
		})
		totalPrice += svc.Price
		totalMinutes += svc.DurationMinutes
	}

	id, err := u.repo.NextID(ctx)
	if err != nil {
		return entities.Attendance{}, err
	}

	if appointmentDate.IsZero() {
		appointmentDate = time.Now().UTC()
	}

	now := time.Now().UTC()
	a := entities.Attendance{
		ID: id,
		Client: entities.AttendanceClient{
			ID:    client.ID,
			Name:  client.Name,
			Phone: client.Phone,
		},
		Services:        items,
		Status:          entities.AttendanceStatusWaiting,
		PaymentStatus:   entities.PaymentStatusPending,
		PaymentMethod:   method,
		AppointmentDate: appointmentDate.UTC(),
		Notes:           notes,
		TotalPrice:      totalPrice,
		TotalMinutes:    totalMinutes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	created, err := u.repo.Create(ctx, a)
	if err != nil {
		return entities.Attendance{}, err
	}

	// A booking counts as a visit for the inactivity window. Reactivate
	// lapsed clients on their way in.
	if err := u.clients.TouchLastVisit(ctx, client.ID, now); err != nil {
		log.Printf("[attendance][usecase] touch last visit failed client_id=%s err=%v", client.ID, err)
	}
	if client.Status == entities.ClientStatusInactive {
		if _, err := u.clients.UpdateStatus(ctx, client.ID, entities.ClientStatusActive); err != nil {
			log.Printf("[attendance][usecase] reactivate on booking failed client_id=%s err=%v", client.ID, err)
		}
	}

	log.Printf("[attendance][usecase] booked id=%d client_id=%s services=%d total=%.2f", created.ID, client.ID, len(items), totalPrice)
	return created, nil
}

func (u *AttendanceUseCase) GetByID(ctx context.Context, id int) (entities.Attendance, error) {
	if id <= 0 {
		return entities.Attendance{}, ErrInvalidAttendanceID
	}
	a, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Attendance{}, err
	}
	if a.ID == 0 {
		return entities.Attendance{}, ErrAttendanceNotFound
	}
	return a, nil
}

// ListToday returns the attendances of the current shop-local calendar day.
func (u *AttendanceUseCase) ListToday(ctx context.Context) ([]entities.Attendance, error) {
	start, end := utils.RecifeDayBounds(time.Now())
	return u.repo.ListByDateRange(ctx, start, end)
}

func (u *AttendanceUseCase) ListByClient(ctx context.Context, clientID string) ([]entities.Attendance, error) {
	if clientID == "" {
		return nil, ErrInvalidClientID
	}
	return u.repo.ListByClientID(ctx, clientID)
}

// UpdateStatus applies a requested status if the transition is forward-only:
// the requested value must be the current status (no-op, idempotent) or its
// immediate successor. Anything else is rejected.
func (u *AttendanceUseCase) UpdateStatus(ctx context.Context, id int, requested entities.AttendanceStatus) (entities.Attendance, error) {
	if !requested.IsValid() {
		return entities.Attendance{}, ErrInvalidAttendanceStatus
	}

	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Attendance{}, err
	}
	if requested == current.Status {
		return current, nil
	}
	if requested != current.Status.Next() {
		return entities.Attendance{}, ErrInvalidStatusTransition
	}

	updated, err := u.repo.UpdateStatus(ctx, id, requested)
	if err != nil {
		return entities.Attendance{}, err
	}
	if updated.ID == 0 {
		return entities.Attendance{}, ErrAttendanceNotFound
	}
	log.Printf("[attendance][usecase] status updated id=%d %s -> %s", id, current.Status, requested)
	return updated, nil
}

// Advance moves the attendance one lifecycle step forward. Advancing a
// finished attendance returns it unchanged.
func (u *AttendanceUseCase) Advance(ctx context.Context, id int) (entities.Attendance, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Attendance{}, err
	}
	return u.UpdateStatus(ctx, id, current.Status.Next())
}

// SettlePayment marks the attendance as paid. Cash settles directly; card and
// pix are charged through the payment gateway first, and a non-approved
// provider status leaves the attendance untouched.
func (u *AttendanceUseCase) SettlePayment(ctx context.Context, id int) (entities.Attendance, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Attendance{}, err
	}
	if current.PaymentStatus == entities.PaymentStatusPaid {
		return entities.Attendance{}, ErrPaymentAlreadySettled
	}

	if current.PaymentMethod != entities.PaymentMethodCash {
		if u.gateway == nil {
			return entities.Attendance{}, errors.New("payment gateway not configured")
		}
		payload, err := json.Marshal(map[string]any{
			"transaction_amount": current.TotalPrice,
			"description":        fmt.Sprintf("Atendimento #%d", current.ID),
			"payment_method_id":  string(current.PaymentMethod),
			"external_reference": fmt.Sprintf("%d", current.ID),
		})
		if err != nil {
			return entities.Attendance{}, err
		}

		log.Printf("[attendance][usecase] charging gateway id=%d method=%s amount=%.2f", id, current.PaymentMethod, current.TotalPrice)
		providerID, providerStatus, _, err := u.gateway.CreatePayment(ctx, payload)
		if err != nil {
			log.Printf("[attendance][usecase] gateway charge failed id=%d err=%v", id, err)
			return entities.Attendance{}, err
		}
		if providerStatus != "approved" {
			log.Printf("[attendance][usecase] gateway declined id=%d provider_payment_id=%s provider_status=%s", id, providerID, providerStatus)
			return entities.Attendance{}, ErrPaymentGatewayDeclined
		}
		log.Printf("[attendance][usecase] gateway charge success id=%d provider_payment_id=%s", id, providerID)
	}

	updated, err := u.repo.UpdatePayment(ctx, id, entities.PaymentStatusPaid, current.PaymentMethod)
	if err != nil {
		return entities.Attendance{}, err
	}
	if updated.ID == 0 {
		return entities.Attendance{}, ErrAttendanceNotFound
	}
	return updated, nil
}

// CancelPayment flips a pending payment to cancelled. Already-paid
// attendances cannot be cancelled here; refunds are out of scope.
func (u *AttendanceUseCase) CancelPayment(ctx context.Context, id int) (entities.Attendance, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Attendance{}, err
	}
	if current.PaymentStatus == entities.PaymentStatusPaid {
		return entities.Attendance{}, ErrPaymentAlreadySettled
	}

	updated, err := u.repo.UpdatePayment(ctx, id, entities.PaymentStatusCancelled, current.PaymentMethod)
	if err != nil {
		return entities.Attendance{}, err
	}
	if updated.ID == 0 {
		return entities.Attendance{}, ErrAttendanceNotFound
	}
	return updated, nil
}
