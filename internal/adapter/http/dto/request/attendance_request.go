package request

import (
	"errors"
	"strings"
	"time"

	"barbearia_matheus/internal/utils"
)

var ErrInvalidAppointmentDate = errors.New("invalid appointment date")

// AttendanceCreateRequest is the booking cart: one client, one or more
// catalog services, a payment method chosen up front.
type AttendanceCreateRequest struct {
	ClientID        string   `json:"client_id" binding:"required"`
	ServiceIDs      []string `json:"service_ids" binding:"required"`
	PaymentMethod   string   `json:"payment_method" binding:"required"`
	AppointmentDate string   `json:"appointment_date"`
	Notes           string   `json:"notes"`
}

// ResolveAppointmentDate parses the optional appointment date. Empty means
// "now"; the wire format accepts RFC3339 or a bare YYYY-MM-DD day. Bare days
// are shop-local, so they get parsed in the Recife zone and land inside that
// calendar day's board window.
func (r AttendanceCreateRequest) ResolveAppointmentDate() (time.Time, error) {
	v := strings.TrimSpace(r.AppointmentDate)
	if v == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation("2006-01-02", v, utils.RecifeZone()); err == nil {
		return t, nil
	}
	return time.Time{}, ErrInvalidAppointmentDate
}

type AttendanceUpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
