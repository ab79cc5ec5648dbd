package entities

import "time"

// AttendanceStatus represents the service lifecycle of an attendance.
//
// Domain notes:
//   - Transitions are forward-only: waiting -> progress -> finished.
//   - finished is terminal; advancing a finished attendance keeps it finished.

type AttendanceStatus string

const (
	AttendanceStatusWaiting  AttendanceStatus = "waiting"
	AttendanceStatusProgress AttendanceStatus = "progress"
	AttendanceStatusFinished AttendanceStatus = "finished"
)

// IsValid reports whether s is one of the known lifecycle states.
func (s AttendanceStatus) IsValid() bool {
	switch s {
	case AttendanceStatusWaiting, AttendanceStatusProgress, AttendanceStatusFinished:
		return true
	}
	return false
}

// Next returns the state an attendance moves to when advanced.
// finished maps to itself.
func (s AttendanceStatus) Next() AttendanceStatus {
	switch s {
	case AttendanceStatusWaiting:
		return AttendanceStatusProgress
	case AttendanceStatusProgress:
		return AttendanceStatusFinished
	default:
		return AttendanceStatusFinished
	}
}

// PaymentStatus represents the payment outcome for an attendance.

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusPaid      PaymentStatus = "paid"
	PaymentStatusCancelled PaymentStatus = "cancelled"
)

// PaymentMethod is how the client chose to pay at booking time.

type PaymentMethod string

const (
	PaymentMethodCash PaymentMethod = "cash"
	PaymentMethodCard PaymentMethod = "card"
	PaymentMethodPix  PaymentMethod = "pix"
)

func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodPix:
		return true
	}
	return false
}

// AttendanceClient is the client snapshot embedded in an attendance, so the
// admin board renders without a second lookup even if the client record is
// later edited or removed.

type AttendanceClient struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// AttendanceService is one service line item of an attendance.

type AttendanceService struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"duration_minutes"`
}

// Attendance is a booked appointment linking a client to one or more services.
//
// Storage model (DynamoDB):
//   - PK: id (numeric, zero-padded string in the table; issued by an atomic counter)
//
// ID is numeric so the admin board can sort attendances by arrival order.

type Attendance struct {
	ID              int                 `json:"id"`
	Client          AttendanceClient    `json:"client"`
	Services        []AttendanceService `json:"services"`
	Status          AttendanceStatus    `json:"status"`
	PaymentStatus   PaymentStatus       `json:"payment_status"`
	PaymentMethod   PaymentMethod       `json:"payment_method,omitempty"`
	AppointmentDate time.Time           `json:"appointment_date"`
	Notes           string              `json:"notes,omitempty"`
	TotalPrice      float64             `json:"total_price"`
	TotalMinutes    int                 `json:"total_minutes"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}
