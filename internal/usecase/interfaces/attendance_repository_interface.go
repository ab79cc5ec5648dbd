package interfaces

import (
	"context"
	"time"

	"barbearia_matheus/internal/domain/entities"
)

// IAttendanceRepository abstracts DynamoDB persistence for Attendance.
//
// NextID draws from an atomic counter item so attendance ids are small
// monotonically increasing numbers (the board sorts and displays them).
// Range listing uses the appointment date, which backs both the "today"
// board and the report windows.

type IAttendanceRepository interface {
	NextID(ctx context.Context) (int, error)
	Create(ctx context.Context, a entities.Attendance) (entities.Attendance, error)
	GetByID(ctx context.Context, id int) (entities.Attendance, error)
	ListByDateRange(ctx context.Context, start, end time.Time) ([]entities.Attendance, error)
	ListByClientID(ctx context.Context, clientID string) ([]entities.Attendance, error)
	UpdateStatus(ctx context.Context, id int, status entities.AttendanceStatus) (entities.Attendance, error)
	UpdatePayment(ctx context.Context, id int, status entities.PaymentStatus, method entities.PaymentMethod) (entities.Attendance, error)
}
