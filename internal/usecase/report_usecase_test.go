package usecase

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"barbearia_matheus/internal/domain/entities"
	mock_interfaces "barbearia_matheus/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func paidAttendance(id int, clientID, clientName string, price float64, when time.Time) entities.Attendance {
	return entities.Attendance{
		ID:              id,
		Client:          entities.AttendanceClient{ID: clientID, Name: clientName},
		Status:          entities.AttendanceStatusFinished,
		PaymentStatus:   entities.PaymentStatusPaid,
		PaymentMethod:   entities.PaymentMethodCash,
		AppointmentDate: when,
		TotalPrice:      price,
		UpdatedAt:       when,
	}
}

func TestReportUseCase_SummaryByPeriod(t *testing.T) {
	t.Run("unknown period", func(t *testing.T) {
		uc := NewReportUseCase(nil, nil)
		_, err := uc.SummaryByPeriod(context.Background(), "year", time.Time{}, time.Time{})
		if !errors.Is(err, ErrInvalidReportPeriod) {
			t.Fatalf("expected ErrInvalidReportPeriod, got %v", err)
		}
	})

	t.Run("revenue counts paid only", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		attendances := mock_interfaces.NewMockIAttendanceRepository(ctrl)
		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewReportUseCase(attendances, clients)

		now := time.Now().UTC()
		records := []entities.Attendance{
			paidAttendance(1, "c-1", "Ana", 50, now),
			paidAttendance(2, "c-2", "Bia", 30, now),
			{ID: 3, Client: entities.AttendanceClient{ID: "c-1", Name: "Ana"}, PaymentStatus: entities.PaymentStatusPending, TotalPrice: 999, AppointmentDate: now},
		}
		attendances.EXPECT().ListByDateRange(gomock.Any(), gomock.Any(), gomock.Any()).Return(records, nil)
		clients.EXPECT().ListByStatus(gomock.Any(), entities.ClientStatus("")).Return(make([]entities.Client, 4), nil)

		s, err := uc.SummaryByPeriod(context.Background(), "day", time.Time{}, time.Time{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.TotalRevenue != 80 || s.TotalAttendances != 3 || s.TotalClients != 4 {
			t.Fatalf("unexpected summary: %+v", s)
		}
		want := 80.0 / 3.0
		if s.AverageTicket != want {
			t.Fatalf("unexpected average ticket: %v", s.AverageTicket)
		}
	})

	t.Run("explicit dates win over named period", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		attendances := mock_interfaces.NewMockIAttendanceRepository(ctrl)
		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewReportUseCase(attendances, clients)

		start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
		attendances.EXPECT().ListByDateRange(gomock.Any(), start, end).Return(nil, nil)
		clients.EXPECT().ListByStatus(gomock.Any(), entities.ClientStatus("")).Return(nil, nil)

		if _, err := uc.SummaryByPeriod(context.Background(), "year", start, end); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestReportUseCase_TopClients(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	attendances := mock_interfaces.NewMockIAttendanceRepository(ctrl)
	uc := NewReportUseCase(attendances, nil)

	now := time.Now().UTC()
	attendances.EXPECT().ListByDateRange(gomock.Any(), gomock.Any(), gomock.Any()).Return([]entities.Attendance{
		paidAttendance(1, "c-1", "Ana", 30, now),
		paidAttendance(2, "c-2", "Bia", 100, now),
		paidAttendance(3, "c-1", "Ana", 40, now),
	}, nil)

	top, err := uc.TopClients(context.Background(), 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(top) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(top))
	}
	if top[0].ClientID != "c-2" || top[0].Revenue != 100 {
		t.Fatalf("unexpected leader: %+v", top[0])
	}
	if top[1].ClientID != "c-1" || top[1].Revenue != 70 || top[1].Attendances != 2 {
		t.Fatalf("unexpected runner-up: %+v", top[1])
	}
}

func TestReportUseCase_RevenueChart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	attendances := mock_interfaces.NewMockIAttendanceRepository(ctrl)
	uc := NewReportUseCase(attendances, nil)

	d1 := time.Date(2026, 8, 10, 12, 0, 0, 0, time.UTC)
	d2 := time.Date(2026, 8, 11, 12, 0, 0, 0, time.UTC)
	attendances.EXPECT().ListByDateRange(gomock.Any(), gomock.Any(), gomock.Any()).Return([]entities.Attendance{
		paidAttendance(1, "c-1", "Ana", 30, d1),
		paidAttendance(2, "c-2", "Bia", 20, d1),
		paidAttendance(3, "c-1", "Ana", 50, d2),
	}, nil)

	points, err := uc.RevenueChart(context.Background(), "week", time.Time{}, time.Time{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(points) != 2 {
		t.Fatalf("expected 2 points, got %d", len(points))
	}
	if points[0].Date != "2026-08-10" || points[0].Revenue != 50 {
		t.Fatalf("unexpected first point: %+v", points[0])
	}
	if points[1].Date != "2026-08-11" || points[1].Revenue != 50 {
		t.Fatalf("unexpected second point: %+v", points[1])
	}
}

func TestReportUseCase_RecentActivities(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	attendances := mock_interfaces.NewMockIAttendanceRepository(ctrl)
	uc := NewReportUseCase(attendances, nil)

	now := time.Now().UTC()
	attendances.EXPECT().ListByDateRange(gomock.Any(), gomock.Any(), gomock.Any()).Return([]entities.Attendance{
		paidAttendance(1, "c-1", "Ana", 30, now.Add(-3*time.Hour)),
		paidAttendance(2, "c-2", "Bia", 20, now.Add(-1*time.Hour)),
		paidAttendance(3, "c-3", "Caio", 50, now.Add(-2*time.Hour)),
	}, nil)

	acts, err := uc.RecentActivities(context.Background(), 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(acts) != 2 {
		t.Fatalf("expected 2 activities, got %d", len(acts))
	}
	if acts[0].AttendanceID != 2 || acts[1].AttendanceID != 3 {
		t.Fatalf("unexpected order: %+v", acts)
	}
}

func TestReportUseCase_ExportCSV(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	attendances := mock_interfaces.NewMockIAttendanceRepository(ctrl)
	uc := NewReportUseCase(attendances, nil)

	when := time.Date(2026, 8, 10, 15, 0, 0, 0, time.UTC)
	attendances.EXPECT().ListByDateRange(gomock.Any(), gomock.Any(), gomock.Any()).Return([]entities.Attendance{
		paidAttendance(7, "c-1", "Ana", 45.5, when),
	}, nil)

	out, err := uc.ExportCSV(context.Background(), "month", time.Time{}, time.Time{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(bytes.TrimSpace(out))), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header plus one row, got %d lines", len(lines))
	}
	if lines[0] != "id,date,client,services,status,payment_status,payment_method,total" {
		t.Fatalf("unexpected header: %q", lines[0])
	}
	if lines[1] != "7,2026-08-10,Ana,0,finished,paid,cash,45.50" {
		t.Fatalf("unexpected row: %q", lines[1])
	}
}
