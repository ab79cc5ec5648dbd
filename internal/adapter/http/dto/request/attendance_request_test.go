package request

import (
	"errors"
	"testing"
	"time"

	"barbearia_matheus/internal/utils"
)

func TestAttendanceCreateRequest_ResolveAppointmentDate(t *testing.T) {
	r := AttendanceCreateRequest{AppointmentDate: ""}
	got, err := r.ResolveAppointmentDate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.IsZero() {
		t.Fatalf("expected zero time for empty date, got %v", got)
	}

	r = AttendanceCreateRequest{AppointmentDate: "2026-08-10T14:30:00Z"}
	got, err = r.ResolveAppointmentDate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2026, 8, 10, 14, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	r = AttendanceCreateRequest{AppointmentDate: " 2026-08-10 "}
	got, err = r.ResolveAppointmentDate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Year() != 2026 || got.Month() != time.August || got.Day() != 10 {
		t.Fatalf("unexpected date: %v", got)
	}

	r = AttendanceCreateRequest{AppointmentDate: "10/08/2026"}
	if _, err = r.ResolveAppointmentDate(); !errors.Is(err, ErrInvalidAppointmentDate) {
		t.Fatalf("expected ErrInvalidAppointmentDate, got %v", err)
	}
}

func TestResolveAppointmentDate_BareDayIsShopLocal(t *testing.T) {
	r := AttendanceCreateRequest{AppointmentDate: "2026-09-01"}
	got, err := r.ResolveAppointmentDate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	requested := time.Date(2026, 9, 1, 12, 0, 0, 0, utils.RecifeZone())
	start, end := utils.RecifeDayBounds(requested)
	if got.Before(start) || !got.Before(end) {
		t.Fatalf("appointment %v falls outside the requested Recife day [%v, %v)", got, start, end)
	}
	if utils.RecifeDate(got) != "2026-09-01" {
		t.Fatalf("expected shop-local day 2026-09-01, got %s", utils.RecifeDate(got))
	}
}
