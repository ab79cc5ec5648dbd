package viewmodel

import (
	"context"
	"errors"
	"testing"
	"time"

	"barbearia_matheus/internal/domain/entities"
)

type listerFunc func(ctx context.Context) ([]entities.Attendance, error)

func (f listerFunc) ListToday(ctx context.Context) ([]entities.Attendance, error) {
	return f(ctx)
}

func TestBoard_RefreshReplacesSnapshot(t *testing.T) {
	records := []entities.Attendance{
		att(1, "Ana", 1, entities.AttendanceStatusWaiting, entities.PaymentStatusPending),
	}
	b := NewBoard(listerFunc(func(context.Context) ([]entities.Attendance, error) {
		return records, nil
	}), time.Second)

	b.Refresh(context.Background())

	got, stats := b.Snapshot()
	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("unexpected snapshot: %+v", got)
	}
	if stats.Total != 1 || stats.Waiting != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestBoard_FailedRefreshKeepsLastSnapshot(t *testing.T) {
	calls := 0
	b := NewBoard(listerFunc(func(context.Context) ([]entities.Attendance, error) {
		calls++
		if calls == 1 {
			return []entities.Attendance{att(7, "Ana", 1, entities.AttendanceStatusWaiting, entities.PaymentStatusPending)}, nil
		}
		return nil, errors.New("api down")
	}), time.Second)

	b.Refresh(context.Background())
	b.Refresh(context.Background())

	got, _ := b.Snapshot()
	if len(got) != 1 || got[0].ID != 7 {
		t.Fatalf("failed refresh must keep last known-good snapshot, got %+v", got)
	}
}

func TestBoard_StaleResultIsDiscarded(t *testing.T) {
	b := NewBoard(nil, time.Second)

	fresh := []entities.Attendance{att(2, "Bia", 1, entities.AttendanceStatusProgress, entities.PaymentStatusPending)}
	stale := []entities.Attendance{att(1, "Ana", 1, entities.AttendanceStatusWaiting, entities.PaymentStatusPending)}

	// Fetch 2 lands before fetch 1.
	if !b.apply(2, fresh) {
		t.Fatalf("fresh result must be applied")
	}
	if b.apply(1, stale) {
		t.Fatalf("stale result must be discarded")
	}

	got, _ := b.Snapshot()
	if len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("stale fetch overwrote fresher data: %+v", got)
	}
}

func TestBoard_RunStopsOnCancel(t *testing.T) {
	b := NewBoard(listerFunc(func(context.Context) ([]entities.Attendance, error) {
		return nil, nil
	}), 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		b.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("Run did not stop after cancellation")
	}
}

func TestBoard_ViewAppliesFilterAndSort(t *testing.T) {
	records := []entities.Attendance{
		att(1, "zeca", 1, entities.AttendanceStatusProgress, entities.PaymentStatusPending),
		att(2, "Ana", 1, entities.AttendanceStatusWaiting, entities.PaymentStatusPending),
		att(3, "Bia", 1, entities.AttendanceStatusProgress, entities.PaymentStatusPending),
	}
	b := NewBoard(listerFunc(func(context.Context) ([]entities.Attendance, error) {
		return records, nil
	}), time.Second)
	b.Refresh(context.Background())

	got, stats := b.View("progress", SortByClient, SortAsc)
	if len(got) != 2 || got[0].Client.Name != "Bia" {
		t.Fatalf("unexpected view: %+v", got)
	}
	if stats.Total != 3 {
		t.Fatalf("stats must cover unfiltered snapshot, got %+v", stats)
	}
}
