package viewmodel

import (
	"context"
	"log"
	"sync"
	"time"

	"barbearia_matheus/internal/domain/entities"
)

const defaultRefreshInterval = 5 * time.Second

// AttendanceLister provides the board's backing record set, normally the
// attendance usecase's today view.

type AttendanceLister interface {
	ListToday(ctx context.Context) ([]entities.Attendance, error)
}

// Board keeps a periodically refreshed snapshot of today's attendances.
//
// Each refresh carries a monotonically increasing sequence number, and a
// completed fetch is applied only if no later fetch has already landed. That
// way a slow in-flight response can never overwrite fresher data, even though
// fetches are fired independently and may complete out of order.
//
// A failed refresh keeps the last known-good snapshot; the next tick retries
// naturally, so there is no backoff state to manage.

type Board struct {
	lister   AttendanceLister
	interval time.Duration

	mu      sync.RWMutex
	records []entities.Attendance
	stats   Stats
	issued  uint64
	applied uint64
}

func NewBoard(lister AttendanceLister, interval time.Duration) *Board {
	if interval <= 0 {
		interval = defaultRefreshInterval
	}
	return &Board{lister: lister, interval: interval}
}

// Run refreshes the snapshot once immediately and then on every tick until
// ctx is cancelled. In-flight fetches are not aborted on teardown; their
// results are simply discarded by the sequence check.
func (b *Board) Run(ctx context.Context) {
	b.refresh(ctx)

	ticker := time.NewTicker(b.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			b.refresh(ctx)
		}
	}
}

// Refresh triggers a single fetch outside the Run loop, for callers that want
// an up-to-date snapshot on demand.
func (b *Board) Refresh(ctx context.Context) {
	b.refresh(ctx)
}

func (b *Board) refresh(ctx context.Context) {
	b.mu.Lock()
	b.issued++
	seq := b.issued
	b.mu.Unlock()

	records, err := b.lister.ListToday(ctx)
	if err != nil {
		log.Printf("[attendance][board] refresh failed seq=%d err=%v", seq, err)
		return
	}
	if !b.apply(seq, records) {
		log.Printf("[attendance][board] stale refresh discarded seq=%d", seq)
	}
}

// apply installs records fetched under seq unless a later fetch already
// landed. Returns false when the result was discarded as stale.
func (b *Board) apply(seq uint64, records []entities.Attendance) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if seq <= b.applied {
		return false
	}
	b.applied = seq
	b.records = records
	b.stats = ComputeStats(records)
	return true
}

// Snapshot returns a copy of the current record set and its stats.
func (b *Board) Snapshot() ([]entities.Attendance, Stats) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]entities.Attendance, len(b.records))
	copy(out, b.records)
	return out, b.stats
}

// View applies filter and sort over the current snapshot. Stats always cover
// the unfiltered set.
func (b *Board) View(filter string, field SortField, direction SortDirection) ([]entities.Attendance, Stats) {
	records, stats := b.Snapshot()
	return SortAttendances(FilterByStatus(records, filter), field, direction), stats
}
