package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"barbearia_matheus/internal/domain/entities"
	"barbearia_matheus/internal/usecase/interfaces"
	"barbearia_matheus/internal/utils"
)

var ErrInvalidReportPeriod = errors.New("invalid report period")

// ReportSummary is the dashboard metrics block. Revenue counts paid
// attendances only; average ticket is revenue over counted attendances.

type ReportSummary struct {
	TotalRevenue     float64 `json:"totalRevenue"`
	TotalClients     int     `json:"totalClients"`
	TotalAttendances int     `json:"totalAttendances"`
	AverageTicket    float64 `json:"averageTicket"`
}

type TopClient struct {
	ClientID    string  `json:"client_id"`
	Name        string  `json:"name"`
	Attendances int     `json:"attendances"`
	Revenue     float64 `json:"revenue"`
}

// RevenuePoint is one bucket of the revenue chart, keyed by shop-local date.

type RevenuePoint struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
}

type Activity struct {
	AttendanceID int                       `json:"attendance_id"`
	ClientName   string                    `json:"client_name"`
	Status       entities.AttendanceStatus `json:"status"`
	TotalPrice   float64                   `json:"total_price"`
	When         time.Time                 `json:"when"`
}

// IReportUseCase backs the admin dashboard and reports screens.

type IReportUseCase interface {
	Summary(ctx context.Context) (ReportSummary, error)
	SummaryByPeriod(ctx context.Context, period string, start, end time.Time) (ReportSummary, error)
	TopClients(ctx context.Context, limit int) ([]TopClient, error)
	RevenueChart(ctx context.Context, period string, start, end time.Time) ([]RevenuePoint, error)
	RecentActivities(ctx context.Context, limit int) ([]Activity, error)
	ExportCSV(ctx context.Context, period string, start, end time.Time) ([]byte, error)
}

type ReportUseCase struct {
	attendances interfaces.IAttendanceRepository
	clients     interfaces.IClientRepository
}

var _ IReportUseCase = (*ReportUseCase)(nil)

func NewReportUseCase(attendances interfaces.IAttendanceRepository, clients interfaces.IClientRepository) *ReportUseCase {
	return &ReportUseCase{attendances: attendances, clients: clients}
}

// resolveWindow turns the console's filter into a concrete [start, end)
// range. Explicit dates win over the named period; the named periods are
// windows ending now.
func resolveWindow(period string, start, end time.Time) (time.Time, time.Time, error) {
	if !start.IsZero() && !end.IsZero() {
		return start.UTC(), end.UTC(), nil
	}

	now := time.Now()
	switch period {
	case "day", "":
		s, e := utils.RecifeDayBounds(now)
		return s, e, nil
	case "week":
		_, e := utils.RecifeDayBounds(now)
		return e.Add(-7 * 24 * time.Hour), e, nil
	case "month":
		_, e := utils.RecifeDayBounds(now)
		return e.Add(-30 * 24 * time.Hour), e, nil
	default:
		return time.Time{}, time.Time{}, ErrInvalidReportPeriod
	}
}

func summarize(records []entities.Attendance, totalClients int) ReportSummary {
	s := ReportSummary{TotalClients: totalClients, TotalAttendances: len(records)}
	for _, a := range records {
		if a.PaymentStatus == entities.PaymentStatusPaid {
			s.TotalRevenue += a.TotalPrice
		}
	}
	if s.TotalAttendances > 0 {
		s.AverageTicket = s.TotalRevenue / float64(s.TotalAttendances)
	}
	return s
}

func (u *ReportUseCase) Summary(ctx context.Context) (ReportSummary, error) {
	return u.SummaryByPeriod(ctx, "month", time.Time{}, time.Time{})
}

func (u *ReportUseCase) SummaryByPeriod(ctx context.Context, period string, start, end time.Time) (ReportSummary, error) {
	s, e, err := resolveWindow(period, start, end)
	if err != nil {
		return ReportSummary{}, err
	}

	records, err := u.attendances.ListByDateRange(ctx, s, e)
	if err != nil {
		return ReportSummary{}, err
	}
	clients, err := u.clients.ListByStatus(ctx, "")
	if err != nil {
		return ReportSummary{}, err
	}
	return summarize(records, len(clients)), nil
}

// TopClients ranks clients by paid revenue over the last 30 days.
func (u *ReportUseCase) TopClients(ctx context.Context, limit int) ([]TopClient, error) {
	if limit <= 0 {
		limit = 10
	}
	s, e, err := resolveWindow("month", time.Time{}, time.Time{})
	if err != nil {
		return nil, err
	}
	records, err := u.attendances.ListByDateRange(ctx, s, e)
	if err != nil {
		return nil, err
	}

	byClient := map[string]*TopClient{}
	order := []string{}
	for _, a := range records {
		tc, ok := byClient[a.Client.ID]
		if !ok {
			tc = &TopClient{ClientID: a.Client.ID, Name: a.Client.Name}
			byClient[a.Client.ID] = tc
			order = append(order, a.Client.ID)
		}
		tc.Attendances++
		if a.PaymentStatus == entities.PaymentStatusPaid {
			tc.Revenue += a.TotalPrice
		}
	}

	out := make([]TopClient, 0, len(order))
	for _, id := range order {
		out = append(out, *byClient[id])
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Revenue > out[j].Revenue })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// RevenueChart buckets paid revenue by shop-local date over the window.
func (u *ReportUseCase) RevenueChart(ctx context.Context, period string, start, end time.Time) ([]RevenuePoint, error) {
	s, e, err := resolveWindow(period, start, end)
	if err != nil {
		return nil, err
	}
	records, err := u.attendances.ListByDateRange(ctx, s, e)
	if err != nil {
		return nil, err
	}

	byDate := map[string]float64{}
	for _, a := range records {
		if a.PaymentStatus != entities.PaymentStatusPaid {
			continue
		}
		byDate[utils.RecifeDate(a.AppointmentDate)] += a.TotalPrice
	}

	out := make([]RevenuePoint, 0, len(byDate))
	for date, revenue := range byDate {
		out = append(out, RevenuePoint{Date: date, Revenue: revenue})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

// RecentActivities returns the latest attendances, newest first.
func (u *ReportUseCase) RecentActivities(ctx context.Context, limit int) ([]Activity, error) {
	if limit <= 0 {
		limit = 5
	}
	s, e, err := resolveWindow("week", time.Time{}, time.Time{})
	if err != nil {
		return nil, err
	}
	records, err := u.attendances.ListByDateRange(ctx, s, e)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(records, func(i, j int) bool { return records[i].UpdatedAt.After(records[j].UpdatedAt) })
	if len(records) > limit {
		records = records[:limit]
	}

	out := make([]Activity, 0, len(records))
	for _, a := range records {
		out = append(out, Activity{
			AttendanceID: a.ID,
			ClientName:   a.Client.Name,
			Status:       a.Status,
			TotalPrice:   a.TotalPrice,
			When:         a.UpdatedAt,
		})
	}
	return out, nil
}

// ExportCSV renders the window's attendances as a CSV download.
func (u *ReportUseCase) ExportCSV(ctx context.Context, period string, start, end time.Time) ([]byte, error) {
	s, e, err := resolveWindow(period, start, end)
	if err != nil {
		return nil, err
	}
	records, err := u.attendances.ListByDateRange(ctx, s, e)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"id", "date", "client", "services", "status", "payment_status", "payment_method", "total"})
	for _, a := range records {
		_ = w.Write([]string{
			strconv.Itoa(a.ID),
			utils.RecifeDate(a.AppointmentDate),
			a.Client.Name,
			strconv.Itoa(len(a.Services)),
			string(a.Status),
			string(a.PaymentStatus),
			string(a.PaymentMethod),
			fmt.Sprintf("%.2f", a.TotalPrice),
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
