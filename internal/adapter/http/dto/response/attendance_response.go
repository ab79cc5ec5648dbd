package response

import (
	"time"

	"barbearia_matheus/internal/domain/entities"
	"barbearia_matheus/internal/utils"
)

type AttendanceServiceResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"duration_minutes"`
}

type AttendanceClientResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type AttendanceResponse struct {
	ID              int                         `json:"id"`
	Client          AttendanceClientResponse    `json:"client"`
	Services        []AttendanceServiceResponse `json:"services"`
	Status          string                      `json:"status"`
	PaymentStatus   string                      `json:"payment_status"`
	PaymentMethod   string                      `json:"payment_method"`
	AppointmentDate time.Time                   `json:"appointment_date"`
	Notes           string                      `json:"notes,omitempty"`
	TotalPrice      float64                     `json:"total_price"`
	TotalMinutes    int                         `json:"total_minutes"`
	CreatedAt       time.Time                   `json:"created_at"`
	UpdatedAt       time.Time                   `json:"updated_at"`
}

func FromAttendance(a entities.Attendance) AttendanceResponse {
	services := make([]AttendanceServiceResponse, 0, len(a.Services))
	for _, s := range a.Services {
		services = append(services, AttendanceServiceResponse{
			ID:              s.ID,
			Name:            s.Name,
			Price:           s.Price,
			DurationMinutes: s.DurationMinutes,
		})
	}
	return AttendanceResponse{
		ID: a.ID,
		Client: AttendanceClientResponse{
			ID:    a.Client.ID,
			Name:  a.Client.Name,
			Phone: utils.FormatPhoneBR(a.Client.Phone),
		},
		Services:        services,
		Status:          string(a.Status),
		PaymentStatus:   string(a.PaymentStatus),
		PaymentMethod:   string(a.PaymentMethod),
		AppointmentDate: a.AppointmentDate,
		Notes:           a.Notes,
		TotalPrice:      a.TotalPrice,
		TotalMinutes:    a.TotalMinutes,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

func FromAttendances(attendances []entities.Attendance) []AttendanceResponse {
	out := make([]AttendanceResponse, 0, len(attendances))
	for _, a := range attendances {
		out = append(out, FromAttendance(a))
	}
	return out
}

// BoardResponse is the polled "today" payload: the filtered and sorted rows
// plus the status counters rendered above the table.

type BoardResponse struct {
	Attendances []AttendanceResponse `json:"attendances"`
	Stats       BoardStatsResponse   `json:"stats"`
}

type BoardStatsResponse struct {
	Total    int `json:"total"`
	Waiting  int `json:"waiting"`
	Progress int `json:"progress"`
	Finished int `json:"finished"`
}
