package viewmodel

import (
	"sort"
	"strings"

	"barbearia_matheus/internal/domain/entities"
)

// SortField selects the attendance board column records are ordered by.

type SortField string

const (
	SortByID       SortField = "id"
	SortByClient   SortField = "client"
	SortByServices SortField = "services"
	SortByStatus   SortField = "status"
	SortByPayment  SortField = "payment"
)

func (f SortField) IsValid() bool {
	switch f {
	case SortByID, SortByClient, SortByServices, SortByStatus, SortByPayment:
		return true
	}
	return false
}

// SortDirection is the ordering direction of the active sort column.

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

func (d SortDirection) IsValid() bool {
	switch d {
	case SortAsc, SortDesc:
		return true
	}
	return false
}

// Board defaults: newest attendances first.
const (
	DefaultSortField     = SortByID
	DefaultSortDirection = SortDesc
)

// FilterAll disables status filtering.
const FilterAll = "all"

// Stats are status counts over the full, unfiltered record set.

type Stats struct {
	Total    int `json:"total"`
	Waiting  int `json:"waiting"`
	Progress int `json:"progress"`
	Finished int `json:"finished"`
}

// FilterByStatus keeps only records whose status equals filter. The
// FilterAll sentinel (or an empty filter) returns the input unchanged.
func FilterByStatus(records []entities.Attendance, filter string) []entities.Attendance {
	if filter == "" || filter == FilterAll {
		return records
	}
	out := make([]entities.Attendance, 0, len(records))
	for _, r := range records {
		if string(r.Status) == filter {
			out = append(out, r)
		}
	}
	return out
}

// SortAttendances returns a new slice ordered by field/direction. The sort is
// stable: records with equal keys keep their input order. The input slice is
// not mutated.
func SortAttendances(records []entities.Attendance, field SortField, direction SortDirection) []entities.Attendance {
	out := make([]entities.Attendance, len(records))
	copy(out, records)

	less := lessFunc(field)
	sort.SliceStable(out, func(i, j int) bool {
		if direction == SortDesc {
			i, j = j, i
		}
		return less(out[i], out[j])
	})
	return out
}

func lessFunc(field SortField) func(a, b entities.Attendance) bool {
	switch field {
	case SortByClient:
		return func(a, b entities.Attendance) bool {
			return strings.ToLower(a.Client.Name) < strings.ToLower(b.Client.Name)
		}
	case SortByServices:
		return func(a, b entities.Attendance) bool {
			return len(a.Services) < len(b.Services)
		}
	case SortByStatus:
		return func(a, b entities.Attendance) bool {
			return a.Status < b.Status
		}
	case SortByPayment:
		return func(a, b entities.Attendance) bool {
			return a.PaymentStatus < b.PaymentStatus
		}
	default:
		return func(a, b entities.Attendance) bool {
			return a.ID < b.ID
		}
	}
}

// ComputeStats counts records by status over the whole set, independent of
// any active filter.
func ComputeStats(records []entities.Attendance) Stats {
	s := Stats{Total: len(records)}
	for _, r := range records {
		switch r.Status {
		case entities.AttendanceStatusWaiting:
			s.Waiting++
		case entities.AttendanceStatusProgress:
			s.Progress++
		case entities.AttendanceStatusFinished:
			s.Finished++
		}
	}
	return s
}

// ToggleSort implements the three-click header behavior: clicking the active
// column flips direction, clicking a new column selects it ascending.
func ToggleSort(currentField SortField, currentDirection SortDirection, requestedField SortField) (SortField, SortDirection) {
	if requestedField == currentField {
		if currentDirection == SortAsc {
			return currentField, SortDesc
		}
		return currentField, SortAsc
	}
	return requestedField, SortAsc
}

// NextStatus is the forward-only lifecycle step; finished maps to itself.
func NextStatus(current entities.AttendanceStatus) entities.AttendanceStatus {
	return current.Next()
}
