package entities

import "time"

// Service is a catalog entry the client picks when booking (cut, beard, ...).
//
// Storage model (DynamoDB):
//   - PK: id

type Service struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Price           float64   `json:"price"`
	DurationMinutes int       `json:"duration_minutes"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
