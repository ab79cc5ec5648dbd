package entities

import "time"

// ClientStatus marks whether a client is active in the shop's base.
//
// Clients are never hard-deleted by the lifecycle itself; the auto-inactivate
// routine flips clients with no visit in the cutoff window to inactive, and an
// admin can reactivate them.

type ClientStatus string

const (
	ClientStatusActive   ClientStatus = "active"
	ClientStatusInactive ClientStatus = "inactive"
)

// Client is a registered barbershop client.
//
// Storage model (DynamoDB):
//   - PK: id
//
// CPF and Phone are stored as bare digit strings; formatting is a
// presentation concern (see internal/utils).

type Client struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	CPF       string       `json:"cpf"`
	Phone     string       `json:"phone"`
	Email     string       `json:"email,omitempty"`
	Status    ClientStatus `json:"status"`
	LastVisit time.Time    `json:"last_visit,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}
