package response

import (
	"time"

	"barbearia_matheus/internal/domain/entities"
	"barbearia_matheus/internal/utils"
)

// ClientResponse renders CPF and phone in display format; the store keeps
// bare digits.

type ClientResponse struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	CPF       string     `json:"cpf"`
	Phone     string     `json:"phone"`
	Email     string     `json:"email,omitempty"`
	Status    string     `json:"status"`
	LastVisit *time.Time `json:"last_visit,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func FromClient(c entities.Client) ClientResponse {
	out := ClientResponse{
		ID:        c.ID,
		Name:      c.Name,
		CPF:       utils.FormatCPF(c.CPF),
		Phone:     utils.FormatPhoneBR(c.Phone),
		Email:     c.Email,
		Status:    string(c.Status),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
	if !c.LastVisit.IsZero() {
		lv := c.LastVisit
		out.LastVisit = &lv
	}
	return out
}

func FromClients(clients []entities.Client) []ClientResponse {
	out := make([]ClientResponse, 0, len(clients))
	for _, c := range clients {
		out = append(out, FromClient(c))
	}
	return out
}
