package interfaces

import (
	"context"
	"time"

	"barbearia_matheus/internal/domain/entities"
)

// IClientRepository abstracts DynamoDB persistence for Client.
//
// Lookup by CPF and phone digits backs the client login-by-identifier flow;
// ListByStatus backs the admin console filter.

type IClientRepository interface {
	Create(ctx context.Context, c entities.Client) (entities.Client, error)
	GetByID(ctx context.Context, id string) (entities.Client, error)
	GetByCPF(ctx context.Context, cpf string) (entities.Client, error)
	GetByPhone(ctx context.Context, phone string) (entities.Client, error)
	ListByStatus(ctx context.Context, status entities.ClientStatus) ([]entities.Client, error)
	Update(ctx context.Context, c entities.Client) (entities.Client, error)
	UpdateStatus(ctx context.Context, id string, status entities.ClientStatus) (entities.Client, error)
	TouchLastVisit(ctx context.Context, id string, visitedAt time.Time) error
	Delete(ctx context.Context, id string) error
}
