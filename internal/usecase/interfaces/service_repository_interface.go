package interfaces

import (
	"context"

	"barbearia_matheus/internal/domain/entities"
)

// IServiceRepository abstracts DynamoDB persistence for the service catalog.

type IServiceRepository interface {
	Create(ctx context.Context, s entities.Service) (entities.Service, error)
	GetByID(ctx context.Context, id string) (entities.Service, error)
	List(ctx context.Context) ([]entities.Service, error)
	Update(ctx context.Context, s entities.Service) (entities.Service, error)
	Delete(ctx context.Context, id string) error
}
