package interfaces

import (
	"context"

	"barbearia_matheus/internal/domain/entities"
)

// IAdminRepository abstracts DynamoDB persistence for back-office operators.

type IAdminRepository interface {
	Create(ctx context.Context, a entities.Admin) (entities.Admin, error)
	GetByID(ctx context.Context, id string) (entities.Admin, error)
	GetByUsername(ctx context.Context, username string) (entities.Admin, error)
}

// ISessionRepository stores issued admin bearer tokens.
//
// Sessions are written on login, read by the auth middleware on every
// privileged request, and removed on logout. Expiry is enforced by the
// auth usecase, not the store.

type ISessionRepository interface {
	Put(ctx context.Context, s entities.Session) error
	Get(ctx context.Context, token string) (entities.Session, error)
	Delete(ctx context.Context, token string) error
}
